package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kakkky/jsconsole/autostart"
	"github.com/kakkky/jsconsole/completer"
	"github.com/kakkky/jsconsole/config"
	"github.com/kakkky/jsconsole/console"
	"github.com/kakkky/jsconsole/errs"
	"github.com/kakkky/jsconsole/evaluator"
	"github.com/kakkky/jsconsole/history"
	"github.com/kakkky/jsconsole/logger"
	"github.com/kakkky/jsconsole/repl"
	"github.com/kakkky/jsconsole/transcript"
	"github.com/kakkky/jsconsole/version"
)

// help() で表示されるコンソールコマンドの説明
var consoleHelp = []string{
	"Console commands:",
	"  :history           show the command history",
	"  :clear             clear the transcript",
	"  :autostart         evaluate the autostart file again",
	"  :quit              exit the console",
}

type runParams struct {
	ConfigPath    string
	LogLevel      string
	AutostartFile string
	NoAutostart   bool
}

func run(params runParams) error {
	cfg, err := loadConfig(params.ConfigPath)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if params.LogLevel != "" {
		level = params.LogLevel
	}
	log := logger.New(level, os.Stderr)

	session, err := newSession(cfg, log)
	if err != nil {
		return err
	}

	autostartFile := cfg.AutostartFile
	if params.AutostartFile != "" {
		autostartFile = params.AutostartFile
	}

	if cfg.CheckUpdate {
		notifyNewVersion(session.Transcript(), log)
	}
	startup(session, cfg.Preamble, autostartFile, params.NoAutostart, log)

	return repl.NewRepl(session,
		repl.WithLogger(log),
		repl.WithPromptPrefix(cfg.PromptPrefix),
		repl.WithAutostartFile(autostartFile),
	).Run()
}

// loadConfig は設定ファイルを読み込む
// パスの指定がない場合は設定ディレクトリから探し、見つからなければ既定値を使う
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.FindConfigFile(config.DefaultDir())
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, errs.NewInternalError("failed to load config").Wrap(err)
	}
	return cfg, nil
}

// newSession は設定に従ってEvaluatorからSessionまでを組み立てる
func newSession(cfg *config.Config, log *logger.Logger) (*console.Session, error) {
	tr := transcript.New()
	ev, err := evaluator.New(tr, log, evaluator.WithHelp(consoleHelp...))
	if err != nil {
		return nil, err
	}
	return console.NewSession(
		ev,
		completer.NewCompleter(ev, log),
		history.New(cfg.HistoryLimit),
		tr,
		console.WithRewriter(console.LiteralRewriter(cfg.Macros)),
		console.WithLogger(log),
	), nil
}

// startup はプリアンブルを評価してから自動実行ファイルの文を評価する
func startup(session *console.Session, preamble []string, autostartFile string, noAutostart bool, log *logger.Logger) {
	session.RunPreamble(preamble)
	if noAutostart {
		return
	}
	session.RunAutostart(loadAutostart(autostartFile, log))
}

// loadAutostart は自動実行ファイルを用意し、評価する文を返す
// 読み込みに失敗しても起動は続ける
func loadAutostart(path string, log *logger.Logger) []string {
	created, err := autostart.EnsureFile(path)
	if err != nil {
		log.Warn().Str("file", path).Err(err).Msg("failed to create autostart file")
	} else if created {
		log.Info().Str("file", path).Msg("created autostart file")
	}

	statements, err := autostart.Load(path)
	if err != nil {
		log.Warn().Str("file", path).Err(err).Msg("failed to load autostart file")
		return nil
	}
	log.Info().Str("file", path).Int("statements", len(statements)).Msg("Executing code from autostart file")
	return statements
}

func printVersion(w io.Writer, check bool) error {
	version.PrintVersion(w)
	if !check {
		return nil
	}
	isLatest, latestVersion, err := version.NewChecker(config.DefaultDir()).IsLatestVersion()
	if err != nil {
		return err
	}
	if !isLatest {
		fmt.Fprintln(w, version.NoteLatestVersion(latestVersion))
	}
	return nil
}

// notifyNewVersion は新しいリリースがあれば通知する
// 確認に失敗しても起動は続ける
func notifyNewVersion(w io.Writer, log *logger.Logger) {
	isLatest, latestVersion, err := version.NewChecker(config.DefaultDir()).IsLatestVersion()
	if err != nil {
		log.Debug().Err(err).Msg("failed to check latest version")
		return
	}
	if !isLatest {
		fmt.Fprintln(w, version.NoteLatestVersion(latestVersion))
	}
}
