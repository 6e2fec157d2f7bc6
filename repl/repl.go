// Package repl はgo-promptを使った端末上のホストとして Session を駆動する。
package repl

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/kakkky/go-prompt"

	"github.com/kakkky/jsconsole/autostart"
	"github.com/kakkky/jsconsole/console"
	"github.com/kakkky/jsconsole/errs"
	"github.com/kakkky/jsconsole/logger"
	"github.com/kakkky/jsconsole/types"
)

// コンソールコマンド
const (
	cmdHistory   = ":history"
	cmdClear     = ":clear"
	cmdAutostart = ":autostart"
	cmdQuit      = ":quit"
)

// go-promptが置き換える単語の区切り
// 補完のセグメントの区切りに空白を加えたもの
const wordSeparator = ",;<>()[]=|& \t"

// Repl は入力ループを持ち、入力をSessionに渡してトランスクリプトの新しい行を表示する
type Repl struct {
	session       *console.Session
	out           io.Writer
	logger        *logger.Logger
	prefix        *promptPrefix
	autostartFile string
	printed       int
	exit          func(code int)
}

// Option はReplの生成時の設定
type Option func(*Repl)

// WithOutput はトランスクリプトの出力先を設定する
func WithOutput(w io.Writer) Option {
	return func(r *Repl) {
		r.out = w
	}
}

// WithLogger はロガーを設定する
func WithLogger(log *logger.Logger) Option {
	return func(r *Repl) {
		r.logger = log
	}
}

// WithPromptPrefix はプロンプトのテンプレートを設定する
func WithPromptPrefix(text string) Option {
	return func(r *Repl) {
		r.prefix = newPromptPrefix(text)
	}
}

// WithAutostartFile は :autostart で読み込むファイルを設定する
func WithAutostartFile(path string) Option {
	return func(r *Repl) {
		r.autostartFile = path
	}
}

// NewRepl はReplのインスタンスを生成する
func NewRepl(session *console.Session, opts ...Option) *Repl {
	r := &Repl{
		session: session,
		out:     os.Stdout,
		logger:  logger.Discard(),
		prefix:  newPromptPrefix(defaultPromptPrefix),
		exit:    os.Exit,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run はバナーを表示し、入力ループを開始する
func (r *Repl) Run() error {
	printBanner(r.out)
	r.flush()

	pt := prompt.New(
		r.execute,
		r.complete,
		prompt.OptionTitle("jsconsole"),
		prompt.OptionLivePrefix(r.livePrefix),
		prompt.OptionCompletionWordSeparator(wordSeparator),
		prompt.OptionAddKeyBind(r.keyBinds()...),
	)
	pt.Run()
	return nil
}

// execute は入力を一つ処理し、トランスクリプトに追加された行を表示する
func (r *Repl) execute(input string) {
	defer func() {
		if rec := recover(); rec != nil {
			errs.HandleError(errs.NewInternalError(fmt.Sprintf("recovered from panic: %v", rec)))
		}
	}()

	switch strings.TrimSpace(input) {
	case cmdHistory:
		r.session.ShowHistory()
	case cmdClear:
		r.session.ClearTranscript()
		r.printed = 0
	case cmdAutostart:
		r.runAutostart()
	case cmdQuit:
		fmt.Fprintln(r.out, "Bye")
		r.exit(0)
		return
	default:
		r.session.Submit(input)
	}
	r.flush()
}

func (r *Repl) runAutostart() {
	if r.autostartFile == "" {
		return
	}
	statements, err := autostart.Load(r.autostartFile)
	if err != nil {
		r.logger.Warn().Str("file", r.autostartFile).Err(err).Msg("failed to load autostart file")
		return
	}
	r.session.RunAutostart(statements)
}

// complete は編集中の入力の補完候補をgo-promptの形式で返す
func (r *Repl) complete(d prompt.Document) []prompt.Suggest {
	if strings.HasPrefix(strings.TrimSpace(d.Text), ":") {
		return []prompt.Suggest{}
	}
	cursor := utf8.RuneCountInString(d.TextBeforeCursor())
	suggestions := r.session.RequestCompletions(d.Text, cursor)
	return toPromptSuggests(suggestions, d.GetWordBeforeCursorUntilSeparator(wordSeparator))
}

// toPromptSuggests は候補を変換する
// go-promptはカーソル直前の単語を Text で置き換えるため、単語に挿入テキストを連結する
func toPromptSuggests(suggestions []types.Suggestion, word string) []prompt.Suggest {
	suggests := make([]prompt.Suggest, 0, len(suggestions))
	for _, suggestion := range suggestions {
		suggests = append(suggests, prompt.Suggest{
			Text:        word + suggestion.Insertion,
			DisplayText: suggestion.Display,
			Description: suggestion.Kind.String(),
		})
	}
	return suggests
}

func (r *Repl) livePrefix() (string, bool) {
	h := r.session.History()
	return r.prefix.render(h.Len(), h.Limit()), true
}

func (r *Repl) keyBinds() []prompt.KeyBind {
	return []prompt.KeyBind{
		{
			Key: prompt.ControlC,
			Fn: func(buf *prompt.Buffer) {
				fmt.Fprintln(r.out, "\nExit on Ctrl+C")
				r.exit(0)
			},
		},
		{
			Key: prompt.PageUp,
			Fn: func(buf *prompt.Buffer) {
				replaceBuffer(buf, r.session.RecallHistory(-1))
			},
		},
		{
			Key: prompt.PageDown,
			Fn: func(buf *prompt.Buffer) {
				replaceBuffer(buf, r.session.RecallHistory(1))
			},
		},
	}
}

// replaceBuffer は入力バッファ全体を text に置き換え、カーソルを末尾に移動する
func replaceBuffer(buf *prompt.Buffer, text string) {
	doc := buf.Document()
	buf.Delete(utf8.RuneCountInString(doc.TextAfterCursor()))
	buf.DeleteBeforeCursor(utf8.RuneCountInString(doc.TextBeforeCursor()))
	buf.InsertText(text, false, true)
}
