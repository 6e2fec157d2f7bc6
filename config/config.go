// Package config は設定ファイルを読み込む。
// 埋め込みの既定値を読み込んだ後、ユーザーの設定ファイルで上書きする。
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

//go:embed default.yml
var defaultConfig []byte

const (
	appDirName        = "jsconsole"
	autostartFileName = "autostart.js"
)

// SupportedConfigNames は設定ディレクトリから探すファイル名（優先順）
var SupportedConfigNames = []string{
	"config.yml",
	"config.yaml",
	"config.toml",
	"config.json",
}

// Config はjsconsoleの設定
type Config struct {
	LogLevel      string            `koanf:"log_level"`
	HistoryLimit  int               `koanf:"history_limit"`
	AutostartFile string            `koanf:"autostart_file"`
	PromptPrefix  string            `koanf:"prompt_prefix"`
	Preamble      []string          `koanf:"preamble"`
	Macros        map[string]string `koanf:"macros"`
	CheckUpdate   bool              `koanf:"check_update"`
}

// Load は既定値に path の設定を重ねて返す
// path が空の場合は既定値のみを返す
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(defaultConfig), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	if path != "" {
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		Preamble: []string{},
		Macros:   make(map[string]string),
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.AutostartFile == "" {
		cfg.AutostartFile = filepath.Join(DefaultDir(), autostartFileName)
	}
	return cfg, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	parser, err := parserFor(path)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	result, err := ValidateWithSchema(path, content)
	if err != nil {
		return err
	}
	if !result.Valid {
		return fmt.Errorf("invalid config %s: %s", path, result)
	}

	if err := k.Load(rawbytes.Provider(content), parser); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// parserFor は拡張子から設定ファイルのパーサーを決める
func parserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
}

// DefaultDir は設定ファイルと自動実行ファイルを置くディレクトリを返す
func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, appDirName)
}

// FindConfigFile は dir から設定ファイルを探す
// 見つからない場合は空文字を返す
func FindConfigFile(dir string) string {
	for _, name := range SupportedConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
