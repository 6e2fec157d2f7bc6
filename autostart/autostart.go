// Package autostart は起動時に評価する文をファイルから読み込む。
package autostart

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const commentPrefix = "//"

// fileHeader は自動実行ファイルを新規作成したときに書き込むコメント
var fileHeader = []string{
	"// このファイルの各行はコンソールの起動時に上から順に評価される",
	"// 空行と // で始まる行は無視される",
	"// 例: const answer = 42;",
}

// Load は path の各行を評価対象の文として返す
// 前後の空白を取り除き、空行とコメント行は除外する
// ファイルが存在しない場合は空を返す
func Load(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read autostart file: %w", err)
	}
	return Filter(content), nil
}

// Filter は内容を行に分け、評価対象の文だけを残す
// 1行の長さに上限はない
func Filter(content []byte) []string {
	statements := []string{}
	for line := range strings.Lines(string(content)) {
		line = strings.Trim(line, " \t\r\n")
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		statements = append(statements, line)
	}
	return statements
}

// EnsureFile は path が存在しない場合に説明のコメントだけを書いたファイルを作成する
// 作成した場合は true を返す
func EnsureFile(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to stat autostart file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create autostart directory: %w", err)
	}
	content := strings.Join(fileHeader, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("failed to create autostart file: %w", err)
	}
	return true, nil
}
