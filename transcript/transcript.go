// Package transcript はコンソールに表示される行を保持する。
package transcript

import "strings"

// Transcript は追記専用の表示行の列
// セッション自身が切り詰めることはなく、Clear は呼び出し側からのリセットとしてのみ扱う
type Transcript struct {
	lines []string
}

// New はTranscriptのインスタンスを生成する
func New() *Transcript {
	return &Transcript{
		lines: []string{},
	}
}

// Append は行を追記する
// 改行を含む場合は複数行として追記する
func (t *Transcript) Append(text string) {
	text = strings.TrimSuffix(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	t.lines = append(t.lines, strings.Split(text, "\n")...)
}

// Write は io.Writer として追記する
func (t *Transcript) Write(p []byte) (int, error) {
	t.Append(string(p))
	return len(p), nil
}

// Lines は全行のコピーを返す
func (t *Transcript) Lines() []string {
	lines := make([]string, len(t.lines))
	copy(lines, t.lines)
	return lines
}

// Since は offset 番目以降の行を返す
// Clear で行数が減っていた場合は先頭から返す
func (t *Transcript) Since(offset int) []string {
	if offset < 0 || offset > len(t.lines) {
		offset = 0
	}
	return t.Lines()[offset:]
}

// Len は行数を返す
func (t *Transcript) Len() int {
	return len(t.lines)
}

// Clear は全行を削除する
func (t *Transcript) Clear() {
	t.lines = t.lines[:0]
}

func (t *Transcript) String() string {
	return strings.Join(t.lines, "\n")
}
