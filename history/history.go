// Package history は送信されたコマンドの履歴を保持する。
package history

import "strings"

// DefaultLimit は履歴として保持する件数の既定値
const DefaultLimit = 50

// History は件数上限付きの履歴
// 呼び出しカーソルは循環し、どちらの方向にも無限に辿ることができる
type History struct {
	entries  []string
	limit    int
	position int
}

// New はHistoryのインスタンスを生成する
// limit が0以下の場合は DefaultLimit を用いる
func New(limit int) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &History{
		entries: []string{},
		limit:   limit,
	}
}

// Append は履歴に追加する
// 空白のみの入力は無視し、上限を超えた分は古いものから捨てる
func (h *History) Append(entry string) {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return
	}
	h.entries = append(h.entries, entry)
	if over := len(h.entries) - h.limit; over > 0 {
		h.entries = h.entries[over:]
	}
	h.position = 0
}

// Recall はカーソルを direction だけ動かし、その位置の履歴を返す
// 履歴が空の場合は何もせずfalseを返す
func (h *History) Recall(direction int) (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	h.position += direction
	h.position %= len(h.entries)
	if h.position < 0 {
		h.position = len(h.entries) - 1
	}
	return h.entries[h.position], true
}

// Entries は履歴のコピーを古い順に返す
func (h *History) Entries() []string {
	entries := make([]string, len(h.entries))
	copy(entries, h.entries)
	return entries
}

// Len は履歴の件数を返す
func (h *History) Len() int {
	return len(h.entries)
}

// Limit は保持する件数の上限を返す
func (h *History) Limit() int {
	return h.limit
}
