package completer

import (
	"slices"

	"github.com/kakkky/jsconsole/types"
)

// 文や引数、演算子の区切りとなる文字
var delimiters = []rune{',', ';', '<', '>', '(', ')', '[', ']', '=', '|', '&'}

// Segment は入力バッファからカーソル位置で編集中のトークンを切り出す
// カーソルの1文字前を起点に前後の区切り文字を探し、その間を返す
// 範囲外のカーソルは [0, len] に丸めるため、どのような入力でもpanicしない
func Segment(buffer string, cursor int) types.Segment {
	runes := []rune(buffer)
	length := len(runes)
	cursor = min(max(cursor, 0), length)

	start, end := 0, length
	if cursor > 0 {
		anchor := cursor - 1
		if i := lastIndexOfDelimiter(runes, anchor); i >= 0 {
			start = i + 1
		}
		if i := indexOfDelimiter(runes, anchor); i >= 0 {
			end = i
		}
	}
	if end < start {
		end = length
	}

	return types.Segment{
		Text:  string(runes[start:end]),
		Start: start,
		End:   end,
	}
}

// from から後方に向かって区切り文字を探す
func lastIndexOfDelimiter(runes []rune, from int) int {
	for i := from; i >= 0; i-- {
		if slices.Contains(delimiters, runes[i]) {
			return i
		}
	}
	return -1
}

// from から前方に向かって区切り文字を探す
func indexOfDelimiter(runes []rune, from int) int {
	for i := from; i < len(runes); i++ {
		if slices.Contains(delimiters, runes[i]) {
			return i
		}
	}
	return -1
}
