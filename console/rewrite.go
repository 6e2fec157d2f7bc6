package console

import (
	"cmp"
	"slices"
	"strings"
)

// Rewriter は投入されたテキストを評価前に書き換える
type Rewriter func(text string) string

// ChainRewriters は複数のRewriterを先頭から順に適用するRewriterを返す
func ChainRewriters(rewriters ...Rewriter) Rewriter {
	return func(text string) string {
		for _, rewrite := range rewriters {
			if rewrite == nil {
				continue
			}
			text = rewrite(text)
		}
		return text
	}
}

// LiteralRewriter はキーの文字列を対応する値に置き換えるRewriterを返す
// 重なり合うキーは長いものが優先される
func LiteralRewriter(substitutions map[string]string) Rewriter {
	olds := make([]string, 0, len(substitutions))
	for old := range substitutions {
		if old == "" {
			continue
		}
		olds = append(olds, old)
	}
	slices.SortFunc(olds, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})

	pairs := make([]string, 0, len(olds)*2)
	for _, old := range olds {
		pairs = append(pairs, old, substitutions[old])
	}
	replacer := strings.NewReplacer(pairs...)

	return func(text string) string {
		if len(pairs) == 0 {
			return text
		}
		return replacer.Replace(text)
	}
}
