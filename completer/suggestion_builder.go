package completer

import (
	"slices"
	"strings"

	"github.com/kakkky/jsconsole/logger"
	"github.com/kakkky/jsconsole/types"
)

const usingKeyword = "using"

// namespaceIndex は既知の名前空間を最初に参照されたときに一度だけ列挙し、以降はキャッシュする
type namespaceIndex struct {
	source completionSource
	logger *logger.Logger
	names  []string
	loaded bool
}

func newNamespaceIndex(source completionSource, log *logger.Logger) *namespaceIndex {
	return &namespaceIndex{
		source: source,
		logger: log,
	}
}

func (ni *namespaceIndex) all() []string {
	if !ni.loaded {
		ni.names = ni.source.Namespaces()
		ni.loaded = true
		ni.logger.Debug().Int("count", len(ni.names)).Msg("found namespaces")
	}
	return ni.names
}

// findNamespaceSuggestions は入力を接頭辞とする名前空間の候補を表示名の昇順で返す
// 先頭の "using" は取り除き、入力と完全に一致する名前空間は含めない
func (c *Completer) findNamespaceSuggestions(input string) []types.Suggestion {
	text := strings.TrimSpace(input)
	if strings.HasPrefix(text, usingKeyword) {
		text = strings.TrimSpace(strings.TrimPrefix(text, usingKeyword))
	}

	matches := make([]string, 0)
	for _, namespace := range c.namespaces.all() {
		if strings.HasPrefix(namespace, text) && len(namespace) > len(text) {
			matches = append(matches, namespace)
		}
	}
	slices.Sort(matches)

	suggestions := make([]types.Suggestion, 0, len(matches))
	for _, namespace := range matches {
		suggestions = append(suggestions, newSuggestion(namespace[len(text):], namespace, types.SuggestionKindNamespace))
	}
	return suggestions
}

func newSuggestion(insertion, display string, kind types.SuggestionKind) types.Suggestion {
	return types.Suggestion{
		Insertion: insertion,
		Display:   display,
		Kind:      kind,
	}
}
