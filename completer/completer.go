package completer

import (
	"fmt"
	"strings"

	"github.com/kakkky/jsconsole/logger"
	"github.com/kakkky/jsconsole/types"
)

//go:generate mockgen -package=completer -source=./completer.go -destination=./completion_source_mock.go
type completionSource interface {
	Completions(partial string) ([]types.Completion, string)
	Namespaces() []string
}

// Completer は補完エンジンを担う
// 編集中のセグメントが前回と変わったときだけ候補を計算し直す
type Completer struct {
	source      completionSource
	logger      *logger.Logger
	namespaces  *namespaceIndex
	prevSegment string
	suggestions []types.Suggestion
}

// NewCompleter はCompleterのインスタンスを生成する
func NewCompleter(source completionSource, log *logger.Logger) *Completer {
	if log == nil {
		log = logger.Discard()
	}
	return &Completer{
		source:      source,
		logger:      log,
		namespaces:  newNamespaceIndex(source, log),
		suggestions: []types.Suggestion{},
	}
}

// Update は入力バッファとカーソル位置から補完候補を更新して返す
func (c *Completer) Update(buffer string, cursor int) []types.Suggestion {
	if buffer == "" {
		c.Clear()
		c.prevSegment = ""
		return c.Suggestions()
	}

	segment := Segment(buffer, cursor)
	if segment.Text != c.prevSegment && segment.Text != "" {
		c.recompute(segment.Text)
	}
	c.prevSegment = segment.Text
	return c.Suggestions()
}

// Suggestions は現在の補完候補のコピーを返す
func (c *Completer) Suggestions() []types.Suggestion {
	suggestions := make([]types.Suggestion, len(c.suggestions))
	copy(suggestions, c.suggestions)
	return suggestions
}

// Clear は補完候補を空にする
func (c *Completer) Clear() {
	c.suggestions = c.suggestions[:0]
}

// recompute はEvaluatorからの候補と名前空間の候補をこの順に連結する
// 計算中に発生したpanicは握りつぶし、候補を空にする
func (c *Completer) recompute(input string) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Debug().Str("segment", input).Err(fmt.Errorf("%v", r)).Msg("failed to compute suggestions")
			c.Clear()
		}
	}()

	suggestions := make([]types.Suggestion, 0)

	completions, prefix := c.source.Completions(input)
	if prefix == "" {
		prefix = strings.TrimSpace(input)
	}
	for _, completion := range completions {
		if completion.Text == "" {
			continue
		}
		suggestions = append(suggestions, newSuggestion(completion.Text, prefix+completion.Text, completion.Kind))
	}

	suggestions = append(suggestions, c.findNamespaceSuggestions(input)...)
	c.suggestions = suggestions
}
