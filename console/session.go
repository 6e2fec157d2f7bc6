// Package console は入力の投入、補完、履歴の呼び出しを一つのセッションとして束ねる。
// 描画や入力ループは持たず、ホスト側がイベントとして各メソッドを呼び出す。
package console

import (
	"strings"

	"github.com/kakkky/jsconsole/completer"
	"github.com/kakkky/jsconsole/evaluator"
	"github.com/kakkky/jsconsole/history"
	"github.com/kakkky/jsconsole/logger"
	"github.com/kakkky/jsconsole/transcript"
	"github.com/kakkky/jsconsole/types"
)

//go:generate mockgen -package=console -source=./session.go -destination=./evaluator_mock.go
type snippetEvaluator interface {
	Compile(text string) *evaluator.Unit
	Invoke(unit *evaluator.Unit) evaluator.Result
}

const (
	echoPrefix    = "> "
	historyHeader = "# History of read commands:"
)

// Session はコンソールの状態を保持する
// 呼び出し元は常に一つで、一度に一つの操作しか実行されない前提
type Session struct {
	evaluator  snippetEvaluator
	completer  *completer.Completer
	history    *history.History
	transcript *transcript.Transcript
	logger     *logger.Logger
	rewriter   Rewriter

	// ホストから最後に受け取った入力バッファとカーソル位置
	input  string
	cursor int
}

// Option はSessionの生成時の設定
type Option func(*Session)

// WithRewriter は投入されたテキストを評価前に書き換えるフックを設定する
func WithRewriter(rewriter Rewriter) Option {
	return func(s *Session) {
		s.rewriter = rewriter
	}
}

// WithLogger はロガーを設定する
func WithLogger(log *logger.Logger) Option {
	return func(s *Session) {
		s.logger = log
	}
}

// NewSession はSessionのインスタンスを生成する
func NewSession(ev snippetEvaluator, comp *completer.Completer, hist *history.History, tr *transcript.Transcript, opts ...Option) *Session {
	s := &Session{
		evaluator:  ev,
		completer:  comp,
		history:    hist,
		transcript: tr,
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit は入力を一つ評価する
// 空白のみの入力は何もしない
func (s *Session) Submit(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	s.history.Append(text)
	if s.rewriter != nil {
		text = s.rewriter(text)
	}

	s.transcript.Append(echoPrefix + text)
	s.evaluate(text)

	s.input, s.cursor = "", 0
	s.completer.Clear()
}

// RequestCompletions は現在の入力とカーソル位置から補完候補を返す
func (s *Session) RequestCompletions(text string, cursor int) []types.Suggestion {
	s.input, s.cursor = text, cursor
	return s.completer.Update(text, cursor)
}

// RecallHistory は履歴を direction だけ移動し、その項目を新しい入力として返す
// 履歴が空の場合は現在の入力をそのまま返す
func (s *Session) RecallHistory(direction int) string {
	entry, ok := s.history.Recall(direction)
	if !ok {
		return s.input
	}
	s.input, s.cursor = entry, len([]rune(entry))
	s.completer.Clear()
	return entry
}

// AcceptSuggestion は i 番目の候補の挿入テキストをカーソル位置に差し込んだ入力を返す
// 候補が存在しない場合は ok が false になり、入力は変更しない
func (s *Session) AcceptSuggestion(i int) (buffer string, cursor int, ok bool) {
	suggestions := s.completer.Suggestions()
	if i < 0 || i >= len(suggestions) {
		return s.input, s.cursor, false
	}

	runes := []rune(s.input)
	at := min(max(s.cursor, 0), len(runes))
	insertion := []rune(suggestions[i].Insertion)

	spliced := make([]rune, 0, len(runes)+len(insertion))
	spliced = append(spliced, runes[:at]...)
	spliced = append(spliced, insertion...)
	spliced = append(spliced, runes[at:]...)

	s.input, s.cursor = string(spliced), at+len(insertion)
	s.completer.Clear()
	return s.input, s.cursor, true
}

// ShowHistory は履歴の一覧をトランスクリプトに書き出す
func (s *Session) ShowHistory() {
	s.transcript.Append(historyHeader)
	for _, entry := range s.history.Entries() {
		s.transcript.Append(entry)
	}
}

// ClearTranscript はトランスクリプトを空にする
func (s *Session) ClearTranscript() {
	s.transcript.Clear()
}

// Transcript はセッションのトランスクリプトを返す
func (s *Session) Transcript() *transcript.Transcript {
	return s.transcript
}

// History はセッションの履歴を返す
func (s *Session) History() *history.History {
	return s.history
}

// evaluate はコンパイルに成功した場合だけ実行し、値があれば表示形式を書き出す
// 失敗の内容はEvaluatorがトランスクリプトに書き出す
func (s *Session) evaluate(text string) {
	unit := s.evaluator.Compile(text)
	if unit == nil {
		return
	}
	result := s.evaluator.Invoke(unit)
	if result.IsVoid() || result.IsNull() {
		return
	}
	s.transcript.Append(result.String())
}
