package console

import (
	"strings"
	"testing"

	"github.com/dop251/goja"
	"github.com/google/go-cmp/cmp"
	"github.com/kakkky/jsconsole/completer"
	"github.com/kakkky/jsconsole/evaluator"
	"github.com/kakkky/jsconsole/history"
	"github.com/kakkky/jsconsole/transcript"
	"github.com/kakkky/jsconsole/types"
	gomock "go.uber.org/mock/gomock"
)

// 補完候補を固定で返す
type stubSource struct {
	completions []types.Completion
	prefix      string
}

func (s stubSource) Completions(string) ([]types.Completion, string) {
	return s.completions, s.prefix
}

func (s stubSource) Namespaces() []string {
	return nil
}

func newTestSession(ev snippetEvaluator, src stubSource, opts ...Option) (*Session, *transcript.Transcript) {
	tr := transcript.New()
	return NewSession(ev, completer.NewCompleter(src, nil), history.New(history.DefaultLimit), tr, opts...), tr
}

func newRealSession(t *testing.T) (*Session, *transcript.Transcript) {
	t.Helper()
	tr := transcript.New()
	ev, err := evaluator.New(tr, nil)
	if err != nil {
		t.Fatalf("failed to create evaluator: %v", err)
	}
	return NewSession(ev, completer.NewCompleter(ev, nil), history.New(history.DefaultLimit), tr), tr
}

func TestSession_Submit(t *testing.T) {
	tests := []struct {
		name               string
		input              string
		opts               []Option
		setupMocks         func(*MocksnippetEvaluator)
		expectedTranscript []string
		expectedHistory    []string
	}{
		{
			name:  "value result is appended after the echoed input",
			input: "1 + 1",
			setupMocks: func(mockEvaluator *MocksnippetEvaluator) {
				unit := &evaluator.Unit{}
				gomock.InOrder(
					mockEvaluator.EXPECT().Compile("1 + 1").Return(unit).Times(1),
					mockEvaluator.EXPECT().Invoke(unit).Return(evaluator.NewResult(goja.New().ToValue(2), "2")).Times(1),
				)
			},
			expectedTranscript: []string{"> 1 + 1", "2"},
			expectedHistory:    []string{"1 + 1"},
		},
		{
			name:  "void result only echoes the input",
			input: "let x = 1;",
			setupMocks: func(mockEvaluator *MocksnippetEvaluator) {
				unit := &evaluator.Unit{}
				gomock.InOrder(
					mockEvaluator.EXPECT().Compile("let x = 1;").Return(unit).Times(1),
					mockEvaluator.EXPECT().Invoke(unit).Return(evaluator.Void).Times(1),
				)
			},
			expectedTranscript: []string{"> let x = 1;"},
			expectedHistory:    []string{"let x = 1;"},
		},
		{
			name:  "null result is not displayed",
			input: "null",
			setupMocks: func(mockEvaluator *MocksnippetEvaluator) {
				unit := &evaluator.Unit{}
				gomock.InOrder(
					mockEvaluator.EXPECT().Compile("null").Return(unit).Times(1),
					mockEvaluator.EXPECT().Invoke(unit).Return(evaluator.NewResult(goja.Null(), "null")).Times(1),
				)
			},
			expectedTranscript: []string{"> null"},
			expectedHistory:    []string{"null"},
		},
		{
			name:  "compile failure skips invoke",
			input: "let = ;",
			setupMocks: func(mockEvaluator *MocksnippetEvaluator) {
				mockEvaluator.EXPECT().Compile("let = ;").Return(nil).Times(1)
				mockEvaluator.EXPECT().Invoke(gomock.Any()).Times(0)
			},
			expectedTranscript: []string{"> let = ;"},
			expectedHistory:    []string{"let = ;"},
		},
		{
			name:  "input is trimmed",
			input: "  \tx\n ",
			setupMocks: func(mockEvaluator *MocksnippetEvaluator) {
				mockEvaluator.EXPECT().Compile("x").Return(nil).Times(1)
			},
			expectedTranscript: []string{"> x"},
			expectedHistory:    []string{"x"},
		},
		{
			name:  "rewriter runs after the history is recorded",
			input: "print(geti())",
			opts: []Option{
				WithRewriter(LiteralRewriter(map[string]string{"geti()": "getItem()"})),
			},
			setupMocks: func(mockEvaluator *MocksnippetEvaluator) {
				mockEvaluator.EXPECT().Compile("print(getItem())").Return(nil).Times(1)
			},
			expectedTranscript: []string{"> print(getItem())"},
			expectedHistory:    []string{"print(geti())"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockEvaluator := NewMocksnippetEvaluator(ctrl)
			tt.setupMocks(mockEvaluator)

			session, tr := newTestSession(mockEvaluator, stubSource{}, tt.opts...)
			session.Submit(tt.input)

			if diff := cmp.Diff(tt.expectedTranscript, tr.Lines()); diff != "" {
				t.Errorf("transcript mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.expectedHistory, session.History().Entries()); diff != "" {
				t.Errorf("history mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSession_SubmitEmptyIsNoop(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\r\n"} {
		t.Run(strings.ReplaceAll(input, "\n", `\n`), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockEvaluator := NewMocksnippetEvaluator(ctrl)
			mockEvaluator.EXPECT().Compile(gomock.Any()).Times(0)
			mockEvaluator.EXPECT().Invoke(gomock.Any()).Times(0)

			session, tr := newTestSession(mockEvaluator, stubSource{})
			session.Submit(input)

			if tr.Len() != 0 {
				t.Errorf("expected empty transcript, got %v", tr.Lines())
			}
			if session.History().Len() != 0 {
				t.Errorf("expected empty history, got %v", session.History().Entries())
			}
		})
	}
}

func TestSession_SubmitClearsSuggestions(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockEvaluator := NewMocksnippetEvaluator(ctrl)
	mockEvaluator.EXPECT().Compile("Math.ab").Return(nil).Times(1)

	src := stubSource{
		completions: []types.Completion{{Text: "s", Kind: types.SuggestionKindMember}},
		prefix:      "ab",
	}
	session, _ := newTestSession(mockEvaluator, src)
	if got := session.RequestCompletions("Math.ab", 7); len(got) != 1 {
		t.Fatalf("expected 1 suggestion, got %v", got)
	}

	session.Submit("Math.ab")
	if _, _, ok := session.AcceptSuggestion(0); ok {
		t.Errorf("expected suggestions to be cleared after submit")
	}
}

func TestSession_FaultIsolation(t *testing.T) {
	session, tr := newRealSession(t)

	session.Submit("let x = 41;")
	session.Submit("throw new Error('boom')")
	session.Submit("x + 1")

	lines := tr.Lines()
	if got := lines[len(lines)-1]; got != "42" {
		t.Errorf("expected the session to keep x, got %q", got)
	}

	var fault bool
	for _, line := range lines {
		if strings.Contains(line, "boom") && !strings.HasPrefix(line, echoPrefix) {
			fault = true
		}
	}
	if !fault {
		t.Errorf("expected fault text in transcript, got %v", lines)
	}
}

func TestSession_FailureDiffersFromVoid(t *testing.T) {
	session, tr := newRealSession(t)

	session.Submit("let ok = 1;")
	voidLines := tr.Len()
	session.Submit("let = ;")
	failedLines := tr.Len() - voidLines

	if voidLines != 1 {
		t.Errorf("expected a void evaluation to only echo the input, got %v", tr.Lines())
	}
	if failedLines <= 1 {
		t.Errorf("expected a failed evaluation to append more than the echo, got %v", tr.Lines())
	}
}

func TestSession_RecallHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockEvaluator := NewMocksnippetEvaluator(ctrl)
	mockEvaluator.EXPECT().Compile(gomock.Any()).Return(nil).AnyTimes()

	session, _ := newTestSession(mockEvaluator, stubSource{})
	for _, input := range []string{"a", "b", "c"} {
		session.Submit(input)
	}

	got := []string{
		session.RecallHistory(1),
		session.RecallHistory(1),
		session.RecallHistory(1),
		session.RecallHistory(-1),
	}
	expected := []string{"b", "c", "a", "c"}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("RecallHistory() mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_RecallHistoryWithEmptyHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockEvaluator := NewMocksnippetEvaluator(ctrl)

	session, _ := newTestSession(mockEvaluator, stubSource{})
	session.RequestCompletions("half typed", 4)

	if got := session.RecallHistory(-1); got != "half typed" {
		t.Errorf("expected input to stay unchanged, got %q", got)
	}
	if session.History().Len() != 0 {
		t.Errorf("expected history to stay empty")
	}
}

func TestSession_AcceptSuggestion(t *testing.T) {
	tests := []struct {
		name           string
		buffer         string
		cursor         int
		index          int
		expectedBuffer string
		expectedCursor int
		expectedOK     bool
	}{
		{
			name:           "insert at the end of the buffer",
			buffer:         "x = Math.ab",
			cursor:         11,
			index:          0,
			expectedBuffer: "x = Math.abs",
			expectedCursor: 12,
			expectedOK:     true,
		},
		{
			name:           "insert in the middle of the buffer",
			buffer:         "Math.ab + 1",
			cursor:         7,
			index:          0,
			expectedBuffer: "Math.abs + 1",
			expectedCursor: 8,
			expectedOK:     true,
		},
		{
			name:           "second suggestion",
			buffer:         "Math.a",
			cursor:         6,
			index:          1,
			expectedBuffer: "Math.acos",
			expectedCursor: 9,
			expectedOK:     true,
		},
		{
			name:           "out of range keeps the buffer",
			buffer:         "Math.a",
			cursor:         6,
			index:          5,
			expectedBuffer: "Math.a",
			expectedCursor: 6,
			expectedOK:     false,
		},
		{
			name:           "negative index keeps the buffer",
			buffer:         "Math.a",
			cursor:         6,
			index:          -1,
			expectedBuffer: "Math.a",
			expectedCursor: 6,
			expectedOK:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockEvaluator := NewMocksnippetEvaluator(ctrl)

			src := stubSource{
				completions: []types.Completion{
					{Text: "bs", Kind: types.SuggestionKindMember},
					{Text: "cos", Kind: types.SuggestionKindMember},
				},
				prefix: "a",
			}
			if strings.HasSuffix(tt.buffer[:tt.cursor], "ab") {
				src.completions = []types.Completion{{Text: "s", Kind: types.SuggestionKindMember}}
				src.prefix = "ab"
			}

			session, _ := newTestSession(mockEvaluator, src)
			session.RequestCompletions(tt.buffer, tt.cursor)

			buffer, cursor, ok := session.AcceptSuggestion(tt.index)
			if buffer != tt.expectedBuffer || cursor != tt.expectedCursor || ok != tt.expectedOK {
				t.Errorf("AcceptSuggestion() = (%q, %d, %v), want (%q, %d, %v)",
					buffer, cursor, ok, tt.expectedBuffer, tt.expectedCursor, tt.expectedOK)
			}
		})
	}
}

func TestSession_ShowHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockEvaluator := NewMocksnippetEvaluator(ctrl)
	mockEvaluator.EXPECT().Compile(gomock.Any()).Return(nil).AnyTimes()

	session, tr := newTestSession(mockEvaluator, stubSource{})
	session.Submit("a")
	session.Submit("b")
	session.ClearTranscript()
	session.ShowHistory()

	expected := []string{historyHeader, "a", "b"}
	if diff := cmp.Diff(expected, tr.Lines()); diff != "" {
		t.Errorf("ShowHistory() mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_ClearTranscriptKeepsEnvironment(t *testing.T) {
	session, tr := newRealSession(t)

	session.Submit("const greeting = 'hi';")
	session.ClearTranscript()
	if tr.Len() != 0 {
		t.Fatalf("expected empty transcript, got %v", tr.Lines())
	}

	session.Submit("greeting")
	expected := []string{"> greeting", `"hi"`}
	if diff := cmp.Diff(expected, tr.Lines()); diff != "" {
		t.Errorf("transcript mismatch (-want +got):\n%s", diff)
	}
}
