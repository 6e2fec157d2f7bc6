package console

import (
	"strings"
	"testing"

	"github.com/kakkky/jsconsole/evaluator"
	gomock "go.uber.org/mock/gomock"
)

func TestSession_RunAutostart(t *testing.T) {
	session, tr := newRealSession(t)

	session.RunAutostart([]string{
		"let x = 1;",
		"throw new Error();",
		"let y = x + 1;",
	})
	lines := tr.Lines()
	if len(lines) < 2 || lines[0] != autostartHeader {
		t.Fatalf("expected autostart header followed by the failure, got %v", lines)
	}
	if !strings.Contains(strings.Join(lines[1:], "\n"), "Error") {
		t.Errorf("expected the failure of the second statement to be recorded, got %v", lines)
	}

	session.Submit("y")
	lines = tr.Lines()
	if got := lines[len(lines)-1]; got != "2" {
		t.Errorf("expected third statement to run using x, got %q", got)
	}
	// 自動実行した文は履歴に残らない
	if entries := session.History().Entries(); len(entries) != 1 {
		t.Errorf("expected only the submitted input in history, got %v", entries)
	}
}

func TestSession_RunAutostartEvaluatesInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockEvaluator := NewMocksnippetEvaluator(ctrl)
	first, third := &evaluator.Unit{}, &evaluator.Unit{}
	gomock.InOrder(
		mockEvaluator.EXPECT().Compile("let x = 1;").Return(first).Times(1),
		mockEvaluator.EXPECT().Invoke(first).Return(evaluator.Void).Times(1),
		mockEvaluator.EXPECT().Compile("let = ;").Return(nil).Times(1),
		mockEvaluator.EXPECT().Compile("let y = x + 1;").Return(third).Times(1),
		mockEvaluator.EXPECT().Invoke(third).Return(evaluator.Void).Times(1),
	)

	session, tr := newTestSession(mockEvaluator, stubSource{})
	session.RunAutostart([]string{"let x = 1;", "let = ;", "let y = x + 1;"})

	if got := tr.Lines(); len(got) != 1 || got[0] != autostartHeader {
		t.Errorf("expected only the autostart header, got %v", got)
	}
}

func TestSession_RunPreamble(t *testing.T) {
	session, tr := newRealSession(t)

	session.RunPreamble([]string{"let base = 10;", "echo(base)"})
	if got := tr.Lines(); len(got) != 1 || got[0] != "10" {
		t.Errorf("expected only the preamble output without a header, got %v", got)
	}

	session.RunAutostart([]string{"base + 1"})
	if got := tr.Lines(); len(got) != 3 || got[1] != autostartHeader || got[2] != "11" {
		t.Errorf("expected autostart header after the preamble output, got %v", got)
	}
	if entries := session.History().Entries(); len(entries) != 0 {
		t.Errorf("expected empty history, got %v", entries)
	}
}

func TestSession_RunAutostartWithoutStatements(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockEvaluator := NewMocksnippetEvaluator(ctrl)

	session, tr := newTestSession(mockEvaluator, stubSource{})
	session.RunAutostart(nil)

	if tr.Len() != 0 {
		t.Errorf("expected empty transcript, got %v", tr.Lines())
	}
}
