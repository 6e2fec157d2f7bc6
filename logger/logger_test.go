package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected string
	}{
		{name: "debug level", level: "debug", expected: "debug"},
		{name: "warn level", level: "warn", expected: "warning"},
		{name: "uppercase level", level: "DEBUG", expected: "debug"},
		{name: "invalid level defaults to info", level: "invalid", expected: "info"},
		{name: "empty level defaults to info", level: "", expected: "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.level, &bytes.Buffer{})
			assert.NotNil(t, l)
			assert.Equal(t, tt.expected, l.Level())
		})
	}
}

func TestEntry_Msg(t *testing.T) {
	buf := &bytes.Buffer{}
	l := New("info", buf)

	l.Debug().Str("segment", "Ma").Msg("hidden")
	assert.Empty(t, buf.String())

	l.Info().Str("file", "autostart.js").Int("lines", 3).Bool("ok", true).Msg("executing autostart")
	out := buf.String()
	assert.Contains(t, out, "executing autostart")
	assert.Contains(t, out, "file=autostart.js")
	assert.Contains(t, out, "lines=3")
	assert.Contains(t, out, "ok=true")

	buf.Reset()
	l.Error().Err(errors.New("boom")).Msg("failed")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestLogger_SetLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	l := New("warn", buf)

	l.Info().Msg("before")
	assert.Empty(t, buf.String())

	l.SetLevel("debug")
	l.Debug().Msg("after")
	assert.Contains(t, buf.String(), "after")

	l.SetLevel("not-a-level")
	assert.Equal(t, "debug", l.Level())
}

func TestDiscard(t *testing.T) {
	l := Discard()
	assert.NotPanics(t, func() {
		l.Error().Err(errors.New("boom")).Msg("ignored")
	})
}
