package completer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kakkky/jsconsole/types"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name     string
		buffer   string
		cursor   int
		expected types.Segment
	}{
		{
			name:     "whole buffer without delimiters",
			buffer:   "foo.Ba",
			cursor:   6,
			expected: types.Segment{Text: "foo.Ba", Start: 0, End: 6},
		},
		{
			name:     "token after open paren",
			buffer:   "a(b.Ba",
			cursor:   6,
			expected: types.Segment{Text: "b.Ba", Start: 2, End: 6},
		},
		{
			name:     "token between delimiters",
			buffer:   "f(a, Mat)",
			cursor:   8,
			expected: types.Segment{Text: " Mat", Start: 4, End: 8},
		},
		{
			name:     "cursor in the middle of a token",
			buffer:   "x = Math.ab + 1",
			cursor:   8,
			expected: types.Segment{Text: " Math.ab + 1", Start: 3, End: 15},
		},
		{
			name:     "cursor right after a delimiter falls back to buffer end",
			buffer:   "a(b",
			cursor:   2,
			expected: types.Segment{Text: "b", Start: 2, End: 3},
		},
		{
			name:     "trailing delimiter",
			buffer:   "foo(",
			cursor:   4,
			expected: types.Segment{Text: "", Start: 4, End: 4},
		},
		{
			name:     "cursor at zero covers whole buffer",
			buffer:   "a;b",
			cursor:   0,
			expected: types.Segment{Text: "a;b", Start: 0, End: 3},
		},
		{
			name:     "negative cursor is clamped",
			buffer:   "abc",
			cursor:   -5,
			expected: types.Segment{Text: "abc", Start: 0, End: 3},
		},
		{
			name:     "cursor beyond buffer is clamped",
			buffer:   "x|y",
			cursor:   100,
			expected: types.Segment{Text: "y", Start: 2, End: 3},
		},
		{
			name:     "empty buffer",
			buffer:   "",
			cursor:   0,
			expected: types.Segment{Text: "", Start: 0, End: 0},
		},
		{
			name:     "offsets are counted in runes",
			buffer:   "名前=値.le",
			cursor:   7,
			expected: types.Segment{Text: "値.le", Start: 3, End: 7},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segment(tt.buffer, tt.cursor)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Segment() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
