package repl

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kakkky/jsconsole/errs"
)

var (
	echoStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

var errorPrefixes = []string{
	"[" + string(errs.COMPILE_ERROR) + "]",
	"[" + string(errs.RUNTIME_ERROR) + "]",
	"[" + string(errs.INTERNAL_ERROR) + "]",
	"[" + string(errs.UNKNOWN_ERROR) + "]",
}

// flush は前回表示した位置以降のトランスクリプトの行を表示する
func (r *Repl) flush() {
	transcript := r.session.Transcript()
	for _, line := range transcript.Since(r.printed) {
		fmt.Fprintln(r.out, styleLine(line))
	}
	r.printed = transcript.Len()
}

// styleLine は入力のエコーとエラーの行に色を付ける
func styleLine(line string) string {
	if strings.HasPrefix(line, "> ") {
		return echoStyle.Render(line)
	}
	for _, prefix := range errorPrefixes {
		if strings.HasPrefix(line, prefix) {
			return errorStyle.Render(line)
		}
	}
	return line
}
