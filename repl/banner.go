package repl

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/kakkky/jsconsole/version"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	hintStyle  = lipgloss.NewStyle().Faint(true)
)

func printBanner(w io.Writer) {
	fmt.Fprintln(w, titleStyle.Render("jsconsole "+version.VERSION))
	fmt.Fprintln(w, hintStyle.Render("help() for builtins, "+cmdHistory+" "+cmdClear+" "+cmdAutostart+" "+cmdQuit+" for console commands"))
	fmt.Fprintln(w, hintStyle.Render("PageUp/PageDown to recall history, Ctrl+C to exit"))
}
