package evaluator

import (
	"slices"
	"strings"

	"github.com/dop251/goja"
)

var builtinHelp = []string{
	"Available helpers:",
	"  echo(...values)     write values to the console",
	"  message(...values)  write values to the application log",
	"  console.log(...)    alias of echo (also info, warn, error, debug)",
	"  help()              show this help",
	"  using <namespace>   copy the members of a namespace into the global scope, e.g. using Math",
}

func (e *Evaluator) installBuiltins() error {
	if err := e.rt.Set("echo", e.echo); err != nil {
		return err
	}
	if err := e.rt.Set("message", e.message); err != nil {
		return err
	}
	if err := e.rt.Set("help", e.help); err != nil {
		return err
	}

	console := e.rt.NewObject()
	for _, name := range []string{"log", "info", "warn", "error", "debug"} {
		if err := console.Set(name, e.echo); err != nil {
			return err
		}
	}
	return e.rt.Set("console", console)
}

func (e *Evaluator) echo(call goja.FunctionCall) goja.Value {
	if e.transcript != nil {
		e.transcript.Append(e.joinArgs(call.Arguments))
	}
	return goja.Undefined()
}

func (e *Evaluator) message(call goja.FunctionCall) goja.Value {
	e.logger.Info().Str("source", "repl").Msg(e.joinArgs(call.Arguments))
	return goja.Undefined()
}

func (e *Evaluator) help(call goja.FunctionCall) goja.Value {
	if e.transcript != nil {
		e.transcript.Append(strings.Join(slices.Concat(builtinHelp, e.helpLines), "\n"))
	}
	return goja.Undefined()
}

// joinArgs は文字列はそのまま、それ以外は表示用の文字列にして空白区切りで連結する
func (e *Evaluator) joinArgs(args []goja.Value) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		if _, ok := arg.(*goja.Symbol); !ok {
			if str, ok := arg.Export().(string); ok {
				parts[i] = str
				continue
			}
		}
		parts[i] = e.display(arg)
		if goja.IsUndefined(arg) {
			parts[i] = "undefined"
		}
	}
	return strings.Join(parts, " ")
}
