// Package evaluator はスニペットをコンパイル・実行し、セッションを通して環境を保持する。
package evaluator

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dop251/goja"
	"github.com/dop251/goja/ast"
	"github.com/dop251/goja/parser"

	"github.com/kakkky/jsconsole/declregistry"
	"github.com/kakkky/jsconsole/errs"
	"github.com/kakkky/jsconsole/logger"
	"github.com/kakkky/jsconsole/transcript"
)

// snippetName はスタックトレースに表示されるスニペットのファイル名
const snippetName = "<repl>"

// Evaluator はgojaのランタイムをラップし、宣言を蓄積した環境を保持する
// コンパイルエラーや実行時の例外はトランスクリプトに書き出し、呼び出し側には返さない
type Evaluator struct {
	rt           *goja.Runtime
	transcript   *transcript.Transcript
	logger       *logger.Logger
	declRegistry *declregistry.DeclRegistry
	globals      []global
	helpLines    []string
}

type global struct {
	name  string
	value any
}

// Option はEvaluatorの生成時の設定
type Option func(*Evaluator)

// WithGlobal はホスト側の値をグローバルな名前で公開する
func WithGlobal(name string, value any) Option {
	return func(e *Evaluator) {
		e.globals = append(e.globals, global{name: name, value: value})
	}
}

// WithHelp はhelp()で表示される行を追加する
func WithHelp(lines ...string) Option {
	return func(e *Evaluator) {
		e.helpLines = append(e.helpLines, lines...)
	}
}

// New はEvaluatorのインスタンスを生成する
func New(tr *transcript.Transcript, log *logger.Logger, opts ...Option) (*Evaluator, error) {
	if log == nil {
		log = logger.Discard()
	}
	rt := goja.New()
	rt.SetFieldNameMapper(goja.UncapFieldNameMapper())

	e := &Evaluator{
		rt:           rt,
		transcript:   tr,
		logger:       log,
		declRegistry: declregistry.NewRegistry(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := e.installBuiltins(); err != nil {
		return nil, errs.NewInternalError("failed to install builtins").Wrap(err)
	}
	for _, g := range e.globals {
		if err := rt.Set(g.name, g.value); err != nil {
			return nil, errs.NewInternalError("failed to set global " + g.name).Wrap(err)
		}
	}
	return e, nil
}

// Compile は現在の環境に対してスニペットをコンパイルする
// 失敗した場合は診断をトランスクリプトに書き出してnilを返す
func (e *Evaluator) Compile(text string) (unit *Unit) {
	defer func() {
		if r := recover(); r != nil {
			e.report(errs.NewInternalError("compiler panicked").Wrap(panicError(r)))
			unit = nil
		}
	}()

	text = strings.TrimSpace(text)
	if path, ok := parseUsingDirective(text); ok {
		if !isIdentPath(path) {
			e.report(errs.NewCompileError("invalid namespace in using directive: " + path))
			return nil
		}
		text = usingSource(path)
	}

	program, err := parser.ParseFile(nil, snippetName, text, 0)
	if err != nil {
		e.report(errs.NewCompileError("").Wrap(err))
		return nil
	}
	compiled, err := goja.CompileAST(program, false)
	if err != nil {
		e.report(errs.NewCompileError("").Wrap(err))
		return nil
	}
	return &Unit{
		program: compiled,
		ast:     program,
	}
}

// Invoke はコンパイル済みのスニペットを実行する
// 実行中の例外は捕捉してトランスクリプトに書き出し、Voidを返す
// 例外が発生するまでに環境に加えられた変更は巻き戻さない
func (e *Evaluator) Invoke(u *Unit) (result Result) {
	if u == nil {
		return Void
	}
	defer func() {
		if r := recover(); r != nil {
			e.report(errs.NewRuntimeError("host panicked").Wrap(panicError(r)))
			e.registerBound(u.ast)
			result = Void
		}
	}()

	val, err := e.rt.RunProgram(u.program)
	if err != nil {
		e.report(errs.NewRuntimeError("").Wrap(describeRunError(err)))
		e.registerBound(u.ast)
		return Void
	}
	e.declRegistry.Register(u.ast)
	if val == nil || goja.IsUndefined(val) {
		return Void
	}
	return NewResult(val, e.display(val))
}

// Evaluate はスニペットをコンパイルし、成功した場合は実行する
func (e *Evaluator) Evaluate(text string) Result {
	unit := e.Compile(text)
	if unit == nil {
		return Void
	}
	return e.Invoke(unit)
}

// registerBound は中断したスニペットの宣言のうち、環境に束縛が作られたものだけを登録する
// 宣言の具現化の段階で失敗した場合は束縛が一つも作られない
// 登録済みの名前の種類は書き換えない
func (e *Evaluator) registerBound(program *ast.Program) {
	globals := e.rt.GlobalObject().GetOwnPropertyNames()
	for _, decl := range declregistry.Collect(program) {
		if _, ok := e.declRegistry.Lookup(decl.Name); ok {
			continue
		}
		if decl.IsLexical() {
			// TDZにある束縛も読み出しに失敗するので除外される
			if _, err := e.rt.RunString(string(decl.Name)); err != nil {
				continue
			}
		} else if !slices.Contains(globals, string(decl.Name)) {
			continue
		}
		e.declRegistry.Add(decl)
	}
}

func (e *Evaluator) report(err error) {
	e.logger.Debug().Err(err).Msg("evaluation failed")
	if e.transcript != nil {
		e.transcript.Append(errs.Describe(err))
	}
}

func describeRunError(err error) error {
	var exception *goja.Exception
	if errors.As(err, &exception) {
		return errors.New(strings.TrimRight(exception.String(), "\n"))
	}
	return err
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}
