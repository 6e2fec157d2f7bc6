package errs

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type ErrType string

const (
	INTERNAL_ERROR ErrType = "INTERNAL ERROR"
	COMPILE_ERROR  ErrType = "COMPILE ERROR"
	RUNTIME_ERROR  ErrType = "RUNTIME ERROR"
	UNKNOWN_ERROR  ErrType = "UNKNOWN ERROR"
)

var errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

// 内部的なエラー
type InternalError struct {
	message string
	wrapped error
}

func NewInternalError(message string) *InternalError {
	return &InternalError{
		message: message,
	}
}

func (e *InternalError) Wrap(err error) error {
	e.wrapped = err
	return e
}

func (e *InternalError) Error() string {
	return joinMessage(e.message, e.wrapped)
}

func (e *InternalError) Unwrap() error {
	return e.wrapped
}

// 入力されたスニペットがコンパイルできなかった場合のエラー
type CompileError struct {
	message string
	wrapped error
}

func NewCompileError(message string) *CompileError {
	return &CompileError{
		message: message,
	}
}

func (e *CompileError) Wrap(err error) error {
	e.wrapped = err
	return e
}

func (e *CompileError) Error() string {
	return joinMessage(e.message, e.wrapped)
}

func (e *CompileError) Unwrap() error {
	return e.wrapped
}

// 評価中のコードが例外を投げた場合のエラー
type RuntimeError struct {
	message string
	wrapped error
}

func NewRuntimeError(message string) *RuntimeError {
	return &RuntimeError{
		message: message,
	}
}

func (e *RuntimeError) Wrap(err error) error {
	e.wrapped = err
	return e
}

func (e *RuntimeError) Error() string {
	return joinMessage(e.message, e.wrapped)
}

func (e *RuntimeError) Unwrap() error {
	return e.wrapped
}

func joinMessage(message string, wrapped error) string {
	switch {
	case wrapped == nil:
		return message
	case message == "":
		return wrapped.Error()
	}
	return message + ": " + wrapped.Error()
}

// TypeOf はエラーの種類を判定する
func TypeOf(err error) ErrType {
	var internalErr *InternalError
	var compileErr *CompileError
	var runtimeErr *RuntimeError
	switch {
	case errors.As(err, &compileErr):
		return COMPILE_ERROR
	case errors.As(err, &runtimeErr):
		return RUNTIME_ERROR
	case errors.As(err, &internalErr):
		return INTERNAL_ERROR
	default:
		return UNKNOWN_ERROR
	}
}

// Describe はトランスクリプトに書き出すための一行表現を返す
func Describe(err error) string {
	return fmt.Sprintf("[%s] %s", TypeOf(err), err.Error())
}

// エラーを処理する関数
func HandleError(err error) {
	fmt.Printf("\n%s\n\n", errStyle.Render(Describe(err)))
}
