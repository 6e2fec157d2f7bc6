package evaluator

import (
	"github.com/dop251/goja"
	"github.com/dop251/goja/ast"
)

// Unit はコンパイル済みのスニペット
// Evaluatorが一度の評価の間だけ所有する
type Unit struct {
	program *goja.Program
	ast     *ast.Program
}

// Result は評価結果を表す
// 値を持たない場合はVoidとなる
type Result struct {
	value   goja.Value
	display string
}

// Void は値を持たない評価結果
var Void = Result{}

// NewResult は値とその表示用の文字列から評価結果を生成する
func NewResult(value goja.Value, display string) Result {
	return Result{
		value:   value,
		display: display,
	}
}

// IsVoid は値を持たない評価結果かどうかを返す
func (r Result) IsVoid() bool {
	return r.value == nil || goja.IsUndefined(r.value)
}

// IsNull は値がnullかどうかを返す
func (r Result) IsNull() bool {
	return r.value != nil && goja.IsNull(r.value)
}

// String は値の表示用の文字列を返す
func (r Result) String() string {
	return r.display
}
