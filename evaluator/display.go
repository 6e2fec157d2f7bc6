package evaluator

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/dop251/goja"
)

// display は評価結果の表示用の文字列を組み立てる
// 文字列はクォートし、配列やオブジェクトはJSONで表示する
func (e *Evaluator) display(val goja.Value) (s string) {
	defer func() {
		// toString や toJSON が例外を投げた場合
		if r := recover(); r != nil {
			s = "[object]"
		}
	}()

	switch {
	case val == nil || goja.IsUndefined(val):
		return ""
	case goja.IsNull(val):
		return "null"
	}

	if sym, ok := val.(*goja.Symbol); ok {
		return fmt.Sprintf("Symbol(%s)", sym.String())
	}
	if str, ok := val.Export().(string); ok {
		return strconv.Quote(str)
	}
	obj, ok := val.(*goja.Object)
	if !ok {
		return val.String()
	}
	if _, ok := goja.AssertFunction(obj); ok {
		name := obj.Get("name")
		if name == nil || name.String() == "" {
			return "[Function (anonymous)]"
		}
		return fmt.Sprintf("[Function: %s]", name.String())
	}
	if obj.ClassName() == "Error" {
		return obj.String()
	}
	b, err := json.Marshal(obj)
	if err != nil || len(b) == 0 {
		return obj.String()
	}
	return string(b)
}
