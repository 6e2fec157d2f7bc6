package evaluator

import (
	"slices"
	"strings"
	"unicode"

	"github.com/dop251/goja"

	"github.com/kakkky/jsconsole/declregistry"
	"github.com/kakkky/jsconsole/types"
)

// Completions は partial の末尾にある識別子の補完候補を返す
// 候補は接頭辞に続く残りの部分のみを持ち、2つ目の戻り値に接頭辞を返す
// 内部でエラーが発生した場合は空の結果を返す
func (e *Evaluator) Completions(partial string) (completions []types.Completion, prefix string) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Debug().Str("partial", partial).Err(panicError(r)).Msg("completion lookup failed")
			completions, prefix = nil, ""
		}
	}()

	base, prefix, ok := splitTrailingPath(partial)
	if !ok {
		return nil, ""
	}

	var names []string
	kind := types.SuggestionKindMember
	if base == "" {
		names = e.globalNames()
		kind = types.SuggestionKindUnknown
	} else {
		obj := e.resolve(base)
		if obj == nil {
			return nil, ""
		}
		names = propertyNames(obj)
	}

	for _, name := range names {
		if !strings.HasPrefix(name, prefix) || name == prefix || !isIdent(name) {
			continue
		}
		completions = append(completions, types.Completion{
			Text: name[len(prefix):],
			Kind: e.classify(base, name, kind),
		})
	}
	return completions, prefix
}

// splitTrailingPath は入力の末尾にある "a.b.pre" のような式をベース部分と接頭辞に分ける
func splitTrailingPath(partial string) (base, prefix string, ok bool) {
	runes := []rune(partial)
	start := len(runes)
	for start > 0 && isPathRune(runes[start-1]) {
		start--
	}
	expr := string(runes[start:])
	if expr == "" {
		return "", "", false
	}

	dot := strings.LastIndex(expr, ".")
	if dot < 0 {
		if !isIdent(expr) {
			return "", "", false
		}
		return "", expr, true
	}
	base, prefix = expr[:dot], expr[dot+1:]
	if !isIdentPath(base) || (prefix != "" && !isIdent(prefix)) {
		return "", "", false
	}
	return base, prefix, true
}

func isPathRune(r rune) bool {
	return r == '.' || r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// resolve はドット区切りのパスを環境から辿ってオブジェクトを返す
// プリミティブ値はラッパーオブジェクトに変換する
func (e *Evaluator) resolve(path string) *goja.Object {
	parts := strings.Split(path, ".")
	val, err := e.rt.RunString(parts[0])
	if err != nil {
		return nil
	}
	for _, part := range parts[1:] {
		if val == nil || goja.IsUndefined(val) || goja.IsNull(val) {
			return nil
		}
		val = val.ToObject(e.rt).Get(part)
	}
	if val == nil || goja.IsUndefined(val) || goja.IsNull(val) {
		return nil
	}
	return val.ToObject(e.rt)
}

// globalNames はグローバルオブジェクトのプロパティとレジストリにある宣言名を返す
// var と function はグローバルオブジェクトに現れるので、レジストリからはlet/const/classだけを加える
func (e *Evaluator) globalNames() []string {
	names := e.rt.GlobalObject().GetOwnPropertyNames()
	for _, decl := range e.declRegistry.Decls() {
		if decl.IsLexical() {
			names = append(names, string(decl.Name))
		}
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// propertyNames はプロトタイプチェーンを含めたプロパティ名を返す
func propertyNames(obj *goja.Object) []string {
	var names []string
	seen := make(map[*goja.Object]struct{})
	for o := obj; o != nil; o = o.Prototype() {
		if _, ok := seen[o]; ok {
			break
		}
		seen[o] = struct{}{}
		names = append(names, o.GetOwnPropertyNames()...)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// classify はグローバルな名前のうち、クラスや大文字で始まるコンストラクタをTypeに分類する
func (e *Evaluator) classify(base, name string, fallback types.SuggestionKind) types.SuggestionKind {
	if base != "" {
		return fallback
	}
	if decl, ok := e.declRegistry.Lookup(types.DeclName(name)); ok {
		if decl.Kind == declregistry.DeclKindClass {
			return types.SuggestionKindType
		}
		return fallback
	}
	if !unicode.IsUpper([]rune(name)[0]) {
		return fallback
	}
	if _, ok := goja.AssertFunction(safeGet(e.rt.GlobalObject(), name)); ok {
		return types.SuggestionKindType
	}
	return fallback
}
