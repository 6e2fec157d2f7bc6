package evaluator

import (
	"slices"

	"github.com/dop251/goja"
)

// maxNamespaceDepth は名前空間として辿るオブジェクトの深さの上限
const maxNamespaceDepth = 3

// Namespaces はグローバルオブジェクトから辿れる、関数ではないオブジェクトの名前をドット区切りで返す
// 例: Math, JSON, console
func (e *Evaluator) Namespaces() (namespaces []string) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Debug().Err(panicError(r)).Msg("namespace enumeration failed")
			namespaces = nil
		}
	}()

	global := e.rt.GlobalObject()
	visited := map[*goja.Object]struct{}{global: {}}
	namespaces = collectNamespaces(global, "", 0, visited)
	slices.Sort(namespaces)
	return namespaces
}

func collectNamespaces(obj *goja.Object, prefix string, depth int, visited map[*goja.Object]struct{}) []string {
	if depth >= maxNamespaceDepth {
		return nil
	}
	var namespaces []string
	for _, name := range obj.GetOwnPropertyNames() {
		if !isIdent(name) {
			continue
		}
		child, ok := safeGet(obj, name).(*goja.Object)
		if !ok || child == nil {
			continue
		}
		if _, ok := goja.AssertFunction(child); ok {
			continue
		}
		if _, ok := visited[child]; ok {
			continue
		}
		visited[child] = struct{}{}

		full := name
		if prefix != "" {
			full = prefix + "." + name
		}
		namespaces = append(namespaces, full)
		namespaces = append(namespaces, collectNamespaces(child, full, depth+1, visited)...)
	}
	return namespaces
}

// safeGet はゲッターが例外を投げた場合にnilを返す
func safeGet(obj *goja.Object, name string) (val goja.Value) {
	defer func() {
		if r := recover(); r != nil {
			val = nil
		}
	}()
	return obj.Get(name)
}
