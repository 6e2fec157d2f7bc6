package declregistry

import (
	"github.com/dop251/goja/ast"
	"github.com/dop251/goja/token"

	"github.com/kakkky/jsconsole/types"
)

// DeclRegistry はReplセッション中に宣言された名前を管理する
// 同名の再宣言は後勝ちで種類を上書きし、宣言の順序は最初に現れた位置を保つ
type DeclRegistry struct {
	decls []Decl
}

// NewRegistry はDeclRegistryのインスタンスを生成する
func NewRegistry() *DeclRegistry {
	return &DeclRegistry{
		decls: []Decl{},
	}
}

// Register はプログラムのトップレベルの文を解析して、宣言された名前を登録する
func (dr *DeclRegistry) Register(program *ast.Program) {
	dr.Add(Collect(program)...)
}

// Add は宣言を登録する
func (dr *DeclRegistry) Add(decls ...Decl) {
	for _, decl := range decls {
		dr.register(decl)
	}
}

// Collect はプログラムのトップレベルで宣言された名前を出現順に返す
// 分割代入のパターンなど識別子以外の束縛は対象外
func Collect(program *ast.Program) []Decl {
	if program == nil {
		return nil
	}
	var decls []Decl
	for _, stmt := range program.Body {
		switch stmtV := stmt.(type) {
		case *ast.VariableStatement:
			decls = appendBindings(decls, stmtV.List, DeclKindVar)
		case *ast.LexicalDeclaration:
			kind := DeclKindLet
			if stmtV.Token == token.CONST {
				kind = DeclKindConst
			}
			decls = appendBindings(decls, stmtV.List, kind)
		case *ast.FunctionDeclaration:
			if stmtV.Function != nil && stmtV.Function.Name != nil {
				decls = append(decls, Decl{Name: types.DeclName(stmtV.Function.Name.Name.String()), Kind: DeclKindFunction})
			}
		case *ast.ClassDeclaration:
			if stmtV.Class != nil && stmtV.Class.Name != nil {
				decls = append(decls, Decl{Name: types.DeclName(stmtV.Class.Name.Name.String()), Kind: DeclKindClass})
			}
		}
	}
	return decls
}

func appendBindings(decls []Decl, bindings []*ast.Binding, kind DeclKind) []Decl {
	for _, binding := range bindings {
		ident, ok := binding.Target.(*ast.Identifier)
		if !ok {
			continue
		}
		decls = append(decls, Decl{Name: types.DeclName(ident.Name.String()), Kind: kind})
	}
	return decls
}

func (dr *DeclRegistry) register(decl Decl) {
	for i, registered := range dr.decls {
		if registered.Name == decl.Name {
			dr.decls[i] = decl
			return
		}
	}
	dr.decls = append(dr.decls, decl)
}

// Decls は登録済みの宣言を返す
func (dr *DeclRegistry) Decls() []Decl {
	decls := make([]Decl, len(dr.decls))
	copy(decls, dr.decls)
	return decls
}

// Lookup は指定された名前の宣言を返す
func (dr *DeclRegistry) Lookup(name types.DeclName) (Decl, bool) {
	for _, decl := range dr.decls {
		if decl.Name == name {
			return decl, true
		}
	}
	return Decl{}, false
}
