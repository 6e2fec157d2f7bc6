package declregistry

import "github.com/kakkky/jsconsole/types"

// Decl はReplセッション内で宣言されたトップレベルの名前の情報を表す
type Decl struct {
	Name types.DeclName
	Kind DeclKind
}

// DeclKind は宣言の種類
type DeclKind int

const (
	DeclKindVar      DeclKind = iota // var
	DeclKindLet                      // let
	DeclKindConst                    // const
	DeclKindFunction                 // function
	DeclKindClass                    // class
)

// IsLexical はlet/const/classのようにグローバルオブジェクトに現れない宣言かどうかを返す
func (d Decl) IsLexical() bool {
	switch d.Kind {
	case DeclKindLet, DeclKindConst, DeclKindClass:
		return true
	}
	return false
}
