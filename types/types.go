package types

// SuggestionKind は補完候補の種類を表す。
type SuggestionKind int

const (
	SuggestionKindUnknown   SuggestionKind = iota // 種類が判別できない候補
	SuggestionKindNamespace                       // 名前空間の候補
	SuggestionKindMember                          // オブジェクトのメンバーの候補
	SuggestionKindType                            // コンストラクタ(型)の候補
)

// String は候補の種類を表示用の文字列に変換する
func (k SuggestionKind) String() string {
	switch k {
	case SuggestionKindNamespace:
		return "Namespace"
	case SuggestionKindMember:
		return "Member"
	case SuggestionKindType:
		return "Type"
	default:
		return "Unknown"
	}
}

// Suggestion は補完候補を表す。
// Insertion はカーソル位置に挿入される文字列、Display は一覧に表示される文字列。
type Suggestion struct {
	Insertion string
	Display   string
	Kind      SuggestionKind
}

// Completion はEvaluatorが返す補完候補を表す。
// Text は補完対象の接頭辞に続く残りの部分のみを持つ。
type Completion struct {
	Text string
	Kind SuggestionKind
}

// Segment は入力バッファ中のカーソル位置にあるトークンを表す。
// Start, End はルーン単位のオフセットで、[Start, End) の範囲を示す。
type Segment struct {
	Text  string
	Start int
	End   int
}

// DeclName は宣言名を表す。
type DeclName string
