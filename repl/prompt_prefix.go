package repl

import (
	"bytes"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/kakkky/jsconsole/version"
)

const defaultPromptPrefix = "js> "

// promptPrefix はプロンプトをテンプレートとして描画する
// 例: "{{ .Count | add1 }} js> "
type promptPrefix struct {
	raw  string
	tmpl *template.Template
}

type promptData struct {
	Count   int
	Limit   int
	Version string
}

// newPromptPrefix はテンプレートを解釈する
// 解釈できない場合は文字列をそのまま使う
func newPromptPrefix(text string) *promptPrefix {
	tmpl, err := template.New("prompt").Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		tmpl = nil
	}
	return &promptPrefix{
		raw:  text,
		tmpl: tmpl,
	}
}

// render は履歴の件数と上限を埋め込んだプロンプトを返す
func (p *promptPrefix) render(count, limit int) string {
	if p.tmpl == nil {
		return p.raw
	}
	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, promptData{Count: count, Limit: limit, Version: version.VERSION}); err != nil {
		return p.raw
	}
	return buf.String()
}
