package evaluator

import (
	"fmt"
	"regexp"
)

var (
	usingDirectivePattern = regexp.MustCompile(`^using\s+([^\s;]+)\s*;?$`)
	identPathPattern      = regexp.MustCompile(`^[A-Za-z_$][\w$]*(?:\.[A-Za-z_$][\w$]*)*$`)
	identPattern          = regexp.MustCompile(`^[A-Za-z_$][\w$]*$`)
)

// parseUsingDirective は "using Math;" のような名前空間の取り込みを解析する
func parseUsingDirective(text string) (string, bool) {
	matches := usingDirectivePattern.FindStringSubmatch(text)
	if matches == nil {
		return "", false
	}
	return matches[1], true
}

// usingSource は名前空間の全プロパティをグローバルに展開するスクリプトを生成する
func usingSource(path string) string {
	return fmt.Sprintf(`(function (ns) {
	if (ns === null || typeof ns !== "object") {
		throw new TypeError(%q);
	}
	for (const key of Object.getOwnPropertyNames(ns)) {
		globalThis[key] = ns[key];
	}
})(%s);`, path+" is not a namespace", path)
}

func isIdentPath(s string) bool {
	return identPathPattern.MatchString(s)
}

func isIdent(s string) bool {
	return identPattern.MatchString(s)
}
