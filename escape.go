package md2html

import "strings"

// literalEscapes lists every character that would end or corrupt a
// single-quoted script string literal, with its two-character escape.
// All other characters, HTML-significant ones included, pass through.
var literalEscapes = [...]struct {
	char    string
	escaped string
}{
	{`'`, `\'`},
	{`"`, `\"`},
	{`\`, `\\`},
	{"\n", `\n`},
	{"\r", `\r`},
}

// literalReplacer is built once; strings.Replacer is safe for concurrent use.
var literalReplacer = newLiteralReplacer()

func newLiteralReplacer() *strings.Replacer {
	pairs := make([]string, 0, 2*len(literalEscapes))
	for _, e := range literalEscapes {
		pairs = append(pairs, e.char, e.escaped)
	}
	return strings.NewReplacer(pairs...)
}

// EscapeLiteral escapes s for embedding between single quotes in a script.
// Evaluating '<result>' as a JavaScript string yields s again.
func EscapeLiteral(s string) string {
	return literalReplacer.Replace(s)
}
