package preview

import (
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

// GomarkdownRenderer renders Markdown with gomarkdown.
type GomarkdownRenderer struct {
	policy *bluemonday.Policy
}

// NewGomarkdownRenderer creates a GomarkdownRenderer.
func NewGomarkdownRenderer() *GomarkdownRenderer {
	return &GomarkdownRenderer{policy: newPolicy()}
}

// Render converts markdown to a sanitized HTML fragment.
// gomarkdown parsers keep per-document state, so one is built per call.
func (g *GomarkdownRenderer) Render(md string) (string, error) {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse([]byte(md))

	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	out := markdown.Render(doc, renderer)

	return g.policy.Sanitize(string(out)), nil
}

// Compile-time interface check.
var _ Renderer = (*GomarkdownRenderer)(nil)
