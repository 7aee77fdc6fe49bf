package preview

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// GoldmarkRenderer renders Markdown with goldmark and chroma.
// Highlighted code uses CSS classes; the matching stylesheet is appended
// after sanitization.
type GoldmarkRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	css    string
}

// NewGoldmarkRenderer creates a GoldmarkRenderer with GFM extensions and
// syntax highlighting in the given chroma style. Unknown styles fall back
// to chroma's fallback style.
func NewGoldmarkRenderer(style string) *GoldmarkRenderer {
	if style == "" {
		style = DefaultStyle
	}
	chromaStyle := styles.Get(style)

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithStyle(chromaStyle.Name),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)

	var css bytes.Buffer
	if err := chromahtml.New(chromahtml.WithClasses(true)).WriteCSS(&css, chromaStyle); err != nil {
		css.Reset()
	}

	return &GoldmarkRenderer{md: md, policy: newPolicy(), css: css.String()}
}

// Render converts markdown to a sanitized HTML fragment.
func (g *GoldmarkRenderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := g.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}

	out := g.policy.Sanitize(buf.String())
	if g.css != "" {
		out += "\n<style>\n" + g.css + "</style>\n"
	}
	return out, nil
}

// Compile-time interface check.
var _ Renderer = (*GoldmarkRenderer)(nil)
