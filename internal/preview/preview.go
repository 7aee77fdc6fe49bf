// Package preview renders Markdown to sanitized HTML on the server side.
//
// The rendered fragment fills the preview area of a page template so the
// document is readable before, or without, the client-side conversion.
// Two engines are available: goldmark (GFM, footnotes, chroma highlighting)
// and gomarkdown (CommonMark-ish with common extensions).
package preview

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPreviewEngine indicates an unknown engine name.
var ErrInvalidPreviewEngine = errors.New("invalid preview engine")

// ErrRender indicates the Markdown engine failed.
var ErrRender = errors.New("preview rendering failed")

// Engine names.
const (
	EngineGoldmark   = "goldmark"
	EngineGomarkdown = "gomarkdown"
)

// DefaultStyle is the chroma style used for highlighted code blocks.
const DefaultStyle = "github"

// Renderer converts Markdown to an HTML fragment safe for body context.
type Renderer interface {
	Render(markdown string) (string, error)
}

// Engines returns the accepted engine names.
func Engines() []string {
	return []string{EngineGoldmark, EngineGomarkdown}
}

// New returns the renderer for engine (case-insensitive, empty = goldmark).
// style selects the chroma style for the goldmark engine; empty = DefaultStyle.
func New(engine, style string) (Renderer, error) {
	switch strings.ToLower(engine) {
	case "", EngineGoldmark:
		return NewGoldmarkRenderer(style), nil
	case EngineGomarkdown:
		return NewGomarkdownRenderer(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidPreviewEngine, engine)
	}
}
