package md2html

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/preview"
)

// filePermissions is rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// Converter assembles HTML pages from Markdown text.
// Create with NewConverter. A Converter is safe for concurrent use.
type Converter struct {
	cfg      converterConfig
	template string
	renderer preview.Renderer // nil leaves the preview placeholder untouched
}

// NewConverter creates a Converter with the default template and no preview.
// Returns ErrInvalidTemplate if the template cannot be loaded or lacks its
// placeholder, ErrInvalidPreview for an unknown preview engine.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}

	tpl, err := assets.NewResolver(c.cfg.workDir).LoadTemplate(c.cfg.template)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTemplate, err)
	}
	c.template = tpl

	if c.cfg.preview {
		r, err := preview.New(c.cfg.previewEngine, c.cfg.previewStyle)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPreview, err)
		}
		c.renderer = r
	}

	return c, nil
}

// Render returns the HTML page for markdown.
// The escaped text replaces the markdown placeholder exactly once. The
// preview placeholder is filled only when a preview engine is configured.
func (c *Converter) Render(markdown string) (string, error) {
	escaped := EscapeLiteral(markdown)

	if c.renderer == nil {
		return fillTemplate(c.template, escaped, nil), nil
	}

	html, err := c.renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPreviewRender, err)
	}
	return fillTemplate(c.template, escaped, &html), nil
}

// fillTemplate splices escaped (and previewHTML when non-nil) into tpl.
// Placeholders are located in tpl before any substitution, so inserted
// text that happens to contain a placeholder token is never rewritten.
func fillTemplate(tpl, escaped string, previewHTML *string) string {
	type splice struct {
		at     int
		token  string
		insert string
	}

	splices := []splice{{
		at:     strings.Index(tpl, assets.MarkdownPlaceholder),
		token:  assets.MarkdownPlaceholder,
		insert: escaped,
	}}
	if previewHTML != nil {
		if at := strings.Index(tpl, assets.PreviewPlaceholder); at >= 0 {
			s := splice{at: at, token: assets.PreviewPlaceholder, insert: *previewHTML}
			if s.at < splices[0].at {
				splices = []splice{s, splices[0]}
			} else {
				splices = append(splices, s)
			}
		}
	}

	var b strings.Builder
	b.Grow(len(tpl) + len(escaped))
	pos := 0
	for _, s := range splices {
		if s.at < 0 {
			continue
		}
		b.WriteString(tpl[pos:s.at])
		b.WriteString(s.insert)
		pos = s.at + len(s.token)
	}
	b.WriteString(tpl[pos:])
	return b.String()
}

// ReadInput reads the whole file at path as text. Invalid UTF-8 sequences
// are replaced with U+FFFD so the page is always valid UTF-8.
func ReadInput(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	return strings.ToValidUTF8(string(data), "\uFFFD"), nil
}

// WriteFile creates path with document as content. The file must not exist;
// if it appeared since validation, ErrOutputExists is returned and the file
// is left untouched. On write failure no partial file remains.
func (c *Converter) WriteFile(path, document string) error {
	err := fileutil.WriteNew(fileutil.Resolve(c.cfg.workDir, path), document, filePermissions)
	if err == nil {
		return nil
	}
	if errors.Is(err, os.ErrExist) {
		return fmt.Errorf("%w: %s", ErrOutputExists, path)
	}
	return fmt.Errorf("%w: %w", ErrWriteOutput, err)
}

// Validate checks input and output paths, resolving relative ones from the
// configured working directory.
func (c *Converter) Validate(input, output string) (Paths, error) {
	return validatePaths(c.cfg.workDir, input, output)
}

// Read reads the validated input, resolving it from the working directory.
func (c *Converter) Read(paths Paths) (string, error) {
	return ReadInput(fileutil.Resolve(c.cfg.workDir, paths.Input))
}

// ConvertFile runs the whole conversion: validate, read, render, write.
// Returns the validated paths; Output is the file that was written.
func (c *Converter) ConvertFile(input, output string) (Paths, error) {
	paths, err := c.Validate(input, output)
	if err != nil {
		return Paths{}, err
	}

	markdown, err := c.Read(paths)
	if err != nil {
		return paths, err
	}

	document, err := c.Render(markdown)
	if err != nil {
		return paths, err
	}

	if err := c.WriteFile(paths.Output, document); err != nil {
		return paths, err
	}

	return paths, nil
}
