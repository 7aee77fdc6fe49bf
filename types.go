package md2html

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds the settings collected from options.
type converterConfig struct {
	template      string // Template name or path ("" = default)
	workDir       string // Base for relative paths ("" = process working directory)
	preview       bool
	previewEngine string
	previewStyle  string
}

// WithTemplate selects the page template by built-in name ("default",
// "document") or by file path. Paths contain a separator: "./page.html".
func WithTemplate(nameOrPath string) Option {
	return func(c *Converter) {
		c.cfg.template = nameOrPath
	}
}

// WithWorkDir resolves relative input, output and template paths from dir.
func WithWorkDir(dir string) Option {
	return func(c *Converter) {
		c.cfg.workDir = dir
	}
}

// WithPreview fills the template's preview area with Markdown rendered on
// the server. engine is "goldmark" or "gomarkdown" ("" = goldmark); style
// is a chroma style for goldmark code blocks ("" = github).
func WithPreview(engine, style string) Option {
	return func(c *Converter) {
		c.cfg.preview = true
		c.cfg.previewEngine = engine
		c.cfg.previewStyle = style
	}
}
