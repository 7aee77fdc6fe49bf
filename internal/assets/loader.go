package assets

// Placeholder tokens substituted into templates.
const (
	MarkdownPlaceholder = "*****MARKDOWN_CONTENT_TO_REPLACE*****"
	PreviewPlaceholder  = "*****PREVIEW_CONTENT_TO_REPLACE*****"
)

// DefaultTemplateName is the name of the built-in template.
const DefaultTemplateName = "default"

// TemplateLoader defines the contract for loading HTML page templates.
type TemplateLoader interface {
	// LoadTemplate loads a template by name or path.
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)
}
