package assets

import (
	"github.com/alnah/go-md2html/internal/fileutil"
)

// Resolver dispatches a template request to the embedded or file loader.
// Values that look like paths go to the file loader, names to the embedded one.
type Resolver struct {
	files    TemplateLoader
	embedded *EmbeddedLoader
}

// NewResolver creates a Resolver whose file loader resolves relative paths
// from workDir.
func NewResolver(workDir string) *Resolver {
	return &Resolver{
		files:    NewFileLoader(workDir),
		embedded: NewEmbeddedLoader(),
	}
}

// LoadTemplate loads and validates a template. An empty value selects
// DefaultTemplateName.
func (r *Resolver) LoadTemplate(nameOrPath string) (string, error) {
	if nameOrPath == "" {
		nameOrPath = DefaultTemplateName
	}

	var (
		content string
		err     error
	)
	if fileutil.IsFilePath(nameOrPath) {
		content, err = r.files.LoadTemplate(nameOrPath)
	} else {
		content, err = r.embedded.LoadTemplate(nameOrPath)
	}
	if err != nil {
		return "", err
	}

	if err := ValidateTemplate(nameOrPath, content); err != nil {
		return "", err
	}
	return content, nil
}

// Available returns the names of the built-in templates.
func (r *Resolver) Available() []string {
	return r.embedded.Names()
}

// Compile-time interface check.
var _ TemplateLoader = (*Resolver)(nil)
