// Package assets provides the HTML page templates that receive the escaped
// Markdown text.
//
// # Loader Architecture
//
// The package implements a small layered loading system:
//
//	TemplateLoader (interface)
//	    │
//	    ├── EmbeddedLoader  - loads from go:embed filesystem (built-in templates)
//	    ├── FileLoader      - loads a single template file from disk
//	    └── Resolver        - picks one of the two from the requested value
//
// A value containing a path separator ("./page.html") is a file path;
// anything else ("default", "document") is an embedded template name.
//
// # Placeholders
//
// Every template carries MarkdownPlaceholder exactly once, inside a
// single-quoted script string literal. PreviewPlaceholder is optional and
// marks the content area shown before the client-side script runs.
//
// # Security
//
// Template names are validated to prevent path traversal into the embedded
// filesystem. File paths are taken as given by the user.
package assets
