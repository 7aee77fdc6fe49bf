package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestNewEmbeddedLoader(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()
	if loader == nil {
		t.Fatal("NewEmbeddedLoader() returned nil")
	}
}

func TestEmbeddedLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name         string
		templateName string
		wantErr      error
		wantContain  []string
	}{
		{
			name:         "loads default template",
			templateName: "default",
			wantContain: []string{
				"https://cdnjs.cloudflare.com/ajax/libs/showdown/2.1.0/showdown.min.js",
				"https://cdnjs.cloudflare.com/ajax/libs/highlight.js/11.9.0/highlight.min.js",
				"https://cdnjs.cloudflare.com/ajax/libs/highlight.js/11.9.0/styles/default.min.css",
				`<div id="content">` + PreviewPlaceholder + `</div>`,
				"var text      = '" + MarkdownPlaceholder + "';",
				"disableForced4SpacesIndentedSublists: true",
				"hljs.highlightAll();",
			},
		},
		{
			name:         "loads document template",
			templateName: "document",
			wantContain: []string{
				"<!DOCTYPE html>",
				`<meta charset="utf-8">`,
				"'" + MarkdownPlaceholder + "'",
			},
		},
		{
			name:         "returns ErrTemplateNotFound for nonexistent",
			templateName: "nonexistent-template-xyz",
			wantErr:      ErrTemplateNotFound,
		},
		{
			name:         "returns ErrInvalidAssetName for empty name",
			templateName: "",
			wantErr:      ErrInvalidAssetName,
		},
		{
			name:         "returns ErrInvalidAssetName for path traversal",
			templateName: "../secret",
			wantErr:      ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadTemplate(tt.templateName)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadTemplate(%q) error = %v, want %v", tt.templateName, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("LoadTemplate(%q) unexpected error: %v", tt.templateName, err)
			}

			for _, want := range tt.wantContain {
				if !strings.Contains(got, want) {
					t.Errorf("LoadTemplate(%q) content should contain %q", tt.templateName, want)
				}
			}
		})
	}
}

func TestEmbeddedLoader_TemplatesAreValid(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()
	names := loader.Names()
	if len(names) == 0 {
		t.Fatal("Names() returned no templates")
	}

	for _, name := range names {
		content, err := loader.LoadTemplate(name)
		if err != nil {
			t.Errorf("LoadTemplate(%q) unexpected error: %v", name, err)
			continue
		}
		if err := ValidateTemplate(name, content); err != nil {
			t.Errorf("embedded template %q is invalid: %v", name, err)
		}
	}
}

func TestEmbeddedLoader_Names(t *testing.T) {
	t.Parallel()

	got := strings.Join(NewEmbeddedLoader().Names(), ",")
	if got != "default,document" {
		t.Errorf("Names() = %q, want %q", got, "default,document")
	}
}
