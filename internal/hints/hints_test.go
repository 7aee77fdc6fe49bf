package hints

// Notes:
// - Hints are plain strings; we check the prefix and the key words users rely
//   on, not the exact wording.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestForMissingFlag(t *testing.T) {
	t.Parallel()

	hint := ForMissingFlag()
	if !strings.HasPrefix(hint, "\n  hint: ") {
		t.Errorf("hint should start with hint prefix, got %q", hint)
	}
	if !strings.Contains(hint, "--help") {
		t.Errorf("hint should mention --help, got %q", hint)
	}
}

func TestForInputNotFound(t *testing.T) {
	t.Parallel()

	abs := filepath.Join(t.TempDir(), "in.md")

	tests := []struct {
		name        string
		path        string
		workDir     string
		wantContain string
	}{
		{"relative with work dir", "in.md", "/srv/docs", "/srv/docs"},
		{"relative without work dir", "in.md", "", "-if"},
		{"absolute path", abs, "/srv/docs", "-if"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForInputNotFound(tt.path, tt.workDir)
			if !strings.Contains(hint, tt.wantContain) {
				t.Errorf("ForInputNotFound(%q, %q) = %q, want it to contain %q", tt.path, tt.workDir, hint, tt.wantContain)
			}
		})
	}
}

func TestForOutputExists(t *testing.T) {
	t.Parallel()

	hint := ForOutputExists()
	if !strings.Contains(hint, "-of") {
		t.Errorf("expected -of suggestion, got %q", hint)
	}
}

func TestForWriteFailure(t *testing.T) {
	t.Parallel()

	if hint := ForWriteFailure(); !strings.Contains(hint, "writable") {
		t.Errorf("expected writable suggestion, got %q", hint)
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	t.Run("suggests user config path", func(t *testing.T) {
		t.Parallel()

		userPath := filepath.Join("home", "me", ".config", "go-md2html", "work.yaml")
		hint := ForConfigNotFound([]string{"work.yaml", "work.yml", userPath})

		if !strings.Contains(hint, "--config") {
			t.Errorf("expected --config suggestion, got %q", hint)
		}
		if !strings.Contains(hint, "or create "+userPath) {
			t.Errorf("expected user path suggestion, got %q", hint)
		}
	})

	t.Run("no user path", func(t *testing.T) {
		t.Parallel()

		hint := ForConfigNotFound([]string{"work.yaml"})
		if strings.Contains(hint, "or create") {
			t.Errorf("unexpected create suggestion, got %q", hint)
		}
	})
}

func TestForTemplateNotFound(t *testing.T) {
	t.Parallel()

	if hint := ForTemplateNotFound(nil); hint != "" {
		t.Errorf("ForTemplateNotFound(nil) = %q, want empty", hint)
	}

	hint := ForTemplateNotFound([]string{"default", "plain"})
	if !strings.Contains(hint, "available: default, plain") {
		t.Errorf("expected list of templates, got %q", hint)
	}
}

func TestForPreviewEngine(t *testing.T) {
	t.Parallel()

	hint := ForPreviewEngine([]string{"goldmark", "gomarkdown"})
	if !strings.Contains(hint, "engines: goldmark, gomarkdown") {
		t.Errorf("expected engine list, got %q", hint)
	}
}

func TestFormat_Empty(t *testing.T) {
	t.Parallel()

	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}
}
