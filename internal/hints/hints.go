// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForMissingFlag returns a hint pointing at the help flag.
func ForMissingFlag() string {
	return format("run with -h or --help for usage")
}

// ForInputNotFound returns a hint for a missing input file.
// Relative paths are resolved from workDir, which is named when known.
func ForInputNotFound(path, workDir string) string {
	if workDir == "" || filepath.IsAbs(path) {
		return format("check the -if path")
	}
	return format("relative paths are resolved from " + workDir)
}

// ForOutputExists returns a hint for an output file that is already present.
// The tool never overwrites files, so the user must pick another name.
func ForOutputExists() string {
	return format("choose another -of path or remove the existing file")
}

// ForWriteFailure returns a hint for output write errors.
func ForWriteFailure() string {
	return format("check the output directory exists and is writable")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path and the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains go-md2html) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-md2html/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForTemplateNotFound returns hints for unknown template names.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForPreviewEngine returns hints for unknown preview engines.
func ForPreviewEngine(engines []string) string {
	return formatHints([]string{"engines: " + strings.Join(engines, ", ")})
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
