package md2html

import (
	"fmt"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// OutputExtensions are the extensions kept as-is on the output path.
// Any other extension, or none, gets the first one appended.
var OutputExtensions = []string{".html", ".htm"}

// Paths is a validated input/output pair.
type Paths struct {
	Input  string // Input path as given
	Output string // Resolved output path (extension normalized)
}

// ResolveOutputPath appends ".html" to path unless it already ends in
// ".html" or ".htm". The comparison is case-sensitive.
func ResolveOutputPath(path string) string {
	resolved, err := fileutil.EnsureExtension(path, OutputExtensions...)
	if err != nil {
		// OutputExtensions are constant and valid
		return path + OutputExtensions[0]
	}
	return resolved
}

// ValidatePaths checks that input exists and that the resolved output does
// not. Relative paths are taken from the process working directory.
func ValidatePaths(input, output string) (Paths, error) {
	return validatePaths("", input, output)
}

// validatePaths is ValidatePaths with relative paths resolved from dir.
// Errors name the paths as the caller gave them.
func validatePaths(dir, input, output string) (Paths, error) {
	if input == "" || output == "" {
		return Paths{}, ErrEmptyPath
	}

	if !fileutil.Exists(fileutil.Resolve(dir, input)) {
		return Paths{}, fmt.Errorf("%w: %s", ErrInputNotFound, input)
	}

	resolved := ResolveOutputPath(output)
	if fileutil.Exists(fileutil.Resolve(dir, resolved)) {
		return Paths{}, fmt.Errorf("%w: %s", ErrOutputExists, resolved)
	}

	return Paths{Input: input, Output: resolved}, nil
}
