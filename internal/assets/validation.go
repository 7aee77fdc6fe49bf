package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName checks that an asset name is safe for use as a filename.
// Returns ErrInvalidAssetName if the name is empty or contains path separators,
// dots (which could allow extension manipulation), or traversal characters.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// ValidateTemplate checks that content holds MarkdownPlaceholder exactly
// once and PreviewPlaceholder at most once.
func ValidateTemplate(name, content string) error {
	switch n := strings.Count(content, MarkdownPlaceholder); n {
	case 1:
	case 0:
		return fmt.Errorf("%w: %q has no %s placeholder", ErrInvalidTemplate, name, MarkdownPlaceholder)
	default:
		return fmt.Errorf("%w: %q has %d %s placeholders, want 1", ErrInvalidTemplate, name, n, MarkdownPlaceholder)
	}

	if n := strings.Count(content, PreviewPlaceholder); n > 1 {
		return fmt.Errorf("%w: %q has %d %s placeholders, want at most 1", ErrInvalidTemplate, name, n, PreviewPlaceholder)
	}

	return nil
}
