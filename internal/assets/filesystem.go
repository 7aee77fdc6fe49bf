package assets

import (
	"fmt"
	"os"

	"github.com/alnah/go-md2html/internal/fileutil"
)

// FileLoader loads templates from files on disk.
// Relative paths are resolved against workDir.
// Implements TemplateLoader interface.
type FileLoader struct {
	workDir string
}

// NewFileLoader creates a FileLoader resolving relative paths from workDir.
// An empty workDir leaves relative paths to the process working directory.
func NewFileLoader(workDir string) *FileLoader {
	return &FileLoader{workDir: workDir}
}

// LoadTemplate reads the template file at path.
func (f *FileLoader) LoadTemplate(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrTemplateNotFound)
	}

	resolved := fileutil.Resolve(f.workDir, path)

	info, err := os.Stat(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, resolved)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrAssetRead, resolved)
	}

	content, err := os.ReadFile(resolved) // #nosec G304 -- template path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	return string(content), nil
}

// Compile-time interface check.
var _ TemplateLoader = (*FileLoader)(nil)
