// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
)

// WriteNew creates path and writes content to it. The file must not exist:
// an existing file is reported with an error satisfying errors.Is(err, os.ErrExist)
// and is left untouched. If writing or closing fails, the partial file is removed.
func WriteNew(path, content string, perm os.FileMode) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm) // #nosec G304 -- output path is user-provided
	if err != nil {
		return err
	}

	cleanup := func() { _ = os.Remove(path) }

	if _, writeErr := f.WriteString(content); writeErr != nil {
		_ = f.Close()
		cleanup()
		return fmt.Errorf("writing %s: %w", path, writeErr)
	}

	if closeErr := f.Close(); closeErr != nil {
		cleanup()
		return fmt.Errorf("closing %s: %w", path, closeErr)
	}

	return nil
}

// ValidateExtension checks that the extension is safe to append to a file name.
// The extension is given with its leading dot (".html").
func ValidateExtension(extension string) error {
	if extension == "" || extension == "." {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// Exists returns true if something exists at path, whatever its type.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// Ext returns the extension of the last path element, including the dot.
// Unlike filepath.Ext, the first character of the name never starts an
// extension, so ".html" and ".bashrc" have none while "notes.html" and
// "..html" have ".html". The names "." and ".." have none.
func Ext(path string) string {
	base := filepath.Base(path)
	if base == "." || base == ".." {
		return ""
	}
	return filepath.Ext(base[1:])
}

// EnsureExtension returns path unchanged if its extension is one of accepted
// (case-sensitive), otherwise path with accepted[0] appended.
//
// Examples with accepted = [".html", ".htm"]:
//   - "report"       -> "report.html"
//   - "report.html"  -> "report.html"
//   - "report.htm"   -> "report.htm"
//   - "report.HTML"  -> "report.HTML.html"
//   - "report.txt"   -> "report.txt.html"
func EnsureExtension(path string, accepted ...string) (string, error) {
	if len(accepted) == 0 {
		return "", ErrExtensionEmpty
	}
	for _, ext := range accepted {
		if err := ValidateExtension(ext); err != nil {
			return "", err
		}
	}

	ext := Ext(path)
	for _, a := range accepted {
		if ext == a {
			return path, nil
		}
	}
	return path + accepted[0], nil
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "default" -> false (name)
//   - "./page.html" -> true (relative path)
//   - "../shared/page.html" -> true (parent path)
//   - "/absolute/page.html" -> true (absolute)
//   - "C:\windows\page.html" -> true (Windows)
//   - "dark-mode" -> false (hyphenated name)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// Resolve joins a relative path onto dir. Absolute paths and an empty dir
// leave path unchanged.
func Resolve(dir, path string) string {
	if dir == "" || path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
