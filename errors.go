package md2html

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyPath     = errors.New("path cannot be empty")
	ErrInputNotFound = errors.New("input file does not exist")
	ErrOutputExists  = errors.New("output file already exists")
	ErrReadInput     = errors.New("cannot read input file")
	ErrWriteOutput   = errors.New("cannot write output file")

	// Setup errors returned by NewConverter.
	ErrInvalidTemplate = errors.New("invalid template")
	ErrInvalidPreview  = errors.New("invalid preview settings")

	// ErrPreviewRender wraps failures of the server-side preview engine.
	ErrPreviewRender = errors.New("preview rendering failed")
)
