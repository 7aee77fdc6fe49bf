package main

import (
	"errors"

	md2html "github.com/alnah/go-md2html"
)

// Exit codes for md2html CLI.
const (
	ExitSuccess      = 0 // Successful conversion, help or version
	ExitUsage        = 1 // Missing or invalid flags, config, template or engine
	ExitPrecondition = 2 // Input missing or output already exists
	ExitRead         = 3 // Input could not be read
	ExitWrite        = 4 // Output could not be written
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
// Anything unclassified is reported as a usage error.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Write errors (exit 4)
	if errors.Is(err, md2html.ErrWriteOutput) {
		return ExitWrite
	}

	// Read errors (exit 3)
	if errors.Is(err, md2html.ErrReadInput) {
		return ExitRead
	}

	// Precondition errors (exit 2)
	if errors.Is(err, md2html.ErrInputNotFound) ||
		errors.Is(err, md2html.ErrOutputExists) {
		return ExitPrecondition
	}

	return ExitUsage
}
