package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)
	out := buf.String()

	for _, want := range []string{
		"Usage: md2html -if <input_file> -of <output_file>",
		"-if <file>",
		"-of <file>",
		"-h, --help",
		"--template",
		"--preview-engine",
		"md2html -if input.md -of output.html",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("usage should contain %q", want)
		}
	}
}
