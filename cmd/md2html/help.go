package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html -if <input_file> -of <output_file> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Embed a Markdown file into an HTML page rendered in the browser.")
	fmt.Fprintln(w, "The output gets a .html extension unless it ends in .html or .htm.")
	fmt.Fprintln(w, "Existing files are never overwritten.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -if <file>                Input file")
	fmt.Fprintln(w, "  -of <file>                Output file")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "      --template <s>        Template name (default, document) or file path")
	fmt.Fprintln(w, "      --preview             Render the content on the server as well")
	fmt.Fprintln(w, "      --preview-engine <s>  Preview engine: goldmark, gomarkdown")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Display this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0 success, 1 usage error, 2 input missing or output exists,")
	fmt.Fprintln(w, "  3 input unreadable, 4 output not written")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Example:")
	fmt.Fprintln(w, "  md2html -if input.md -of output.html")
}
