// Package md2html turns a Markdown file into a standalone HTML page.
//
// The page does not contain rendered Markdown. It embeds the raw text in a
// JavaScript string literal and loads showdown and highlight.js from a CDN,
// so the conversion happens in the reader's browser.
//
// # Quick Start
//
//	conv, err := md2html.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	paths, err := conv.ConvertFile("notes.md", "notes")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("wrote", paths.Output) // notes.html
//
// # Pipeline
//
//  1. Path validation: the input must exist, the output (after appending
//     ".html" when the extension is not .html or .htm) must not.
//  2. Reading the whole input as text.
//  3. Escaping ' " \ LF and CR for a single-quoted script literal.
//  4. Substituting the escaped text into the template placeholder.
//  5. Creating the output file exclusively; existing files are never overwritten.
//
// # Options
//
//	conv, err := md2html.NewConverter(
//	    md2html.WithTemplate("document"),           // built-in name or file path
//	    md2html.WithPreview("goldmark", "monokai"), // server-side preview
//	    md2html.WithWorkDir("/srv/docs"),           // base for relative paths
//	)
//
// The preview option renders the Markdown with goldmark or gomarkdown,
// sanitizes it with bluemonday and fills the preview area of the page, so
// the text is readable before the scripts load.
package md2html
