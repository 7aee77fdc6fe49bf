package main

import (
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// legacyFlags maps the single-dash long flags users type to their pflag form.
var legacyFlags = map[string]string{
	"-if": "--if",
	"-of": "--of",
}

// cliFlags holds every flag of the md2html command.
type cliFlags struct {
	input         string
	output        string
	config        string
	template      string
	previewEngine string
	preview       bool
	quiet         bool
	verbose       bool
	version       bool
	help          bool
	extra         []string // positional arguments, ignored
	unknown       []string // unrecognized flags, ignored
}

// firstValue is a string flag that keeps its first value; later
// occurrences of the same flag are ignored.
type firstValue struct {
	value string
	set   bool
}

func (v *firstValue) String() string { return v.value }
func (v *firstValue) Type() string   { return "string" }

func (v *firstValue) Set(s string) error {
	if !v.set {
		v.value, v.set = s, true
	}
	return nil
}

// wantsHelp reports whether -h or --help appears anywhere in args.
// Help wins over every other flag, valid or not.
func wantsHelp(args []string) bool {
	for _, a := range args {
		if a == "-h" || a == "--help" {
			return true
		}
	}
	return false
}

// normalizeArgs rewrites -if and -of (and their -if=value forms) to double
// dash. Tokens after "--" are left alone.
func normalizeArgs(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)

	for i, a := range out {
		if a == "--" {
			break
		}
		name, value, hasValue := strings.Cut(a, "=")
		long, ok := legacyFlags[name]
		if !ok {
			continue
		}
		if hasValue {
			out[i] = long + "=" + value
		} else {
			out[i] = long
		}
	}
	return out
}

// parseFlags parses the command line (without the program name).
// The FlagSet prints nothing; errors are returned to the caller.
// Unknown flags are skipped and reported in cliFlags.unknown. A repeated
// -if or -of keeps its first value.
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.ParseErrorsAllowlist.UnknownFlags = true

	f := &cliFlags{}
	var input, output firstValue

	// I/O flags
	fs.Var(&input, "if", "input Markdown file")
	fs.Var(&output, "of", "output HTML file")

	// Page flags
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.template, "template", "", "template name or file path")
	fs.BoolVar(&f.preview, "preview", false, "render a server-side preview")
	fs.StringVar(&f.previewEngine, "preview-engine", "", "preview engine: goldmark, gomarkdown")

	// Output control
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")
	fs.BoolVar(&f.version, "version", false, "show version")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	normalized := normalizeArgs(args)
	if err := fs.Parse(normalized); err != nil {
		return nil, err
	}

	f.input, f.output = input.value, output.value
	f.extra = fs.Args()
	f.unknown = unknownFlags(fs, normalized)
	return f, nil
}

// unknownFlags lists the flag tokens in args that fs does not define.
// Values given to known flags are skipped; tokens after "--" are not flags.
func unknownFlags(fs *flag.FlagSet, args []string) []string {
	var unknown []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			break
		}
		if len(a) < 2 || a[0] != '-' {
			continue
		}

		if strings.HasPrefix(a, "--") {
			name, _, hasValue := strings.Cut(a[2:], "=")
			known := fs.Lookup(name)
			if known == nil {
				unknown = append(unknown, a)
			} else if !hasValue && known.NoOptDefVal == "" {
				i++ // value token
			}
			continue
		}

		for j := 1; j < len(a); j++ {
			known := fs.ShorthandLookup(a[j : j+1])
			if known == nil {
				unknown = append(unknown, a)
				break
			}
			if known.NoOptDefVal == "" {
				if j == len(a)-1 {
					i++ // value token
				}
				break
			}
		}
	}
	return unknown
}
