package main

import (
	"errors"
	"fmt"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/hints"
	"github.com/alnah/go-md2html/internal/preview"
	"github.com/rs/zerolog"
)

// Sentinel errors for CLI validation.
var (
	ErrMissingInputFlag  = errors.New("missing input file: -if <path> is required")
	ErrMissingOutputFlag = errors.New("missing output file: -of <path> is required")
)

// settings is the merged result of the config file and the flags.
type settings struct {
	template string
	quiet    bool
	preview  bool
	engine   string
	style    string
}

// runMain runs the md2html command and returns the exit code.
// args excludes the program name.
func runMain(args []string, env *Environment) int {
	if wantsHelp(args) {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	f, err := parseFlags(args)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Parameters error: %v%s\n", err, hints.ForMissingFlag())
		return ExitUsage
	}

	logger := env.Logger
	if f.verbose {
		logger = logger.Level(zerolog.DebugLevel)
	}

	if f.version {
		fmt.Fprintf(env.Stdout, "go-md2html %s\n", Version)
		return ExitSuccess
	}

	if len(f.extra) > 0 {
		logger.Debug().Strs("args", f.extra).Msg("ignoring positional arguments")
	}
	if len(f.unknown) > 0 {
		logger.Debug().Strs("flags", f.unknown).Msg("ignoring unknown flags")
	}

	if err := checkRequired(f); err != nil {
		fmt.Fprintf(env.Stderr, "Parameters error: %v%s\n", err, hints.ForMissingFlag())
		return ExitUsage
	}

	s, err := loadSettings(f, env, logger)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v%s\n", err, hintFor(err, f, env))
		return exitCodeFor(err)
	}

	paths, err := convert(f, s, env, logger)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v%s\n", err, hintFor(err, f, env))
		return exitCodeFor(err)
	}

	if !s.quiet {
		fmt.Fprintf(env.Stdout, "HTML content has been successfully written to the %s\n", paths.Output)
	}
	return ExitSuccess
}

// checkRequired reports a missing or empty -if or -of.
func checkRequired(f *cliFlags) error {
	if f.input == "" {
		return ErrMissingInputFlag
	}
	if f.output == "" {
		return ErrMissingOutputFlag
	}
	return nil
}

// loadSettings reads the optional config file and applies flag overrides.
// Flags win over config values; boolean flags can only switch features on.
func loadSettings(f *cliFlags, env *Environment, logger zerolog.Logger) (settings, error) {
	cfg := config.DefaultConfig()
	if f.config != "" {
		loaded, err := config.LoadConfig(env.WorkDir, f.config)
		if err != nil {
			return settings{}, err
		}
		cfg = loaded
		logger.Debug().Str("config", f.config).Msg("config loaded")
	}

	s := settings{
		template: cfg.Template,
		quiet:    cfg.Quiet || f.quiet,
		preview:  cfg.Preview.Enabled || f.preview,
		engine:   cfg.Preview.Engine,
		style:    cfg.Preview.Style,
	}
	if f.template != "" {
		s.template = f.template
	}
	if f.previewEngine != "" {
		// Choosing an engine implies wanting a preview.
		s.preview = true
		s.engine = f.previewEngine
	}
	return s, nil
}

// convert builds the converter from s and converts f.input into f.output.
func convert(f *cliFlags, s settings, env *Environment, logger zerolog.Logger) (md2html.Paths, error) {
	opts := []md2html.Option{
		md2html.WithWorkDir(env.WorkDir),
		md2html.WithTemplate(s.template),
	}
	if s.preview {
		opts = append(opts, md2html.WithPreview(s.engine, s.style))
	}

	conv, err := md2html.NewConverter(opts...)
	if err != nil {
		return md2html.Paths{}, err
	}

	logger.Debug().
		Str("input", f.input).
		Str("output", f.output).
		Str("template", s.template).
		Bool("preview", s.preview).
		Str("engine", s.engine).
		Msg("converting")

	paths, err := conv.ConvertFile(f.input, f.output)
	if err != nil {
		return paths, err
	}

	logger.Debug().Str("output", paths.Output).Msg("written")
	return paths, nil
}

// hintFor returns the hint matching err, or "".
func hintFor(err error, f *cliFlags, env *Environment) string {
	var nf *config.NotFoundError

	switch {
	case errors.As(err, &nf):
		return hints.ForConfigNotFound(nf.Paths)
	case errors.Is(err, assets.ErrTemplateNotFound):
		return hints.ForTemplateNotFound(assets.NewResolver(env.WorkDir).Available())
	case errors.Is(err, preview.ErrInvalidPreviewEngine),
		errors.Is(err, config.ErrInvalidConfig):
		return hints.ForPreviewEngine(preview.Engines())
	case errors.Is(err, md2html.ErrInputNotFound):
		return hints.ForInputNotFound(f.input, env.WorkDir)
	case errors.Is(err, md2html.ErrOutputExists):
		return hints.ForOutputExists()
	case errors.Is(err, md2html.ErrWriteOutput):
		return hints.ForWriteFailure()
	default:
		return ""
	}
}
