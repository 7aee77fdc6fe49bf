package main

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Environment holds injectable dependencies for testability.
// Relative -if, -of, --template and --config paths resolve from WorkDir.
type Environment struct {
	Stdout  io.Writer
	Stderr  io.Writer
	WorkDir string // "" = process working directory
	Logger  zerolog.Logger
}

// DefaultEnv returns the production environment bound to the process
// streams and working directory.
func DefaultEnv() *Environment {
	// On error WorkDir stays "" and relative paths still resolve from the
	// process working directory.
	wd, _ := os.Getwd()
	return &Environment{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		WorkDir: wd,
		Logger:  newLogger(os.Stderr, isTerminal(os.Stderr)),
	}
}

// newLogger returns a console logger at warn level. Colour is used only
// when w is a terminal.
func newLogger(w io.Writer, color bool) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, NoColor: !color, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(zerolog.WarnLevel).With().Timestamp().Logger()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
