package main

import (
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()

	// Parse once up front so maxprocs can log at debug level when asked to.
	// Parse errors are reported by runMain.
	if f, err := parseFlags(os.Args[1:]); err == nil && f.verbose {
		env.Logger = env.Logger.Level(zerolog.DebugLevel)
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	logger := env.Logger
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		logger.Debug().Msgf(format, args...)
	}))

	os.Exit(runMain(os.Args[1:], env))
}
