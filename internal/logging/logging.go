// Package logging configures the process-wide zerolog logger. Output goes to
// stderr so report output on stdout stays machine-readable.
package logging

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Options selects the log level and output style.
type Options struct {
	// Verbose enables debug-level output.
	Verbose bool
	// Quiet raises the level to errors only. Wins over Verbose.
	Quiet bool
	// NoColor disables the console writer's colors.
	NoColor bool
}

// New builds a console logger on stderr.
func New(opts Options) zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
		NoColor:    opts.NoColor,
	}

	logger := zerolog.New(writer).With().Timestamp().Logger()

	switch {
	case opts.Quiet:
		return logger.Level(zerolog.ErrorLevel)
	case opts.Verbose:
		return logger.Level(zerolog.DebugLevel)
	default:
		return logger.Level(zerolog.InfoLevel)
	}
}

// ParseLevel maps a level name to a zerolog level for config-driven setups.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}
