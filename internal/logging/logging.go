// Package logging builds the zerolog logger shared by the CLI and its components.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a human-readable logger writing to w at the given level.
// Unknown level names fall back to info.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	writer := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger()
}

// LevelFor resolves the effective level from CLI verbosity flags.
// verbose wins over quiet; neither keeps the configured level.
func LevelFor(configured string, verbose, quiet bool) string {
	switch {
	case verbose:
		return zerolog.DebugLevel.String()
	case quiet:
		return zerolog.WarnLevel.String()
	default:
		return configured
	}
}
