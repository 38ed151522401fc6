// Package logging constructs the zerolog logger used across wsfold.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates a logger writing human-readable output to w at the given level.
// If w is nil, output goes to stderr.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(console).With().Timestamp().Logger().Level(level)
}

// ParseLevel maps a verbosity flag count to a zerolog level.
// 0 is warnings and errors only, 1 adds info, 2 and above adds debug.
func ParseLevel(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}
