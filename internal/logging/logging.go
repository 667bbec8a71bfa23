// Package logging provides structured logging using zerolog.
package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the package-wide logger. It discards everything until the host
// enables it with Init; a library must not write to stderr unasked.
var Logger = zerolog.Nop()

// Init directs library diagnostics to w at the given level.
func Init(w io.Writer, level zerolog.Level) {
	Logger = zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("component", "sveltebuild").
		Logger()
}

// ParseLevel parses a log level string (case-insensitive). Unrecognized
// values fall back to warn, the level used for non-fatal diagnostics.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}
