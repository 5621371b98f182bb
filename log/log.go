package log

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger creates a console logger for the given component. The log level
// is taken from the LOG_LEVEL environment variable, defaulting to info.
func NewLogger(name string) zerolog.Logger {
	level := zerolog.InfoLevel
	if lvl, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && lvl != zerolog.NoLevel {
		level = lvl
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Str("component", name).
		Logger()
}
