package main

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// newLogger builds a console logger on stderr at the named level. Unknown
// levels fall back to info.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
