package utils

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// NewLogger builds the application logger. format is "json", "console" or
// "auto"; auto picks the console writer when stderr is a terminal. Unknown
// levels fall back to info.
func NewLogger(level, format string) zerolog.Logger {
	return newLogger(os.Stderr, level, format, isatty.IsTerminal(os.Stderr.Fd()))
}

func newLogger(out io.Writer, level, format string, terminal bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	w := out
	switch strings.ToLower(format) {
	case "console":
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: os.Getenv("NO_COLOR") != ""}
	case "json":
	default:
		if terminal {
			w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: os.Getenv("NO_COLOR") != ""}
		}
	}

	logger := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	if lvl <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}
	return logger
}
