package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the service logger. JSON output by default, human-readable
// console output when console is set (local development).
func New(service, level string, console bool) zerolog.Logger {
	var output io.Writer = os.Stdout
	if console {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	return zerolog.New(output).
		With().
		Timestamp().
		Str("service", service).
		Logger().
		Level(ParseLevel(level))
}

func ParseLevel(value string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(value)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
