package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger. "dev" gets a console writer,
// every other environment gets JSON on stdout.
func Setup(appEnv, level string) zerolog.Logger {
	return SetupWithWriter(appEnv, level, os.Stdout)
}

// SetupWithWriter is Setup with an explicit output.
func SetupWithWriter(appEnv, level string, out io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	var w io.Writer = out
	if appEnv == "dev" {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	l := zerolog.New(w).With().Timestamp().Str("service", "itinera").Logger().Level(lvl)
	log.Logger = l
	zerolog.DefaultContextLogger = &log.Logger
	return l
}

// Component returns a child of the global logger tagged with a component name.
func Component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
