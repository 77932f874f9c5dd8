// Package logging configures the leveled logger used by the collide CLI.
// The level is read from COLLIDE_LOG_LEVEL (DEBUG, INFO, WARN, ERROR) and
// defaults to INFO.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

const EnvLevel = "COLLIDE_LOG_LEVEL"

type Logger struct {
	*log.Logger
}

// New returns a logger writing to w at the level configured in the environment.
func New(w io.Writer) *Logger {
	return &Logger{log.NewWithOptions(w, log.Options{
		Level:  levelFromEnv(),
		Prefix: "collide",
	})}
}

// Default writes to stderr so command output on stdout stays clean.
func Default() *Logger {
	return New(os.Stderr)
}

// WithScenario tags every entry with the scenario name.
func (l *Logger) WithScenario(name string) *Logger {
	return &Logger{l.With("scenario", name)}
}

func levelFromEnv() log.Level {
	raw := strings.TrimSpace(os.Getenv(EnvLevel))
	if raw == "" {
		return log.InfoLevel
	}
	level, err := log.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return log.InfoLevel
	}
	return level
}
