// Package logging builds the charmbracelet loggers shared by the servers and CLI.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New returns a timestamped logger writing to stderr.
// Unknown level names fall back to info.
func New(prefix, level string) *log.Logger {
	return NewWithWriter(os.Stderr, prefix, level)
}

// NewWithWriter is New with a custom destination.
func NewWithWriter(w io.Writer, prefix, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	logger.SetLevel(ParseLevel(level))
	return logger
}

// ParseLevel converts a level name such as "debug" or "warn".
func ParseLevel(level string) log.Level {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
