// Package logging builds the leveled console logger shared by the store
// and its consumers.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Options holds configuration for console logging.
type Options struct {
	Level           log.Level
	Formatter       log.Formatter
	ReportTimestamp bool
	Prefix          string
	NoColor         bool
}

// DefaultOptions returns default options for console logging.
func DefaultOptions() Options {
	return Options{
		Level:     log.WarnLevel,
		Formatter: log.TextFormatter,
		Prefix:    "tada",
	}
}

// New returns a logger writing to w (stderr when nil).
func New(w io.Writer, opts Options) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
	if opts.NoColor {
		logger.SetStyles(plainStyles())
	}
	return logger
}

// Discard is a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// plainStyles strips colors but keeps the level labels.
func plainStyles() *log.Styles {
	st := log.DefaultStyles()
	for lvl, s := range st.Levels {
		st.Levels[lvl] = s.UnsetForeground().UnsetBackground()
	}
	return st
}
