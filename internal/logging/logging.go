// Package logging builds the leveled diagnostic logger.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Default values.
const (
	DefaultLevel  = "warn"
	DefaultFormat = "text"
	Prefix        = "task"
)

// Options holds configuration for the logger.
type Options struct {
	Level     string // debug, info, warn, error, fatal
	Format    string // text, json, logfmt
	Timestamp bool
}

// New creates a logger writing to w. Empty option values fall back to the defaults.
func New(w io.Writer, opts Options) (*log.Logger, error) {
	level := opts.Level
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	formatter, err := ParseFormat(opts.Format)
	if err != nil {
		return nil, err
	}

	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Formatter:       formatter,
		ReportTimestamp: opts.Timestamp,
		Prefix:          Prefix,
	}), nil
}

// ParseFormat maps a format name to a formatter.
func ParseFormat(format string) (log.Formatter, error) {
	switch strings.ToLower(format) {
	case "", DefaultFormat:
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	default:
		return log.TextFormatter, fmt.Errorf("invalid log format %q: must be text, json, or logfmt", format)
	}
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
