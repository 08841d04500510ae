// Package logging builds the process logger: JSON records on stderr, and
// optionally a second copy appended to a log file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

// ParseLevel converts a case-insensitive level string to slog.Level.
// An empty string returns slog.LevelWarn. Unknown strings return an error.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
}

// Options configures New.
type Options struct {
	Level slog.Level
	// Writer receives JSON records. Defaults to os.Stderr.
	Writer io.Writer
	// File, when set, is opened for append and receives the same records.
	File string
}

// New returns a logger for opts and a function that releases the log file.
// The close function is always non-nil.
func New(opts Options) (*slog.Logger, func() error, error) {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	ho := &slog.HandlerOptions{Level: opts.Level}

	if opts.File == "" {
		return slog.New(slog.NewJSONHandler(w, ho)), func() error { return nil }, nil
	}

	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	h := slogmulti.Fanout(
		slog.NewJSONHandler(w, ho),
		slog.NewJSONHandler(f, ho),
	)
	return slog.New(h), f.Close, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
