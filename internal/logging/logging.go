// Package logging builds the structured logger used across stratos.
//
// The TUI owns the terminal, so logs only reach stderr when explicitly asked
// for (minimal mode). Otherwise they go to the configured file or nowhere.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/flashingpumpkin/stratos/internal/errors"
)

type contextKey struct{}

// Options selects the level, format and sinks of a logger.
type Options struct {
	Level  string
	Format string
	File   string

	// Stderr adds os.Stderr as a sink. Never set it while the TUI runs.
	Stderr bool

	Version string
}

// WithLogger returns a new context carrying the given logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext extracts the logger from ctx. A context without one yields a
// logger that discards everything.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return Discard()
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// New creates a logger from opts. The returned cleanup closes the log file,
// if one was opened.
func New(opts Options) (*slog.Logger, func() error, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	writers := make([]io.Writer, 0, 2)
	var closers []io.Closer

	if opts.Stderr {
		writers = append(writers, os.Stderr)
	}
	if strings.TrimSpace(opts.File) != "" {
		f, openErr := openLogFile(opts.File)
		if openErr != nil {
			return nil, nil, openErr
		}
		writers = append(writers, f)
		closers = append(closers, f)
	}

	cleanup := func() error {
		var firstErr error
		for _, c := range closers {
			if closeErr := c.Close(); closeErr != nil && firstErr == nil {
				firstErr = closeErr
			}
		}
		return firstErr
	}

	if len(writers) == 0 {
		return Discard(), cleanup, nil
	}

	handler, err := newHandler(io.MultiWriter(writers...), opts.Format, level)
	if err != nil {
		_ = cleanup()
		return nil, nil, err
	}

	logger := slog.New(handler)
	if opts.Version != "" {
		logger = logger.With(slog.String("stratos.version", opts.Version))
	}
	return logger, cleanup, nil
}

func newHandler(w io.Writer, format string, level slog.Leveler) (slog.Handler, error) {
	handlerOpts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return slog.NewTextHandler(w, handlerOpts), nil
	case "json":
		return slog.NewJSONHandler(w, handlerOpts), nil
	default:
		return nil, fmt.Errorf("%w: %q (allowed: text, json)", apperrors.ErrInvalidLogFormat, format)
	}
}

// ParseLevel maps a level name to a slog level. Empty means info.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q (allowed: debug, info, warn, error)", apperrors.ErrInvalidLogLevel, level)
	}
}

func openLogFile(path string) (*os.File, error) {
	clean := filepath.Clean(strings.TrimSpace(path))
	if err := os.MkdirAll(filepath.Dir(clean), 0o700); err != nil {
		return nil, fmt.Errorf("create log file directory: %w", err)
	}
	f, err := os.OpenFile(clean, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
