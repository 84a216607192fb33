// Package logger is the process-wide slog setup for telugu-corpus.
//
// Library packages log through the package-level functions or a Component
// logger; the CLI calls Init once flags and config are resolved. Loggers
// handed out before Init pick up the new level and format on their next
// record, so packages may create component loggers at construction time.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	handler = newHandler(Options{})
	root    = slog.New(liveHandler{})
)

// Options configures the logger.
type Options struct {
	Debug  bool      // Enable debug level logging
	Quiet  bool      // Only show errors; wins over Debug
	JSON   bool      // Output as JSON
	Output io.Writer // Output destination (default: stderr)
}

// Level returns the minimum level the options let through.
func (o Options) Level() slog.Level {
	switch {
	case o.Quiet:
		return slog.LevelError
	case o.Debug:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

func newHandler(opts Options) slog.Handler {
	output := opts.Output
	if output == nil {
		output = os.Stderr
	}
	handlerOpts := &slog.HandlerOptions{Level: opts.Level()}
	if opts.JSON {
		return slog.NewJSONHandler(output, handlerOpts)
	}
	return slog.NewTextHandler(output, handlerOpts)
}

// Init replaces the process-wide handler.
func Init(opts Options) {
	h := newHandler(opts)
	mu.Lock()
	handler = h
	mu.Unlock()
}

func current() slog.Handler {
	mu.RLock()
	defer mu.RUnlock()
	return handler
}

// liveHandler resolves the current handler on every record and replays its
// own attrs and groups on top of it.
type liveHandler struct {
	wrap func(slog.Handler) slog.Handler
}

func (h liveHandler) resolve() slog.Handler {
	base := current()
	if h.wrap == nil {
		return base
	}
	return h.wrap(base)
}

func (h liveHandler) then(f func(slog.Handler) slog.Handler) liveHandler {
	prev := h.wrap
	return liveHandler{wrap: func(base slog.Handler) slog.Handler {
		if prev != nil {
			base = prev(base)
		}
		return f(base)
	}}
}

func (h liveHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return current().Enabled(ctx, level)
}

func (h liveHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.resolve().Handle(ctx, r)
}

func (h liveHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.then(func(base slog.Handler) slog.Handler { return base.WithAttrs(attrs) })
}

func (h liveHandler) WithGroup(name string) slog.Handler {
	return h.then(func(base slog.Handler) slog.Handler { return base.WithGroup(name) })
}

// Component returns a logger tagged with component=name, e.g. "server".
func Component(name string) *slog.Logger {
	return root.With("component", name)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) { root.Debug(msg, args...) }

// Info logs an info message.
func Info(msg string, args ...any) { root.Info(msg, args...) }

// Warn logs a warning message.
func Warn(msg string, args ...any) { root.Warn(msg, args...) }

// Error logs an error message.
func Error(msg string, args ...any) { root.Error(msg, args...) }

// Preview shortens s to at most n runes for use as a log attribute.
// A cut is marked with an ellipsis.
func Preview(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
