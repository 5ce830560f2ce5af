package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

type Options struct {
	// Level is one of debug, info, warn or error. Anything else means info.
	Level string
	// Format is text, json or pretty.
	Format string
	Out    io.Writer
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewHandler sets up a new slog.Handler with the service name
// as an attribute
func NewHandler(name string, opts Options) slog.Handler {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	level := ParseLevel(opts.Level)

	var handler slog.Handler
	switch opts.Format {
	case "json":
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	case "pretty":
		cl := charmlog.NewWithOptions(out, charmlog.Options{
			ReportTimestamp: true,
			Level:           charmlog.Level(level),
		})
		handler = cl
	default:
		handler = slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	}

	return handler.WithAttrs([]slog.Attr{slog.String("service", name)})
}

func New(name string) *slog.Logger {
	return slog.New(NewHandler(name, Options{}))
}

func NewWith(name string, opts Options) *slog.Logger {
	return slog.New(NewHandler(name, opts))
}

func NewContext(ctx context.Context, name string) context.Context {
	return IntoContext(ctx, New(name))
}

type ctxKey struct{}

// IntoContext adds a logger to a context. Use FromContext to
// pull the logger out.
func IntoContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns a logger from a context.Context;
// if the passed context is nil, we return the default slog
// logger.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && l != nil {
			return l
		}
	}

	return slog.Default()
}
