// Package log provides a context-aware logging utility using slog.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

type ctxAttrsKey struct{}

var ctxAttrs ctxAttrsKey

// Handler injects attributes stored in the context into every Record
// before delegating to the wrapped handler.
type Handler struct {
	slog.Handler
}

func (h Handler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(ctxAttrs).([]slog.Attr); ok {
		for _, a := range attrs {
			r.AddAttrs(a)
		}
	}
	return h.Handler.Handle(ctx, r)
}

// AppendCtx attaches an slog attribute to the context so that it is
// included in every Record logged with that context.
func AppendCtx(parent context.Context, attr slog.Attr) context.Context {
	if parent == nil {
		parent = context.Background()
	}

	if v, ok := parent.Value(ctxAttrs).([]slog.Attr); ok {
		v = append(v, attr)
		return context.WithValue(parent, ctxAttrs, v)
	}

	return context.WithValue(parent, ctxAttrs, []slog.Attr{attr})
}

func New(options *slog.HandlerOptions) *slog.Logger {
	if options == nil {
		options = &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}
	}

	return slog.New(&Handler{
		Handler: slog.NewJSONHandler(os.Stderr, options),
	})
}

// Discard returns a logger that drops every record. Used in tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
