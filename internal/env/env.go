// Package env provides a structure for managing application-wide dependencies.
package env

import (
	"context"
	"log/slog"

	"github.com/eloiseboudon/easyChef/internal/config"
	"github.com/eloiseboudon/easyChef/internal/log"
	"github.com/eloiseboudon/easyChef/internal/store"
)

type Env struct {
	Logger *slog.Logger
	Store  store.Store
	Config config.Config
}

func New(logger *slog.Logger, st store.Store, conf config.Config) *Env {
	if logger == nil {
		logger = log.Discard()
	}
	return &Env{
		Logger: logger,
		Store:  st,
		Config: conf,
	}
}

type envKey struct{}

// WithCtx injects the environment into the context.
func WithCtx(ctx context.Context, e *Env) context.Context {
	return context.WithValue(ctx, envKey{}, e)
}

// FromCtx extracts the environment from the context. A context without
// one yields an env with a discarding logger so handlers never panic.
func FromCtx(ctx context.Context) *Env {
	if e, ok := ctx.Value(envKey{}).(*Env); ok {
		return e
	}
	return New(nil, nil, config.Config{})
}
