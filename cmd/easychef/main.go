package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eloiseboudon/easyChef/internal/api"
	"github.com/eloiseboudon/easyChef/internal/config"
	"github.com/eloiseboudon/easyChef/internal/env"
	"github.com/eloiseboudon/easyChef/internal/log"
	"github.com/eloiseboudon/easyChef/internal/setup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	const setupTime = 30 * time.Second
	setupCtx, cancel := context.WithTimeout(ctx, setupTime)
	defer cancel()

	logger := log.New(nil)

	conf, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	st, cleanup, err := setup.Store(setupCtx, conf)
	if err != nil {
		logger.Error("failed to setup store", slog.Any("error", err))
		os.Exit(1)
	}
	defer cleanup()

	environment := env.New(logger, st, conf)

	if err := api.Start(ctx, environment); err != nil {
		logger.Error("API failed", slog.Any("error", err))
		os.Exit(1)
	}
}
