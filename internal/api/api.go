// Package api sets up and starts the API server with routing and middleware.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/eloiseboudon/easyChef/internal/api/middleware"
	"github.com/eloiseboudon/easyChef/internal/api/routes/health"
	"github.com/eloiseboudon/easyChef/internal/api/routes/recipes"
	"github.com/eloiseboudon/easyChef/internal/api/routes/users"
	"github.com/eloiseboudon/easyChef/internal/env"
)

const shutdownTimeout = 10 * time.Second

// Router assembles the API routes and middleware.
func Router(e *env.Env) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.AddRequestID)
	router.Use(middleware.LogRequest(e.Logger))
	router.Use(middleware.InjectEnv(e))
	router.Use(middleware.AddCors)

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", health.HandleHealth)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", users.HandleListUsers)
			r.Post("/", users.HandleCreateUser)
			r.Get("/{id}", users.HandleGetUser)
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", recipes.HandleListRecipes)
			r.Post("/", recipes.HandleCreateRecipe)
			r.Get("/{id}", recipes.HandleGetRecipe)
			r.Patch("/{id}/favorite", recipes.HandleSetFavorite)
		})
	})

	return router
}

// Start serves the API until ctx is canceled.
func Start(ctx context.Context, e *env.Env) error {
	addr := fmt.Sprintf(":%d", e.Config.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: Router(e),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	e.Logger.Info(fmt.Sprintf("EasyChef API listening at 0.0.0.0%s", addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}
