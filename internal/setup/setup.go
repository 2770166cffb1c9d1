// Package setup is responsible for setting up components.
package setup

import (
	"context"
	"fmt"

	"github.com/eloiseboudon/easyChef/internal/catalog"
	"github.com/eloiseboudon/easyChef/internal/config"
	"github.com/eloiseboudon/easyChef/internal/seed"
	"github.com/eloiseboudon/easyChef/internal/store"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store builds the persistence backend selected by the configuration.
// The returned cleanup func releases whatever the backend holds and is
// safe to call exactly once.
func Store(ctx context.Context, conf config.Config) (store.Store, func(), error) {
	switch conf.Store {
	case config.StoreMemory:
		memory := store.NewMemory()
		memory.Seed([]catalog.User{seed.User()}, seed.Recipes())
		return memory, func() {}, nil

	case config.StoreRowStore:
		rowStore := store.NewRowStore(store.RowStoreConfig{
			URL:    conf.RowStore.URL,
			Key:    conf.RowStore.Key(),
			Schema: conf.RowStore.Schema,
		}, nil)
		return rowStore, func() {}, nil

	case config.StorePostgres:
		pool, err := pgxpool.New(ctx, conf.Database.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("creating connection pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("pinging database: %w", err)
		}

		postgres := store.NewPostgres(pool)
		if err := postgres.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ensuring schema: %w", err)
		}
		return postgres, pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store kind %q", conf.Store)
	}
}
