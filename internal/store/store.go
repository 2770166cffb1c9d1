// Package store persists users and recipes for the API server.
// Three implementations exist: an in-memory store, a REST row-store
// adapter and a Postgres store.
package store

import (
	"context"
	"errors"

	"github.com/eloiseboudon/easyChef/internal/catalog"
)

var (
	// ErrUserNotFound is returned when the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrRecipeNotFound is returned when the referenced recipe does not exist.
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrEmailConflict is returned when the email is already registered.
	// The comparison is case-insensitive.
	ErrEmailConflict = errors.New("email already in use")
)

type Store interface {
	ListUsers(ctx context.Context) ([]catalog.User, error)
	GetUser(ctx context.Context, id string) (catalog.User, error)
	CreateUser(ctx context.Context, input catalog.CreateUserInput) (catalog.User, error)

	// ListRecipes returns recipes ordered by updatedAt descending.
	ListRecipes(ctx context.Context) ([]catalog.Recipe, error)
	GetRecipe(ctx context.Context, id string) (catalog.Recipe, error)
	CreateRecipe(ctx context.Context, input catalog.CreateRecipeInput) (catalog.Recipe, error)
	SetFavorite(ctx context.Context, id string, favorite bool) (catalog.Recipe, error)
}
