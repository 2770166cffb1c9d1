// Package gateway provides the data access layer used by clients of the
// catalog. Remote talks to a running server over HTTP, Local serves a
// self-contained in-process working set for offline use.
package gateway

import (
	"context"
	"fmt"

	"github.com/eloiseboudon/easyChef/internal/catalog"
)

// Gateway is the capability surface shared by the remote and local
// data sources.
type Gateway interface {
	ListUsers(ctx context.Context) ([]catalog.User, error)
	GetUser(ctx context.Context, id string) (catalog.User, error)
	CreateUser(ctx context.Context, input catalog.CreateUserInput) (catalog.User, error)
	ListRecipes(ctx context.Context) ([]catalog.Recipe, error)
	GetRecipe(ctx context.Context, id string) (catalog.Recipe, error)
	CreateRecipe(ctx context.Context, input catalog.CreateRecipeInput) (catalog.Recipe, error)
	SetFavorite(ctx context.Context, id string, favorite bool) (catalog.Recipe, error)
}

// Failure wraps any error coming out of the remote gateway so callers
// can distinguish "the backend is unreachable or unhappy" from their
// own mistakes.
type Failure struct {
	Op  string
	Err error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("gateway: %s: %v", f.Op, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}
