package gateway

import (
	"context"
	"sync"

	"github.com/eloiseboudon/easyChef/internal/catalog"
	"github.com/oklog/ulid/v2"
)

// Local implements Gateway over an in-process working set. It never
// returns an error: a lookup for an unknown id hands back a zero
// value and a mutation on an unknown id is a no-op.
type Local struct {
	mu      sync.Mutex
	users   []catalog.User
	recipes []catalog.Recipe
}

// NewLocal seeds a Local with copies of the given data.
func NewLocal(users []catalog.User, recipes []catalog.Recipe) *Local {
	l := &Local{
		users:   make([]catalog.User, len(users)),
		recipes: catalog.CloneRecipes(recipes),
	}
	copy(l.users, users)
	return l
}

func (l *Local) ListUsers(_ context.Context) ([]catalog.User, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]catalog.User, len(l.users))
	copy(out, l.users)
	return out, nil
}

func (l *Local) GetUser(_ context.Context, id string) (catalog.User, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, u := range l.users {
		if u.ID == id {
			return u, nil
		}
	}
	return catalog.User{}, nil
}

func (l *Local) CreateUser(_ context.Context, input catalog.CreateUserInput) (catalog.User, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	input = input.Normalize()
	user := catalog.User{
		ID:        "local-" + ulid.Make().String(),
		Email:     input.Email,
		FullName:  input.FullName,
		Plan:      input.Plan,
		CreatedAt: catalog.Now(),
	}
	l.users = append(l.users, user)
	return user, nil
}

func (l *Local) ListRecipes(_ context.Context) ([]catalog.Recipe, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return catalog.CloneRecipes(l.recipes), nil
}

func (l *Local) GetRecipe(_ context.Context, id string) (catalog.Recipe, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, r := range l.recipes {
		if r.ID == id {
			return r.Clone(), nil
		}
	}
	return catalog.Recipe{}, nil
}

func (l *Local) CreateRecipe(_ context.Context, input catalog.CreateRecipeInput) (catalog.Recipe, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	input = input.Normalize()
	now := catalog.Now()
	recipe := catalog.Recipe{
		ID:          "local-" + ulid.Make().String(),
		OwnerID:     input.OwnerID,
		Title:       input.Title,
		Description: input.Description,
		Servings:    input.Servings,
		Time:        input.Time,
		Tags:        input.Tags,
		Difficulty:  input.Difficulty,
		Category:    input.PrimaryCategory(),
		Ingredients: make([]catalog.Ingredient, 0, len(input.Ingredients)),
		Steps:       input.Steps,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, ing := range input.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, catalog.Ingredient{
			ID:       "local-" + ulid.Make().String(),
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}

	l.recipes = append([]catalog.Recipe{recipe}, l.recipes...)
	return recipe.Clone(), nil
}

func (l *Local) SetFavorite(_ context.Context, id string, favorite bool) (catalog.Recipe, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, r := range l.recipes {
		if r.ID == id {
			l.recipes[i].IsFavorite = favorite
			l.recipes[i].UpdatedAt = catalog.Now()
			return l.recipes[i].Clone(), nil
		}
	}
	return catalog.Recipe{}, nil
}
