package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/eloiseboudon/easyChef/internal/catalog"
)

// Memory is a mutex-guarded in-memory store. Values are deep-cloned on
// the way in and out so callers never alias store state.
type Memory struct {
	mu      sync.Mutex
	users   []catalog.User
	recipes []catalog.Recipe
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{}
}

// Seed replaces the store contents. Existing data is discarded.
func (m *Memory) Seed(users []catalog.User, recipes []catalog.Recipe) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.users = make([]catalog.User, len(users))
	for i, u := range users {
		m.users[i] = u.Clone()
	}
	m.recipes = catalog.CloneRecipes(recipes)
}

func (m *Memory) ListUsers(ctx context.Context) ([]catalog.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]catalog.User, len(m.users))
	for i, u := range m.users {
		out[i] = u.Clone()
	}
	return out, nil
}

func (m *Memory) GetUser(ctx context.Context, id string) (catalog.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.ID == id {
			return u.Clone(), nil
		}
	}
	return catalog.User{}, ErrUserNotFound
}

func (m *Memory) CreateUser(ctx context.Context, input catalog.CreateUserInput) (catalog.User, error) {
	in := input.Normalize()

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if strings.EqualFold(u.Email, in.Email) {
			return catalog.User{}, ErrEmailConflict
		}
	}

	user := catalog.User{
		ID:        uuid.NewString(),
		Email:     in.Email,
		FullName:  in.FullName,
		Plan:      in.Plan,
		CreatedAt: catalog.Now(),
	}
	m.users = append(m.users, user)
	return user.Clone(), nil
}

func (m *Memory) ListRecipes(ctx context.Context) ([]catalog.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := catalog.CloneRecipes(m.recipes)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt.Time)
	})
	return out, nil
}

func (m *Memory) GetRecipe(ctx context.Context, id string) (catalog.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.recipes {
		if r.ID == id {
			return r.Clone(), nil
		}
	}
	return catalog.Recipe{}, ErrRecipeNotFound
}

func (m *Memory) CreateRecipe(ctx context.Context, input catalog.CreateRecipeInput) (catalog.Recipe, error) {
	in := input.Normalize()

	m.mu.Lock()
	defer m.mu.Unlock()

	ownerExists := false
	for _, u := range m.users {
		if u.ID == in.OwnerID {
			ownerExists = true
			break
		}
	}
	if !ownerExists {
		return catalog.Recipe{}, ErrUserNotFound
	}

	now := catalog.Now()
	recipe := catalog.Recipe{
		ID:          uuid.NewString(),
		OwnerID:     in.OwnerID,
		Title:       in.Title,
		Description: in.Description,
		Servings:    in.Servings,
		Time:        in.Time,
		Difficulty:  in.Difficulty,
		Tags:        in.Tags,
		Category:    in.PrimaryCategory(),
		IsFavorite:  false,
		SharedCount: 0,
		Ingredients: make([]catalog.Ingredient, 0, len(in.Ingredients)),
		Steps:       in.Steps,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, ing := range in.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, catalog.Ingredient{
			ID:       uuid.NewString(),
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}

	m.recipes = append([]catalog.Recipe{recipe}, m.recipes...)
	return recipe.Clone(), nil
}

func (m *Memory) SetFavorite(ctx context.Context, id string, favorite bool) (catalog.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.recipes {
		if m.recipes[i].ID == id {
			m.recipes[i].IsFavorite = favorite
			m.recipes[i].UpdatedAt = catalog.Now()
			return m.recipes[i].Clone(), nil
		}
	}
	return catalog.Recipe{}, ErrRecipeNotFound
}
