// Package session orchestrates the client working set: startup load,
// online/offline mode, optimistic mutations and serving adjustment.
package session

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/eloiseboudon/easyChef/internal/catalog"
	"github.com/eloiseboudon/easyChef/internal/gateway"
	"github.com/eloiseboudon/easyChef/internal/scale"
	"github.com/eloiseboudon/easyChef/internal/seed"
	"golang.org/x/sync/errgroup"
)

const (
	// StatusOffline is shown when the startup load cannot reach the
	// backend and the session runs on the demo dataset.
	StatusOffline = "Mode hors ligne : données de démonstration."

	// StatusConnectionLost is shown when a mutation fails after a
	// successful startup. The session stays offline afterwards.
	StatusConnectionLost = "Connexion au serveur perdue : passage en mode hors ligne."
)

// Controller owns the working set shown to the presentation layer.
// All state is guarded by a mutex; accessors return clones so callers
// can never mutate the set behind the controller's back.
type Controller struct {
	remote gateway.Gateway
	logger *slog.Logger

	mu         sync.Mutex
	local      *gateway.Local
	online     bool
	loading    bool
	status     string
	users      []catalog.User
	recipes    []catalog.Recipe
	activeUser catalog.User
	selectedID string
	servings   int
}

// Snapshot is a point-in-time copy of the controller state.
type Snapshot struct {
	Online     bool
	Loading    bool
	Status     string
	Users      []catalog.User
	Recipes    []catalog.Recipe
	ActiveUser catalog.User
	SelectedID string
	Servings   int
}

// New builds a Controller that will try remote first. A nil logger
// disables logging.
func New(remote gateway.Gateway, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{
		remote:  remote,
		logger:  logger,
		loading: true,
	}
}

// Start loads users and recipes concurrently through the remote
// gateway. Both loads must succeed for the session to come up online;
// any failure falls back to the built-in demo dataset. The decision
// is made once, the session never probes the backend again.
func (c *Controller) Start(ctx context.Context) {
	var (
		users   []catalog.User
		recipes []catalog.Recipe
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		users, err = c.remote.ListUsers(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		recipes, err = c.remote.ListRecipes(groupCtx)
		return err
	})
	err := group.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false

	if err != nil {
		c.logger.Warn("backend unreachable, falling back to demo data", slog.Any("error", err))
		c.users = []catalog.User{seed.User()}
		c.recipes = seed.Recipes()
		c.local = gateway.NewLocal(c.users, c.recipes)
		c.online = false
		c.status = StatusOffline
	} else {
		c.users = users
		c.recipes = recipes
		c.online = true
	}

	if len(c.users) > 0 {
		c.activeUser = c.users[0]
	}
	if len(c.recipes) > 0 {
		c.selectedID = c.recipes[0].ID
		c.servings = scale.ClampServings(c.recipes[0].Servings)
	} else {
		c.servings = scale.MinServings
	}
}

// Snapshot returns a deep copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	users := make([]catalog.User, len(c.users))
	copy(users, c.users)

	return Snapshot{
		Online:     c.online,
		Loading:    c.loading,
		Status:     c.status,
		Users:      users,
		Recipes:    catalog.CloneRecipes(c.recipes),
		ActiveUser: c.activeUser,
		SelectedID: c.selectedID,
		Servings:   c.servings,
	}
}

// SelectedRecipe returns the currently selected recipe, or false when
// the working set is empty.
func (c *Controller) SelectedRecipe() (catalog.Recipe, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(c.selectedID); i >= 0 {
		return c.recipes[i].Clone(), true
	}
	if len(c.recipes) > 0 {
		return c.recipes[0].Clone(), true
	}
	return catalog.Recipe{}, false
}

// SelectRecipe switches the selection and resets the displayed
// serving count to the recipe's base servings. An unknown id keeps
// the previous selection.
func (c *Controller) SelectRecipe(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return
	}
	c.selectedID = id
	c.servings = scale.ClampServings(c.recipes[i].Servings)
}

// IncreaseServings bumps the displayed serving count. Clamping at the
// upper bound is silent.
func (c *Controller) IncreaseServings() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.servings = scale.ClampServings(c.servings + 1)
}

// DecreaseServings lowers the displayed serving count. Clamping at
// the lower bound is silent.
func (c *Controller) DecreaseServings() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.servings = scale.ClampServings(c.servings - 1)
}

// ScaledIngredients returns the selected recipe's ingredients scaled
// to the displayed serving count.
func (c *Controller) ScaledIngredients() []catalog.Ingredient {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(c.selectedID)
	if i < 0 {
		return nil
	}
	return scale.Scale(c.recipes[i], c.servings)
}

// ToggleFavorite flips the favorite flag of the given recipe,
// optimistically. Online, the flip is confirmed with the backend;
// a failed confirmation rolls the flag back and drops the session
// to offline mode for good.
func (c *Controller) ToggleFavorite(ctx context.Context, id string) {
	c.mu.Lock()
	i := c.indexOf(id)
	if i < 0 {
		c.mu.Unlock()
		return
	}

	next := !c.recipes[i].IsFavorite
	c.recipes[i].IsFavorite = next
	online := c.online
	local := c.local
	c.mu.Unlock()

	if !online {
		if local != nil {
			updated, _ := local.SetFavorite(ctx, id, next)
			if updated.ID != "" {
				c.mu.Lock()
				if j := c.indexOf(id); j >= 0 {
					c.recipes[j] = updated
				}
				c.mu.Unlock()
			}
		}
		return
	}

	confirmed, err := c.remote.SetFavorite(ctx, id, next)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.logger.Warn("favorite toggle failed, rolling back", slog.String("recipe_id", id), slog.Any("error", err))
		if j := c.indexOf(id); j >= 0 {
			c.recipes[j].IsFavorite = !next
		}
		c.goOffline()
		return
	}

	if j := c.indexOf(id); j >= 0 {
		c.recipes[j] = confirmed
	}
}

// CreateRecipe submits a new recipe for the active user, prepends the
// result to the working set, selects it and resets the serving count
// to its base servings. Online failures fall through to a local
// creation and leave the session offline.
func (c *Controller) CreateRecipe(ctx context.Context, input catalog.CreateRecipeInput) catalog.Recipe {
	c.mu.Lock()
	input.OwnerID = c.activeUser.ID
	online := c.online
	c.mu.Unlock()

	if online {
		recipe, err := c.remote.CreateRecipe(ctx, input)
		if err == nil {
			c.adopt(recipe)
			return recipe
		}
		c.logger.Warn("recipe creation failed, creating locally", slog.Any("error", err))
		c.mu.Lock()
		c.goOffline()
		c.mu.Unlock()
	}

	return c.createLocally(ctx, input)
}

func (c *Controller) createLocally(ctx context.Context, input catalog.CreateRecipeInput) catalog.Recipe {
	c.mu.Lock()
	if c.local == nil {
		c.local = gateway.NewLocal(c.users, c.recipes)
	}
	local := c.local
	active := c.activeUser
	c.mu.Unlock()

	if user, _ := local.GetUser(ctx, active.ID); user.ID == "" && active.ID != "" {
		materialized, _ := local.CreateUser(ctx, catalog.CreateUserInput{
			Email:    active.Email,
			FullName: active.FullName,
			Plan:     active.Plan,
		})
		input.OwnerID = materialized.ID
		c.mu.Lock()
		c.users = append(c.users, materialized)
		c.activeUser = materialized
		c.mu.Unlock()
	}

	recipe, _ := local.CreateRecipe(ctx, input)
	c.adopt(recipe)
	return recipe
}

// adopt prepends a freshly created recipe and selects it.
func (c *Controller) adopt(recipe catalog.Recipe) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recipes = append([]catalog.Recipe{recipe.Clone()}, c.recipes...)
	c.selectedID = recipe.ID
	c.servings = scale.ClampServings(recipe.Servings)
}

// goOffline flips the session to offline and builds the local
// fallback out of the current working set. Callers hold the mutex.
func (c *Controller) goOffline() {
	if !c.online {
		return
	}
	c.online = false
	c.status = StatusConnectionLost
	c.local = gateway.NewLocal(c.users, c.recipes)
}

func (c *Controller) indexOf(id string) int {
	for i, r := range c.recipes {
		if r.ID == id {
			return i
		}
	}
	return -1
}
