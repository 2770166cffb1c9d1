package session

import (
	"context"
	"errors"
	"testing"

	"github.com/eloiseboudon/easyChef/internal/catalog"
	"github.com/eloiseboudon/easyChef/internal/gateway"
	"github.com/eloiseboudon/easyChef/internal/seed"
)

// fakeRemote scripts each capability independently. Unset funcs fail,
// which keeps tests explicit about what they expect to be called.
type fakeRemote struct {
	listUsers    func(ctx context.Context) ([]catalog.User, error)
	listRecipes  func(ctx context.Context) ([]catalog.Recipe, error)
	setFavorite  func(ctx context.Context, id string, favorite bool) (catalog.Recipe, error)
	createRecipe func(ctx context.Context, input catalog.CreateRecipeInput) (catalog.Recipe, error)
}

var errUnscripted = errors.New("not scripted")

func (f *fakeRemote) ListUsers(ctx context.Context) ([]catalog.User, error) {
	if f.listUsers == nil {
		return nil, errUnscripted
	}
	return f.listUsers(ctx)
}

func (f *fakeRemote) GetUser(context.Context, string) (catalog.User, error) {
	return catalog.User{}, errUnscripted
}

func (f *fakeRemote) CreateUser(context.Context, catalog.CreateUserInput) (catalog.User, error) {
	return catalog.User{}, errUnscripted
}

func (f *fakeRemote) ListRecipes(ctx context.Context) ([]catalog.Recipe, error) {
	if f.listRecipes == nil {
		return nil, errUnscripted
	}
	return f.listRecipes(ctx)
}

func (f *fakeRemote) GetRecipe(context.Context, string) (catalog.Recipe, error) {
	return catalog.Recipe{}, errUnscripted
}

func (f *fakeRemote) CreateRecipe(ctx context.Context, input catalog.CreateRecipeInput) (catalog.Recipe, error) {
	if f.createRecipe == nil {
		return catalog.Recipe{}, errUnscripted
	}
	return f.createRecipe(ctx, input)
}

func (f *fakeRemote) SetFavorite(ctx context.Context, id string, favorite bool) (catalog.Recipe, error) {
	if f.setFavorite == nil {
		return catalog.Recipe{}, errUnscripted
	}
	return f.setFavorite(ctx, id, favorite)
}

func onlineRemote() *fakeRemote {
	return &fakeRemote{
		listUsers: func(context.Context) ([]catalog.User, error) {
			return []catalog.User{seed.User()}, nil
		},
		listRecipes: func(context.Context) ([]catalog.Recipe, error) {
			return seed.Recipes(), nil
		},
	}
}

func startOnline(t *testing.T, remote *fakeRemote) *Controller {
	t.Helper()
	controller := New(remote, nil)
	controller.Start(context.Background())

	snap := controller.Snapshot()
	if !snap.Online {
		t.Fatal("expected session to come up online")
	}
	return controller
}

func TestStart_Online(t *testing.T) {
	controller := startOnline(t, onlineRemote())

	snap := controller.Snapshot()
	if snap.Loading {
		t.Error("expected loading to be resolved")
	}
	if snap.Status != "" {
		t.Errorf("expected no status message, got %q", snap.Status)
	}
	if snap.ActiveUser.ID != "user-marie" {
		t.Errorf("expected first user active, got %q", snap.ActiveUser.ID)
	}
	if snap.SelectedID != "lasagnes" {
		t.Errorf("expected first recipe selected, got %q", snap.SelectedID)
	}
	if snap.Servings != 6 {
		t.Errorf("expected base servings of the selection, got %d", snap.Servings)
	}
}

func TestStart_FallsBackOffline(t *testing.T) {
	tests := []struct {
		name   string
		remote *fakeRemote
	}{
		{
			name:   "both reads fail",
			remote: &fakeRemote{},
		},
		{
			name: "users read fails",
			remote: &fakeRemote{
				listRecipes: func(context.Context) ([]catalog.Recipe, error) {
					return seed.Recipes(), nil
				},
			},
		},
		{
			name: "recipes read fails",
			remote: &fakeRemote{
				listUsers: func(context.Context) ([]catalog.User, error) {
					return []catalog.User{seed.User()}, nil
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller := New(tt.remote, nil)
			controller.Start(context.Background())

			snap := controller.Snapshot()
			if snap.Online {
				t.Error("expected an offline session")
			}
			if snap.Status != StatusOffline {
				t.Errorf("expected offline status message, got %q", snap.Status)
			}
			if len(snap.Recipes) != 3 || len(snap.Users) != 1 {
				t.Errorf("expected the demo dataset, got %d recipes, %d users",
					len(snap.Recipes), len(snap.Users))
			}
		})
	}
}

func TestToggleFavorite_OnlineSuccess(t *testing.T) {
	remote := onlineRemote()
	remote.setFavorite = func(_ context.Context, id string, favorite bool) (catalog.Recipe, error) {
		for _, r := range seed.Recipes() {
			if r.ID == id {
				r.IsFavorite = favorite
				return r, nil
			}
		}
		return catalog.Recipe{}, errors.New("unknown recipe")
	}

	controller := startOnline(t, remote)
	controller.ToggleFavorite(context.Background(), "tarte-pommes")

	snap := controller.Snapshot()
	if !snap.Online {
		t.Error("expected session to stay online")
	}
	for _, r := range snap.Recipes {
		if r.ID == "tarte-pommes" && !r.IsFavorite {
			t.Error("expected favorite flag set")
		}
	}
}

func TestToggleFavorite_OnlineFailureRollsBack(t *testing.T) {
	remote := onlineRemote()
	remote.setFavorite = func(context.Context, string, bool) (catalog.Recipe, error) {
		return catalog.Recipe{}, &gateway.Failure{Op: "set favorite", Err: errors.New("connection refused")}
	}

	controller := startOnline(t, remote)
	controller.ToggleFavorite(context.Background(), "tarte-pommes")

	snap := controller.Snapshot()
	if snap.Online {
		t.Error("expected session to drop offline")
	}
	if snap.Status != StatusConnectionLost {
		t.Errorf("expected connection-lost status, got %q", snap.Status)
	}
	for _, r := range snap.Recipes {
		if r.ID == "tarte-pommes" && r.IsFavorite {
			t.Error("expected favorite flag rolled back")
		}
	}

	// Offline is sticky: later toggles never touch the remote again.
	calls := 0
	remote.setFavorite = func(context.Context, string, bool) (catalog.Recipe, error) {
		calls++
		return catalog.Recipe{}, errors.New("should not be called")
	}
	controller.ToggleFavorite(context.Background(), "tarte-pommes")
	if calls != 0 {
		t.Errorf("expected no remote call while offline, got %d", calls)
	}

	snap = controller.Snapshot()
	for _, r := range snap.Recipes {
		if r.ID == "tarte-pommes" && !r.IsFavorite {
			t.Error("expected the offline flip to apply locally")
		}
	}
}

func TestToggleFavorite_OfflineRefreshesUpdatedAt(t *testing.T) {
	controller := New(&fakeRemote{}, nil)
	controller.Start(context.Background())

	var before catalog.Timestamp
	for _, r := range controller.Snapshot().Recipes {
		if r.ID == "tarte-pommes" {
			before = r.UpdatedAt
		}
	}

	controller.ToggleFavorite(context.Background(), "tarte-pommes")

	for _, r := range controller.Snapshot().Recipes {
		if r.ID != "tarte-pommes" {
			continue
		}
		if !r.IsFavorite {
			t.Error("expected favorite flag set")
		}
		if !r.UpdatedAt.After(before.Time) {
			t.Errorf("expected updatedAt to advance, before=%v after=%v", before, r.UpdatedAt)
		}
	}
}

func TestToggleFavorite_UnknownIDIsNoOp(t *testing.T) {
	controller := startOnline(t, onlineRemote())

	before := controller.Snapshot()
	controller.ToggleFavorite(context.Background(), "missing")
	after := controller.Snapshot()

	if len(before.Recipes) != len(after.Recipes) {
		t.Fatal("working set changed")
	}
	for i := range before.Recipes {
		if before.Recipes[i].IsFavorite != after.Recipes[i].IsFavorite {
			t.Error("favorite flags changed")
		}
	}
}

func TestCreateRecipe_OnlineSuccess(t *testing.T) {
	remote := onlineRemote()
	remote.createRecipe = func(_ context.Context, input catalog.CreateRecipeInput) (catalog.Recipe, error) {
		now := catalog.Now()
		return catalog.Recipe{
			ID:        "server-id",
			OwnerID:   input.OwnerID,
			Title:     input.Title,
			Servings:  input.Servings,
			CreatedAt: now,
			UpdatedAt: now,
		}, nil
	}

	controller := startOnline(t, remote)
	created := controller.CreateRecipe(context.Background(), catalog.CreateRecipeInput{
		Title:    "Crêpes",
		Servings: 4,
		Steps:    []string{"Cuire."},
		Ingredients: []catalog.IngredientInput{
			{Name: "Farine", Quantity: 250, Unit: "g"},
		},
	})

	if created.ID != "server-id" {
		t.Errorf("expected the server id, got %q", created.ID)
	}
	if created.OwnerID != "user-marie" {
		t.Errorf("expected the active user as owner, got %q", created.OwnerID)
	}

	snap := controller.Snapshot()
	if snap.Recipes[0].ID != "server-id" {
		t.Error("expected new recipe prepended")
	}
	if snap.SelectedID != "server-id" {
		t.Error("expected new recipe selected")
	}
	if snap.Servings != 4 {
		t.Errorf("expected servings reset to the new base, got %d", snap.Servings)
	}
}

func TestCreateRecipe_OnlineFailureFallsThrough(t *testing.T) {
	remote := onlineRemote()
	remote.createRecipe = func(context.Context, catalog.CreateRecipeInput) (catalog.Recipe, error) {
		return catalog.Recipe{}, &gateway.Failure{Op: "create recipe", Err: errors.New("connection refused")}
	}

	controller := startOnline(t, remote)
	created := controller.CreateRecipe(context.Background(), catalog.CreateRecipeInput{
		Title:    "Crêpes",
		Servings: 4,
		Tags:     []string{"Dessert"},
		Steps:    []string{"Cuire."},
		Ingredients: []catalog.IngredientInput{
			{Name: "Farine", Quantity: 250, Unit: "g"},
		},
	})

	if created.ID == "" {
		t.Fatal("expected a locally synthesized recipe")
	}
	if created.IsFavorite || created.SharedCount != 0 {
		t.Errorf("unexpected defaults: %+v", created)
	}
	if !created.CreatedAt.Equal(created.UpdatedAt.Time) {
		t.Error("expected createdAt == updatedAt")
	}
	if created.Category != "Dessert" {
		t.Errorf("expected category from first tag, got %q", created.Category)
	}

	snap := controller.Snapshot()
	if snap.Online {
		t.Error("expected session to drop offline")
	}
	if snap.Status != StatusConnectionLost {
		t.Errorf("expected connection-lost status, got %q", snap.Status)
	}
	if snap.Recipes[0].ID != created.ID {
		t.Error("expected new recipe prepended")
	}
}

func TestCreateRecipe_MaterializedUserOwnsTheRecipe(t *testing.T) {
	// An offline working set whose local fallback predates the active
	// user: creating a recipe must materialize the user locally and
	// make it the owner.
	active := seed.User()
	controller := New(&fakeRemote{}, nil)
	controller.online = false
	controller.loading = false
	controller.activeUser = active
	controller.users = []catalog.User{active}
	controller.local = gateway.NewLocal(nil, nil)

	created := controller.CreateRecipe(context.Background(), catalog.CreateRecipeInput{
		Title:    "Crêpes",
		Servings: 4,
		Steps:    []string{"Cuire."},
		Ingredients: []catalog.IngredientInput{
			{Name: "Farine", Quantity: 250, Unit: "g"},
		},
	})

	if created.OwnerID == "" || created.OwnerID == active.ID {
		t.Fatalf("expected the materialized user as owner, got %q", created.OwnerID)
	}

	snap := controller.Snapshot()
	var owner catalog.User
	for _, u := range snap.Users {
		if u.ID == created.OwnerID {
			owner = u
		}
	}
	if owner.ID == "" {
		t.Fatalf("owner %q missing from the working set", created.OwnerID)
	}
	if owner.Email != active.Email {
		t.Errorf("expected the active user's email preserved, got %q", owner.Email)
	}
	if snap.ActiveUser.ID != owner.ID {
		t.Errorf("expected the materialized user to become active, got %q", snap.ActiveUser.ID)
	}
}

func TestCreateRecipe_OfflineUniqueIDs(t *testing.T) {
	controller := New(&fakeRemote{}, nil)
	controller.Start(context.Background())

	input := catalog.CreateRecipeInput{
		Title:    "Crêpes",
		Servings: 4,
		Steps:    []string{"Cuire."},
		Ingredients: []catalog.IngredientInput{
			{Name: "Farine", Quantity: 250, Unit: "g"},
		},
	}

	seen := map[string]bool{}
	for _, r := range controller.Snapshot().Recipes {
		seen[r.ID] = true
	}
	for i := 0; i < 5; i++ {
		created := controller.CreateRecipe(context.Background(), input)
		if seen[created.ID] {
			t.Fatalf("duplicate id %q", created.ID)
		}
		seen[created.ID] = true
	}
}

func TestServingAdjustment(t *testing.T) {
	controller := startOnline(t, onlineRemote())

	// lasagnes starts at 6 servings.
	controller.IncreaseServings()
	if got := controller.Snapshot().Servings; got != 7 {
		t.Errorf("expected 7, got %d", got)
	}

	for i := 0; i < 30; i++ {
		controller.IncreaseServings()
	}
	if got := controller.Snapshot().Servings; got != 20 {
		t.Errorf("expected clamp at 20, got %d", got)
	}

	for i := 0; i < 30; i++ {
		controller.DecreaseServings()
	}
	if got := controller.Snapshot().Servings; got != 1 {
		t.Errorf("expected clamp at 1, got %d", got)
	}
}

func TestSelectRecipe(t *testing.T) {
	controller := startOnline(t, onlineRemote())

	controller.SelectRecipe("salade-cesar")
	snap := controller.Snapshot()
	if snap.SelectedID != "salade-cesar" {
		t.Fatalf("expected selection to change, got %q", snap.SelectedID)
	}
	if snap.Servings != 4 {
		t.Errorf("expected servings reset to the recipe's base, got %d", snap.Servings)
	}

	controller.SelectRecipe("missing")
	snap = controller.Snapshot()
	if snap.SelectedID != "salade-cesar" {
		t.Errorf("expected unknown id to keep the selection, got %q", snap.SelectedID)
	}
}

func TestScaledIngredients(t *testing.T) {
	controller := startOnline(t, onlineRemote())

	controller.SelectRecipe("lasagnes")
	controller.DecreaseServings()
	controller.DecreaseServings()
	controller.DecreaseServings() // 6 -> 3

	scaled := controller.ScaledIngredients()
	if len(scaled) == 0 {
		t.Fatal("expected scaled ingredients")
	}
	if scaled[0].Quantity != 125 {
		t.Errorf("expected 250 g halved to 125, got %v", scaled[0].Quantity)
	}
}
