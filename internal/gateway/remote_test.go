package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eloiseboudon/easyChef/internal/catalog"
	"github.com/eloiseboudon/easyChef/internal/seed"
)

func TestRemote_ListRecipes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/recipes" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"recipes": seed.Recipes()})
	}))
	defer server.Close()

	recipes, err := NewRemote(server.URL).ListRecipes(context.Background())
	if err != nil {
		t.Fatalf("ListRecipes: %v", err)
	}
	if len(recipes) != 3 {
		t.Fatalf("expected 3 recipes, got %d", len(recipes))
	}
	if recipes[0].ID != "lasagnes" {
		t.Errorf("unexpected first recipe: %q", recipes[0].ID)
	}
}

func TestRemote_SetFavorite(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("expected PATCH, got %s", r.Method)
		}
		if r.URL.Path != "/api/recipes/tarte-pommes/favorite" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		var body map[string]bool
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		if !body["favorite"] {
			t.Error("expected favorite=true in body")
		}

		recipe := seed.Recipes()[1]
		recipe.IsFavorite = true
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(recipe)
	}))
	defer server.Close()

	recipe, err := NewRemote(server.URL).SetFavorite(context.Background(), "tarte-pommes", true)
	if err != nil {
		t.Fatalf("SetFavorite: %v", err)
	}
	if !recipe.IsFavorite {
		t.Error("expected favorite flag set")
	}
}

func TestRemote_CreateRecipeSendsWireNames(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if body["ownerId"] != "user-marie" {
			t.Errorf("expected ownerId field, got %v", body)
		}
		if _, ok := body["OwnerID"]; ok {
			t.Error("unexpected Go field name on the wire")
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(catalog.Recipe{ID: "r1", OwnerID: "user-marie"})
	}))
	defer server.Close()

	recipe, err := NewRemote(server.URL).CreateRecipe(context.Background(), catalog.CreateRecipeInput{
		OwnerID:  "user-marie",
		Title:    "Crêpes",
		Servings: 4,
		Steps:    []string{"Cuire."},
		Ingredients: []catalog.IngredientInput{
			{Name: "Farine", Quantity: 250, Unit: "g"},
		},
	})
	if err != nil {
		t.Fatalf("CreateRecipe: %v", err)
	}
	if recipe.ID != "r1" {
		t.Errorf("unexpected recipe id: %q", recipe.ID)
	}
}

func TestRemote_ServerErrorWrapsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Recipe not found"})
	}))
	defer server.Close()

	_, err := NewRemote(server.URL).GetRecipe(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected an error")
	}

	var failure *Failure
	if !errors.As(err, &failure) {
		t.Fatalf("expected a Failure, got %T", err)
	}
	if failure.Op != "get recipe" {
		t.Errorf("unexpected op: %q", failure.Op)
	}
}

func TestRemote_UnreachableServerWrapsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := NewRemote(server.URL).ListUsers(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}

	var failure *Failure
	if !errors.As(err, &failure) {
		t.Fatalf("expected a Failure, got %T", err)
	}
}

func TestRemote_RetriesDisabled(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewRemote(server.URL).ListRecipes(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	if calls != 1 {
		t.Errorf("expected a single attempt, got %d", calls)
	}
}
