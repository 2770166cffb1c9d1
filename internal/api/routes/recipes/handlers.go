// Package recipes contains handlers for the recipe resource.
package recipes

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	apiError "github.com/eloiseboudon/easyChef/internal/api/error"
	"github.com/eloiseboudon/easyChef/internal/catalog"
	"github.com/eloiseboudon/easyChef/internal/env"
	ecJson "github.com/eloiseboudon/easyChef/internal/json"
	"github.com/eloiseboudon/easyChef/internal/store"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	ctx := r.Context()
	env := env.FromCtx(ctx)

	resp, err := json.Marshal(body)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to marshal response", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(resp); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleListRecipes handles GET /api/recipes. Recipes are ordered by
// updatedAt descending.
func HandleListRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.FromCtx(ctx)

	recipes, err := env.Store.ListRecipes(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to list recipes", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w)
		return
	}
	if recipes == nil {
		recipes = []catalog.Recipe{}
	}

	writeJSON(w, r, http.StatusOK, ListRecipesResponse{Recipes: recipes})
}

// HandleGetRecipe handles GET /api/recipes/{id}.
func HandleGetRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.FromCtx(ctx)

	recipe, err := env.Store.GetRecipe(ctx, chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrRecipeNotFound) {
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found")
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to fetch recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w)
		return
	}

	writeJSON(w, r, http.StatusOK, recipe)
}

// HandleCreateRecipe handles POST /api/recipes.
func HandleCreateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.FromCtx(ctx)

	var request CreateRecipeRequest
	defer func() { _ = r.Body.Close() }()
	decoder := json.NewDecoder(r.Body)
	if err := ecJson.Decode(&request, decoder); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body")
		return
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(request); err != nil {
		env.Logger.ErrorContext(ctx, "failed to validate request body", slog.Any("error", err))
		_ = apiError.EncodeValidationError(w, "invalid request body", apiError.ValidationDetails(err))
		return
	}

	input := catalog.CreateRecipeInput{
		OwnerID:     request.OwnerID,
		Title:       request.Title,
		Description: request.Description,
		Servings:    request.Servings,
		Time:        request.Time,
		Difficulty:  request.Difficulty,
		Tags:        request.Tags,
		Steps:       request.Steps,
		Ingredients: make([]catalog.IngredientInput, 0, len(request.Ingredients)),
	}
	for _, ing := range request.Ingredients {
		input.Ingredients = append(input.Ingredients, catalog.IngredientInput{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}

	env.Logger.DebugContext(ctx, "creating recipe", slog.String("title", request.Title))
	recipe, err := env.Store.CreateRecipe(ctx, input)
	if errors.Is(err, store.ErrUserNotFound) {
		_ = apiError.EncodeError(w, apiError.UserNotFound, "recipe owner not found")
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to create recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w)
		return
	}

	writeJSON(w, r, http.StatusCreated, recipe)
}

// HandleSetFavorite handles PATCH /api/recipes/{id}/favorite.
func HandleSetFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.FromCtx(ctx)

	var request SetFavoriteRequest
	defer func() { _ = r.Body.Close() }()
	decoder := json.NewDecoder(r.Body)
	if err := ecJson.Decode(&request, decoder); err != nil {
		env.Logger.ErrorContext(ctx, "failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body")
		return
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(request); err != nil {
		env.Logger.ErrorContext(ctx, "failed to validate request body", slog.Any("error", err))
		_ = apiError.EncodeValidationError(w, "invalid request body", apiError.ValidationDetails(err))
		return
	}

	recipe, err := env.Store.SetFavorite(ctx, chi.URLParam(r, "id"), *request.Favorite)
	if errors.Is(err, store.ErrRecipeNotFound) {
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found")
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to update favorite", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w)
		return
	}

	writeJSON(w, r, http.StatusOK, recipe)
}
