// Package users contains handlers for the user resource.
package users

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

// HandleListUsers handles GET /api/users.
func HandleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.FromCtx(ctx)

	users, err := env.Store.ListUsers(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to list users", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w)
		return
	}
	if users == nil {
		users = []catalog.User{}
	}

	resp, err := json.Marshal(ListUsersResponse{Users: users})
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to marshal response", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(resp); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleGetUser handles GET /api/users/{id}.
func HandleGetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.FromCtx(ctx)

	user, err := env.Store.GetUser(ctx, chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrUserNotFound) {
		_ = apiError.EncodeError(w, apiError.UserNotFound, "user not found")
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to fetch user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w)
		return
	}

	resp, err := json.Marshal(user)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to marshal response", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(resp); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}

// HandleCreateUser handles POST /api/users.
func HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.FromCtx(ctx)

	var request CreateUserRequest
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

	env.Logger.DebugContext(ctx, "creating user", slog.String("email", request.Email))
	user, err := env.Store.CreateUser(ctx, catalog.CreateUserInput{
		Email:    request.Email,
		FullName: request.FullName,
		Plan:     catalog.Plan(request.Plan),
	})
	if errors.Is(err, store.ErrEmailConflict) {
		_ = apiError.EncodeError(w, apiError.EmailConflict, "a user already exists with this email")
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w)
		return
	}

	resp, err := json.Marshal(user)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to marshal response", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if _, err := w.Write(resp); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}
