package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/eloiseboudon/easyChef/internal/catalog"
)

const (
	usersTable   = "users"
	recipesTable = "recipes"

	// uniqueViolation is the Postgres error code surfaced by the row
	// store on duplicate keys.
	uniqueViolation = "23505"
)

// RowStoreConfig configures the REST row-store adapter. URL is the
// base URL of the row store; the adapter appends /rest/v1.
type RowStoreConfig struct {
	URL    string
	Key    string
	Schema string
}

// RowStore persists users and recipes through a generic REST-over-HTTP
// row store (PostgREST wire conventions). The JSON-to-row mapping is
// this adapter's concern; callers only see catalog types.
type RowStore struct {
	restURL string
	key     string
	schema  string
	client  *retryablehttp.Client
}

var _ Store = (*RowStore)(nil)

func NewRowStore(conf RowStoreConfig, client *retryablehttp.Client) *RowStore {
	if client == nil {
		client = retryablehttp.NewClient()
		client.Logger = nil
	}
	schema := conf.Schema
	if schema == "" {
		schema = "public"
	}
	return &RowStore{
		restURL: strings.TrimSuffix(conf.URL, "/") + "/rest/v1",
		key:     conf.Key,
		schema:  schema,
		client:  client,
	}
}

type userRow struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	FullName  string            `json:"full_name"`
	Plan      catalog.Plan      `json:"plan"`
	CreatedAt catalog.Timestamp `json:"created_at"`
}

func (r userRow) toUser() catalog.User {
	return catalog.User{
		ID:        r.ID,
		Email:     r.Email,
		FullName:  r.FullName,
		Plan:      r.Plan,
		CreatedAt: r.CreatedAt,
	}
}

func userToRow(u catalog.User) userRow {
	return userRow{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Plan:      u.Plan,
		CreatedAt: u.CreatedAt,
	}
}

type recipeRow struct {
	ID          string               `json:"id"`
	OwnerID     string               `json:"owner_id"`
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	Servings    int                  `json:"servings"`
	Time        string               `json:"time,omitempty"`
	Tags        []string             `json:"tags"`
	Difficulty  string               `json:"difficulty,omitempty"`
	Category    string               `json:"category,omitempty"`
	IsFavorite  bool                 `json:"is_favorite"`
	SharedCount int                  `json:"shared_count"`
	Ingredients []catalog.Ingredient `json:"ingredients"`
	Steps       []string             `json:"steps"`
	CreatedAt   catalog.Timestamp    `json:"created_at"`
	UpdatedAt   catalog.Timestamp    `json:"updated_at"`
}

func (r recipeRow) toRecipe() catalog.Recipe {
	return catalog.Recipe{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		Title:       r.Title,
		Description: r.Description,
		Servings:    r.Servings,
		Time:        r.Time,
		Tags:        r.Tags,
		Difficulty:  r.Difficulty,
		Category:    r.Category,
		IsFavorite:  r.IsFavorite,
		SharedCount: r.SharedCount,
		Ingredients: r.Ingredients,
		Steps:       r.Steps,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func recipeToRow(rec catalog.Recipe) recipeRow {
	return recipeRow{
		ID:          rec.ID,
		OwnerID:     rec.OwnerID,
		Title:       rec.Title,
		Description: rec.Description,
		Servings:    rec.Servings,
		Time:        rec.Time,
		Tags:        rec.Tags,
		Difficulty:  rec.Difficulty,
		Category:    rec.Category,
		IsFavorite:  rec.IsFavorite,
		SharedCount: rec.SharedCount,
		Ingredients: rec.Ingredients,
		Steps:       rec.Steps,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}

// rowStoreError is the error payload shape of the row store.
type rowStoreError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *rowStoreError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("row store request failed with status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("row store request failed with status %d", e.Status)
}

func (rs *RowStore) do(ctx context.Context, method, table string, query url.Values, body any, prefer string, dst any) error {
	u := rs.restURL + "/" + table
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling row: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("apikey", rs.key)
	req.Header.Set("Authorization", "Bearer "+rs.key)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Profile", rs.schema)
	req.Header.Set("Content-Profile", rs.schema)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := rs.client.Do(req)
	if err != nil {
		return fmt.Errorf("row store request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		storeErr := &rowStoreError{Status: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(storeErr)
		return storeErr
	}

	if dst == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding row store response: %w", err)
	}
	return nil
}

func (rs *RowStore) ListUsers(ctx context.Context) ([]catalog.User, error) {
	query := url.Values{"select": {"*"}}
	var rows []userRow
	if err := rs.do(ctx, http.MethodGet, usersTable, query, nil, "", &rows); err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	users := make([]catalog.User, len(rows))
	for i, row := range rows {
		users[i] = row.toUser()
	}
	return users, nil
}

func (rs *RowStore) GetUser(ctx context.Context, id string) (catalog.User, error) {
	query := url.Values{
		"select": {"*"},
		"id":     {"eq." + id},
		"limit":  {"1"},
	}
	var rows []userRow
	if err := rs.do(ctx, http.MethodGet, usersTable, query, nil, "", &rows); err != nil {
		return catalog.User{}, fmt.Errorf("fetching user: %w", err)
	}
	if len(rows) == 0 {
		return catalog.User{}, ErrUserNotFound
	}
	return rows[0].toUser(), nil
}

func (rs *RowStore) CreateUser(ctx context.Context, input catalog.CreateUserInput) (catalog.User, error) {
	in := input.Normalize()
	row := userToRow(catalog.User{
		ID:        uuid.NewString(),
		Email:     in.Email,
		FullName:  in.FullName,
		Plan:      in.Plan,
		CreatedAt: catalog.Now(),
	})

	var created []userRow
	err := rs.do(ctx, http.MethodPost, usersTable, nil, row, "return=representation", &created)
	if err != nil {
		var storeErr *rowStoreError
		if errors.As(err, &storeErr) && storeErr.Code == uniqueViolation {
			return catalog.User{}, ErrEmailConflict
		}
		return catalog.User{}, fmt.Errorf("creating user: %w", err)
	}
	if len(created) == 0 {
		return catalog.User{}, fmt.Errorf("creating user: row store returned no representation")
	}
	return created[0].toUser(), nil
}

func (rs *RowStore) ListRecipes(ctx context.Context) ([]catalog.Recipe, error) {
	query := url.Values{
		"select": {"*"},
		"order":  {"updated_at.desc"},
	}
	var rows []recipeRow
	if err := rs.do(ctx, http.MethodGet, recipesTable, query, nil, "", &rows); err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}

	recipes := make([]catalog.Recipe, len(rows))
	for i, row := range rows {
		recipes[i] = row.toRecipe()
	}
	return recipes, nil
}

func (rs *RowStore) GetRecipe(ctx context.Context, id string) (catalog.Recipe, error) {
	query := url.Values{
		"select": {"*"},
		"id":     {"eq." + id},
		"limit":  {"1"},
	}
	var rows []recipeRow
	if err := rs.do(ctx, http.MethodGet, recipesTable, query, nil, "", &rows); err != nil {
		return catalog.Recipe{}, fmt.Errorf("fetching recipe: %w", err)
	}
	if len(rows) == 0 {
		return catalog.Recipe{}, ErrRecipeNotFound
	}
	return rows[0].toRecipe(), nil
}

func (rs *RowStore) CreateRecipe(ctx context.Context, input catalog.CreateRecipeInput) (catalog.Recipe, error) {
	in := input.Normalize()

	// The row store has no owner foreign-key error we can map cleanly,
	// so resolve the owner first.
	if _, err := rs.GetUser(ctx, in.OwnerID); err != nil {
		return catalog.Recipe{}, err
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

	var created []recipeRow
	err := rs.do(ctx, http.MethodPost, recipesTable, nil, recipeToRow(recipe), "return=representation", &created)
	if err != nil {
		return catalog.Recipe{}, fmt.Errorf("creating recipe: %w", err)
	}
	if len(created) == 0 {
		return catalog.Recipe{}, fmt.Errorf("creating recipe: row store returned no representation")
	}
	return created[0].toRecipe(), nil
}

func (rs *RowStore) SetFavorite(ctx context.Context, id string, favorite bool) (catalog.Recipe, error) {
	query := url.Values{"id": {"eq." + id}}
	patch := map[string]any{
		"is_favorite": favorite,
		"updated_at":  catalog.Now(),
	}

	var updated []recipeRow
	err := rs.do(ctx, http.MethodPatch, recipesTable, query, patch, "return=representation", &updated)
	if err != nil {
		return catalog.Recipe{}, fmt.Errorf("updating favorite: %w", err)
	}
	// A PATCH on a missing row succeeds with an empty representation.
	if len(updated) == 0 {
		return catalog.Recipe{}, ErrRecipeNotFound
	}
	return updated[0].toRecipe(), nil
}
