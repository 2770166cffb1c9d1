package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/eloiseboudon/easyChef/internal/catalog"
	"github.com/hashicorp/go-retryablehttp"
)

// Remote implements Gateway against a running catalog server.
type Remote struct {
	baseURL string
	client  *retryablehttp.Client
}

// NewRemote builds a Remote targeting baseURL, e.g. "http://localhost:4000".
// A request either succeeds or fails once; failed calls surface
// immediately so the caller can fall back to local data.
func NewRemote(baseURL string) *Remote {
	client := retryablehttp.NewClient()
	client.RetryMax = 0
	client.HTTPClient.Timeout = 10 * time.Second
	client.Logger = nil

	return &Remote{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

type ingredientPayload struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type createRecipePayload struct {
	OwnerID     string              `json:"ownerId"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Servings    int                 `json:"servings"`
	Time        string              `json:"time,omitempty"`
	Difficulty  string              `json:"difficulty,omitempty"`
	Tags        []string            `json:"tags,omitempty"`
	Steps       []string            `json:"steps"`
	Ingredients []ingredientPayload `json:"ingredients"`
}

type createUserPayload struct {
	Email    string       `json:"email"`
	FullName string       `json:"fullName"`
	Plan     catalog.Plan `json:"plan,omitempty"`
}

type remoteError struct {
	Status  int
	Message string `json:"message"`
}

func (e *remoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.Status)
}

func (r *Remote) do(ctx context.Context, op, method, path string, body, dst any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return &Failure{Op: op, Err: fmt.Errorf("encoding request: %w", err)}
		}
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, r.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &Failure{Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return &Failure{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		remoteErr := &remoteError{Status: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(remoteErr)
		return &Failure{Op: op, Err: remoteErr}
	}

	if dst != nil {
		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			return &Failure{Op: op, Err: fmt.Errorf("decoding response: %w", err)}
		}
	}
	return nil
}

func (r *Remote) ListUsers(ctx context.Context) ([]catalog.User, error) {
	var response struct {
		Users []catalog.User `json:"users"`
	}
	if err := r.do(ctx, "list users", http.MethodGet, "/api/users", nil, &response); err != nil {
		return nil, err
	}
	return response.Users, nil
}

func (r *Remote) GetUser(ctx context.Context, id string) (catalog.User, error) {
	var user catalog.User
	path := "/api/users/" + url.PathEscape(id)
	if err := r.do(ctx, "get user", http.MethodGet, path, nil, &user); err != nil {
		return catalog.User{}, err
	}
	return user, nil
}

func (r *Remote) CreateUser(ctx context.Context, input catalog.CreateUserInput) (catalog.User, error) {
	payload := createUserPayload{
		Email:    input.Email,
		FullName: input.FullName,
		Plan:     input.Plan,
	}

	var user catalog.User
	if err := r.do(ctx, "create user", http.MethodPost, "/api/users", payload, &user); err != nil {
		return catalog.User{}, err
	}
	return user, nil
}

func (r *Remote) ListRecipes(ctx context.Context) ([]catalog.Recipe, error) {
	var response struct {
		Recipes []catalog.Recipe `json:"recipes"`
	}
	if err := r.do(ctx, "list recipes", http.MethodGet, "/api/recipes", nil, &response); err != nil {
		return nil, err
	}
	return response.Recipes, nil
}

func (r *Remote) GetRecipe(ctx context.Context, id string) (catalog.Recipe, error) {
	var recipe catalog.Recipe
	path := "/api/recipes/" + url.PathEscape(id)
	if err := r.do(ctx, "get recipe", http.MethodGet, path, nil, &recipe); err != nil {
		return catalog.Recipe{}, err
	}
	return recipe, nil
}

func (r *Remote) CreateRecipe(ctx context.Context, input catalog.CreateRecipeInput) (catalog.Recipe, error) {
	payload := createRecipePayload{
		OwnerID:     input.OwnerID,
		Title:       input.Title,
		Description: input.Description,
		Servings:    input.Servings,
		Time:        input.Time,
		Difficulty:  input.Difficulty,
		Tags:        input.Tags,
		Steps:       input.Steps,
	}
	for _, ing := range input.Ingredients {
		payload.Ingredients = append(payload.Ingredients, ingredientPayload{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}

	var recipe catalog.Recipe
	if err := r.do(ctx, "create recipe", http.MethodPost, "/api/recipes", payload, &recipe); err != nil {
		return catalog.Recipe{}, err
	}
	return recipe, nil
}

func (r *Remote) SetFavorite(ctx context.Context, id string, favorite bool) (catalog.Recipe, error) {
	var recipe catalog.Recipe
	path := "/api/recipes/" + url.PathEscape(id) + "/favorite"
	body := map[string]bool{"favorite": favorite}
	if err := r.do(ctx, "set favorite", http.MethodPatch, path, body, &recipe); err != nil {
		return catalog.Recipe{}, err
	}
	return recipe, nil
}
