package store

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eloiseboudon/easyChef/internal/catalog"
)

//go:embed schema.sql
var schema string

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Postgres persists users and recipes in a Postgres database.
type Postgres struct {
	pool *pgxpool.Pool
}

var _ Store = (*Postgres)(nil)

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// EnsureSchema applies the schema when the users table is missing.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	var exists bool
	err := p.pool.QueryRow(ctx,
		`SELECT to_regclass('public.users') IS NOT NULL`).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking schema: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := p.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}
	return nil
}

const userColumns = `id, email, full_name, plan, created_at`

func scanUser(row pgx.Row) (catalog.User, error) {
	var u catalog.User
	if err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.Plan, &u.CreatedAt.Time); err != nil {
		return catalog.User{}, err
	}
	u.CreatedAt = catalog.NewTimestamp(u.CreatedAt.Time)
	return u, nil
}

func (p *Postgres) ListUsers(ctx context.Context) ([]catalog.User, error) {
	rows, err := p.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []catalog.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

func (p *Postgres) GetUser(ctx context.Context, id string) (catalog.User, error) {
	u, err := scanUser(p.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return catalog.User{}, ErrUserNotFound
	} else if err != nil {
		return catalog.User{}, fmt.Errorf("fetching user: %w", err)
	}
	return u, nil
}

func (p *Postgres) CreateUser(ctx context.Context, input catalog.CreateUserInput) (catalog.User, error) {
	in := input.Normalize()
	user := catalog.User{
		ID:        uuid.NewString(),
		Email:     in.Email,
		FullName:  in.FullName,
		Plan:      in.Plan,
		CreatedAt: catalog.Now(),
	}

	_, err := p.pool.Exec(ctx,
		`INSERT INTO users (id, email, full_name, plan, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.FullName, user.Plan, user.CreatedAt.Time)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return catalog.User{}, ErrEmailConflict
	} else if err != nil {
		return catalog.User{}, fmt.Errorf("creating user: %w", err)
	}
	return user, nil
}

const recipeColumns = `id, owner_id, title, COALESCE(description, ''), servings,
	COALESCE(time_label, ''), COALESCE(difficulty, ''), COALESCE(category, ''),
	tags, is_favorite, shared_count, ingredients, steps, created_at, updated_at`

func scanRecipe(row pgx.Row) (catalog.Recipe, error) {
	var r catalog.Recipe
	err := row.Scan(&r.ID, &r.OwnerID, &r.Title, &r.Description, &r.Servings,
		&r.Time, &r.Difficulty, &r.Category,
		&r.Tags, &r.IsFavorite, &r.SharedCount, &r.Ingredients, &r.Steps,
		&r.CreatedAt.Time, &r.UpdatedAt.Time)
	if err != nil {
		return catalog.Recipe{}, err
	}
	r.CreatedAt = catalog.NewTimestamp(r.CreatedAt.Time)
	r.UpdatedAt = catalog.NewTimestamp(r.UpdatedAt.Time)
	return r, nil
}

func (p *Postgres) ListRecipes(ctx context.Context) ([]catalog.Recipe, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT `+recipeColumns+` FROM recipes ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}
	defer rows.Close()

	var recipes []catalog.Recipe
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning recipe: %w", err)
		}
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}
	return recipes, nil
}

func (p *Postgres) GetRecipe(ctx context.Context, id string) (catalog.Recipe, error) {
	r, err := scanRecipe(p.pool.QueryRow(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return catalog.Recipe{}, ErrRecipeNotFound
	} else if err != nil {
		return catalog.Recipe{}, fmt.Errorf("fetching recipe: %w", err)
	}
	return r, nil
}

func (p *Postgres) CreateRecipe(ctx context.Context, input catalog.CreateRecipeInput) (catalog.Recipe, error) {
	in := input.Normalize()

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

	_, err := p.pool.Exec(ctx,
		`INSERT INTO recipes (id, owner_id, title, description, servings, time_label,
		   difficulty, category, tags, is_favorite, shared_count, ingredients, steps,
		   created_at, updated_at)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), NULLIF($7, ''),
		   NULLIF($8, ''), $9, FALSE, 0, $10, $11, $12, $12)`,
		recipe.ID, recipe.OwnerID, recipe.Title, recipe.Description, recipe.Servings,
		recipe.Time, recipe.Difficulty, recipe.Category, recipe.Tags,
		recipe.Ingredients, recipe.Steps, recipe.CreatedAt.Time)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return catalog.Recipe{}, ErrUserNotFound
	} else if err != nil {
		return catalog.Recipe{}, fmt.Errorf("creating recipe: %w", err)
	}
	return recipe, nil
}

func (p *Postgres) SetFavorite(ctx context.Context, id string, favorite bool) (catalog.Recipe, error) {
	now := catalog.Now()
	tag, err := p.pool.Exec(ctx,
		`UPDATE recipes SET is_favorite = $1, updated_at = $2 WHERE id = $3`,
		favorite, now.Time, id)
	if err != nil {
		return catalog.Recipe{}, fmt.Errorf("updating favorite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.Recipe{}, ErrRecipeNotFound
	}
	return p.GetRecipe(ctx, id)
}
