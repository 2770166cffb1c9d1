package catalog

import "strings"

type Ingredient struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type Recipe struct {
	ID          string       `json:"id"`
	OwnerID     string       `json:"ownerId"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Servings    int          `json:"servings"`
	Time        string       `json:"time,omitempty"`
	Tags        []string     `json:"tags"`
	Difficulty  string       `json:"difficulty,omitempty"`
	Category    string       `json:"category,omitempty"`
	IsFavorite  bool         `json:"isFavorite"`
	SharedCount int          `json:"sharedCount"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []string     `json:"steps"`
	CreatedAt   Timestamp    `json:"createdAt"`
	UpdatedAt   Timestamp    `json:"updatedAt"`
}

// Clone returns a deep copy so callers can never alias the slices of
// a stored recipe.
func (r Recipe) Clone() Recipe {
	out := r
	out.Tags = append([]string(nil), r.Tags...)
	out.Ingredients = append([]Ingredient(nil), r.Ingredients...)
	out.Steps = append([]string(nil), r.Steps...)
	return out
}

func CloneRecipes(recipes []Recipe) []Recipe {
	out := make([]Recipe, len(recipes))
	for i, r := range recipes {
		out[i] = r.Clone()
	}
	return out
}

type IngredientInput struct {
	Name     string
	Quantity float64
	Unit     string
}

type CreateRecipeInput struct {
	OwnerID     string
	Title       string
	Description string
	Servings    int
	Time        string
	Difficulty  string
	Tags        []string
	Steps       []string
	Ingredients []IngredientInput
}

// Normalize trims every free-form field, drops empty tags and steps
// and keeps duplicate tags as provided.
func (in CreateRecipeInput) Normalize() CreateRecipeInput {
	out := in
	out.OwnerID = strings.TrimSpace(in.OwnerID)
	out.Title = strings.TrimSpace(in.Title)
	out.Description = strings.TrimSpace(in.Description)
	out.Time = strings.TrimSpace(in.Time)
	out.Difficulty = strings.TrimSpace(in.Difficulty)

	out.Tags = make([]string, 0, len(in.Tags))
	for _, tag := range in.Tags {
		if t := strings.TrimSpace(tag); t != "" {
			out.Tags = append(out.Tags, t)
		}
	}

	out.Steps = make([]string, 0, len(in.Steps))
	for _, step := range in.Steps {
		if s := strings.TrimSpace(step); s != "" {
			out.Steps = append(out.Steps, s)
		}
	}

	out.Ingredients = make([]IngredientInput, 0, len(in.Ingredients))
	for _, ing := range in.Ingredients {
		ing.Name = strings.TrimSpace(ing.Name)
		ing.Unit = strings.TrimSpace(ing.Unit)
		out.Ingredients = append(out.Ingredients, ing)
	}

	return out
}

// Category is the first tag by convention.
func (in CreateRecipeInput) PrimaryCategory() string {
	if len(in.Tags) > 0 {
		return in.Tags[0]
	}
	return ""
}
