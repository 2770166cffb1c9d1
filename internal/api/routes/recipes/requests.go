package recipes

type IngredientRequest struct {
	Name     string  `json:"name" validate:"required"`
	Quantity float64 `json:"quantity" validate:"gte=0"`
	Unit     string  `json:"unit" validate:"required"`
}

type CreateRecipeRequest struct {
	OwnerID     string              `json:"ownerId" validate:"required"`
	Title       string              `json:"title" validate:"required,min=2"`
	Description string              `json:"description"`
	Servings    int                 `json:"servings" validate:"required,min=1"`
	Time        string              `json:"time"`
	Difficulty  string              `json:"difficulty"`
	Tags        []string            `json:"tags"`
	Steps       []string            `json:"steps" validate:"required,min=1,dive,required"`
	Ingredients []IngredientRequest `json:"ingredients" validate:"required,min=1,dive"`
}

type SetFavoriteRequest struct {
	Favorite *bool `json:"favorite" validate:"required"`
}
