package recipes

import "github.com/eloiseboudon/easyChef/internal/catalog"

type ListRecipesResponse struct {
	Recipes []catalog.Recipe `json:"recipes"`
}
