// Package scale adjusts ingredient quantities to a target serving count.
package scale

import (
	"math"
	"strconv"
	"strings"

	"github.com/eloiseboudon/easyChef/internal/catalog"
)

const (
	// MinServings and MaxServings bound the serving adjuster.
	MinServings = 1
	MaxServings = 20
)

// ClampServings bounds n to [MinServings, MaxServings].
func ClampServings(n int) int {
	if n < MinServings {
		return MinServings
	}
	if n > MaxServings {
		return MaxServings
	}
	return n
}

// Scale returns the recipe's ingredients with quantities adjusted
// proportionally to targetServings. Order, ids, names and units are
// preserved; only the quantity changes. Quantities are rounded to one
// decimal place and floored at zero. A stored serving count below one
// is treated as one.
func Scale(recipe catalog.Recipe, targetServings int) []catalog.Ingredient {
	base := recipe.Servings
	if base < 1 {
		base = 1
	}
	ratio := float64(targetServings) / float64(base)

	out := make([]catalog.Ingredient, len(recipe.Ingredients))
	for i, ing := range recipe.Ingredients {
		ing.Quantity = math.Max(math.Round(ing.Quantity*ratio*10)/10, 0)
		out[i] = ing
	}
	return out
}

// FormatQuantity renders a scaled quantity for display: integers
// without a decimal point, anything else with exactly one decimal
// digit using the given decimal separator.
func FormatQuantity(quantity float64, separator string) string {
	if quantity == math.Trunc(quantity) {
		return strconv.FormatFloat(quantity, 'f', -1, 64)
	}
	s := strconv.FormatFloat(quantity, 'f', 1, 64)
	if separator != "." {
		s = strings.Replace(s, ".", separator, 1)
	}
	return s
}
