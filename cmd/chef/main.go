// Command chef is a small terminal front end for the recipe catalog.
// It talks to a running easychef server and falls back to the built-in
// demo dataset when the server is unreachable.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/eloiseboudon/easyChef/internal/catalog"
	"github.com/eloiseboudon/easyChef/internal/gateway"
	"github.com/eloiseboudon/easyChef/internal/log"
	"github.com/eloiseboudon/easyChef/internal/scale"
	"github.com/eloiseboudon/easyChef/internal/session"
)

const defaultAPIURL = "http://localhost:4000"

const usage = `Usage: chef <command> [flags]

Commands:
  list                       list all recipes
  show -id <id> [-servings n]  show a recipe scaled to n servings
  favorite -id <id>          toggle a recipe's favorite flag
  add -title <t> -servings <n> -steps <s;s> -ingredients <n:q:u,...> [-tags a,b] [-description d] [-time t] [-difficulty d]

The server address is read from EASYCHEF_API_URL (default ` + defaultAPIURL + `).
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	apiURL := os.Getenv("EASYCHEF_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}

	ctx := context.Background()
	controller := session.New(gateway.NewRemote(apiURL), log.Discard())
	controller.Start(ctx)

	if status := controller.Snapshot().Status; status != "" {
		fmt.Fprintln(os.Stderr, status)
	}

	var err error
	switch os.Args[1] {
	case "list":
		err = runList(controller)
	case "show":
		err = runShow(controller, os.Args[2:])
	case "favorite":
		err = runFavorite(ctx, controller, os.Args[2:])
	case "add":
		err = runAdd(ctx, controller, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "chef:", err)
		os.Exit(1)
	}
}

func runList(controller *session.Controller) error {
	snap := controller.Snapshot()
	if len(snap.Recipes) == 0 {
		fmt.Println("Aucune recette.")
		return nil
	}

	for _, recipe := range snap.Recipes {
		marker := " "
		if recipe.IsFavorite {
			marker = "*"
		}
		line := fmt.Sprintf("%s %-14s %s (%d pers.)", marker, recipe.ID, recipe.Title, recipe.Servings)
		if recipe.Category != "" {
			line += " [" + recipe.Category + "]"
		}
		fmt.Println(line)
	}
	return nil
}

func runShow(controller *session.Controller, args []string) error {
	flags := flag.NewFlagSet("show", flag.ExitOnError)
	id := flags.String("id", "", "recipe id")
	servings := flags.Int("servings", 0, "serving count to scale to (default: the recipe's own)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("missing -id")
	}

	controller.SelectRecipe(*id)
	recipe, ok := controller.SelectedRecipe()
	if !ok || recipe.ID != *id {
		return fmt.Errorf("unknown recipe %q", *id)
	}

	if *servings > 0 {
		target := scale.ClampServings(*servings)
		for controller.Snapshot().Servings < target {
			controller.IncreaseServings()
		}
		for controller.Snapshot().Servings > target {
			controller.DecreaseServings()
		}
	}
	snap := controller.Snapshot()

	fmt.Printf("%s — %d personnes\n", recipe.Title, snap.Servings)
	if recipe.Description != "" {
		fmt.Println(recipe.Description)
	}
	fmt.Println("\nIngrédients :")
	for _, ingredient := range controller.ScaledIngredients() {
		fmt.Printf("  %s %s  %s\n", scale.FormatQuantity(ingredient.Quantity, ","), ingredient.Unit, ingredient.Name)
	}
	fmt.Println("\nPréparation :")
	for i, step := range recipe.Steps {
		fmt.Printf("  %d. %s\n", i+1, step)
	}
	return nil
}

func runFavorite(ctx context.Context, controller *session.Controller, args []string) error {
	flags := flag.NewFlagSet("favorite", flag.ExitOnError)
	id := flags.String("id", "", "recipe id")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("missing -id")
	}

	controller.ToggleFavorite(ctx, *id)

	snap := controller.Snapshot()
	if snap.Status != "" && !snap.Online {
		fmt.Fprintln(os.Stderr, snap.Status)
	}
	for _, recipe := range snap.Recipes {
		if recipe.ID == *id {
			if recipe.IsFavorite {
				fmt.Printf("%s ajoutée aux favoris.\n", recipe.Title)
			} else {
				fmt.Printf("%s retirée des favoris.\n", recipe.Title)
			}
			return nil
		}
	}
	return fmt.Errorf("unknown recipe %q", *id)
}

func runAdd(ctx context.Context, controller *session.Controller, args []string) error {
	flags := flag.NewFlagSet("add", flag.ExitOnError)
	title := flags.String("title", "", "recipe title")
	description := flags.String("description", "", "recipe description")
	servings := flags.Int("servings", 4, "base serving count")
	timeLabel := flags.String("time", "", "prep time label, e.g. 45min")
	difficulty := flags.String("difficulty", "", "difficulty label")
	tags := flags.String("tags", "", "comma-separated tags, first one is the category")
	steps := flags.String("steps", "", "semicolon-separated steps")
	ingredients := flags.String("ingredients", "", "comma-separated name:quantity:unit triples")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *title == "" || *steps == "" || *ingredients == "" {
		return fmt.Errorf("missing -title, -steps or -ingredients")
	}

	parsedIngredients, err := parseIngredients(*ingredients)
	if err != nil {
		return err
	}

	input := catalog.CreateRecipeInput{
		Title:       *title,
		Description: *description,
		Servings:    scale.ClampServings(*servings),
		Time:        *timeLabel,
		Difficulty:  *difficulty,
		Tags:        splitList(*tags, ","),
		Steps:       splitList(*steps, ";"),
		Ingredients: parsedIngredients,
	}

	recipe := controller.CreateRecipe(ctx, input)

	snap := controller.Snapshot()
	if snap.Status != "" && !snap.Online {
		fmt.Fprintln(os.Stderr, snap.Status)
	}
	fmt.Printf("Recette créée : %s (%s)\n", recipe.Title, recipe.ID)
	return nil
}

func splitList(value, separator string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, separator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseIngredients(value string) ([]catalog.IngredientInput, error) {
	var out []catalog.IngredientInput
	for _, triple := range splitList(value, ",") {
		parts := strings.SplitN(triple, ":", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid ingredient %q, want name:quantity:unit", triple)
		}

		var quantity float64
		if _, err := fmt.Sscanf(parts[1], "%g", &quantity); err != nil {
			return nil, fmt.Errorf("invalid quantity in %q: %w", triple, err)
		}

		out = append(out, catalog.IngredientInput{
			Name:     parts[0],
			Quantity: quantity,
			Unit:     parts[2],
		})
	}
	return out, nil
}
