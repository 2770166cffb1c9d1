// Package seed contains the built-in demo dataset. It seeds the memory
// store on first start and serves as the client's offline fallback.
package seed

import "github.com/eloiseboudon/easyChef/internal/catalog"

// User returns the demo user.
func User() catalog.User {
	return catalog.User{
		ID:        "user-marie",
		Email:     "marie@example.com",
		FullName:  "Marie Dupont",
		Plan:      catalog.PlanPremium,
		CreatedAt: catalog.MustParseTimestamp("2024-01-15T10:00:00.000Z"),
	}
}

// Recipes returns the three demo recipes, owned by the demo user.
func Recipes() []catalog.Recipe {
	owner := User().ID

	return []catalog.Recipe{
		{
			ID:      "lasagnes",
			OwnerID: owner,
			Title:   "Lasagnes maison",
			Description: "Des lasagnes traditionnelles faites maison avec une sauce tomate " +
				"mijotée et une béchamel onctueuse.",
			Servings:    6,
			Time:        "1h30",
			Tags:        []string{"Plat principal", "Italien"},
			Difficulty:  "Difficulté moyenne",
			Category:    "Plat principal",
			IsFavorite:  true,
			SharedCount: 2,
			Ingredients: []catalog.Ingredient{
				{ID: "lasagnes-pasta", Name: "Pâtes à lasagnes", Quantity: 250, Unit: "g"},
				{ID: "lasagnes-meat", Name: "Viande hachée", Quantity: 400, Unit: "g"},
				{ID: "lasagnes-sauce", Name: "Sauce tomate", Quantity: 500, Unit: "ml"},
				{ID: "lasagnes-bechamel", Name: "Béchamel", Quantity: 400, Unit: "ml"},
				{ID: "lasagnes-cheese", Name: "Fromage râpé", Quantity: 200, Unit: "g"},
				{ID: "lasagnes-onion", Name: "Oignon", Quantity: 1, Unit: "unité"},
			},
			Steps: []string{
				"Préchauffer le four à 180°C. Faire cuire les pâtes à lasagnes selon les indications du paquet.",
				"Dans une poêle, faire revenir l'oignon haché puis ajouter la viande hachée. Cuire 10 minutes.",
				"Ajouter la sauce tomate à la viande et laisser mijoter 15 minutes.",
				"Dans un plat à gratin, alterner couches de pâtes, viande et béchamel. Terminer par le fromage.",
				"Enfourner 25-30 minutes jusqu'à ce que le dessus soit doré. Laisser reposer 5 minutes avant de servir.",
			},
			CreatedAt: catalog.MustParseTimestamp("2024-02-12T10:15:00.000Z"),
			UpdatedAt: catalog.MustParseTimestamp("2024-03-02T09:30:00.000Z"),
		},
		{
			ID:          "tarte-pommes",
			OwnerID:     owner,
			Title:       "Tarte aux pommes",
			Description: "Une tarte aux pommes fondante parfumée à la cannelle, parfaite pour le goûter.",
			Servings:    8,
			Time:        "45min",
			Tags:        []string{"Dessert", "Facile"},
			Difficulty:  "Facile",
			Category:    "Dessert",
			IsFavorite:  false,
			SharedCount: 1,
			Ingredients: []catalog.Ingredient{
				{ID: "tarte-pate", Name: "Pâte brisée", Quantity: 1, Unit: "unité"},
				{ID: "tarte-pommes", Name: "Pommes", Quantity: 5, Unit: "unité(s)"},
				{ID: "tarte-sucre", Name: "Sucre", Quantity: 60, Unit: "g"},
				{ID: "tarte-beurre", Name: "Beurre", Quantity: 30, Unit: "g"},
				{ID: "tarte-cannelle", Name: "Cannelle", Quantity: 1, Unit: "c.à.c"},
			},
			Steps: []string{
				"Préchauffer le four à 180°C. Étaler la pâte dans un moule et la piquer avec une fourchette.",
				"Éplucher les pommes, les couper en lamelles et les disposer sur la pâte.",
				"Saupoudrer de sucre et de cannelle. Parsemer de petits morceaux de beurre.",
				"Cuire 35 minutes jusqu'à obtenir une belle coloration dorée.",
			},
			CreatedAt: catalog.MustParseTimestamp("2024-01-08T15:20:00.000Z"),
			UpdatedAt: catalog.MustParseTimestamp("2024-02-22T18:45:00.000Z"),
		},
		{
			ID:          "salade-cesar",
			OwnerID:     owner,
			Title:       "Salade César",
			Description: "Une salade César rapide avec sa sauce maison et des croûtons croustillants.",
			Servings:    4,
			Time:        "15min",
			Tags:        []string{"Entrée", "Rapide"},
			Difficulty:  "Facile",
			Category:    "Entrée",
			IsFavorite:  false,
			SharedCount: 0,
			Ingredients: []catalog.Ingredient{
				{ID: "cesar-laitue", Name: "Laitue romaine", Quantity: 1, Unit: "unité"},
				{ID: "cesar-poulet", Name: "Blancs de poulet", Quantity: 2, Unit: "unité(s)"},
				{ID: "cesar-parmesan", Name: "Parmesan", Quantity: 60, Unit: "g"},
				{ID: "cesar-croutons", Name: "Croûtons", Quantity: 80, Unit: "g"},
				{ID: "cesar-sauce", Name: "Sauce César", Quantity: 120, Unit: "ml"},
			},
			Steps: []string{
				"Cuire les blancs de poulet dans une poêle puis les couper en lamelles.",
				"Préparer la sauce César en mélangeant mayonnaise, ail, parmesan et jus de citron.",
				"Mélanger la laitue, le poulet, les croûtons et napper de sauce.",
				"Servir avec des copeaux de parmesan.",
			},
			CreatedAt: catalog.MustParseTimestamp("2024-03-10T08:10:00.000Z"),
			UpdatedAt: catalog.MustParseTimestamp("2024-03-10T08:10:00.000Z"),
		},
	}
}
