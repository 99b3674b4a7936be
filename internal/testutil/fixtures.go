package testutil

import (
	"github.com/firstbites/agent-api/internal/config"
	"github.com/firstbites/agent-api/internal/models"
)

// TestRecipe creates a recipe with realistic fields. Override what the
// test cares about.
func TestRecipe(id string) models.Recipe {
	return models.Recipe{
		ID:              id,
		Name:            "Sweet Potato Mash",
		Description:     "Smooth mash for first tastes",
		AgeGroup:        models.Stage1,
		MealType:        "lunch",
		PrepTimeMinutes: 5,
		CookTimeMinutes: 15,
		DifficultyLevel: "easy",
		Ingredients:     []string{"sweet potato", "water"},
		ImageURL:        "https://example.com/sweet-potato.jpg",
		LikeCount:       12,
		BookmarkCount:   4,
	}
}

// TestPage wraps recipes in a Page with plausible pagination metadata.
func TestPage(recipes ...models.Recipe) *models.Page {
	return &models.Page{
		Recipes:    recipes,
		Page:       1,
		PerPage:    12,
		TotalPages: 1,
		Count:      len(recipes),
	}
}

// TestConfig returns a config with an English summary template set, which
// is all the pipeline needs outside the router.
func TestConfig() *config.Config {
	return &config.Config{
		EnvVars: config.EnvVars{
			Port:             "8080",
			RecipeAPIBaseURL: "https://recipes.example.com",
			IDHeader:         "test-id",
			DefaultLanguage:  "en",
		},
		Summaries: &config.SummaryTemplates{
			"en": {
				Found:            "Found {{.Count}} recipes",
				Empty:            "No recipes found",
				ForStage:         "for Stage {{.Stage}} ({{.Months}})",
				ForMeal:          "for {{.MealType}}",
				Matching:         "matching \"{{.Query}}\"",
				AllergenExcluded: "{{.Excluded}} excluded for allergens",
				FilterNote:       "difficulty/time filters applied",
				Relaxed:          "broadened beyond your exact search",
				AgeAgnostic:      "across all stages",
				Featured:         "showing featured picks instead",
			},
		},
	}
}
