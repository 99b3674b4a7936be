package service

import (
	"context"

	"github.com/firstbites/agent-api/internal/config"
	"github.com/firstbites/agent-api/internal/models"
	"github.com/firstbites/agent-api/internal/recipesource"
)

// RecipeService serves recipe details and the featured list.
type RecipeService struct {
	Cfg    *config.Config
	Source recipesource.Source
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(cfg *config.Config, source recipesource.Source) *RecipeService {
	return &RecipeService{
		Cfg:    cfg,
		Source: source,
	}
}

// GetRecipeByID fetches a single recipe from the upstream.
func (s *RecipeService) GetRecipeByID(ctx context.Context, id string, language string) (*models.Recipe, error) {
	return s.Source.GetByID(ctx, id, language)
}

// FeaturedRecipes fetches the editorially curated featured list. A zero
// limit falls back to the search default.
func (s *RecipeService) FeaturedRecipes(ctx context.Context, ageGroup *models.AgeGroup, limit int, language string) ([]models.Recipe, error) {
	if limit <= 0 {
		limit = models.DefaultSearchLimit
	}
	if limit > models.MaxSearchLimit {
		return nil, models.NewValidationError("limit must not exceed 30")
	}

	page, err := s.Source.ListFeatured(ctx, recipesource.FeaturedFilter{
		AgeGroup: ageGroup,
		Limit:    limit,
		Language: language,
	})
	if err != nil {
		return nil, err
	}
	return page.Recipes, nil
}
