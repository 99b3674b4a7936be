package service

import (
	"context"

	"github.com/firstbites/agent-api/internal/config"
	"github.com/firstbites/agent-api/internal/recipesource"
)

// InteractionService toggles likes and bookmarks against the upstream.
// It holds no state: active maps to a create, inactive to a delete, and
// repeated identical calls are forwarded as-is.
type InteractionService struct {
	Cfg    *config.Config
	Source recipesource.Source
}

// NewInteractionService creates a new InteractionService.
func NewInteractionService(cfg *config.Config, source recipesource.Source) *InteractionService {
	return &InteractionService{
		Cfg:    cfg,
		Source: source,
	}
}

// SetLike marks or unmarks a recipe as liked.
func (s *InteractionService) SetLike(ctx context.Context, recipeID string, active bool) error {
	return s.Source.SetInteraction(ctx, recipeID, recipesource.KindLike, active)
}

// SetBookmark marks or unmarks a recipe as bookmarked.
func (s *InteractionService) SetBookmark(ctx context.Context, recipeID string, active bool) error {
	return s.Source.SetInteraction(ctx, recipeID, recipesource.KindBookmark, active)
}
