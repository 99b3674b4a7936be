package service

import (
	"strings"

	"github.com/firstbites/agent-api/internal/config"
	"github.com/firstbites/agent-api/internal/logger"
	"github.com/firstbites/agent-api/internal/models"
	"go.uber.org/zap"
)

// buildSummary renders the deterministic one-line description of a search
// outcome. It is presentational only; nothing downstream depends on it.
func (s *SearchService) buildSummary(c *models.SearchCriteria, res *models.SearchResult) string {
	if s.Cfg == nil || s.Cfg.Summaries == nil {
		return ""
	}

	lang := c.Language
	if lang == "" {
		lang = s.Cfg.EnvVars.DefaultLanguage
	}
	loc := s.Cfg.Summaries.Locale(lang)

	var parts []string
	add := func(tmpl string, data map[string]interface{}) {
		if tmpl == "" {
			return
		}
		out, err := config.RenderFragment(tmpl, data)
		if err != nil {
			logger.Get().Warn("failed to render summary fragment", zap.Error(err))
			return
		}
		if out != "" {
			parts = append(parts, out)
		}
	}

	if len(res.Recipes) == 0 {
		add(loc.Empty, nil)
	} else {
		add(loc.Found, map[string]interface{}{"Count": len(res.Recipes)})
	}

	if g := c.ResolvedAgeGroup(); g != nil {
		add(loc.ForStage, map[string]interface{}{
			"Stage":  g.StageNumber(),
			"Months": g.MonthsLabel(),
		})
	}
	if c.MealType != "" {
		add(loc.ForMeal, map[string]interface{}{"MealType": c.MealType})
	}
	if c.Query != "" {
		add(loc.Matching, map[string]interface{}{"Query": c.Query})
	}

	switch res.Strategy {
	case models.StrategyRelaxed:
		add(loc.Relaxed, nil)
	case models.StrategyAgeAgnostic:
		add(loc.AgeAgnostic, nil)
	case models.StrategyFeaturedFallback:
		add(loc.Featured, nil)
	}

	if res.ExcludedAllergens > 0 {
		add(loc.AllergenExcluded, map[string]interface{}{"Excluded": res.ExcludedAllergens})
	}
	if c.Difficulty != "" || c.MaxTotalTimeMinutes != nil || c.MaxCookTimeMinutes != nil || c.MaxPrepTimeMinutes != nil {
		add(loc.FilterNote, nil)
	}

	return strings.Join(parts, ", ")
}
