package service

import (
	"context"
	"time"

	"github.com/firstbites/agent-api/internal/config"
	"github.com/firstbites/agent-api/internal/metrics"
	"github.com/firstbites/agent-api/internal/models"
	"github.com/firstbites/agent-api/internal/recipesource"
)

// SearchService runs the recipe search pipeline: a cascade of upstream
// queries with progressively relaxed filters, followed by local
// post-filtering and a one-line summary.
type SearchService struct {
	Cfg    *config.Config
	Source recipesource.Source
}

// NewSearchService creates a new SearchService.
func NewSearchService(cfg *config.Config, source recipesource.Source) *SearchService {
	return &SearchService{
		Cfg:    cfg,
		Source: source,
	}
}

// queryPlan is the upstream-facing slice of the criteria, fixed before the
// cascade starts. Tiers choose which of its fields to send.
type queryPlan struct {
	ageGroup *models.AgeGroup
	mealType string
	query    string
	limit    int
	offset   int
	language string
}

// tier is one step of the fallback cascade. applies decides whether the
// tier runs at all; fetch issues the tier's single upstream call. prev is
// the strategy of the last tier that actually ran.
type tier struct {
	strategy models.Strategy
	applies  func(plan queryPlan) bool
	fetch    func(ctx context.Context, src recipesource.Source, plan queryPlan, prev models.Strategy) (*models.Page, error)
}

func always(queryPlan) bool { return true }

// searchTiers is the cascade in strict order. Specificity is shed in the
// order least likely to break intent: free-text and meal type first, the
// age group only after that, and curated content as the last resort.
var searchTiers = []tier{
	{
		strategy: models.StrategyExact,
		applies:  always,
		fetch: func(ctx context.Context, src recipesource.Source, plan queryPlan, _ models.Strategy) (*models.Page, error) {
			return src.List(ctx, recipesource.ListFilter{
				AgeGroup: plan.ageGroup,
				MealType: plan.mealType,
				Query:    plan.query,
				Limit:    plan.limit,
				Offset:   plan.offset,
				Language: plan.language,
			})
		},
	},
	{
		strategy: models.StrategyRelaxed,
		applies: func(plan queryPlan) bool {
			return plan.query != "" || plan.mealType != ""
		},
		fetch: func(ctx context.Context, src recipesource.Source, plan queryPlan, _ models.Strategy) (*models.Page, error) {
			return src.List(ctx, recipesource.ListFilter{
				AgeGroup: plan.ageGroup,
				Limit:    plan.limit,
				Language: plan.language,
			})
		},
	},
	{
		strategy: models.StrategyAgeAgnostic,
		applies: func(plan queryPlan) bool {
			return plan.ageGroup != nil
		},
		fetch: func(ctx context.Context, src recipesource.Source, plan queryPlan, _ models.Strategy) (*models.Page, error) {
			return src.List(ctx, recipesource.ListFilter{
				Limit:    plan.limit,
				Language: plan.language,
			})
		},
	},
	{
		strategy: models.StrategyFeaturedFallback,
		applies:  always,
		fetch: func(ctx context.Context, src recipesource.Source, plan queryPlan, prev models.Strategy) (*models.Page, error) {
			ageGroup := plan.ageGroup
			if prev == models.StrategyAgeAgnostic {
				// The age filter already proved too strict; do not
				// reintroduce it on the featured list.
				ageGroup = nil
			}
			return src.ListFeatured(ctx, recipesource.FeaturedFilter{
				AgeGroup: ageGroup,
				Limit:    plan.limit,
				Language: plan.language,
			})
		},
	},
}

// Search normalizes and validates the criteria, walks the fallback
// cascade until a tier yields candidates, applies the local post-filters,
// and returns the annotated result. A zero-length outcome after the last
// tier is a valid result, not an error; an upstream failure at any tier
// aborts the whole call.
func (s *SearchService) Search(ctx context.Context, criteria models.SearchCriteria) (*models.SearchResult, error) {
	start := time.Now()

	criteria.Normalize()
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	plan := queryPlan{
		ageGroup: criteria.ResolvedAgeGroup(),
		mealType: criteria.MealType,
		query:    criteria.Query,
		limit:    criteria.Limit,
		offset:   criteria.Offset,
		language: criteria.Language,
	}

	var (
		page    *models.Page
		winning models.Strategy
		prev    models.Strategy
	)
	for _, t := range searchTiers {
		if !t.applies(plan) {
			continue
		}
		p, err := t.fetch(ctx, s.Source, plan, prev)
		if err != nil {
			return nil, err
		}
		page, winning = p, t.strategy
		if len(p.Recipes) > 0 {
			break
		}
		prev = t.strategy
	}

	kept, allergenExcluded := applyLocalFilters(page.Recipes, &criteria)

	result := &models.SearchResult{
		Recipes:           kept,
		Strategy:          winning,
		Received:          len(page.Recipes),
		ExcludedByFilters: len(page.Recipes) - len(kept),
		ExcludedAllergens: allergenExcluded,
		Page:              page.Page,
		PerPage:           page.PerPage,
		TotalPages:        page.TotalPages,
		Count:             page.Count,
	}
	result.Summary = s.buildSummary(&criteria, result)

	metrics.RecordSearch(string(winning), time.Since(start))
	return result, nil
}
