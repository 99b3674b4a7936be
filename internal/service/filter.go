package service

import (
	"strings"

	"github.com/firstbites/agent-api/internal/models"
)

// applyLocalFilters runs the post-fetch filters over the candidate set and
// returns the kept recipes in upstream order plus the allergen filter's
// own exclusion count. Filters compose with AND semantics; every filter is
// evaluated for every recipe so the allergen count is independent of the
// other filters' verdicts.
func applyLocalFilters(candidates []models.Recipe, c *models.SearchCriteria) ([]models.Recipe, int) {
	kept := make([]models.Recipe, 0, len(candidates))
	allergenExcluded := 0

	for _, r := range candidates {
		excluded := false

		// Recipes without allergen data are kept; absence of data never
		// excludes. Permissive by default, on purpose.
		if r.ContainsAnyAllergen(c.AllergensToAvoid) {
			allergenExcluded++
			excluded = true
		}

		// Re-impose an explicitly requested stage even when a fallback
		// tier dropped it from the upstream query.
		if c.StageExplicit() && r.AgeGroup != *c.ResolvedAgeGroup() {
			excluded = true
		}

		if c.Difficulty != "" {
			if r.DifficultyLevel == "" || strings.ToLower(r.DifficultyLevel) != c.Difficulty {
				excluded = true
			}
		}

		if c.MaxTotalTimeMinutes != nil {
			// An unknown total time (no explicit value, prep+cook of 0)
			// is exempt, not treated as instant.
			if total, known := r.TotalTime(); known && total > *c.MaxTotalTimeMinutes {
				excluded = true
			}
		}
		if c.MaxCookTimeMinutes != nil && r.CookTimeMinutes > *c.MaxCookTimeMinutes {
			excluded = true
		}
		if c.MaxPrepTimeMinutes != nil && r.PrepTimeMinutes > *c.MaxPrepTimeMinutes {
			excluded = true
		}

		if !excluded {
			kept = append(kept, r)
		}
	}

	return kept, allergenExcluded
}
