package models

// Strategy names the fallback tier that produced a search's candidate set.
type Strategy string

const (
	StrategyExact            Strategy = "exact"
	StrategyRelaxed          Strategy = "relaxed"
	StrategyAgeAgnostic      Strategy = "ageAgnostic"
	StrategyFeaturedFallback Strategy = "featuredFallback"
)

// SearchResult is the annotated outcome of one search pipeline run.
// Recipes keep the upstream order; no local re-sorting happens.
type SearchResult struct {
	Recipes  []Recipe `json:"recipes"`
	Strategy Strategy `json:"strategy"`

	// Received counts candidates before local filtering.
	Received int `json:"received"`
	// ExcludedByFilters is the combined delta across all local filters.
	ExcludedByFilters int `json:"excludedByFilters"`
	// ExcludedAllergens counts only the allergen filter's exclusions.
	ExcludedAllergens int `json:"excludedAllergens"`

	Summary string `json:"summary"`

	// Upstream pagination echo.
	Page       int `json:"page"`
	PerPage    int `json:"perPage"`
	TotalPages int `json:"totalPages"`
	Count      int `json:"count"`
}
