package models

import "strings"

// Recipe is a single recipe as served by the upstream recipe API. All
// fields are carried through to the caller unchanged; only AgeGroup,
// Allergens, DifficultyLevel and the time fields participate in local
// filtering.
type Recipe struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	AgeGroup         AgeGroup `json:"ageGroup,omitempty"`
	MealType         string   `json:"mealType,omitempty"`
	PrepTimeMinutes  int      `json:"prepTimeMinutes"`
	CookTimeMinutes  int      `json:"cookTimeMinutes"`
	TotalTimeMinutes *int     `json:"totalTimeMinutes,omitempty"`
	DifficultyLevel  string   `json:"difficultyLevel,omitempty"`
	// Allergens may be nil when the upstream has no allergen data for the
	// recipe. A nil or empty list never trips the allergen filter.
	Allergens     []string `json:"allergens,omitempty"`
	Ingredients   []string `json:"ingredients,omitempty"`
	ImageURL      string   `json:"imageUrl,omitempty"`
	LikeCount     int      `json:"likeCount"`
	BookmarkCount int      `json:"bookmarkCount"`
}

// TotalTime returns the recipe's total time in minutes and whether it is
// known. An explicit totalTimeMinutes wins; otherwise prep+cook is used,
// with a sum of zero treated as unknown rather than instant.
func (r *Recipe) TotalTime() (int, bool) {
	if r.TotalTimeMinutes != nil {
		return *r.TotalTimeMinutes, true
	}
	sum := r.PrepTimeMinutes + r.CookTimeMinutes
	if sum == 0 {
		return 0, false
	}
	return sum, true
}

// ContainsAnyAllergen reports whether the recipe's allergen list contains
// any of the given allergens, case-insensitively. Recipes with no allergen
// data always report false.
func (r *Recipe) ContainsAnyAllergen(avoid []string) bool {
	if len(r.Allergens) == 0 || len(avoid) == 0 {
		return false
	}
	for _, a := range r.Allergens {
		la := strings.ToLower(a)
		for _, av := range avoid {
			if la == strings.ToLower(av) {
				return true
			}
		}
	}
	return false
}

// Page is one page of recipes plus the upstream pagination metadata, which
// is echoed back to the caller untouched.
type Page struct {
	Recipes    []Recipe `json:"recipes"`
	Page       int      `json:"page"`
	PerPage    int      `json:"perPage"`
	TotalPages int      `json:"totalPages"`
	Count      int      `json:"count"`
}
