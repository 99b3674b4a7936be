package models

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/asaskevich/govalidator"
	"golang.org/x/text/language"
)

// Search paging bounds. The default applies when the caller omits a limit.
const (
	DefaultSearchLimit = 12
	MaxSearchLimit     = 30
)

// SearchCriteria is the normalized input to a recipe search. It is built
// once per call and not mutated after Normalize.
type SearchCriteria struct {
	// AgeGroup is the explicit stage enum; it takes precedence over Stage
	// and BabyAgeMonths.
	AgeGroup *AgeGroup `json:"ageGroup,omitempty"`
	// Stage is a free-text stage label such as "2", "stage 3" or "11+".
	Stage string `json:"stage,omitempty"`
	// BabyAgeMonths derives an age group when no explicit stage is given.
	BabyAgeMonths *int `json:"babyAgeMonths,omitempty"`

	MealType         string   `json:"mealType,omitempty"`
	Query            string   `json:"query,omitempty"`
	AllergensToAvoid []string `json:"allergensToAvoid,omitempty"`
	Difficulty       string   `json:"difficulty,omitempty"`

	MaxTotalTimeMinutes *int `json:"maxTotalTimeMinutes,omitempty"`
	MaxCookTimeMinutes  *int `json:"maxCookTimeMinutes,omitempty"`
	MaxPrepTimeMinutes  *int `json:"maxPrepTimeMinutes,omitempty"`

	Limit    int    `json:"limit,omitempty"`
	Offset   int    `json:"offset,omitempty"`
	Language string `json:"language,omitempty"`

	// resolved during Normalize
	resolvedAgeGroup *AgeGroup
	stageExplicit    bool
}

// Normalize resolves the effective age group, fills paging and language
// defaults, and lowercases the fields that are matched case-insensitively.
// It must be called before Validate or any pipeline use.
func (c *SearchCriteria) Normalize() {
	// Precedence: explicit enum > parsed free-text stage label > derived
	// from months.
	switch {
	case c.AgeGroup != nil:
		c.resolvedAgeGroup = c.AgeGroup
		c.stageExplicit = true
	default:
		if g := ParseStageLabel(c.Stage); g != nil {
			c.resolvedAgeGroup = g
			c.stageExplicit = true
		} else {
			c.resolvedAgeGroup = DeriveAgeGroup(c.BabyAgeMonths)
		}
	}

	if c.Limit == 0 {
		c.Limit = DefaultSearchLimit
	}

	for i, a := range c.AllergensToAvoid {
		c.AllergensToAvoid[i] = strings.ToLower(strings.TrimSpace(a))
	}
	c.Difficulty = strings.ToLower(strings.TrimSpace(c.Difficulty))

	c.Language = normalizeLanguage(c.Language)
	if c.Language == "" {
		c.Language = inferLanguage(c.Query, c.MealType)
	}
}

// Validate rejects malformed or out-of-range criteria. All checks run
// before the first upstream call.
func (c *SearchCriteria) Validate() error {
	if !govalidator.InRangeInt(c.Limit, 1, MaxSearchLimit) {
		return NewValidationError(fmt.Sprintf("limit must be between 1 and %d", MaxSearchLimit))
	}
	if !govalidator.IsNonNegative(float64(c.Offset)) {
		return NewValidationError("offset must not be negative")
	}
	for name, v := range map[string]*int{
		"maxTotalTimeMinutes": c.MaxTotalTimeMinutes,
		"maxCookTimeMinutes":  c.MaxCookTimeMinutes,
		"maxPrepTimeMinutes":  c.MaxPrepTimeMinutes,
	} {
		if v != nil && !govalidator.IsPositive(float64(*v)) {
			return NewValidationError(name + " must be positive")
		}
	}
	if c.BabyAgeMonths != nil && !govalidator.IsNonNegative(float64(*c.BabyAgeMonths)) {
		return NewValidationError("babyAgeMonths must not be negative")
	}
	return nil
}

// ResolvedAgeGroup returns the effective age group after Normalize, or nil
// when none could be resolved.
func (c *SearchCriteria) ResolvedAgeGroup() *AgeGroup {
	return c.resolvedAgeGroup
}

// StageExplicit reports whether the caller asked for a stage directly
// (enum or recognized label), as opposed to one derived from months. The
// local stage filter only re-applies explicitly requested stages.
func (c *SearchCriteria) StageExplicit() bool {
	return c.stageExplicit && c.resolvedAgeGroup != nil
}

// normalizeLanguage canonicalizes a caller-supplied language tag to its
// base language ("zh-CN" becomes "zh"). Unparseable tags are dropped so
// script inference can take over.
func normalizeLanguage(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return ""
	}
	base, conf := tag.Base()
	if conf == language.No {
		return ""
	}
	return base.String()
}

// inferLanguage guesses the search language from the script of the free
// text inputs: any CJK code point means "zh", Latin letters with no CJK
// mean "en", anything else is left to the upstream default.
func inferLanguage(texts ...string) string {
	hasCJK := false
	hasLatin := false
	for _, t := range texts {
		for _, r := range t {
			switch {
			case unicode.Is(unicode.Han, r):
				hasCJK = true
			case unicode.Is(unicode.Latin, r):
				hasLatin = true
			}
		}
	}
	switch {
	case hasCJK:
		return "zh"
	case hasLatin:
		return "en"
	}
	return ""
}
