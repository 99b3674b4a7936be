package service

import (
	"context"
	"errors"
	"testing"

	"github.com/firstbites/agent-api/internal/models"
	"github.com/firstbites/agent-api/internal/recipesource"
	"github.com/firstbites/agent-api/internal/testutil"
)

func newTestSearchService(source recipesource.Source) *SearchService {
	return NewSearchService(testutil.TestConfig(), source)
}

func TestSearch_ExactTierHit(t *testing.T) {
	src := testutil.NewMockRecipeSource()
	src.ListFunc = func(ctx context.Context, filter recipesource.ListFilter) (*models.Page, error) {
		return testutil.TestPage(testutil.TestRecipe("r1"), testutil.TestRecipe("r2")), nil
	}

	svc := newTestSearchService(src)
	result, err := svc.Search(context.Background(), models.SearchCriteria{Query: "mash"})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}

	if result.Strategy != models.StrategyExact {
		t.Errorf("Strategy = %q, want %q", result.Strategy, models.StrategyExact)
	}
	if len(src.Calls) != 1 {
		t.Errorf("upstream calls = %d, want 1", len(src.Calls))
	}
	if len(result.Recipes) != 2 {
		t.Errorf("recipes = %d, want 2", len(result.Recipes))
	}
	if result.Received != 2 {
		t.Errorf("Received = %d, want 2", result.Received)
	}
}

func TestSearch_RelaxedTierDropsQueryAndMealType(t *testing.T) {
	months := 7
	src := testutil.NewMockRecipeSource()
	var relaxedFilter *recipesource.ListFilter
	src.ListFunc = func(ctx context.Context, filter recipesource.ListFilter) (*models.Page, error) {
		if filter.Query != "" || filter.MealType != "" {
			return testutil.TestPage(), nil
		}
		f := filter
		relaxedFilter = &f
		r := testutil.TestRecipe("r1")
		r.AgeGroup = models.Stage2
		return testutil.TestPage(r), nil
	}

	svc := newTestSearchService(src)
	result, err := svc.Search(context.Background(), models.SearchCriteria{
		BabyAgeMonths: &months,
		Query:         "dragonfruit porridge",
		MealType:      "breakfast",
		Limit:         5,
	})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}

	if result.Strategy != models.StrategyRelaxed {
		t.Errorf("Strategy = %q, want %q", result.Strategy, models.StrategyRelaxed)
	}
	if relaxedFilter == nil {
		t.Fatal("relaxed tier never queried")
	}
	if relaxedFilter.Query != "" || relaxedFilter.MealType != "" {
		t.Errorf("relaxed filter kept query=%q mealType=%q", relaxedFilter.Query, relaxedFilter.MealType)
	}
	if relaxedFilter.AgeGroup == nil || *relaxedFilter.AgeGroup != models.Stage2 {
		t.Errorf("relaxed filter ageGroup = %v, want STAGE_2", relaxedFilter.AgeGroup)
	}
	if relaxedFilter.Limit != 5 {
		t.Errorf("relaxed filter limit = %d, want 5", relaxedFilter.Limit)
	}
	if len(src.Calls) != 2 {
		t.Errorf("upstream calls = %d, want 2", len(src.Calls))
	}
}

func TestSearch_AgeAgnosticTier(t *testing.T) {
	months := 9
	src := testutil.NewMockRecipeSource()
	src.ListFunc = func(ctx context.Context, filter recipesource.ListFilter) (*models.Page, error) {
		if filter.AgeGroup != nil {
			return testutil.TestPage(), nil
		}
		return testutil.TestPage(
			testutil.TestRecipe("r1"),
			testutil.TestRecipe("r2"),
			testutil.TestRecipe("r3"),
			testutil.TestRecipe("r4"),
		), nil
	}

	svc := newTestSearchService(src)
	result, err := svc.Search(context.Background(), models.SearchCriteria{
		BabyAgeMonths: &months,
		Query:         "stew",
	})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}

	if result.Strategy != models.StrategyAgeAgnostic {
		t.Errorf("Strategy = %q, want %q", result.Strategy, models.StrategyAgeAgnostic)
	}
	if len(src.Calls) != 3 {
		t.Errorf("upstream calls = %d, want 3", len(src.Calls))
	}
	if len(result.Recipes) != 4 {
		t.Errorf("recipes = %d, want 4", len(result.Recipes))
	}
}

func TestSearch_FeaturedFallbackEmptyIsNotAnError(t *testing.T) {
	months := 7
	src := testutil.NewMockRecipeSource()
	var featuredFilter *recipesource.FeaturedFilter
	src.ListFunc = func(ctx context.Context, filter recipesource.ListFilter) (*models.Page, error) {
		return testutil.TestPage(), nil
	}
	src.ListFeaturedFunc = func(ctx context.Context, filter recipesource.FeaturedFilter) (*models.Page, error) {
		f := filter
		featuredFilter = &f
		return testutil.TestPage(), nil
	}

	svc := newTestSearchService(src)
	result, err := svc.Search(context.Background(), models.SearchCriteria{
		BabyAgeMonths: &months,
		Query:         "unobtainium",
	})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}

	if result.Strategy != models.StrategyFeaturedFallback {
		t.Errorf("Strategy = %q, want %q", result.Strategy, models.StrategyFeaturedFallback)
	}
	if len(result.Recipes) != 0 {
		t.Errorf("recipes = %d, want 0", len(result.Recipes))
	}
	// exact, relaxed, ageAgnostic, featured
	if len(src.Calls) != 4 {
		t.Errorf("upstream calls = %d, want 4 (got %v)", len(src.Calls), src.Calls)
	}
	if featuredFilter == nil {
		t.Fatal("featured tier never queried")
	}
	// The age filter was already dropped by the previous tier, so the
	// featured query must not reintroduce it.
	if featuredFilter.AgeGroup != nil {
		t.Errorf("featured filter ageGroup = %v, want nil", featuredFilter.AgeGroup)
	}
}

func TestSearch_FeaturedKeepsAgeGroupWithoutAgeAgnosticTier(t *testing.T) {
	src := testutil.NewMockRecipeSource()
	src.ListFunc = func(ctx context.Context, filter recipesource.ListFilter) (*models.Page, error) {
		return testutil.TestPage(), nil
	}
	src.ListFeaturedFunc = func(ctx context.Context, filter recipesource.FeaturedFilter) (*models.Page, error) {
		return testutil.TestPage(testutil.TestRecipe("f1")), nil
	}

	// No age group and no query: only the exact tier and the featured
	// fallback apply.
	svc := newTestSearchService(src)
	result, err := svc.Search(context.Background(), models.SearchCriteria{})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}

	if result.Strategy != models.StrategyFeaturedFallback {
		t.Errorf("Strategy = %q, want %q", result.Strategy, models.StrategyFeaturedFallback)
	}
	if len(src.Calls) != 2 {
		t.Errorf("upstream calls = %d, want 2 (got %v)", len(src.Calls), src.Calls)
	}
}

func TestSearch_AllergenFilterScenario(t *testing.T) {
	months := 7
	eggRecipe := testutil.TestRecipe("r2")
	eggRecipe.AgeGroup = models.Stage2
	eggRecipe.Allergens = []string{"Egg", "dairy"}
	clean1 := testutil.TestRecipe("r1")
	clean1.AgeGroup = models.Stage2
	clean2 := testutil.TestRecipe("r3")
	clean2.AgeGroup = models.Stage2
	clean2.Allergens = nil

	src := testutil.NewMockRecipeSource()
	src.ListFunc = func(ctx context.Context, filter recipesource.ListFilter) (*models.Page, error) {
		if filter.AgeGroup == nil || *filter.AgeGroup != models.Stage2 {
			t.Errorf("exact filter ageGroup = %v, want STAGE_2", filter.AgeGroup)
		}
		if filter.Limit != 5 {
			t.Errorf("exact filter limit = %d, want 5", filter.Limit)
		}
		return testutil.TestPage(clean1, eggRecipe, clean2), nil
	}

	svc := newTestSearchService(src)
	result, err := svc.Search(context.Background(), models.SearchCriteria{
		BabyAgeMonths:    &months,
		AllergensToAvoid: []string{"egg"},
		Limit:            5,
	})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}

	if result.Strategy != models.StrategyExact {
		t.Errorf("Strategy = %q, want %q", result.Strategy, models.StrategyExact)
	}
	if len(result.Recipes) != 2 {
		t.Errorf("recipes = %d, want 2", len(result.Recipes))
	}
	if result.ExcludedAllergens != 1 {
		t.Errorf("ExcludedAllergens = %d, want 1", result.ExcludedAllergens)
	}
	if result.ExcludedByFilters != result.Received-len(result.Recipes) {
		t.Errorf("ExcludedByFilters = %d, want %d", result.ExcludedByFilters, result.Received-len(result.Recipes))
	}
}

func TestSearch_StageFilterReimposedAfterFallback(t *testing.T) {
	stage2 := testutil.TestRecipe("r1")
	stage2.AgeGroup = models.Stage2
	stage4 := testutil.TestRecipe("r2")
	stage4.AgeGroup = models.Stage4

	src := testutil.NewMockRecipeSource()
	src.ListFunc = func(ctx context.Context, filter recipesource.ListFilter) (*models.Page, error) {
		if filter.AgeGroup != nil {
			return testutil.TestPage(), nil
		}
		return testutil.TestPage(stage2, stage4), nil
	}

	svc := newTestSearchService(src)
	result, err := svc.Search(context.Background(), models.SearchCriteria{Stage: "stage 2"})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}

	if result.Strategy != models.StrategyAgeAgnostic {
		t.Errorf("Strategy = %q, want %q", result.Strategy, models.StrategyAgeAgnostic)
	}
	if len(result.Recipes) != 1 || result.Recipes[0].ID != "r1" {
		t.Errorf("recipes = %v, want only r1", result.Recipes)
	}
}

func TestSearch_CollaboratorErrorAbortsCascade(t *testing.T) {
	months := 7
	src := testutil.NewMockRecipeSource()
	src.ListFunc = func(ctx context.Context, filter recipesource.ListFilter) (*models.Page, error) {
		return nil, &recipesource.CollaboratorError{StatusCode: 503, Message: "upstream down"}
	}

	svc := newTestSearchService(src)
	_, err := svc.Search(context.Background(), models.SearchCriteria{
		BabyAgeMonths: &months,
		Query:         "soup",
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var collabErr *recipesource.CollaboratorError
	if !errors.As(err, &collabErr) {
		t.Fatalf("error type = %T, want *CollaboratorError", err)
	}
	if collabErr.StatusCode != 503 {
		t.Errorf("StatusCode = %d, want 503", collabErr.StatusCode)
	}
	// A transport failure is not "zero results"; no further tier runs.
	if len(src.Calls) != 1 {
		t.Errorf("upstream calls = %d, want 1", len(src.Calls))
	}
}

func TestSearch_ValidationRejectedBeforeUpstream(t *testing.T) {
	src := testutil.NewMockRecipeSource()
	svc := newTestSearchService(src)

	_, err := svc.Search(context.Background(), models.SearchCriteria{Limit: 31})
	var validationErr models.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if len(src.Calls) != 0 {
		t.Errorf("upstream calls = %d, want 0", len(src.Calls))
	}

	src.Calls = nil
	_, err = svc.Search(context.Background(), models.SearchCriteria{Offset: -1})
	if !errors.As(err, &validationErr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if len(src.Calls) != 0 {
		t.Errorf("upstream calls = %d, want 0", len(src.Calls))
	}
}

func TestSearch_PaginationEcho(t *testing.T) {
	src := testutil.NewMockRecipeSource()
	src.ListFunc = func(ctx context.Context, filter recipesource.ListFilter) (*models.Page, error) {
		return &models.Page{
			Recipes:    []models.Recipe{testutil.TestRecipe("r1")},
			Page:       3,
			PerPage:    12,
			TotalPages: 9,
			Count:      101,
		}, nil
	}

	svc := newTestSearchService(src)
	result, err := svc.Search(context.Background(), models.SearchCriteria{})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}

	if result.Page != 3 || result.PerPage != 12 || result.TotalPages != 9 || result.Count != 101 {
		t.Errorf("pagination echo = %d/%d/%d/%d, want 3/12/9/101",
			result.Page, result.PerPage, result.TotalPages, result.Count)
	}
}
