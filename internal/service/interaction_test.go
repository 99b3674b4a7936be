package service

import (
	"context"
	"errors"
	"testing"

	"github.com/firstbites/agent-api/internal/models"
	"github.com/firstbites/agent-api/internal/recipesource"
	"github.com/firstbites/agent-api/internal/testutil"
)

func TestSetBookmark_MapsActiveToCreate(t *testing.T) {
	src := testutil.NewMockRecipeSource()
	var gotKind recipesource.InteractionKind
	var gotActive bool
	src.SetInteractionFunc = func(ctx context.Context, id string, kind recipesource.InteractionKind, active bool) error {
		gotKind = kind
		gotActive = active
		return nil
	}

	svc := NewInteractionService(testutil.TestConfig(), src)
	if err := svc.SetBookmark(context.Background(), "r1", true); err != nil {
		t.Fatalf("SetBookmark error: %v", err)
	}

	if gotKind != recipesource.KindBookmark {
		t.Errorf("kind = %q, want bookmark", gotKind)
	}
	if !gotActive {
		t.Error("active = false, want true")
	}
}

func TestSetBookmark_RepeatedCallsAreForwarded(t *testing.T) {
	src := testutil.NewMockRecipeSource()
	src.SetInteractionFunc = func(ctx context.Context, id string, kind recipesource.InteractionKind, active bool) error {
		return nil
	}

	svc := NewInteractionService(testutil.TestConfig(), src)
	for i := 0; i < 2; i++ {
		if err := svc.SetBookmark(context.Background(), "r1", true); err != nil {
			t.Fatalf("SetBookmark call %d error: %v", i+1, err)
		}
	}

	// No local state suppresses the duplicate; both reach the upstream.
	if len(src.Calls) != 2 {
		t.Errorf("upstream calls = %d, want 2", len(src.Calls))
	}
	if src.Calls[0] != src.Calls[1] {
		t.Errorf("calls differ: %v", src.Calls)
	}
}

func TestSetLike_AuthorizationErrorSurfaces(t *testing.T) {
	src := testutil.NewMockRecipeSource()
	src.SetInteractionFunc = func(ctx context.Context, id string, kind recipesource.InteractionKind, active bool) error {
		return &recipesource.AuthorizationError{CollaboratorError: recipesource.CollaboratorError{
			StatusCode: 401,
			Message:    "credential rejected",
		}}
	}

	svc := NewInteractionService(testutil.TestConfig(), src)
	err := svc.SetLike(context.Background(), "r1", false)

	var authErr *recipesource.AuthorizationError
	if !errors.As(err, &authErr) {
		t.Fatalf("error = %v, want *AuthorizationError", err)
	}
	var collabErr *recipesource.CollaboratorError
	if !errors.As(err, &collabErr) {
		t.Error("AuthorizationError should unwrap to *CollaboratorError")
	}
}

func TestFeaturedRecipes_LimitHandling(t *testing.T) {
	src := testutil.NewMockRecipeSource()
	var gotLimit int
	src.ListFeaturedFunc = func(ctx context.Context, filter recipesource.FeaturedFilter) (*models.Page, error) {
		gotLimit = filter.Limit
		return testutil.TestPage(testutil.TestRecipe("r1")), nil
	}

	svc := NewRecipeService(testutil.TestConfig(), src)

	if _, err := svc.FeaturedRecipes(context.Background(), nil, 0, ""); err != nil {
		t.Fatalf("FeaturedRecipes error: %v", err)
	}
	if gotLimit != models.DefaultSearchLimit {
		t.Errorf("limit = %d, want default %d", gotLimit, models.DefaultSearchLimit)
	}

	_, err := svc.FeaturedRecipes(context.Background(), nil, models.MaxSearchLimit+1, "")
	var validationErr models.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
}
