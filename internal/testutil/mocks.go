package testutil

import (
	"context"
	"fmt"

	"github.com/firstbites/agent-api/internal/models"
	"github.com/firstbites/agent-api/internal/recipesource"
)

// MockRecipeSource is a mock implementation of recipesource.Source. Each
// method delegates to its Func field when set and records the call in
// Calls, so tests can assert both behavior and how many upstream requests
// a pipeline run issued.
type MockRecipeSource struct {
	ListFunc           func(ctx context.Context, filter recipesource.ListFilter) (*models.Page, error)
	ListFeaturedFunc   func(ctx context.Context, filter recipesource.FeaturedFilter) (*models.Page, error)
	GetByIDFunc        func(ctx context.Context, id string, language string) (*models.Recipe, error)
	SetInteractionFunc func(ctx context.Context, id string, kind recipesource.InteractionKind, active bool) error

	Calls []string
}

// NewMockRecipeSource creates an empty MockRecipeSource.
func NewMockRecipeSource() *MockRecipeSource {
	return &MockRecipeSource{}
}

func (m *MockRecipeSource) List(ctx context.Context, filter recipesource.ListFilter) (*models.Page, error) {
	m.Calls = append(m.Calls, "list")
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, fmt.Errorf("List not configured")
}

func (m *MockRecipeSource) ListFeatured(ctx context.Context, filter recipesource.FeaturedFilter) (*models.Page, error) {
	m.Calls = append(m.Calls, "featured")
	if m.ListFeaturedFunc != nil {
		return m.ListFeaturedFunc(ctx, filter)
	}
	return nil, fmt.Errorf("ListFeatured not configured")
}

func (m *MockRecipeSource) GetByID(ctx context.Context, id string, language string) (*models.Recipe, error) {
	m.Calls = append(m.Calls, "detail")
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id, language)
	}
	return nil, fmt.Errorf("GetByID not configured")
}

func (m *MockRecipeSource) SetInteraction(ctx context.Context, id string, kind recipesource.InteractionKind, active bool) error {
	m.Calls = append(m.Calls, fmt.Sprintf("interaction:%s:%v", kind, active))
	if m.SetInteractionFunc != nil {
		return m.SetInteractionFunc(ctx, id, kind, active)
	}
	return fmt.Errorf("SetInteraction not configured")
}
