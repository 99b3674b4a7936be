package recipesource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/firstbites/agent-api/internal/metrics"
	"github.com/firstbites/agent-api/internal/models"
)

// ListFilter holds the upstream query parameters for a recipe listing.
type ListFilter struct {
	AgeGroup *models.AgeGroup
	MealType string
	Query    string
	Limit    int
	Offset   int
	Language string
}

// FeaturedFilter holds the upstream query parameters for the featured list.
type FeaturedFilter struct {
	AgeGroup *models.AgeGroup
	Limit    int
	Language string
}

// InteractionKind identifies a user interaction with a recipe.
type InteractionKind string

const (
	KindLike     InteractionKind = "like"
	KindBookmark InteractionKind = "bookmark"
)

// Source is the upstream recipe API as consumed by the services. All
// methods return a CollaboratorError on transport or HTTP failure.
type Source interface {
	List(ctx context.Context, filter ListFilter) (*models.Page, error)
	ListFeatured(ctx context.Context, filter FeaturedFilter) (*models.Page, error)
	GetByID(ctx context.Context, id string, language string) (*models.Recipe, error)
	SetInteraction(ctx context.Context, id string, kind InteractionKind, active bool) error
}

// Client talks to the upstream recipe API over HTTP. The base URL and
// bearer credential are fixed at construction; nothing is read from
// ambient state afterwards.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Client for the given base URL. apiKey may be empty;
// write operations will then be rejected by the upstream.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type pageMeta struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
	Count      int `json:"count"`
}

type listResponse struct {
	Recipes []models.Recipe `json:"recipes"`
	Meta    pageMeta        `json:"meta"`
}

type detailResponse struct {
	Recipe *models.Recipe `json:"recipe"`
}

// List fetches one page of recipes matching the filter.
func (c *Client) List(ctx context.Context, filter ListFilter) (*models.Page, error) {
	params := url.Values{}
	if filter.AgeGroup != nil {
		params.Set("age_group", string(*filter.AgeGroup))
	}
	if filter.MealType != "" {
		params.Set("meal_type", filter.MealType)
	}
	if filter.Query != "" {
		params.Set("q", filter.Query)
	}
	params.Set("limit", strconv.Itoa(filter.Limit))
	if filter.Offset > 0 {
		params.Set("offset", strconv.Itoa(filter.Offset))
	}
	if filter.Language != "" {
		params.Set("lang", filter.Language)
	}

	body, err := c.get(ctx, "list", "/v1/recipes", params)
	if err != nil {
		return nil, err
	}
	return decodePage("list", body)
}

// ListFeatured fetches the editorially curated featured list.
func (c *Client) ListFeatured(ctx context.Context, filter FeaturedFilter) (*models.Page, error) {
	params := url.Values{}
	if filter.AgeGroup != nil {
		params.Set("age_group", string(*filter.AgeGroup))
	}
	params.Set("limit", strconv.Itoa(filter.Limit))
	if filter.Language != "" {
		params.Set("lang", filter.Language)
	}

	body, err := c.get(ctx, "featured", "/v1/recipes/featured", params)
	if err != nil {
		return nil, err
	}
	return decodePage("featured", body)
}

// GetByID fetches a single recipe.
func (c *Client) GetByID(ctx context.Context, id string, language string) (*models.Recipe, error) {
	params := url.Values{}
	if language != "" {
		params.Set("lang", language)
	}

	body, err := c.get(ctx, "detail", "/v1/recipes/"+url.PathEscape(id), params)
	if err != nil {
		return nil, err
	}

	var resp detailResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &CollaboratorError{Message: fmt.Sprintf("malformed detail payload: %v", err)}
	}
	if resp.Recipe == nil || resp.Recipe.ID == "" {
		return nil, &CollaboratorError{Message: "detail payload missing recipe"}
	}
	return resp.Recipe, nil
}

// SetInteraction creates (active) or deletes (inactive) a like or
// bookmark. Repeated identical calls are passed through unchanged; the
// upstream treats them idempotently.
func (c *Client) SetInteraction(ctx context.Context, id string, kind InteractionKind, active bool) error {
	var path string
	switch kind {
	case KindLike:
		path = "/v1/recipes/" + url.PathEscape(id) + "/likes"
	case KindBookmark:
		path = "/v1/recipes/" + url.PathEscape(id) + "/bookmarks"
	default:
		return &CollaboratorError{Message: fmt.Sprintf("unknown interaction kind %q", kind)}
	}

	method := http.MethodPost
	if !active {
		method = http.MethodDelete
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return &CollaboratorError{Message: fmt.Sprintf("failed to create request: %v", err)}
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	_, err = c.do("interaction", req)
	return err
}

// get issues a GET with the configured credential attached.
func (c *Client) get(ctx context.Context, op, path string, params url.Values) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &CollaboratorError{Message: fmt.Sprintf("failed to create request: %v", err)}
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	return c.do(op, req)
}

// do executes the request and maps transport and HTTP failures onto the
// error taxonomy. 401/403 become AuthorizationError.
func (c *Client) do(op string, req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstream(op, 0)
		return nil, &CollaboratorError{Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RecordUpstream(op, resp.StatusCode)
		return nil, &CollaboratorError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read response: %v", err)}
	}

	metrics.RecordUpstream(op, resp.StatusCode)

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, &AuthorizationError{CollaboratorError{
			StatusCode: resp.StatusCode,
			Message:    "credential rejected",
		}}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &CollaboratorError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("unexpected status: %s", string(body)),
		}
	}
	return body, nil
}

// decodePage parses a listing payload into the canonical Page shape.
// There is exactly one accepted shape; anything else is an error rather
// than a reason to probe alternatives.
func decodePage(op string, body []byte) (*models.Page, error) {
	var resp listResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &CollaboratorError{Message: fmt.Sprintf("malformed %s payload: %v", op, err)}
	}
	for _, r := range resp.Recipes {
		if r.ID == "" {
			return nil, &CollaboratorError{Message: fmt.Sprintf("%s payload contains recipe without id", op)}
		}
	}
	return &models.Page{
		Recipes:    resp.Recipes,
		Page:       resp.Meta.Page,
		PerPage:    resp.Meta.PerPage,
		TotalPages: resp.Meta.TotalPages,
		Count:      resp.Meta.Count,
	}, nil
}
