// Package remote implements the client for the third-party recipe API
// (Spoonacular-compatible). The API is rate limited and occasionally
// unavailable; callers are expected to treat every error here as a soft
// failure and fall back to cached data.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/platewise/backend/internal/models"
)

const placeholderKey = "YOUR_SPOONACULAR_API_KEY"

// SearchFilters are the advanced-search parameters forwarded to the complex
// search endpoint. Diet and intolerance lists are joined into comma-separated
// lowercase strings by the caller before they reach the client.
type SearchFilters struct {
	Query              string
	Diet               string
	Intolerances       string
	IncludeIngredients string
	ExcludeIngredients string
	MaxReadyTime       int
	MinCalories        int
	MaxCalories        int
	Number             int
}

// Client calls the remote recipe API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New creates a Client. baseURL is the recipes endpoint root, e.g.
// "https://api.spoonacular.com/recipes".
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// Configured reports whether a usable API key is present. When false the
// gateway never attempts remote calls.
func (c *Client) Configured() bool {
	return c.apiKey != "" && c.apiKey != placeholderKey
}

type randomResponse struct {
	Recipes []models.Recipe `json:"recipes"`
}

type searchResponse struct {
	Results []models.Recipe `json:"results"`
}

// RandomRecipe fetches exactly one random recipe with nutrition data.
func (c *Client) RandomRecipe(ctx context.Context) (*models.Recipe, error) {
	q := url.Values{}
	q.Set("number", "1")
	q.Set("includeNutrition", "true")

	var resp randomResponse
	if err := c.get(ctx, "/random", q, &resp); err != nil {
		return nil, err
	}
	if len(resp.Recipes) == 0 {
		return nil, fmt.Errorf("remote: empty random response")
	}
	return &resp.Recipes[0], nil
}

// Search runs a full-text complex search returning up to number recipes.
func (c *Client) Search(ctx context.Context, query string, number int) ([]models.Recipe, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("number", strconv.Itoa(number))
	q.Set("addRecipeInformation", "true")
	q.Set("addRecipeNutrition", "true")

	var resp searchResponse
	if err := c.get(ctx, "/complexSearch", q, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// GetRecipe fetches a single recipe's detail with nutrition data.
func (c *Client) GetRecipe(ctx context.Context, id int64) (*models.Recipe, error) {
	q := url.Values{}
	q.Set("includeNutrition", "true")

	var recipe models.Recipe
	if err := c.get(ctx, "/"+strconv.FormatInt(id, 10)+"/information", q, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ComplexSearch forwards every non-empty filter to the complex search
// endpoint.
func (c *Client) ComplexSearch(ctx context.Context, f SearchFilters) ([]models.Recipe, error) {
	q := url.Values{}
	q.Set("addRecipeInformation", "true")
	q.Set("addRecipeNutrition", "true")
	if f.Query != "" {
		q.Set("query", f.Query)
	}
	if f.Diet != "" {
		q.Set("diet", strings.ToLower(f.Diet))
	}
	if f.Intolerances != "" {
		q.Set("intolerances", strings.ToLower(f.Intolerances))
	}
	if f.IncludeIngredients != "" {
		q.Set("includeIngredients", f.IncludeIngredients)
	}
	if f.ExcludeIngredients != "" {
		q.Set("excludeIngredients", f.ExcludeIngredients)
	}
	if f.MaxReadyTime > 0 {
		q.Set("maxReadyTime", strconv.Itoa(f.MaxReadyTime))
	}
	if f.MinCalories > 0 {
		q.Set("minCalories", strconv.Itoa(f.MinCalories))
	}
	if f.MaxCalories > 0 {
		q.Set("maxCalories", strconv.Itoa(f.MaxCalories))
	}
	if f.Number > 0 {
		q.Set("number", strconv.Itoa(f.Number))
	}

	var resp searchResponse
	if err := c.get(ctx, "/complexSearch", q, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	q.Set("apiKey", c.apiKey)
	u := c.baseURL + path + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("remote: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("remote: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("remote: GET %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("remote: decode response: %w", err)
	}
	return nil
}
