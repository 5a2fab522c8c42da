// Package datastore is a thin client for the generic REST document store
// backing all persistence. Each collection supports exact-match filtering via
// query parameters, addressing by primary id, full replacement and partial
// merge. Query semantics belong to the store; this client only does transport.
package datastore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrNotFound is returned when the store has no record with the given id.
var ErrNotFound = errors.New("datastore: record not found")

// Collection names consumed by this service.
const (
	Users         = "users"
	CustomRecipes = "customRecipes"
	Favorites     = "favorites"
	MealPlans     = "mealPlans"
	CachedRecipes = "cachedRecipes"
	APIUsageStats = "apiUsageStats"
	DailyRecipes  = "dailyRecipes"
)

// Client talks to the document store over HTTP. Every request carries a
// bounded timeout so an unresponsive store degrades into an error instead of
// a hung operation.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the store at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// List fetches all records of a collection matching the exact-match filter.
// Multiple filter fields are AND-combined by the store. out must be a pointer
// to a slice.
func (c *Client) List(ctx context.Context, collection string, filter url.Values, out any) error {
	u := c.baseURL + "/" + collection
	if len(filter) > 0 {
		u += "?" + filter.Encode()
	}
	return c.do(ctx, http.MethodGet, u, nil, out)
}

// Get fetches a single record by primary id. Returns ErrNotFound on 404.
func (c *Client) Get(ctx context.Context, collection, id string, out any) error {
	return c.do(ctx, http.MethodGet, c.baseURL+"/"+collection+"/"+url.PathEscape(id), nil, out)
}

// Create inserts a new record. The caller supplies the id on the document
// itself. out, when non-nil, receives the stored record.
func (c *Client) Create(ctx context.Context, collection string, doc, out any) error {
	return c.do(ctx, http.MethodPost, c.baseURL+"/"+collection, doc, out)
}

// Put replaces a record in full.
func (c *Client) Put(ctx context.Context, collection, id string, doc, out any) error {
	return c.do(ctx, http.MethodPut, c.baseURL+"/"+collection+"/"+url.PathEscape(id), doc, out)
}

// Patch merges the given fields into an existing record.
func (c *Client) Patch(ctx context.Context, collection, id string, doc, out any) error {
	return c.do(ctx, http.MethodPatch, c.baseURL+"/"+collection+"/"+url.PathEscape(id), doc, out)
}

// Delete removes a record by id. Returns ErrNotFound on 404 so callers can
// report deletion of an already-deleted record as such.
func (c *Client) Delete(ctx context.Context, collection, id string) error {
	return c.do(ctx, http.MethodDelete, c.baseURL+"/"+collection+"/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, u string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("datastore: encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("datastore: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("datastore: %s %s: %w", method, u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("datastore: %s %s: unexpected status %d", method, u, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("datastore: decode response: %w", err)
	}
	return nil
}
