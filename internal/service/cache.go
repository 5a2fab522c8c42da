package service

import (
	"context"
	"errors"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/platewise/backend/internal/datastore"
	"github.com/platewise/backend/internal/models"
)

// RecipeCache is a write-through cache of remote recipes in the cachedRecipes
// collection, keyed by the remote API's numeric id. Entries are immutable
// once written. The collection is bounded: inserts past maxEntries evict the
// oldest entries by CachedAt.
type RecipeCache struct {
	store      *datastore.Client
	maxEntries int
}

// NewRecipeCache creates a cache over the given store. maxEntries <= 0
// disables the bound.
func NewRecipeCache(store *datastore.Client, maxEntries int) *RecipeCache {
	return &RecipeCache{store: store, maxEntries: maxEntries}
}

// Get returns the cached recipe with the given remote id, or nil on miss.
// Store failures degrade to a miss.
func (c *RecipeCache) Get(ctx context.Context, id int64) *models.Recipe {
	var recipe models.Recipe
	err := c.store.Get(ctx, datastore.CachedRecipes, strconv.FormatInt(id, 10), &recipe)
	if errors.Is(err, datastore.ErrNotFound) {
		return nil
	}
	if err != nil {
		log.Printf("cache: reading recipe %d: %v", id, err)
		return nil
	}
	return &recipe
}

// Put stores a recipe if no entry with its id exists yet. Re-caching an
// already cached id is a no-op, so repeated remote fetches of the same
// recipe leave exactly one record.
func (c *RecipeCache) Put(ctx context.Context, recipe models.Recipe) {
	if !recipe.Valid() {
		return
	}
	if existing := c.Get(ctx, recipe.ID); existing != nil {
		return
	}

	recipe.CachedAt = nowUTC()
	if err := c.store.Create(ctx, datastore.CachedRecipes, recipe, nil); err != nil {
		log.Printf("cache: storing recipe %d: %v", recipe.ID, err)
		return
	}
	c.evictOverflow(ctx)
}

// All returns every cached recipe. Store failures yield an empty list.
func (c *RecipeCache) All(ctx context.Context) []models.Recipe {
	var recipes []models.Recipe
	if err := c.store.List(ctx, datastore.CachedRecipes, nil, &recipes); err != nil {
		log.Printf("cache: listing recipes: %v", err)
		return nil
	}
	return recipes
}

// SearchTitle returns cached recipes whose title contains q,
// case-insensitively.
func (c *RecipeCache) SearchTitle(ctx context.Context, q string) []models.Recipe {
	q = strings.ToLower(q)
	var matches []models.Recipe
	for _, r := range c.All(ctx) {
		if r.Title != "" && strings.Contains(strings.ToLower(r.Title), q) {
			matches = append(matches, r)
		}
	}
	return matches
}

// Clear removes every cached recipe. Admin operation.
func (c *RecipeCache) Clear(ctx context.Context) error {
	for _, r := range c.All(ctx) {
		if err := c.store.Delete(ctx, datastore.CachedRecipes, strconv.FormatInt(r.ID, 10)); err != nil {
			return err
		}
	}
	return nil
}

// evictOverflow trims the oldest entries once the collection exceeds the
// configured bound.
func (c *RecipeCache) evictOverflow(ctx context.Context) {
	if c.maxEntries <= 0 {
		return
	}
	recipes := c.All(ctx)
	if len(recipes) <= c.maxEntries {
		return
	}
	sort.Slice(recipes, func(i, j int) bool {
		return recipes[i].CachedAt.Before(recipes[j].CachedAt)
	})
	for _, r := range recipes[:len(recipes)-c.maxEntries] {
		if err := c.store.Delete(ctx, datastore.CachedRecipes, strconv.FormatInt(r.ID, 10)); err != nil {
			log.Printf("cache: evicting recipe %d: %v", r.ID, err)
		}
	}
}
