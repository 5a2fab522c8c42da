package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/backend/internal/datastore"
	"github.com/platewise/backend/internal/models"
	"github.com/platewise/backend/internal/testutil"
)

func newCache(t *testing.T, maxEntries int) (*RecipeCache, *testutil.FakeStore) {
	store := testutil.NewFakeStore(t)
	client := datastore.New(store.URL(), 5*time.Second)
	return NewRecipeCache(client, maxEntries), store
}

func TestPutSkipsExistingID(t *testing.T) {
	cache, store := newCache(t, 0)
	ctx := context.Background()

	cache.Put(ctx, models.Recipe{ID: 1, Title: "Original"})
	cache.Put(ctx, models.Recipe{ID: 1, Title: "Changed"})

	assert.Equal(t, 1, store.Count("cachedRecipes"))
	got := cache.Get(ctx, 1)
	require.NotNil(t, got)
	// Cached entries are immutable: the first write wins.
	assert.Equal(t, "Original", got.Title)
}

func TestPutRejectsMalformedRecipes(t *testing.T) {
	cache, store := newCache(t, 0)
	ctx := context.Background()

	cache.Put(ctx, models.Recipe{ID: 0, Title: "No ID"})
	cache.Put(ctx, models.Recipe{ID: 2, Title: ""})

	assert.Equal(t, 0, store.Count("cachedRecipes"))
}

func TestPutStampsCachedAt(t *testing.T) {
	cache, _ := newCache(t, 0)
	ctx := context.Background()

	cache.Put(ctx, models.Recipe{ID: 1, Title: "Stew"})
	got := cache.Get(ctx, 1)
	require.NotNil(t, got)
	assert.False(t, got.CachedAt.IsZero())
}

func TestSearchTitleIsCaseInsensitive(t *testing.T) {
	cache, _ := newCache(t, 0)
	ctx := context.Background()

	cache.Put(ctx, models.Recipe{ID: 1, Title: "Chicken Curry"})
	cache.Put(ctx, models.Recipe{ID: 2, Title: "Beef Stew"})

	matches := cache.SearchTitle(ctx, "cHiCkEn")
	require.Len(t, matches, 1)
	assert.Equal(t, int64(1), matches[0].ID)
}

func TestEvictionKeepsNewestEntries(t *testing.T) {
	cache, store := newCache(t, 2)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := int64(1); i <= 3; i++ {
		offset := time.Duration(i) * time.Hour
		nowUTC = func() time.Time { return base.Add(offset) }
		cache.Put(ctx, models.Recipe{ID: i, Title: "Recipe"})
	}
	nowUTC = func() time.Time { return time.Now().UTC() }

	assert.Equal(t, 2, store.Count("cachedRecipes"))
	assert.Nil(t, cache.Get(ctx, 1))
	assert.NotNil(t, cache.Get(ctx, 2))
	assert.NotNil(t, cache.Get(ctx, 3))
}

func TestClearEmptiesCache(t *testing.T) {
	cache, store := newCache(t, 0)
	ctx := context.Background()

	cache.Put(ctx, models.Recipe{ID: 1, Title: "A"})
	cache.Put(ctx, models.Recipe{ID: 2, Title: "B"})

	require.NoError(t, cache.Clear(ctx))
	assert.Equal(t, 0, store.Count("cachedRecipes"))
}
