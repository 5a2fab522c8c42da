package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/backend/internal/datastore"
	"github.com/platewise/backend/internal/models"
	"github.com/platewise/backend/internal/testutil"
	"github.com/platewise/backend/internal/types"
)

func newFavoritesService(t *testing.T) (*FavoritesService, *testutil.FakeStore) {
	store := testutil.NewFakeStore(t)
	client := datastore.New(store.URL(), 5*time.Second)
	return NewFavoritesService(client), store
}

func sampleToggle() *types.ToggleFavoriteRequest {
	return &types.ToggleFavoriteRequest{
		RecipeID:       42,
		Title:          "Paella",
		Image:          "http://img.example.com/paella.jpg",
		ReadyInMinutes: 50,
		Servings:       4,
		Summary:        "Saffron rice with seafood",
	}
}

func TestTogglePairParity(t *testing.T) {
	// Odd toggle counts leave the favorite present, even counts absent, and
	// the collection never holds more than one row for the pair.
	svc, store := newFavoritesService(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		result, err := svc.Toggle(ctx, "u1", sampleToggle())
		require.NoError(t, err)

		wantPresent := i%2 == 1
		assert.Equal(t, wantPresent, result.Favorited, "after %d toggles", i)
		wantRows := 0
		if wantPresent {
			wantRows = 1
		}
		assert.Equal(t, wantRows, store.Count("favorites"), "after %d toggles", i)
	}
}

func TestAddIsIdempotent(t *testing.T) {
	svc, store := newFavoritesService(t)
	ctx := context.Background()

	first, err := svc.Add(ctx, "u1", sampleToggle())
	require.NoError(t, err)
	assert.True(t, first.Changed)

	second, err := svc.Add(ctx, "u1", sampleToggle())
	require.NoError(t, err)
	assert.False(t, second.Changed)
	assert.True(t, second.Favorited)
	require.NotNil(t, second.Favorite)
	assert.Equal(t, first.Favorite.ID, second.Favorite.ID)
	assert.Equal(t, 1, store.Count("favorites"))
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	svc, _ := newFavoritesService(t)

	result, err := svc.Remove(context.Background(), "u1", 42)
	require.NoError(t, err)
	assert.False(t, result.Favorited)
	assert.False(t, result.Changed)
}

func TestAddTruncatesSummary(t *testing.T) {
	svc, _ := newFavoritesService(t)

	req := sampleToggle()
	req.Summary = strings.Repeat("x", 500)
	result, err := svc.Add(context.Background(), "u1", req)
	require.NoError(t, err)
	assert.Len(t, result.Favorite.Summary, 200)
}

func TestFavoritesAreScopedPerUser(t *testing.T) {
	svc, _ := newFavoritesService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "u1", sampleToggle())
	require.NoError(t, err)

	other, err := svc.IsFavorited(ctx, "u2", 42)
	require.NoError(t, err)
	assert.Nil(t, other)

	count, err := svc.Count(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestIsFavoritedPicksLowestIDAmongDuplicates(t *testing.T) {
	// Duplicates violate the ledger invariant; the read side stays
	// deterministic instead of crashing.
	svc, store := newFavoritesService(t)

	store.Seed(t, datastore.Favorites, models.Favorite{ID: "b", UserID: "u1", RecipeID: 42})
	store.Seed(t, datastore.Favorites, models.Favorite{ID: "a", UserID: "u1", RecipeID: 42})

	favorite, err := svc.IsFavorited(context.Background(), "u1", 42)
	require.NoError(t, err)
	require.NotNil(t, favorite)
	assert.Equal(t, "a", favorite.ID)
}
