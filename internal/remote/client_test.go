package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, "test-key", 5*time.Second)
}

func TestConfigured(t *testing.T) {
	assert.True(t, New("", "real-key", time.Second).Configured())
	assert.False(t, New("", "", time.Second).Configured())
	assert.False(t, New("", placeholderKey, time.Second).Configured())
}

func TestRandomRecipeSendsKeyAndNutrition(t *testing.T) {
	var got url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/random", r.URL.Path)
		got = r.URL.Query()
		w.Write([]byte(`{"recipes":[{"id":42,"title":"Pad Thai"}]}`))
	})

	recipe, err := client.RandomRecipe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), recipe.ID)
	assert.Equal(t, "test-key", got.Get("apiKey"))
	assert.Equal(t, "1", got.Get("number"))
	assert.Equal(t, "true", got.Get("includeNutrition"))
}

func TestRandomRecipeEmptyResponseIsError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"recipes":[]}`))
	})

	_, err := client.RandomRecipe(context.Background())
	assert.Error(t, err)
}

func TestSearchForwardsQuery(t *testing.T) {
	var got url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/complexSearch", r.URL.Path)
		got = r.URL.Query()
		w.Write([]byte(`{"results":[{"id":1,"title":"Chicken Soup"}]}`))
	})

	recipes, err := client.Search(context.Background(), "chicken", 12)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "chicken", got.Get("query"))
	assert.Equal(t, "12", got.Get("number"))
	assert.Equal(t, "true", got.Get("addRecipeInformation"))
	assert.Equal(t, "true", got.Get("addRecipeNutrition"))
}

func TestGetRecipeBuildsInformationPath(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/716429/information", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("includeNutrition"))
		w.Write([]byte(`{"id":716429,"title":"Pasta"}`))
	})

	recipe, err := client.GetRecipe(context.Background(), 716429)
	require.NoError(t, err)
	assert.Equal(t, "Pasta", recipe.Title)
}

func TestComplexSearchSkipsEmptyFilters(t *testing.T) {
	var got url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{"results":[]}`))
	})

	_, err := client.ComplexSearch(context.Background(), SearchFilters{
		Query:        "soup",
		Diet:         "Vegetarian",
		MaxReadyTime: 30,
	})
	require.NoError(t, err)

	assert.Equal(t, "soup", got.Get("query"))
	// Diet names are normalized to lowercase on the wire.
	assert.Equal(t, "vegetarian", got.Get("diet"))
	assert.Equal(t, "30", got.Get("maxReadyTime"))
	assert.False(t, got.Has("intolerances"))
	assert.False(t, got.Has("minCalories"))
	assert.False(t, got.Has("number"))
}

func TestNon2xxStatusIsError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusPaymentRequired)
	})

	_, err := client.Search(context.Background(), "anything", 1)
	assert.ErrorContains(t, err, "402")
}

func TestUnreachableAPIIsError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	client := New(server.URL, "test-key", time.Second)

	_, err := client.RandomRecipe(context.Background())
	assert.Error(t, err)
}
