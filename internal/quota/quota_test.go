package quota

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

func newTracker(t *testing.T, limit int) (*StoreTracker, *testutil.FakeStore) {
	store := testutil.NewFakeStore(t)
	client := datastore.New(store.URL(), 5*time.Second)
	return NewStoreTracker(client, limit), store
}

func fixedDate(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	}
}

func TestAllowUnderLimit(t *testing.T) {
	tracker, store := newTracker(t, 150)
	tracker.now = fixedDate(2026, time.March, 10)
	store.Seed(t, datastore.APIUsageStats, models.UsageStats{
		ID: "1", Date: "2026-03-10", Count: 10, Limit: 150,
	})

	assert.True(t, tracker.Allow(context.Background()))
}

func TestAllowAtLimit(t *testing.T) {
	tracker, store := newTracker(t, 150)
	tracker.now = fixedDate(2026, time.March, 10)
	store.Seed(t, datastore.APIUsageStats, models.UsageStats{
		ID: "1", Date: "2026-03-10", Count: 150, Limit: 150,
	})

	assert.False(t, tracker.Allow(context.Background()))
}

func TestAllowResetsOnNewDay(t *testing.T) {
	tracker, store := newTracker(t, 150)
	tracker.now = fixedDate(2026, time.March, 11)
	// Yesterday's counter is exhausted; today starts fresh.
	store.Seed(t, datastore.APIUsageStats, models.UsageStats{
		ID: "1", Date: "2026-03-10", Count: 150, Limit: 150,
	})

	assert.True(t, tracker.Allow(context.Background()))

	doc := store.Doc("apiUsageStats", "1")
	require.NotNil(t, doc)
	assert.Equal(t, "2026-03-11", doc["date"])
	assert.Equal(t, float64(0), doc["count"])
}

func TestAllowInitializesMissingRecord(t *testing.T) {
	tracker, store := newTracker(t, 150)
	tracker.now = fixedDate(2026, time.March, 10)

	assert.True(t, tracker.Allow(context.Background()))

	doc := store.Doc("apiUsageStats", "1")
	require.NotNil(t, doc)
	assert.Equal(t, "2026-03-10", doc["date"])
	assert.Equal(t, float64(0), doc["count"])
	assert.Equal(t, float64(150), doc["limit"])
}

func TestAllowFailsClosedWhenStoreUnreachable(t *testing.T) {
	tracker, store := newTracker(t, 150)
	store.Fail = true

	assert.False(t, tracker.Allow(context.Background()))
}

func TestRecordIncrementsCount(t *testing.T) {
	tracker, store := newTracker(t, 150)
	tracker.now = fixedDate(2026, time.March, 10)
	store.Seed(t, datastore.APIUsageStats, models.UsageStats{
		ID: "1", Date: "2026-03-10", Count: 7, Limit: 150,
	})

	tracker.Record(context.Background())

	doc := store.Doc("apiUsageStats", "1")
	require.NotNil(t, doc)
	assert.Equal(t, float64(8), doc["count"])
}

func TestStats(t *testing.T) {
	tracker, store := newTracker(t, 150)
	store.Seed(t, datastore.APIUsageStats, models.UsageStats{
		ID: "1", Date: "2026-03-10", Count: 42, Limit: 150,
	})

	stats, err := tracker.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, stats.Count)
	assert.Equal(t, 150, stats.Limit)
}
