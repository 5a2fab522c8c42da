// Package quota tracks remote recipe API usage against a fixed daily limit.
// The counter is process-wide shared state across all users of a deployment,
// not per-user.
package quota

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/platewise/backend/internal/datastore"
	"github.com/platewise/backend/internal/models"
)

// usageStatsID is the primary id of the singleton apiUsageStats record.
const usageStatsID = "1"

// Tracker decides whether another remote API call may be made today.
type Tracker interface {
	// Allow reports whether a remote call is permitted right now. It must
	// fail closed: if the backing store is unreachable the answer is false
	// and the system degrades to cache-only.
	Allow(ctx context.Context) bool
	// Record counts one remote call against today's budget.
	Record(ctx context.Context)
	// Stats returns the current usage counters for the dashboard.
	Stats(ctx context.Context) (models.UsageStats, error)
}

// StoreTracker keeps the counter in the document store's apiUsageStats
// singleton. The check-then-increment is a read-modify-write with no locking;
// under concurrent callers the count may drift, which only loosens the quota,
// never correctness of recipe data.
type StoreTracker struct {
	store *datastore.Client
	limit int
	// now is swappable so tests can control the calendar date.
	now func() time.Time
}

// NewStoreTracker creates a tracker with the given daily limit.
func NewStoreTracker(store *datastore.Client, limit int) *StoreTracker {
	return &StoreTracker{store: store, limit: limit, now: time.Now}
}

// Allow implements Tracker. A missing record or a stored date other than
// today resets the counter to zero for today before answering.
func (t *StoreTracker) Allow(ctx context.Context) bool {
	var stats models.UsageStats
	err := t.store.Get(ctx, datastore.APIUsageStats, usageStatsID, &stats)
	if err != nil && !errors.Is(err, datastore.ErrNotFound) {
		log.Printf("quota: reading usage stats: %v", err)
		return false
	}

	today := t.now().Format(models.UsageDateLayout)
	if stats.Date != today {
		reset := models.UsageStats{
			ID:        usageStatsID,
			Date:      today,
			Count:     0,
			Limit:     t.limit,
			LastReset: t.now(),
		}
		// POST creates the record the first time; PUT replaces it afterwards.
		var werr error
		if errors.Is(err, datastore.ErrNotFound) {
			werr = t.store.Create(ctx, datastore.APIUsageStats, reset, nil)
		} else {
			werr = t.store.Put(ctx, datastore.APIUsageStats, usageStatsID, reset, nil)
		}
		if werr != nil {
			log.Printf("quota: resetting usage stats: %v", werr)
			return false
		}
		return true
	}

	limit := stats.Limit
	if limit == 0 {
		limit = t.limit
	}
	return stats.Count < limit
}

// Record implements Tracker. Failures are logged and dropped; losing an
// increment is an accepted drift.
func (t *StoreTracker) Record(ctx context.Context) {
	var stats models.UsageStats
	if err := t.store.Get(ctx, datastore.APIUsageStats, usageStatsID, &stats); err != nil {
		log.Printf("quota: reading usage stats: %v", err)
		return
	}
	stats.Count++
	if err := t.store.Put(ctx, datastore.APIUsageStats, usageStatsID, stats, nil); err != nil {
		log.Printf("quota: recording usage: %v", err)
	}
}

// Stats implements Tracker.
func (t *StoreTracker) Stats(ctx context.Context) (models.UsageStats, error) {
	var stats models.UsageStats
	if err := t.store.Get(ctx, datastore.APIUsageStats, usageStatsID, &stats); err != nil {
		return models.UsageStats{Limit: t.limit}, err
	}
	if stats.Limit == 0 {
		stats.Limit = t.limit
	}
	return stats, nil
}
