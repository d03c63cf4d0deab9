package sync

import (
	"context"

	"github.com/vitalsync/vitalsync/internal/metrics"
	"github.com/vitalsync/vitalsync/pkg/logging"
)

// RecordStore is the database-service collaborator: exact-date query plus
// create and update operations on day-keyed records.
type RecordStore interface {
	QueryByDate(ctx context.Context, day metrics.DayKey) ([]string, error)
	Create(ctx context.Context, day metrics.DayKey, fields metrics.Fields) error
	Update(ctx context.Context, recordID string, fields metrics.Fields) error
}

// Locator finds the existing record for a day, if any.
type Locator struct {
	store RecordStore
}

// NewLocator creates a Locator over the given store.
func NewLocator(store RecordStore) *Locator {
	return &Locator{store: store}
}

// Find returns the ID of the existing record for day and true, or false
// when no record matches. If the same day somehow exists as multiple
// records upstream, the first match wins.
//
// A query failure is logged and reported as "no existing record", which
// biases the run toward attempting a create and can produce a duplicate
// for a date that already has a record. Accepted limitation.
func (l *Locator) Find(ctx context.Context, day metrics.DayKey) (string, bool) {
	ids, err := l.store.QueryByDate(ctx, day)
	if err != nil {
		logging.FromContext(ctx).Error().
			Str("date", day.String()).
			Err(err).
			Msg("Error checking existing entries")
		return "", false
	}

	if len(ids) == 0 {
		return "", false
	}
	return ids[0], true
}
