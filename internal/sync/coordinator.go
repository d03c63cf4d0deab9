package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/vitalsync/vitalsync/internal/metrics"
	"github.com/vitalsync/vitalsync/pkg/errors"
	"github.com/vitalsync/vitalsync/pkg/logging"
)

// Status is the terminal state of one day's sync.
type Status string

// Per-day terminal states.
const (
	StatusCreated Status = "created"
	StatusUpdated Status = "updated"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// DayResult records the outcome of one day.
type DayResult struct {
	Day    metrics.DayKey `json:"day" yaml:"day"`
	Status Status         `json:"status" yaml:"status"`
	Error  string         `json:"error,omitempty" yaml:"error,omitempty"`
}

// Summary aggregates a run's per-day outcomes. Synced counts created and
// updated days; skipped days count toward neither tally.
type Summary struct {
	Synced  int         `json:"synced" yaml:"synced"`
	Skipped int         `json:"skipped" yaml:"skipped"`
	Failed  int         `json:"failed" yaml:"failed"`
	Days    []DayResult `json:"days" yaml:"days"`
}

// Coordinator drives the per-day fetch -> map -> locate -> create-or-update
// loop. Days are processed strictly sequentially; no day's failure aborts
// the run.
type Coordinator struct {
	fetcher *Fetcher
	locator *Locator
	store   RecordStore
	dryRun  bool
	now     func() time.Time
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithDryRun makes the coordinator fetch, map, and locate without issuing
// any create or update call, reporting the status each day would have had.
func WithDryRun(dryRun bool) Option {
	return func(c *Coordinator) {
		c.dryRun = dryRun
	}
}

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) {
		c.now = now
	}
}

// NewCoordinator creates a Coordinator over the given collaborators.
func NewCoordinator(api HealthAPI, store RecordStore, opts ...Option) *Coordinator {
	c := &Coordinator{
		fetcher: NewFetcher(api),
		locator: NewLocator(store),
		store:   store,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SyncDay reconciles a single day. All recoverable failures are contained
// here: the returned error carries diagnostic detail for the day but the
// caller keeps processing subsequent days.
func (c *Coordinator) SyncDay(ctx context.Context, day metrics.DayKey) (Status, error) {
	log := logging.FromContext(ctx)
	date := day.String()

	bundle := c.fetcher.Fetch(ctx, day)
	if bundle.Empty() {
		log.Info().Str("date", date).Msg("No health data available")
		return StatusSkipped, nil
	}

	fields := MapFields(bundle)
	recordID, exists := c.locator.Find(ctx, day)

	if exists {
		if c.dryRun {
			log.Info().Str("date", date).Str("record_id", recordID).Msg("Dry run: would update existing entry")
			return StatusUpdated, nil
		}
		if err := c.store.Update(ctx, recordID, fields); err != nil {
			return StatusFailed, errors.NewSyncError(date, "update", err)
		}
		log.Info().Str("date", date).Str("record_id", recordID).Msg("Updated existing entry")
		return StatusUpdated, nil
	}

	if c.dryRun {
		log.Info().Str("date", date).Msg("Dry run: would create entry")
		return StatusCreated, nil
	}
	if err := c.store.Create(ctx, day, fields); err != nil {
		return StatusFailed, errors.NewSyncError(date, "create", err)
	}
	log.Info().Str("date", date).Msg("Created entry")
	return StatusCreated, nil
}

// Run processes the given count of most-recent days ending today, one at a
// time, and returns the run summary. The returned error is non-nil when any
// day failed, so callers can exit non-zero; the summary is valid either way.
func (c *Coordinator) Run(ctx context.Context, days int) (*Summary, error) {
	if days < 1 {
		return nil, errors.NewConfigError("run", fmt.Sprintf("days must be at least 1, got %d", days), nil)
	}

	log := logging.FromContext(ctx)
	summary := &Summary{Days: make([]DayResult, 0, days)}

	for offset := 0; offset < days; offset++ {
		// An interrupt aborts the remaining days; days already processed
		// keep their outcome and there is no partial-day rollback.
		if err := ctx.Err(); err != nil {
			log.Warn().Int("remaining", days-offset).Msg("Run interrupted, aborting remaining days")
			return summary, err
		}

		day := metrics.Day(c.now().AddDate(0, 0, -offset))
		log.Info().Str("date", day.String()).Msg("Processing day")

		result := DayResult{Day: day}
		status, err := c.SyncDay(ctx, day)
		result.Status = status

		switch status {
		case StatusCreated, StatusUpdated:
			summary.Synced++
		case StatusSkipped:
			summary.Skipped++
		case StatusFailed:
			summary.Failed++
			result.Error = err.Error()
			log.Error().Str("date", day.String()).Err(err).Msg("Error processing day")
		}

		summary.Days = append(summary.Days, result)
	}

	log.Info().
		Int("synced", summary.Synced).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Msg("Sync complete")

	if summary.Failed > 0 {
		return summary, fmt.Errorf("%d of %d days failed", summary.Failed, days)
	}
	return summary, nil
}
