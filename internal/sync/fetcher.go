// Package sync implements the reconciliation core: fetch a day's health
// metrics from the provider, map them to the record schema, locate any
// existing record, and create or update exactly one record per day.
package sync

import (
	"context"

	"github.com/vitalsync/vitalsync/internal/garmin"
	"github.com/vitalsync/vitalsync/internal/metrics"
	"github.com/vitalsync/vitalsync/pkg/logging"
)

// HealthAPI is the fitness-provider collaborator: three independent read
// operations for a given date, each of which may fail independently.
type HealthAPI interface {
	HRV(ctx context.Context, date string) (*garmin.HRVData, error)
	RestingHeartRate(ctx context.Context, date string) (*garmin.RestingHeartRateData, error)
	MaxMetrics(ctx context.Context, date string) (*garmin.MaxMetrics, error)
}

// Bundle holds the raw metric payloads fetched for one day. Each payload is
// independently present or absent depending on fetch success and provider
// data availability.
type Bundle struct {
	HRV              *garmin.HRVData
	RestingHeartRate *garmin.RestingHeartRateData
	MaxMetrics       *garmin.MaxMetrics
}

// Empty reports whether all three payloads are absent, meaning there is
// nothing to sync for the day.
func (b Bundle) Empty() bool {
	return b.HRV == nil && b.RestingHeartRate == nil && b.MaxMetrics == nil
}

// Fetcher wraps the provider client with per-metric failure isolation.
type Fetcher struct {
	api HealthAPI
}

// NewFetcher creates a Fetcher over the given provider client.
func NewFetcher(api HealthAPI) *Fetcher {
	return &Fetcher{api: api}
}

// Fetch issues the three metric reads for a day. A failed read is logged as
// a warning and yields an absent payload; it never aborts the other reads.
// A read that succeeds but decodes to its zero value (the provider's shape
// for a no-data day) is also treated as absent, so a day with no metrics at
// all is skipped instead of written as a date-only record.
func (f *Fetcher) Fetch(ctx context.Context, day metrics.DayKey) Bundle {
	log := logging.FromContext(ctx)
	date := day.String()

	var bundle Bundle

	if hrv, err := f.api.HRV(ctx, date); err != nil {
		log.Warn().Str("date", date).Err(err).Msg("Could not fetch HRV data")
	} else if hrv.IsZero() {
		log.Debug().Str("date", date).Msg("No HRV data for date")
	} else {
		bundle.HRV = hrv
		log.Debug().Str("date", date).Msg("HRV data retrieved")
	}

	if rhr, err := f.api.RestingHeartRate(ctx, date); err != nil {
		log.Warn().Str("date", date).Err(err).Msg("Could not fetch resting heart rate data")
	} else if rhr.IsZero() {
		log.Debug().Str("date", date).Msg("No resting heart rate data for date")
	} else {
		bundle.RestingHeartRate = rhr
		log.Debug().Str("date", date).Msg("Resting heart rate data retrieved")
	}

	if vo2, err := f.api.MaxMetrics(ctx, date); err != nil {
		log.Warn().Str("date", date).Err(err).Msg("Could not fetch VO2 max data")
	} else if vo2.IsZero() {
		log.Debug().Str("date", date).Msg("No VO2 max data for date")
	} else {
		bundle.MaxMetrics = vo2
		log.Debug().Str("date", date).Msg("VO2 max data retrieved")
	}

	return bundle
}
