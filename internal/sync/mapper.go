package sync

import (
	"github.com/vitalsync/vitalsync/internal/garmin"
	"github.com/vitalsync/vitalsync/internal/metrics"
)

// MapFields converts a raw metric bundle into the normalized field set.
// Pure and deterministic: each extraction rule applies independently and
// produces output only when its full source path exists and is non-nil, so
// a missing key at any depth means an absent field, never a panic.
func MapFields(bundle Bundle) metrics.Fields {
	fields := make(metrics.Fields)

	mapHRV(bundle.HRV, fields)
	mapRestingHeartRate(bundle.RestingHeartRate, fields)
	mapMaxMetrics(bundle.MaxMetrics, fields)

	return fields
}

func mapHRV(data *garmin.HRVData, fields metrics.Fields) {
	if data == nil || data.HRVSummary == nil {
		return
	}

	summary := data.HRVSummary
	if summary.LastNightAvg != nil {
		fields[metrics.FieldLastNightHRV] = metrics.NumberValue(*summary.LastNightAvg)
	}
	if summary.WeeklyAvg != nil {
		fields[metrics.FieldWeeklyAvgHRV] = metrics.NumberValue(*summary.WeeklyAvg)
	}
	if summary.Status != nil {
		fields[metrics.FieldHRVStatus] = metrics.TextValue(*summary.Status)
	}
}

func mapRestingHeartRate(data *garmin.RestingHeartRateData, fields metrics.Fields) {
	if data == nil || data.AllMetrics == nil {
		return
	}

	samples := data.AllMetrics.MetricsMap[garmin.MetricRestingHeartRate]
	if len(samples) == 0 {
		return
	}

	// Only the first sample is consulted; additional entries are ignored.
	if v := samples[0].Value; v != nil {
		fields[metrics.FieldRestingHeartRate] = metrics.IntegerValue(int(*v))
	}
}

func mapMaxMetrics(data *garmin.MaxMetrics, fields metrics.Fields) {
	if data == nil {
		return
	}

	if data.VO2MaxValue != nil {
		fields[metrics.FieldVO2Max] = metrics.NumberValue(*data.VO2MaxValue)
	}
	if data.FitnessAge != nil {
		fields[metrics.FieldFitnessAge] = metrics.NumberValue(*data.FitnessAge)
	}
}
