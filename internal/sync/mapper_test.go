package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitalsync/vitalsync/internal/garmin"
	"github.com/vitalsync/vitalsync/internal/metrics"
)

func fptr(v float64) *float64 { return &v }
func sptr(s string) *string   { return &s }

func hrvBundle(lastNight, weekly *float64, status *string) Bundle {
	return Bundle{
		HRV: &garmin.HRVData{
			HRVSummary: &garmin.HRVSummary{
				LastNightAvg: lastNight,
				WeeklyAvg:    weekly,
				Status:       status,
			},
		},
	}
}

func rhrBundle(samples ...garmin.MetricSample) Bundle {
	return Bundle{
		RestingHeartRate: &garmin.RestingHeartRateData{
			AllMetrics: &garmin.AllMetrics{
				MetricsMap: map[string][]garmin.MetricSample{
					garmin.MetricRestingHeartRate: samples,
				},
			},
		},
	}
}

func TestMapFieldsFullHRVSummary(t *testing.T) {
	// Scenario: HRV present with all three values, RHR and VO2 absent.
	fields := MapFields(hrvBundle(fptr(55), fptr(60), sptr("BALANCED")))

	assert.Equal(t, metrics.Fields{
		metrics.FieldLastNightHRV: metrics.NumberValue(55),
		metrics.FieldWeeklyAvgHRV: metrics.NumberValue(60),
		metrics.FieldHRVStatus:    metrics.TextValue("BALANCED"),
	}, fields)
}

func TestMapFieldsRestingHeartRateTruncates(t *testing.T) {
	// 47.9 truncates to 47, not rounds to 48.
	fields := MapFields(rhrBundle(garmin.MetricSample{Value: fptr(47.9)}))

	assert.Equal(t, metrics.Fields{
		metrics.FieldRestingHeartRate: metrics.IntegerValue(47),
	}, fields)
}

func TestMapFieldsRestingHeartRateFirstSampleOnly(t *testing.T) {
	fields := MapFields(rhrBundle(
		garmin.MetricSample{Value: fptr(47.0)},
		garmin.MetricSample{Value: fptr(99.0)},
	))

	assert.Equal(t, metrics.IntegerValue(47), fields[metrics.FieldRestingHeartRate])
	assert.Len(t, fields, 1)
}

func TestMapFieldsVO2Max(t *testing.T) {
	fields := MapFields(Bundle{
		MaxMetrics: &garmin.MaxMetrics{VO2MaxValue: fptr(48.5), FitnessAge: fptr(29)},
	})

	assert.Equal(t, metrics.Fields{
		metrics.FieldVO2Max:     metrics.NumberValue(48.5),
		metrics.FieldFitnessAge: metrics.NumberValue(29),
	}, fields)
}

func TestMapFieldsMissingPathsProduceNoFields(t *testing.T) {
	tests := []struct {
		name   string
		bundle Bundle
	}{
		{"all payloads absent", Bundle{}},
		{"hrv without summary", Bundle{HRV: &garmin.HRVData{}}},
		{"hrv summary with nil values", hrvBundle(nil, nil, nil)},
		{"rhr without allMetrics", Bundle{RestingHeartRate: &garmin.RestingHeartRateData{}}},
		{"rhr with nil metrics map", Bundle{RestingHeartRate: &garmin.RestingHeartRateData{AllMetrics: &garmin.AllMetrics{}}}},
		{"rhr with empty metrics list", rhrBundle()},
		{"rhr sample without value", rhrBundle(garmin.MetricSample{})},
		{"max metrics with nil values", Bundle{MaxMetrics: &garmin.MaxMetrics{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Empty(t, MapFields(tt.bundle))
			})
		})
	}
}

func TestMapFieldsPartialHRVSummary(t *testing.T) {
	// Only the weekly average is present; the other rules stay silent.
	fields := MapFields(hrvBundle(nil, fptr(62), nil))

	assert.Equal(t, metrics.Fields{
		metrics.FieldWeeklyAvgHRV: metrics.NumberValue(62),
	}, fields)
}

func TestMapFieldsIgnoresUnrelatedMetricKeys(t *testing.T) {
	bundle := Bundle{
		RestingHeartRate: &garmin.RestingHeartRateData{
			AllMetrics: &garmin.AllMetrics{
				MetricsMap: map[string][]garmin.MetricSample{
					"WELLNESS_MAX_HEART_RATE": {{Value: fptr(180)}},
				},
			},
		},
	}

	assert.Empty(t, MapFields(bundle))
}

func TestBundleEmpty(t *testing.T) {
	assert.True(t, Bundle{}.Empty())
	assert.False(t, Bundle{MaxMetrics: &garmin.MaxMetrics{}}.Empty())
	assert.False(t, hrvBundle(nil, nil, nil).Empty())
}
