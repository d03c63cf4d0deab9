package garmin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }

func TestHRVDataIsZero(t *testing.T) {
	assert.True(t, (*HRVData)(nil).IsZero())
	assert.True(t, (&HRVData{}).IsZero())
	assert.False(t, (&HRVData{HRVSummary: &HRVSummary{}}).IsZero())
}

func TestRestingHeartRateDataIsZero(t *testing.T) {
	assert.True(t, (*RestingHeartRateData)(nil).IsZero())
	assert.True(t, (&RestingHeartRateData{}).IsZero())
	assert.False(t, (&RestingHeartRateData{AllMetrics: &AllMetrics{}}).IsZero())
}

func TestMaxMetricsIsZero(t *testing.T) {
	assert.True(t, (*MaxMetrics)(nil).IsZero())
	assert.True(t, (&MaxMetrics{}).IsZero())
	assert.False(t, (&MaxMetrics{VO2MaxValue: fptr(48.5)}).IsZero())
	assert.False(t, (&MaxMetrics{FitnessAge: fptr(29)}).IsZero())
}
