package garmin

// Provider payloads are modeled as optional-field structured types: every
// nested field is a pointer so a missing key at any depth decodes to nil
// instead of a zero value that could be mistaken for data.

// HRVData is the daily heart-rate-variability payload.
type HRVData struct {
	HRVSummary *HRVSummary `json:"hrvSummary"`
}

// IsZero reports whether the payload decoded to its zero value, the shape
// the provider returns for a day with no HRV data.
func (d *HRVData) IsZero() bool {
	return d == nil || d.HRVSummary == nil
}

// HRVSummary holds the nightly and weekly HRV averages plus the
// qualitative status label (e.g. "BALANCED").
type HRVSummary struct {
	LastNightAvg *float64 `json:"lastNightAvg"`
	WeeklyAvg    *float64 `json:"weeklyAvg"`
	Status       *string  `json:"status"`
}

// RestingHeartRateData is the daily resting-heart-rate payload. The value
// lives inside a metrics map keyed by metric name.
type RestingHeartRateData struct {
	AllMetrics *AllMetrics `json:"allMetrics"`
}

// IsZero reports whether the payload decoded to its zero value,
// meaning the provider had no resting-heart-rate data for the day.
func (d *RestingHeartRateData) IsZero() bool {
	return d == nil || d.AllMetrics == nil
}

// AllMetrics wraps the provider's metric-name to samples map.
type AllMetrics struct {
	MetricsMap map[string][]MetricSample `json:"metricsMap"`
}

// MetricSample is a single sample within a metrics list.
type MetricSample struct {
	Value        *float64 `json:"value"`
	CalendarDate *string  `json:"calendarDate"`
}

// MetricRestingHeartRate is the metrics-map key for resting heart rate.
const MetricRestingHeartRate = "WELLNESS_RESTING_HEART_RATE"

// MaxMetrics is the daily max-metrics payload carrying the VO2 max
// estimate and the derived fitness age.
type MaxMetrics struct {
	VO2MaxValue *float64 `json:"vo2MaxValue"`
	FitnessAge  *float64 `json:"fitnessAge"`
}

// IsZero reports whether the payload decoded to its zero value,
// meaning the provider had no max-metrics estimate for the day.
func (m *MaxMetrics) IsZero() bool {
	return m == nil || (m.VO2MaxValue == nil && m.FitnessAge == nil)
}
