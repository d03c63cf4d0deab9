// Package metrics defines the normalized health-metric field set shared by
// the sync core and the record store.
package metrics

import "time"

// DayFormat is the calendar-date layout used as the natural record key.
const DayFormat = "2006-01-02"

// DayKey identifies the calendar day a metric bundle and its record belong
// to. At most one record per DayKey is acted upon.
type DayKey string

// Day returns the DayKey for a point in time, dropping the time component.
func Day(t time.Time) DayKey {
	return DayKey(t.Format(DayFormat))
}

// String returns the date as YYYY-MM-DD.
func (d DayKey) String() string {
	return string(d)
}

// Recognized record field names. These match the database schema exactly.
const (
	FieldLastNightHRV     = "Last Night HRV"
	FieldWeeklyAvgHRV     = "Weekly Avg HRV"
	FieldHRVStatus        = "HRV Status"
	FieldRestingHeartRate = "Resting Heart Rate"
	FieldVO2Max           = "VO2 Max"
	FieldFitnessAge       = "Fitness Age"
)

// Kind discriminates the typed values a field can hold.
type Kind int

// Field value kinds.
const (
	KindNumber Kind = iota
	KindInteger
	KindText
)

// Value is a typed field value: a number, an integer, or short text.
type Value struct {
	Kind   Kind
	Number float64
	Text   string
}

// NumberValue builds a numeric Value.
func NumberValue(v float64) Value {
	return Value{Kind: KindNumber, Number: v}
}

// IntegerValue builds an integer Value. The numeric payload is already
// truncated by the caller.
func IntegerValue(v int) Value {
	return Value{Kind: KindInteger, Number: float64(v)}
}

// TextValue builds a text Value.
func TextValue(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// Fields maps field names to typed values. Keys are present only when the
// corresponding source value existed and was non-nil.
type Fields map[string]Value
