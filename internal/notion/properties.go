package notion

import "github.com/vitalsync/vitalsync/internal/metrics"

// datePropertyName is the schema field holding the record's calendar date.
// It is set on create and never touched by updates; dates are immutable
// once a record exists.
const datePropertyName = "Date"

// encodeProperties converts normalized fields into Notion property objects.
// Numbers and integers both encode as number properties; text encodes as a
// single rich_text fragment.
func encodeProperties(fields metrics.Fields) map[string]any {
	props := make(map[string]any, len(fields))
	for name, value := range fields {
		switch value.Kind {
		case metrics.KindText:
			props[name] = map[string]any{
				"rich_text": []any{
					map[string]any{
						"text": map[string]any{"content": value.Text},
					},
				},
			}
		default:
			props[name] = map[string]any{"number": value.Number}
		}
	}
	return props
}

// dateProperty encodes the record's date key.
func dateProperty(day metrics.DayKey) map[string]any {
	return map[string]any{
		"date": map[string]any{"start": day.String()},
	}
}
