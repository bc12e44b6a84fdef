// Package filter provides the read-side filter model for stored events.
//
// Query parameters map onto optional equality filters (category, source,
// venue) plus a date range, which is either a named preset ("today",
// "this-week", "this-weekend") or an explicit calendar day. Ranges are
// half-open [Start, End) intervals.
package filter

import (
	"fmt"
	"time"
)

// Filter represents the event listing query criteria. Empty fields are
// ignored; Source and the other string filters match exactly, never by
// substring.
type Filter struct {
	Category string
	Source   string
	Venue    string
	Range    *Range
}

// Range is a half-open time interval: Start inclusive, End exclusive.
type Range struct {
	Start time.Time
	End   time.Time
}

// IsEmpty checks if the filter has any active criteria.
func (f Filter) IsEmpty() bool {
	return f.Category == "" && f.Source == "" && f.Venue == "" && f.Range == nil
}

// ResolveDateRange turns a dateRange query value into a concrete interval
// relative to now. An empty value means no date filtering (nil, nil).
//
// Presets:
//   - "today": the current calendar day
//   - "this-week": the calendar week containing now, starting Sunday
//   - "this-weekend": Friday through Sunday of the current/upcoming weekend
//   - anything else: parsed as a YYYY-MM-DD calendar day
func ResolveDateRange(value string, now time.Time) (*Range, error) {
	if value == "" {
		return nil, nil
	}

	dayStart := startOfDay(now)

	switch value {
	case "today":
		return &Range{Start: dayStart, End: dayStart.AddDate(0, 0, 1)}, nil

	case "this-week":
		weekStart := dayStart.AddDate(0, 0, -int(now.Weekday()))
		return &Range{Start: weekStart, End: weekStart.AddDate(0, 0, 7)}, nil

	case "this-weekend":
		// Advance to Friday; on Saturday this lands on the weekend already
		// in progress, on Sunday it rolls to the next one. The window runs
		// through the end of Sunday.
		friday := dayStart.AddDate(0, 0, int(time.Friday)-int(now.Weekday()))
		return &Range{Start: friday, End: friday.AddDate(0, 0, 3)}, nil

	default:
		day, err := time.ParseInLocation("2006-01-02", value, now.Location())
		if err != nil {
			return nil, fmt.Errorf("invalid date range %q: %w", value, err)
		}
		return &Range{Start: day, End: day.AddDate(0, 0, 1)}, nil
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
