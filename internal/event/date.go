package event

import (
	"strconv"
	"strings"
	"time"
)

var weekdays = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

var months = map[string]time.Month{
	"JAN": time.January,
	"FEB": time.February,
	"MAR": time.March,
	"APR": time.April,
	"MAY": time.May,
	"JUN": time.June,
	"JUL": time.July,
	"AUG": time.August,
	"SEP": time.September,
	"OCT": time.October,
	"NOV": time.November,
	"DEC": time.December,
}

// ParseEventbriteDate parses "Weekday • H:MM AM/PM" strings, e.g.
// "Saturday • 9:00 PM". The result is the next future occurrence of the named
// weekday (a non-positive day offset means next week, so the result is always
// 1 to 7 days out), combined with the parsed clock time in now's location.
//
// Returns (now, false) for empty or malformed input; the caller decides
// whether to log. A trailing " UTC" marker is stripped before parsing.
func ParseEventbriteDate(dateText string, now time.Time) (time.Time, bool) {
	if dateText == "" {
		return now, false
	}

	dateText = strings.TrimSpace(strings.ReplaceAll(dateText, " UTC", ""))

	dayPart, timePart, found := strings.Cut(dateText, "•")
	if !found {
		return now, false
	}

	target, ok := weekdays[strings.TrimSpace(dayPart)]
	if !ok {
		return now, false
	}

	timePart = strings.TrimSpace(timePart)
	hour, minute, ok := parseClock(timePart)
	if !ok {
		return now, false
	}
	if strings.Contains(timePart, "PM") {
		// Hour 24 normalizes to next-day midnight, matching the source data
		// for "12:00 PM" strings.
		hour += 12
	}

	daysToAdd := int(target) - int(now.Weekday())
	if daysToAdd <= 0 {
		daysToAdd += 7
	}

	d := now.AddDate(0, 0, daysToAdd)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, now.Location()), true
}

// ParseMeetupDate parses "MON DD @ H AM/PM" strings, e.g. "APR 25 @ 7 PM".
// The month abbreviation is resolved against a fixed 12-entry table, the year
// is assumed to be now's year, and minutes are always zero (the source never
// carries them reliably).
//
// Returns (now, false) for empty or malformed input.
func ParseMeetupDate(dateText string, now time.Time) (time.Time, bool) {
	if dateText == "" {
		return now, false
	}

	datePart, timePart, found := strings.Cut(dateText, "@")
	if !found {
		return now, false
	}

	dateFields := strings.Fields(strings.TrimSpace(datePart))
	if len(dateFields) < 2 {
		return now, false
	}

	month, ok := months[strings.ToUpper(dateFields[0])]
	if !ok {
		return now, false
	}

	day, ok := leadingInt(dateFields[1])
	if !ok {
		return now, false
	}

	timeFields := strings.Fields(strings.TrimSpace(timePart))
	if len(timeFields) == 0 {
		return now, false
	}

	hourPart, _, _ := strings.Cut(timeFields[0], ":")
	hour, ok := leadingInt(hourPart)
	if !ok {
		return now, false
	}
	if len(timeFields) > 1 && timeFields[1] == "PM" {
		hour += 12
	}

	return time.Date(now.Year(), month, day, hour, 0, 0, 0, now.Location()), true
}

// parseClock extracts hour and minute from strings like "9:00 PM", "8:15 AM"
// or "7 PM". Minutes default to zero when missing or unparseable.
func parseClock(s string) (hour, minute int, ok bool) {
	hourPart, minutePart, _ := strings.Cut(s, ":")

	hour, ok = leadingInt(hourPart)
	if !ok {
		return 0, 0, false
	}

	// Missing or junk minutes default to zero, e.g. "7 PM".
	minute, _ = leadingInt(minutePart)
	return hour, minute, true
}

// leadingInt parses the leading decimal digits of s, ignoring anything after
// them ("25th" parses as 25). Returns false when s has no leading digits.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, false
	}
	return n, true
}
