package event

import (
	"testing"
	"time"
)

// Wednesday, April 15 2026, 10:30 local time.
var testNow = time.Date(2026, time.April, 15, 10, 30, 0, 0, time.UTC)

func TestParseEventbriteDate(t *testing.T) {
	tests := []struct {
		name        string
		dateText    string
		wantWeekday time.Weekday
		wantHour    int
		wantMinute  int
		wantOK      bool
	}{
		{
			name:        "saturday evening",
			dateText:    "Saturday • 9:00 PM",
			wantWeekday: time.Saturday,
			wantHour:    21,
			wantMinute:  0,
			wantOK:      true,
		},
		{
			name:        "friday morning with minutes",
			dateText:    "Friday • 8:15 AM",
			wantWeekday: time.Friday,
			wantHour:    8,
			wantMinute:  15,
			wantOK:      true,
		},
		{
			name:        "same weekday rolls to next week",
			dateText:    "Wednesday • 7:00 PM",
			wantWeekday: time.Wednesday,
			wantHour:    19,
			wantOK:      true,
		},
		{
			name:        "trailing UTC marker stripped",
			dateText:    "Monday • 6:30 PM UTC",
			wantWeekday: time.Monday,
			wantHour:    18,
			wantMinute:  30,
			wantOK:      true,
		},
		{
			name:        "hour without minutes",
			dateText:    "Tuesday • 7 PM",
			wantWeekday: time.Tuesday,
			wantHour:    19,
			wantOK:      true,
		},
		{
			name:     "empty string",
			dateText: "",
			wantOK:   false,
		},
		{
			name:     "missing separator",
			dateText: "Saturday 9:00 PM",
			wantOK:   false,
		},
		{
			name:     "unknown weekday",
			dateText: "Someday • 9:00 PM",
			wantOK:   false,
		},
		{
			name:     "non-numeric time",
			dateText: "Saturday • late",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseEventbriteDate(tt.dateText, testNow)

			if ok != tt.wantOK {
				t.Fatalf("ParseEventbriteDate(%q) ok = %v, want %v", tt.dateText, ok, tt.wantOK)
			}

			if !tt.wantOK {
				// Fail-soft contract: malformed input yields the current time.
				if !got.Equal(testNow) {
					t.Errorf("ParseEventbriteDate(%q) = %v, want now (%v)", tt.dateText, got, testNow)
				}
				return
			}

			if got.Weekday() != tt.wantWeekday {
				t.Errorf("Weekday = %v, want %v", got.Weekday(), tt.wantWeekday)
			}
			if got.Hour() != tt.wantHour {
				t.Errorf("Hour = %d, want %d", got.Hour(), tt.wantHour)
			}
			if got.Minute() != tt.wantMinute {
				t.Errorf("Minute = %d, want %d", got.Minute(), tt.wantMinute)
			}

			// Always strictly in the future, at most 7 days out.
			if !got.After(testNow) {
				t.Errorf("result %v is not after now %v", got, testNow)
			}
			if got.Sub(testNow) > 7*24*time.Hour {
				t.Errorf("result %v is more than 7 days after now %v", got, testNow)
			}
		})
	}
}

func TestParseMeetupDate(t *testing.T) {
	tests := []struct {
		name      string
		dateText  string
		wantMonth time.Month
		wantDay   int
		wantHour  int
		wantOK    bool
	}{
		{
			name:      "evening event",
			dateText:  "APR 25 @ 7 PM",
			wantMonth: time.April,
			wantDay:   25,
			wantHour:  19,
			wantOK:    true,
		},
		{
			name:      "morning event",
			dateText:  "JUN 3 @ 10 AM",
			wantMonth: time.June,
			wantDay:   3,
			wantHour:  10,
			wantOK:    true,
		},
		{
			name:      "lowercase month",
			dateText:  "dec 31 @ 8 PM",
			wantMonth: time.December,
			wantDay:   31,
			wantHour:  20,
			wantOK:    true,
		},
		{
			name:      "minutes are discarded",
			dateText:  "MAY 10 @ 7:30 PM",
			wantMonth: time.May,
			wantDay:   10,
			wantHour:  19,
			wantOK:    true,
		},
		{
			name:     "empty string",
			dateText: "",
			wantOK:   false,
		},
		{
			name:     "missing at separator",
			dateText: "APR 25 7 PM",
			wantOK:   false,
		},
		{
			name:     "unknown month",
			dateText: "XXX 25 @ 7 PM",
			wantOK:   false,
		},
		{
			name:     "missing day",
			dateText: "APR @ 7 PM",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseMeetupDate(tt.dateText, testNow)

			if ok != tt.wantOK {
				t.Fatalf("ParseMeetupDate(%q) ok = %v, want %v", tt.dateText, ok, tt.wantOK)
			}

			if !tt.wantOK {
				if !got.Equal(testNow) {
					t.Errorf("ParseMeetupDate(%q) = %v, want now (%v)", tt.dateText, got, testNow)
				}
				return
			}

			if got.Year() != testNow.Year() {
				t.Errorf("Year = %d, want %d", got.Year(), testNow.Year())
			}
			if got.Month() != tt.wantMonth {
				t.Errorf("Month = %v, want %v", got.Month(), tt.wantMonth)
			}
			if got.Day() != tt.wantDay {
				t.Errorf("Day = %d, want %d", got.Day(), tt.wantDay)
			}
			if got.Hour() != tt.wantHour {
				t.Errorf("Hour = %d, want %d", got.Hour(), tt.wantHour)
			}
			if got.Minute() != 0 {
				t.Errorf("Minute = %d, want 0", got.Minute())
			}
		})
	}
}

func TestExternalID(t *testing.T) {
	got := ExternalID("meetup", "1", "run1")
	want := "meetup-1-run1"
	if got != want {
		t.Errorf("ExternalID() = %q, want %q", got, want)
	}
}
