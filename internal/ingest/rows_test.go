package ingest

import (
	"strings"
	"testing"
	"time"

	"github.com/Swaggodgani/seattle-events-mvp/internal/event"
)

var testNow = time.Date(2026, time.April, 15, 10, 30, 0, 0, time.UTC)

func testBuilder() *Builder {
	return &Builder{
		DefaultCity:      "Seattle",
		DefaultCategory:  "networking",
		CategoryOverride: "networking",
		Now:              func() time.Time { return testNow },
	}
}

func meetupTask(items ...RawItem) Task {
	return Task{
		ID:              "run1",
		RobotID:         "robot-meetup",
		InputParameters: InputParameters{OriginURL: "https://www.meetup.com/find/?location=us--wa--seattle"},
		CapturedLists:   map[string][]RawItem{"Meetup Events": items},
	}
}

func eventbriteTask(items ...RawItem) Task {
	return Task{
		ID:              "run2",
		RobotID:         "robot-eb",
		InputParameters: InputParameters{OriginURL: "https://www.eventbrite.com/d/wa--seattle/networking/"},
		CapturedLists:   map[string][]RawItem{"Seattle Networking Events": items},
	}
}

func TestBuilder_Rows_Meetup(t *testing.T) {
	task := meetupTask(RawItem{
		"Event Title":   "Demo",
		"Event Date":    "APR 25 @ 7 PM",
		"Position":      float64(1),
		"Group Details": "Seattle Techies",
		"Event Type":    "In person",
		"Event Link":    "https://www.meetup.com/seattle-techies/events/1",
		"Location":      "Capitol Hill",
	})

	rows := testBuilder().Rows(task)
	if len(rows) != 1 {
		t.Fatalf("Rows() returned %d rows, want 1", len(rows))
	}

	row := rows[0]
	if row.ExternalID != "meetup-1-run1" {
		t.Errorf("ExternalID = %q, want %q", row.ExternalID, "meetup-1-run1")
	}
	if row.Source != "meetup-networking" {
		t.Errorf("Source = %q, want %q", row.Source, "meetup-networking")
	}
	if row.JobRunID != "run1" {
		t.Errorf("JobRunID = %q, want %q", row.JobRunID, "run1")
	}
	if row.Title != "Demo" {
		t.Errorf("Title = %q, want %q", row.Title, "Demo")
	}

	want := time.Date(2026, time.April, 25, 19, 0, 0, 0, time.UTC)
	if !row.EventDate.Equal(want) {
		t.Errorf("EventDate = %v, want %v", row.EventDate, want)
	}

	if !strings.Contains(row.Description, "Group: Seattle Techies") {
		t.Errorf("Description missing group line: %q", row.Description)
	}
	if !strings.Contains(row.Description, "Type: In person") {
		t.Errorf("Description missing type line: %q", row.Description)
	}
	if row.VenueName != "Capitol Hill" {
		t.Errorf("VenueName = %q, want %q", row.VenueName, "Capitol Hill")
	}
}

func TestBuilder_Rows_Eventbrite(t *testing.T) {
	task := eventbriteTask(RawItem{
		"Event Name":        "Startup Mixer",
		"Event Date & Time": "Saturday • 9:00 PM",
		"Position":          float64(2),
		"Organizer":         "Founders Club",
		"Price":             "$10",
		"Image Description": "People mingling",
		"Event Link":        "https://www.eventbrite.com/e/123",
	})

	rows := testBuilder().Rows(task)
	if len(rows) != 1 {
		t.Fatalf("Rows() returned %d rows, want 1", len(rows))
	}

	row := rows[0]
	if row.ExternalID != "eventbrite-2-run2" {
		t.Errorf("ExternalID = %q, want %q", row.ExternalID, "eventbrite-2-run2")
	}
	if row.City != "Seattle" {
		t.Errorf("City = %q, want Seattle", row.City)
	}
	if row.EventDate.Weekday() != time.Saturday {
		t.Errorf("EventDate weekday = %v, want Saturday", row.EventDate.Weekday())
	}
	if row.EventDate.Hour() != 21 {
		t.Errorf("EventDate hour = %d, want 21", row.EventDate.Hour())
	}
	if !strings.Contains(row.Description, "Organized by: Founders Club") {
		t.Errorf("Description missing organizer line: %q", row.Description)
	}
	if !strings.Contains(row.Description, "Price: $10") {
		t.Errorf("Description missing price line: %q", row.Description)
	}
	if !strings.HasSuffix(row.Description, "People mingling") {
		t.Errorf("Description missing image caption: %q", row.Description)
	}
	// No Location captured: venue falls back to the classified city.
	if row.VenueName != "Seattle" {
		t.Errorf("VenueName = %q, want Seattle", row.VenueName)
	}
}

func TestBuilder_Rows_SkipsInactiveItems(t *testing.T) {
	task := meetupTask(
		RawItem{"Event Title": "Keep", "Event Date": "APR 25 @ 7 PM", "Position": float64(1)},
		RawItem{"Event Title": "Gone", "Event Date": "APR 26 @ 7 PM", "Position": float64(2), "_STATUS": "REMOVED"},
		RawItem{"Event Title": "No date", "Position": float64(3)},
		RawItem{"Event Date": "APR 27 @ 7 PM", "Position": float64(4)},
	)

	rows := testBuilder().Rows(task)
	if len(rows) != 1 {
		t.Fatalf("Rows() returned %d rows, want 1", len(rows))
	}
	if rows[0].Title != "Keep" {
		t.Errorf("kept row Title = %q, want Keep", rows[0].Title)
	}
}

func TestBuilder_Rows_MissingDescriptionFields(t *testing.T) {
	task := eventbriteTask(RawItem{
		"Event Name":        "Bare",
		"Event Date & Time": "Monday • 6:00 PM",
		"Position":          float64(1),
	})

	rows := testBuilder().Rows(task)
	if len(rows) != 1 {
		t.Fatalf("Rows() returned %d rows, want 1", len(rows))
	}

	want := "Organized by: N/A\nPrice: N/A\n"
	if rows[0].Description != want {
		t.Errorf("Description = %q, want %q", rows[0].Description, want)
	}
}

func TestBuilder_Rows_CategoryOverride(t *testing.T) {
	task := eventbriteTask(RawItem{
		"Event Name":        "Salsa Night",
		"Event Date & Time": "Friday • 8:00 PM",
		"Position":          float64(1),
	})
	// Origin URL says dancing.
	task.InputParameters.OriginURL = "https://www.eventbrite.com/d/wa--seattle/dancing/"

	b := testBuilder()
	rows := b.Rows(task)
	if rows[0].Category != "networking" {
		t.Errorf("Category = %q, want forced %q", rows[0].Category, "networking")
	}
	if rows[0].Source != "eventbrite-networking" {
		t.Errorf("Source = %q, want %q", rows[0].Source, "eventbrite-networking")
	}

	// Clearing the override restores the URL-derived category.
	b.CategoryOverride = ""
	rows = b.Rows(task)
	if rows[0].Category != "dancing" {
		t.Errorf("Category = %q, want URL-derived %q", rows[0].Category, "dancing")
	}
}

func TestBuilder_Rows_NoOriginURL(t *testing.T) {
	task := eventbriteTask(RawItem{
		"Event Name":        "Mixer",
		"Event Date & Time": "Tuesday • 7:00 PM",
		"Position":          float64(1),
	})
	task.InputParameters.OriginURL = ""

	b := testBuilder()
	b.CategoryOverride = ""
	rows := b.Rows(task)
	if len(rows) != 1 {
		t.Fatalf("Rows() returned %d rows, want 1", len(rows))
	}
	if rows[0].City != "Seattle" || rows[0].Category != "networking" {
		t.Errorf("got city %q category %q, want defaults Seattle/networking",
			rows[0].City, rows[0].Category)
	}
}

func TestBuilder_Rows_UnparseableDateFallsBack(t *testing.T) {
	task := meetupTask(RawItem{
		"Event Title": "Mystery",
		"Event Date":  "sometime soon",
		"Position":    float64(1),
	})

	rows := testBuilder().Rows(task)
	if len(rows) != 1 {
		t.Fatalf("Rows() returned %d rows, want 1", len(rows))
	}
	if !rows[0].EventDate.Equal(testNow) {
		t.Errorf("EventDate = %v, want fallback to now (%v)", rows[0].EventDate, testNow)
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text untouched",
			input: "Seattle Techies",
			want:  "Seattle Techies",
		},
		{
			name:  "markup stripped",
			input: "<p>Seattle <b>Techies</b></p>",
			want:  "Seattle Techies",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripHTML(tt.input); got != tt.want {
				t.Errorf("stripHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Guard against accidental coupling between the builder and the event package
// identifier format.
func TestBuilder_ExternalIDFormat(t *testing.T) {
	task := meetupTask(RawItem{
		"Event Title": "Demo",
		"Event Date":  "APR 25 @ 7 PM",
		"Position":    "7",
	})

	rows := testBuilder().Rows(task)
	want := event.ExternalID("meetup", "7", "run1")
	if rows[0].ExternalID != want {
		t.Errorf("ExternalID = %q, want %q", rows[0].ExternalID, want)
	}
}
