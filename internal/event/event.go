package event

import (
	"fmt"
	"time"
)

// Event represents one stored event listing.
//
// ExternalID is unique per scraped event instance; re-ingesting the same
// instance overwrites the stored row (upsert semantics).
type Event struct {
	ID          int64     `json:"id,omitempty"`
	Source      string    `json:"source"` // "<platform>-<category>", e.g. "meetup-networking"
	JobRunID    string    `json:"job_run_id"`
	City        string    `json:"city"`
	Category    string    `json:"category"`
	ExternalID  string    `json:"external_id"`
	Title       string    `json:"title"`
	EventDate   time.Time `json:"event_date"`
	Link        string    `json:"link"`
	VenueName   string    `json:"venue_name"`
	Description string    `json:"description"`
	IngestedAt  time.Time `json:"ingested_at,omitempty"`
}

// ExternalID composes the unique identifier for one scraped event instance.
// The triplet (source, list position, job run) is stable across redeliveries
// of the same scrape run, which is what makes the upsert idempotent.
func ExternalID(source, position, jobRunID string) string {
	return fmt.Sprintf("%s-%s-%s", source, position, jobRunID)
}
