package ingest

import (
	"strconv"
	"strings"
)

// EventTaskFinished is the only webhook event type that triggers storage
// writes. Every other event type is acknowledged and ignored.
const EventTaskFinished = "task.finishedSuccessfully"

// Captured list names used by the scraping robots, keyed by platform.
const (
	meetupListName     = "Meetup Events"
	eventbriteListName = "Seattle Networking Events"
)

// Payload is the Browse AI webhook delivery envelope.
type Payload struct {
	Event string `json:"event"`
	Task  Task   `json:"task"`
}

// Task describes one scrape run.
type Task struct {
	ID              string               `json:"id"`
	RobotID         string               `json:"robotId"`
	InputParameters InputParameters      `json:"inputParameters"`
	CapturedLists   map[string][]RawItem `json:"capturedLists"`
}

// InputParameters carries the scraper's configuration, of which only the
// origin listing URL matters here.
type InputParameters struct {
	OriginURL string `json:"originUrl"`
}

// CapturedList returns the raw items for the given platform, or nil when the
// run captured nothing under that list name.
func (t Task) CapturedList(source string) []RawItem {
	name := eventbriteListName
	if source == SourceMeetup {
		name = meetupListName
	}
	return t.CapturedLists[name]
}

// RawItem is one scraped record. Field names vary by robot, and numeric
// fields (like Position) may arrive as JSON numbers or strings.
type RawItem map[string]any

// Get returns the string form of a field, or "" when absent. JSON numbers are
// rendered without a decimal point so positions compose into stable IDs.
func (r RawItem) Get(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

// Position returns the item's position within the captured list.
func (r RawItem) Position() string {
	return r.Get("Position")
}

// Removed reports whether the scraper flagged this item as removed from the
// source listing. Removed items are skipped, not deleted from storage.
func (r RawItem) Removed() bool {
	return strings.EqualFold(r.Get("_STATUS"), "REMOVED")
}

// Active reports whether this item should be ingested: not removed, and
// carrying both a resolvable title and a resolvable date field.
func (r RawItem) Active() bool {
	if r.Removed() {
		return false
	}
	hasTitle := r.Get("Event Name") != "" || r.Get("Event Title") != ""
	hasDate := r.Get("Event Date & Time") != "" || r.Get("Event Date") != ""
	return hasTitle && hasDate
}
