package ingest

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/Swaggodgani/seattle-events-mvp/internal/event"
	"github.com/Swaggodgani/seattle-events-mvp/internal/logger"
)

// Builder shapes raw scraped items into event rows.
type Builder struct {
	// DefaultCity and DefaultCategory apply when the task has no origin URL.
	DefaultCity     string
	DefaultCategory string

	// CategoryOverride, when non-empty, replaces whatever category the origin
	// URL yielded. The deployed scrapers only ever targeted networking
	// listings, so the override defaults to "networking"; clearing it
	// restores URL-derived categories.
	CategoryOverride string

	// Now supplies the current time; nil means time.Now. Unparseable dates
	// fall back to this instant.
	Now func() time.Time
}

// Rows builds one normalized event row per active item in the task's captured
// list. Removed items and items missing a title or date are skipped.
func (b *Builder) Rows(task Task) []event.Event {
	source := DetectSource(task.InputParameters.OriginURL)

	info := URLInfo{City: b.DefaultCity, Category: b.DefaultCategory}
	if task.InputParameters.OriginURL != "" {
		info = ExtractFromURL(task.InputParameters.OriginURL, b.DefaultCity)
	}
	if b.CategoryOverride != "" {
		info.Category = b.CategoryOverride
	}

	items := task.CapturedList(source)
	rows := make([]event.Event, 0, len(items))
	for _, item := range items {
		if !item.Active() {
			continue
		}
		rows = append(rows, b.row(source, info, item, task))
	}

	logger.Debug("Built event rows", logger.Fields{
		"source":   source,
		"city":     info.City,
		"category": info.Category,
		"captured": len(items),
		"active":   len(rows),
	})

	return rows
}

// row maps one active item onto an event row. Meetup and Eventbrite robots
// capture disjoint field sets, so field names are selected per source.
func (b *Builder) row(source string, info URLInfo, item RawItem, task Task) event.Event {
	isMeetup := source == SourceMeetup

	var title, dateText string
	if isMeetup {
		title = item.Get("Event Title")
		dateText = item.Get("Event Date")
	} else {
		title = item.Get("Event Name")
		dateText = item.Get("Event Date & Time")
	}

	var when time.Time
	var ok bool
	if isMeetup {
		when, ok = event.ParseMeetupDate(dateText, b.now())
	} else {
		when, ok = event.ParseEventbriteDate(dateText, b.now())
	}
	if !ok {
		logger.Warn("Could not parse event date, using current time", logger.Fields{
			"source":    source,
			"date_text": dateText,
			"title":     title,
		})
	}

	venue := item.Get("Location")
	if venue == "" {
		venue = info.City
	}

	return event.Event{
		Source:      fmt.Sprintf("%s-%s", source, info.Category),
		JobRunID:    task.ID,
		City:        info.City,
		Category:    info.Category,
		ExternalID:  event.ExternalID(source, item.Position(), task.ID),
		Title:       stripHTML(title),
		EventDate:   when,
		Link:        item.Get("Event Link"),
		VenueName:   venue,
		Description: b.description(source, item),
	}
}

// description concatenates the optional descriptive fields into the
// multi-line blob the listing UI renders, closing with the image caption
// when the scraper captured one.
func (b *Builder) description(source string, item RawItem) string {
	var sb strings.Builder

	if source == SourceMeetup {
		sb.WriteString("Group: " + orNA(stripHTML(item.Get("Group Details"))) + "\n")
		if t := item.Get("Event Type"); t != "" {
			sb.WriteString("Type: " + stripHTML(t) + "\n")
		}
	} else {
		sb.WriteString("Organized by: " + orNA(stripHTML(item.Get("Organizer"))) + "\n")
		sb.WriteString("Price: " + orNA(item.Get("Price")) + "\n")
	}

	sb.WriteString(stripHTML(item.Get("Image Description")))
	return sb.String()
}

func (b *Builder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// stripHTML reduces scraped text that arrived with markup fragments to its
// plain-text content. Text without markup passes through untouched.
func stripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.TrimSpace(doc.Text())
}
