package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Swaggodgani/seattle-events-mvp/internal/event"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteOutput writes the events in the specified format
func WriteOutput(w io.Writer, events []event.Event, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, events)
	case FormatText:
		return writeText(w, events)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs events as JSON
func writeJSON(w io.Writer, events []event.Event) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(struct {
		Events []event.Event `json:"events"`
		Count  int           `json:"count"`
	}{Events: events, Count: len(events)})
}

// writeText outputs events grouped by calendar day, matching how the web UI
// presents them. The server already sorts by event date, so groups come out
// in chronological order.
func writeText(w io.Writer, events []event.Event) error {
	if len(events) == 0 {
		fmt.Fprintln(w, "No events found.")
		return nil
	}

	lastDay := ""
	for _, evt := range events {
		day := evt.EventDate.Format("Monday, January 2, 2006")
		if day != lastDay {
			fmt.Fprintf(w, "\n%s:\n", day)
			lastDay = day
		}

		fmt.Fprintf(w, "  %s  %s\n", evt.EventDate.Format("3:04 PM"), evt.Title)
		if evt.VenueName != "" {
			fmt.Fprintf(w, "           at %s\n", evt.VenueName)
		}
		if evt.Link != "" {
			fmt.Fprintf(w, "           %s\n", evt.Link)
		}
	}

	fmt.Fprintf(w, "\nTotal: %d events\n", len(events))
	return nil
}
