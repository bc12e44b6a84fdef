// Command seattle-events-cli queries a running events server and prints the
// listing, with the same filters the web UI offers.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"

	"github.com/Swaggodgani/seattle-events-mvp/internal/event"
)

var (
	flagAPIURL    string
	flagCategory  string
	flagSource    string
	flagVenue     string
	flagDateRange string
	flagSearch    string
	flagFormat    string
)

type eventsResponse struct {
	Events []event.Event `json:"events"`
	Error  string        `json:"error"`
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seattle-events-cli",
		Short: "List events from a running seattle-events server",
		RunE:  runList,
	}

	cmd.Flags().StringVar(&flagAPIURL, "api-url", "http://localhost:8080", "Base URL of the events server")
	cmd.Flags().StringVar(&flagCategory, "category", "", "Filter by category (exact match)")
	cmd.Flags().StringVar(&flagSource, "source", "", "Filter by source, e.g. meetup-networking (exact match)")
	cmd.Flags().StringVar(&flagVenue, "venue", "", "Filter by venue name (exact match)")
	cmd.Flags().StringVar(&flagDateRange, "date-range", "", "today, this-week, this-weekend, or YYYY-MM-DD")
	cmd.Flags().StringVar(&flagSearch, "search", "", "Free-text filter across title/description/venue")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")

	return cmd
}

// runList is the main command logic
func runList(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	params := map[string]string{}
	if flagCategory != "" {
		params["category"] = flagCategory
	}
	if flagSource != "" {
		params["source"] = flagSource
	}
	if flagVenue != "" {
		params["venue"] = flagVenue
	}
	if flagDateRange != "" {
		params["dateRange"] = flagDateRange
	}

	client := resty.New().SetTimeout(15 * time.Second)

	var result eventsResponse
	resp, err := client.R().
		SetQueryParams(params).
		SetResult(&result).
		SetError(&result).
		Get(strings.TrimRight(flagAPIURL, "/") + "/events")
	if err != nil {
		return fmt.Errorf("fetching events: %w", err)
	}
	if resp.IsError() {
		if result.Error != "" {
			return fmt.Errorf("server error: %s", result.Error)
		}
		return fmt.Errorf("unexpected status: %s", resp.Status())
	}

	events := filterBySearch(result.Events, flagSearch)

	return WriteOutput(os.Stdout, events, format)
}

// filterBySearch mirrors the web UI's client-side search: case-insensitive
// substring match across title, description, and venue.
func filterBySearch(events []event.Event, term string) []event.Event {
	if term == "" {
		return events
	}

	needle := strings.ToLower(term)
	filtered := make([]event.Event, 0, len(events))
	for _, evt := range events {
		if strings.Contains(strings.ToLower(evt.Title), needle) ||
			strings.Contains(strings.ToLower(evt.Description), needle) ||
			strings.Contains(strings.ToLower(evt.VenueName), needle) {
			filtered = append(filtered, evt)
		}
	}
	return filtered
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
