package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/Swaggodgani/seattle-events-mvp/internal/event"
	"github.com/Swaggodgani/seattle-events-mvp/internal/filter"
)

const selectColumns = "id, source, job_run_id, city, category, external_id, title, event_date, link, venue_name, description, ingested_at"

// buildEventsQuery assembles the filtered listing query. Filters are exact
// equality matches; a date range constrains event_date to the half-open
// [Start, End) interval. Results are always ordered by event timestamp
// ascending.
func buildEventsQuery(f filter.Filter) (string, []any) {
	var sb strings.Builder
	sb.WriteString("SELECT " + selectColumns + " FROM events")

	var conds []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Category != "" {
		conds = append(conds, "category = "+arg(f.Category))
	}
	if f.Source != "" {
		conds = append(conds, "source = "+arg(f.Source))
	}
	if f.Venue != "" {
		conds = append(conds, "venue_name = "+arg(f.Venue))
	}
	if f.Range != nil {
		conds = append(conds, "event_date >= "+arg(f.Range.Start))
		conds = append(conds, "event_date < "+arg(f.Range.End))
	}

	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY event_date ASC")

	return sb.String(), args
}

// QueryEvents returns stored events matching the filter, ordered by event
// date ascending.
func (s *Store) QueryEvents(ctx context.Context, f filter.Filter) ([]event.Event, error) {
	sql, args := buildEventsQuery(f)

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}

	return scanEvents(rows)
}

// RecentEvents returns up to limit rows in storage order. It exists for the
// connectivity diagnostic endpoint, not for listings.
func (s *Store) RecentEvents(ctx context.Context, limit int) ([]event.Event, error) {
	rows, err := s.pool.Query(ctx, "SELECT "+selectColumns+" FROM events LIMIT $1", limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent events: %w", err)
	}

	return scanEvents(rows)
}

func scanEvents(rows pgx.Rows) ([]event.Event, error) {
	defer rows.Close()

	events := make([]event.Event, 0)
	for rows.Next() {
		var e event.Event
		if err := rows.Scan(&e.ID, &e.Source, &e.JobRunID, &e.City, &e.Category,
			&e.ExternalID, &e.Title, &e.EventDate, &e.Link, &e.VenueName,
			&e.Description, &e.IngestedAt); err != nil {
			return nil, fmt.Errorf("scanning event row: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading event rows: %w", err)
	}

	return events, nil
}
