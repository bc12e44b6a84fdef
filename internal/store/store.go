package store

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Swaggodgani/seattle-events-mvp/internal/event"
	"github.com/Swaggodgani/seattle-events-mvp/internal/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id          BIGSERIAL PRIMARY KEY,
	source      TEXT NOT NULL,
	job_run_id  TEXT NOT NULL,
	city        TEXT NOT NULL DEFAULT '',
	category    TEXT NOT NULL DEFAULT '',
	external_id TEXT NOT NULL UNIQUE,
	title       TEXT NOT NULL,
	event_date  TIMESTAMPTZ NOT NULL,
	link        TEXT NOT NULL DEFAULT '',
	venue_name  TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	ingested_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const upsertSQL = `
INSERT INTO events (source, job_run_id, city, category, external_id, title, event_date, link, venue_name, description)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (external_id) DO UPDATE SET
	source      = EXCLUDED.source,
	job_run_id  = EXCLUDED.job_run_id,
	city        = EXCLUDED.city,
	category    = EXCLUDED.category,
	title       = EXCLUDED.title,
	event_date  = EXCLUDED.event_date,
	link        = EXCLUDED.link,
	venue_name  = EXCLUDED.venue_name,
	description = EXCLUDED.description,
	ingested_at = now()`

// Store wraps a pgx connection pool for the events table. It is constructed
// once at startup and shared across requests; the pool handles per-call
// connection management.
type Store struct {
	pool *pgxpool.Pool
}

// Connect opens a connection pool and verifies connectivity, retrying the
// initial ping with exponential backoff until the timeout elapses. Managed
// databases routinely need a few seconds after deploy before accepting
// connections.
func Connect(ctx context.Context, databaseURL string, connectTimeout time.Duration) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = connectTimeout

	ping := func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return pool.Ping(pingCtx)
	}

	if err := backoff.Retry(ping, backoff.WithContext(bo, ctx)); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	logger.Info("Connected to database", nil)
	return &Store{pool: pool}, nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// InitSchema creates the events table if it does not exist yet.
func (s *Store) InitSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("creating events table: %w", err)
	}
	return nil
}

// UpsertEvents writes all rows in one batch, inserting new external IDs and
// overwriting existing ones. A nil or empty slice is a no-op.
func (s *Store) UpsertEvents(ctx context.Context, events []event.Event) error {
	if len(events) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, e := range events {
		batch.Queue(upsertSQL,
			e.Source, e.JobRunID, e.City, e.Category, e.ExternalID,
			e.Title, e.EventDate, e.Link, e.VenueName, e.Description)
	}

	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range events {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("upserting events: %w", err)
		}
	}

	return nil
}
