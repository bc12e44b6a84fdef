// Package store persists event rows in Postgres.
//
// The events table carries a unique constraint on external_id; ingestion
// writes go through a single batched INSERT ... ON CONFLICT upsert, so
// redelivered webhook payloads overwrite rows instead of duplicating them.
// Write conflict resolution is delegated entirely to Postgres.
package store
