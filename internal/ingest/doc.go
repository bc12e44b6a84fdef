// Package ingest turns Browse AI webhook deliveries into normalized event rows.
//
// A delivery carries the scrape run ("task") and its captured lists of raw
// items. Only successful runs are processed: items flagged as removed or
// missing a title or date are skipped, the origin URL is classified into a
// platform plus city/category metadata, and each remaining item is shaped into
// an event.Event ready for upsert.
package ingest
