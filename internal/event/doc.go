// Package event provides the persisted event row type and date normalization
// for scraped listings.
//
// Scraped sources deliver dates as free text in two shapes: Eventbrite-style
// "Saturday • 9:00 PM" strings and Meetup-style "APR 25 @ 7 PM" strings. Both
// are normalized to absolute timestamps; unparseable input falls back to the
// ingestion time rather than failing the ingestion.
package event
