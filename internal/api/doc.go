// Package api exposes the HTTP surface of the events service: the filtered
// listing endpoint, the Browse AI ingestion webhook, a connectivity
// diagnostic, Prometheus metrics, and the listing UI.
//
// All handlers are stateless; the only shared resource is the event store.
// Failures are terminal for the current request: callers get a JSON error
// envelope and a 500, and redelivery (if any) is the scraping platform's
// responsibility.
package api
