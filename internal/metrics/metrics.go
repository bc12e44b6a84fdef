// Package metrics exposes Prometheus counters for the events service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// WebhookDeliveries counts webhook deliveries by their event type, so
	// ignored event types (task.failed etc.) stay visible.
	WebhookDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "browseai_webhook_deliveries_total",
		Help: "Webhook deliveries received, labeled by Browse AI event type.",
	}, []string{"event"})

	// EventsUpserted counts rows written through the bulk upsert.
	EventsUpserted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "events_upserted_total",
		Help: "Event rows written (inserted or overwritten) by ingestion.",
	})

	// EventQueries counts listing queries served.
	EventQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "event_queries_total",
		Help: "Filtered event listing queries served.",
	})
)
