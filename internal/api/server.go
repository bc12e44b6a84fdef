package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Swaggodgani/seattle-events-mvp/internal/config"
	"github.com/Swaggodgani/seattle-events-mvp/internal/event"
	"github.com/Swaggodgani/seattle-events-mvp/internal/filter"
	"github.com/Swaggodgani/seattle-events-mvp/internal/ingest"
	"github.com/Swaggodgani/seattle-events-mvp/internal/web"
)

// EventStore is the subset of the event store the API needs.
type EventStore interface {
	UpsertEvents(ctx context.Context, events []event.Event) error
	QueryEvents(ctx context.Context, f filter.Filter) ([]event.Event, error)
	RecentEvents(ctx context.Context, limit int) ([]event.Event, error)
}

// Server holds the API dependencies.
type Server struct {
	store   EventStore
	cfg     config.IngestConfig
	builder *ingest.Builder
	now     func() time.Time
}

// NewServer creates an API server over the given store.
func NewServer(store EventStore, cfg config.IngestConfig) *Server {
	return &Server{
		store: store,
		cfg:   cfg,
		builder: &ingest.Builder{
			DefaultCity:      cfg.DefaultCity,
			DefaultCategory:  cfg.DefaultCategory,
			CategoryOverride: cfg.CategoryOverride,
		},
		now: time.Now,
	}
}

// Routes configures the gin engine with all API routes.
func (s *Server) Routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/events", s.GetEvents)
	r.GET("/check-events", s.CheckEvents)
	r.POST("/webhooks/browseai", s.requireAPIKey(), s.HandleWebhook)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	web.Register(r)

	return r
}
