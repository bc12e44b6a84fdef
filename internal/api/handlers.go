package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Swaggodgani/seattle-events-mvp/internal/filter"
	"github.com/Swaggodgani/seattle-events-mvp/internal/ingest"
	"github.com/Swaggodgani/seattle-events-mvp/internal/logger"
	"github.com/Swaggodgani/seattle-events-mvp/internal/metrics"
)

// checkEventsLimit caps the diagnostic endpoint's result size.
const checkEventsLimit = 10

// GetEvents serves the filtered event listing. Store errors surface with the
// store's message; a malformed date range gets the generic failure message.
func (s *Server) GetEvents(c *gin.Context) {
	metrics.EventQueries.Inc()

	dateRange, err := filter.ResolveDateRange(c.Query("dateRange"), s.now())
	if err != nil {
		logger.Error("Rejecting events query", logger.Fields{
			"date_range": c.Query("dateRange"),
		}, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	f := filter.Filter{
		Category: c.Query("category"),
		Source:   c.Query("source"),
		Venue:    c.Query("venue"),
		Range:    dateRange,
	}

	events, err := s.store.QueryEvents(c.Request.Context(), f)
	if err != nil {
		logger.Error("Events query failed", nil, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

// CheckEvents is a connectivity diagnostic: it reads a handful of rows with
// no filtering so operators can verify the store is reachable.
func (s *Server) CheckEvents(c *gin.Context) {
	events, err := s.store.RecentEvents(c.Request.Context(), checkEventsLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

// HandleWebhook ingests a Browse AI delivery. Only task.finishedSuccessfully
// deliveries cause storage writes; everything else is acknowledged and
// dropped so the scraping platform does not retry it.
func (s *Server) HandleWebhook(c *gin.Context) {
	var payload ingest.Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		logger.Error("Webhook body could not be parsed", nil, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process webhook"})
		return
	}

	metrics.WebhookDeliveries.WithLabelValues(payload.Event).Inc()

	logger.Info("Received webhook delivery", logger.Fields{
		"event":      payload.Event,
		"robot_id":   payload.Task.RobotID,
		"job_run_id": payload.Task.ID,
		"origin_url": payload.Task.InputParameters.OriginURL,
	})

	if payload.Event != ingest.EventTaskFinished {
		logger.Info("Skipping non-successful task event", logger.Fields{
			"event": payload.Event,
		})
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	rows := s.builder.Rows(payload.Task)

	logger.Info("Prepared event rows", logger.Fields{
		"job_run_id": payload.Task.ID,
		"rows":       len(rows),
	})

	if err := s.store.UpsertEvents(c.Request.Context(), rows); err != nil {
		logger.Error("Storing events failed", logger.Fields{
			"job_run_id": payload.Task.ID,
		}, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	metrics.EventsUpserted.Add(float64(len(rows)))

	logger.Info("Stored events", logger.Fields{
		"job_run_id": payload.Task.ID,
		"rows":       len(rows),
	})
	c.JSON(http.StatusOK, gin.H{"success": true})
}
