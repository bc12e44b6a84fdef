package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Swaggodgani/seattle-events-mvp/internal/logger"
)

// apiKeyHeader carries the shared secret Browse AI attaches to deliveries.
const apiKeyHeader = "X-BrowseAI-Key"

// requireAPIKey gates the webhook endpoint behind the shared-secret header.
// The check can be disabled through configuration for local testing; it
// defaults to enabled.
func (s *Server) requireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.cfg.RequireAuth {
			c.Next()
			return
		}

		key := c.GetHeader(apiKeyHeader)
		if subtle.ConstantTimeCompare([]byte(key), []byte(s.cfg.APIKey)) != 1 {
			logger.Warn("Rejected webhook delivery with invalid key", logger.Fields{
				"remote_addr": c.ClientIP(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid key"})
			return
		}

		c.Next()
	}
}
