package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health handles the health check endpoint.
// GET /health
func (s *Server) Health(c *gin.Context) {
	uptime := "unknown"
	if startTime, exists := c.Get("serverStartTime"); exists {
		if start, ok := startTime.(time.Time); ok {
			uptime = time.Since(start).Round(time.Second).String()
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"uptime":    uptime,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
