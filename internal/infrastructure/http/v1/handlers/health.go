package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	version  string
	currency string
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(version, currency string) *HealthHandler {
	return &HealthHandler{version: version, currency: currency}
}

// Live handles liveness probe (is the process alive?).
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Info returns application information.
// GET /health/info
func (h *HealthHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"app":      "salesdesk",
		"version":  h.version,
		"currency": h.currency,
	})
}
