package handler

import (
	"context"
	"net/http"

	coreport "github.com/amirhossein-jamali/calendar-units/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// Pinger is a dependency the health check can probe
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports service liveness
type HealthHandler struct {
	store  Pinger
	logger coreport.Logger
}

// NewHealthHandler creates a health handler; store may be nil when profiles live in memory
func NewHealthHandler(store Pinger, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		store:  store,
		logger: logger,
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "store": "memory"})
		return
	}

	if err := h.store.Ping(c.Request.Context()); err != nil {
		h.logger.Error("Health check failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "store": "postgres"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "store": "postgres"})
}
