package handler

import (
	"context"
	"net/http"

	coreport "github.com/velabs/govlock/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// HealthCheck reports whether a backing dependency is reachable
type HealthCheck func(ctx context.Context) error

// PoolStats supplies connection pool gauges for the health payload
type PoolStats func() map[string]any

// HealthHandler handles liveness and readiness requests
type HealthHandler struct {
	checkDatabase HealthCheck
	poolStats     PoolStats
	logger        coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(checkDatabase HealthCheck, poolStats PoolStats, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		checkDatabase: checkDatabase,
		poolStats:     poolStats,
		logger:        logger,
	}
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.checkDatabase(c.Request.Context()); err != nil {
		h.logger.Error("Health check failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"error":  err.Error(),
		})
		return
	}

	response := gin.H{"status": "ok"}
	if h.poolStats != nil {
		response["database"] = h.poolStats()
	}

	c.JSON(http.StatusOK, response)
}
