package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/polaris_reporting/internal/middleware"
	"github.com/gin-gonic/gin"
)

// HealthCheck reports whether a dependency is usable.
type HealthCheck func(ctx context.Context) error

// getHealth godoc
// @Summary Show the status of server.
// @Description Reports liveness and, when a database is configured, its reachability.
// @Tags root
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func getHealth(check HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := check(ctx); err != nil {
				middleware.GetLoggerFromCtx(c.Request.Context()).Error("Health check failed", slog.String("error", err.Error()))
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
