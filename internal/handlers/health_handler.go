package handlers

import (
	"context"
	"net/http"
	"time"

	"fintrack/internal/errors"

	"github.com/labstack/echo/v4"
)

// StorePinger checks that the backing store answers
type StorePinger interface {
	Ping(ctx context.Context) error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	store StorePinger
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(store StorePinger) *HealthCheckHandler {
	return &HealthCheckHandler{store: store}
}

// HealthCheck reports API and database connectivity
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if err := h.store.Ping(c.Request().Context()); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
