package handlers

import (
	"context"
	"net/http"
	"time"

	"comodatos-admin/internal/errors"
	"comodatos-admin/internal/models"

	"github.com/labstack/echo/v4"
)

// DatabasePinger checks that the audit database is reachable
type DatabasePinger interface {
	HealthCheck(ctx context.Context) error
}

// CircuitReporter exposes the remote API's circuit breaker state
type CircuitReporter interface {
	CircuitState() models.CircuitBreakerState
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db      DatabasePinger
	backend CircuitReporter
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db DatabasePinger, backend CircuitReporter) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, backend: backend}
}

// HealthCheck reports database connectivity and the remote API's circuit
// state. An open circuit degrades the service without failing the check.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "healthy or degraded"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Database unavailable"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := h.db.HealthCheck(ctx); err != nil {
		errorResponse := errors.NewErrorResponse(
			errors.SystemServiceUnavailable,
			getTraceIDFromContext(c),
			errors.WithDetails("Database connection failed"),
		)
		return c.JSON(http.StatusServiceUnavailable, errorResponse)
	}

	circuit := h.backend.CircuitState()
	status := "healthy"
	if circuit.String() != "closed" {
		status = "degraded"
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":   status,
		"database": "up",
		"backend":  circuit.String(),
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}

// Helper to get trace ID from context
func getTraceIDFromContext(c echo.Context) string {
	traceID := c.Response().Header().Get("X-Trace-ID")
	if traceID == "" {
		traceID = getTraceID(c)
	}
	if traceID == "" {
		traceID = "unknown"
	}
	return traceID
}
