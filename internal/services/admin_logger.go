package services

import (
	"context"
	"log/slog"
	"time"
)

type contextKey string

const traceIDKey contextKey = "trace_id"

// ContextWithTraceID attaches the request's trace id so service logs can be
// correlated with the HTTP access log.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if traceID, ok := ctx.Value(traceIDKey).(string); ok {
		return traceID
	}
	return ""
}

// AdminLogger provides structured event logging for the admin screens
type AdminLogger struct {
	logger *slog.Logger
}

func NewAdminLogger(logger *slog.Logger) *AdminLogger {
	return &AdminLogger{
		logger: logger,
	}
}

// LogSelectorOpened logs that a session opened the client selector
func (al *AdminLogger) LogSelectorOpened(ctx context.Context, sessionID string, generation uint64) {
	al.logger.InfoContext(ctx, "client selector opened",
		slog.String("event_type", "selector_opened"),
		slog.String("session_id", sessionID),
		slog.Uint64("generation", generation),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", TraceIDFromContext(ctx)),
	)
}

// LogClienteSelected logs a successful client selection
func (al *AdminLogger) LogClienteSelected(ctx context.Context, sessionID string, clienteID int64) {
	al.logger.InfoContext(ctx, "cliente selected",
		slog.String("event_type", "cliente_selected"),
		slog.String("session_id", sessionID),
		slog.Int64("cliente_id", clienteID),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", TraceIDFromContext(ctx)),
	)
}

func (al *AdminLogger) LogNewClientRequested(ctx context.Context, sessionID string, redirect string) {
	al.logger.InfoContext(ctx, "new client requested",
		slog.String("event_type", "new_client_requested"),
		slog.String("session_id", sessionID),
		slog.String("redirect", redirect),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", TraceIDFromContext(ctx)),
	)
}

// LogComodatosLoaded logs a completed comodatos listing fetch
func (al *AdminLogger) LogComodatosLoaded(ctx context.Context, count int, durationMs int64) {
	al.logger.InfoContext(ctx, "comodatos loaded",
		slog.String("event_type", "comodatos_loaded"),
		slog.Int("results_count", count),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", TraceIDFromContext(ctx)),
	)
}

// LogComodatosFailed logs a failed comodatos listing fetch
func (al *AdminLogger) LogComodatosFailed(ctx context.Context, errorMsg string, durationMs int64) {
	al.logger.ErrorContext(ctx, "Error fetching comodatos",
		slog.String("event_type", "comodatos_failed"),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", TraceIDFromContext(ctx)),
	)
}

func (al *AdminLogger) LogSelectionAuditFailed(ctx context.Context, sessionID string, errorMsg string) {
	al.logger.WarnContext(ctx, "selection audit write failed",
		slog.String("event_type", "selection_audit_failed"),
		slog.String("session_id", sessionID),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", TraceIDFromContext(ctx)),
	)
}

// LogValidationFailure logs validation failures
func (al *AdminLogger) LogValidationFailure(ctx context.Context, operation string, errorMsg string) {
	al.logger.WarnContext(ctx, "validation failure",
		slog.String("event_type", "validation_failure"),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", TraceIDFromContext(ctx)),
	)
}

func (al *AdminLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	al.logger.WarnContext(ctx, "circuit breaker state changed",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
	)
}
