package services

import (
	"context"
	"io"
	"time"

	"comodatos-admin/internal/models"
)

// BackendClientInterface reads clientes and comodatos from the remote REST API.
type BackendClientInterface interface {
	ListClientes(ctx context.Context) ([]models.Cliente, error)
	ListComodatos(ctx context.Context) ([]models.Comodato, error)
	CircuitState() models.CircuitBreakerState
}

// ComodatoSource is the data source behind the comodatos listing page.
type ComodatoSource interface {
	ListComodatos(ctx context.Context) ([]models.Comodato, error)
}

type ComodatoListingServiceInterface interface {
	// Load always returns a listing to render. On fetch failure the listing is
	// in the failed state and the error is returned alongside it.
	Load(ctx context.Context) (*models.ComodatoListing, error)
}

type ComodatoExporterInterface interface {
	RenderPDF(listing *models.ComodatoListing, w io.Writer) error
}

type SelectionAuditServiceInterface interface {
	RecordSelection(ctx context.Context, sessionID string, cliente models.Cliente)
	ListSelections(ctx context.Context, offset, limit int) ([]*models.SelectionEvent, int64, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}

type AdminLoggerInterface interface {
	LogSelectorOpened(ctx context.Context, sessionID string, generation uint64)
	LogClienteSelected(ctx context.Context, sessionID string, clienteID int64)
	LogNewClientRequested(ctx context.Context, sessionID string, redirect string)
	LogComodatosLoaded(ctx context.Context, count int, durationMs int64)
	LogComodatosFailed(ctx context.Context, errorMsg string, durationMs int64)
	LogSelectionAuditFailed(ctx context.Context, sessionID string, errorMsg string)
	LogValidationFailure(ctx context.Context, operation string, errorMsg string)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
}
