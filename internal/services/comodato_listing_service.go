package services

import (
	"context"
	"fmt"
	"time"

	"comodatos-admin/internal/models"
)

// ComodatoListingService resolves the comodatos page table from its source.
type ComodatoListingService struct {
	source  ComodatoSource
	logger  AdminLoggerInterface
	metrics MetricsRecorderInterface
}

// NewComodatoListingService wires the listing to its comodatos source. metrics may be nil.
func NewComodatoListingService(
	source ComodatoSource,
	logger AdminLoggerInterface,
	metrics MetricsRecorderInterface,
) *ComodatoListingService {
	return &ComodatoListingService{
		source:  source,
		logger:  logger,
		metrics: metrics,
	}
}

// Load fetches the comodatos and classifies them into an empty or populated
// listing. On a fetch error it returns the failed listing together with the
// wrapped error, so callers can render the table either way.
func (s *ComodatoListingService) Load(ctx context.Context) (*models.ComodatoListing, error) {
	start := time.Now()

	comodatos, err := s.source.ListComodatos(ctx)
	if err != nil {
		s.logger.LogComodatosFailed(ctx, err.Error(), time.Since(start).Milliseconds())
		s.count(models.ListingFailed)
		return models.FailedComodatoListing(), fmt.Errorf("load comodatos: %w", err)
	}

	listing := models.NewComodatoListing(comodatos)
	s.logger.LogComodatosLoaded(ctx, len(comodatos), time.Since(start).Milliseconds())
	s.count(listing.Status)
	return listing, nil
}

func (s *ComodatoListingService) count(status models.ListingStatus) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("comodato_listing", map[string]string{"status": string(status)})
}
