package repositories

import (
	"context"

	"comodatos-admin/internal/models"
)

// SelectionEventRepositoryInterface defines the contract for the selection audit trail
type SelectionEventRepositoryInterface interface {
	Create(ctx context.Context, event *models.SelectionEvent) error
	List(ctx context.Context, offset, limit int) ([]*models.SelectionEvent, int64, error)
}
