package repositories

import (
	"context"
	"errors"
	"fmt"

	"comodatos-admin/internal/models"

	"gorm.io/gorm"
)

// SelectionEventRepository handles database operations for selection events
type SelectionEventRepository struct {
	db *gorm.DB
}

func NewSelectionEventRepository(db *gorm.DB) *SelectionEventRepository {
	return &SelectionEventRepository{
		db: db,
	}
}

func (r *SelectionEventRepository) Create(ctx context.Context, event *models.SelectionEvent) error {
	if event == nil {
		return errors.New("selection event cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create selection event: %w", err)
	}

	return nil
}

// List returns a page of selection events, newest first, plus the total count
func (r *SelectionEventRepository) List(ctx context.Context, offset, limit int) ([]*models.SelectionEvent, int64, error) {
	var events []*models.SelectionEvent
	var total int64

	query := r.db.WithContext(ctx).Model(&models.SelectionEvent{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count selection events: %w", err)
	}

	if err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&events).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list selection events: %w", err)
	}

	return events, total, nil
}
