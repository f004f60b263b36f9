package services

import (
	"context"
	"fmt"

	"comodatos-admin/internal/models"
	"comodatos-admin/internal/repositories"
)

const (
	defaultSelectionsLimit = 20
	maxSelectionsLimit     = 100
)

// SelectionAuditService keeps the append-only trail of client selections.
type SelectionAuditService struct {
	repo    repositories.SelectionEventRepositoryInterface
	logger  AdminLoggerInterface
	metrics MetricsRecorderInterface
}

func NewSelectionAuditService(
	repo repositories.SelectionEventRepositoryInterface,
	logger AdminLoggerInterface,
	metrics MetricsRecorderInterface,
) *SelectionAuditService {
	return &SelectionAuditService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
	}
}

// RecordSelection writes one audit row. Failures are logged and swallowed.
func (s *SelectionAuditService) RecordSelection(ctx context.Context, sessionID string, cliente models.Cliente) {
	event := &models.SelectionEvent{
		SessionID:     sessionID,
		ClienteID:     cliente.ID,
		ClienteNombre: cliente.Nombre,
		TraceID:       TraceIDFromContext(ctx),
	}

	if err := s.repo.Create(ctx, event); err != nil {
		s.logger.LogSelectionAuditFailed(ctx, sessionID, err.Error())
		s.count("failed")
		return
	}
	s.count("success")
}

func (s *SelectionAuditService) ListSelections(ctx context.Context, offset, limit int) ([]*models.SelectionEvent, int64, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultSelectionsLimit
	}
	if limit > maxSelectionsLimit {
		limit = maxSelectionsLimit
	}

	events, total, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list selection events: %w", err)
	}
	return events, total, nil
}

func (s *SelectionAuditService) count(status string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("selection_audit_write", map[string]string{"status": status})
}
