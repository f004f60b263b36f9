package dto

import (
	"time"

	"comodatos-admin/internal/models"

	"github.com/google/uuid"
)

// ListSelectionsRequest pages through the selection audit trail.
type ListSelectionsRequest struct {
	Offset int `query:"offset" validate:"min=0"`
	Limit  int `query:"limit" validate:"omitempty,min=1,max=100"`
}

type SelectionEventResponse struct {
	ID            uuid.UUID `json:"id"`
	SessionID     string    `json:"session_id"`
	ClienteID     int64     `json:"cliente_id"`
	ClienteNombre string    `json:"cliente_nombre"`
	TraceID       string    `json:"trace_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ListSelectionsResponse is a page of selection events, newest first.
type ListSelectionsResponse struct {
	Selections []SelectionEventResponse `json:"selections"`
	Total      int64                    `json:"total"`
	Offset     int                      `json:"offset"`
	Limit      int                      `json:"limit"`
}

func NewListSelectionsResponse(events []*models.SelectionEvent, total int64, offset, limit int) ListSelectionsResponse {
	resp := ListSelectionsResponse{
		Selections: make([]SelectionEventResponse, 0, len(events)),
		Total:      total,
		Offset:     offset,
		Limit:      limit,
	}
	for _, e := range events {
		resp.Selections = append(resp.Selections, SelectionEventResponse{
			ID:            e.ID,
			SessionID:     e.SessionID,
			ClienteID:     e.ClienteID,
			ClienteNombre: e.ClienteNombre,
			TraceID:       e.TraceID,
			CreatedAt:     e.CreatedAt,
		})
	}
	return resp
}
