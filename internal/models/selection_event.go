package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SelectionEvent records that a client was picked in the selector modal.
type SelectionEvent struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SessionID     string    `gorm:"type:varchar(64);not null;index" json:"session_id"`
	ClienteID     int64     `gorm:"not null;index" json:"cliente_id"`
	ClienteNombre string    `gorm:"type:varchar(255)" json:"cliente_nombre"`
	TraceID       string    `gorm:"type:varchar(64)" json:"trace_id,omitempty"`
	CreatedAt     time.Time `gorm:"not null;index" json:"created_at"`
}

func (e *SelectionEvent) TableName() string {
	return "selection_events"
}

func (e *SelectionEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	return e.Validate()
}

func (e *SelectionEvent) Validate() error {
	if e.SessionID == "" {
		return fmt.Errorf("session id is required")
	}
	if e.ClienteID <= 0 {
		return fmt.Errorf("cliente id must be positive")
	}
	return nil
}

func (e *SelectionEvent) String() string {
	return fmt.Sprintf("SelectionEvent[Session: %s, Cliente: %d (%s), Time: %s]",
		e.SessionID, e.ClienteID, e.ClienteNombre, e.CreatedAt.Format(time.RFC3339))
}
