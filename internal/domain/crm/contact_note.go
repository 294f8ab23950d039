package crm

import (
	"time"

	"github.com/labworks/backend/internal/domain/shared"
)

// ContactNote represents a free-form note attached to a client.
// Notes are append-only: they are created and listed, never edited.
type ContactNote struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	ClientID  int64     `gorm:"not null;index"`
	Note      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ContactNote) TableName() string {
	return "contact_notes"
}

// NewContactNote creates a new contact note with required fields
func NewContactNote(clientID int64, note string) (*ContactNote, error) {
	if clientID == 0 {
		return nil, shared.NewDomainError("INVALID_CLIENT_ID", "Client ID is required")
	}
	if note == "" {
		return nil, shared.NewDomainError("INVALID_NOTE", "Note is required")
	}

	return &ContactNote{
		ClientID:  clientID,
		Note:      note,
		CreatedAt: time.Now(),
	}, nil
}
