package persistence

import (
	"context"

	"github.com/labworks/backend/internal/domain/crm"
	"gorm.io/gorm"
)

// GormContactNoteRepository implements crm.ContactNoteRepository using GORM
type GormContactNoteRepository struct {
	db *gorm.DB
}

// NewGormContactNoteRepository creates a new GormContactNoteRepository
func NewGormContactNoteRepository(db *gorm.DB) *GormContactNoteRepository {
	return &GormContactNoteRepository{db: db}
}

// FindByClient returns a client's notes, newest first
func (r *GormContactNoteRepository) FindByClient(ctx context.Context, clientID int64) ([]crm.ContactNote, error) {
	var notes []crm.ContactNote
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// Save creates a contact note
func (r *GormContactNoteRepository) Save(ctx context.Context, note *crm.ContactNote) error {
	return r.db.WithContext(ctx).Save(note).Error
}
