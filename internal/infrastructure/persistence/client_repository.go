package persistence

import (
	"context"
	"errors"

	"github.com/labworks/backend/internal/domain/crm"
	"github.com/labworks/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormClientRepository implements crm.ClientRepository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// FindAll returns all clients, newest first
func (r *GormClientRepository) FindAll(ctx context.Context) ([]crm.Client, error) {
	var clients []crm.Client
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// FindByID finds a client by its ID
func (r *GormClientRepository) FindByID(ctx context.Context, id int64) (*crm.Client, error) {
	var client crm.Client
	if err := r.db.WithContext(ctx).First(&client, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

// Save creates or updates a client
func (r *GormClientRepository) Save(ctx context.Context, client *crm.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

// Delete hard-deletes a client. Dependent projects, notes, invoices, and
// proposals are left in place.
func (r *GormClientRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&crm.Client{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
