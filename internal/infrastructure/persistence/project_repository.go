package persistence

import (
	"context"
	"errors"

	"github.com/labworks/backend/internal/domain/crm"
	"github.com/labworks/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormProjectRepository implements crm.ProjectRepository using GORM
type GormProjectRepository struct {
	db *gorm.DB
}

// NewGormProjectRepository creates a new GormProjectRepository
func NewGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{db: db}
}

// FindAllWithClient returns all projects with the owning client's name
// left-joined. Projects survive client deletion; client_name comes back nil
// for those rows.
func (r *GormProjectRepository) FindAllWithClient(ctx context.Context) ([]crm.ProjectWithClient, error) {
	var projects []crm.ProjectWithClient
	if err := r.db.WithContext(ctx).
		Model(&crm.Project{}).
		Select("projects.*, clients.name AS client_name").
		Joins("LEFT JOIN clients ON projects.client_id = clients.id").
		Order("projects.created_at DESC").
		Scan(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindByClient returns a client's projects, newest first
func (r *GormProjectRepository) FindByClient(ctx context.Context, clientID int64) ([]crm.Project, error) {
	var projects []crm.Project
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindByID finds a project by its ID
func (r *GormProjectRepository) FindByID(ctx context.Context, id int64) (*crm.Project, error) {
	var project crm.Project
	if err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

// Save creates or updates a project
func (r *GormProjectRepository) Save(ctx context.Context, project *crm.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// Delete hard-deletes a project
func (r *GormProjectRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&crm.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
