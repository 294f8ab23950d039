package persistence

import (
	"context"
	"errors"

	"github.com/labworks/backend/internal/domain/shared"
	"github.com/labworks/backend/internal/domain/timetracker"
	"gorm.io/gorm"
)

// GormTimeEntryRepository implements timetracker.TimeEntryRepository using GORM
type GormTimeEntryRepository struct {
	db *gorm.DB
}

// NewGormTimeEntryRepository creates a new GormTimeEntryRepository
func NewGormTimeEntryRepository(db *gorm.DB) *GormTimeEntryRepository {
	return &GormTimeEntryRepository{db: db}
}

// FindAllDetailed returns all entries with project and client names joined,
// ordered by date desc then creation desc
func (r *GormTimeEntryRepository) FindAllDetailed(ctx context.Context) ([]timetracker.TimeEntryDetailed, error) {
	var entries []timetracker.TimeEntryDetailed
	if err := r.db.WithContext(ctx).
		Model(&timetracker.TimeEntry{}).
		Select("time_entries.*, projects.name AS project_name, clients.name AS client_name").
		Joins("LEFT JOIN projects ON time_entries.project_id = projects.id").
		Joins("LEFT JOIN clients ON projects.client_id = clients.id").
		Order("time_entries.date DESC, time_entries.created_at DESC").
		Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindByProject returns a project's entries, most recent date first
func (r *GormTimeEntryRepository) FindByProject(ctx context.Context, projectID int64) ([]timetracker.TimeEntry, error) {
	var entries []timetracker.TimeEntry
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("date DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindByProjectChronological returns a project's entries oldest date first
func (r *GormTimeEntryRepository) FindByProjectChronological(ctx context.Context, projectID int64) ([]timetracker.TimeEntry, error) {
	var entries []timetracker.TimeEntry
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("date ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindByID finds a time entry by its ID
func (r *GormTimeEntryRepository) FindByID(ctx context.Context, id int64) (*timetracker.TimeEntry, error) {
	var entry timetracker.TimeEntry
	if err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// Save creates or updates a time entry
func (r *GormTimeEntryRepository) Save(ctx context.Context, entry *timetracker.TimeEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// Delete hard-deletes a time entry
func (r *GormTimeEntryRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&timetracker.TimeEntry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// SumBilled returns the sum of hours*rate over a project's entries with a
// non-null rate. Nothing records which entries were already invoiced, so
// repeated derived invoicing re-counts the same hours.
func (r *GormTimeEntryRepository) SumBilled(ctx context.Context, projectID int64) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&timetracker.TimeEntry{}).
		Select("COALESCE(SUM(hours * rate), 0)").
		Where("project_id = ? AND rate IS NOT NULL", projectID).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
