package timetracker

import (
	"context"

	"github.com/labworks/backend/internal/domain/timetracker"
)

// TimeEntryService handles time logging against projects
type TimeEntryService struct {
	entryRepo timetracker.TimeEntryRepository
}

// NewTimeEntryService creates a new TimeEntryService
func NewTimeEntryService(entryRepo timetracker.TimeEntryRepository) *TimeEntryService {
	return &TimeEntryService{entryRepo: entryRepo}
}

// List returns all entries with project and client names joined in, ordered
// by date desc then creation desc.
func (s *TimeEntryService) List(ctx context.Context) ([]TimeEntryListResponse, error) {
	entries, err := s.entryRepo.FindAllDetailed(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]TimeEntryListResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, TimeEntryListResponse{
			TimeEntryResponse: toTimeEntryResponse(&entry.TimeEntry),
			ProjectName:       entry.ProjectName,
			ClientName:        entry.ClientName,
		})
	}
	return responses, nil
}

// ListByProject returns a project's entries, most recent date first
func (s *TimeEntryService) ListByProject(ctx context.Context, projectID int64) ([]TimeEntryResponse, error) {
	entries, err := s.entryRepo.FindByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	responses := make([]TimeEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toTimeEntryResponse(&entry))
	}
	return responses, nil
}

// Create logs a new time entry and returns its id
func (s *TimeEntryService) Create(ctx context.Context, req CreateTimeEntryRequest) (int64, error) {
	entry, err := timetracker.NewTimeEntry(req.ProjectID, req.Description, req.Hours, req.Rate, req.Date)
	if err != nil {
		return 0, err
	}

	if err := s.entryRepo.Save(ctx, entry); err != nil {
		return 0, err
	}
	return entry.ID, nil
}

// Update replaces an entry's mutable fields
func (s *TimeEntryService) Update(ctx context.Context, id int64, req UpdateTimeEntryRequest) error {
	entry, err := s.entryRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := entry.Update(req.Description, req.Hours, req.Rate, req.Date); err != nil {
		return err
	}
	return s.entryRepo.Save(ctx, entry)
}

// Delete removes a time entry
func (s *TimeEntryService) Delete(ctx context.Context, id int64) error {
	return s.entryRepo.Delete(ctx, id)
}
