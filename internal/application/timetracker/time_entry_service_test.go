package timetracker

import (
	"context"
	"testing"

	"github.com/labworks/backend/internal/domain/shared"
	"github.com/labworks/backend/internal/domain/timetracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTimeEntryService_List(t *testing.T) {
	ctx := context.Background()

	repo := new(MockTimeEntryRepository)
	service := NewTimeEntryService(repo)

	repo.On("FindAllDetailed", ctx).Return([]timetracker.TimeEntryDetailed{
		{
			TimeEntry:   timetracker.TimeEntry{ID: 1, ProjectID: 3, Hours: 3, Rate: floatPtr(20), Date: "2025-01-01"},
			ProjectName: strPtr("Website"),
			ClientName:  strPtr("Acme Corp"),
		},
		{
			TimeEntry: timetracker.TimeEntry{ID: 2, ProjectID: 3, Hours: 5, Date: "2025-01-02"},
		},
	}, nil)

	entries, err := service.List(ctx)

	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.NotNil(t, entries[0].Amount)
	assert.Equal(t, 60.0, *entries[0].Amount)
	require.NotNil(t, entries[0].ProjectName)
	assert.Equal(t, "Website", *entries[0].ProjectName)

	assert.Nil(t, entries[1].Amount, "no rate means no computed amount")
	assert.Nil(t, entries[1].ClientName)
}

func TestTimeEntryService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("logs the entry and returns the id", func(t *testing.T) {
		repo := new(MockTimeEntryRepository)
		service := NewTimeEntryService(repo)

		repo.On("Save", ctx, mock.AnythingOfType("*timetracker.TimeEntry")).Run(func(args mock.Arguments) {
			entry := args.Get(1).(*timetracker.TimeEntry)
			entry.ID = 9
			assert.NotEmpty(t, entry.Date, "date defaults to today")
		}).Return(nil)

		id, err := service.Create(ctx, CreateTimeEntryRequest{ProjectID: 3, Hours: 2})

		require.NoError(t, err)
		assert.Equal(t, int64(9), id)
	})

	t.Run("requires project_id and hours", func(t *testing.T) {
		repo := new(MockTimeEntryRepository)
		service := NewTimeEntryService(repo)

		_, err := service.Create(ctx, CreateTimeEntryRequest{Hours: 2})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)

		_, err = service.Create(ctx, CreateTimeEntryRequest{ProjectID: 3})
		require.ErrorAs(t, err, &domainErr)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestTimeEntryService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the mutable fields", func(t *testing.T) {
		repo := new(MockTimeEntryRepository)
		service := NewTimeEntryService(repo)

		existing := &timetracker.TimeEntry{ID: 1, ProjectID: 3, Hours: 2, Date: "2025-01-01"}
		repo.On("FindByID", ctx, int64(1)).Return(existing, nil)
		repo.On("Save", ctx, existing).Return(nil)

		err := service.Update(ctx, 1, UpdateTimeEntryRequest{Hours: 4, Rate: floatPtr(75), Date: "2025-01-02"})

		require.NoError(t, err)
		assert.Equal(t, 4.0, existing.Hours)
		assert.Equal(t, "2025-01-02", existing.Date)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		repo := new(MockTimeEntryRepository)
		service := NewTimeEntryService(repo)

		repo.On("FindByID", ctx, int64(99)).Return(nil, shared.ErrNotFound)

		err := service.Update(ctx, 99, UpdateTimeEntryRequest{Hours: 1})

		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestTimeEntryService_Delete(t *testing.T) {
	ctx := context.Background()

	repo := new(MockTimeEntryRepository)
	service := NewTimeEntryService(repo)

	repo.On("Delete", ctx, int64(1)).Return(nil)
	repo.On("Delete", ctx, int64(99)).Return(shared.ErrNotFound)

	assert.NoError(t, service.Delete(ctx, 1))
	assert.Equal(t, shared.ErrNotFound, service.Delete(ctx, 99))
}
