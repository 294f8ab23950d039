package persistence

import (
	"context"
	"testing"

	"github.com/labworks/backend/internal/domain/crm"
	"github.com/labworks/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCreateProject(t *testing.T, repo *GormProjectRepository, clientID int64, name string) *crm.Project {
	t.Helper()
	project, err := crm.NewProject(clientID, name, nil, "", nil)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), project))
	return project
}

func TestGormProjectRepository_FindAllWithClient(t *testing.T) {
	db := newTestDatabase(t)
	clientRepo := NewGormClientRepository(db.DB)
	projectRepo := NewGormProjectRepository(db.DB)
	ctx := context.Background()

	t.Run("joins the owning client's name", func(t *testing.T) {
		client := mustCreateClient(t, clientRepo, "Acme Corp")
		mustCreateProject(t, projectRepo, client.ID, "Website Redesign")

		projects, err := projectRepo.FindAllWithClient(ctx)

		require.NoError(t, err)
		require.Len(t, projects, 1)
		require.NotNil(t, projects[0].ClientName)
		assert.Equal(t, "Acme Corp", *projects[0].ClientName)
	})

	t.Run("client_name is nil after the client was deleted", func(t *testing.T) {
		client := mustCreateClient(t, clientRepo, "Doomed Client")
		project := mustCreateProject(t, projectRepo, client.ID, "Orphan Project")
		require.NoError(t, clientRepo.Delete(ctx, client.ID))

		projects, err := projectRepo.FindAllWithClient(ctx)

		require.NoError(t, err)
		var orphan *crm.ProjectWithClient
		for i := range projects {
			if projects[i].ID == project.ID {
				orphan = &projects[i]
			}
		}
		require.NotNil(t, orphan)
		assert.Nil(t, orphan.ClientName)
	})
}

func TestGormProjectRepository_FindByClient(t *testing.T) {
	db := newTestDatabase(t)
	clientRepo := NewGormClientRepository(db.DB)
	projectRepo := NewGormProjectRepository(db.DB)
	ctx := context.Background()

	clientA := mustCreateClient(t, clientRepo, "Client A")
	clientB := mustCreateClient(t, clientRepo, "Client B")
	mustCreateProject(t, projectRepo, clientA.ID, "A One")
	mustCreateProject(t, projectRepo, clientA.ID, "A Two")
	mustCreateProject(t, projectRepo, clientB.ID, "B One")

	projects, err := projectRepo.FindByClient(ctx, clientA.ID)

	require.NoError(t, err)
	assert.Len(t, projects, 2)
	for _, p := range projects {
		assert.Equal(t, clientA.ID, p.ClientID)
	}
}

func TestGormProjectRepository_Delete(t *testing.T) {
	db := newTestDatabase(t)
	clientRepo := NewGormClientRepository(db.DB)
	projectRepo := NewGormProjectRepository(db.DB)
	ctx := context.Background()

	t.Run("deletes existing project", func(t *testing.T) {
		client := mustCreateClient(t, clientRepo, "Acme Corp")
		project := mustCreateProject(t, projectRepo, client.ID, "Short Lived")

		require.NoError(t, projectRepo.Delete(ctx, project.ID))

		_, err := projectRepo.FindByID(ctx, project.ID)
		assert.Equal(t, shared.ErrNotFound, err)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		assert.Equal(t, shared.ErrNotFound, projectRepo.Delete(ctx, 9999))
	})
}
