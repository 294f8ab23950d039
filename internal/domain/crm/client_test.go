package crm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewClient(t *testing.T) {
	t.Run("creates client with all fields", func(t *testing.T) {
		client, err := NewClient("Acme Corp", strPtr("billing@acme.test"), strPtr("555-0100"), strPtr("Acme"))

		require.NoError(t, err)
		assert.Equal(t, "Acme Corp", client.Name)
		assert.Equal(t, "billing@acme.test", *client.Email)
		assert.False(t, client.CreatedAt.IsZero())
		assert.Equal(t, client.CreatedAt, client.UpdatedAt)
	})

	t.Run("creates client with only a name", func(t *testing.T) {
		client, err := NewClient("Solo Client", nil, nil, nil)

		require.NoError(t, err)
		assert.Nil(t, client.Email)
		assert.Nil(t, client.Phone)
		assert.Nil(t, client.Company)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		client, err := NewClient("", nil, nil, nil)

		assert.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), "Name is required")
	})
}

func TestClient_Update(t *testing.T) {
	t.Run("replaces all mutable fields", func(t *testing.T) {
		client, err := NewClient("Acme Corp", strPtr("old@acme.test"), strPtr("555-0100"), strPtr("Acme"))
		require.NoError(t, err)
		created := client.UpdatedAt

		err = client.Update("Acme Corporation", strPtr("new@acme.test"), nil, nil)

		require.NoError(t, err)
		assert.Equal(t, "Acme Corporation", client.Name)
		assert.Equal(t, "new@acme.test", *client.Email)
		assert.Nil(t, client.Phone)
		assert.Nil(t, client.Company)
		assert.False(t, client.UpdatedAt.Before(created))
	})

	t.Run("rejects empty name", func(t *testing.T) {
		client, err := NewClient("Acme Corp", nil, nil, nil)
		require.NoError(t, err)

		err = client.Update("", nil, nil, nil)

		assert.Error(t, err)
		assert.Equal(t, "Acme Corp", client.Name)
	})
}

func TestNewProject(t *testing.T) {
	t.Run("defaults status to active", func(t *testing.T) {
		project, err := NewProject(1, "Website Redesign", nil, "", nil)

		require.NoError(t, err)
		assert.Equal(t, ProjectStatusActive, project.Status)
	})

	t.Run("keeps supplied status", func(t *testing.T) {
		project, err := NewProject(1, "Website Redesign", nil, ProjectStatusOnHold, nil)

		require.NoError(t, err)
		assert.Equal(t, ProjectStatusOnHold, project.Status)
	})

	t.Run("fails without client id", func(t *testing.T) {
		project, err := NewProject(0, "Website Redesign", nil, "", nil)

		assert.Error(t, err)
		assert.Nil(t, project)
	})

	t.Run("fails without name", func(t *testing.T) {
		project, err := NewProject(1, "", nil, "", nil)

		assert.Error(t, err)
		assert.Nil(t, project)
	})
}

func TestNewContactNote(t *testing.T) {
	t.Run("creates note", func(t *testing.T) {
		note, err := NewContactNote(1, "Called about renewal")

		require.NoError(t, err)
		assert.Equal(t, int64(1), note.ClientID)
		assert.Equal(t, "Called about renewal", note.Note)
	})

	t.Run("fails with empty note", func(t *testing.T) {
		note, err := NewContactNote(1, "")

		assert.Error(t, err)
		assert.Nil(t, note)
	})

	t.Run("fails without client id", func(t *testing.T) {
		note, err := NewContactNote(0, "Called about renewal")

		assert.Error(t, err)
		assert.Nil(t, note)
	})
}
