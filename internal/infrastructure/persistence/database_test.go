package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestDatabase opens an in-memory SQLite database with the full schema
func newTestDatabase(t *testing.T) *Database {
	t.Helper()

	db, err := Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func TestDatabase_Migrate(t *testing.T) {
	db := newTestDatabase(t)

	for _, table := range []string{"clients", "projects", "contact_notes", "time_entries", "invoices", "proposals"} {
		require.True(t, db.DB.Migrator().HasTable(table), "missing table %s", table)
	}
}

func TestDatabase_Ping(t *testing.T) {
	db := newTestDatabase(t)
	require.NoError(t, db.Ping())
}
