package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_AppliesSchema(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"records", "units"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// Re-running the full migration list against an up-to-date schema must
	// be a no-op.
	assert.NoError(t, Migrate(database))
}

func TestOpenDB_ForeignKeysOn(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	var enabled int
	require.NoError(t, database.QueryRow("PRAGMA foreign_keys").Scan(&enabled))
	assert.Equal(t, 1, enabled)
}
