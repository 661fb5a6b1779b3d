package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// OpenDB opens the SQLite database at the given path, creating parent
// directories as needed. ":memory:" opens an in-memory database. WAL mode
// and foreign-key enforcement are always on, and migrations run before the
// handle is returned.
func OpenDB(path string) (*sql.DB, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	// SQLite pragmas are per-connection, so they ride in the DSN and apply
	// to every connection the pool opens. Foreign keys carry the unit
	// parent cascade and must be on for all of them.
	dsn := path
	if path == ":memory:" {
		dsn = "file::memory:"
	}
	dsn += "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"

	database, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// Single-user tool. One connection also keeps ":memory:" a single
	// database rather than one per pooled connection.
	database.SetMaxOpenConns(1)

	if err := Migrate(database); err != nil {
		database.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return database, nil
}
