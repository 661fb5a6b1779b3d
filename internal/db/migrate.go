package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations are applied in order on every open. Statements are written to
// be idempotent; "duplicate column name" from a re-run ALTER TABLE is
// tolerated so new columns can be added to existing installations.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS units (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		parent_id  TEXT REFERENCES units(id) ON DELETE CASCADE,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	// unit_id is deliberately not a foreign key: a record may outlive its
	// unit, and a dangling unit id degrades to "no match" in unit filters.
	`CREATE TABLE IF NOT EXISTS records (
		id              TEXT PRIMARY KEY,
		full_name       TEXT NOT NULL,
		alt_name        TEXT NOT NULL DEFAULT '',
		birth_date      TEXT NOT NULL DEFAULT '',
		national_id     TEXT NOT NULL DEFAULT '',
		rank            TEXT NOT NULL DEFAULT '',
		position        TEXT NOT NULL DEFAULT '',
		unit_id         TEXT NOT NULL DEFAULT '',
		unit_name       TEXT NOT NULL DEFAULT '',
		phone           TEXT NOT NULL DEFAULT '',
		birthplace      TEXT NOT NULL DEFAULT '',
		residence       TEXT NOT NULL DEFAULT '',
		ethnicity       TEXT NOT NULL DEFAULT '',
		religion        TEXT NOT NULL DEFAULT '',
		education       TEXT NOT NULL DEFAULT '',
		graduated       INTEGER NOT NULL DEFAULT 0,
		talents         TEXT NOT NULL DEFAULT '',
		party_date      TEXT NOT NULL DEFAULT '',
		union_date      TEXT NOT NULL DEFAULT '',
		enlistment_date TEXT NOT NULL DEFAULT '',
		avatar          TEXT NOT NULL DEFAULT '',
		thumbnail       TEXT NOT NULL DEFAULT '',
		detail          TEXT NOT NULL DEFAULT '{}',
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_records_unit_id ON records(unit_id)`,
	`CREATE INDEX IF NOT EXISTS idx_records_created_at ON records(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_units_parent_id ON units(parent_id)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
