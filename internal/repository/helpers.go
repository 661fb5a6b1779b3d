package repository

import (
	"database/sql"
	"time"
)

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// nullableStrToPtr converts a sql.NullString to a *string, mapping NULL and
// empty to nil.
func nullableStrToPtr(s sql.NullString) *string {
	if !s.Valid || s.String == "" {
		return nil
	}
	v := s.String
	return &v
}

// ptrToNullable converts a *string to a value suitable for SQLite storage,
// mapping nil to SQL NULL.
func ptrToNullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// parseTimestamp parses an RFC3339 timestamp column, returning the zero
// time when the stored value does not parse.
func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
