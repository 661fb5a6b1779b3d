package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/vdtan/hoso/internal/db"
	"github.com/vdtan/hoso/internal/domain"
)

// SQLiteUnitRepo implements UnitRepo on SQLite. The ON DELETE CASCADE on
// parent_id makes Delete remove the whole subtree.
type SQLiteUnitRepo struct {
	db db.DBTX
}

// NewSQLiteUnitRepo creates a unit repository over the given DBTX.
func NewSQLiteUnitRepo(dbtx db.DBTX) *SQLiteUnitRepo {
	return &SQLiteUnitRepo{db: dbtx}
}

func (r *SQLiteUnitRepo) Create(ctx context.Context, u *domain.Unit) error {
	query := `INSERT INTO units (id, name, parent_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		u.ID, u.Name, ptrToNullable(u.ParentID),
		u.CreatedAt.Format(time.RFC3339), u.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting unit: %w", err)
	}
	return nil
}

func (r *SQLiteUnitRepo) GetByID(ctx context.Context, id string) (*domain.Unit, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, parent_id, created_at, updated_at FROM units WHERE id = ?`, id)
	u, err := scanUnit(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("unit not found: %s", id)
	}
	return u, err
}

func (r *SQLiteUnitRepo) List(ctx context.Context) ([]*domain.Unit, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, parent_id, created_at, updated_at FROM units ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing units: %w", err)
	}
	defer rows.Close()

	var units []*domain.Unit
	for rows.Next() {
		u, err := scanUnit(rows.Scan)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating units: %w", err)
	}
	return units, nil
}

func (r *SQLiteUnitRepo) Update(ctx context.Context, u *domain.Unit) error {
	query := `UPDATE units SET name = ?, parent_id = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		u.Name, ptrToNullable(u.ParentID), u.UpdatedAt.Format(time.RFC3339), u.ID)
	if err != nil {
		return fmt.Errorf("updating unit: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("unit not found: %s", u.ID)
	}
	return nil
}

func (r *SQLiteUnitRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM units WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting unit: %w", err)
	}
	return nil
}

func scanUnit(scan func(dest ...any) error) (*domain.Unit, error) {
	var u domain.Unit
	var parentID sql.NullString
	var createdAt, updatedAt string

	err := scan(&u.ID, &u.Name, &parentID, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning unit: %w", err)
	}

	u.ParentID = nullableStrToPtr(parentID)
	u.CreatedAt = parseTimestamp(createdAt)
	u.UpdatedAt = parseTimestamp(updatedAt)
	return &u, nil
}
