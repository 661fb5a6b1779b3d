package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vdtan/hoso/internal/db"
	"github.com/vdtan/hoso/internal/domain"
)

// recordColumns is the column list shared by every record SELECT.
const recordColumns = `id, full_name, alt_name, birth_date, national_id, rank, position,
	unit_id, unit_name, phone, birthplace, residence, ethnicity, religion, education,
	graduated, talents, party_date, union_date, enlistment_date, avatar, thumbnail,
	detail, created_at, updated_at`

// SQLiteRecordRepo implements RecordRepo on SQLite. Scalar fields live in
// columns; the nested detail groups are stored as one JSON document whose
// decode path runs the legacy-encoding normalization.
type SQLiteRecordRepo struct {
	db db.DBTX
}

// NewSQLiteRecordRepo creates a record repository over the given DBTX.
func NewSQLiteRecordRepo(dbtx db.DBTX) *SQLiteRecordRepo {
	return &SQLiteRecordRepo{db: dbtx}
}

func (r *SQLiteRecordRepo) Create(ctx context.Context, rec *domain.PersonnelRecord) error {
	detail, err := json.Marshal(rec.Detail)
	if err != nil {
		return fmt.Errorf("encoding record detail: %w", err)
	}
	query := `INSERT INTO records (` + recordColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		rec.ID, rec.FullName, rec.AltName, rec.BirthDate, rec.NationalID, rec.Rank, rec.Position,
		rec.UnitID, rec.UnitName, rec.Phone, rec.Birthplace, rec.Residence, rec.Ethnicity,
		rec.Religion, rec.Education, boolToInt(rec.Graduated.Bool()), rec.Talents,
		rec.PartyAdmissionDate, rec.UnionAdmissionDate, rec.EnlistmentDate,
		rec.Avatar, rec.Thumbnail, string(detail),
		rec.CreatedAt.Format(time.RFC3339), rec.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting record: %w", err)
	}
	return nil
}

func (r *SQLiteRecordRepo) GetByID(ctx context.Context, id string) (*domain.PersonnelRecord, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM records WHERE id = ?`, id)
	rec, err := scanRecord(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("record not found: %s", id)
	}
	return rec, err
}

func (r *SQLiteRecordRepo) List(ctx context.Context) ([]*domain.PersonnelRecord, error) {
	return r.list(ctx, `SELECT `+recordColumns+` FROM records ORDER BY created_at`)
}

func (r *SQLiteRecordRepo) ListByUnit(ctx context.Context, unitID string) ([]*domain.PersonnelRecord, error) {
	return r.list(ctx, `SELECT `+recordColumns+` FROM records WHERE unit_id = ? ORDER BY created_at`, unitID)
}

func (r *SQLiteRecordRepo) list(ctx context.Context, query string, args ...any) ([]*domain.PersonnelRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()

	var records []*domain.PersonnelRecord
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}
	return records, nil
}

func (r *SQLiteRecordRepo) Update(ctx context.Context, rec *domain.PersonnelRecord) error {
	detail, err := json.Marshal(rec.Detail)
	if err != nil {
		return fmt.Errorf("encoding record detail: %w", err)
	}
	query := `UPDATE records SET
		full_name = ?, alt_name = ?, birth_date = ?, national_id = ?, rank = ?, position = ?,
		unit_id = ?, unit_name = ?, phone = ?, birthplace = ?, residence = ?, ethnicity = ?,
		religion = ?, education = ?, graduated = ?, talents = ?, party_date = ?, union_date = ?,
		enlistment_date = ?, avatar = ?, thumbnail = ?, detail = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		rec.FullName, rec.AltName, rec.BirthDate, rec.NationalID, rec.Rank, rec.Position,
		rec.UnitID, rec.UnitName, rec.Phone, rec.Birthplace, rec.Residence, rec.Ethnicity,
		rec.Religion, rec.Education, boolToInt(rec.Graduated.Bool()), rec.Talents,
		rec.PartyAdmissionDate, rec.UnionAdmissionDate, rec.EnlistmentDate,
		rec.Avatar, rec.Thumbnail, string(detail),
		rec.UpdatedAt.Format(time.RFC3339), rec.ID,
	)
	if err != nil {
		return fmt.Errorf("updating record: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("record not found: %s", rec.ID)
	}
	return nil
}

func (r *SQLiteRecordRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}
	return nil
}

func (r *SQLiteRecordRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return n, nil
}

// scanRecord maps one row onto a PersonnelRecord. Decoding the detail JSON
// through the domain types normalizes legacy field encodings; a corrupt
// detail document degrades to empty nested groups rather than failing the
// whole scan.
func scanRecord(scan func(dest ...any) error) (*domain.PersonnelRecord, error) {
	var rec domain.PersonnelRecord
	var graduated int
	var detailJSON, createdAt, updatedAt string

	err := scan(
		&rec.ID, &rec.FullName, &rec.AltName, &rec.BirthDate, &rec.NationalID, &rec.Rank,
		&rec.Position, &rec.UnitID, &rec.UnitName, &rec.Phone, &rec.Birthplace, &rec.Residence,
		&rec.Ethnicity, &rec.Religion, &rec.Education, &graduated, &rec.Talents,
		&rec.PartyAdmissionDate, &rec.UnionAdmissionDate, &rec.EnlistmentDate,
		&rec.Avatar, &rec.Thumbnail, &detailJSON, &createdAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning record: %w", err)
	}

	rec.Graduated = domain.FlexBool(graduated != 0)
	if err := json.Unmarshal([]byte(detailJSON), &rec.Detail); err != nil {
		rec.Detail = domain.RecordDetail{}
	}
	rec.CreatedAt = parseTimestamp(createdAt)
	rec.UpdatedAt = parseTimestamp(updatedAt)

	return &rec, nil
}
