package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdtan/hoso/internal/domain"
)

type stubRecords struct {
	records []*domain.PersonnelRecord
}

func (s *stubRecords) Create(ctx context.Context, r *domain.PersonnelRecord) error { return nil }
func (s *stubRecords) Get(ctx context.Context, id string) (*domain.PersonnelRecord, error) {
	return nil, nil
}
func (s *stubRecords) List(ctx context.Context) ([]*domain.PersonnelRecord, error) {
	return s.records, nil
}
func (s *stubRecords) Update(ctx context.Context, r *domain.PersonnelRecord) error { return nil }
func (s *stubRecords) Delete(ctx context.Context, id string) error                 { return nil }

func TestResolveRecordID(t *testing.T) {
	app := &App{Records: &stubRecords{records: []*domain.PersonnelRecord{
		{ID: "aaa111", FullName: "Nguyễn Văn An"},
		{ID: "aab222", FullName: "Trần Văn Bình"},
		{ID: "ccc333", FullName: "Lê Văn Cường"},
	}}}
	ctx := context.Background()

	id, err := resolveRecordID(ctx, app, "ccc333")
	require.NoError(t, err)
	assert.Equal(t, "ccc333", id)

	id, err = resolveRecordID(ctx, app, "aab")
	require.NoError(t, err)
	assert.Equal(t, "aab222", id)

	id, err = resolveRecordID(ctx, app, "nguyễn văn an")
	require.NoError(t, err)
	assert.Equal(t, "aaa111", id)

	_, err = resolveRecordID(ctx, app, "aa")
	assert.ErrorContains(t, err, "ambiguous")

	_, err = resolveRecordID(ctx, app, "zzz")
	assert.ErrorContains(t, err, "not found")

	_, err = resolveRecordID(ctx, app, "")
	assert.Error(t, err)
}

type stubUnits struct {
	units []*domain.Unit
}

func (s *stubUnits) Create(ctx context.Context, name, parentID string) (*domain.Unit, error) {
	return nil, nil
}
func (s *stubUnits) Get(ctx context.Context, id string) (*domain.Unit, error) { return nil, nil }
func (s *stubUnits) List(ctx context.Context) ([]*domain.Unit, error)         { return s.units, nil }
func (s *stubUnits) Rename(ctx context.Context, id, name string) error        { return nil }
func (s *stubUnits) Delete(ctx context.Context, id string) error              { return nil }

func TestResolveUnitID(t *testing.T) {
	app := &App{Units: &stubUnits{units: []*domain.Unit{
		{ID: "u-100", Name: "Đại đội 1"},
		{ID: "u-200", Name: "Trung đội 2"},
	}}}
	ctx := context.Background()

	id, err := resolveUnitID(ctx, app, "u-2")
	require.NoError(t, err)
	assert.Equal(t, "u-200", id)

	id, err = resolveUnitID(ctx, app, "đại đội 1")
	require.NoError(t, err)
	assert.Equal(t, "u-100", id)

	_, err = resolveUnitID(ctx, app, "u-")
	assert.ErrorContains(t, err, "ambiguous")
}
