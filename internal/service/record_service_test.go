package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdtan/hoso/internal/repository"
	"github.com/vdtan/hoso/internal/service"
	"github.com/vdtan/hoso/internal/testutil"
)

func newRecordFixture(t *testing.T) (service.RecordService, service.UnitService) {
	t.Helper()
	database := testutil.NewTestDB(t)
	recordRepo := repository.NewSQLiteRecordRepo(database)
	unitRepo := repository.NewSQLiteUnitRepo(database)
	return service.NewRecordService(recordRepo, unitRepo), service.NewUnitService(unitRepo)
}

func TestRecordService_CreateAssignsIdentity(t *testing.T) {
	records, _ := newRecordFixture(t)
	ctx := context.Background()

	r := testutil.NewTestRecord("Nguyễn Văn An")
	r.ID = ""
	require.NoError(t, records.Create(ctx, r))

	assert.NotEmpty(t, r.ID)
	assert.False(t, r.CreatedAt.IsZero())
	assert.Equal(t, r.CreatedAt, r.UpdatedAt)
}

func TestRecordService_CreateRequiresName(t *testing.T) {
	records, _ := newRecordFixture(t)
	r := testutil.NewTestRecord("   ")
	r.FullName = "   "
	assert.ErrorContains(t, records.Create(context.Background(), r), "full name is required")
}

func TestRecordService_UnitNameSnapshot(t *testing.T) {
	records, units := newRecordFixture(t)
	ctx := context.Background()

	u, err := units.Create(ctx, "Đại đội 2", "")
	require.NoError(t, err)

	r := testutil.NewTestRecord("Nguyễn Văn An", testutil.WithUnit(u.ID, "stale name"))
	require.NoError(t, records.Create(ctx, r))
	assert.Equal(t, "Đại đội 2", r.UnitName, "create snapshots the live unit name")

	// A rename leaves existing snapshots stale until the record is saved
	// again.
	require.NoError(t, units.Rename(ctx, u.ID, "Đại đội 2 (mới)"))
	got, err := records.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Đại đội 2", got.UnitName)

	require.NoError(t, records.Update(ctx, got))
	refreshed, err := records.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Đại đội 2 (mới)", refreshed.UnitName, "save refreshes the snapshot")
}

func TestRecordService_UpdateBumpsTimestamp(t *testing.T) {
	records, _ := newRecordFixture(t)
	ctx := context.Background()

	r := testutil.NewTestRecord("Nguyễn Văn An")
	require.NoError(t, records.Create(ctx, r))
	created := r.CreatedAt

	r.Rank = "Hạ sĩ"
	require.NoError(t, records.Update(ctx, r))

	got, err := records.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hạ sĩ", got.Rank)
	assert.False(t, got.UpdatedAt.Before(created), "updated_at never moves backwards")
}

func TestRecordService_Delete(t *testing.T) {
	records, _ := newRecordFixture(t)
	ctx := context.Background()

	r := testutil.NewTestRecord("Nguyễn Văn An")
	require.NoError(t, records.Create(ctx, r))
	require.NoError(t, records.Delete(ctx, r.ID))

	_, err := records.Get(ctx, r.ID)
	assert.Error(t, err)
}

func TestUnitService_ParentMustExist(t *testing.T) {
	_, units := newRecordFixture(t)
	_, err := units.Create(context.Background(), "Trung đội 3", "no-such-parent")
	assert.ErrorContains(t, err, "resolving parent unit")
}
