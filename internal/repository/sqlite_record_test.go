package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdtan/hoso/internal/repository"
	"github.com/vdtan/hoso/internal/testutil"
)

func TestRecordRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRecordRepo(database)
	ctx := context.Background()

	rec := testutil.NewTestRecord("Nguyễn Văn An",
		testutil.WithUnit("u1", "Đại đội 2"),
		testutil.WithDebt(),
		testutil.WithSpouse("Lê Thị Hoa"),
		testutil.WithTravel("Lào", "Quá hạn lưu trú"),
	)
	require.NoError(t, repo.Create(ctx, rec))

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)

	assert.Equal(t, "Nguyễn Văn An", got.FullName)
	assert.Equal(t, "u1", got.UnitID)
	assert.True(t, got.Detail.Finance.Debt.Flag.Bool(), "nested detail survives the round trip")
	require.NotNil(t, got.Detail.Family.Spouse)
	assert.Equal(t, "Lê Thị Hoa", got.Detail.Family.Spouse.Name)
	require.Len(t, got.Detail.Foreign.Travels, 1)
	assert.Equal(t, "Quá hạn lưu trú", got.Detail.Foreign.Travels[0].ViolationNote)
}

func TestRecordRepo_GetMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRecordRepo(database)

	_, err := repo.GetByID(context.Background(), "no-such-id")
	assert.ErrorContains(t, err, "record not found")
}

func TestRecordRepo_LegacyDetailNormalizedOnRead(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRecordRepo(database)
	ctx := context.Background()

	rec := testutil.NewTestRecord("Trần Văn Bình")
	require.NoError(t, repo.Create(ctx, rec))

	// Overwrite the stored detail with the oldest encodings: raw booleans
	// and co_khong wrappers side by side.
	_, err := database.Exec(
		`UPDATE records SET detail = ? WHERE id = ?`,
		`{"vi_pham": {"ma_tuy": true, "co_bac": {"co_khong": true}}, "kinh_te": {"no_xau": {"co_khong": false}}}`,
		rec.ID,
	)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.True(t, got.Detail.Violations.DrugUse.Flag.Bool())
	assert.True(t, got.Detail.Violations.Gambling.Flag.Bool())
	assert.False(t, got.Detail.Finance.Debt.Flag.Bool())
}

func TestRecordRepo_CorruptDetailDegradesToEmpty(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRecordRepo(database)
	ctx := context.Background()

	rec := testutil.NewTestRecord("Lê Văn Cường", testutil.WithDebt())
	require.NoError(t, repo.Create(ctx, rec))

	_, err := database.Exec(`UPDATE records SET detail = 'not json' WHERE id = ?`, rec.ID)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err, "a corrupt detail document is absence, not an error")
	assert.False(t, got.Detail.Finance.Debt.Flag.Bool())
	assert.Equal(t, "Lê Văn Cường", got.FullName)
}

func TestRecordRepo_ListOrderAndUpdate(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRecordRepo(database)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	first := testutil.NewTestRecord("Một", testutil.WithCreatedAt(base))
	second := testutil.NewTestRecord("Hai", testutil.WithCreatedAt(base.Add(time.Hour)))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, first))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Một", all[0].FullName, "list is creation-ascending")

	first.Rank = "Hạ sĩ"
	first.UpdatedAt = base.Add(2 * time.Hour)
	require.NoError(t, repo.Update(ctx, first))

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hạ sĩ", got.Rank)
}

func TestRecordRepo_UpdateMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRecordRepo(database)

	rec := testutil.NewTestRecord("Không tồn tại")
	err := repo.Update(context.Background(), rec)
	assert.ErrorContains(t, err, "record not found")
}

func TestRecordRepo_DeleteAndCount(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRecordRepo(database)
	ctx := context.Background()

	rec := testutil.NewTestRecord("Nguyễn Văn An")
	require.NoError(t, repo.Create(ctx, rec))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, repo.Delete(ctx, rec.ID))

	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestRecordRepo_ListByUnit(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteRecordRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestRecord("Trong", testutil.WithUnit("u1", "Đại đội 2"))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestRecord("Ngoài", testutil.WithUnit("u2", "Đại đội 3"))))

	got, err := repo.ListByUnit(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Trong", got[0].FullName)
}
