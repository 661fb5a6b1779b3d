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

func TestStats_Dashboard(t *testing.T) {
	f := newSearchFixture(t)
	ctx := context.Background()
	stats := service.NewStatsService(f.search, f.units)

	require.NoError(t, f.records.Create(ctx, testutil.NewTestRecord("Đảng viên nợ xấu",
		testutil.WithPartyDate("2015-06-01"), testutil.WithDebt())))
	require.NoError(t, f.records.Create(ctx, testutil.NewTestRecord("Đoàn viên",
		testutil.WithUnionDate("2012-03-26"))))
	require.NoError(t, f.records.Create(ctx, testutil.NewTestRecord("Quần chúng")))

	got, err := stats.Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, got.Total)
	assert.Equal(t, 1, got.Alerts)
	assert.Equal(t, 1, got.PartyMembers)
	assert.Equal(t, 1, got.UnionMembers)
}

func TestStats_UnitBreakdownAggregatesDescendants(t *testing.T) {
	f := newSearchFixture(t)
	ctx := context.Background()
	stats := service.NewStatsService(f.search, f.units)

	require.NoError(t, f.units.Create(ctx, testutil.NewTestUnit("a", "Tiểu đoàn 1", "")))
	require.NoError(t, f.units.Create(ctx, testutil.NewTestUnit("b", "Đại đội 2", "a")))

	require.NoError(t, f.records.Create(ctx, testutil.NewTestRecord("Ở A", testutil.WithUnit("a", "Tiểu đoàn 1"))))
	require.NoError(t, f.records.Create(ctx, testutil.NewTestRecord("Ở B", testutil.WithUnit("b", "Đại đội 2"), testutil.WithGambling())))

	got, err := stats.UnitBreakdown(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Depth-first: the root first, its child next.
	assert.Equal(t, "Tiểu đoàn 1", got[0].Unit.Name)
	assert.Equal(t, 0, got[0].Depth)
	assert.Equal(t, 2, got[0].Total, "root counts descendants' records")
	assert.Equal(t, 1, got[0].Alerts)

	assert.Equal(t, "Đại đội 2", got[1].Unit.Name)
	assert.Equal(t, 1, got[1].Depth)
	assert.Equal(t, 1, got[1].Total)
	assert.Equal(t, 1, got[1].Alerts)
}

func TestStats_EmptyDatabase(t *testing.T) {
	database := testutil.NewTestDB(t)
	recordRepo := repository.NewSQLiteRecordRepo(database)
	unitRepo := repository.NewSQLiteUnitRepo(database)
	search := service.NewSearchService(recordRepo, unitRepo)
	stats := service.NewStatsService(search, unitRepo)

	got, err := stats.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, got.Total)
	assert.Equal(t, 0, got.Alerts)
}
