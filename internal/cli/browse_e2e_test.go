package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdtan/hoso/internal/repository"
	"github.com/vdtan/hoso/internal/service"
	"github.com/vdtan/hoso/internal/teatest"
	"github.com/vdtan/hoso/internal/testutil"
)

// fireDebounce delivers the pending debounce tick for the newest keystroke.
// The driver's Cmd timeout skips the real 300ms timer, which keeps the test
// deterministic.
func fireDebounce(d *teatest.Driver) {
	m := d.Model.(browseModel)
	d.Send(debounceMsg{seq: m.seq})
}

func TestBrowse_EndToEndSearch(t *testing.T) {
	database := testutil.NewTestDB(t)
	recordRepo := repository.NewSQLiteRecordRepo(database)
	unitRepo := repository.NewSQLiteUnitRepo(database)
	ctx := context.Background()

	require.NoError(t, recordRepo.Create(ctx, testutil.NewTestRecord("Nguyễn Văn An",
		testutil.WithRank("Binh nhì"))))
	require.NoError(t, recordRepo.Create(ctx, testutil.NewTestRecord("Trần Thị Bình")))

	app := &App{Search: service.NewSearchService(recordRepo, unitRepo)}
	d := teatest.New(t, newBrowseModel(app))

	// Init loads everything.
	view := d.View()
	assert.Contains(t, view, "Nguyễn Văn An")
	assert.Contains(t, view, "Trần Thị Bình")

	// Typing a keyword narrows the list after the debounce fires.
	d.Type("an")
	fireDebounce(d)

	view = d.View()
	assert.Contains(t, view, "Nguyễn Văn An")
	assert.NotContains(t, view, "Trần Thị Bình")

	// Enter opens the detail view, esc returns to the list.
	d.PressEnter()
	assert.Contains(t, d.View(), "NGUYỄN VĂN AN")
	d.PressEsc()
	assert.Contains(t, d.View(), "Nguyễn Văn An")
	assert.NotContains(t, d.View(), "NGUYỄN VĂN AN")

	// Esc from the list quits.
	d.PressEsc()
	assert.True(t, d.Quitting)
}
