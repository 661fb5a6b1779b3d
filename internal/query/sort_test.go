package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vdtan/hoso/internal/domain"
	"github.com/vdtan/hoso/internal/testutil"
)

func TestSort_ByNameLastToken(t *testing.T) {
	records := []*domain.PersonnelRecord{
		testutil.NewTestRecord("Trần Văn Dũng"),
		testutil.NewTestRecord("Nguyễn Văn Anh"),
		testutil.NewTestRecord("Lê Thị Châu"),
	}

	Sort(records, SortByName)

	assert.Equal(t, []string{"Nguyễn Văn Anh", "Lê Thị Châu", "Trần Văn Dũng"}, names(records),
		"ordering is by given name (last token), not surname")
}

func TestSort_ByNameTieBreakFullName(t *testing.T) {
	records := []*domain.PersonnelRecord{
		testutil.NewTestRecord("Trần Văn Anh"),
		testutil.NewTestRecord("Nguyễn Văn Anh"),
	}

	Sort(records, SortByName)

	// Same given name "Anh": records stay adjacent and fall back to
	// full-name order.
	assert.Equal(t, []string{"Nguyễn Văn Anh", "Trần Văn Anh"}, names(records))
}

func TestSort_ByNameVietnameseCollation(t *testing.T) {
	records := []*domain.PersonnelRecord{
		testutil.NewTestRecord("Nguyễn Văn Đức"),
		testutil.NewTestRecord("Nguyễn Văn Dương"),
	}

	Sort(records, SortByName)

	// Under Vietnamese collation Đ orders after D.
	assert.Equal(t, []string{"Nguyễn Văn Dương", "Nguyễn Văn Đức"}, names(records))
}

func TestSort_ByAgeYoungestFirst(t *testing.T) {
	records := []*domain.PersonnelRecord{
		testutil.NewTestRecord("Già", testutil.WithBirthDate("1984-01-01")),
		testutil.NewTestRecord("Trẻ", testutil.WithBirthDate("2001-09-09")),
		testutil.NewTestRecord("Không rõ", testutil.WithBirthDate("???")),
	}

	Sort(records, SortByAge)

	assert.Equal(t, []string{"Trẻ", "Già", "Không rõ"}, names(records),
		"unparseable birth dates sort last")
}

func TestSort_ByAgeMixedLayouts(t *testing.T) {
	records := []*domain.PersonnelRecord{
		testutil.NewTestRecord("ISO", testutil.WithBirthDate("1996-04-01")),
		testutil.NewTestRecord("Legacy", testutil.WithBirthDate("01/04/1998")),
	}

	Sort(records, SortByAge)

	assert.Equal(t, []string{"Legacy", "ISO"}, names(records),
		"both date layouts go through the same parse")
}

func TestSort_ByEnlistmentDescending(t *testing.T) {
	records := []*domain.PersonnelRecord{
		testutil.NewTestRecord("Cũ", testutil.WithEnlistmentDate("2018-02-01")),
		testutil.NewTestRecord("Mới", testutil.WithEnlistmentDate("2023-02-01")),
	}

	Sort(records, SortByEnlistment)

	assert.Equal(t, []string{"Mới", "Cũ"}, names(records))
}

func TestSort_DefaultIsCreationDescending(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	records := []*domain.PersonnelRecord{
		testutil.NewTestRecord("Đầu tiên", testutil.WithCreatedAt(base)),
		testutil.NewTestRecord("Mới nhất", testutil.WithCreatedAt(base.Add(48*time.Hour))),
		testutil.NewTestRecord("Giữa", testutil.WithCreatedAt(base.Add(24*time.Hour))),
	}

	Sort(records, SortByRecent)

	assert.Equal(t, []string{"Mới nhất", "Giữa", "Đầu tiên"}, names(records))
}

func TestSort_StableOnTies(t *testing.T) {
	at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	records := []*domain.PersonnelRecord{
		testutil.NewTestRecord("Một", testutil.WithCreatedAt(at)),
		testutil.NewTestRecord("Hai", testutil.WithCreatedAt(at)),
		testutil.NewTestRecord("Ba", testutil.WithCreatedAt(at)),
	}

	Sort(records, SortByRecent)

	assert.Equal(t, []string{"Một", "Hai", "Ba"}, names(records))
}
