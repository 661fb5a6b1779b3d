package query

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/vdtan/hoso/internal/domain"
)

// SortBy selects the ordering applied to filtered records.
type SortBy string

const (
	// SortByRecent orders by creation timestamp, newest first. This is the
	// default ordering.
	SortByRecent SortBy = ""
	// SortByName orders by the given name (last token of the full name)
	// under Vietnamese collation, falling back to the full name on ties.
	SortByName SortBy = "name"
	// SortByAge orders by birth date descending, youngest first. Records
	// with no parseable birth date sort last.
	SortByAge SortBy = "age"
	// SortByEnlistment orders by enlistment date descending.
	SortByEnlistment SortBy = "enlistment"
)

// Sort orders records in place by the requested key. Ties beyond the
// documented tie-breaks keep the incoming order. A fresh collator is built
// per call because collate.Collator carries internal buffers and the engine
// may run concurrently.
func Sort(records []*domain.PersonnelRecord, by SortBy) {
	switch by {
	case SortByName:
		cl := collate.New(language.Vietnamese)
		sort.SliceStable(records, func(i, j int) bool {
			a, b := records[i], records[j]
			if c := cl.CompareString(a.GivenName(), b.GivenName()); c != 0 {
				return c < 0
			}
			return cl.CompareString(a.FullName, b.FullName) < 0
		})
	case SortByAge:
		sort.SliceStable(records, func(i, j int) bool {
			return parsedOrZero(records[i].BirthDate).After(parsedOrZero(records[j].BirthDate))
		})
	case SortByEnlistment:
		sort.SliceStable(records, func(i, j int) bool {
			return parsedOrZero(records[i].EnlistmentDate).After(parsedOrZero(records[j].EnlistmentDate))
		})
	default:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		})
	}
}

// parsedOrZero maps an unparseable date to the zero time, which places it
// last under descending order.
func parsedOrZero(s string) time.Time {
	t, _ := domain.ParseDate(s)
	return t
}
