package query

import (
	"time"

	"github.com/vdtan/hoso/internal/domain"
)

// Options configures one engine run beyond the filter criteria.
type Options struct {
	SortBy    SortBy
	Unlimited bool
	// Now overrides the reference time for age derivation; zero means
	// time.Now().
	Now time.Time
}

// Run executes the full pipeline: filter, sort, shape. It is the single
// entry point shared by search, export, and statistics so all call sites
// order and cap results identically.
func Run(records []*domain.PersonnelRecord, units []*domain.Unit, c domain.FilterCriteria, opts Options) []*domain.PersonnelRecord {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	out := FilterAt(records, c, units, now)
	Sort(out, opts.SortBy)
	return Shape(out, opts.Unlimited)
}
