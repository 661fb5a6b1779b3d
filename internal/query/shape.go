package query

import "github.com/vdtan/hoso/internal/domain"

// ResultCap is the hard row limit applied to non-unlimited queries. It is a
// cap for UI responsiveness, not a page cursor: callers that need everything
// (export, statistics) must ask for unlimited output.
const ResultCap = 200

// Shape prepares filtered, sorted records for rendering: each record's
// avatar is replaced by its precomputed thumbnail (empty when none exists;
// the full image is fetched by id when a single record is opened), and the
// list is truncated to ResultCap unless unlimited. Records are copied so
// the caller's collection is never mutated.
func Shape(records []*domain.PersonnelRecord, unlimited bool) []*domain.PersonnelRecord {
	n := len(records)
	if !unlimited && n > ResultCap {
		n = ResultCap
	}
	out := make([]*domain.PersonnelRecord, n)
	for i := 0; i < n; i++ {
		cp := *records[i]
		cp.Avatar = cp.Thumbnail
		out[i] = &cp
	}
	return out
}
