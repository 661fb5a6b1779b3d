// Package query implements the personnel query engine: risk scoring,
// unit-closure resolution, criteria filtering, ordering, and result shaping
// over a fully materialized in-memory record collection. Everything here is
// pure with respect to its inputs; the engine never mutates records or
// criteria and returns no errors.
package query

import "github.com/vdtan/hoso/internal/domain"

// HasSecurityAlert reports whether a record carries any risk flag. It is the
// union of the independent risk predicates and is exposed standalone because
// dashboard and unit-tree aggregation call it outside the filter pipeline.
//
// A record is flagged when any of the following holds:
//   - outstanding debt
//   - a non-empty military-discipline history
//   - a non-empty civil/criminal violation history
//   - drug use
//   - gambling
//   - an active emigration process
//   - relatives living overseas
//   - any overseas trip with a violation note
func HasSecurityAlert(r *domain.PersonnelRecord) bool {
	d := &r.Detail
	if d.Finance.Debt.Flag.Bool() {
		return true
	}
	if len(d.Violations.MilitaryDiscipline) > 0 || len(d.Violations.Civil) > 0 {
		return true
	}
	if d.Violations.DrugUse.Flag.Bool() || d.Violations.Gambling.Flag.Bool() {
		return true
	}
	if d.Foreign.Emigrating.Bool() {
		return true
	}
	if len(d.Foreign.OverseasRelatives) > 0 {
		return true
	}
	for _, trip := range d.Foreign.Travels {
		if trip.ViolationNote != "" {
			return true
		}
	}
	return false
}
