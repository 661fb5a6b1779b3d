package importer

import (
	"fmt"

	"github.com/vdtan/hoso/internal/domain"
)

// ValidateUnits checks the unit list for structural errors. Unit problems
// abort the whole import because records reference units by ref.
// Returns the set of valid refs and all errors found.
func ValidateUnits(units []UnitImport) (map[string]bool, []error) {
	refs := make(map[string]bool)
	var errs []error

	for i, u := range units {
		prefix := fmt.Sprintf("don_vi[%d]", i)

		if u.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if refs[u.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, u.Ref))
		} else {
			refs[u.Ref] = true
		}

		if u.Name == "" {
			errs = append(errs, fmt.Errorf("%s.ten is required", prefix))
		}

		if u.ParentRef != nil && *u.ParentRef != "" && !refs[*u.ParentRef] {
			errs = append(errs, fmt.Errorf("%s.parent_ref: ref %q not found (must appear earlier in don_vi list)", prefix, *u.ParentRef))
		}
	}

	return refs, errs
}

// ValidateRecord checks one record entry. A failing record is skipped and
// reported; it never aborts the rest of the file. Admission and enlistment
// dates are free text in legacy data and are not checked here; the birth
// date is, because an unparseable birth date silently drops the record out
// of every age bucket.
func ValidateRecord(i int, r *RecordImport, unitRefs map[string]bool) []error {
	prefix := fmt.Sprintf("ho_so[%d]", i)
	var errs []error

	if r.FullName == "" {
		errs = append(errs, fmt.Errorf("%s.ho_ten is required", prefix))
	}
	if r.UnitRef != "" && !unitRefs[r.UnitRef] {
		errs = append(errs, fmt.Errorf("%s.don_vi_ref: ref %q not found in don_vi", prefix, r.UnitRef))
	}
	if r.BirthDate != "" {
		if _, ok := domain.ParseDate(r.BirthDate); !ok {
			errs = append(errs, fmt.Errorf("%s.ngay_sinh: invalid date %q (expected YYYY-MM-DD or DD/MM/YYYY)", prefix, r.BirthDate))
		}
	}

	return errs
}
