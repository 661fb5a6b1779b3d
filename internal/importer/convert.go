package importer

import (
	"time"

	"github.com/google/uuid"

	"github.com/vdtan/hoso/internal/domain"
)

// ConvertUnits transforms validated unit entries into domain units and
// returns the ref-to-id map used to resolve record unit references.
func ConvertUnits(units []UnitImport, now time.Time) ([]*domain.Unit, map[string]string) {
	refMap := make(map[string]string, len(units))
	out := make([]*domain.Unit, 0, len(units))

	for _, u := range units {
		realID := uuid.New().String()
		refMap[u.Ref] = realID

		var parentID *string
		if u.ParentRef != nil && *u.ParentRef != "" {
			if pid, ok := refMap[*u.ParentRef]; ok {
				parentID = &pid
			}
		}

		out = append(out, &domain.Unit{
			ID:        realID,
			Name:      u.Name,
			ParentID:  parentID,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	return out, refMap
}

// ConvertRecord transforms one validated record entry into a domain record.
// unitNames maps unit id to display name for the denormalized snapshot.
func ConvertRecord(r *RecordImport, refMap map[string]string, unitNames map[string]string, now time.Time) *domain.PersonnelRecord {
	unitID := ""
	unitName := ""
	if r.UnitRef != "" {
		if id, ok := refMap[r.UnitRef]; ok {
			unitID = id
			unitName = unitNames[id]
		}
	}

	return &domain.PersonnelRecord{
		ID:         uuid.New().String(),
		FullName:   r.FullName,
		AltName:    r.AltName,
		BirthDate:  r.BirthDate,
		NationalID: r.NationalID,
		Rank:       r.Rank,
		Position:   r.Position,
		UnitID:     unitID,
		UnitName:   unitName,
		Phone:      r.Phone,
		Birthplace: r.Birthplace,
		Residence:  r.Residence,
		Ethnicity:  r.Ethnicity,
		Religion:   r.Religion,
		Education:  r.Education,
		Graduated:  r.Graduated,
		Talents:    r.Talents,

		PartyAdmissionDate: r.PartyAdmissionDate,
		UnionAdmissionDate: r.UnionAdmissionDate,
		EnlistmentDate:     r.EnlistmentDate,

		Avatar:    r.Avatar,
		Thumbnail: r.Thumbnail,

		Detail: r.Detail,

		CreatedAt: now,
		UpdatedAt: now,
	}
}
