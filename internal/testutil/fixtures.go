package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/vdtan/hoso/internal/domain"
)

// RecordOption mutates a test record under construction.
type RecordOption func(*domain.PersonnelRecord)

func WithBirthDate(d string) RecordOption {
	return func(r *domain.PersonnelRecord) { r.BirthDate = d }
}

func WithRank(rank string) RecordOption {
	return func(r *domain.PersonnelRecord) { r.Rank = rank }
}

func WithUnit(id, name string) RecordOption {
	return func(r *domain.PersonnelRecord) {
		r.UnitID = id
		r.UnitName = name
	}
}

func WithNationalID(id string) RecordOption {
	return func(r *domain.PersonnelRecord) { r.NationalID = id }
}

func WithPhone(phone string) RecordOption {
	return func(r *domain.PersonnelRecord) { r.Phone = phone }
}

func WithEthnicity(e string) RecordOption {
	return func(r *domain.PersonnelRecord) { r.Ethnicity = e }
}

func WithReligion(rel string) RecordOption {
	return func(r *domain.PersonnelRecord) { r.Religion = rel }
}

func WithEducation(edu string) RecordOption {
	return func(r *domain.PersonnelRecord) { r.Education = edu }
}

func WithPartyDate(d string) RecordOption {
	return func(r *domain.PersonnelRecord) { r.PartyAdmissionDate = d }
}

func WithUnionDate(d string) RecordOption {
	return func(r *domain.PersonnelRecord) { r.UnionAdmissionDate = d }
}

func WithEnlistmentDate(d string) RecordOption {
	return func(r *domain.PersonnelRecord) { r.EnlistmentDate = d }
}

func WithCreatedAt(t time.Time) RecordOption {
	return func(r *domain.PersonnelRecord) {
		r.CreatedAt = t
		r.UpdatedAt = t
	}
}

func WithThumbnail(path string) RecordOption {
	return func(r *domain.PersonnelRecord) { r.Thumbnail = path }
}

func WithAvatar(path string) RecordOption {
	return func(r *domain.PersonnelRecord) { r.Avatar = path }
}

func WithDebt() RecordOption {
	return func(r *domain.PersonnelRecord) { r.Detail.Finance.Debt.Flag = true }
}

func WithDrugUse() RecordOption {
	return func(r *domain.PersonnelRecord) { r.Detail.Violations.DrugUse.Flag = true }
}

func WithGambling() RecordOption {
	return func(r *domain.PersonnelRecord) { r.Detail.Violations.Gambling.Flag = true }
}

func WithSmoking() RecordOption {
	return func(r *domain.PersonnelRecord) { r.Detail.Violations.Smoking.Flag = true }
}

func WithDiscipline(form string) RecordOption {
	return func(r *domain.PersonnelRecord) {
		r.Detail.Violations.MilitaryDiscipline = append(r.Detail.Violations.MilitaryDiscipline,
			domain.DisciplineEntry{Date: "2023-01-10", Form: form})
	}
}

func WithCivilViolation(reason string) RecordOption {
	return func(r *domain.PersonnelRecord) {
		r.Detail.Violations.Civil = append(r.Detail.Violations.Civil,
			domain.DisciplineEntry{Date: "2022-08-02", Reason: reason})
	}
}

func WithSpouse(name string) RecordOption {
	return func(r *domain.PersonnelRecord) {
		r.Detail.Family.Spouse = &domain.Relative{Name: name, Relationship: "vợ"}
	}
}

func WithChild(name string) RecordOption {
	return func(r *domain.PersonnelRecord) {
		r.Detail.Family.Children = append(r.Detail.Family.Children, domain.Relative{Name: name})
	}
}

func WithOverseasRelative(name, country string) RecordOption {
	return func(r *domain.PersonnelRecord) {
		r.Detail.Foreign.OverseasRelatives = append(r.Detail.Foreign.OverseasRelatives,
			domain.Relative{Name: name, Residence: country, Relationship: "anh ruột"})
	}
}

func WithTravel(country, violationNote string) RecordOption {
	return func(r *domain.PersonnelRecord) {
		r.Detail.Foreign.Travels = append(r.Detail.Foreign.Travels,
			domain.TravelEntry{Country: country, Period: "2019", ViolationNote: violationNote})
	}
}

func WithEmigrating() RecordOption {
	return func(r *domain.PersonnelRecord) { r.Detail.Foreign.Emigrating = true }
}

func WithPassport() RecordOption {
	return func(r *domain.PersonnelRecord) { r.Detail.Foreign.HasPassport = true }
}

func WithBusiness() RecordOption {
	return func(r *domain.PersonnelRecord) { r.Detail.Finance.HasBusiness = true }
}

func WithInvestment() RecordOption {
	return func(r *domain.PersonnelRecord) { r.Detail.Finance.HasInvestment = true }
}

func WithHealthClass(label string) RecordOption {
	return func(r *domain.PersonnelRecord) { r.Detail.Health.Classification = label }
}

// NewTestRecord builds a plausible baseline record and applies the options.
func NewTestRecord(fullName string, opts ...RecordOption) *domain.PersonnelRecord {
	now := time.Now().UTC()
	r := &domain.PersonnelRecord{
		ID:        uuid.New().String(),
		FullName:  fullName,
		BirthDate: "1995-02-11",
		Rank:      "Binh nhất",
		Ethnicity: domain.EthnicMajority,
		Religion:  domain.ReligionNone,
		Education: "12/12",
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewTestUnit builds a unit; parentID may be empty for a root.
func NewTestUnit(id, name, parentID string) *domain.Unit {
	now := time.Now().UTC()
	u := &domain.Unit{
		ID:        id,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if parentID != "" {
		u.ParentID = &parentID
	}
	return u
}
