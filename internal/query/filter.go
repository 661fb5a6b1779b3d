package query

import (
	"strings"
	"time"

	"github.com/vdtan/hoso/internal/domain"
)

// Filter narrows records by every enabled dimension of the criteria, in a
// fixed stage order. All stages are independent predicates, so the order
// affects only how fast the set shrinks, never the final membership. A
// disabled stage (empty or "all") costs nothing. The input slice, records,
// and criteria are never mutated.
func Filter(records []*domain.PersonnelRecord, c domain.FilterCriteria, units []*domain.Unit) []*domain.PersonnelRecord {
	return FilterAt(records, c, units, time.Now())
}

// FilterAt is Filter with an explicit "now" for age derivation, so age
// buckets are reproducible in tests.
func FilterAt(records []*domain.PersonnelRecord, c domain.FilterCriteria, units []*domain.Unit, now time.Time) []*domain.PersonnelRecord {
	// Always a fresh slice; later stages (sort) reorder in place and must
	// never touch the caller's collection.
	out := make([]*domain.PersonnelRecord, len(records))
	copy(out, records)

	if kw := strings.TrimSpace(c.Keyword); kw != "" {
		out = keep(out, keywordPredicate(kw))
	}
	if !domain.IsUnset(c.UnitID) {
		member := DescendantIDs(units, c.UnitID)
		out = keep(out, func(r *domain.PersonnelRecord) bool {
			return member[r.UnitID]
		})
	}
	if !domain.IsUnset(c.Rank) {
		out = keep(out, func(r *domain.PersonnelRecord) bool {
			return r.Rank == c.Rank
		})
	}
	if !domain.IsUnset(c.Political) {
		out = keep(out, politicalPredicate(c.Political))
	}
	if !domain.IsUnset(c.Education) {
		out = keep(out, educationPredicate(c.Education))
	}
	if !domain.IsUnset(c.Marital) {
		out = keep(out, maritalPredicate(c.Marital))
	}
	if !domain.IsUnset(c.HasChildren) {
		out = keep(out, childrenPredicate(c.HasChildren))
	}
	if !domain.IsUnset(c.Ethnicity) {
		out = keep(out, ethnicityPredicate(c.Ethnicity))
	}
	if !domain.IsUnset(c.Religion) {
		out = keep(out, religionPredicate(c.Religion))
	}
	if !domain.IsUnset(c.AgeBucket) {
		out = keep(out, ageBucketPredicate(c.AgeBucket, now))
	}
	if !domain.IsUnset(c.Security) {
		out = keep(out, securityPredicate(c.Security))
	}
	if !domain.IsUnset(c.Business) {
		out = keep(out, businessPredicate(c.Business))
	}
	if !domain.IsUnset(c.Health) {
		out = keep(out, healthPredicate(c.Health))
	}
	if !domain.IsUnset(c.Overseas) {
		out = keep(out, overseasPredicate(c.Overseas))
	}

	return out
}

// keep returns the records satisfying pred, always in a fresh slice so the
// caller's input is never aliased by later stages.
func keep(records []*domain.PersonnelRecord, pred func(*domain.PersonnelRecord) bool) []*domain.PersonnelRecord {
	out := make([]*domain.PersonnelRecord, 0, len(records))
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// keywordPredicate matches the keyword case-insensitively against name,
// alternate name, national id, or phone. Any one hit keeps the record.
func keywordPredicate(keyword string) func(*domain.PersonnelRecord) bool {
	kw := strings.ToLower(keyword)
	return func(r *domain.PersonnelRecord) bool {
		for _, field := range []string{r.FullName, r.AltName, r.NationalID, r.Phone} {
			if strings.Contains(strings.ToLower(field), kw) {
				return true
			}
		}
		return false
	}
}

// politicalPredicate implements the three mutually exclusive categories:
// party member, youth-union member, and unaffiliated mass.
func politicalPredicate(value string) func(*domain.PersonnelRecord) bool {
	switch value {
	case domain.PoliticalParty:
		return func(r *domain.PersonnelRecord) bool { return r.IsPartyMember() }
	case domain.PoliticalUnion:
		return func(r *domain.PersonnelRecord) bool { return r.IsUnionMember() }
	case domain.PoliticalMass:
		return func(r *domain.PersonnelRecord) bool { return !r.IsPartyMember() }
	default:
		return keepAll
	}
}

func educationPredicate(value string) func(*domain.PersonnelRecord) bool {
	switch value {
	case domain.EducationUniversity:
		return func(r *domain.PersonnelRecord) bool { return r.IsUniversityTier() }
	case domain.EducationBelowUniversity:
		return func(r *domain.PersonnelRecord) bool { return !r.IsUniversityTier() }
	case domain.EducationGraduated:
		return func(r *domain.PersonnelRecord) bool { return r.Graduated.Bool() }
	default:
		return keepAll
	}
}

func maritalPredicate(value string) func(*domain.PersonnelRecord) bool {
	switch value {
	case domain.MaritalMarried:
		return func(r *domain.PersonnelRecord) bool { return r.IsMarried() }
	case domain.MaritalSingle:
		return func(r *domain.PersonnelRecord) bool { return !r.IsMarried() }
	case domain.MaritalPartner:
		return func(r *domain.PersonnelRecord) bool { return r.HasPartner() }
	default:
		return keepAll
	}
}

func childrenPredicate(value string) func(*domain.PersonnelRecord) bool {
	switch value {
	case domain.ChildrenYes:
		return func(r *domain.PersonnelRecord) bool { return r.HasChildren() }
	default:
		return keepAll
	}
}

func religionPredicate(value string) func(*domain.PersonnelRecord) bool {
	switch value {
	case domain.ReligionYes:
		return func(r *domain.PersonnelRecord) bool { return r.HasReligion() }
	default:
		return keepAll
	}
}

func ethnicityPredicate(value string) func(*domain.PersonnelRecord) bool {
	switch value {
	case domain.EthnicityMajority:
		return func(r *domain.PersonnelRecord) bool { return r.IsMajorityEthnic() }
	case domain.EthnicityMinority:
		return func(r *domain.PersonnelRecord) bool {
			return strings.TrimSpace(r.Ethnicity) != "" && !r.IsMajorityEthnic()
		}
	default:
		return keepAll
	}
}

// ageBucketPredicate derives a whole-year age and checks bucket membership.
// A record with no parseable birth year has age 0, which matches no bucket.
func ageBucketPredicate(value string, now time.Time) func(*domain.PersonnelRecord) bool {
	var lo, hi int
	switch value {
	case domain.AgeBucket18To25:
		lo, hi = 18, 25
	case domain.AgeBucket26To30:
		lo, hi = 26, 30
	case domain.AgeBucket31To40:
		lo, hi = 31, 40
	case domain.AgeBucketOver40:
		lo, hi = 41, 1<<31-1
	default:
		return keepAll
	}
	return func(r *domain.PersonnelRecord) bool {
		age := r.Age(now)
		return age >= lo && age <= hi
	}
}

func securityPredicate(value string) func(*domain.PersonnelRecord) bool {
	switch value {
	case domain.SecurityAlert:
		return HasSecurityAlert
	case domain.SecurityDebt:
		return func(r *domain.PersonnelRecord) bool { return r.Detail.Finance.Debt.Flag.Bool() }
	case domain.SecurityDiscipline:
		return func(r *domain.PersonnelRecord) bool { return len(r.Detail.Violations.MilitaryDiscipline) > 0 }
	case domain.SecurityCivil:
		return func(r *domain.PersonnelRecord) bool { return len(r.Detail.Violations.Civil) > 0 }
	case domain.SecurityDrugs:
		return func(r *domain.PersonnelRecord) bool { return r.Detail.Violations.DrugUse.Flag.Bool() }
	case domain.SecurityGambling:
		return func(r *domain.PersonnelRecord) bool { return r.Detail.Violations.Gambling.Flag.Bool() }
	case domain.SecuritySmoking:
		return func(r *domain.PersonnelRecord) bool { return r.Detail.Violations.Smoking.Flag.Bool() }
	case domain.SecurityOverseas:
		return func(r *domain.PersonnelRecord) bool {
			return len(r.Detail.Foreign.OverseasRelatives) > 0 || r.Detail.Foreign.Emigrating.Bool()
		}
	case domain.SecurityPassport:
		return func(r *domain.PersonnelRecord) bool { return r.Detail.Foreign.HasPassport.Bool() }
	default:
		return keepAll
	}
}

func businessPredicate(value string) func(*domain.PersonnelRecord) bool {
	switch value {
	case domain.BusinessTrade:
		return func(r *domain.PersonnelRecord) bool { return r.Detail.Finance.HasBusiness.Bool() }
	case domain.BusinessInvestment:
		return func(r *domain.PersonnelRecord) bool { return r.Detail.Finance.HasInvestment.Bool() }
	default:
		return keepAll
	}
}

// healthPredicate is a string-contains match on the stored classification
// label. The loai_4_5 value matches both tier 4 and tier 5.
func healthPredicate(value string) func(*domain.PersonnelRecord) bool {
	var labels []string
	switch value {
	case domain.HealthTier1:
		labels = []string{"loại 1"}
	case domain.HealthTier2:
		labels = []string{"loại 2"}
	case domain.HealthTier3:
		labels = []string{"loại 3"}
	case domain.HealthTier4And5:
		labels = []string{"loại 4", "loại 5"}
	default:
		return keepAll
	}
	return func(r *domain.PersonnelRecord) bool {
		got := strings.ToLower(r.Detail.Health.Classification)
		for _, label := range labels {
			if strings.Contains(got, label) {
				return true
			}
		}
		return false
	}
}

func overseasPredicate(value string) func(*domain.PersonnelRecord) bool {
	switch value {
	case domain.OverseasTraveled:
		return func(r *domain.PersonnelRecord) bool { return len(r.Detail.Foreign.Travels) > 0 }
	case domain.OverseasEmigrating:
		return func(r *domain.PersonnelRecord) bool { return r.Detail.Foreign.Emigrating.Bool() }
	default:
		return keepAll
	}
}

func keepAll(*domain.PersonnelRecord) bool { return true }
