package domain

import "strings"

// FilterAll is the sentinel meaning "no constraint on this dimension".
// An empty string reads the same way.
const FilterAll = "all"

// Political-status filter values.
const (
	PoliticalParty = "dang_vien"  // has a party-admission date
	PoliticalUnion = "doan_vien"  // union date, no party date
	PoliticalMass  = "quan_chung" // no party-admission date
)

// Education filter values.
const (
	EducationUniversity      = "dai_hoc"      // university tier or above
	EducationBelowUniversity = "duoi_dai_hoc" // negation of the above
	EducationGraduated       = "tot_nghiep"   // graduated flag set
)

// Marital filter values.
const (
	MaritalMarried = "da_ket_hon"
	MaritalSingle  = "doc_than"
	MaritalPartner = "co_nguoi_yeu"
)

// Children filter value.
const ChildrenYes = "co_con"

// Ethnicity filter values.
const (
	EthnicityMajority = "kinh"
	EthnicityMinority = "thieu_so"
)

// Religion filter value.
const ReligionYes = "co_ton_giao"

// Age-bucket filter values. Buckets are closed ranges; boundary years
// belong to the lower bucket.
const (
	AgeBucket18To25 = "18-25"
	AgeBucket26To30 = "26-30"
	AgeBucket31To40 = "31-40"
	AgeBucketOver40 = "40+"
)

// Security-category filter values.
const (
	SecurityAlert      = "canh_bao" // union of all risk predicates
	SecurityDebt       = "no_xau"
	SecurityDiscipline = "ky_luat"
	SecurityCivil      = "vi_pham"
	SecurityDrugs      = "ma_tuy"
	SecurityGambling   = "co_bac"
	SecuritySmoking    = "thuoc_la"
	SecurityOverseas   = "yeu_to_nuoc_ngoai"
	SecurityPassport   = "ho_chieu"
)

// Business filter values.
const (
	BusinessTrade      = "kinh_doanh"
	BusinessInvestment = "dau_tu"
)

// Health-classification filter values. Tiers 4 and 5 are merged into one
// filter value.
const (
	HealthTier1     = "loai_1"
	HealthTier2     = "loai_2"
	HealthTier3     = "loai_3"
	HealthTier4And5 = "loai_4_5"
)

// Overseas-status filter values.
const (
	OverseasTraveled   = "da_di_nuoc_ngoai"
	OverseasEmigrating = "dang_xuat_canh"
)

// FilterCriteria configures one query. Every field is optional; FilterAll or
// an empty string disables that dimension. Criteria are built fresh per
// query and never persisted or mutated by the engine.
type FilterCriteria struct {
	Keyword     string
	UnitID      string
	Rank        string
	Political   string
	Education   string
	Marital     string
	HasChildren string
	Ethnicity   string
	Religion    string
	AgeBucket   string
	Security    string
	Business    string
	Health      string
	Overseas    string
}

// IsUnset reports whether a criteria value imposes no constraint.
func IsUnset(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, FilterAll)
}
