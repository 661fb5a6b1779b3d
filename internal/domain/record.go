package domain

import (
	"strings"
	"time"
)

// BiographyEntry is one row of the personal-history timeline.
type BiographyEntry struct {
	Period string `json:"thoi_gian"`
	Role   string `json:"chuc_vu"`
	Place  string `json:"don_vi"`
}

// SocialAccount is one social-media account attached to a record.
type SocialAccount struct {
	Platform string `json:"nen_tang"`
	Handle   string `json:"tai_khoan"`
	Phone    string `json:"so_dien_thoai"`
}

// Relative describes one family member or related person. The Relationship
// label is free text as entered ("bố", "mẹ", "con trai", "anh ruột", ...).
type Relative struct {
	Name         string `json:"ho_ten"`
	Relationship string `json:"quan_he"`
	BirthYear    string `json:"nam_sinh"`
	Occupation   string `json:"nghe_nghiep"`
	Residence    string `json:"cho_o"`
}

// Family groups marital and family-relation data. Marriage appears both as
// an explicit flag and as a structured spouse object in older records; both
// are kept and read through the record accessors.
type Family struct {
	Married    FlexBool   `json:"da_ket_hon"`
	Spouse     *Relative  `json:"vo_chong,omitempty"`
	Children   []Relative `json:"con_cai,omitempty"`
	HasPartner FlexBool   `json:"co_nguoi_yeu"`
	Partners   []Relative `json:"nguoi_yeu,omitempty"`
	Relatives  []Relative `json:"nguoi_than,omitempty"`
	Context    string     `json:"hoan_canh,omitempty"`
}

// TravelEntry is one overseas trip in the travel history.
type TravelEntry struct {
	Country       string `json:"quoc_gia"`
	Period        string `json:"thoi_gian"`
	Purpose       string `json:"muc_dich"`
	ViolationNote string `json:"vi_pham,omitempty"`
}

// ForeignRelations groups the overseas-related data of a record.
type ForeignRelations struct {
	OverseasRelatives []Relative    `json:"than_nhan_nuoc_ngoai,omitempty"`
	Travels           []TravelEntry `json:"lich_su_di_lai,omitempty"`
	HasPassport       FlexBool      `json:"ho_chieu"`
	Emigrating        FlexBool      `json:"dang_xuat_canh"`
}

// ViolationFlag is a flagged condition with optional free-text detail.
type ViolationFlag struct {
	Flag    FlexBool `json:"co_khong"`
	Details string   `json:"chi_tiet,omitempty"`
}

// DisciplineEntry is one entry in a violation or discipline list.
type DisciplineEntry struct {
	Date   string `json:"thoi_gian"`
	Form   string `json:"hinh_thuc"`
	Reason string `json:"ly_do"`
}

// Violations groups the violation-history data of a record.
type Violations struct {
	LocalInfraction    ViolationFlag     `json:"vi_pham_dia_phuong"`
	Gambling           ViolationFlag     `json:"co_bac"`
	DrugUse            ViolationFlag     `json:"ma_tuy"`
	Smoking            ViolationFlag     `json:"thuoc_la"`
	MilitaryDiscipline []DisciplineEntry `json:"ky_luat_quan_doi,omitempty"`
	Civil              []DisciplineEntry `json:"vi_pham_phap_luat,omitempty"`
	OverseasNote       string            `json:"vi_pham_nuoc_ngoai,omitempty"`
}

// Finance groups debt and business data.
type Finance struct {
	Debt          ViolationFlag `json:"no_xau"`
	HasBusiness   FlexBool      `json:"kinh_doanh"`
	HasInvestment FlexBool      `json:"dau_tu"`
}

// Health groups the health-classification data.
type Health struct {
	Classification string `json:"phan_loai,omitempty"` // "Loại 1".."Loại 5"
	CovidHistory   string `json:"lich_su_covid,omitempty"`
}

// RecordDetail holds the nested, independently-optional groups of a record.
// It is stored as one JSON document; decoding it runs all legacy-encoding
// normalization (FlexBool) in one place.
type RecordDetail struct {
	Biography      []BiographyEntry `json:"tieu_su,omitempty"`
	SocialAccounts []SocialAccount  `json:"mang_xa_hoi,omitempty"`
	Living         string           `json:"noi_o_hien_nay,omitempty"`
	Family         Family           `json:"gia_dinh"`
	Foreign        ForeignRelations `json:"yeu_to_nuoc_ngoai"`
	Violations     Violations       `json:"vi_pham"`
	Finance        Finance          `json:"kinh_te"`
	Health         Health           `json:"suc_khoe"`
	Aspirations    string           `json:"tam_tu_nguyen_vong,omitempty"`
	LeaveTaken     int              `json:"phep_da_nghi,omitempty"`
	LeaveEntitled  int              `json:"phep_tieu_chuan,omitempty"`
}

// PersonnelRecord is the aggregate personnel entity. The ID is assigned at
// creation and immutable. UnitName is a snapshot of the unit's display name
// taken when the record is saved; it may drift after a unit rename.
type PersonnelRecord struct {
	ID string

	FullName   string
	AltName    string
	BirthDate  string // YYYY-MM-DD or legacy DD/MM/YYYY
	NationalID string
	Rank       string
	Position   string
	UnitID     string
	UnitName   string
	Phone      string
	Birthplace string
	Residence  string
	Ethnicity  string
	Religion   string
	Education  string
	Graduated  FlexBool
	Talents    string

	PartyAdmissionDate string
	UnionAdmissionDate string
	EnlistmentDate     string

	Avatar    string
	Thumbnail string

	Detail RecordDetail

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EthnicMajority is the majority ethnic-group name; everything else counts
// as a minority when non-empty.
const EthnicMajority = "Kinh"

// ReligionNone is the sentinel meaning "no religion".
const ReligionNone = "Không"

// childMarker matches relationship labels such as "con trai" / "con gái".
const childMarker = "con"

// universityMarkers are the education-level substrings that count as
// university tier or above.
var universityMarkers = []string{"đại học", "cao đẳng", "thạc sĩ", "tiến sĩ"}

// IsPartyMember reports whether the record has a party-admission date.
func (r *PersonnelRecord) IsPartyMember() bool {
	return strings.TrimSpace(r.PartyAdmissionDate) != ""
}

// IsUnionMember reports whether the record is a youth-union member: it has a
// union-admission date and has not been admitted to the party.
func (r *PersonnelRecord) IsUnionMember() bool {
	return strings.TrimSpace(r.UnionAdmissionDate) != "" && !r.IsPartyMember()
}

// IsMarried reports marriage from either the explicit flag or the presence
// of a structured spouse entry.
func (r *PersonnelRecord) IsMarried() bool {
	return r.Detail.Family.Married.Bool() || r.Detail.Family.Spouse != nil
}

// HasPartner reports a romantic partner from either the explicit flag or a
// non-empty partner list.
func (r *PersonnelRecord) HasPartner() bool {
	return r.Detail.Family.HasPartner.Bool() || len(r.Detail.Family.Partners) > 0
}

// HasChildren reports children from either the children list or any
// relative whose relationship label carries the child marker.
func (r *PersonnelRecord) HasChildren() bool {
	if len(r.Detail.Family.Children) > 0 {
		return true
	}
	for _, rel := range r.Detail.Family.Relatives {
		if strings.Contains(strings.ToLower(rel.Relationship), childMarker) {
			return true
		}
	}
	return false
}

// IsUniversityTier reports whether the education level contains any
// university-or-above marker, case-insensitively.
func (r *PersonnelRecord) IsUniversityTier() bool {
	edu := strings.ToLower(r.Education)
	for _, m := range universityMarkers {
		if strings.Contains(edu, m) {
			return true
		}
	}
	return false
}

// IsMajorityEthnic reports whether the ethnicity equals the majority group.
func (r *PersonnelRecord) IsMajorityEthnic() bool {
	return strings.EqualFold(strings.TrimSpace(r.Ethnicity), EthnicMajority)
}

// HasReligion reports a non-empty religion other than the "none" sentinel.
func (r *PersonnelRecord) HasReligion() bool {
	rel := strings.TrimSpace(r.Religion)
	return rel != "" && !strings.EqualFold(rel, ReligionNone)
}

// Age returns the record's whole-year age at now, or 0 when the birth date
// has no parseable year.
func (r *PersonnelRecord) Age(now time.Time) int {
	return Age(r.BirthDate, now)
}

// GivenName returns the last whitespace-delimited token of the full name.
// Vietnamese names sort by given name, which is written last.
func (r *PersonnelRecord) GivenName() string {
	fields := strings.Fields(r.FullName)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// DisplayName returns the full name, falling back to the alternate name.
func (r *PersonnelRecord) DisplayName() string {
	return CoalesceStr(r.FullName, r.AltName)
}
