package importer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/vdtan/hoso/internal/domain"
)

// ImportSchema is the top-level JSON structure for bulk import. Units are
// optional; records may reference units by ref or carry no unit at all.
type ImportSchema struct {
	Units   []UnitImport   `json:"don_vi,omitempty"`
	Records []RecordImport `json:"ho_so"`
}

// UnitImport defines one organizational unit in the import file. ParentRef
// must reference a unit appearing earlier in the list.
type UnitImport struct {
	Ref       string  `json:"ref"`
	ParentRef *string `json:"parent_ref,omitempty"`
	Name      string  `json:"ten"`
}

// RecordImport defines one personnel record in the import file. The nested
// detail document is decoded straight into domain.RecordDetail, so legacy
// boolean encodings are normalized the same way stored records are.
type RecordImport struct {
	FullName   string          `json:"ho_ten"`
	AltName    string          `json:"ten_khac,omitempty"`
	BirthDate  string          `json:"ngay_sinh,omitempty"`
	NationalID string          `json:"cccd,omitempty"`
	Rank       string          `json:"cap_bac,omitempty"`
	Position   string          `json:"chuc_vu,omitempty"`
	UnitRef    string          `json:"don_vi_ref,omitempty"`
	Phone      string          `json:"so_dien_thoai,omitempty"`
	Birthplace string          `json:"que_quan,omitempty"`
	Residence  string          `json:"noi_o,omitempty"`
	Ethnicity  string          `json:"dan_toc,omitempty"`
	Religion   string          `json:"ton_giao,omitempty"`
	Education  string          `json:"hoc_van,omitempty"`
	Graduated  domain.FlexBool `json:"tot_nghiep,omitempty"`
	Talents    string          `json:"nang_khieu,omitempty"`

	PartyAdmissionDate string `json:"ngay_vao_dang,omitempty"`
	UnionAdmissionDate string `json:"ngay_vao_doan,omitempty"`
	EnlistmentDate     string `json:"ngay_nhap_ngu,omitempty"`

	Avatar    string `json:"anh,omitempty"`
	Thumbnail string `json:"anh_thu_nho,omitempty"`

	Detail domain.RecordDetail `json:"chi_tiet"`
}

// LoadImportSchema reads and parses a bulk-import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
