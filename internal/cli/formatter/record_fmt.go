package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vdtan/hoso/internal/domain"
	"github.com/vdtan/hoso/internal/query"
)

// FormatRecordList renders search results as a table. The alert column uses
// the same predicate the search filter does, so a record listed with a badge
// here is the same record `search --security canh_bao` returns.
func FormatRecordList(records []*domain.PersonnelRecord, now time.Time) string {
	headers := []string{"STT", "Họ và tên", "Ngày sinh", "Tuổi", "Cấp bậc", "Đơn vị", ""}
	rows := make([][]string, 0, len(records))
	for i, r := range records {
		age := ""
		if a := r.Age(now); a > 0 {
			age = strconv.Itoa(a)
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.DisplayName(),
			r.BirthDate,
			age,
			r.Rank,
			r.UnitName,
			AlertBadge(query.HasSecurityAlert(r)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatRecordDetail renders the full view of one record.
func FormatRecordDetail(r *domain.PersonnelRecord, now time.Time) string {
	var b strings.Builder

	b.WriteString(Header(r.DisplayName()) + "\n")
	if query.HasSecurityAlert(r) {
		b.WriteString(AlertBadge(true) + "\n")
	}

	field := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(fmt.Sprintf("%s %s\n", Dim(label+":"), value))
	}

	field("ID", r.ID)
	field("Ngày sinh", birthLine(r, now))
	field("CCCD", r.NationalID)
	field("Cấp bậc", r.Rank)
	field("Chức vụ", r.Position)
	field("Đơn vị", r.UnitName)
	field("SĐT", r.Phone)
	field("Quê quán", r.Birthplace)
	field("Nơi ở", r.Residence)
	field("Dân tộc", r.Ethnicity)
	field("Tôn giáo", r.Religion)
	field("Trình độ", r.Education)
	field("Năng khiếu", r.Talents)
	field("Vào Đảng", r.PartyAdmissionDate)
	field("Vào Đoàn", r.UnionAdmissionDate)
	field("Nhập ngũ", r.EnlistmentDate)
	field("Sức khỏe", r.Detail.Health.Classification)

	if fam := familyLine(r); fam != "" {
		field("Gia đình", fam)
	}
	if len(r.Detail.Foreign.Travels) > 0 {
		b.WriteString(Dim("Đi nước ngoài:") + "\n")
		for _, tr := range r.Detail.Foreign.Travels {
			line := fmt.Sprintf("  %s (%s) %s", tr.Country, tr.Period, tr.Purpose)
			if tr.ViolationNote != "" {
				line += "  " + StyleRed.Render(tr.ViolationNote)
			}
			b.WriteString(line + "\n")
		}
	}

	return b.String()
}

func birthLine(r *domain.PersonnelRecord, now time.Time) string {
	if r.BirthDate == "" {
		return ""
	}
	if age := r.Age(now); age > 0 {
		return fmt.Sprintf("%s (%d tuổi)", r.BirthDate, age)
	}
	return r.BirthDate
}

func familyLine(r *domain.PersonnelRecord) string {
	var parts []string
	if r.IsMarried() {
		parts = append(parts, "đã kết hôn")
	}
	if n := len(r.Detail.Family.Children); n > 0 {
		parts = append(parts, fmt.Sprintf("%d con", n))
	}
	return strings.Join(parts, ", ")
}
