package formatter

import (
	"fmt"
	"strings"

	"github.com/vdtan/hoso/internal/domain"
	"github.com/vdtan/hoso/internal/service"
)

// ageBucketOrder fixes the display order of the dashboard age histogram.
var ageBucketOrder = []string{
	domain.AgeBucket18To25,
	domain.AgeBucket26To30,
	domain.AgeBucket31To40,
	domain.AgeBucketOver40,
}

// FormatDashboard renders the top-level counters.
func FormatDashboard(s *service.DashboardStats) string {
	var b strings.Builder

	b.WriteString(Header("Tổng quan") + "\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Quân số:"), Bold(fmt.Sprintf("%d", s.Total))))

	alerts := fmt.Sprintf("%d", s.Alerts)
	if s.Alerts > 0 {
		alerts = StyleRed.Render(alerts)
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Cảnh báo:"), alerts))
	b.WriteString(fmt.Sprintf("%s %d\n", Dim("Đảng viên:"), s.PartyMembers))
	b.WriteString(fmt.Sprintf("%s %d\n", Dim("Đoàn viên:"), s.UnionMembers))

	b.WriteString("\n" + Header("Độ tuổi") + "\n")
	for _, bucket := range ageBucketOrder {
		b.WriteString(fmt.Sprintf("%s %d\n", Dim(bucket+":"), s.AgeBuckets[bucket]))
	}

	return b.String()
}

// FormatUnitBreakdown renders per-unit aggregates as a tree. Rows arrive in
// depth-first order from the stats service.
func FormatUnitBreakdown(stats []service.UnitStats) string {
	if len(stats) == 0 {
		return Dim("Chưa có đơn vị nào.") + "\n"
	}

	items := make([]UnitTreeItem, len(stats))
	for i, s := range stats {
		items[i] = UnitTreeItem{
			Name:   s.Unit.Name,
			Depth:  s.Depth,
			IsLast: isLastSibling(stats, i),
			Total:  s.Total,
			Alerts: s.Alerts,
		}
	}
	return RenderUnitTree(items)
}

// isLastSibling reports whether row i is the last row at its depth before
// the tree pops back to a shallower level.
func isLastSibling(stats []service.UnitStats, i int) bool {
	for j := i + 1; j < len(stats); j++ {
		if stats[j].Depth < stats[i].Depth {
			return true
		}
		if stats[j].Depth == stats[i].Depth {
			return false
		}
	}
	return true
}
