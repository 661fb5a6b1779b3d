package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// UnitTreeItem is one row of the unit-hierarchy display.
type UnitTreeItem struct {
	Name   string
	Depth  int
	IsLast bool
	Total  int // personnel in the unit and its descendants
	Alerts int // flagged personnel in the same scope
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// RenderUnitTree renders the unit hierarchy as an indented tree with
// box-drawing connectors and right-aligned headcount badges. Units with
// flagged personnel get the alert count rendered in red.
func RenderUnitTree(items []UnitTreeItem) string {
	if len(items) == 0 {
		return ""
	}

	lines := make([]string, len(items))
	badges := make([]string, len(items))
	maxWidth := 0

	for idx, item := range items {
		var prefix string
		if item.Depth > 0 {
			for i := 1; i < item.Depth; i++ {
				prefix += treePipe
			}
			if item.IsLast {
				prefix += treeCorner
			} else {
				prefix += treeBranch
			}
		}

		line := prefix + StyleFg.Render(item.Name)
		lines[idx] = line

		badge := fmt.Sprintf("%d quân nhân", item.Total)
		if item.Alerts > 0 {
			badge += "  " + StyleRed.Render(fmt.Sprintf("%d cảnh báo", item.Alerts))
		}
		badges[idx] = StyleBlue.Render("[ ") + badge + StyleBlue.Render(" ]")

		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}

	var b strings.Builder
	for i, line := range lines {
		pad := maxWidth - lipgloss.Width(line)
		b.WriteString(line + strings.Repeat(" ", pad) + "  " + badges[i] + "\n")
	}

	return b.String()
}
