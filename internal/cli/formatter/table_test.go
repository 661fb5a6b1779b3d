package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"STT", "Họ và tên"},
		[][]string{
			{"1", "Nguyễn Văn An"},
			{"2", "Bình"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4, "header, separator, two rows")
	assert.Contains(t, lines[0], "STT")
	assert.Contains(t, lines[1], "─")
	assert.Contains(t, lines[2], "Nguyễn Văn An")
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderTable_ShortRowsPadded(t *testing.T) {
	out := RenderTable([]string{"A", "B", "C"}, [][]string{{"x"}})
	assert.Contains(t, out, "x")
}
