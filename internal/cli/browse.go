package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vdtan/hoso/internal/cli/formatter"
	"github.com/vdtan/hoso/internal/domain"
	"github.com/vdtan/hoso/internal/service"
)

// debounceInterval is how long the keyword input must stay unchanged before
// a search fires.
const debounceInterval = 300 * time.Millisecond

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Interactive record browser with live search",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("browse requires a terminal")
			}
			_, err := tea.NewProgram(newBrowseModel(app), tea.WithAltScreen()).Run()
			return err
		},
	}
}

// debounceMsg fires after the debounce interval; stale generations are
// dropped in Update.
type debounceMsg struct {
	seq int
}

// resultsMsg carries one search response. The token identifies which
// request produced it; responses from superseded requests are discarded so
// a slow early search can never overwrite a newer one.
type resultsMsg struct {
	token   int
	records []*domain.PersonnelRecord
	err     error
}

type browseModel struct {
	app   *App
	input textinput.Model

	records []*domain.PersonnelRecord
	cursor  int

	seq   int // debounce generation of the newest keystroke
	token int // newest issued search request

	showDetail bool
	err        error

	width  int
	height int
}

func newBrowseModel(app *App) browseModel {
	ti := textinput.New()
	ti.Placeholder = "Tìm theo tên, CCCD, SĐT..."
	ti.Prompt = "🔍 "
	ti.CharLimit = 100
	ti.Focus()

	return browseModel{
		app:   app,
		input: ti,
	}
}

func (m browseModel) Init() tea.Cmd {
	// Initial load with no keyword shows the most recent records.
	return tea.Batch(textinput.Blink, m.search(m.token, ""))
}

// search issues a capped keyword search, tagging the response with token.
func (m browseModel) search(token int, keyword string) tea.Cmd {
	app := m.app
	return func() tea.Msg {
		records, err := app.Search.Search(context.Background(),
			domain.FilterCriteria{Keyword: keyword}, service.SearchOptions{})
		return resultsMsg{token: token, records: records, err: err}
	}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			if m.showDetail {
				m.showDetail = false
				return m, nil
			}
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down":
			if m.cursor < len(m.records)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			if len(m.records) > 0 {
				m.showDetail = !m.showDetail
			}
			return m, nil
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			m.seq++
			seq := m.seq
			return m, tea.Batch(cmd, tea.Tick(debounceInterval, func(time.Time) tea.Msg {
				return debounceMsg{seq: seq}
			}))
		}
		return m, cmd

	case debounceMsg:
		if msg.seq != m.seq {
			// A newer keystroke restarted the timer.
			return m, nil
		}
		m.token++
		return m, m.search(m.token, m.input.Value())

	case resultsMsg:
		if msg.token != m.token {
			// Response from a superseded request.
			return m, nil
		}
		if msg.err != nil {
			m.err = msg.err
			m.records = nil
			m.cursor = 0
			return m, nil
		}
		m.err = nil
		m.records = msg.records
		if m.cursor >= len(m.records) {
			m.cursor = 0
		}
		m.showDetail = false
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header("Hồ sơ quân nhân") + "\n")
	b.WriteString(m.input.View() + "\n\n")

	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render(fmt.Sprintf("Lỗi: %v", m.err)) + "\n")
		return b.String()
	}

	if len(m.records) == 0 {
		b.WriteString(formatter.Dim("Không tìm thấy hồ sơ nào.") + "\n")
		return b.String()
	}

	if m.showDetail {
		b.WriteString(formatter.FormatRecordDetail(m.records[m.cursor], time.Now()))
		b.WriteString("\n" + formatter.Dim("esc: quay lại") + "\n")
		return b.String()
	}

	now := time.Now()
	for i, r := range m.records {
		if i >= m.visibleRows() {
			b.WriteString(formatter.Dim(fmt.Sprintf("... và %d hồ sơ nữa", len(m.records)-i)) + "\n")
			break
		}
		meta := strings.TrimSpace(r.Rank + "  " + r.UnitName)
		if age := r.Age(now); age > 0 {
			meta = strings.TrimSpace(meta + fmt.Sprintf("  %d tuổi", age))
		}
		name := r.DisplayName()
		if i == m.cursor {
			b.WriteString(formatter.StyleHeader.Render("> ") + formatter.Bold(name) + "  " + formatter.Dim(meta) + "\n")
		} else {
			b.WriteString("  " + formatter.StyleFg.Render(name) + "  " + formatter.Dim(meta) + "\n")
		}
	}

	b.WriteString("\n" + formatter.Dim("↑/↓: chọn   enter: chi tiết   esc: thoát") + "\n")
	return b.String()
}

// visibleRows bounds the list to the terminal height, leaving room for the
// header, input, and help lines.
func (m browseModel) visibleRows() int {
	const chrome = 8
	if m.height == 0 {
		return 20
	}
	if m.height <= chrome {
		return 1
	}
	return m.height - chrome
}
