package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/vdtan/hoso/internal/cli/formatter"
	"github.com/vdtan/hoso/internal/domain"
)

// hosoHuhTheme returns a custom huh theme using the formatter palette.
func hosoHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("bắt buộc")
	}
	return nil
}

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, ok := domain.ParseDate(s); !ok {
		return fmt.Errorf("ngày không hợp lệ (YYYY-MM-DD hoặc DD/MM/YYYY)")
	}
	return nil
}

// runRecordForm collects the quick-entry fields into r. The unit select
// offers every existing unit plus a "no unit" option.
func runRecordForm(ctx context.Context, app *App, r *domain.PersonnelRecord) error {
	units, err := app.Units.List(ctx)
	if err != nil {
		return err
	}

	unitOptions := make([]huh.Option[string], 0, len(units)+1)
	unitOptions = append(unitOptions, huh.NewOption("(không có đơn vị)", ""))
	for _, u := range units {
		unitOptions = append(unitOptions, huh.NewOption(u.Name, u.ID))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Họ và tên").
				Placeholder("Nguyễn Văn An").
				Value(&r.FullName).
				Validate(validateRequired),
			huh.NewInput().
				Title("Ngày sinh").
				Placeholder("1998-04-12").
				Value(&r.BirthDate).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("Cấp bậc").
				Placeholder("Binh nhất").
				Value(&r.Rank),
			huh.NewInput().
				Title("Chức vụ").
				Value(&r.Position),
			huh.NewSelect[string]().
				Title("Đơn vị").
				Options(unitOptions...).
				Value(&r.UnitID),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Số điện thoại").
				Value(&r.Phone),
			huh.NewInput().
				Title("Dân tộc").
				Placeholder(domain.EthnicMajority).
				Value(&r.Ethnicity),
			huh.NewInput().
				Title("Tôn giáo").
				Placeholder(domain.ReligionNone).
				Value(&r.Religion),
			huh.NewInput().
				Title("Trình độ").
				Placeholder("12/12").
				Value(&r.Education),
			huh.NewInput().
				Title("Ngày nhập ngũ").
				Value(&r.EnlistmentDate).
				Validate(validateOptionalDate),
		),
	).WithTheme(hosoHuhTheme()).WithShowHelp(false)

	return form.Run()
}
