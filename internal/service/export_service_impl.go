package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/vdtan/hoso/internal/domain"
	"github.com/vdtan/hoso/internal/query"
	"github.com/vdtan/hoso/internal/repository"
)

// exportHeader is the column layout of both export formats.
var exportHeader = []string{
	"STT", "Họ và tên", "Ngày sinh", "Cấp bậc", "Chức vụ", "Đơn vị",
	"Dân tộc", "Tôn giáo", "Trình độ", "Số điện thoại", "Nhập ngũ", "Cảnh báo",
}

type exportService struct {
	search   SearchService
	units    repository.UnitRepo
	observer UseCaseObserver
}

// NewExportService creates the export service. Export always runs the
// engine unlimited: a report clipped at the UI cap would silently omit
// personnel.
func NewExportService(search SearchService, units repository.UnitRepo, observers ...UseCaseObserver) ExportService {
	return &exportService{
		search:   search,
		units:    units,
		observer: observerOrNoop(observers),
	}
}

func (s *exportService) Export(ctx context.Context, c domain.FilterCriteria, sortBy query.SortBy, format ExportFormat, w io.Writer) (int, error) {
	started := time.Now()

	records, err := s.search.Search(ctx, c, SearchOptions{SortBy: sortBy, Unlimited: true})
	if err != nil {
		return 0, err
	}

	switch format {
	case ExportCSV:
		err = writeCSV(records, w)
	case ExportXLSX:
		err = writeXLSX(records, w)
	default:
		return 0, fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return 0, err
	}

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:     "export",
		Duration: time.Since(started),
		Fields:   map[string]any{"format": string(format), "rows": len(records)},
	})
	return len(records), nil
}

func exportRow(i int, r *domain.PersonnelRecord) []string {
	alert := ""
	if query.HasSecurityAlert(r) {
		alert = "Có"
	}
	return []string{
		strconv.Itoa(i + 1),
		r.FullName,
		r.BirthDate,
		r.Rank,
		r.Position,
		r.UnitName,
		r.Ethnicity,
		r.Religion,
		r.Education,
		r.Phone,
		r.EnlistmentDate,
		alert,
	}
}

func writeCSV(records []*domain.PersonnelRecord, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for i, r := range records {
		if err := cw.Write(exportRow(i, r)); err != nil {
			return fmt.Errorf("writing csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

const xlsxSheet = "Danh sách"

func writeXLSX(records []*domain.PersonnelRecord, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(xlsxSheet)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	header := make([]any, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(xlsxSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(exportHeader))
	if err := f.SetCellStyle(xlsxSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("styling header row: %w", err)
	}

	for i, r := range records {
		row := exportRow(i, r)
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(xlsxSheet, cell, &cells); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
