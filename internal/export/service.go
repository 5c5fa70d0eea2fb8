package export

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/invoice-extractor/internal/extract"
)

// Row pairs one extraction result with where its text came from.
type Row struct {
	Source string
	Result *extract.ExtractionResult
}

// Service produces XLSX bytes for a batch of extraction results.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// exportColumns are the field columns of the workbook, in output order.
var exportColumns = []string{
	"invoiceId", "invoiceDate", "dueDate", "supplierName", "poNumber",
	"currency", "subtotal", "tax", "total",
}

// ExportXLSX returns an XLSX workbook (as bytes) with one row per document.
func (s *Service) ExportXLSX(rows []Row) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Extractions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if defIdx, _ := f.GetSheetIndex("Sheet1"); defIdx != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := append([]string{"Source", "Status", "Overall Confidence"}, exportColumns...)
	headers = append(headers, "Issues")
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for rowIdx, row := range rows {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, rowIdx+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, row.Source)
		write(2, string(row.Result.Status))
		write(3, row.Result.Overall)

		byName := make(map[string]extract.ScoredField, len(row.Result.Fields))
		for _, fld := range row.Result.Fields {
			byName[fld.Name] = fld
		}
		for i, name := range exportColumns {
			fld, ok := byName[name]
			if !ok {
				write(4+i, "")
				continue
			}
			write(4+i, cellValue(fld))
		}
		write(4+len(exportColumns), summarizeIssues(row.Result.Issues))
	}

	_ = f.SetColWidth(sheet, "A", "A", 40) // source path
	_ = f.SetColWidth(sheet, "B", "C", 14)
	_ = f.SetColWidth(sheet, "D", "L", 18)
	_ = f.SetColWidth(sheet, "M", "M", 60) // issues

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func cellValue(f extract.ScoredField) string {
	switch f.Value.Kind {
	case extract.TypeAmount:
		return f.Value.Num.StringFixed(2)
	default:
		return f.Value.Str
	}
}

func summarizeIssues(issues []extract.ValidationIssue) string {
	if len(issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(issues))
	for _, is := range issues {
		parts = append(parts, fmt.Sprintf("[%s] %s", is.Severity, is.Message))
	}
	return truncate(strings.Join(parts, "; "), 900)
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
