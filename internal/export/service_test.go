package export

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/invoice-extractor/constants"
	"github.com/joseph-ayodele/invoice-extractor/internal/extract"
)

func TestExportXLSX(t *testing.T) {
	complete := &extract.ExtractionResult{
		Fields: []extract.ScoredField{
			{Name: "invoiceId", Value: extract.StringValue("INV-2024-0042"), Confidence: 0.81},
			{Name: "currency", Value: extract.CurrencyValue("USD"), Confidence: 0.74},
			{Name: "total", Value: extract.AmountValue(decimal.RequireFromString("28.05")), Confidence: 0.83},
		},
		Issues:  []extract.ValidationIssue{},
		Overall: 0.79,
		Status:  constants.StatusComplete,
	}
	failed := &extract.ExtractionResult{
		Fields: []extract.ScoredField{},
		Issues: []extract.ValidationIssue{{
			Kind:     constants.IssueEncoding,
			Severity: constants.SeverityError,
			Message:  "encoding error: input is empty",
		}},
		Status: constants.StatusFailed,
		Error:  "encoding error: input is empty",
	}

	svc := NewService(nil)
	b, err := svc.ExportXLSX([]Row{
		{Source: "invoices/a.txt", Result: complete},
		{Source: "invoices/b.txt", Result: failed},
	})
	require.NoError(t, err)
	require.NotEmpty(t, b)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	assert.Contains(t, f.GetSheetList(), "Extractions")
	assert.NotContains(t, f.GetSheetList(), "Sheet1")

	get := func(cell string) string {
		v, err := f.GetCellValue("Extractions", cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Source", get("A1"))
	assert.Equal(t, "Status", get("B1"))
	assert.Equal(t, "total", get("L1"))
	assert.Equal(t, "Issues", get("M1"))

	assert.Equal(t, "invoices/a.txt", get("A2"))
	assert.Equal(t, "complete", get("B2"))
	assert.Equal(t, "INV-2024-0042", get("D2"))
	assert.Equal(t, "USD", get("I2"))
	assert.Equal(t, "28.05", get("L2"))
	assert.Empty(t, get("M2"))

	assert.Equal(t, "failed", get("B3"))
	assert.Contains(t, get("M3"), "encoding error")
	assert.Contains(t, get("M3"), "[error]")
}

func TestExportXLSX_NoRows(t *testing.T) {
	b, err := NewService(nil).ExportXLSX(nil)
	require.NoError(t, err)
	require.NotEmpty(t, b)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), "Extractions")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	got := truncate("0123456789abcdef", 10)
	assert.Len(t, []rune(got), 10)
	assert.Equal(t, "…", string([]rune(got)[9]))
}
