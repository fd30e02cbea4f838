package adapters

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
)

// Column widths in mm; they sum to the printable width of an A4 portrait page.
const (
	colYearWidth     = 20
	colPeriodWidth   = 25
	colCategoryWidth = 85
	colTotalWidth    = 40
	tableWidth       = colYearWidth + colPeriodWidth + colCategoryWidth + colTotalWidth
)

// PDFRenderer implements the ReportRenderer using fpdf.
type PDFRenderer struct{}

// NewPDFRenderer creates a new PDF renderer instance.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// RenderPDF renders the report as a PDF document with one table row per
// aggregated category.
func (r *PDFRenderer) RenderPDF(_ context.Context, doc adapter.ReportDocument) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, doc.Title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(colYearWidth, 8, "Year", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colPeriodWidth, 8, "Period", "1", 0, "C", true, 0, "")
	pdf.CellFormat(colCategoryWidth, 8, "Category", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colTotalWidth, 8, "Total Spent", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	total := decimal.Zero
	for _, row := range doc.Rows {
		name := row.CategoryName
		if name == "" {
			name = "Uncategorized"
		}
		period := "-"
		if row.PeriodValue != nil {
			period = strconv.Itoa(*row.PeriodValue)
		}
		pdf.CellFormat(colYearWidth, 8, strconv.Itoa(row.Year), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colPeriodWidth, 8, period, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colCategoryWidth, 8, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colTotalWidth, 8, row.TotalAmount.StringFixed(2), "1", 1, "R", false, 0, "")
		total = total.Add(row.TotalAmount)
	}

	if len(doc.Rows) == 0 {
		pdf.CellFormat(tableWidth, 8, "No expenses recorded for this period", "1", 1, "C", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(tableWidth-colTotalWidth, 8, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(colTotalWidth, 8, total.StringFixed(2), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf output: %w", err)
	}

	return buf.Bytes(), nil
}
