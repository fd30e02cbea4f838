// Package report contains expense report use cases.
package report

import (
	"context"
	"fmt"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
)

// ExportReportInput represents the input for report export.
type ExportReportInput struct {
	UserID uint
	Period Period
	Year   int
	Month  int
	Week   int
}

// ExportReportOutput carries the rendered document.
type ExportReportOutput struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ExportReportUseCase renders a periodic expense report as a PDF document.
type ExportReportUseCase struct {
	generate *GenerateReportUseCase
	renderer adapter.ReportRenderer
}

// NewExportReportUseCase creates a new ExportReportUseCase instance.
func NewExportReportUseCase(generate *GenerateReportUseCase, renderer adapter.ReportRenderer) *ExportReportUseCase {
	return &ExportReportUseCase{
		generate: generate,
		renderer: renderer,
	}
}

// Execute performs the report export.
func (uc *ExportReportUseCase) Execute(ctx context.Context, input ExportReportInput) (*ExportReportOutput, error) {
	report, err := uc.generate.Execute(ctx, GenerateReportInput{
		UserID: input.UserID,
		Period: input.Period,
		Year:   input.Year,
		Month:  input.Month,
		Week:   input.Week,
	})
	if err != nil {
		return nil, err
	}

	rows := make([]*entity.ExpenseReportRow, len(report.Rows))
	for i, row := range report.Rows {
		rows[i] = &entity.ExpenseReportRow{
			Year:         row.Year,
			PeriodValue:  row.PeriodValue,
			CategoryName: row.CategoryName,
			TotalAmount:  row.TotalAmount,
		}
	}

	title := uc.title(input)
	content, err := uc.renderer.RenderPDF(ctx, adapter.ReportDocument{
		Title: title,
		Rows:  rows,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	return &ExportReportOutput{
		FileName:    uc.fileName(input),
		ContentType: "application/pdf",
		Content:     content,
	}, nil
}

// title builds the human readable report heading.
func (uc *ExportReportUseCase) title(input ExportReportInput) string {
	switch input.Period {
	case PeriodWeekly:
		return fmt.Sprintf("Expense Report - Week %d, %d", input.Week, input.Year)
	case PeriodMonthly:
		return fmt.Sprintf("Expense Report - %d-%02d", input.Year, input.Month)
	default:
		return fmt.Sprintf("Expense Report - %d", input.Year)
	}
}

// fileName builds the download file name.
func (uc *ExportReportUseCase) fileName(input ExportReportInput) string {
	switch input.Period {
	case PeriodWeekly:
		return fmt.Sprintf("expense-report-%d-w%02d.pdf", input.Year, input.Week)
	case PeriodMonthly:
		return fmt.Sprintf("expense-report-%d-%02d.pdf", input.Year, input.Month)
	default:
		return fmt.Sprintf("expense-report-%d.pdf", input.Year)
	}
}
