// Package report contains expense report use cases.
package report

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// Period identifies the aggregation window of a report.
type Period string

const (
	PeriodWeekly  Period = "WEEKLY"
	PeriodMonthly Period = "MONTHLY"
	PeriodYearly  Period = "YEARLY"
)

// GenerateReportInput represents the input for report generation. Week is the
// ISO week number for weekly reports; Month is 1 to 12 for monthly reports.
type GenerateReportInput struct {
	UserID uint
	Period Period
	Year   int
	Month  int
	Week   int
}

// ReportRowOutput represents one aggregated row of the report. PeriodValue is
// the month or ISO week number and is nil for yearly reports.
type ReportRowOutput struct {
	Year         int
	PeriodValue  *int
	CategoryName string
	TotalAmount  decimal.Decimal
}

// GenerateReportOutput represents the output of report generation.
type GenerateReportOutput struct {
	Period Period
	Year   int
	Rows   []*ReportRowOutput
	Total  decimal.Decimal
}

// GenerateReportUseCase aggregates a user's expenses per category over a
// weekly, monthly or yearly window.
type GenerateReportUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewGenerateReportUseCase creates a new GenerateReportUseCase instance.
func NewGenerateReportUseCase(recordRepo adapter.RecordRepository) *GenerateReportUseCase {
	return &GenerateReportUseCase{
		recordRepo: recordRepo,
	}
}

// Execute performs the report generation.
func (uc *GenerateReportUseCase) Execute(ctx context.Context, input GenerateReportInput) (*GenerateReportOutput, error) {
	rows, err := uc.fetchRows(ctx, input)
	if err != nil {
		return nil, err
	}

	output := &GenerateReportOutput{
		Period: input.Period,
		Year:   input.Year,
		Rows:   make([]*ReportRowOutput, len(rows)),
		Total:  decimal.Zero,
	}
	for i, row := range rows {
		output.Rows[i] = &ReportRowOutput{
			Year:         row.Year,
			PeriodValue:  row.PeriodValue,
			CategoryName: row.CategoryName,
			TotalAmount:  row.TotalAmount,
		}
		output.Total = output.Total.Add(row.TotalAmount)
	}

	return output, nil
}

// fetchRows dispatches to the repository aggregation for the period.
func (uc *GenerateReportUseCase) fetchRows(ctx context.Context, input GenerateReportInput) ([]*entity.ExpenseReportRow, error) {
	switch input.Period {
	case PeriodWeekly:
		if input.Week < 1 || input.Week > 53 {
			return nil, invalidPeriod("week must be between 1 and 53")
		}
		rows, err := uc.recordRepo.WeeklyReport(ctx, input.UserID, input.Year, input.Week)
		if err != nil {
			return nil, fmt.Errorf("failed to build weekly report: %w", err)
		}
		return rows, nil
	case PeriodMonthly:
		if input.Month < 1 || input.Month > 12 {
			return nil, invalidPeriod("month must be between 1 and 12")
		}
		rows, err := uc.recordRepo.MonthlyReport(ctx, input.UserID, input.Year, input.Month)
		if err != nil {
			return nil, fmt.Errorf("failed to build monthly report: %w", err)
		}
		return rows, nil
	case PeriodYearly:
		rows, err := uc.recordRepo.YearlyReport(ctx, input.UserID, input.Year)
		if err != nil {
			return nil, fmt.Errorf("failed to build yearly report: %w", err)
		}
		return rows, nil
	default:
		return nil, invalidPeriod("period must be WEEKLY, MONTHLY or YEARLY")
	}
}

func invalidPeriod(message string) error {
	return domainerror.NewRecordError(
		domainerror.ErrCodeInvalidReportPeriod,
		message,
		domainerror.ErrInvalidReportPeriod,
	)
}
