// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/usecase/report"
)

// ReportRowResponse represents one aggregated category row of a report.
type ReportRowResponse struct {
	Year         int             `json:"year"`
	PeriodValue  *int            `json:"periodValue,omitempty"`
	CategoryName string          `json:"categoryName"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
}

// ReportResponse represents a periodic expense report in API responses.
type ReportResponse struct {
	Period string              `json:"period"`
	Year   int                 `json:"year"`
	Month  int                 `json:"month,omitempty"`
	Week   int                 `json:"week,omitempty"`
	Rows   []ReportRowResponse `json:"rows"`
	Total  decimal.Decimal     `json:"total"`
}

// ToReportResponse converts a GenerateReportOutput to a ReportResponse DTO.
func ToReportResponse(output *report.GenerateReportOutput, month, week int) ReportResponse {
	rows := make([]ReportRowResponse, len(output.Rows))
	for i, row := range output.Rows {
		rows[i] = ReportRowResponse{
			Year:         row.Year,
			PeriodValue:  row.PeriodValue,
			CategoryName: row.CategoryName,
			TotalAmount:  row.TotalAmount,
		}
	}
	return ReportResponse{
		Period: string(output.Period),
		Year:   output.Year,
		Month:  month,
		Week:   week,
		Rows:   rows,
		Total:  output.Total,
	}
}
