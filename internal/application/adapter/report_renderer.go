// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/spendwise/backend/internal/domain/entity"
)

// ReportDocument describes a rendered expense report.
type ReportDocument struct {
	Title string
	Rows  []*entity.ExpenseReportRow
}

// ReportRenderer defines the interface for rendering expense reports into a
// downloadable document.
type ReportRenderer interface {
	// RenderPDF renders the report as a PDF document.
	RenderPDF(ctx context.Context, doc ReportDocument) ([]byte, error)
}
