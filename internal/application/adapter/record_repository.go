// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/spendwise/backend/internal/domain/entity"
)

// RecordRepository defines the interface for expense record persistence operations.
type RecordRepository interface {
	// Create creates a new expense record in the database.
	Create(ctx context.Context, record *entity.ExpenseRecord) error

	// FindByID retrieves a record by its ID.
	FindByID(ctx context.Context, id uint) (*entity.ExpenseRecord, error)

	// FindByUserID retrieves all records for a user, newest first.
	FindByUserID(ctx context.Context, userID uint) ([]*entity.RecordWithCategory, error)

	// Update updates an existing record in the database.
	Update(ctx context.Context, record *entity.ExpenseRecord) error

	// Delete removes a record from the database.
	Delete(ctx context.Context, id uint) error

	// CountByUserID counts all records for a user. Used as the record-count
	// signal for achievement evaluation.
	CountByUserID(ctx context.Context, userID uint) (int64, error)

	// ExistsByCategoryID checks whether any record references the category.
	ExistsByCategoryID(ctx context.Context, categoryID uint) (bool, error)

	// WeeklyReport aggregates expense totals per category for an ISO week.
	WeeklyReport(ctx context.Context, userID uint, year, week int) ([]*entity.ExpenseReportRow, error)

	// MonthlyReport aggregates expense totals per category for a month.
	MonthlyReport(ctx context.Context, userID uint, year, month int) ([]*entity.ExpenseReportRow, error)

	// YearlyReport aggregates expense totals per category for a year.
	YearlyReport(ctx context.Context, userID uint, year int) ([]*entity.ExpenseReportRow, error)
}
