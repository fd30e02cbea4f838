// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/persistence/model"
)

// recordRepository implements the adapter.RecordRepository interface.
type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository creates a new record repository instance.
func NewRecordRepository(db *gorm.DB) adapter.RecordRepository {
	return &recordRepository{
		db: db,
	}
}

// Create creates a new record in the database.
func (r *recordRepository) Create(ctx context.Context, record *entity.ExpenseRecord) error {
	recordModel := model.RecordFromEntity(record)
	result := r.db.WithContext(ctx).Create(recordModel)
	if result.Error != nil {
		return result.Error
	}
	record.ID = recordModel.ID
	return nil
}

// FindByID retrieves a record by its ID.
func (r *recordRepository) FindByID(ctx context.Context, id uint) (*entity.ExpenseRecord, error) {
	var recordModel model.RecordModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&recordModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecordNotFound
		}
		return nil, result.Error
	}
	return recordModel.ToEntity(), nil
}

// FindByUserID retrieves all records for a user with categories, newest first.
func (r *recordRepository) FindByUserID(ctx context.Context, userID uint) ([]*entity.RecordWithCategory, error) {
	var recordModels []model.RecordModel
	result := r.db.WithContext(ctx).
		Preload("CategoryRef").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.RecordWithCategory, len(recordModels))
	for i, rm := range recordModels {
		records[i] = rm.ToEntityWithCategory()
	}
	return records, nil
}

// Update updates an existing record in the database.
func (r *recordRepository) Update(ctx context.Context, record *entity.ExpenseRecord) error {
	recordModel := model.RecordFromEntity(record)
	result := r.db.WithContext(ctx).Save(recordModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a record from the database.
func (r *recordRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.RecordModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CountByUserID counts all records for a user.
func (r *recordRepository) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.RecordModel{}).
		Where("user_id = ?", userID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// ExistsByCategoryID checks whether any record references the category.
func (r *recordRepository) ExistsByCategoryID(ctx context.Context, categoryID uint) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.RecordModel{}).
		Where("category_id = ?", categoryID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// WeeklyReport aggregates expense totals per category for an ISO week. The
// window is computed in Go so the query stays portable across databases.
func (r *recordRepository) WeeklyReport(ctx context.Context, userID uint, year, week int) ([]*entity.ExpenseReportRow, error) {
	start := isoWeekStart(year, week)
	end := start.AddDate(0, 0, 7)
	rows, err := r.aggregate(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		row.Year = year
		w := week
		row.PeriodValue = &w
	}
	return rows, nil
}

// MonthlyReport aggregates expense totals per category for a month.
func (r *recordRepository) MonthlyReport(ctx context.Context, userID uint, year, month int) ([]*entity.ExpenseReportRow, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	rows, err := r.aggregate(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		row.Year = year
		m := month
		row.PeriodValue = &m
	}
	return rows, nil
}

// YearlyReport aggregates expense totals per category for a year.
func (r *recordRepository) YearlyReport(ctx context.Context, userID uint, year int) ([]*entity.ExpenseReportRow, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	rows, err := r.aggregate(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		row.Year = year
	}
	return rows, nil
}

// aggregate sums expense amounts per category inside [start, end).
func (r *recordRepository) aggregate(ctx context.Context, userID uint, start, end time.Time) ([]*entity.ExpenseReportRow, error) {
	var results []struct {
		CategoryName string          `gorm:"column:category_name"`
		TotalAmount  decimal.Decimal `gorm:"column:total_amount"`
	}

	query := `
		SELECT
			c.name as category_name,
			SUM(r.amount) as total_amount
		FROM expense_records r
		LEFT JOIN categories c ON r.category_id = c.id
		WHERE r.user_id = ?
			AND r.transaction_type = ?
			AND r.created_at >= ?
			AND r.created_at < ?
		GROUP BY c.name
		ORDER BY total_amount DESC
	`

	err := r.db.WithContext(ctx).
		Raw(query, userID, string(entity.TransactionTypeExpense), start, end).
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate expenses: %w", err)
	}

	rows := make([]*entity.ExpenseReportRow, len(results))
	for i, res := range results {
		rows[i] = &entity.ExpenseReportRow{
			CategoryName: res.CategoryName,
			TotalAmount:  res.TotalAmount,
		}
	}
	return rows, nil
}

// isoWeekStart returns the Monday of the given ISO week.
func isoWeekStart(year, week int) time.Time {
	// January 4th is always inside ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	week1Monday := jan4.AddDate(0, 0, -(weekday - 1))
	return week1Monday.AddDate(0, 0, (week-1)*7)
}
