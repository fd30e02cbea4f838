// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/domain/entity"
)

// RecordModel represents the expense_records table in the database.
type RecordModel struct {
	ID              uint            `gorm:"primaryKey;autoIncrement"`
	UserID          uint            `gorm:"not null;index"`
	CategoryID      uint            `gorm:"not null;index"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency        string          `gorm:"type:varchar(3);not null"`
	Description     string          `gorm:"type:varchar(255)"`
	Notes           string          `gorm:"type:text"`
	PaymentMethod   string          `gorm:"type:varchar(50)"`
	IsRecurring     bool            `gorm:"not null;default:false"`
	TransactionType string          `gorm:"type:varchar(10);not null;default:'EXPENSE';index"`
	CreatedAt       time.Time       `gorm:"not null;index"`
	UpdatedAt       time.Time       `gorm:"not null"`

	// Loaded with Preload when the category is needed.
	CategoryRef *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the RecordModel.
func (RecordModel) TableName() string {
	return "expense_records"
}

// ToEntity converts a RecordModel to a domain ExpenseRecord entity.
func (m *RecordModel) ToEntity() *entity.ExpenseRecord {
	return &entity.ExpenseRecord{
		ID:              m.ID,
		UserID:          m.UserID,
		CategoryID:      m.CategoryID,
		Amount:          m.Amount,
		Currency:        m.Currency,
		Description:     m.Description,
		Notes:           m.Notes,
		PaymentMethod:   m.PaymentMethod,
		IsRecurring:     m.IsRecurring,
		TransactionType: entity.TransactionType(m.TransactionType),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// ToEntityWithCategory converts a RecordModel with its preloaded category.
func (m *RecordModel) ToEntityWithCategory() *entity.RecordWithCategory {
	result := &entity.RecordWithCategory{
		Record: m.ToEntity(),
	}
	if m.CategoryRef != nil {
		result.Category = m.CategoryRef.ToEntity()
	}
	return result
}

// RecordFromEntity creates a RecordModel from a domain ExpenseRecord entity.
func RecordFromEntity(record *entity.ExpenseRecord) *RecordModel {
	return &RecordModel{
		ID:              record.ID,
		UserID:          record.UserID,
		CategoryID:      record.CategoryID,
		Amount:          record.Amount,
		Currency:        record.Currency,
		Description:     record.Description,
		Notes:           record.Notes,
		PaymentMethod:   record.PaymentMethod,
		IsRecurring:     record.IsRecurring,
		TransactionType: string(record.TransactionType),
		CreatedAt:       record.CreatedAt,
		UpdatedAt:       record.UpdatedAt,
	}
}
