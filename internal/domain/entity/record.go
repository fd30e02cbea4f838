// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of an expense record.
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "EXPENSE"
	TransactionTypeIncome  TransactionType = "INCOME"
)

// ExpenseRecord represents a single income or expense transaction.
type ExpenseRecord struct {
	ID              uint
	UserID          uint
	CategoryID      uint
	Amount          decimal.Decimal
	Currency        string
	Description     string
	Notes           string
	PaymentMethod   string
	IsRecurring     bool
	TransactionType TransactionType
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewExpenseRecord creates a new ExpenseRecord entity.
func NewExpenseRecord(
	userID, categoryID uint,
	amount decimal.Decimal,
	currency, description, notes, paymentMethod string,
	isRecurring bool,
	transactionType TransactionType,
) *ExpenseRecord {
	now := time.Now().UTC()
	return &ExpenseRecord{
		UserID:          userID,
		CategoryID:      categoryID,
		Amount:          amount,
		Currency:        currency,
		Description:     description,
		Notes:           notes,
		PaymentMethod:   paymentMethod,
		IsRecurring:     isRecurring,
		TransactionType: transactionType,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// RecordWithCategory pairs a record with its resolved category.
type RecordWithCategory struct {
	Record   *ExpenseRecord
	Category *Category
}

// ExpenseReportRow represents one aggregated row of a periodic expense report.
type ExpenseReportRow struct {
	Year         int
	PeriodValue  *int // Month or ISO week number; nil for yearly reports.
	CategoryName string
	TotalAmount  decimal.Decimal
}
