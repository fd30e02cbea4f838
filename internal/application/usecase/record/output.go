// Package record contains expense record use cases.
package record

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/domain/entity"
)

// RecordOutput represents a single expense record in the output.
type RecordOutput struct {
	ID              uint
	UserID          uint
	CategoryID      uint
	Category        *CategoryOutput
	Amount          decimal.Decimal
	Currency        string
	Description     string
	Notes           string
	PaymentMethod   string
	IsRecurring     bool
	TransactionType entity.TransactionType
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CategoryOutput represents category information in record output.
type CategoryOutput struct {
	ID      uint
	Name    string
	IconURL string
}

// toOutput projects a record and its resolved category onto the output shape.
func toOutput(r *entity.ExpenseRecord, category *entity.Category) *RecordOutput {
	out := &RecordOutput{
		ID:              r.ID,
		UserID:          r.UserID,
		CategoryID:      r.CategoryID,
		Amount:          r.Amount,
		Currency:        r.Currency,
		Description:     r.Description,
		Notes:           r.Notes,
		PaymentMethod:   r.PaymentMethod,
		IsRecurring:     r.IsRecurring,
		TransactionType: r.TransactionType,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if category != nil {
		out.Category = &CategoryOutput{
			ID:      category.ID,
			Name:    category.Name,
			IconURL: category.IconURL,
		}
	}
	return out
}
