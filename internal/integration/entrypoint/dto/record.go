// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/usecase/record"
)

// CreateRecordRequest represents the request body for expense record creation.
// The category can be referenced by id or by name; the id wins when both are
// present.
type CreateRecordRequest struct {
	CategoryID      *uint           `json:"categoryId,omitempty"`
	CategoryName    *string         `json:"categoryName,omitempty"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Currency        string          `json:"currency,omitempty"`
	Description     string          `json:"description,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	PaymentMethod   string          `json:"paymentMethod,omitempty"`
	IsRecurring     bool            `json:"isRecurring"`
	TransactionType string          `json:"transactionType,omitempty" binding:"omitempty,oneof=EXPENSE INCOME"`
}

// UpdateRecordRequest represents the request body for expense record update.
type UpdateRecordRequest struct {
	CategoryID      *uint            `json:"categoryId,omitempty"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	Currency        *string          `json:"currency,omitempty"`
	Description     *string          `json:"description,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
	PaymentMethod   *string          `json:"paymentMethod,omitempty"`
	IsRecurring     *bool            `json:"isRecurring,omitempty"`
	TransactionType *string          `json:"transactionType,omitempty" binding:"omitempty,oneof=EXPENSE INCOME"`
}

// RecordCategoryResponse represents the category attached to a record.
type RecordCategoryResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	IconURL string `json:"iconUrl,omitempty"`
}

// RecordResponse represents a single expense record in API responses.
type RecordResponse struct {
	ID              uint                    `json:"id"`
	CategoryID      uint                    `json:"categoryId"`
	Category        *RecordCategoryResponse `json:"category,omitempty"`
	Amount          decimal.Decimal         `json:"amount"`
	Currency        string                  `json:"currency"`
	Description     string                  `json:"description,omitempty"`
	Notes           string                  `json:"notes,omitempty"`
	PaymentMethod   string                  `json:"paymentMethod,omitempty"`
	IsRecurring     bool                    `json:"isRecurring"`
	TransactionType string                  `json:"transactionType"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

// RecordListResponse represents the response for listing expense records.
type RecordListResponse struct {
	Records []RecordResponse `json:"records"`
}

// ToRecordResponse converts a RecordOutput to a RecordResponse DTO.
func ToRecordResponse(output *record.RecordOutput) RecordResponse {
	response := RecordResponse{
		ID:              output.ID,
		CategoryID:      output.CategoryID,
		Amount:          output.Amount,
		Currency:        output.Currency,
		Description:     output.Description,
		Notes:           output.Notes,
		PaymentMethod:   output.PaymentMethod,
		IsRecurring:     output.IsRecurring,
		TransactionType: string(output.TransactionType),
		CreatedAt:       output.CreatedAt,
		UpdatedAt:       output.UpdatedAt,
	}

	if output.Category != nil {
		response.Category = &RecordCategoryResponse{
			ID:      output.Category.ID,
			Name:    output.Category.Name,
			IconURL: output.Category.IconURL,
		}
	}

	return response
}

// ToRecordListResponse converts a list of RecordOutput to RecordListResponse.
func ToRecordListResponse(outputs []*record.RecordOutput) RecordListResponse {
	records := make([]RecordResponse, len(outputs))
	for i, output := range outputs {
		records[i] = ToRecordResponse(output)
	}
	return RecordListResponse{
		Records: records,
	}
}
