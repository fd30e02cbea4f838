// Package record contains expense record use cases.
package record

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// UpdateRecordInput represents the input for record update. Only non-nil
// fields overwrite the stored record.
type UpdateRecordInput struct {
	RecordID        uint
	UserID          uint
	CategoryID      *uint
	Amount          *decimal.Decimal
	Currency        *string
	Description     *string
	Notes           *string
	PaymentMethod   *string
	IsRecurring     *bool
	TransactionType *entity.TransactionType
}

// UpdateRecordOutput represents the output of record update.
type UpdateRecordOutput struct {
	Record *RecordOutput
}

// UpdateRecordUseCase handles record update logic.
type UpdateRecordUseCase struct {
	recordRepo   adapter.RecordRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateRecordUseCase creates a new UpdateRecordUseCase instance.
func NewUpdateRecordUseCase(recordRepo adapter.RecordRepository, categoryRepo adapter.CategoryRepository) *UpdateRecordUseCase {
	return &UpdateRecordUseCase{
		recordRepo:   recordRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the record update.
func (uc *UpdateRecordUseCase) Execute(ctx context.Context, input UpdateRecordInput) (*UpdateRecordOutput, error) {
	r, err := uc.recordRepo.FindByID(ctx, input.RecordID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeRecordNotFound,
				"record not found",
				domainerror.ErrRecordNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find record: %w", err)
	}

	if r.UserID != input.UserID {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeUnauthorizedRecordAccess,
			"you can only update your own records",
			domainerror.ErrUnauthorizedRecordAccess,
		)
	}

	if input.Amount != nil {
		if input.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeInvalidRecordAmount,
				"amount must be greater than 0",
				domainerror.ErrInvalidRecordAmount,
			)
		}
		r.Amount = *input.Amount
	}

	var category *entity.Category
	if input.CategoryID != nil {
		category, err = uc.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeRecordCategoryNotFound,
				"category not found",
				domainerror.ErrRecordCategoryNotFound,
			)
		}
		r.CategoryID = category.ID
	} else {
		category, _ = uc.categoryRepo.FindByID(ctx, r.CategoryID)
	}

	if input.Currency != nil {
		r.Currency = *input.Currency
	}
	if input.Description != nil {
		r.Description = *input.Description
	}
	if input.Notes != nil {
		r.Notes = *input.Notes
	}
	if input.PaymentMethod != nil {
		r.PaymentMethod = *input.PaymentMethod
	}
	if input.IsRecurring != nil {
		r.IsRecurring = *input.IsRecurring
	}
	if input.TransactionType != nil {
		r.TransactionType = *input.TransactionType
	}
	r.UpdatedAt = time.Now().UTC()

	if err := uc.recordRepo.Update(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}

	return &UpdateRecordOutput{Record: toOutput(r, category)}, nil
}
