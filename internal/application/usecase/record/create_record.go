// Package record contains expense record use cases.
package record

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum allowed length for record descriptions.
	MaxDescriptionLength = 255
	// MaxNotesLength is the maximum allowed length for record notes.
	MaxNotesLength = 1000
	// DefaultCurrency is used when the request carries no currency.
	DefaultCurrency = "EUR"
)

// AchievementEvaluator re-checks a user's achievements after an activity
// signal changes. Evaluation failures never fail the triggering operation.
type AchievementEvaluator interface {
	Evaluate(ctx context.Context, userID uint) error
}

// CreateRecordInput represents the input for record creation. The category may
// be referenced by ID or by name; the ID wins when both are present.
type CreateRecordInput struct {
	UserID          uint
	CategoryID      *uint
	CategoryName    *string
	Amount          decimal.Decimal
	Currency        string
	Description     string
	Notes           string
	PaymentMethod   string
	IsRecurring     bool
	TransactionType entity.TransactionType
}

// CreateRecordOutput represents the output of record creation.
type CreateRecordOutput struct {
	Record *RecordOutput
}

// CreateRecordUseCase handles record creation logic.
type CreateRecordUseCase struct {
	recordRepo   adapter.RecordRepository
	categoryRepo adapter.CategoryRepository
	achievements AchievementEvaluator
}

// NewCreateRecordUseCase creates a new CreateRecordUseCase instance.
// achievements may be nil, in which case no evaluation is triggered.
func NewCreateRecordUseCase(
	recordRepo adapter.RecordRepository,
	categoryRepo adapter.CategoryRepository,
	achievements AchievementEvaluator,
) *CreateRecordUseCase {
	return &CreateRecordUseCase{
		recordRepo:   recordRepo,
		categoryRepo: categoryRepo,
		achievements: achievements,
	}
}

// Execute performs the record creation.
func (uc *CreateRecordUseCase) Execute(ctx context.Context, input CreateRecordInput) (*CreateRecordOutput, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecordAmount,
			"amount must be greater than 0",
			domainerror.ErrInvalidRecordAmount,
		)
	}

	if len(input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordFieldTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			nil,
		)
	}
	if len(input.Notes) > MaxNotesLength {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordFieldTooLong,
			fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
			nil,
		)
	}

	category, err := uc.resolveCategory(ctx, input.CategoryID, input.CategoryName)
	if err != nil {
		return nil, err
	}

	transactionType := input.TransactionType
	if transactionType == "" {
		transactionType = entity.TransactionTypeExpense
	}
	currency := input.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	r := entity.NewExpenseRecord(
		input.UserID,
		category.ID,
		input.Amount,
		currency,
		input.Description,
		input.Notes,
		input.PaymentMethod,
		input.IsRecurring,
		transactionType,
	)

	if err := uc.recordRepo.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	uc.triggerAchievements(ctx, input.UserID)

	return &CreateRecordOutput{Record: toOutput(r, category)}, nil
}

// resolveCategory loads the record's category by ID or by name.
func (uc *CreateRecordUseCase) resolveCategory(ctx context.Context, categoryID *uint, categoryName *string) (*entity.Category, error) {
	switch {
	case categoryID != nil:
		category, err := uc.categoryRepo.FindByID(ctx, *categoryID)
		if err != nil {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeRecordCategoryNotFound,
				"category not found",
				domainerror.ErrRecordCategoryNotFound,
			)
		}
		return category, nil
	case categoryName != nil && *categoryName != "":
		category, err := uc.categoryRepo.FindByName(ctx, *categoryName)
		if err != nil {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeRecordCategoryNotFound,
				"category not found",
				domainerror.ErrRecordCategoryNotFound,
			)
		}
		return category, nil
	default:
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordCategoryRequired,
			"category id or name must be provided",
			domainerror.ErrRecordCategoryRequired,
		)
	}
}

// triggerAchievements re-evaluates the user's achievements. Failures are
// logged and swallowed so record creation never fails on the side effect.
func (uc *CreateRecordUseCase) triggerAchievements(ctx context.Context, userID uint) {
	if uc.achievements == nil {
		return
	}
	if err := uc.achievements.Evaluate(ctx, userID); err != nil {
		slog.Warn("Failed to evaluate achievements after record creation",
			"userID", userID,
			"error", err,
		)
	}
}
