// Package goal contains spending-goal use cases.
package goal

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

// UpdateGoalInput represents the input for goal update. Only non-nil fields
// overwrite the stored goal (partial update semantics).
type UpdateGoalInput struct {
	GoalID        uint
	UserID        uint
	GoalName      *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	Category      *string
	Deadline      *time.Time
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *GoalOutput
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo     adapter.GoalRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository, categoryRepo adapter.CategoryRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo:     goalRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the goal update. Period windows are never recomputed here.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	g, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	if g.UserID != input.UserID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"you can only update your own goals",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	if input.GoalName != nil {
		g.GoalName = *input.GoalName
	}
	if input.TargetAmount != nil {
		g.TargetAmount = *input.TargetAmount
	}
	if input.CurrentAmount != nil {
		g.CurrentAmount = *input.CurrentAmount
	}
	if input.Category != nil {
		g.Category = input.Category
	}
	if input.Deadline != nil {
		g.Deadline = input.Deadline
	}

	if err := uc.goalRepo.Update(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{Goal: toOutput(g, uc.legacyCategory(ctx, g.CategoryID))}, nil
}

// legacyCategory resolves the legacy category reference, if any.
func (uc *UpdateGoalUseCase) legacyCategory(ctx context.Context, categoryID *uint) *entity.Category {
	if categoryID == nil {
		return nil
	}
	category, err := uc.categoryRepo.FindByID(ctx, *categoryID)
	if err != nil {
		return nil
	}
	return category
}
