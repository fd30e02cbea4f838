// Package goal contains spending-goal use cases.
package goal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation. The request carries
// both the simplified and the legacy shape; the presence of GoalName and
// Deadline selects the simplified creation path.
type CreateGoalInput struct {
	UserID        uint
	GoalName      *string
	TargetAmount  decimal.Decimal
	CurrentAmount *decimal.Decimal
	Category      *string
	Deadline      *time.Time

	// Legacy fields.
	CategoryID       *uint
	Period           *entity.GoalPeriod
	ConfirmDuplicate bool
	StartDate        *time.Time
	EndDate          *time.Time
	StartNextPeriod  bool
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *GoalOutput
}

// AchievementEvaluator re-checks a user's achievements after an activity
// signal changes. Evaluation failures never fail the triggering operation.
type AchievementEvaluator interface {
	Evaluate(ctx context.Context, userID uint) error
}

// CreateGoalUseCase handles goal creation logic for both models.
type CreateGoalUseCase struct {
	goalRepo     adapter.GoalRepository
	categoryRepo adapter.CategoryRepository
	achievements AchievementEvaluator
	minAmount    decimal.Decimal
	now          func() time.Time
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance. minAmount is
// the configurable floor for legacy-path target amounts. achievements may be
// nil, in which case no evaluation is triggered.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, categoryRepo adapter.CategoryRepository, achievements AchievementEvaluator, minAmount decimal.Decimal) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo:     goalRepo,
		categoryRepo: categoryRepo,
		achievements: achievements,
		minAmount:    minAmount,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Execute performs the goal creation, dispatching on the request shape.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if input.GoalName != nil && input.Deadline != nil {
		return uc.createSimpleGoal(ctx, input)
	}
	return uc.createLegacyGoal(ctx, input)
}

// createSimpleGoal persists a goal in the simplified model. This path performs
// no duplicate checking.
func (uc *CreateGoalUseCase) createSimpleGoal(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if input.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than 0",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	current := decimal.Zero
	if input.CurrentAmount != nil {
		current = *input.CurrentAmount
	}

	g := entity.NewSimpleGoal(input.UserID, *input.GoalName, input.TargetAmount, current, input.Category, input.Deadline)
	if err := uc.goalRepo.Create(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	uc.triggerAchievements(ctx, input.UserID)

	return &CreateGoalOutput{Goal: toOutput(g, nil)}, nil
}

// createLegacyGoal persists a goal in the legacy (category + period) model,
// resolving duplicate active goals for the same scope.
func (uc *CreateGoalUseCase) createLegacyGoal(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if input.TargetAmount.LessThan(uc.minAmount) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"amount must be at least "+uc.minAmount.StringFixed(2),
			domainerror.ErrInvalidTargetAmount,
		)
	}

	if input.CategoryID == nil || input.Period == nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"category id and period are required",
			nil,
		)
	}

	category, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalCategoryNotFound,
			"category not found",
			domainerror.ErrGoalCategoryNotFound,
		)
	}

	existing, err := uc.goalRepo.FindActiveByUserCategoryPeriod(ctx, input.UserID, category.ID, *input.Period)
	if err != nil {
		return nil, fmt.Errorf("failed to look up existing goal: %w", err)
	}

	if existing != nil && !input.ConfirmDuplicate {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeDuplicateGoal,
			"a goal for the same category and period already exists; set confirmDuplicate=true to replace it",
			domainerror.ErrDuplicateGoal,
		)
	}

	start, end, err := uc.resolveWindow(input)
	if err != nil {
		return nil, err
	}

	g := entity.NewLegacyGoal(input.UserID, category.ID, *input.Period, input.TargetAmount, start, end)

	if existing != nil {
		// Deactivate-then-create, executed inside a single transaction so a
		// failed insert cannot leave the scope without an active goal.
		existing.Active = false
		if err := uc.goalRepo.ReplaceActive(ctx, existing, g); err != nil {
			return nil, fmt.Errorf("failed to replace goal: %w", err)
		}
	} else {
		if err := uc.goalRepo.Create(ctx, g); err != nil {
			return nil, fmt.Errorf("failed to create goal: %w", err)
		}
	}

	uc.triggerAchievements(ctx, input.UserID)

	return &CreateGoalOutput{Goal: toOutput(g, category)}, nil
}

// triggerAchievements re-evaluates the user's achievements. Failures are
// logged and swallowed so goal creation never fails on the side effect.
func (uc *CreateGoalUseCase) triggerAchievements(ctx context.Context, userID uint) {
	if uc.achievements == nil {
		return
	}
	if err := uc.achievements.Evaluate(ctx, userID); err != nil {
		slog.Warn("Failed to evaluate achievements after goal creation",
			"userID", userID,
			"error", err,
		)
	}
}

// resolveWindow returns the goal's date window: the request's explicit window
// when both bounds are supplied, the computed period range otherwise.
func (uc *CreateGoalUseCase) resolveWindow(input CreateGoalInput) (time.Time, time.Time, error) {
	if input.StartDate != nil && input.EndDate != nil {
		return *input.StartDate, *input.EndDate, nil
	}
	return PeriodRange(uc.now(), *input.Period, input.StartNextPeriod)
}
