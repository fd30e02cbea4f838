// Package goal contains spending-goal use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
)

// ListGoalsInput represents the input for listing active goals.
type ListGoalsInput struct {
	UserID uint
}

// ListGoalsOutput represents the output of listing active goals.
type ListGoalsOutput struct {
	Goals []*GoalOutput
}

// ListGoalsUseCase returns a user's active goals, newest first.
type ListGoalsUseCase struct {
	goalRepo     adapter.GoalRepository
	categoryRepo adapter.CategoryRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository, categoryRepo adapter.CategoryRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo:     goalRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute lists the user's active goals. It has no side effects.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindActiveByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	outputs := make([]*GoalOutput, len(goals))
	for i, g := range goals {
		outputs[i] = toOutput(g, uc.resolveCategory(ctx, g.CategoryID))
	}

	return &ListGoalsOutput{Goals: outputs}, nil
}

// resolveCategory loads the legacy category when the goal references one.
// A missing category only blanks the legacy name in the projection.
func (uc *ListGoalsUseCase) resolveCategory(ctx context.Context, categoryID *uint) *entity.Category {
	if categoryID == nil {
		return nil
	}
	category, err := uc.categoryRepo.FindByID(ctx, *categoryID)
	if err != nil {
		return nil
	}
	return category
}
