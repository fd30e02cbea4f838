// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/spendwise/backend/internal/domain/entity"
)

// GoalRepository defines the interface for spending goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal in the database. The assigned ID is written
	// back to the entity.
	Create(ctx context.Context, goal *entity.SpendingGoal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uint) (*entity.SpendingGoal, error)

	// FindActiveByUserID retrieves all active goals for a user, newest first.
	FindActiveByUserID(ctx context.Context, userID uint) ([]*entity.SpendingGoal, error)

	// FindActiveByUserCategoryPeriod retrieves the active legacy goal for the
	// given (user, category, period) scope. Returns (nil, nil) when absent.
	FindActiveByUserCategoryPeriod(ctx context.Context, userID, categoryID uint, period entity.GoalPeriod) (*entity.SpendingGoal, error)

	// ExistsActiveByUserCategoryPeriod checks whether an active legacy goal
	// occupies the given (user, category, period) scope.
	ExistsActiveByUserCategoryPeriod(ctx context.Context, userID, categoryID uint, period entity.GoalPeriod) (bool, error)

	// Update updates an existing goal in the database.
	Update(ctx context.Context, goal *entity.SpendingGoal) error

	// Delete removes a goal from the database (hard delete).
	Delete(ctx context.Context, goal *entity.SpendingGoal) error

	// ReplaceActive deactivates the old goal and creates the new one inside a
	// single transaction, so a failed create cannot leave the scope without an
	// active goal.
	ReplaceActive(ctx context.Context, old, replacement *entity.SpendingGoal) error

	// CountByUserID counts all goals ever created by a user. Used as the
	// goal-count signal for achievement evaluation.
	CountByUserID(ctx context.Context, userID uint) (int64, error)
}
