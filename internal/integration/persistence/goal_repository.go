// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new goal in the database.
func (r *goalRepository) Create(ctx context.Context, goal *entity.SpendingGoal) error {
	goalModel := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return result.Error
	}
	goal.ID = goalModel.ID
	return nil
}

// FindByID retrieves a goal by its ID.
func (r *goalRepository) FindByID(ctx context.Context, id uint) (*entity.SpendingGoal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindActiveByUserID retrieves all active goals for a user, newest first.
func (r *goalRepository) FindActiveByUserID(ctx context.Context, userID uint) ([]*entity.SpendingGoal, error) {
	var goalModels []model.GoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND active = ?", userID, true).
		Order("created_at DESC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.SpendingGoal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

// FindActiveByUserCategoryPeriod retrieves the active legacy goal for the
// given scope, or (nil, nil) when absent.
func (r *goalRepository) FindActiveByUserCategoryPeriod(ctx context.Context, userID, categoryID uint, period entity.GoalPeriod) (*entity.SpendingGoal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND category_id = ? AND period = ? AND active = ?", userID, categoryID, string(period), true).
		First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// ExistsActiveByUserCategoryPeriod checks whether an active legacy goal
// occupies the given scope.
func (r *goalRepository) ExistsActiveByUserCategoryPeriod(ctx context.Context, userID, categoryID uint, period entity.GoalPeriod) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Where("user_id = ? AND category_id = ? AND period = ? AND active = ?", userID, categoryID, string(period), true).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing goal in the database.
func (r *goalRepository) Update(ctx context.Context, goal *entity.SpendingGoal) error {
	goalModel := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).Save(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a goal from the database (hard delete).
func (r *goalRepository) Delete(ctx context.Context, goal *entity.SpendingGoal) error {
	result := r.db.WithContext(ctx).Delete(&model.GoalModel{}, "id = ?", goal.ID)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ReplaceActive deactivates the old goal and creates the replacement inside a
// single transaction.
func (r *goalRepository) ReplaceActive(ctx context.Context, old, replacement *entity.SpendingGoal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.GoalModel{}).
			Where("id = ?", old.ID).
			Update("active", false)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrGoalNotFound
		}

		replacementModel := model.GoalFromEntity(replacement)
		if err := tx.Create(replacementModel).Error; err != nil {
			return err
		}
		replacement.ID = replacementModel.ID
		return nil
	})
}

// CountByUserID counts all goals ever created by a user.
func (r *goalRepository) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Where("user_id = ?", userID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
