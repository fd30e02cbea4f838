// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/persistence/model"
)

// achievementRepository implements the adapter.AchievementRepository interface.
type achievementRepository struct {
	db *gorm.DB
}

// NewAchievementRepository creates a new achievement repository instance.
func NewAchievementRepository(db *gorm.DB) adapter.AchievementRepository {
	return &achievementRepository{
		db: db,
	}
}

// FindByCode retrieves an achievement definition by its code.
func (r *achievementRepository) FindByCode(ctx context.Context, code string) (*entity.Achievement, error) {
	var achievementModel model.AchievementModel
	result := r.db.WithContext(ctx).Where("code = ?", code).First(&achievementModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAchievementNotFound
		}
		return nil, result.Error
	}
	return achievementModel.ToEntity(), nil
}

// FindUserAchievement retrieves a user's row for an achievement code, or
// (nil, nil) when absent.
func (r *achievementRepository) FindUserAchievement(ctx context.Context, userID uint, code string) (*entity.UserAchievement, error) {
	var uaModel model.UserAchievementModel
	result := r.db.WithContext(ctx).
		Joins("JOIN achievements ON achievements.id = user_achievements.achievement_id").
		Where("user_achievements.user_id = ? AND achievements.code = ?", userID, code).
		First(&uaModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return uaModel.ToEntity(), nil
}

// FindByUserID retrieves all achievement rows for a user with definitions.
func (r *achievementRepository) FindByUserID(ctx context.Context, userID uint) ([]*entity.UserAchievementWithDefinition, error) {
	var uaModels []model.UserAchievementModel
	result := r.db.WithContext(ctx).
		Preload("Achievement").
		Where("user_id = ?", userID).
		Find(&uaModels)
	if result.Error != nil {
		return nil, result.Error
	}

	rows := make([]*entity.UserAchievementWithDefinition, len(uaModels))
	for i, um := range uaModels {
		rows[i] = um.ToEntityWithDefinition()
	}
	return rows, nil
}

// SaveUserAchievement inserts or updates a user achievement row.
func (r *achievementRepository) SaveUserAchievement(ctx context.Context, ua *entity.UserAchievement) error {
	uaModel := model.UserAchievementFromEntity(ua)
	result := r.db.WithContext(ctx).Save(uaModel)
	if result.Error != nil {
		return result.Error
	}
	ua.ID = uaModel.ID
	return nil
}

// SeedDefinitions inserts achievement definitions that do not exist yet.
func (r *achievementRepository) SeedDefinitions(ctx context.Context, definitions []*entity.Achievement) error {
	for _, definition := range definitions {
		definitionModel := model.AchievementFromEntity(definition)
		result := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "code"}},
				DoNothing: true,
			}).
			Create(definitionModel)
		if result.Error != nil {
			return result.Error
		}
	}
	return nil
}
