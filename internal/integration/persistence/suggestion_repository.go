// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	"github.com/spendwise/backend/internal/integration/persistence/model"
)

// suggestionRepository implements the adapter.SuggestionRepository interface.
type suggestionRepository struct {
	db *gorm.DB
}

// NewSuggestionRepository creates a new suggestion repository instance.
func NewSuggestionRepository(db *gorm.DB) adapter.SuggestionRepository {
	return &suggestionRepository{
		db: db,
	}
}

// Save stores a newly generated suggestion set.
func (r *suggestionRepository) Save(ctx context.Context, set *entity.SuggestionSet) error {
	setModel := model.SuggestionSetFromEntity(set)
	result := r.db.WithContext(ctx).Create(setModel)
	if result.Error != nil {
		return result.Error
	}
	set.ID = setModel.ID
	return nil
}

// FindLatestByUserID retrieves the most recent suggestion set for a user.
func (r *suggestionRepository) FindLatestByUserID(ctx context.Context, userID uint) (*entity.SuggestionSet, error) {
	var setModel model.SuggestionSetModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("generated_at DESC").
		First(&setModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return setModel.ToEntity(), nil
}

// DeleteByUserID removes all suggestion sets for a user.
func (r *suggestionRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	result := r.db.WithContext(ctx).Delete(&model.SuggestionSetModel{}, "user_id = ?", userID)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
