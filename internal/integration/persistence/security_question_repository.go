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

// securityQuestionRepository implements the adapter.SecurityQuestionRepository interface.
type securityQuestionRepository struct {
	db *gorm.DB
}

// NewSecurityQuestionRepository creates a new security question repository instance.
func NewSecurityQuestionRepository(db *gorm.DB) adapter.SecurityQuestionRepository {
	return &securityQuestionRepository{
		db: db,
	}
}

// SeedQuestions inserts catalogue questions that do not exist yet.
func (r *securityQuestionRepository) SeedQuestions(ctx context.Context, questions []*entity.SecurityQuestion) error {
	for _, question := range questions {
		questionModel := model.SecurityQuestionFromEntity(question)
		result := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "text"}},
				DoNothing: true,
			}).
			Create(questionModel)
		if result.Error != nil {
			return result.Error
		}
	}
	return nil
}

// FindAllQuestions retrieves the full question catalogue ordered by ID.
func (r *securityQuestionRepository) FindAllQuestions(ctx context.Context) ([]*entity.SecurityQuestion, error) {
	var questionModels []model.SecurityQuestionModel
	result := r.db.WithContext(ctx).Order("id ASC").Find(&questionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	questions := make([]*entity.SecurityQuestion, len(questionModels))
	for i := range questionModels {
		questions[i] = questionModels[i].ToEntity()
	}
	return questions, nil
}

// FindQuestionByID retrieves a single catalogue question.
func (r *securityQuestionRepository) FindQuestionByID(ctx context.Context, id uint) (*entity.SecurityQuestion, error) {
	var questionModel model.SecurityQuestionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&questionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUnknownSecurityQuestion
		}
		return nil, result.Error
	}
	return questionModel.ToEntity(), nil
}

// SaveAnswer stores a user's hashed answer, replacing any previous one.
func (r *securityQuestionRepository) SaveAnswer(ctx context.Context, answer *entity.SecurityAnswer) error {
	answerModel := model.SecurityAnswerFromEntity(answer)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"question_id", "answer_hash", "updated_at"}),
		}).
		Create(answerModel)
	if result.Error != nil {
		return result.Error
	}
	answer.ID = answerModel.ID
	return nil
}

// FindAnswerByUserID retrieves the user's answer on file.
func (r *securityQuestionRepository) FindAnswerByUserID(ctx context.Context, userID uint) (*entity.SecurityAnswer, error) {
	var answerModel model.SecurityAnswerModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&answerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return answerModel.ToEntity(), nil
}
