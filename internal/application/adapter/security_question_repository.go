// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/spendwise/backend/internal/domain/entity"
)

// SecurityQuestionRepository defines the interface for the account-recovery
// question catalogue and per-user answers.
type SecurityQuestionRepository interface {
	// SeedQuestions inserts catalogue questions that do not exist yet.
	SeedQuestions(ctx context.Context, questions []*entity.SecurityQuestion) error

	// FindAllQuestions retrieves the full question catalogue ordered by ID.
	FindAllQuestions(ctx context.Context) ([]*entity.SecurityQuestion, error)

	// FindQuestionByID retrieves a single catalogue question.
	FindQuestionByID(ctx context.Context, id uint) (*entity.SecurityQuestion, error)

	// SaveAnswer stores a user's hashed answer, replacing any previous one.
	SaveAnswer(ctx context.Context, answer *entity.SecurityAnswer) error

	// FindAnswerByUserID retrieves the user's answer on file.
	// Returns (nil, nil) when the user has none.
	FindAnswerByUserID(ctx context.Context, userID uint) (*entity.SecurityAnswer, error)
}
