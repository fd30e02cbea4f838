// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// normalizeAnswer canonicalizes a recovery answer before hashing or
// comparison. Answers are matched case-insensitively with surrounding
// whitespace ignored.
func normalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

// ListSecurityQuestionsOutput carries the question catalogue.
type ListSecurityQuestionsOutput struct {
	Questions []*entity.SecurityQuestion
}

// ListSecurityQuestionsUseCase serves the recovery question catalogue.
type ListSecurityQuestionsUseCase struct {
	questionRepo adapter.SecurityQuestionRepository
}

// NewListSecurityQuestionsUseCase creates a new ListSecurityQuestionsUseCase instance.
func NewListSecurityQuestionsUseCase(questionRepo adapter.SecurityQuestionRepository) *ListSecurityQuestionsUseCase {
	return &ListSecurityQuestionsUseCase{questionRepo: questionRepo}
}

// Execute retrieves the catalogue.
func (uc *ListSecurityQuestionsUseCase) Execute(ctx context.Context) (*ListSecurityQuestionsOutput, error) {
	questions, err := uc.questionRepo.FindAllQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list security questions: %w", err)
	}
	return &ListSecurityQuestionsOutput{Questions: questions}, nil
}

// SetSecurityAnswerInput represents the input for choosing a recovery question.
type SetSecurityAnswerInput struct {
	UserID     uint
	QuestionID uint
	Answer     string
}

// SetSecurityAnswerOutput represents the output of choosing a recovery question.
type SetSecurityAnswerOutput struct {
	Message string
}

// SetSecurityAnswerUseCase stores or replaces the user's recovery answer.
type SetSecurityAnswerUseCase struct {
	questionRepo    adapter.SecurityQuestionRepository
	passwordService adapter.PasswordService
}

// NewSetSecurityAnswerUseCase creates a new SetSecurityAnswerUseCase instance.
func NewSetSecurityAnswerUseCase(
	questionRepo adapter.SecurityQuestionRepository,
	passwordService adapter.PasswordService,
) *SetSecurityAnswerUseCase {
	return &SetSecurityAnswerUseCase{
		questionRepo:    questionRepo,
		passwordService: passwordService,
	}
}

// Execute hashes and stores the answer for the chosen catalogue question.
func (uc *SetSecurityAnswerUseCase) Execute(ctx context.Context, input SetSecurityAnswerInput) (*SetSecurityAnswerOutput, error) {
	answer := normalizeAnswer(input.Answer)
	if answer == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"security answer is required",
			nil,
		)
	}

	if _, err := uc.questionRepo.FindQuestionByID(ctx, input.QuestionID); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUnknownSecurityQuestion,
			"security question does not exist",
			domainerror.ErrUnknownSecurityQuestion,
		)
	}

	answerHash, err := uc.passwordService.HashPassword(answer)
	if err != nil {
		return nil, fmt.Errorf("failed to hash security answer: %w", err)
	}

	if err := uc.questionRepo.SaveAnswer(ctx, entity.NewSecurityAnswer(input.UserID, input.QuestionID, answerHash)); err != nil {
		return nil, fmt.Errorf("failed to save security answer: %w", err)
	}

	return &SetSecurityAnswerOutput{Message: "Security question saved"}, nil
}

// GetResetQuestionInput represents the input for starting a question-based reset.
type GetResetQuestionInput struct {
	Email string
}

// GetResetQuestionOutput carries the question the account holder must answer.
type GetResetQuestionOutput struct {
	QuestionID uint
	Question   string
}

// GetResetQuestionUseCase looks up the recovery question for an account.
type GetResetQuestionUseCase struct {
	userRepo     adapter.UserRepository
	questionRepo adapter.SecurityQuestionRepository
}

// NewGetResetQuestionUseCase creates a new GetResetQuestionUseCase instance.
func NewGetResetQuestionUseCase(
	userRepo adapter.UserRepository,
	questionRepo adapter.SecurityQuestionRepository,
) *GetResetQuestionUseCase {
	return &GetResetQuestionUseCase{
		userRepo:     userRepo,
		questionRepo: questionRepo,
	}
}

// Execute resolves the account's question. Unknown accounts and accounts
// without an answer on file are indistinguishable to the caller.
func (uc *GetResetQuestionUseCase) Execute(ctx context.Context, input GetResetQuestionInput) (*GetResetQuestionOutput, error) {
	notSet := domainerror.NewAuthError(
		domainerror.ErrCodeSecurityQuestionNotSet,
		"no security question on file for this account",
		domainerror.ErrSecurityQuestionNotSet,
	)

	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, notSet
	}

	answer, err := uc.questionRepo.FindAnswerByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load security answer: %w", err)
	}
	if answer == nil {
		return nil, notSet
	}

	question, err := uc.questionRepo.FindQuestionByID(ctx, answer.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load security question: %w", err)
	}

	return &GetResetQuestionOutput{
		QuestionID: question.ID,
		Question:   question.Text,
	}, nil
}

// AnswerResetInput represents the input for completing a question-based reset.
type AnswerResetInput struct {
	Email       string
	QuestionID  uint
	Answer      string
	NewPassword string
}

// AnswerResetOutput represents the output of a question-based reset.
type AnswerResetOutput struct {
	Message string
}

// AnswerResetUseCase verifies a recovery answer and sets a new password.
type AnswerResetUseCase struct {
	userRepo        adapter.UserRepository
	questionRepo    adapter.SecurityQuestionRepository
	passwordService adapter.PasswordService
}

// NewAnswerResetUseCase creates a new AnswerResetUseCase instance.
func NewAnswerResetUseCase(
	userRepo adapter.UserRepository,
	questionRepo adapter.SecurityQuestionRepository,
	passwordService adapter.PasswordService,
) *AnswerResetUseCase {
	return &AnswerResetUseCase{
		userRepo:        userRepo,
		questionRepo:    questionRepo,
		passwordService: passwordService,
	}
}

// Execute checks the answer against the stored hash and, on a match, replaces
// the account password. Every verification failure maps to the same error.
func (uc *AnswerResetUseCase) Execute(ctx context.Context, input AnswerResetInput) (*AnswerResetOutput, error) {
	if err := uc.passwordService.ValidatePasswordStrength(input.NewPassword); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	wrongAnswer := domainerror.NewAuthError(
		domainerror.ErrCodeWrongSecurityAnswer,
		"security answer incorrect",
		domainerror.ErrWrongSecurityAnswer,
	)

	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, wrongAnswer
	}

	stored, err := uc.questionRepo.FindAnswerByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load security answer: %w", err)
	}
	if stored == nil || stored.QuestionID != input.QuestionID {
		return nil, wrongAnswer
	}

	if err := uc.passwordService.VerifyPassword(stored.AnswerHash, normalizeAnswer(input.Answer)); err != nil {
		return nil, wrongAnswer
	}

	passwordHash, err := uc.passwordService.HashPassword(input.NewPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now().UTC()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user password: %w", err)
	}

	return &AnswerResetOutput{Message: "Password has been successfully reset"}, nil
}
