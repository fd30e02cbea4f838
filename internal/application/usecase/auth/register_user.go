// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// RegisterUserInput represents the input for user registration. The security
// question fields are optional; when both are set the answer is stored for
// question-based password recovery.
type RegisterUserInput struct {
	Email              string
	Name               string
	Password           string
	SecurityQuestionID uint
	SecurityAnswer     string
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RegisterUserUseCase handles user registration logic.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	questionRepo    adapter.SecurityQuestionRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	questionRepo adapter.SecurityQuestionRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		questionRepo:    questionRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute creates the account and logs the new user in.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}
	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	withRecovery := input.SecurityQuestionID != 0 && normalizeAnswer(input.SecurityAnswer) != ""
	if withRecovery {
		if _, err := uc.questionRepo.FindQuestionByID(ctx, input.SecurityQuestionID); err != nil {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUnknownSecurityQuestion,
				"security question does not exist",
				domainerror.ErrUnknownSecurityQuestion,
			)
		}
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailExists,
			"email already exists",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(input.Email, input.Name, passwordHash)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// The account exists at this point; a recovery answer that fails to save
	// can still be set later from the profile.
	if withRecovery {
		if err := uc.saveRecoveryAnswer(ctx, user.ID, input.SecurityQuestionID, input.SecurityAnswer); err != nil {
			slog.Warn("Failed to store recovery answer during registration", "userID", user.ID, "error", err)
		}
	}

	pair, err := uc.tokenService.GenerateTokenPair(ctx, user.ID, user.Email, false)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &RegisterUserOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user,
	}, nil
}

func (uc *RegisterUserUseCase) saveRecoveryAnswer(ctx context.Context, userID, questionID uint, answer string) error {
	answerHash, err := uc.passwordService.HashPassword(normalizeAnswer(answer))
	if err != nil {
		return err
	}
	return uc.questionRepo.SaveAnswer(ctx, entity.NewSecurityAnswer(userID, questionID, answerHash))
}
