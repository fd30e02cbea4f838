package auth

import (
	"context"
	"testing"

	domainerror "github.com/spendwise/backend/internal/domain/error"
)

func TestLoginUserUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a token pair for valid credentials", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		userRepo.seed("login@example.com", "SecurePass123!")
		uc := NewLoginUserUseCase(userRepo, &fakePasswordService{}, newFakeTokenService())

		output, err := uc.Execute(ctx, LoginUserInput{
			Email:    "login@example.com",
			Password: "SecurePass123!",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" || output.RefreshToken == "" {
			t.Error("expected both tokens to be issued")
		}
		if output.User == nil || output.User.Email != "login@example.com" {
			t.Error("expected the logged in user in the output")
		}
	})

	t.Run("unknown account and wrong password return the same code", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		userRepo.seed("login@example.com", "SecurePass123!")
		uc := NewLoginUserUseCase(userRepo, &fakePasswordService{}, newFakeTokenService())

		_, err := uc.Execute(ctx, LoginUserInput{Email: "nobody@example.com", Password: "SecurePass123!"})
		assertAuthErrorCode(t, err, domainerror.ErrCodeInvalidCredentials)

		_, err = uc.Execute(ctx, LoginUserInput{Email: "login@example.com", Password: "WrongPass123!"})
		assertAuthErrorCode(t, err, domainerror.ErrCodeInvalidCredentials)
	})
}

func TestRegisterUserUseCase(t *testing.T) {
	ctx := context.Background()

	newUseCase := func() (*RegisterUserUseCase, *fakeUserRepo, *fakeQuestionRepo) {
		userRepo := newFakeUserRepo()
		questionRepo := newFakeQuestionRepo()
		uc := NewRegisterUserUseCase(userRepo, questionRepo, &fakePasswordService{}, newFakeTokenService())
		return uc, userRepo, questionRepo
	}

	t.Run("creates the account and logs the user in", func(t *testing.T) {
		uc, userRepo, _ := newUseCase()

		output, err := uc.Execute(ctx, RegisterUserInput{
			Email:    "new@example.com",
			Name:     "New User",
			Password: "SecurePass123!",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" || output.RefreshToken == "" {
			t.Error("expected both tokens to be issued")
		}
		if _, err := userRepo.FindByEmail(ctx, "new@example.com"); err != nil {
			t.Errorf("expected the user to be persisted: %v", err)
		}
	})

	t.Run("stores the recovery answer when provided", func(t *testing.T) {
		uc, _, questionRepo := newUseCase()

		output, err := uc.Execute(ctx, RegisterUserInput{
			Email:              "new@example.com",
			Name:               "New User",
			Password:           "SecurePass123!",
			SecurityQuestionID: 1,
			SecurityAnswer:     " Rex ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored := questionRepo.answers[output.User.ID]
		if stored == nil {
			t.Fatal("expected a recovery answer on file")
		}
		if stored.AnswerHash != fakeHash("rex") {
			t.Errorf("expected the normalized answer to be hashed, got %q", stored.AnswerHash)
		}
	})

	t.Run("registration survives a failed answer save", func(t *testing.T) {
		uc, userRepo, questionRepo := newUseCase()
		questionRepo.saveErr = domainerror.ErrUserNotFound

		_, err := uc.Execute(ctx, RegisterUserInput{
			Email:              "new@example.com",
			Name:               "New User",
			Password:           "SecurePass123!",
			SecurityQuestionID: 1,
			SecurityAnswer:     "Rex",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := userRepo.FindByEmail(ctx, "new@example.com"); err != nil {
			t.Errorf("expected the account despite the answer failure: %v", err)
		}
	})

	t.Run("rejects a question outside the catalogue", func(t *testing.T) {
		uc, _, _ := newUseCase()

		_, err := uc.Execute(ctx, RegisterUserInput{
			Email:              "new@example.com",
			Name:               "New User",
			Password:           "SecurePass123!",
			SecurityQuestionID: 99,
			SecurityAnswer:     "Rex",
		})
		assertAuthErrorCode(t, err, domainerror.ErrCodeUnknownSecurityQuestion)
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		uc, _, _ := newUseCase()

		_, err := uc.Execute(ctx, RegisterUserInput{
			Email:    "not-an-email",
			Name:     "New User",
			Password: "SecurePass123!",
		})
		assertAuthErrorCode(t, err, domainerror.ErrCodeInvalidEmail)
	})

	t.Run("rejects a weak password", func(t *testing.T) {
		uc, _, _ := newUseCase()

		_, err := uc.Execute(ctx, RegisterUserInput{
			Email:    "new@example.com",
			Name:     "New User",
			Password: "short",
		})
		assertAuthErrorCode(t, err, domainerror.ErrCodeWeakPassword)
	})

	t.Run("rejects a taken email", func(t *testing.T) {
		uc, userRepo, _ := newUseCase()
		userRepo.seed("taken@example.com", "SecurePass123!")

		_, err := uc.Execute(ctx, RegisterUserInput{
			Email:    "taken@example.com",
			Name:     "New User",
			Password: "SecurePass123!",
		})
		assertAuthErrorCode(t, err, domainerror.ErrCodeEmailExists)
	})
}
