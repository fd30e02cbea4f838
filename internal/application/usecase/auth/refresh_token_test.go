package auth

import (
	"context"
	"errors"
	"testing"

	domainerror "github.com/spendwise/backend/internal/domain/error"
)

func TestRefreshTokenUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("rotates the token pair", func(t *testing.T) {
		tokenService := newFakeTokenService()
		tokenService.refreshClaims = &adapterClaims{userID: 42, email: "rotate@example.com"}
		uc := NewRefreshTokenUseCase(tokenService)

		output, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: "old-refresh"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" || output.RefreshToken == "" {
			t.Error("expected a fresh token pair")
		}
		if len(tokenService.revokedTokens) != 1 || tokenService.revokedTokens[0] != "old-refresh" {
			t.Errorf("expected the presented token to be revoked, got %v", tokenService.revokedTokens)
		}
	})

	t.Run("rejects a token that fails validation", func(t *testing.T) {
		tokenService := newFakeTokenService()
		tokenService.refreshErr = errors.New("bad signature")
		uc := NewRefreshTokenUseCase(tokenService)

		_, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: "garbage"})
		assertAuthErrorCode(t, err, domainerror.ErrCodeInvalidToken)
	})

	t.Run("rejects a revoked token", func(t *testing.T) {
		tokenService := newFakeTokenService()
		tokenService.refreshValid = false
		uc := NewRefreshTokenUseCase(tokenService)

		_, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: "revoked"})
		assertAuthErrorCode(t, err, domainerror.ErrCodeInvalidToken)
		if len(tokenService.revokedTokens) != 0 {
			t.Error("expected no revocation of an already revoked token")
		}
	})
}
