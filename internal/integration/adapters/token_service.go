// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/integration/persistence"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	tokenIssuer = "spendwise"

	resetTokenLifetime = 1 * time.Hour
)

// sessionLifetimes holds the access and refresh durations for one session.
type sessionLifetimes struct {
	access  time.Duration
	refresh time.Duration
}

var (
	standardSession   = sessionLifetimes{access: 15 * time.Minute, refresh: 7 * 24 * time.Hour}
	rememberMeSession = sessionLifetimes{access: 7 * 24 * time.Hour, refresh: 30 * 24 * time.Hour}
)

// sessionClaims is the JWT payload shared by access and refresh tokens.
// UserID is serialized as a string to keep the payload stable across clients.
type sessionClaims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// tokenService signs session tokens with HMAC-SHA256 and tracks refresh
// tokens in the database so they can be revoked before expiry.
type tokenService struct {
	secret    []byte
	tokenRepo persistence.TokenRepository
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string, tokenRepo persistence.TokenRepository) adapter.TokenService {
	return &tokenService{
		secret:    []byte(secret),
		tokenRepo: tokenRepo,
	}
}

// GenerateTokenPair issues an access and refresh token pair for the user.
// The refresh token is persisted so a later logout can revoke it.
func (s *tokenService) GenerateTokenPair(ctx context.Context, userID uint, email string, rememberMe bool) (*adapter.TokenPair, error) {
	lifetimes := standardSession
	if rememberMe {
		lifetimes = rememberMeSession
	}

	access, err := s.sign(userID, email, tokenTypeAccess, lifetimes.access)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, err := s.sign(userID, email, tokenTypeRefresh, lifetimes.refresh)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiresAt := time.Now().UTC().Add(lifetimes.refresh)
	if err := s.tokenRepo.SaveRefreshToken(ctx, refresh, userID, expiresAt); err != nil {
		return nil, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return &adapter.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// ValidateAccessToken verifies the signature and type of an access token.
func (s *tokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return s.validate(token, tokenTypeAccess)
}

// ValidateRefreshToken verifies the signature and type of a refresh token.
// Revocation is checked separately against the database.
func (s *tokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return s.validate(token, tokenTypeRefresh)
}

// InvalidateRefreshToken marks a stored refresh token as revoked.
func (s *tokenService) InvalidateRefreshToken(ctx context.Context, token string) error {
	return s.tokenRepo.InvalidateRefreshToken(ctx, token)
}

// InvalidateAllUserTokens revokes every refresh token the user holds.
func (s *tokenService) InvalidateAllUserTokens(ctx context.Context, userID uint) error {
	return s.tokenRepo.InvalidateAllUserRefreshTokens(ctx, userID)
}

// IsRefreshTokenValid reports whether a refresh token is stored and unrevoked.
func (s *tokenService) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	return s.tokenRepo.IsRefreshTokenValid(ctx, token)
}

func (s *tokenService) sign(userID uint, email, tokenType string, lifetime time.Duration) (string, error) {
	now := time.Now().UTC()
	subject := strconv.FormatUint(uint64(userID), 10)
	claims := sessionClaims{
		UserID:    subject,
		Email:     email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   subject,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// validate parses the token, rejects any signing algorithm other than HMAC,
// and checks that the token carries the expected type claim.
func (s *tokenService) validate(tokenString, wantType string) (*adapter.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims.TokenType != wantType {
		return nil, fmt.Errorf("invalid token type: expected %s token", wantType)
	}

	userID, err := strconv.ParseUint(claims.UserID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID in token: %w", err)
	}

	return &adapter.TokenClaims{
		UserID:    uint(userID),
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// passwordResetTokenService issues single-use opaque reset tokens. Unlike
// session tokens these are random strings looked up in the database, so a
// leaked signing secret cannot forge one.
type passwordResetTokenService struct {
	tokenRepo persistence.TokenRepository
}

// NewPasswordResetTokenService creates a new password reset token service instance.
func NewPasswordResetTokenService(tokenRepo persistence.TokenRepository) adapter.PasswordResetTokenService {
	return &passwordResetTokenService{tokenRepo: tokenRepo}
}

// GenerateResetToken mints a random reset token valid for one hour.
func (s *passwordResetTokenService) GenerateResetToken(ctx context.Context, userID uint, email string) (*adapter.PasswordResetToken, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("failed to generate random token: %w", err)
	}
	token := hex.EncodeToString(raw)

	expiresAt := time.Now().UTC().Add(resetTokenLifetime)
	if err := s.tokenRepo.SavePasswordResetToken(ctx, token, userID, email, expiresAt); err != nil {
		return nil, fmt.Errorf("failed to save reset token: %w", err)
	}

	return &adapter.PasswordResetToken{
		Token:     token,
		UserID:    userID,
		Email:     email,
		ExpiresAt: expiresAt,
	}, nil
}

// ValidateResetToken looks up a reset token, returning an error when it is
// unknown or already consumed.
func (s *passwordResetTokenService) ValidateResetToken(ctx context.Context, token string) (*adapter.PasswordResetToken, error) {
	stored, err := s.tokenRepo.GetPasswordResetToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to get reset token: %w", err)
	}
	if stored == nil {
		return nil, fmt.Errorf("invalid or expired reset token")
	}

	return &adapter.PasswordResetToken{
		Token:     stored.Token,
		UserID:    stored.UserID,
		Email:     stored.Email,
		ExpiresAt: stored.ExpiresAt,
	}, nil
}

// InvalidateResetToken consumes a reset token so it cannot be replayed.
func (s *passwordResetTokenService) InvalidateResetToken(ctx context.Context, token string) error {
	return s.tokenRepo.InvalidatePasswordResetToken(ctx, token)
}
