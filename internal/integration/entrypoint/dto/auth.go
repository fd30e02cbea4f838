// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/spendwise/backend/internal/domain/entity"
)

// RegisterRequest represents the request body for user registration. The
// security question fields are optional and set up question-based recovery.
type RegisterRequest struct {
	Email              string `json:"email" binding:"required,email"`
	Name               string `json:"name" binding:"required,min=1,max=100"`
	Password           string `json:"password" binding:"required,min=8"`
	SecurityQuestionID uint   `json:"securityQuestionId"`
	SecurityAnswer     string `json:"securityAnswer"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutRequest represents the request body for user logout.
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ForgotPasswordRequest represents the request body for forgot password.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// DeleteAccountRequest represents the request body for account deletion.
type DeleteAccountRequest struct {
	Password     string `json:"password" binding:"required"`
	Confirmation string `json:"confirmation" binding:"required"`
}

// ResetPasswordRequest represents the request body for password reset.
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// SecurityQuestionResponse represents one catalogue question.
type SecurityQuestionResponse struct {
	ID       uint   `json:"id"`
	Question string `json:"question"`
}

// SecurityQuestionsListResponse wraps the question catalogue.
type SecurityQuestionsListResponse struct {
	Questions []SecurityQuestionResponse `json:"questions"`
}

// SetSecurityAnswerRequest represents the request body for choosing a
// recovery question.
type SetSecurityAnswerRequest struct {
	QuestionID uint   `json:"questionId" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
}

// ResetQuestionRequest represents the request body for looking up an
// account's recovery question.
type ResetQuestionRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetQuestionResponse carries the question the account holder must answer.
type ResetQuestionResponse struct {
	QuestionID uint   `json:"questionId"`
	Question   string `json:"question"`
}

// AnswerResetRequest represents the request body for completing a
// question-based password reset.
type AnswerResetRequest struct {
	Email       string `json:"email" binding:"required,email"`
	QuestionID  uint   `json:"questionId" binding:"required"`
	Answer      string `json:"answer" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// AuthResponse represents the response for authentication endpoints.
type AuthResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

// TokenResponse represents the response for token refresh.
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse represents the user data in API responses.
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
}
