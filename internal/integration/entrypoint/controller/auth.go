// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendwise/backend/internal/application/usecase/auth"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/entrypoint/dto"
)

// AuthController handles authentication and account-recovery endpoints.
type AuthController struct {
	register       *auth.RegisterUserUseCase
	login          *auth.LoginUserUseCase
	refresh        *auth.RefreshTokenUseCase
	logout         *auth.LogoutUserUseCase
	forgotPassword *auth.ForgotPasswordUseCase
	resetPassword  *auth.ResetPasswordUseCase
	listQuestions  *auth.ListSecurityQuestionsUseCase
	resetQuestion  *auth.GetResetQuestionUseCase
	answerReset    *auth.AnswerResetUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	register *auth.RegisterUserUseCase,
	login *auth.LoginUserUseCase,
	refresh *auth.RefreshTokenUseCase,
	logout *auth.LogoutUserUseCase,
	forgotPassword *auth.ForgotPasswordUseCase,
	resetPassword *auth.ResetPasswordUseCase,
	listQuestions *auth.ListSecurityQuestionsUseCase,
	resetQuestion *auth.GetResetQuestionUseCase,
	answerReset *auth.AnswerResetUseCase,
) *AuthController {
	return &AuthController{
		register:       register,
		login:          login,
		refresh:        refresh,
		logout:         logout,
		forgotPassword: forgotPassword,
		resetPassword:  resetPassword,
		listQuestions:  listQuestions,
		resetQuestion:  resetQuestion,
		answerReset:    answerReset,
	}
}

// bindJSON binds the request body and writes the 400 response on failure.
func bindJSON(ctx *gin.Context, req any, code domainerror.AuthErrorCode) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(code),
		})
		return false
	}
	return true
}

// Register handles POST /auth/register requests.
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(ctx, &req, domainerror.ErrCodeMissingFields) {
		return
	}

	output, err := c.register.Execute(ctx.Request.Context(), auth.RegisterUserInput{
		Email:              req.Email,
		Name:               req.Name,
		Password:           req.Password,
		SecurityQuestionID: req.SecurityQuestionID,
		SecurityAnswer:     req.SecurityAnswer,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AuthResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         dto.ToUserResponse(output.User),
	})
}

// Login handles POST /auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(ctx, &req, domainerror.ErrCodeMissingFields) {
		return
	}

	output, err := c.login.Execute(ctx.Request.Context(), auth.LoginUserInput{
		Email:      req.Email,
		Password:   req.Password,
		RememberMe: req.RememberMe,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         dto.ToUserResponse(output.User),
	})
}

// RefreshToken handles POST /auth/refresh requests.
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if !bindJSON(ctx, &req, domainerror.ErrCodeMissingToken) {
		return
	}

	output, err := c.refresh.Execute(ctx.Request.Context(), auth.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	})
}

// Logout handles POST /auth/logout requests. Logout reports success even for
// bodies that fail to bind; there is no session left either way.
func (c *AuthController) Logout(ctx *gin.Context) {
	var req dto.LogoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Successfully logged out"})
		return
	}

	output, _ := c.logout.Execute(ctx.Request.Context(), auth.LogoutUserInput{
		RefreshToken: req.RefreshToken,
	})
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// ForgotPassword handles POST /auth/forgot-password requests.
func (c *AuthController) ForgotPassword(ctx *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !bindJSON(ctx, &req, domainerror.ErrCodeInvalidEmail) {
		return
	}

	output, err := c.forgotPassword.Execute(ctx.Request.Context(), auth.ForgotPasswordInput{
		Email: req.Email,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// ResetPassword handles POST /auth/reset-password requests.
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var req dto.ResetPasswordRequest
	if !bindJSON(ctx, &req, domainerror.ErrCodeMissingFields) {
		return
	}

	output, err := c.resetPassword.Execute(ctx.Request.Context(), auth.ResetPasswordInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// ListSecurityQuestions handles GET /auth/security-questions requests.
func (c *AuthController) ListSecurityQuestions(ctx *gin.Context) {
	output, err := c.listQuestions.Execute(ctx.Request.Context())
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	resp := dto.SecurityQuestionsListResponse{
		Questions: make([]dto.SecurityQuestionResponse, len(output.Questions)),
	}
	for i, question := range output.Questions {
		resp.Questions[i] = dto.SecurityQuestionResponse{
			ID:       question.ID,
			Question: question.Text,
		}
	}
	ctx.JSON(http.StatusOK, resp)
}

// ResetQuestion handles POST /auth/reset-password/question requests.
func (c *AuthController) ResetQuestion(ctx *gin.Context) {
	var req dto.ResetQuestionRequest
	if !bindJSON(ctx, &req, domainerror.ErrCodeInvalidEmail) {
		return
	}

	output, err := c.resetQuestion.Execute(ctx.Request.Context(), auth.GetResetQuestionInput{
		Email: req.Email,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ResetQuestionResponse{
		QuestionID: output.QuestionID,
		Question:   output.Question,
	})
}

// AnswerReset handles POST /auth/reset-password/answer requests.
func (c *AuthController) AnswerReset(ctx *gin.Context) {
	var req dto.AnswerResetRequest
	if !bindJSON(ctx, &req, domainerror.ErrCodeMissingFields) {
		return
	}

	output, err := c.answerReset.Execute(ctx.Request.Context(), auth.AnswerResetInput{
		Email:       req.Email,
		QuestionID:  req.QuestionID,
		Answer:      req.Answer,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// handleAuthError resolves coded auth errors to HTTP responses.
func (c *AuthController) handleAuthError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(authStatusCode(authErr.Code), dto.ErrorResponse{
		Error: authErr.Message,
		Code:  string(authErr.Code),
	})
}

// authStatusCode maps auth error codes to HTTP status codes.
func authStatusCode(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeWeakPassword,
		domainerror.ErrCodeInvalidEmail,
		domainerror.ErrCodeMissingFields,
		domainerror.ErrCodeInvalidResetToken,
		domainerror.ErrCodeExpiredResetToken,
		domainerror.ErrCodeUnknownSecurityQuestion:
		return http.StatusBadRequest
	case domainerror.ErrCodeSecurityQuestionNotSet:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeUserNotFound,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeMissingToken,
		domainerror.ErrCodeWrongSecurityAnswer:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
