// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendwise/backend/internal/application/usecase/auth"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/entrypoint/dto"
	"github.com/spendwise/backend/internal/integration/entrypoint/middleware"
)

// UserController handles user management endpoints.
type UserController struct {
	deleteAccount *auth.DeleteAccountUseCase
	setAnswer     *auth.SetSecurityAnswerUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	deleteAccount *auth.DeleteAccountUseCase,
	setAnswer *auth.SetSecurityAnswerUseCase,
) *UserController {
	return &UserController{
		deleteAccount: deleteAccount,
		setAnswer:     setAnswer,
	}
}

// requireUserID resolves the authenticated user from the request context
// and writes the 401 response when it is absent.
func requireUserID(ctx *gin.Context) (uint, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Unauthorized",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
	}
	return userID, ok
}

// DeleteAccount handles DELETE /users/me requests.
func (c *UserController) DeleteAccount(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.DeleteAccountRequest
	if !bindJSON(ctx, &req, domainerror.ErrCodeMissingFields) {
		return
	}

	_, err := c.deleteAccount.Execute(ctx.Request.Context(), auth.DeleteAccountInput{
		UserID:       userID,
		Password:     req.Password,
		Confirmation: req.Confirmation,
	})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SetSecurityAnswer handles PUT /users/me/security-question requests. It
// stores or replaces the account-recovery question and answer.
func (c *UserController) SetSecurityAnswer(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.SetSecurityAnswerRequest
	if !bindJSON(ctx, &req, domainerror.ErrCodeMissingFields) {
		return
	}

	output, err := c.setAnswer.Execute(ctx.Request.Context(), auth.SetSecurityAnswerInput{
		UserID:     userID,
		QuestionID: req.QuestionID,
		Answer:     req.Answer,
	})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// handleUserError resolves coded auth errors to HTTP responses.
func (c *UserController) handleUserError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	status := authStatusCode(authErr.Code)
	if authErr.Code == domainerror.ErrCodeInvalidConfirmation {
		status = http.StatusBadRequest
	}
	ctx.JSON(status, dto.ErrorResponse{
		Error: authErr.Message,
		Code:  string(authErr.Code),
	})
}
