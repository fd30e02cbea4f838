// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendwise/backend/internal/application/usecase/suggestion"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/entrypoint/dto"
	"github.com/spendwise/backend/internal/integration/entrypoint/middleware"
)

// SuggestionController handles AI savings suggestion endpoints.
type SuggestionController struct {
	getUseCase *suggestion.GetSuggestionsUseCase
}

// NewSuggestionController creates a new suggestion controller instance.
func NewSuggestionController(getUseCase *suggestion.GetSuggestionsUseCase) *SuggestionController {
	return &SuggestionController{
		getUseCase: getUseCase,
	}
}

// Get handles GET /suggestions requests. Passing refresh=true bypasses the
// cached suggestion set.
func (c *SuggestionController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := suggestion.GetSuggestionsInput{
		UserID:  userID,
		Refresh: ctx.Query("refresh") == "true",
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSuggestionError(ctx, err)
		return
	}

	response := dto.ToSuggestionListResponse(output)
	ctx.JSON(http.StatusOK, response)
}

// handleSuggestionError handles suggestion errors and returns appropriate HTTP responses.
func (c *SuggestionController) handleSuggestionError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrSuggestionServiceUnavailable):
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Suggestion service is not available",
		})
	case errors.Is(err, domainerror.ErrNoSpendingData):
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error: "Not enough spending data to generate suggestions",
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}
