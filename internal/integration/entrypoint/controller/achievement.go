// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendwise/backend/internal/application/usecase/achievement"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/entrypoint/dto"
	"github.com/spendwise/backend/internal/integration/entrypoint/middleware"
)

// AchievementController handles achievement endpoints.
type AchievementController struct {
	listUseCase *achievement.ListAchievementsUseCase
}

// NewAchievementController creates a new achievement controller instance.
func NewAchievementController(listUseCase *achievement.ListAchievementsUseCase) *AchievementController {
	return &AchievementController{
		listUseCase: listUseCase,
	}
}

// List handles GET /achievements requests. It returns the full achievement
// catalogue with the earned state per achievement.
func (c *AchievementController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := achievement.ListAchievementsInput{
		UserID: userID,
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve achievements",
		})
		return
	}

	response := dto.ToAchievementListResponse(output.Achievements)
	ctx.JSON(http.StatusOK, response)
}
