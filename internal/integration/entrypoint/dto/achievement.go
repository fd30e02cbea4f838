// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/spendwise/backend/internal/application/usecase/achievement"
)

// AchievementResponse represents a single achievement in API responses.
type AchievementResponse struct {
	Code        string     `json:"code"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Earned      bool       `json:"earned"`
	EarnedAt    *time.Time `json:"earnedAt,omitempty"`
}

// AchievementListResponse represents the response for listing achievements.
type AchievementListResponse struct {
	Achievements []AchievementResponse `json:"achievements"`
}

// ToAchievementListResponse converts a list of AchievementOutput to AchievementListResponse.
func ToAchievementListResponse(outputs []*achievement.AchievementOutput) AchievementListResponse {
	achievements := make([]AchievementResponse, len(outputs))
	for i, output := range outputs {
		achievements[i] = AchievementResponse{
			Code:        output.Code,
			Title:       output.Title,
			Description: output.Description,
			Icon:        output.Icon,
			Earned:      output.Earned,
			EarnedAt:    output.EarnedAt,
		}
	}
	return AchievementListResponse{
		Achievements: achievements,
	}
}
