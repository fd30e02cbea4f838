// Package achievement contains achievement evaluation use cases.
package achievement

import (
	"context"
	"fmt"
	"time"

	"github.com/spendwise/backend/internal/application/adapter"
)

// ListAchievementsInput represents the input for listing a user's achievements.
type ListAchievementsInput struct {
	UserID uint
}

// AchievementOutput represents a single achievement in the output.
type AchievementOutput struct {
	Code        string
	Title       string
	Description string
	Icon        string
	Earned      bool
	EarnedAt    *time.Time
}

// ListAchievementsOutput represents the output of listing achievements.
type ListAchievementsOutput struct {
	Achievements []*AchievementOutput
}

// ListAchievementsUseCase returns a user's achievement progress.
type ListAchievementsUseCase struct {
	achievementRepo adapter.AchievementRepository
}

// NewListAchievementsUseCase creates a new ListAchievementsUseCase instance.
func NewListAchievementsUseCase(achievementRepo adapter.AchievementRepository) *ListAchievementsUseCase {
	return &ListAchievementsUseCase{
		achievementRepo: achievementRepo,
	}
}

// Execute performs the achievement listing. Definitions the user has no row
// for yet are returned as not earned.
func (uc *ListAchievementsUseCase) Execute(ctx context.Context, input ListAchievementsInput) (*ListAchievementsOutput, error) {
	rows, err := uc.achievementRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}

	earned := make(map[string]*AchievementOutput, len(rows))
	for _, row := range rows {
		earned[row.Achievement.Code] = &AchievementOutput{
			Code:        row.Achievement.Code,
			Title:       row.Achievement.Title,
			Description: row.Achievement.Description,
			Icon:        row.Achievement.Icon,
			Earned:      row.UserAchievement.Earned,
			EarnedAt:    row.UserAchievement.EarnedAt,
		}
	}

	output := &ListAchievementsOutput{}
	for _, definition := range Definitions() {
		if row, ok := earned[definition.Code]; ok {
			output.Achievements = append(output.Achievements, row)
			continue
		}
		output.Achievements = append(output.Achievements, &AchievementOutput{
			Code:        definition.Code,
			Title:       definition.Title,
			Description: definition.Description,
			Icon:        definition.Icon,
		})
	}

	return output, nil
}
