// Package achievement contains achievement evaluation use cases.
package achievement

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
)

// Definitions returns the built-in achievement definitions. They are seeded
// into the database at startup.
func Definitions() []*entity.Achievement {
	return []*entity.Achievement{
		{
			Code:        entity.AchievementFirstExpense,
			Title:       "First Steps",
			Description: "Track your first expense",
			Icon:        "🏁",
		},
		{
			Code:        entity.AchievementTenRecords,
			Title:       "Habit Builder",
			Description: "Track ten expenses",
			Icon:        "📈",
		},
		{
			Code:        entity.AchievementFirstGoal,
			Title:       "Goal Setter",
			Description: "Create your first spending goal",
			Icon:        "🎯",
		},
	}
}

// EvaluateAchievementsInput represents the input for achievement evaluation.
type EvaluateAchievementsInput struct {
	UserID uint
}

// EvaluateAchievementsOutput lists the codes earned by this evaluation run.
type EvaluateAchievementsOutput struct {
	NewlyEarned []string
}

// EvaluateAchievementsUseCase re-checks every achievement rule against the
// user's current activity counts and marks newly satisfied ones as earned.
// Already earned achievements are never revoked.
type EvaluateAchievementsUseCase struct {
	achievementRepo adapter.AchievementRepository
	recordRepo      adapter.RecordRepository
	goalRepo        adapter.GoalRepository
	userRepo        adapter.UserRepository
	emailService    adapter.EmailService
}

// NewEvaluateAchievementsUseCase creates a new EvaluateAchievementsUseCase
// instance. emailService may be nil to disable earn notifications.
func NewEvaluateAchievementsUseCase(
	achievementRepo adapter.AchievementRepository,
	recordRepo adapter.RecordRepository,
	goalRepo adapter.GoalRepository,
	userRepo adapter.UserRepository,
	emailService adapter.EmailService,
) *EvaluateAchievementsUseCase {
	return &EvaluateAchievementsUseCase{
		achievementRepo: achievementRepo,
		recordRepo:      recordRepo,
		goalRepo:        goalRepo,
		userRepo:        userRepo,
		emailService:    emailService,
	}
}

// Evaluate re-checks the user's achievements. It is the hook handed to the
// use cases that change activity counts.
func (uc *EvaluateAchievementsUseCase) Evaluate(ctx context.Context, userID uint) error {
	_, err := uc.Execute(ctx, EvaluateAchievementsInput{UserID: userID})
	return err
}

// Execute performs the achievement evaluation.
func (uc *EvaluateAchievementsUseCase) Execute(ctx context.Context, input EvaluateAchievementsInput) (*EvaluateAchievementsOutput, error) {
	recordCount, err := uc.recordRepo.CountByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count records: %w", err)
	}
	goalCount, err := uc.goalRepo.CountByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count goals: %w", err)
	}

	rules := []struct {
		code      string
		satisfied bool
	}{
		{entity.AchievementFirstExpense, recordCount >= 1},
		{entity.AchievementTenRecords, recordCount >= 10},
		{entity.AchievementFirstGoal, goalCount >= 1},
	}

	output := &EvaluateAchievementsOutput{}
	for _, rule := range rules {
		if !rule.satisfied {
			continue
		}
		earned, err := uc.markEarned(ctx, input.UserID, rule.code)
		if err != nil {
			return nil, err
		}
		if earned {
			output.NewlyEarned = append(output.NewlyEarned, rule.code)
		}
	}

	return output, nil
}

// markEarned records the achievement as earned for the user. It reports true
// only when the row transitions to earned in this call.
func (uc *EvaluateAchievementsUseCase) markEarned(ctx context.Context, userID uint, code string) (bool, error) {
	definition, err := uc.achievementRepo.FindByCode(ctx, code)
	if err != nil {
		return false, fmt.Errorf("failed to load achievement %s: %w", code, err)
	}

	ua, err := uc.achievementRepo.FindUserAchievement(ctx, userID, code)
	if err != nil {
		return false, fmt.Errorf("failed to load user achievement %s: %w", code, err)
	}
	if ua != nil && ua.Earned {
		return false, nil
	}

	now := time.Now().UTC()
	if ua == nil {
		ua = &entity.UserAchievement{
			UserID:        userID,
			AchievementID: definition.ID,
		}
	}
	ua.Earned = true
	ua.EarnedAt = &now

	if err := uc.achievementRepo.SaveUserAchievement(ctx, ua); err != nil {
		return false, fmt.Errorf("failed to save user achievement %s: %w", code, err)
	}

	uc.notify(ctx, userID, definition)

	return true, nil
}

// notify queues the earn notification email. Failures are logged only.
func (uc *EvaluateAchievementsUseCase) notify(ctx context.Context, userID uint, definition *entity.Achievement) {
	if uc.emailService == nil {
		return
	}

	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		slog.Warn("Failed to load user for achievement notification",
			"userID", userID,
			"achievement", definition.Code,
			"error", err,
		)
		return
	}

	err = uc.emailService.QueueAchievementEarnedEmail(ctx, adapter.QueueAchievementEarnedInput{
		UserEmail:        user.Email,
		UserName:         user.Name,
		AchievementTitle: definition.Title,
		AchievementIcon:  definition.Icon,
	})
	if err != nil {
		slog.Warn("Failed to queue achievement notification email",
			"userID", userID,
			"achievement", definition.Code,
			"error", err,
		)
	}
}
