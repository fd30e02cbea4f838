// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/spendwise/backend/internal/domain/entity"
)

// AchievementRepository defines the interface for achievement persistence operations.
type AchievementRepository interface {
	// FindByCode retrieves an achievement definition by its code.
	FindByCode(ctx context.Context, code string) (*entity.Achievement, error)

	// FindUserAchievement retrieves a user's progress row for an achievement
	// code. Returns (nil, nil) when the user has no row for the code yet.
	FindUserAchievement(ctx context.Context, userID uint, code string) (*entity.UserAchievement, error)

	// FindByUserID retrieves all achievement rows for a user with definitions.
	FindByUserID(ctx context.Context, userID uint) ([]*entity.UserAchievementWithDefinition, error)

	// SaveUserAchievement inserts or updates a user achievement row.
	SaveUserAchievement(ctx context.Context, ua *entity.UserAchievement) error

	// SeedDefinitions inserts achievement definitions that do not exist yet.
	SeedDefinitions(ctx context.Context, definitions []*entity.Achievement) error
}
