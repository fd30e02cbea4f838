// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// Achievement codes awarded by the evaluation rules.
const (
	AchievementFirstExpense = "FIRST_EXPENSE"
	AchievementTenRecords   = "TEN_RECORDS"
	AchievementFirstGoal    = "FIRST_GOAL"
)

// Achievement represents an achievement definition.
type Achievement struct {
	ID          uint
	Code        string
	Title       string
	Description string
	Icon        string
}

// UserAchievement represents an achievement earned (or trackable) by a user.
type UserAchievement struct {
	ID            uint
	UserID        uint
	AchievementID uint
	Earned        bool
	EarnedAt      *time.Time
}

// UserAchievementWithDefinition pairs a user achievement with its definition.
type UserAchievementWithDefinition struct {
	UserAchievement *UserAchievement
	Achievement     *Achievement
}
