// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/spendwise/backend/internal/domain/entity"
)

// AchievementModel represents the achievements definition table.
type AchievementModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Code        string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Title       string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:varchar(255)"`
	Icon        string    `gorm:"type:varchar(50)"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the AchievementModel.
func (AchievementModel) TableName() string {
	return "achievements"
}

// ToEntity converts an AchievementModel to a domain Achievement entity.
func (m *AchievementModel) ToEntity() *entity.Achievement {
	return &entity.Achievement{
		ID:          m.ID,
		Code:        m.Code,
		Title:       m.Title,
		Description: m.Description,
		Icon:        m.Icon,
	}
}

// AchievementFromEntity creates an AchievementModel from a domain entity.
func AchievementFromEntity(a *entity.Achievement) *AchievementModel {
	return &AchievementModel{
		ID:          a.ID,
		Code:        a.Code,
		Title:       a.Title,
		Description: a.Description,
		Icon:        a.Icon,
	}
}

// UserAchievementModel represents the user_achievements table.
type UserAchievementModel struct {
	ID            uint       `gorm:"primaryKey;autoIncrement"`
	UserID        uint       `gorm:"not null;uniqueIndex:idx_user_achievement"`
	AchievementID uint       `gorm:"not null;uniqueIndex:idx_user_achievement"`
	Earned        bool       `gorm:"not null;default:false"`
	EarnedAt      *time.Time `gorm:"type:timestamptz"`

	// Loaded with Preload when the definition is needed.
	Achievement *AchievementModel `gorm:"foreignKey:AchievementID;references:ID"`
}

// TableName returns the table name for the UserAchievementModel.
func (UserAchievementModel) TableName() string {
	return "user_achievements"
}

// ToEntity converts a UserAchievementModel to a domain UserAchievement entity.
func (m *UserAchievementModel) ToEntity() *entity.UserAchievement {
	return &entity.UserAchievement{
		ID:            m.ID,
		UserID:        m.UserID,
		AchievementID: m.AchievementID,
		Earned:        m.Earned,
		EarnedAt:      m.EarnedAt,
	}
}

// ToEntityWithDefinition converts the model with its preloaded definition.
func (m *UserAchievementModel) ToEntityWithDefinition() *entity.UserAchievementWithDefinition {
	result := &entity.UserAchievementWithDefinition{
		UserAchievement: m.ToEntity(),
	}
	if m.Achievement != nil {
		result.Achievement = m.Achievement.ToEntity()
	}
	return result
}

// UserAchievementFromEntity creates a UserAchievementModel from a domain entity.
func UserAchievementFromEntity(ua *entity.UserAchievement) *UserAchievementModel {
	return &UserAchievementModel{
		ID:            ua.ID,
		UserID:        ua.UserID,
		AchievementID: ua.AchievementID,
		Earned:        ua.Earned,
		EarnedAt:      ua.EarnedAt,
	}
}
