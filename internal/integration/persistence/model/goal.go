// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/domain/entity"
)

// GoalModel represents the spending_goals table in the database. It carries
// both the simplified (name + deadline) and the legacy (category + period)
// column sets; unused columns stay NULL.
type GoalModel struct {
	ID            uint            `gorm:"primaryKey;autoIncrement"`
	UserID        uint            `gorm:"not null;index"`
	GoalName      string          `gorm:"type:varchar(255)"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Category      *string         `gorm:"type:varchar(100)"`
	Deadline      *time.Time      `gorm:"type:date"`
	CategoryID    *uint           `gorm:"index"`
	Period        *string         `gorm:"type:varchar(20)"`
	StartDate     *time.Time      `gorm:"type:date"`
	EndDate       *time.Time      `gorm:"type:date"`
	Active        bool            `gorm:"not null;default:true;index"`
	CreatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "spending_goals"
}

// ToEntity converts a GoalModel to a domain SpendingGoal entity.
func (m *GoalModel) ToEntity() *entity.SpendingGoal {
	var period *entity.GoalPeriod
	if m.Period != nil {
		p := entity.GoalPeriod(*m.Period)
		period = &p
	}

	return &entity.SpendingGoal{
		ID:            m.ID,
		UserID:        m.UserID,
		GoalName:      m.GoalName,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		Category:      m.Category,
		Deadline:      m.Deadline,
		CategoryID:    m.CategoryID,
		Period:        period,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		Active:        m.Active,
		CreatedAt:     m.CreatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain SpendingGoal entity.
func GoalFromEntity(goal *entity.SpendingGoal) *GoalModel {
	var period *string
	if goal.Period != nil {
		p := string(*goal.Period)
		period = &p
	}

	return &GoalModel{
		ID:            goal.ID,
		UserID:        goal.UserID,
		GoalName:      goal.GoalName,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		Category:      goal.Category,
		Deadline:      goal.Deadline,
		CategoryID:    goal.CategoryID,
		Period:        period,
		StartDate:     goal.StartDate,
		EndDate:       goal.EndDate,
		Active:        goal.Active,
		CreatedAt:     goal.CreatedAt,
	}
}
