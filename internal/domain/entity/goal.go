// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalPeriod represents the recurrence unit of a legacy spending goal.
type GoalPeriod string

const (
	GoalPeriodWeekly  GoalPeriod = "WEEKLY"
	GoalPeriodMonthly GoalPeriod = "MONTHLY"
	GoalPeriodYearly  GoalPeriod = "YEARLY"
)

// IsValid reports whether the period is one of the enumerated values.
func (p GoalPeriod) IsValid() bool {
	return p == GoalPeriodWeekly || p == GoalPeriodMonthly || p == GoalPeriodYearly
}

// SpendingGoal represents a user's spending goal. Two models coexist on the
// same record: the simplified model (GoalName, free-text Category, Deadline)
// and the legacy model (CategoryID, Period, StartDate/EndDate), kept for
// backward compatibility with older consumers. At most one active legacy goal
// may exist per (user, category, period).
type SpendingGoal struct {
	ID            uint
	UserID        uint
	GoalName      string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Category      *string
	Deadline      *time.Time

	// Legacy fields.
	CategoryID *uint
	Period     *GoalPeriod
	StartDate  *time.Time
	EndDate    *time.Time

	Active    bool
	CreatedAt time.Time
}

// NewSimpleGoal creates a goal in the simplified model.
func NewSimpleGoal(userID uint, name string, target, current decimal.Decimal, category *string, deadline *time.Time) *SpendingGoal {
	return &SpendingGoal{
		UserID:        userID,
		GoalName:      name,
		TargetAmount:  target,
		CurrentAmount: current,
		Category:      category,
		Deadline:      deadline,
		Active:        true,
		CreatedAt:     time.Now().UTC(),
	}
}

// NewLegacyGoal creates a goal in the legacy (category + period) model.
func NewLegacyGoal(userID, categoryID uint, period GoalPeriod, target decimal.Decimal, start, end time.Time) *SpendingGoal {
	return &SpendingGoal{
		UserID:        userID,
		TargetAmount:  target,
		CurrentAmount: decimal.Zero,
		CategoryID:    &categoryID,
		Period:        &period,
		StartDate:     &start,
		EndDate:       &end,
		Active:        true,
		CreatedAt:     time.Now().UTC(),
	}
}

