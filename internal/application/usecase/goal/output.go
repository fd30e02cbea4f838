// Package goal contains spending-goal use cases.
package goal

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/domain/entity"
)

// GoalOutput is the response projection of a spending goal. It carries the
// simplified fields plus the legacy fields for backward compatibility with
// older consumers.
type GoalOutput struct {
	GoalID        uint
	GoalName      string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Category      *string
	Deadline      *time.Time

	// Legacy fields, populated when the goal carries the legacy model.
	CategoryID   *uint
	CategoryName *string
	Period       *entity.GoalPeriod

	Active bool
}

// toOutput projects a stored goal onto the response shape. The legacy category
// name is filled in when the category could be resolved.
func toOutput(g *entity.SpendingGoal, category *entity.Category) *GoalOutput {
	out := &GoalOutput{
		GoalID:        g.ID,
		GoalName:      g.GoalName,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Category:      g.Category,
		Deadline:      g.Deadline,
		CategoryID:    g.CategoryID,
		Period:        g.Period,
		Active:        g.Active,
	}
	if category != nil {
		out.CategoryName = &category.Name
	}
	return out
}
