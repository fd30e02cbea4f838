// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/usecase/goal"
)

// CreateGoalRequest represents the request body for goal creation. It accepts
// both the simplified shape (goalName + deadline) and the legacy shape
// (categoryId + period).
type CreateGoalRequest struct {
	GoalName      *string          `json:"goalName,omitempty"`
	TargetAmount  decimal.Decimal  `json:"targetAmount" binding:"required"`
	CurrentAmount *decimal.Decimal `json:"currentAmount,omitempty"`
	Category      *string          `json:"category,omitempty"`
	Deadline      *time.Time       `json:"deadline,omitempty"`

	CategoryID       *uint      `json:"categoryId,omitempty"`
	Period           *string    `json:"period,omitempty" binding:"omitempty,oneof=WEEKLY MONTHLY YEARLY"`
	ConfirmDuplicate bool       `json:"confirmDuplicate"`
	StartDate        *time.Time `json:"startDate,omitempty"`
	EndDate          *time.Time `json:"endDate,omitempty"`
	StartNextPeriod  bool       `json:"startNextPeriod"`
}

// UpdateGoalRequest represents the request body for goal update. Only fields
// present in the request overwrite the stored goal.
type UpdateGoalRequest struct {
	GoalName      *string          `json:"goalName,omitempty"`
	TargetAmount  *decimal.Decimal `json:"targetAmount,omitempty"`
	CurrentAmount *decimal.Decimal `json:"currentAmount,omitempty"`
	Category      *string          `json:"category,omitempty"`
	Deadline      *time.Time       `json:"deadline,omitempty"`
}

// GoalResponse represents a single goal in API responses. The legacy fields
// are included when the goal carries the legacy model.
type GoalResponse struct {
	GoalID        uint            `json:"goalId"`
	GoalName      string          `json:"goalName"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Category      *string         `json:"category,omitempty"`
	Deadline      *string         `json:"deadline,omitempty"`

	CategoryID   *uint   `json:"categoryId,omitempty"`
	CategoryName *string `json:"categoryName,omitempty"`
	Period       *string `json:"period,omitempty"`
	Active       bool    `json:"active"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a GoalOutput to a GoalResponse DTO.
func ToGoalResponse(output *goal.GoalOutput) GoalResponse {
	response := GoalResponse{
		GoalID:        output.GoalID,
		GoalName:      output.GoalName,
		TargetAmount:  output.TargetAmount,
		CurrentAmount: output.CurrentAmount,
		Category:      output.Category,
		CategoryID:    output.CategoryID,
		CategoryName:  output.CategoryName,
		Active:        output.Active,
	}

	if output.Deadline != nil {
		dateStr := output.Deadline.Format("2006-01-02")
		response.Deadline = &dateStr
	}

	if output.Period != nil {
		period := string(*output.Period)
		response.Period = &period
	}

	return response
}

// ToGoalListResponse converts a list of GoalOutput to GoalListResponse.
func ToGoalListResponse(outputs []*goal.GoalOutput) GoalListResponse {
	goals := make([]GoalResponse, len(outputs))
	for i, output := range outputs {
		goals[i] = ToGoalResponse(output)
	}
	return GoalListResponse{
		Goals: goals,
	}
}
