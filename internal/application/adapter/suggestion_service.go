// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SpendingProfile summarizes a user's recent activity for AI analysis.
type SpendingProfile struct {
	Records []*RecordForAI
	Goals   []*GoalForAI
}

// RecordForAI represents expense record data for AI processing.
type RecordForAI struct {
	Description  string
	CategoryName string
	Amount       string
	Currency     string
	Date         string
	Type         string
}

// GoalForAI represents goal data for AI processing.
type GoalForAI struct {
	Name          string
	TargetAmount  string
	CurrentAmount string
	Deadline      string
}

// SuggestionService defines the interface for AI-generated savings suggestions.
type SuggestionService interface {
	// Suggest analyzes the spending profile and returns savings suggestions.
	Suggest(ctx context.Context, profile *SpendingProfile) ([]string, error)

	// IsAvailable checks if the AI service is available and properly configured.
	IsAvailable() bool
}
