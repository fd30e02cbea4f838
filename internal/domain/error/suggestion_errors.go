// Package error defines domain-specific errors for the SpendWise application.
package error

import "errors"

// Suggestion domain errors.
var (
	// ErrSuggestionServiceUnavailable is returned when the AI suggestion
	// service is not configured or cannot be reached.
	ErrSuggestionServiceUnavailable = errors.New("suggestion service unavailable")

	// ErrNoSpendingData is returned when the user has no records to analyze.
	ErrNoSpendingData = errors.New("no spending data to analyze")
)
