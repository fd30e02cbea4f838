// Package error defines domain-specific errors for the SpendWise application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrDuplicateGoal is returned when an active goal already occupies the
	// same (user, category, period) scope and the caller did not confirm the
	// replacement.
	ErrDuplicateGoal = errors.New("a goal for the same category and period already exists")

	// ErrInvalidTargetAmount is returned when the target amount is below the
	// configured floor (legacy model) or not positive (simplified model).
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrGoalCategoryNotFound is returned when the category for a goal is not found.
	ErrGoalCategoryNotFound = errors.New("category not found")

	// ErrUnauthorizedGoalAccess is returned when a user is not the owner of a goal.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")

	// ErrUnsupportedPeriod is returned when a period value outside the
	// enumerated set reaches the range computation. This indicates a
	// programming error and is treated as fatal.
	ErrUnsupportedPeriod = errors.New("unsupported period")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	ErrCodeGoalNotFound           GoalErrorCode = "GOL-010001"
	ErrCodeDuplicateGoal          GoalErrorCode = "GOL-010002"
	ErrCodeInvalidTargetAmount    GoalErrorCode = "GOL-010003"
	ErrCodeGoalCategoryNotFound   GoalErrorCode = "GOL-010004"
	ErrCodeUnauthorizedGoalAccess GoalErrorCode = "GOL-010005"
	ErrCodeUnsupportedPeriod      GoalErrorCode = "GOL-010006"
	ErrCodeMissingGoalFields      GoalErrorCode = "GOL-010007"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
