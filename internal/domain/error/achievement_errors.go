// Package error defines domain-specific errors for the SpendWise application.
package error

import "errors"

// Achievement domain errors.
var (
	// ErrAchievementNotFound is returned when an achievement code is not registered.
	ErrAchievementNotFound = errors.New("achievement not found")
)
