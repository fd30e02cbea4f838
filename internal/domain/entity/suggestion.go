// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// SuggestionSet represents one batch of AI savings suggestions generated for
// a user. The most recent set is served as a cache until it expires.
type SuggestionSet struct {
	ID          uint
	UserID      uint
	Suggestions []string
	GeneratedAt time.Time
}

// NewSuggestionSet creates a new SuggestionSet entity.
func NewSuggestionSet(userID uint, suggestions []string) *SuggestionSet {
	return &SuggestionSet{
		UserID:      userID,
		Suggestions: suggestions,
		GeneratedAt: time.Now().UTC(),
	}
}

// IsFresh reports whether the set is younger than maxAge.
func (s *SuggestionSet) IsFresh(maxAge time.Duration) bool {
	return time.Since(s.GeneratedAt) < maxAge
}
