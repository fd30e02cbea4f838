// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/spendwise/backend/internal/application/usecase/suggestion"
)

// SuggestionListResponse represents the response for savings suggestions.
type SuggestionListResponse struct {
	Suggestions []string  `json:"suggestions"`
	GeneratedAt time.Time `json:"generatedAt"`
	FromCache   bool      `json:"fromCache"`
}

// ToSuggestionListResponse converts a GetSuggestionsOutput to a SuggestionListResponse.
func ToSuggestionListResponse(output *suggestion.GetSuggestionsOutput) SuggestionListResponse {
	return SuggestionListResponse{
		Suggestions: output.Suggestions,
		GeneratedAt: output.GeneratedAt,
		FromCache:   output.FromCache,
	}
}
