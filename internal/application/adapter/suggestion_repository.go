// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/spendwise/backend/internal/domain/entity"
)

// SuggestionRepository defines the interface for suggestion persistence operations.
type SuggestionRepository interface {
	// Save stores a newly generated suggestion set.
	Save(ctx context.Context, set *entity.SuggestionSet) error

	// FindLatestByUserID retrieves the most recent suggestion set for a user.
	// Returns (nil, nil) when the user has none.
	FindLatestByUserID(ctx context.Context, userID uint) (*entity.SuggestionSet, error)

	// DeleteByUserID removes all suggestion sets for a user.
	DeleteByUserID(ctx context.Context, userID uint) error
}
