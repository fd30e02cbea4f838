// Package suggestion contains AI savings suggestion use cases.
package suggestion

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// DefaultCacheTTL is how long a generated suggestion set is served before a
// new AI call is made.
const DefaultCacheTTL = 24 * time.Hour

// GetSuggestionsInput represents the input for fetching savings suggestions.
// Refresh forces a new AI call even when a fresh cached set exists.
type GetSuggestionsInput struct {
	UserID  uint
	Refresh bool
}

// GetSuggestionsOutput represents the output of fetching savings suggestions.
type GetSuggestionsOutput struct {
	Suggestions []string
	GeneratedAt time.Time
	FromCache   bool
}

// GetSuggestionsUseCase produces AI savings suggestions from the user's
// records and goals, caching each generated set.
type GetSuggestionsUseCase struct {
	suggestionService adapter.SuggestionService
	suggestionRepo    adapter.SuggestionRepository
	recordRepo        adapter.RecordRepository
	goalRepo          adapter.GoalRepository
	cacheTTL          time.Duration
}

// NewGetSuggestionsUseCase creates a new GetSuggestionsUseCase instance.
func NewGetSuggestionsUseCase(
	suggestionService adapter.SuggestionService,
	suggestionRepo adapter.SuggestionRepository,
	recordRepo adapter.RecordRepository,
	goalRepo adapter.GoalRepository,
) *GetSuggestionsUseCase {
	return &GetSuggestionsUseCase{
		suggestionService: suggestionService,
		suggestionRepo:    suggestionRepo,
		recordRepo:        recordRepo,
		goalRepo:          goalRepo,
		cacheTTL:          DefaultCacheTTL,
	}
}

// Execute performs the suggestion lookup or generation.
func (uc *GetSuggestionsUseCase) Execute(ctx context.Context, input GetSuggestionsInput) (*GetSuggestionsOutput, error) {
	if !input.Refresh {
		cached, err := uc.suggestionRepo.FindLatestByUserID(ctx, input.UserID)
		if err != nil {
			slog.Warn("Failed to load cached suggestions", "userID", input.UserID, "error", err)
		} else if cached != nil && cached.IsFresh(uc.cacheTTL) {
			return &GetSuggestionsOutput{
				Suggestions: cached.Suggestions,
				GeneratedAt: cached.GeneratedAt,
				FromCache:   true,
			}, nil
		}
	}

	if uc.suggestionService == nil || !uc.suggestionService.IsAvailable() {
		return nil, domainerror.ErrSuggestionServiceUnavailable
	}

	profile, err := uc.buildProfile(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if len(profile.Records) == 0 {
		return nil, domainerror.ErrNoSpendingData
	}

	suggestions, err := uc.suggestionService.Suggest(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to generate suggestions: %w", err)
	}

	set := entity.NewSuggestionSet(input.UserID, suggestions)
	if err := uc.suggestionRepo.Save(ctx, set); err != nil {
		// Serving the fresh result matters more than caching it.
		slog.Warn("Failed to cache suggestions", "userID", input.UserID, "error", err)
	}

	return &GetSuggestionsOutput{
		Suggestions: set.Suggestions,
		GeneratedAt: set.GeneratedAt,
	}, nil
}

// buildProfile assembles the AI input from the user's records and goals.
func (uc *GetSuggestionsUseCase) buildProfile(ctx context.Context, userID uint) (*adapter.SpendingProfile, error) {
	records, err := uc.recordRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	goals, err := uc.goalRepo.FindActiveByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}

	profile := &adapter.SpendingProfile{}
	for _, rc := range records {
		categoryName := ""
		if rc.Category != nil {
			categoryName = rc.Category.Name
		}
		profile.Records = append(profile.Records, &adapter.RecordForAI{
			Description:  rc.Record.Description,
			CategoryName: categoryName,
			Amount:       rc.Record.Amount.StringFixed(2),
			Currency:     rc.Record.Currency,
			Date:         rc.Record.CreatedAt.Format("2006-01-02"),
			Type:         string(rc.Record.TransactionType),
		})
	}
	for _, g := range goals {
		deadline := ""
		if g.Deadline != nil {
			deadline = g.Deadline.Format("2006-01-02")
		}
		profile.Goals = append(profile.Goals, &adapter.GoalForAI{
			Name:          g.GoalName,
			TargetAmount:  g.TargetAmount.StringFixed(2),
			CurrentAmount: g.CurrentAmount.StringFixed(2),
			Deadline:      deadline,
		})
	}

	return profile, nil
}
