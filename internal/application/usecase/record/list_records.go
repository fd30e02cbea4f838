// Package record contains expense record use cases.
package record

import (
	"context"
	"fmt"

	"github.com/spendwise/backend/internal/application/adapter"
)

// ListRecordsInput represents the input for listing records.
type ListRecordsInput struct {
	UserID uint
}

// ListRecordsOutput represents the output of listing records.
type ListRecordsOutput struct {
	Records []*RecordOutput
}

// ListRecordsUseCase returns a user's expense records, newest first.
type ListRecordsUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewListRecordsUseCase creates a new ListRecordsUseCase instance.
func NewListRecordsUseCase(recordRepo adapter.RecordRepository) *ListRecordsUseCase {
	return &ListRecordsUseCase{
		recordRepo: recordRepo,
	}
}

// Execute performs the record listing.
func (uc *ListRecordsUseCase) Execute(ctx context.Context, input ListRecordsInput) (*ListRecordsOutput, error) {
	records, err := uc.recordRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	outputs := make([]*RecordOutput, len(records))
	for i, rc := range records {
		outputs[i] = toOutput(rc.Record, rc.Category)
	}

	return &ListRecordsOutput{Records: outputs}, nil
}
