// Package goal contains spending-goal use cases.
package goal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

func newCreateUseCase(goalRepo *fakeGoalRepo, categoryRepo *fakeCategoryRepo) *CreateGoalUseCase {
	uc := NewCreateGoalUseCase(goalRepo, categoryRepo, nil, decimal.NewFromFloat(1.00))
	uc.now = func() time.Time { return date(2024, time.March, 14) }
	return uc
}

func strPtr(s string) *string { return &s }

func periodPtr(p entity.GoalPeriod) *entity.GoalPeriod { return &p }

func uintPtr(v uint) *uint { return &v }

func TestCreateGoalUseCase_SimplifiedModel(t *testing.T) {
	t.Run("creates a goal with name and deadline", func(t *testing.T) {
		goalRepo := newFakeGoalRepo()
		uc := newCreateUseCase(goalRepo, newFakeCategoryRepo())

		deadline := date(2024, time.June, 30)
		out, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:       1,
			GoalName:     strPtr("Vacation fund"),
			TargetAmount: decimal.NewFromInt(500),
			Category:     strPtr("Travel"),
			Deadline:     &deadline,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Goal.GoalID == 0 {
			t.Error("expected an assigned goal id")
		}
		if out.Goal.GoalName != "Vacation fund" {
			t.Errorf("goal name = %q, want %q", out.Goal.GoalName, "Vacation fund")
		}
		if !out.Goal.CurrentAmount.IsZero() {
			t.Errorf("current amount = %s, want 0", out.Goal.CurrentAmount)
		}
		if !out.Goal.Active {
			t.Error("expected the goal to be active")
		}
		if out.Goal.CategoryID != nil || out.Goal.Period != nil {
			t.Error("simplified goal must not carry legacy fields")
		}
	})

	t.Run("keeps a supplied current amount", func(t *testing.T) {
		goalRepo := newFakeGoalRepo()
		uc := newCreateUseCase(goalRepo, newFakeCategoryRepo())

		deadline := date(2024, time.June, 30)
		current := decimal.NewFromInt(120)
		out, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:        1,
			GoalName:      strPtr("Emergency fund"),
			TargetAmount:  decimal.NewFromInt(1000),
			CurrentAmount: &current,
			Deadline:      &deadline,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Goal.CurrentAmount.Equal(current) {
			t.Errorf("current amount = %s, want %s", out.Goal.CurrentAmount, current)
		}
	})

	t.Run("rejects a non-positive target amount", func(t *testing.T) {
		uc := newCreateUseCase(newFakeGoalRepo(), newFakeCategoryRepo())

		deadline := date(2024, time.June, 30)
		_, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:       1,
			GoalName:     strPtr("Zero goal"),
			TargetAmount: decimal.Zero,
			Deadline:     &deadline,
		})
		if !errors.Is(err, domainerror.ErrInvalidTargetAmount) {
			t.Errorf("expected ErrInvalidTargetAmount, got %v", err)
		}
	})

	t.Run("skips duplicate checking", func(t *testing.T) {
		goalRepo := newFakeGoalRepo()
		uc := newCreateUseCase(goalRepo, newFakeCategoryRepo())

		deadline := date(2024, time.June, 30)
		input := CreateGoalInput{
			UserID:       1,
			GoalName:     strPtr("Same goal"),
			TargetAmount: decimal.NewFromInt(100),
			Deadline:     &deadline,
		}

		if _, err := uc.Execute(context.Background(), input); err != nil {
			t.Fatalf("first create failed: %v", err)
		}
		if _, err := uc.Execute(context.Background(), input); err != nil {
			t.Fatalf("second identical create failed: %v", err)
		}
		if len(goalRepo.goals) != 2 {
			t.Errorf("stored %d goals, want 2", len(goalRepo.goals))
		}
	})
}

func TestCreateGoalUseCase_LegacyModel(t *testing.T) {
	groceries := &entity.Category{ID: 7, Name: "Groceries"}

	t.Run("creates a goal with the computed monthly window", func(t *testing.T) {
		goalRepo := newFakeGoalRepo()
		uc := newCreateUseCase(goalRepo, newFakeCategoryRepo(groceries))

		out, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:       1,
			TargetAmount: decimal.NewFromInt(300),
			CategoryID:   uintPtr(groceries.ID),
			Period:       periodPtr(entity.GoalPeriodMonthly),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Goal.CategoryName == nil || *out.Goal.CategoryName != "Groceries" {
			t.Errorf("category name = %v, want Groceries", out.Goal.CategoryName)
		}

		stored, err := goalRepo.FindByID(context.Background(), out.Goal.GoalID)
		if err != nil {
			t.Fatalf("stored goal not found: %v", err)
		}
		if stored.StartDate == nil || !stored.StartDate.Equal(date(2024, time.March, 1)) {
			t.Errorf("start date = %v, want 2024-03-01", stored.StartDate)
		}
		if stored.EndDate == nil || !stored.EndDate.Equal(date(2024, time.March, 31)) {
			t.Errorf("end date = %v, want 2024-03-31", stored.EndDate)
		}
	})

	t.Run("honours an explicit window over the computed one", func(t *testing.T) {
		goalRepo := newFakeGoalRepo()
		uc := newCreateUseCase(goalRepo, newFakeCategoryRepo(groceries))

		start := date(2024, time.May, 10)
		end := date(2024, time.May, 20)
		out, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:       1,
			TargetAmount: decimal.NewFromInt(300),
			CategoryID:   uintPtr(groceries.ID),
			Period:       periodPtr(entity.GoalPeriodWeekly),
			StartDate:    &start,
			EndDate:      &end,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, _ := goalRepo.FindByID(context.Background(), out.Goal.GoalID)
		if !stored.StartDate.Equal(start) || !stored.EndDate.Equal(end) {
			t.Errorf("window = [%v, %v], want [%v, %v]", stored.StartDate, stored.EndDate, start, end)
		}
	})

	t.Run("rejects a target amount below the floor", func(t *testing.T) {
		uc := newCreateUseCase(newFakeGoalRepo(), newFakeCategoryRepo(groceries))

		_, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:       1,
			TargetAmount: decimal.NewFromFloat(0.50),
			CategoryID:   uintPtr(groceries.ID),
			Period:       periodPtr(entity.GoalPeriodMonthly),
		})
		if !errors.Is(err, domainerror.ErrInvalidTargetAmount) {
			t.Errorf("expected ErrInvalidTargetAmount, got %v", err)
		}
	})

	t.Run("rejects a missing category or period", func(t *testing.T) {
		uc := newCreateUseCase(newFakeGoalRepo(), newFakeCategoryRepo(groceries))

		_, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:       1,
			TargetAmount: decimal.NewFromInt(100),
			Period:       periodPtr(entity.GoalPeriodMonthly),
		})
		var goalErr *domainerror.GoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeMissingGoalFields {
			t.Errorf("expected code %s, got %v", domainerror.ErrCodeMissingGoalFields, err)
		}
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		uc := newCreateUseCase(newFakeGoalRepo(), newFakeCategoryRepo(groceries))

		_, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:       1,
			TargetAmount: decimal.NewFromInt(100),
			CategoryID:   uintPtr(999),
			Period:       periodPtr(entity.GoalPeriodMonthly),
		})
		if !errors.Is(err, domainerror.ErrGoalCategoryNotFound) {
			t.Errorf("expected ErrGoalCategoryNotFound, got %v", err)
		}
	})
}

func TestCreateGoalUseCase_DuplicateResolution(t *testing.T) {
	groceries := &entity.Category{ID: 7, Name: "Groceries"}

	seed := func(t *testing.T) (*fakeGoalRepo, *CreateGoalUseCase, uint) {
		t.Helper()
		goalRepo := newFakeGoalRepo()
		uc := newCreateUseCase(goalRepo, newFakeCategoryRepo(groceries))

		out, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:       1,
			TargetAmount: decimal.NewFromInt(300),
			CategoryID:   uintPtr(groceries.ID),
			Period:       periodPtr(entity.GoalPeriodMonthly),
		})
		if err != nil {
			t.Fatalf("seed goal failed: %v", err)
		}
		return goalRepo, uc, out.Goal.GoalID
	}

	t.Run("rejects an unconfirmed duplicate", func(t *testing.T) {
		goalRepo, uc, _ := seed(t)

		_, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:       1,
			TargetAmount: decimal.NewFromInt(400),
			CategoryID:   uintPtr(groceries.ID),
			Period:       periodPtr(entity.GoalPeriodMonthly),
		})
		if !errors.Is(err, domainerror.ErrDuplicateGoal) {
			t.Fatalf("expected ErrDuplicateGoal, got %v", err)
		}
		if len(goalRepo.goals) != 1 {
			t.Errorf("stored %d goals, want 1 (rejected create must not persist)", len(goalRepo.goals))
		}
	})

	t.Run("confirmed duplicate replaces the existing goal", func(t *testing.T) {
		goalRepo, uc, existingID := seed(t)

		out, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:           1,
			TargetAmount:     decimal.NewFromInt(400),
			CategoryID:       uintPtr(groceries.ID),
			Period:           periodPtr(entity.GoalPeriodMonthly),
			ConfirmDuplicate: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if goalRepo.replaceCall != 1 {
			t.Errorf("ReplaceActive called %d times, want 1", goalRepo.replaceCall)
		}

		old, err := goalRepo.FindByID(context.Background(), existingID)
		if err != nil {
			t.Fatalf("replaced goal must remain stored: %v", err)
		}
		if old.Active {
			t.Error("expected the replaced goal to be inactive")
		}
		if out.Goal.GoalID == existingID {
			t.Error("expected the replacement to have a new id")
		}
		if !out.Goal.Active {
			t.Error("expected the replacement to be active")
		}
	})

	t.Run("different period is not a duplicate", func(t *testing.T) {
		goalRepo, uc, _ := seed(t)

		_, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:       1,
			TargetAmount: decimal.NewFromInt(100),
			CategoryID:   uintPtr(groceries.ID),
			Period:       periodPtr(entity.GoalPeriodWeekly),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(goalRepo.goals) != 2 {
			t.Errorf("stored %d goals, want 2", len(goalRepo.goals))
		}
	})

	t.Run("different user is not a duplicate", func(t *testing.T) {
		goalRepo, uc, _ := seed(t)

		_, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:       2,
			TargetAmount: decimal.NewFromInt(100),
			CategoryID:   uintPtr(groceries.ID),
			Period:       periodPtr(entity.GoalPeriodMonthly),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(goalRepo.goals) != 2 {
			t.Errorf("stored %d goals, want 2", len(goalRepo.goals))
		}
	})
}
