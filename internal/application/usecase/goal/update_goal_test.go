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

func seedSimpleGoal(t *testing.T, repo *fakeGoalRepo, userID uint) *entity.SpendingGoal {
	t.Helper()
	deadline := date(2024, time.June, 30)
	g := entity.NewSimpleGoal(userID, "Vacation fund", decimal.NewFromInt(500), decimal.NewFromInt(100), strPtr("Travel"), &deadline)
	if err := repo.Create(context.Background(), g); err != nil {
		t.Fatalf("seed goal failed: %v", err)
	}
	return g
}

func TestUpdateGoalUseCase(t *testing.T) {
	t.Run("updates only the supplied fields", func(t *testing.T) {
		goalRepo := newFakeGoalRepo()
		g := seedSimpleGoal(t, goalRepo, 1)
		uc := NewUpdateGoalUseCase(goalRepo, newFakeCategoryRepo())

		newTarget := decimal.NewFromInt(800)
		out, err := uc.Execute(context.Background(), UpdateGoalInput{
			GoalID:       g.ID,
			UserID:       1,
			TargetAmount: &newTarget,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !out.Goal.TargetAmount.Equal(newTarget) {
			t.Errorf("target amount = %s, want %s", out.Goal.TargetAmount, newTarget)
		}
		if out.Goal.GoalName != "Vacation fund" {
			t.Errorf("goal name = %q, want unchanged %q", out.Goal.GoalName, "Vacation fund")
		}
		if !out.Goal.CurrentAmount.Equal(decimal.NewFromInt(100)) {
			t.Errorf("current amount = %s, want unchanged 100", out.Goal.CurrentAmount)
		}
		if out.Goal.Category == nil || *out.Goal.Category != "Travel" {
			t.Errorf("category = %v, want unchanged Travel", out.Goal.Category)
		}

		stored, _ := goalRepo.FindByID(context.Background(), g.ID)
		if !stored.TargetAmount.Equal(newTarget) {
			t.Errorf("stored target amount = %s, want %s", stored.TargetAmount, newTarget)
		}
	})

	t.Run("updates every simplified field when supplied", func(t *testing.T) {
		goalRepo := newFakeGoalRepo()
		g := seedSimpleGoal(t, goalRepo, 1)
		uc := NewUpdateGoalUseCase(goalRepo, newFakeCategoryRepo())

		newTarget := decimal.NewFromInt(900)
		newCurrent := decimal.NewFromInt(250)
		newDeadline := date(2024, time.December, 31)
		out, err := uc.Execute(context.Background(), UpdateGoalInput{
			GoalID:        g.ID,
			UserID:        1,
			GoalName:      strPtr("House deposit"),
			TargetAmount:  &newTarget,
			CurrentAmount: &newCurrent,
			Category:      strPtr("Housing"),
			Deadline:      &newDeadline,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Goal.GoalName != "House deposit" {
			t.Errorf("goal name = %q, want %q", out.Goal.GoalName, "House deposit")
		}
		if !out.Goal.CurrentAmount.Equal(newCurrent) {
			t.Errorf("current amount = %s, want %s", out.Goal.CurrentAmount, newCurrent)
		}
		if out.Goal.Deadline == nil || !out.Goal.Deadline.Equal(newDeadline) {
			t.Errorf("deadline = %v, want %v", out.Goal.Deadline, newDeadline)
		}
	})

	t.Run("does not recompute the legacy window", func(t *testing.T) {
		goalRepo := newFakeGoalRepo()
		start := date(2024, time.March, 1)
		end := date(2024, time.March, 31)
		g := entity.NewLegacyGoal(1, 7, entity.GoalPeriodMonthly, decimal.NewFromInt(300), start, end)
		if err := goalRepo.Create(context.Background(), g); err != nil {
			t.Fatalf("seed goal failed: %v", err)
		}
		uc := NewUpdateGoalUseCase(goalRepo, newFakeCategoryRepo(&entity.Category{ID: 7, Name: "Groceries"}))

		newTarget := decimal.NewFromInt(450)
		if _, err := uc.Execute(context.Background(), UpdateGoalInput{
			GoalID:       g.ID,
			UserID:       1,
			TargetAmount: &newTarget,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, _ := goalRepo.FindByID(context.Background(), g.ID)
		if !stored.StartDate.Equal(start) || !stored.EndDate.Equal(end) {
			t.Errorf("window changed to [%v, %v], want unchanged [%v, %v]", stored.StartDate, stored.EndDate, start, end)
		}
	})

	t.Run("returns not found for a missing goal", func(t *testing.T) {
		uc := NewUpdateGoalUseCase(newFakeGoalRepo(), newFakeCategoryRepo())

		_, err := uc.Execute(context.Background(), UpdateGoalInput{GoalID: 42, UserID: 1})
		if !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Errorf("expected ErrGoalNotFound, got %v", err)
		}
	})

	t.Run("rejects a non-owner", func(t *testing.T) {
		goalRepo := newFakeGoalRepo()
		g := seedSimpleGoal(t, goalRepo, 1)
		uc := NewUpdateGoalUseCase(goalRepo, newFakeCategoryRepo())

		name := "Hijack"
		_, err := uc.Execute(context.Background(), UpdateGoalInput{
			GoalID:   g.ID,
			UserID:   2,
			GoalName: &name,
		})
		if !errors.Is(err, domainerror.ErrUnauthorizedGoalAccess) {
			t.Fatalf("expected ErrUnauthorizedGoalAccess, got %v", err)
		}

		stored, _ := goalRepo.FindByID(context.Background(), g.ID)
		if stored.GoalName != "Vacation fund" {
			t.Errorf("goal name = %q, want unchanged %q", stored.GoalName, "Vacation fund")
		}
	})
}
