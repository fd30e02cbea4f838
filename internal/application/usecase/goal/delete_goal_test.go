// Package goal contains spending-goal use cases.
package goal

import (
	"context"
	"errors"
	"testing"

	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

func TestDeleteGoalUseCase(t *testing.T) {
	t.Run("deletes the owner's goal", func(t *testing.T) {
		goalRepo := newFakeGoalRepo()
		g := seedSimpleGoal(t, goalRepo, 1)
		uc := NewDeleteGoalUseCase(goalRepo)

		out, err := uc.Execute(context.Background(), DeleteGoalInput{GoalID: g.ID, UserID: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Success {
			t.Error("expected success to be true")
		}

		if _, err := goalRepo.FindByID(context.Background(), g.ID); !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Error("expected the goal to be removed")
		}
	})

	t.Run("deletes an inactive goal too", func(t *testing.T) {
		goalRepo := newFakeGoalRepo()
		g := seedSimpleGoal(t, goalRepo, 1)
		g.Active = false
		if err := goalRepo.Update(context.Background(), g); err != nil {
			t.Fatalf("deactivate failed: %v", err)
		}
		uc := NewDeleteGoalUseCase(goalRepo)

		if _, err := uc.Execute(context.Background(), DeleteGoalInput{GoalID: g.ID, UserID: 1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("returns not found for a missing goal", func(t *testing.T) {
		uc := NewDeleteGoalUseCase(newFakeGoalRepo())

		_, err := uc.Execute(context.Background(), DeleteGoalInput{GoalID: 42, UserID: 1})
		if !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Errorf("expected ErrGoalNotFound, got %v", err)
		}
	})

	t.Run("rejects a non-owner and keeps the goal", func(t *testing.T) {
		goalRepo := newFakeGoalRepo()
		g := seedSimpleGoal(t, goalRepo, 1)
		uc := NewDeleteGoalUseCase(goalRepo)

		_, err := uc.Execute(context.Background(), DeleteGoalInput{GoalID: g.ID, UserID: 2})
		if !errors.Is(err, domainerror.ErrUnauthorizedGoalAccess) {
			t.Fatalf("expected ErrUnauthorizedGoalAccess, got %v", err)
		}

		if _, err := goalRepo.FindByID(context.Background(), g.ID); err != nil {
			t.Error("expected the goal to remain stored")
		}
	})
}

func TestListGoalsUseCase(t *testing.T) {
	t.Run("returns only active goals for the user", func(t *testing.T) {
		goalRepo := newFakeGoalRepo()
		seedSimpleGoal(t, goalRepo, 1)
		inactive := seedSimpleGoal(t, goalRepo, 1)
		inactive.Active = false
		if err := goalRepo.Update(context.Background(), inactive); err != nil {
			t.Fatalf("deactivate failed: %v", err)
		}
		seedSimpleGoal(t, goalRepo, 2)

		uc := NewListGoalsUseCase(goalRepo, newFakeCategoryRepo())
		out, err := uc.Execute(context.Background(), ListGoalsInput{UserID: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Goals) != 1 {
			t.Fatalf("got %d goals, want 1", len(out.Goals))
		}
		if !out.Goals[0].Active {
			t.Error("expected the listed goal to be active")
		}
	})

	t.Run("fills the legacy category name when resolvable", func(t *testing.T) {
		goalRepo := newFakeGoalRepo()
		g := entity.NewLegacyGoal(1, 7, entity.GoalPeriodMonthly, mustDecimal(t, "300"), date(2024, 3, 1), date(2024, 3, 31))
		if err := goalRepo.Create(context.Background(), g); err != nil {
			t.Fatalf("seed goal failed: %v", err)
		}

		uc := NewListGoalsUseCase(goalRepo, newFakeCategoryRepo(&entity.Category{ID: 7, Name: "Groceries"}))
		out, err := uc.Execute(context.Background(), ListGoalsInput{UserID: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Goals) != 1 {
			t.Fatalf("got %d goals, want 1", len(out.Goals))
		}
		if out.Goals[0].CategoryName == nil || *out.Goals[0].CategoryName != "Groceries" {
			t.Errorf("category name = %v, want Groceries", out.Goals[0].CategoryName)
		}
	})

	t.Run("tolerates a missing legacy category", func(t *testing.T) {
		goalRepo := newFakeGoalRepo()
		g := entity.NewLegacyGoal(1, 99, entity.GoalPeriodMonthly, mustDecimal(t, "300"), date(2024, 3, 1), date(2024, 3, 31))
		if err := goalRepo.Create(context.Background(), g); err != nil {
			t.Fatalf("seed goal failed: %v", err)
		}

		uc := NewListGoalsUseCase(goalRepo, newFakeCategoryRepo())
		out, err := uc.Execute(context.Background(), ListGoalsInput{UserID: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Goals[0].CategoryName != nil {
			t.Errorf("category name = %v, want nil", out.Goals[0].CategoryName)
		}
	})
}
