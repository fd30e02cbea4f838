package category

import (
	"context"
	"testing"

	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

func TestUpdateCategoryUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("renames a category", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		cat := repo.seed("Grocery")
		uc := NewUpdateCategoryUseCase(repo)

		out, err := uc.Execute(ctx, UpdateCategoryInput{
			CategoryID: cat.ID,
			Name:       strPtr("Groceries"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Category.Name != "Groceries" {
			t.Errorf("expected name Groceries, got %s", out.Category.Name)
		}
		if repo.categories[cat.ID].Name != "Groceries" {
			t.Error("expected the rename to be persisted")
		}
	})

	t.Run("leaves omitted fields untouched", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		cat := entity.NewCategory("Dining", "Restaurants", "https://icons.example.com/fork.svg")
		cat.ID = 1
		repo.categories[1] = cat
		repo.nextID = 2
		uc := NewUpdateCategoryUseCase(repo)

		out, err := uc.Execute(ctx, UpdateCategoryInput{
			CategoryID:  cat.ID,
			Description: strPtr("Restaurants and takeaway"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Category.Name != "Dining" {
			t.Errorf("expected name to stay Dining, got %s", out.Category.Name)
		}
		if out.Category.Description != "Restaurants and takeaway" {
			t.Errorf("unexpected description: %s", out.Category.Description)
		}
		if out.Category.IconURL != "https://icons.example.com/fork.svg" {
			t.Errorf("expected icon to stay untouched, got %s", out.Category.IconURL)
		}
	})

	t.Run("rejects renaming to an empty name", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		cat := repo.seed("Transport")
		uc := NewUpdateCategoryUseCase(repo)

		_, err := uc.Execute(ctx, UpdateCategoryInput{
			CategoryID: cat.ID,
			Name:       strPtr(""),
		})
		assertCategoryErrorCode(t, err, domainerror.ErrCodeCategoryNameRequired)
	})

	t.Run("rejects renaming to a taken name", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		repo.seed("Groceries")
		cat := repo.seed("Transport")
		uc := NewUpdateCategoryUseCase(repo)

		_, err := uc.Execute(ctx, UpdateCategoryInput{
			CategoryID: cat.ID,
			Name:       strPtr("Groceries"),
		})
		assertCategoryErrorCode(t, err, domainerror.ErrCodeCategoryNameExists)
	})

	t.Run("accepts the current name unchanged", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		cat := repo.seed("Groceries")
		uc := NewUpdateCategoryUseCase(repo)

		out, err := uc.Execute(ctx, UpdateCategoryInput{
			CategoryID:  cat.ID,
			Name:        strPtr("Groceries"),
			Description: strPtr("Updated"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Category.Description != "Updated" {
			t.Errorf("unexpected description: %s", out.Category.Description)
		}
	})

	t.Run("fails for an unknown category", func(t *testing.T) {
		uc := NewUpdateCategoryUseCase(newFakeCategoryRepo())

		_, err := uc.Execute(ctx, UpdateCategoryInput{
			CategoryID: 99,
			Name:       strPtr("Anything"),
		})
		assertCategoryErrorCode(t, err, domainerror.ErrCodeCategoryNotFound)
	})
}

func TestDeleteCategoryUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an unused category", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		cat := repo.seed("Groceries")
		records := &fakeRecordUsage{usedCategoryIDs: map[uint]bool{}}
		uc := NewDeleteCategoryUseCase(repo, records)

		out, err := uc.Execute(ctx, DeleteCategoryInput{CategoryID: cat.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Success {
			t.Error("expected success")
		}
		if len(repo.categories) != 0 {
			t.Errorf("expected 0 stored categories, got %d", len(repo.categories))
		}
	})

	t.Run("refuses to delete a category with records", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		cat := repo.seed("Groceries")
		records := &fakeRecordUsage{usedCategoryIDs: map[uint]bool{cat.ID: true}}
		uc := NewDeleteCategoryUseCase(repo, records)

		_, err := uc.Execute(ctx, DeleteCategoryInput{CategoryID: cat.ID})
		assertCategoryErrorCode(t, err, domainerror.ErrCodeCategoryInUse)
		if len(repo.categories) != 1 {
			t.Errorf("expected the category to survive, got %d stored", len(repo.categories))
		}
	})

	t.Run("fails for an unknown category", func(t *testing.T) {
		records := &fakeRecordUsage{usedCategoryIDs: map[uint]bool{}}
		uc := NewDeleteCategoryUseCase(newFakeCategoryRepo(), records)

		_, err := uc.Execute(ctx, DeleteCategoryInput{CategoryID: 42})
		assertCategoryErrorCode(t, err, domainerror.ErrCodeCategoryNotFound)
	})
}

func TestListCategoriesUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("lists categories ordered by name", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		repo.seed("Transport")
		repo.seed("Groceries")
		repo.seed("Dining")
		uc := NewListCategoriesUseCase(repo)

		out, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Categories) != 3 {
			t.Fatalf("expected 3 categories, got %d", len(out.Categories))
		}
		names := []string{out.Categories[0].Name, out.Categories[1].Name, out.Categories[2].Name}
		want := []string{"Dining", "Groceries", "Transport"}
		for i := range want {
			if names[i] != want[i] {
				t.Errorf("expected %s at position %d, got %s", want[i], i, names[i])
			}
		}
	})

	t.Run("returns an empty list when nothing exists", func(t *testing.T) {
		uc := NewListCategoriesUseCase(newFakeCategoryRepo())

		out, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Categories) != 0 {
			t.Errorf("expected an empty list, got %d items", len(out.Categories))
		}
	})
}
