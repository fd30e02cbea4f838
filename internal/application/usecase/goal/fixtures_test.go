// Package goal contains spending-goal use cases.
package goal

import (
	"context"
	"sort"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("invalid decimal %q: %v", s, err)
	}
	return d
}

// fakeGoalRepo is an in-memory GoalRepository for use case tests.
type fakeGoalRepo struct {
	goals       map[uint]*entity.SpendingGoal
	nextID      uint
	createErr   error
	replaceErr  error
	replaceCall int
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: make(map[uint]*entity.SpendingGoal), nextID: 1}
}

func (r *fakeGoalRepo) Create(_ context.Context, goal *entity.SpendingGoal) error {
	if r.createErr != nil {
		return r.createErr
	}
	goal.ID = r.nextID
	r.nextID++
	stored := *goal
	r.goals[goal.ID] = &stored
	return nil
}

func (r *fakeGoalRepo) FindByID(_ context.Context, id uint) (*entity.SpendingGoal, error) {
	g, ok := r.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	copied := *g
	return &copied, nil
}

func (r *fakeGoalRepo) FindActiveByUserID(_ context.Context, userID uint) ([]*entity.SpendingGoal, error) {
	var out []*entity.SpendingGoal
	for _, g := range r.goals {
		if g.UserID == userID && g.Active {
			copied := *g
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeGoalRepo) FindActiveByUserCategoryPeriod(_ context.Context, userID, categoryID uint, period entity.GoalPeriod) (*entity.SpendingGoal, error) {
	for _, g := range r.goals {
		if g.UserID == userID && g.Active && g.CategoryID != nil && *g.CategoryID == categoryID && g.Period != nil && *g.Period == period {
			copied := *g
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeGoalRepo) ExistsActiveByUserCategoryPeriod(ctx context.Context, userID, categoryID uint, period entity.GoalPeriod) (bool, error) {
	g, err := r.FindActiveByUserCategoryPeriod(ctx, userID, categoryID, period)
	return g != nil, err
}

func (r *fakeGoalRepo) Update(_ context.Context, goal *entity.SpendingGoal) error {
	if _, ok := r.goals[goal.ID]; !ok {
		return domainerror.ErrGoalNotFound
	}
	stored := *goal
	r.goals[goal.ID] = &stored
	return nil
}

func (r *fakeGoalRepo) Delete(_ context.Context, goal *entity.SpendingGoal) error {
	delete(r.goals, goal.ID)
	return nil
}

func (r *fakeGoalRepo) ReplaceActive(ctx context.Context, old, replacement *entity.SpendingGoal) error {
	r.replaceCall++
	if r.replaceErr != nil {
		return r.replaceErr
	}
	if err := r.Update(ctx, old); err != nil {
		return err
	}
	return r.Create(ctx, replacement)
}

func (r *fakeGoalRepo) CountByUserID(_ context.Context, userID uint) (int64, error) {
	var n int64
	for _, g := range r.goals {
		if g.UserID == userID {
			n++
		}
	}
	return n, nil
}

// fakeCategoryRepo is an in-memory CategoryRepository for use case tests.
type fakeCategoryRepo struct {
	categories map[uint]*entity.Category
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{categories: make(map[uint]*entity.Category)}
	for _, c := range categories {
		r.categories[c.ID] = c
	}
	return r
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uint) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return c, nil
}

func (r *fakeCategoryRepo) FindByName(_ context.Context, name string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindAll(_ context.Context) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uint) error {
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	_, err := r.FindByName(ctx, name)
	return err == nil, nil
}
