package category

import (
	"context"
	"sort"
	"strings"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// fakeCategoryRepo is an in-memory adapter.CategoryRepository used across the
// category use case tests.
type fakeCategoryRepo struct {
	categories map[uint]*entity.Category
	nextID     uint

	createErr error
	findErr   error
	updateErr error
	deleteErr error
	existsErr error
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories: make(map[uint]*entity.Category),
		nextID:     1,
	}
}

func (r *fakeCategoryRepo) seed(name string) *entity.Category {
	cat := entity.NewCategory(name, "", "")
	cat.ID = r.nextID
	r.nextID++
	r.categories[cat.ID] = cat
	return cat
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	if r.createErr != nil {
		return r.createErr
	}
	category.ID = r.nextID
	r.nextID++
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uint) (*entity.Category, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	cat, ok := r.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	copied := *cat
	return &copied, nil
}

func (r *fakeCategoryRepo) FindByName(_ context.Context, name string) (*entity.Category, error) {
	for _, cat := range r.categories {
		if strings.EqualFold(cat.Name, name) {
			copied := *cat
			return &copied, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindAll(_ context.Context) ([]*entity.Category, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make([]*entity.Category, 0, len(r.categories))
	for _, cat := range r.categories {
		copied := *cat
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	copied := *category
	r.categories[category.ID] = &copied
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uint) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	if r.existsErr != nil {
		return false, r.existsErr
	}
	for _, cat := range r.categories {
		if strings.EqualFold(cat.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

// fakeRecordUsage reports category usage for delete tests. Only
// ExistsByCategoryID is implemented; the rest of the interface panics if
// reached.
type fakeRecordUsage struct {
	adapter.RecordRepository

	usedCategoryIDs map[uint]bool
	existsErr       error
}

func (r *fakeRecordUsage) ExistsByCategoryID(_ context.Context, categoryID uint) (bool, error) {
	if r.existsErr != nil {
		return false, r.existsErr
	}
	return r.usedCategoryIDs[categoryID], nil
}

func strPtr(s string) *string {
	return &s
}
