// Package record contains expense record use cases.
package record

import (
	"context"
	"sort"
	"strings"
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

// fakeRecordRepo is an in-memory RecordRepository for use case tests.
type fakeRecordRepo struct {
	records   map[uint]*entity.ExpenseRecord
	nextID    uint
	createErr error
	updateErr error
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: make(map[uint]*entity.ExpenseRecord), nextID: 1}
}

func (r *fakeRecordRepo) Create(_ context.Context, record *entity.ExpenseRecord) error {
	if r.createErr != nil {
		return r.createErr
	}
	record.ID = r.nextID
	r.nextID++
	stored := *record
	r.records[record.ID] = &stored
	return nil
}

func (r *fakeRecordRepo) FindByID(_ context.Context, id uint) (*entity.ExpenseRecord, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, domainerror.ErrRecordNotFound
	}
	copied := *rec
	return &copied, nil
}

func (r *fakeRecordRepo) FindByUserID(_ context.Context, userID uint) ([]*entity.RecordWithCategory, error) {
	var out []*entity.RecordWithCategory
	for _, rec := range r.records {
		if rec.UserID == userID {
			copied := *rec
			out = append(out, &entity.RecordWithCategory{Record: &copied})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Record.ID > out[j].Record.ID })
	return out, nil
}

func (r *fakeRecordRepo) Update(_ context.Context, record *entity.ExpenseRecord) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.records[record.ID]; !ok {
		return domainerror.ErrRecordNotFound
	}
	stored := *record
	r.records[record.ID] = &stored
	return nil
}

func (r *fakeRecordRepo) Delete(_ context.Context, id uint) error {
	delete(r.records, id)
	return nil
}

func (r *fakeRecordRepo) CountByUserID(_ context.Context, userID uint) (int64, error) {
	var count int64
	for _, rec := range r.records {
		if rec.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *fakeRecordRepo) ExistsByCategoryID(_ context.Context, categoryID uint) (bool, error) {
	for _, rec := range r.records {
		if rec.CategoryID == categoryID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRecordRepo) WeeklyReport(_ context.Context, _ uint, _, _ int) ([]*entity.ExpenseReportRow, error) {
	return nil, nil
}

func (r *fakeRecordRepo) MonthlyReport(_ context.Context, _ uint, _, _ int) ([]*entity.ExpenseReportRow, error) {
	return nil, nil
}

func (r *fakeRecordRepo) YearlyReport(_ context.Context, _ uint, _ int) ([]*entity.ExpenseReportRow, error) {
	return nil, nil
}

// fakeCategoryRepo is an in-memory CategoryRepository for use case tests.
type fakeCategoryRepo struct {
	categories map[uint]*entity.Category
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{categories: make(map[uint]*entity.Category)}
	for _, c := range categories {
		repo.categories[c.ID] = c
	}
	return repo
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	category.ID = uint(len(r.categories) + 1)
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
		if strings.EqualFold(c.Name, name) {
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

func (r *fakeCategoryRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	_, err := r.FindByName(context.Background(), name)
	return err == nil, nil
}

// fakeEvaluator records achievement evaluation calls.
type fakeEvaluator struct {
	calls []uint
	err   error
}

func (e *fakeEvaluator) Evaluate(_ context.Context, userID uint) error {
	e.calls = append(e.calls, userID)
	return e.err
}

func uintPtr(v uint) *uint          { return &v }
func strPtr(v string) *string       { return &v }
func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }
