package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/anuntech/expense-tracker/internal/domain/models"
	"github.com/anuntech/expense-tracker/internal/domain/usecase"
	"github.com/anuntech/expense-tracker/internal/infra/db/mongodb/schema"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExpenseStore keeps expenses in process memory. It applies the same schema
// as the MongoDB repositories and implements all of their interfaces.
type ExpenseStore struct {
	mu       sync.RWMutex
	expenses map[primitive.ObjectID]models.Expense
	schema   *schema.ExpenseSchema

	Now func() time.Time
	// Err, when set, is returned by every operation.
	Err error
}

func NewExpenseStore(expenseSchema *schema.ExpenseSchema) *ExpenseStore {
	return &ExpenseStore{
		expenses: make(map[primitive.ObjectID]models.Expense),
		schema:   expenseSchema,
		Now:      time.Now,
	}
}

func (s *ExpenseStore) Create(_ context.Context, fields usecase.ExpenseFields) (*models.Expense, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	expense, err := s.schema.New(fields, s.Now())
	if err != nil {
		return nil, err
	}
	expense.Id = primitive.NewObjectID()

	s.mu.Lock()
	s.expenses[expense.Id] = *expense
	s.mu.Unlock()

	created := *expense
	return &created, nil
}

func (s *ExpenseStore) Find(_ context.Context) ([]models.Expense, error) {
	return s.list(func(models.Expense) bool { return true })
}

func (s *ExpenseStore) FindByCategory(_ context.Context, category string) ([]models.Expense, error) {
	return s.list(func(e models.Expense) bool { return e.Category == category })
}

func (s *ExpenseStore) FindById(_ context.Context, expenseId string) (*models.Expense, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	id, err := primitive.ObjectIDFromHex(expenseId)
	if err != nil {
		return nil, usecase.NewInvalidIdentifierError(err)
	}

	s.mu.RLock()
	expense, ok := s.expenses[id]
	s.mu.RUnlock()
	if !ok {
		return nil, usecase.NewNotFoundError()
	}

	return &expense, nil
}

func (s *ExpenseStore) Update(_ context.Context, current *models.Expense, fields usecase.ExpenseFields) (*models.Expense, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	merged, err := s.schema.Merge(current, fields, s.Now())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.expenses[current.Id]; !ok {
		return nil, usecase.NewNotFoundError()
	}
	s.expenses[current.Id] = *merged

	updated := *merged
	return &updated, nil
}

func (s *ExpenseStore) Delete(_ context.Context, expenseId string) error {
	if s.Err != nil {
		return s.Err
	}

	id, err := primitive.ObjectIDFromHex(expenseId)
	if err != nil {
		return usecase.NewInvalidIdentifierError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.expenses[id]; !ok {
		return usecase.NewNotFoundError()
	}
	delete(s.expenses, id)

	return nil
}

func (s *ExpenseStore) list(match func(models.Expense) bool) ([]models.Expense, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	s.mu.RLock()
	expenses := make([]models.Expense, 0, len(s.expenses))
	for _, e := range s.expenses {
		if match(e) {
			expenses = append(expenses, e)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[j].Date.Before(expenses[i].Date)
	})

	return expenses, nil
}

// ById adapts the store to usecase.FindExpenseByIdRepository, whose method
// name clashes with the listing Find.
func (s *ExpenseStore) ById() usecase.FindExpenseByIdRepository {
	return findById{s}
}

type findById struct {
	store *ExpenseStore
}

func (f findById) Find(ctx context.Context, expenseId string) (*models.Expense, error) {
	return f.store.FindById(ctx, expenseId)
}
