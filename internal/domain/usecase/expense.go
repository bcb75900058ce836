package usecase

import (
	"context"

	"github.com/anuntech/expense-tracker/internal/domain/models"
)

// ExpenseFields is a raw request payload handed to the store, which owns
// casting and schema validation.
type ExpenseFields map[string]any

type CreateExpenseRepository interface {
	Create(ctx context.Context, fields ExpenseFields) (*models.Expense, error)
}

type FindExpensesRepository interface {
	Find(ctx context.Context) ([]models.Expense, error)
}

type FindExpensesByCategoryRepository interface {
	FindByCategory(ctx context.Context, category string) ([]models.Expense, error)
}

type FindExpenseByIdRepository interface {
	Find(ctx context.Context, expenseId string) (*models.Expense, error)
}

type UpdateExpenseRepository interface {
	Update(ctx context.Context, current *models.Expense, fields ExpenseFields) (*models.Expense, error)
}

type DeleteExpenseRepository interface {
	Delete(ctx context.Context, expenseId string) error
}
