package factory

import (
	"github.com/anuntech/expense-tracker/internal/domain/usecase"
	"github.com/anuntech/expense-tracker/internal/infra/db/memory"
	"github.com/anuntech/expense-tracker/internal/infra/db/mongodb/expense_repository"
	"github.com/anuntech/expense-tracker/internal/infra/db/mongodb/schema"
	controllers "github.com/anuntech/expense-tracker/internal/presentation/controllers/expense"
	"go.mongodb.org/mongo-driver/mongo"
)

// ExpenseRepositories bundles every store operation the expense routes need.
type ExpenseRepositories struct {
	Create         usecase.CreateExpenseRepository
	Find           usecase.FindExpensesRepository
	FindByCategory usecase.FindExpensesByCategoryRepository
	FindById       usecase.FindExpenseByIdRepository
	Update         usecase.UpdateExpenseRepository
	Delete         usecase.DeleteExpenseRepository
}

func MakeMongoExpenseRepositories(db *mongo.Database, expenseSchema *schema.ExpenseSchema) *ExpenseRepositories {
	return &ExpenseRepositories{
		Create:         expense_repository.NewCreateExpenseRepository(db, expenseSchema),
		Find:           expense_repository.NewFindExpensesRepository(db),
		FindByCategory: expense_repository.NewFindExpensesByCategoryRepository(db),
		FindById:       expense_repository.NewFindExpenseByIdRepository(db),
		Update:         expense_repository.NewUpdateExpenseRepository(db, expenseSchema),
		Delete:         expense_repository.NewDeleteExpenseRepository(db),
	}
}

func MakeMemoryExpenseRepositories(store *memory.ExpenseStore) *ExpenseRepositories {
	return &ExpenseRepositories{
		Create:         store,
		Find:           store,
		FindByCategory: store,
		FindById:       store.ById(),
		Update:         store,
		Delete:         store,
	}
}

func MakeGetExpensesController(repos *ExpenseRepositories) *controllers.GetExpensesController {
	return controllers.NewGetExpensesController(repos.Find)
}

func MakeGetExpenseByIdController(repos *ExpenseRepositories) *controllers.GetExpenseByIdController {
	return controllers.NewGetExpenseByIdController(repos.FindById)
}

func MakeCreateExpenseController(repos *ExpenseRepositories) *controllers.CreateExpenseController {
	return controllers.NewCreateExpenseController(repos.Create)
}

func MakeUpdateExpenseController(repos *ExpenseRepositories) *controllers.UpdateExpenseController {
	return controllers.NewUpdateExpenseController(repos.Update, repos.FindById)
}

func MakeDeleteExpenseController(repos *ExpenseRepositories) *controllers.DeleteExpenseController {
	return controllers.NewDeleteExpenseController(repos.Delete, repos.FindById)
}

func MakeGetExpensesByCategoryController(repos *ExpenseRepositories) *controllers.GetExpensesByCategoryController {
	return controllers.NewGetExpensesByCategoryController(repos.FindByCategory)
}
