package routes

import (
	"net/http"

	"github.com/anuntech/expense-tracker/internal/setup/adapters"
	"github.com/anuntech/expense-tracker/internal/setup/factory"
	"github.com/anuntech/expense-tracker/internal/setup/middlewares"
)

// ExpenseRoutes registers the public expense API. Paths outside these
// patterns fall through to the server's catch-all.
func ExpenseRoutes(server *http.ServeMux, repos *factory.ExpenseRepositories, metrics *middlewares.Metrics) {
	handle := func(pattern string, handler http.Handler) {
		server.Handle(pattern, metrics.Instrument(pattern, handler))
	}

	// Get all expenses
	handle("GET /api/expenses", adapters.AdaptRoute(factory.MakeGetExpensesController(repos)))

	// Get a single expense
	handle("GET /api/expenses/{id}", adapters.AdaptRoute(factory.MakeGetExpenseByIdController(repos)))

	// Create an expense
	handle("POST /api/expenses", adapters.AdaptRoute(factory.MakeCreateExpenseController(repos)))

	// Update an expense
	handle("PUT /api/expenses/{id}", adapters.AdaptRoute(factory.MakeUpdateExpenseController(repos)))

	// Delete an expense
	handle("DELETE /api/expenses/{id}", adapters.AdaptRoute(factory.MakeDeleteExpenseController(repos)))

	// Get expenses by category
	handle("GET /api/expenses/category/{categoryName}", adapters.AdaptRoute(factory.MakeGetExpensesByCategoryController(repos)))
}
