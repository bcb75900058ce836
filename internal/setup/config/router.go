package config

import (
	"net/http"

	"github.com/anuntech/expense-tracker/internal/setup/factory"
	"github.com/anuntech/expense-tracker/internal/setup/middlewares"
	"github.com/anuntech/expense-tracker/internal/setup/routes"
)

func SetupRoutes(server *http.ServeMux, repos *factory.ExpenseRepositories, metrics *middlewares.Metrics) {
	routes.ExpenseRoutes(server, repos, metrics)
}
