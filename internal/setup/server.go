package setup

import (
	"net/http"

	"github.com/anuntech/expense-tracker/internal/setup/config"
	"github.com/anuntech/expense-tracker/internal/setup/factory"
	"github.com/anuntech/expense-tracker/internal/setup/middlewares"
	"github.com/anuntech/expense-tracker/internal/setup/routes"
	"github.com/prometheus/client_golang/prometheus"
)

type ServerDeps struct {
	Repositories *factory.ExpenseRepositories
	Store        routes.Pinger
	Registry     *prometheus.Registry
}

// Server assembles the full handler chain.
func Server(cfg *config.Config, deps ServerDeps) http.Handler {
	mux := http.NewServeMux()

	registry := deps.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	metrics := middlewares.NewMetrics(registry)

	config.SetupRoutes(mux, deps.Repositories, metrics)
	routes.HealthRoutes(mux, deps.Store, registry)

	staticDir := ""
	if cfg.IsProduction() {
		staticDir = cfg.StaticDir
	}
	routes.FallbackRoutes(mux, staticDir)

	return withMiddlewares(mux, cfg)
}

// withMiddlewares wraps handler so a recovered panic still reaches the
// access log.
func withMiddlewares(handler http.Handler, cfg *config.Config) http.Handler {
	handler = middlewares.CorsMiddleware(handler, cfg.CorsAllowedOrigins)
	handler = middlewares.RecoveryMiddleware(handler)
	handler = middlewares.RequestLogger(handler)
	handler = middlewares.RequestId(handler)

	return handler
}
