package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anuntech/expense-tracker/internal/infra/db/memory"
	"github.com/anuntech/expense-tracker/internal/infra/db/mongodb/helpers"
	"github.com/anuntech/expense-tracker/internal/infra/db/mongodb/schema"
	"github.com/anuntech/expense-tracker/internal/setup"
	"github.com/anuntech/expense-tracker/internal/setup/config"
	"github.com/anuntech/expense-tracker/internal/setup/factory"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadEnvFile(".env"); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	slog.SetDefault(config.NewLogger(cfg, os.Stdout))
	helpers.Timeout = cfg.MongoTimeout

	expenseSchema, err := schema.NewExpenseSchema()
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	deps := setup.ServerDeps{Registry: registry}

	switch cfg.DataBackend {
	case config.BackendMemory:
		slog.Warn("using in-memory expense store, data is lost on restart")
		deps.Repositories = factory.MakeMemoryExpenseRepositories(memory.NewExpenseStore(expenseSchema))
	default:
		conn, err := helpers.MongoHelper(context.Background(), cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := conn.Disconnect(ctx); err != nil {
				slog.Error("closing store connection", "error", err)
			}
		}()

		if err := helpers.EnsureExpenseIndexes(context.Background(), conn.Db); err != nil {
			slog.Warn("could not ensure indexes", "error", err)
		}

		deps.Repositories = factory.MakeMongoExpenseRepositories(conn.Db, expenseSchema)
		deps.Store = conn
	}

	sm := http.Server{
		Addr:         cfg.Addr(),
		Handler:      setup.Server(cfg, deps),
		IdleTimeout:  60 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.MongoTimeout + 5*time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server is running", "port", cfg.Port, "env", cfg.AppEnv, "backend", cfg.DataBackend)
		if err := sm.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return err
	case sig := <-sigChan:
		slog.Info("received terminate, graceful shutdown", "signal", sig.String())
	}

	tc, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return sm.Shutdown(tc)
}
