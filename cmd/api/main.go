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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/somesh5100/split-app-DevDynamics-Assesment/docs"
	"github.com/somesh5100/split-app-DevDynamics-Assesment/internal/config"
	"github.com/somesh5100/split-app-DevDynamics-Assesment/internal/database"
	"github.com/somesh5100/split-app-DevDynamics-Assesment/internal/expense"
	expensesplit "github.com/somesh5100/split-app-DevDynamics-Assesment/internal/expense/split"
	"github.com/somesh5100/split-app-DevDynamics-Assesment/internal/person"
	"github.com/somesh5100/split-app-DevDynamics-Assesment/internal/recurring"
	"github.com/somesh5100/split-app-DevDynamics-Assesment/internal/report"
	"github.com/somesh5100/split-app-DevDynamics-Assesment/internal/settlement"
	"github.com/somesh5100/split-app-DevDynamics-Assesment/pkg/logging"
	mw "github.com/somesh5100/split-app-DevDynamics-Assesment/pkg/middleware"
)

// @title Split App API
// @version 1.0
// @description Shared expense tracking with balance and settlement computation.
// @BasePath /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	logging.Setup()

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.EnsureSchema(ctx, db); err != nil {
		slog.Error("failed to prepare schema", "error", err)
		os.Exit(1)
	}

	slog.Info("connected to database")

	// Split Strategy Factory (Factory Pattern)
	splitFactory := expensesplit.NewSplitStrategyFactory()

	// Person feature
	personRepo := person.NewRepository(db)
	personService := person.NewService(personRepo)
	personHandler := person.NewHandler(personService)

	// Expense feature (with split factory injected)
	expenseRepo := expense.NewRepository(db)
	expenseService := expense.NewService(expenseRepo, personRepo, splitFactory)
	expenseHandler := expense.NewHandler(expenseService)

	// Settlement feature
	settlementRepo := settlement.NewRepository(db)
	settlementService := settlement.NewService(settlementRepo, splitFactory)
	settlementHandler := settlement.NewHandler(settlementService)

	// Report feature
	reportRepo := report.NewRepository(db)
	reportService := report.NewService(reportRepo)
	reportHandler := report.NewHandler(reportService)

	// Recurring expense feature
	recurringRepo := recurring.NewRepository(db)
	recurringService := recurring.NewService(recurringRepo)
	recurringHandler := recurring.NewHandler(recurringService)
	recurringProcessor := recurring.NewProcessor(recurringRepo, expenseService)

	go runRecurring(ctx, recurringProcessor, cfg.RecurringInterval)

	r := chi.NewRouter()

	r.Use(mw.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/people", personHandler.Routes())
		r.Mount("/expenses", expenseHandler.Routes())
		r.Mount("/settlements", settlementHandler.Routes())
		r.Mount("/reports", reportHandler.Routes())
		r.Mount("/recurring", recurringHandler.Routes())
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}

// runRecurring materializes due recurring expenses on a fixed interval until
// the context is cancelled.
func runRecurring(ctx context.Context, processor *recurring.Processor, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			created, err := processor.ProcessDue(ctx, now)
			if err != nil {
				slog.ErrorContext(ctx, "recurring run failed", "error", err)
				continue
			}
			if created > 0 {
				slog.InfoContext(ctx, "recurring run complete", "created", created)
			}
		}
	}
}
