package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tillpoint/pospay/internal/api"
	"github.com/tillpoint/pospay/internal/config"
	"github.com/tillpoint/pospay/internal/domain"
	"github.com/tillpoint/pospay/internal/logging"
	"github.com/tillpoint/pospay/internal/payment"
	"github.com/tillpoint/pospay/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Logging)

	logger.Info("initializing database", "path", cfg.DB.Path)
	db, err := repository.InitDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("init db: %w", err)
	}
	defer db.Close()

	repo := repository.NewPaymentRepo(db)
	svc := payment.NewService(repo)

	if cfg.DB.SeedPath != "" {
		if err := seedIfEmpty(logger, repo, cfg.DB.SeedPath); err != nil {
			logger.Warn("seeding failed", "err", err)
		}
	}

	router := api.NewRouter(svc, logger, cfg.HTTP.MetricsEnabled)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// seedIfEmpty bulk-loads sample payments from a JSON file when the database
// has no payments yet.
func seedIfEmpty(logger *slog.Logger, repo *repository.PaymentRepo, path string) error {
	count, err := repo.Count()
	if err != nil {
		return fmt.Errorf("count payments: %w", err)
	}
	if count > 0 {
		logger.Info("database already seeded", "payments", count)
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var payments []domain.Payment
	if err := json.Unmarshal(data, &payments); err != nil {
		return fmt.Errorf("unmarshal seed file: %w", err)
	}

	inserted, err := repo.BulkInsert(payments)
	if err != nil {
		return fmt.Errorf("bulk insert: %w", err)
	}

	logger.Info("seeded payments", "inserted", inserted, "total", len(payments))
	return nil
}
