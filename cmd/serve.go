package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	httpadapter "crowdfund/internal/adapter/http"
	"crowdfund/internal/config"
	"crowdfund/internal/config/configs"
	"crowdfund/internal/db"
	"crowdfund/internal/event"
)

// serve optionally runs migrations, deploys the ledger when needed and
// serves the HTTP API until SIGINT or SIGTERM, then shuts down gracefully.
func serve(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.Ledger.Storage == configs.StoragePostgres && cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	bus := event.NewBus(reg, logger)
	defer bus.Stop()
	event.LogEvents(bus, logger)

	st, err := buildStack(ctx, cfg, bus, logger)
	if err != nil {
		return err
	}
	defer st.close()

	handler := httpadapter.NewHandler(st.ledger, st.registry, reg, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}
