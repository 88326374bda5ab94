package main

import (
	"context"
	"fmt"
	"log/slog"

	"crowdfund/internal/adapter/memory"
	"crowdfund/internal/adapter/postgres"
	"crowdfund/internal/adapter/usecase"
	"crowdfund/internal/config"
	"crowdfund/internal/config/configs"
	"crowdfund/internal/core/port"
	"crowdfund/internal/db"
)

// stack is a deployed ledger and registry on the configured storage.
type stack struct {
	registry *usecase.AwardRegistry
	ledger   *usecase.Ledger
	close    func()
}

type repositories struct {
	ledger  port.LedgerRepository
	awards  port.AwardRepository
	payouts port.PayoutRepository
	tx      port.Transactor
	close   func()
}

func openRepositories(ctx context.Context, cfg config.Config) (*repositories, error) {
	if cfg.Ledger.Storage == configs.StorageMemory {
		store := memory.NewStore()
		return &repositories{
			ledger:  memory.NewLedgerRepository(store),
			awards:  memory.NewAwardRepository(store),
			payouts: memory.NewPayoutRepository(store),
			tx:      store,
			close:   func() {},
		}, nil
	}
	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return &repositories{
		ledger:  postgres.NewLedgerRepository(pool),
		awards:  postgres.NewAwardRepository(pool),
		payouts: postgres.NewPayoutRepository(pool),
		tx:      postgres.NewTransactor(pool),
		close:   pool.Close,
	}, nil
}

// buildStack wires the registry and the ledger and deploys them on first
// start.
func buildStack(ctx context.Context, cfg config.Config, pub port.EventPublisher, logger *slog.Logger) (*stack, error) {
	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}

	registry := usecase.NewAwardRegistry(usecase.RegistryIdentity{
		Address: cfg.Ledger.RegistryAddress,
		Name:    cfg.Ledger.RegistryName,
		Symbol:  cfg.Ledger.RegistrySymbol,
	}, repos.awards, repos.tx, pub, nil)

	ledger := usecase.NewLedger(cfg.Ledger.Address, usecase.LedgerDeps{
		Repo:            repos.ledger,
		Payouts:         repos.payouts,
		Registry:        registry,
		RegistryAddress: registry.Address(),
		Tx:              repos.tx,
		Publisher:       pub,
		Logger:          logger,
	})

	deployed, err := usecase.Deploy(ctx, registry, ledger, cfg.Ledger.Owner)
	if err != nil {
		repos.close()
		return nil, fmt.Errorf("deploy ledger: %w", err)
	}
	if deployed {
		logger.Info("ledger deployed",
			slog.String("storage", cfg.Ledger.Storage),
			slog.String("owner", cfg.Ledger.Owner.Hex()),
			slog.String("ledger", ledger.Address().Hex()),
			slog.String("registry", registry.Address().Hex()))
	}
	return &stack{registry: registry, ledger: ledger, close: repos.close}, nil
}
