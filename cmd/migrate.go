package main

import (
	"errors"
	"log/slog"

	"crowdfund/internal/config"
	"crowdfund/internal/config/configs"
	"crowdfund/internal/db"
)

func migrate(cfg config.Config, logger *slog.Logger) error {
	if cfg.Ledger.Storage != configs.StoragePostgres {
		return errors.New("migrate needs LEDGER_STORAGE=postgres")
	}
	if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
		return err
	}
	logger.Info("migrations applied successfully")
	return nil
}
