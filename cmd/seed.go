package main

import (
	"context"
	"log/slog"

	"crowdfund/internal/config"
	"crowdfund/internal/db"
)

// seed fills the ledger with demo data. Events are not published: nothing
// is subscribed outside serve.
func seed(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	st, err := buildStack(ctx, cfg, nil, logger)
	if err != nil {
		return err
	}
	defer st.close()

	if err = db.Seed(ctx, st.ledger, cfg.Ledger.Owner); err != nil {
		return err
	}
	overview, err := st.ledger.Overview(ctx)
	if err != nil {
		return err
	}
	logger.Info("demo data seeded",
		slog.Int64("campaigns", overview.Counters.CampaignID),
		slog.String("highest_donation", overview.Highest.Amount.String()))
	return nil
}
