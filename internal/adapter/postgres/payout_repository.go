package postgres

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund/internal/core/domain"
)

// PayoutRepository implements port.PayoutRepository. A payout row is the
// ledger's record of a transfer; it commits or rolls back with the
// withdrawal that produced it.
type PayoutRepository struct {
	pool *pgxpool.Pool
}

func NewPayoutRepository(pool *pgxpool.Pool) *PayoutRepository {
	return &PayoutRepository{pool: pool}
}

func (r *PayoutRepository) Pay(ctx context.Context, p *domain.Payout) error {
	return conn(ctx, r.pool).QueryRow(ctx, `INSERT INTO payouts (campaign_id, recipient, amount, created_at)
VALUES ($1, $2, $3::numeric, $4) RETURNING id`,
		p.CampaignID, p.Recipient.Bytes(), p.Amount.String(), p.CreatedAt).Scan(&p.ID)
}

func (r *PayoutRepository) ListPayouts(ctx context.Context, recipient common.Address) ([]domain.Payout, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `SELECT id, campaign_id, recipient, amount::text, created_at
FROM payouts WHERE recipient = $1 ORDER BY id`, recipient.Bytes())
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Payout, error) {
		var (
			p      domain.Payout
			to     []byte
			amount string
		)
		if err := row.Scan(&p.ID, &p.CampaignID, &to, &amount, &p.CreatedAt); err != nil {
			return p, err
		}
		p.Recipient = common.BytesToAddress(to)
		var err error
		p.Amount, err = parseAmount(amount)
		return p, err
	})
}
