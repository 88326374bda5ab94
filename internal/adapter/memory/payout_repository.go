package memory

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"crowdfund/internal/core/domain"
)

// PayoutRepository implements port.PayoutRepository on a Store. Paying only
// records the transfer; settlement happens outside the ledger.
type PayoutRepository struct {
	store *Store
}

func NewPayoutRepository(store *Store) *PayoutRepository {
	return &PayoutRepository{store: store}
}

func (r *PayoutRepository) Pay(ctx context.Context, p *domain.Payout) error {
	return r.store.view(ctx, func(st *state) error {
		st.payoutSeq++
		p.ID = st.payoutSeq
		st.payouts = append(st.payouts, *p)
		return nil
	})
}

func (r *PayoutRepository) ListPayouts(ctx context.Context, recipient common.Address) ([]domain.Payout, error) {
	var out []domain.Payout
	err := r.store.view(ctx, func(st *state) error {
		for _, p := range st.payouts {
			if p.Recipient == recipient {
				out = append(out, p)
			}
		}
		return nil
	})
	return out, err
}
