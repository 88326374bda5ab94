package memory

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"

	"crowdfund/internal/core/domain"
)

var errStateExists = errors.New("state already initialized")

// LedgerRepository implements port.LedgerRepository on a Store.
type LedgerRepository struct {
	store *Store
}

func NewLedgerRepository(store *Store) *LedgerRepository {
	return &LedgerRepository{store: store}
}

func (r *LedgerRepository) GetState(ctx context.Context) (*domain.LedgerState, error) {
	var out *domain.LedgerState
	err := r.store.view(ctx, func(st *state) error {
		if st.ledger != nil {
			l := *st.ledger
			out = &l
		}
		return nil
	})
	return out, err
}

func (r *LedgerRepository) InitState(ctx context.Context, ls domain.LedgerState) error {
	return r.store.view(ctx, func(st *state) error {
		if st.ledger != nil {
			return errStateExists
		}
		st.ledger = &ls
		return nil
	})
}

func (r *LedgerRepository) IsAdmin(ctx context.Context, account common.Address) (bool, error) {
	var ok bool
	err := r.store.view(ctx, func(st *state) error {
		_, ok = st.admins[account]
		return nil
	})
	return ok, err
}

func (r *LedgerRepository) AddAdmin(ctx context.Context, account common.Address) error {
	return r.store.view(ctx, func(st *state) error {
		st.admins[account] = struct{}{}
		return nil
	})
}

func (r *LedgerRepository) RemoveAdmin(ctx context.Context, account common.Address) error {
	return r.store.view(ctx, func(st *state) error {
		delete(st.admins, account)
		return nil
	})
}

func (r *LedgerRepository) NextCampaignID(ctx context.Context) (int64, error) {
	var id int64
	err := r.store.view(ctx, func(st *state) error {
		st.campaignSeq++
		id = st.campaignSeq
		return nil
	})
	return id, err
}

func (r *LedgerRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	return r.store.view(ctx, func(st *state) error {
		st.campaigns[c.ID] = *c
		return nil
	})
}

func (r *LedgerRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	var out *domain.Campaign
	err := r.store.view(ctx, func(st *state) error {
		if c, ok := st.campaigns[id]; ok {
			out = &c
		}
		return nil
	})
	return out, err
}

func (r *LedgerRepository) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	return r.store.view(ctx, func(st *state) error {
		cur, ok := st.campaigns[c.ID]
		if !ok {
			return domain.ErrCampaignNotFound
		}
		cur.Balance = c.Balance
		cur.Status = c.Status
		st.campaigns[c.ID] = cur
		return nil
	})
}

func (r *LedgerRepository) DeleteCampaign(ctx context.Context, id int64) error {
	return r.store.view(ctx, func(st *state) error {
		delete(st.campaigns, id)
		return nil
	})
}

func (r *LedgerRepository) NextArchiveID(ctx context.Context) (int64, error) {
	var id int64
	err := r.store.view(ctx, func(st *state) error {
		st.archiveSeq++
		id = st.archiveSeq
		return nil
	})
	return id, err
}

func (r *LedgerRepository) CreateArchivedCampaign(ctx context.Context, a *domain.ArchivedCampaign) error {
	return r.store.view(ctx, func(st *state) error {
		st.archived[a.ArchiveID] = *a
		return nil
	})
}

func (r *LedgerRepository) GetArchivedCampaign(ctx context.Context, archiveID int64) (*domain.ArchivedCampaign, error) {
	var out *domain.ArchivedCampaign
	err := r.store.view(ctx, func(st *state) error {
		if a, ok := st.archived[archiveID]; ok {
			out = &a
		}
		return nil
	})
	return out, err
}

func (r *LedgerRepository) Counters(ctx context.Context) (domain.Counters, error) {
	var out domain.Counters
	err := r.store.view(ctx, func(st *state) error {
		out = domain.Counters{CampaignID: st.campaignSeq, ArchiveID: st.archiveSeq}
		return nil
	})
	return out, err
}

func (r *LedgerRepository) GetHighestDonation(ctx context.Context) (domain.HighestDonation, error) {
	var out domain.HighestDonation
	err := r.store.view(ctx, func(st *state) error {
		out = st.highest
		return nil
	})
	return out, err
}

func (r *LedgerRepository) SetHighestDonation(ctx context.Context, h domain.HighestDonation) error {
	return r.store.view(ctx, func(st *state) error {
		st.highest = h
		return nil
	})
}
