// Package memory keeps ledger and registry state in process. It backs tests
// and single-node deployments without a database.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"crowdfund/internal/core/domain"
)

type state struct {
	ledger      *domain.LedgerState
	admins      map[common.Address]struct{}
	campaignSeq int64
	archiveSeq  int64
	campaigns   map[int64]domain.Campaign
	archived    map[int64]domain.ArchivedCampaign
	highest     domain.HighestDonation

	registry *domain.RegistryState
	tokenSeq int64
	tokens   map[int64]domain.AwardToken

	payoutSeq int64
	payouts   []domain.Payout
}

func newState() *state {
	return &state{
		admins:    make(map[common.Address]struct{}),
		campaigns: make(map[int64]domain.Campaign),
		archived:  make(map[int64]domain.ArchivedCampaign),
		tokens:    make(map[int64]domain.AwardToken),
	}
}

func (s *state) clone() *state {
	c := *s
	if s.ledger != nil {
		l := *s.ledger
		c.ledger = &l
	}
	if s.registry != nil {
		r := *s.registry
		c.registry = &r
	}
	c.admins = maps.Clone(s.admins)
	c.campaigns = maps.Clone(s.campaigns)
	c.archived = maps.Clone(s.archived)
	c.tokens = maps.Clone(s.tokens)
	c.payouts = slices.Clone(s.payouts)
	return &c
}

type txKey struct{}

// Store holds all state behind one mutex. It implements port.Transactor:
// units of work run one at a time and a failed unit of work restores the
// snapshot taken when it started.
type Store struct {
	mu sync.Mutex
	st *state
}

func NewStore() *Store {
	return &Store{st: newState()}
}

func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.inTx(ctx) {
		return fn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	committed := false
	defer func() {
		if !committed {
			s.st = snapshot
		}
	}()
	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		return err
	}
	committed = true
	return nil
}

func (s *Store) inTx(ctx context.Context) bool {
	tx, ok := ctx.Value(txKey{}).(*Store)
	return ok && tx == s
}

// view runs fn against the state, taking the lock unless ctx already holds it.
func (s *Store) view(ctx context.Context, fn func(st *state) error) error {
	if s.inTx(ctx) {
		return fn(s.st)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.st)
}
