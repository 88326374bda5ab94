package memory

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"crowdfund/internal/core/domain"
)

// AwardRepository implements port.AwardRepository on a Store.
type AwardRepository struct {
	store *Store
}

func NewAwardRepository(store *Store) *AwardRepository {
	return &AwardRepository{store: store}
}

func (r *AwardRepository) GetState(ctx context.Context) (*domain.RegistryState, error) {
	var out *domain.RegistryState
	err := r.store.view(ctx, func(st *state) error {
		if st.registry != nil {
			reg := *st.registry
			out = &reg
		}
		return nil
	})
	return out, err
}

func (r *AwardRepository) InitState(ctx context.Context, rs domain.RegistryState) error {
	return r.store.view(ctx, func(st *state) error {
		if st.registry != nil {
			return errStateExists
		}
		st.registry = &rs
		return nil
	})
}

func (r *AwardRepository) SetOwner(ctx context.Context, owner common.Address) error {
	return r.store.view(ctx, func(st *state) error {
		if st.registry == nil {
			return domain.ErrRegistryNotInitialized
		}
		st.registry.Owner = owner
		return nil
	})
}

func (r *AwardRepository) NextTokenID(ctx context.Context) (int64, error) {
	var id int64
	err := r.store.view(ctx, func(st *state) error {
		st.tokenSeq++
		id = st.tokenSeq
		return nil
	})
	return id, err
}

func (r *AwardRepository) CreateToken(ctx context.Context, tok *domain.AwardToken) error {
	return r.store.view(ctx, func(st *state) error {
		st.tokens[tok.ID] = *tok
		return nil
	})
}

func (r *AwardRepository) GetToken(ctx context.Context, id int64) (*domain.AwardToken, error) {
	var out *domain.AwardToken
	err := r.store.view(ctx, func(st *state) error {
		if tok, ok := st.tokens[id]; ok {
			out = &tok
		}
		return nil
	})
	return out, err
}

func (r *AwardRepository) TokenCount(ctx context.Context) (int64, error) {
	var n int64
	err := r.store.view(ctx, func(st *state) error {
		n = int64(len(st.tokens))
		return nil
	})
	return n, err
}
