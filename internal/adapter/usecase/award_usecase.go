package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// RegistryIdentity names a registry deployment.
type RegistryIdentity struct {
	Address common.Address
	Name    string
	Symbol  string
}

// AwardRegistry mints sequentially numbered collectibles. Only its current
// owner may mint; after deployment the owner is the ledger. It implements
// port.AwardRegistry.
type AwardRegistry struct {
	ident RegistryIdentity
	repo  port.AwardRepository
	uow   unitOfWork
	clock port.Clock
}

func NewAwardRegistry(ident RegistryIdentity, repo port.AwardRepository, tx port.Transactor, pub port.EventPublisher, clock port.Clock) *AwardRegistry {
	if clock == nil {
		clock = SystemClock{}
	}
	return &AwardRegistry{
		ident: ident,
		repo:  repo,
		uow:   unitOfWork{tx: tx, pub: pub, clock: clock},
		clock: clock,
	}
}

// Address returns the account the registry is deployed at.
func (r *AwardRegistry) Address() common.Address { return r.ident.Address }

// initialize makes owner the first minter unless the registry already
// exists. It must run inside a unit of work.
func (r *AwardRegistry) initialize(ctx context.Context, owner common.Address) error {
	st, err := r.repo.GetState(ctx)
	if err != nil {
		return fmt.Errorf("load registry state: %w", err)
	}
	if st != nil {
		return nil
	}
	err = r.repo.InitState(ctx, domain.RegistryState{
		Address: r.ident.Address,
		Name:    r.ident.Name,
		Symbol:  r.ident.Symbol,
		Owner:   owner,
	})
	if err != nil {
		return fmt.Errorf("init registry state: %w", err)
	}
	return nil
}

func (r *AwardRegistry) Mint(ctx context.Context, caller, to common.Address, metadataURI string) (int64, error) {
	var id int64
	err := r.uow.do(ctx, func(ctx context.Context) error {
		st, err := r.state(ctx)
		if err != nil {
			return err
		}
		if caller != st.Owner {
			return domain.ErrMintUnauthorized
		}
		if to == (common.Address{}) {
			return domain.ErrInvalidAccount
		}
		if id, err = r.repo.NextTokenID(ctx); err != nil {
			return fmt.Errorf("allocate token id: %w", err)
		}
		tok := &domain.AwardToken{ID: id, Owner: to, MetadataURI: metadataURI, MintedAt: r.clock.Now()}
		if err = r.repo.CreateToken(ctx, tok); err != nil {
			return fmt.Errorf("store token: %w", err)
		}
		r.uow.emit(ctx, domain.EventNFTMinted, domain.NFTMinted{Owner: to, TokenID: id})
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *AwardRegistry) TransferOwnership(ctx context.Context, caller, newOwner common.Address) error {
	return r.uow.do(ctx, func(ctx context.Context) error {
		st, err := r.state(ctx)
		if err != nil {
			return err
		}
		if caller != st.Owner {
			return domain.ErrCallerNotOwner
		}
		if newOwner == (common.Address{}) {
			return domain.ErrInvalidOwner
		}
		if err = r.repo.SetOwner(ctx, newOwner); err != nil {
			return fmt.Errorf("set registry owner: %w", err)
		}
		r.uow.emit(ctx, domain.EventOwnershipTransferred, domain.OwnershipTransferred{
			PreviousOwner: st.Owner,
			NewOwner:      newOwner,
		})
		return nil
	})
}

func (r *AwardRegistry) OwnerOf(ctx context.Context, tokenID int64) (common.Address, error) {
	tok, err := r.Token(ctx, tokenID)
	if err != nil {
		return common.Address{}, err
	}
	return tok.Owner, nil
}

func (r *AwardRegistry) Token(ctx context.Context, tokenID int64) (*domain.AwardToken, error) {
	tok, err := r.repo.GetToken(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, domain.ErrTokenNotFound
	}
	return tok, nil
}

func (r *AwardRegistry) TokenCount(ctx context.Context) (int64, error) {
	return r.repo.TokenCount(ctx)
}

func (r *AwardRegistry) State(ctx context.Context) (*domain.RegistryState, error) {
	return r.state(ctx)
}

func (r *AwardRegistry) state(ctx context.Context) (*domain.RegistryState, error) {
	st, err := r.repo.GetState(ctx)
	if err != nil {
		return nil, fmt.Errorf("load registry state: %w", err)
	}
	if st == nil {
		return nil, domain.ErrRegistryNotInitialized
	}
	return st, nil
}
