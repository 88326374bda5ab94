package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// AuthorizationPolicy answers who may do what on the ledger. It holds no
// state of its own: the owner and the admin set live in the repository.
type AuthorizationPolicy struct {
	repo port.LedgerRepository
}

func NewAuthorizationPolicy(repo port.LedgerRepository) AuthorizationPolicy {
	return AuthorizationPolicy{repo: repo}
}

// Owner returns the ledger owner.
func (p AuthorizationPolicy) Owner(ctx context.Context) (common.Address, error) {
	st, err := p.repo.GetState(ctx)
	if err != nil {
		return common.Address{}, fmt.Errorf("load ledger state: %w", err)
	}
	if st == nil {
		return common.Address{}, domain.ErrLedgerNotInitialized
	}
	return st.Owner, nil
}

// IsOwner reports whether account is the ledger owner.
func (p AuthorizationPolicy) IsOwner(ctx context.Context, account common.Address) (bool, error) {
	owner, err := p.Owner(ctx)
	if err != nil {
		return false, err
	}
	return owner == account, nil
}

// IsAdmin reports whether account may create campaigns. The owner always may.
func (p AuthorizationPolicy) IsAdmin(ctx context.Context, account common.Address) (bool, error) {
	owner, err := p.Owner(ctx)
	if err != nil {
		return false, err
	}
	if owner == account {
		return true, nil
	}
	ok, err := p.repo.IsAdmin(ctx, account)
	if err != nil {
		return false, fmt.Errorf("check admin: %w", err)
	}
	return ok, nil
}
