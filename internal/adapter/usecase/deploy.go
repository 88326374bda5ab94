package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"crowdfund/internal/core/domain"
)

// Deploy performs the one-time wiring of a registry and a ledger: the
// registry is created with deployer as minter, the ledger is created with
// deployer as owner and first admin, then minting rights move to the
// ledger. The three steps commit together. Deploy is a no-op when the
// ledger already exists and was deployed with the same ledger and registry
// addresses; a stored deployment bound to other addresses gives
// ErrDeploymentMismatch.
func Deploy(ctx context.Context, registry *AwardRegistry, ledger *Ledger, deployer common.Address) (bool, error) {
	if deployer == (common.Address{}) {
		return false, domain.ErrInvalidOwner
	}
	deployed := false
	err := ledger.uow.do(ctx, func(ctx context.Context) error {
		st, err := ledger.repo.GetState(ctx)
		if err != nil {
			return fmt.Errorf("load ledger state: %w", err)
		}
		if st != nil {
			if st.Address != ledger.Address() || st.Registry != ledger.registryAddress {
				return fmt.Errorf("%w: stored ledger %s registry %s", domain.ErrDeploymentMismatch, st.Address, st.Registry)
			}
			return nil
		}
		if err = registry.initialize(ctx, deployer); err != nil {
			return err
		}
		if err = ledger.initialize(ctx, deployer); err != nil {
			return err
		}
		if err = registry.TransferOwnership(ctx, deployer, ledger.Address()); err != nil {
			return fmt.Errorf("hand minting rights to ledger: %w", err)
		}
		deployed = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return deployed, nil
}
