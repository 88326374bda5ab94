package port

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"crowdfund/internal/core/domain"
)

// AwardMinter is the part of the award registry the ledger depends on.
type AwardMinter interface {
	// Mint creates the next token for to. caller must be the registry owner.
	Mint(ctx context.Context, caller, to common.Address, metadataURI string) (int64, error)
}

// AwardRegistry is the full surface of the collectible registry.
type AwardRegistry interface {
	AwardMinter

	// TransferOwnership hands minting rights from caller, the current owner,
	// to newOwner.
	TransferOwnership(ctx context.Context, caller, newOwner common.Address) error

	// OwnerOf returns the owner of a token.
	OwnerOf(ctx context.Context, tokenID int64) (common.Address, error)

	// Token returns a token by id.
	Token(ctx context.Context, tokenID int64) (*domain.AwardToken, error)

	// TokenCount returns the number of minted tokens.
	TokenCount(ctx context.Context) (int64, error)

	// State returns the registry configuration.
	State(ctx context.Context) (*domain.RegistryState, error)
}

// AwardRepository persists registry state. Lookups return nil, nil when the
// record does not exist.
type AwardRepository interface {
	GetState(ctx context.Context) (*domain.RegistryState, error)
	InitState(ctx context.Context, st domain.RegistryState) error
	SetOwner(ctx context.Context, owner common.Address) error
	// NextTokenID advances the token sequence and returns the new value.
	NextTokenID(ctx context.Context) (int64, error)
	CreateToken(ctx context.Context, tok *domain.AwardToken) error
	GetToken(ctx context.Context, id int64) (*domain.AwardToken, error)
	TokenCount(ctx context.Context) (int64, error)
}
