package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// AwardToken is a collectible minted for a highest donor.
type AwardToken struct {
	ID          int64
	Owner       common.Address
	MetadataURI string
	MintedAt    time.Time
}

// RegistryState is the singleton configuration of the award registry. Owner
// is the only account allowed to mint.
type RegistryState struct {
	Address common.Address
	Name    string
	Symbol  string
	Owner   common.Address
}
