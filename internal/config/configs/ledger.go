package configs

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Storage backends for ledger state.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Ledger configures the deployed ledger and its award registry. Addresses
// are 0x-prefixed hex and are decoded through common.Address's text
// unmarshaller.
type Ledger struct {
	// Storage selects where state lives: "postgres" or "memory". Memory
	// state is lost on restart.
	Storage string `env:"STORAGE" envDefault:"postgres"`

	// Owner deploys the ledger on first start and becomes its owner and
	// first admin.
	Owner common.Address `env:"OWNER,required"`

	Address         common.Address `env:"ADDRESS" envDefault:"0x0000000000000000000000000000000000000001"`
	RegistryAddress common.Address `env:"REGISTRY_ADDRESS" envDefault:"0x0000000000000000000000000000000000000002"`
	RegistryName    string         `env:"REGISTRY_NAME" envDefault:"DonationAwardContract"`
	RegistrySymbol  string         `env:"REGISTRY_SYMBOL" envDefault:"DWNFT"`
}

// Validate rejects settings env cannot check on its own.
func (c Ledger) Validate() error {
	switch c.Storage {
	case StoragePostgres, StorageMemory:
	default:
		return fmt.Errorf("unknown ledger storage %q", c.Storage)
	}
	if c.Owner == (common.Address{}) {
		return fmt.Errorf("ledger owner must not be the zero address")
	}
	if c.Address == c.RegistryAddress {
		return fmt.Errorf("ledger and registry addresses must differ")
	}
	return nil
}
