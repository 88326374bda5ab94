package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// HighestDonation is the largest single donation accepted by the ledger.
// A zero Amount means no donation has been recorded yet.
type HighestDonation struct {
	Donor  common.Address
	Amount decimal.Decimal
}

// Beaten reports whether amount displaces the record. Ties keep the
// incumbent.
func (h HighestDonation) Beaten(amount decimal.Decimal) bool {
	return amount.GreaterThan(h.Amount)
}

// Payout is a transfer of a campaign balance to its manager.
type Payout struct {
	ID         int64
	CampaignID int64
	Recipient  common.Address
	Amount     decimal.Decimal
	CreatedAt  time.Time
}

// LedgerState is the singleton configuration of a deployed ledger.
type LedgerState struct {
	Address  common.Address
	Owner    common.Address
	Registry common.Address
}
