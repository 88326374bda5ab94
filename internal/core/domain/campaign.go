package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Status is the lifecycle position of a campaign. The numeric values are
// stable and exposed to clients.
type Status uint8

const (
	// StatusNotFound is reported for ids that hold no live campaign. It is
	// never stored.
	StatusNotFound Status = iota
	StatusInProgress
	StatusCompleted
	StatusArchived
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "IN_PROGRESS"
	case StatusCompleted:
		return "COMPLETED"
	case StatusArchived:
		return "ARCHIVED"
	default:
		return "NOT_FOUND"
	}
}

// Campaign represents a fundraising campaign held by the ledger.
// Amounts are expressed in the smallest currency unit (e.g. wei).
type Campaign struct {
	ID          int64
	Name        string
	Description string
	TimeGoal    time.Time
	MoneyGoal   decimal.Decimal
	Balance     decimal.Decimal
	Manager     common.Address
	MetadataURI string
	Status      Status
	CreatedAt   time.Time
}

// NewCampaign carries the caller supplied fields of a campaign.
type NewCampaign struct {
	Name        string
	Description string
	TimeGoal    time.Time
	MoneyGoal   decimal.Decimal
	MetadataURI string
	Manager     common.Address
}

// Validate checks the fields in the order the ledger reports them. now is
// the current ledger time; the time goal must lie strictly after it.
func (n NewCampaign) Validate(now time.Time) error {
	if n.Name == "" {
		return ErrEmptyString
	}
	if n.Description == "" {
		return ErrEmptyString
	}
	if !n.TimeGoal.After(now) {
		return ErrInvalidTimeGoal
	}
	if !n.MoneyGoal.IsPositive() {
		return ErrInvalidMoneyGoal
	}
	if n.Manager == (common.Address{}) {
		return ErrInvalidAccount
	}
	return nil
}

// MoneyGoalReached reports whether the balance covers the money goal.
func (c *Campaign) MoneyGoalReached() bool {
	return c.Balance.GreaterThanOrEqual(c.MoneyGoal)
}

// TimeGoalReached reports whether now is at or past the time goal.
func (c *Campaign) TimeGoalReached(now time.Time) bool {
	return !now.Before(c.TimeGoal)
}

// ArchivedCampaign is a campaign whose funds were withdrawn. It lives in its
// own table under an archive-specific id. Campaign.Balance holds the amount
// paid out to the manager, not a remaining balance.
type ArchivedCampaign struct {
	ArchiveID  int64
	Campaign   Campaign
	ArchivedAt time.Time
}

// Counters exposes the current values of the ledger's id sequences.
type Counters struct {
	CampaignID int64
	ArchiveID  int64
}
