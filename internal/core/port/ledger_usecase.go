package port

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"crowdfund/internal/core/domain"
)

// LedgerUseCase defines the business operations exposed by the ledger. This
// interface represents the primary port into the application domain. The
// caller argument is the account on whose behalf an operation runs; it is
// authenticated by an outer collaborator.
type LedgerUseCase interface {
	// AssignAdmin adds account to the admin set. Only the owner may call it.
	// Assigning an existing admin succeeds.
	AssignAdmin(ctx context.Context, caller, account common.Address) error

	// RevokeAdmin removes account from the admin set. Only the owner may
	// call it and the owner itself cannot be revoked.
	RevokeAdmin(ctx context.Context, caller, account common.Address) error

	// IsAdmin reports admin membership.
	IsAdmin(ctx context.Context, account common.Address) (bool, error)

	// CreateCampaign registers a campaign on behalf of an admin and returns
	// its id.
	CreateCampaign(ctx context.Context, caller common.Address, req domain.NewCampaign) (int64, error)

	// Donate credits amount to a campaign in progress, completes it when a
	// goal is reached and awards the donor when the donation is the largest
	// seen so far.
	Donate(ctx context.Context, donor common.Address, campaignID int64, amount decimal.Decimal) (*DonationReceipt, error)

	// WithdrawFunds pays the balance of a completed campaign to its manager
	// and moves the campaign to the archive.
	WithdrawFunds(ctx context.Context, caller common.Address, campaignID int64) (*WithdrawalReceipt, error)

	// Campaign returns a live campaign by id.
	Campaign(ctx context.Context, id int64) (*domain.Campaign, error)

	// CampaignStatus returns the status of a live campaign, or
	// domain.StatusNotFound when the id holds none.
	CampaignStatus(ctx context.Context, id int64) (domain.Status, error)

	// ArchivedCampaign returns an archived campaign by archive id.
	ArchivedCampaign(ctx context.Context, archiveID int64) (*domain.ArchivedCampaign, error)

	// Payouts lists the transfers made to account.
	Payouts(ctx context.Context, account common.Address) ([]domain.Payout, error)

	// Overview returns the ledger configuration, its counters and the
	// highest donation record.
	Overview(ctx context.Context) (*LedgerOverview, error)
}

// DonationReceipt describes the outcome of an accepted donation.
type DonationReceipt struct {
	CampaignID int64
	Balance    decimal.Decimal
	Status     domain.Status
	Awarded    bool
	TokenID    int64
}

// WithdrawalReceipt describes a completed withdrawal.
type WithdrawalReceipt struct {
	CampaignID int64
	ArchiveID  int64
	Recipient  common.Address
	Amount     decimal.Decimal
}

// LedgerOverview is the queryable global state of the ledger.
type LedgerOverview struct {
	State    domain.LedgerState
	Counters domain.Counters
	Highest  domain.HighestDonation
}
