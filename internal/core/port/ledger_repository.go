package port

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"crowdfund/internal/core/domain"
)

// LedgerRepository defines the persistence layer for the ledger. It is an
// outbound port in hexagonal architecture. Methods run inside the unit of
// work carried by ctx when there is one. Lookups return nil, nil when the
// record does not exist.
type LedgerRepository interface {
	GetState(ctx context.Context) (*domain.LedgerState, error)
	InitState(ctx context.Context, st domain.LedgerState) error

	IsAdmin(ctx context.Context, account common.Address) (bool, error)
	AddAdmin(ctx context.Context, account common.Address) error
	RemoveAdmin(ctx context.Context, account common.Address) error

	// NextCampaignID advances the campaign sequence and returns the new value.
	NextCampaignID(ctx context.Context) (int64, error)
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// UpdateCampaign stores the balance and status of c.
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error
	DeleteCampaign(ctx context.Context, id int64) error

	// NextArchiveID advances the archive sequence and returns the new value.
	NextArchiveID(ctx context.Context) (int64, error)
	CreateArchivedCampaign(ctx context.Context, a *domain.ArchivedCampaign) error
	GetArchivedCampaign(ctx context.Context, archiveID int64) (*domain.ArchivedCampaign, error)

	Counters(ctx context.Context) (domain.Counters, error)

	GetHighestDonation(ctx context.Context) (domain.HighestDonation, error)
	SetHighestDonation(ctx context.Context, h domain.HighestDonation) error
}

// Payer moves a campaign balance to its recipient. A failed payment must
// leave no trace.
type Payer interface {
	Pay(ctx context.Context, p *domain.Payout) error
}

// PayoutRepository records payouts and lists them per recipient.
type PayoutRepository interface {
	Payer
	ListPayouts(ctx context.Context, recipient common.Address) ([]domain.Payout, error)
}

// Transactor runs fn as one atomic unit of work. State changes made by fn
// through the repositories are discarded when fn returns an error.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher delivers committed events to observers.
type EventPublisher interface {
	Publish(ctx context.Context, evt domain.Event)
}

// Clock supplies the ledger time used for goal checks.
type Clock interface {
	Now() time.Time
}
