package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventType names a notification emitted by the ledger or the registry.
type EventType string

const (
	EventAdminAssigned           EventType = "AdminAssigned"
	EventAdminRevoked            EventType = "AdminRevoked"
	EventCampaignCreated         EventType = "CampaignCreated"
	EventDonationCreated         EventType = "DonationCreated"
	EventCampaignTimeGoalReached EventType = "CampaignTimeGoalReached"
	EventDonatorAwarded          EventType = "DonatorAwarded"
	EventFundsWithdrawed         EventType = "FundsWithdrawed"
	EventCampaignArchived        EventType = "CampaignArchived"
	EventNFTMinted               EventType = "NFTMinted"
	EventOwnershipTransferred    EventType = "OwnershipTransferred"
)

// EventTypes lists every known event type.
var EventTypes = []EventType{
	EventAdminAssigned,
	EventAdminRevoked,
	EventCampaignCreated,
	EventDonationCreated,
	EventCampaignTimeGoalReached,
	EventDonatorAwarded,
	EventFundsWithdrawed,
	EventCampaignArchived,
	EventNFTMinted,
	EventOwnershipTransferred,
}

// Event is the envelope published after a unit of work commits.
type Event struct {
	ID         uuid.UUID
	Type       EventType
	OccurredAt time.Time
	Data       any
}

// NewEvent wraps data into an envelope with a fresh id.
func NewEvent(eventType EventType, data any, at time.Time) Event {
	return Event{
		ID:         uuid.New(),
		Type:       eventType,
		OccurredAt: at,
		Data:       data,
	}
}

type AdminAssigned struct {
	Account common.Address `json:"account"`
}

type AdminRevoked struct {
	Account common.Address `json:"account"`
}

type CampaignCreated struct {
	Creator    common.Address `json:"creator"`
	Manager    common.Address `json:"campaign_manager"`
	CampaignID int64          `json:"campaign_id"`
}

type DonationCreated struct {
	Donor  common.Address  `json:"donor"`
	Amount decimal.Decimal `json:"amount"`
}

type CampaignTimeGoalReached struct {
	CampaignID int64 `json:"campaign_id"`
}

type DonatorAwarded struct {
	Donor      common.Address `json:"donor"`
	CampaignID int64          `json:"campaign_id"`
	TokenID    int64          `json:"token_id"`
}

type FundsWithdrawed struct {
	CampaignID int64           `json:"campaign_id"`
	Recipient  common.Address  `json:"recipient"`
	Amount     decimal.Decimal `json:"amount"`
}

type CampaignArchived struct {
	ArchiveID int64 `json:"archive_id"`
}

type NFTMinted struct {
	Owner   common.Address `json:"owner"`
	TokenID int64          `json:"token_id"`
}

type OwnershipTransferred struct {
	PreviousOwner common.Address `json:"previous_owner"`
	NewOwner      common.Address `json:"new_owner"`
}
