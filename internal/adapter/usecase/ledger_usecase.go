package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// LedgerDeps groups the collaborators of a Ledger.
type LedgerDeps struct {
	Repo    port.LedgerRepository
	Payouts port.PayoutRepository
	// Registry is the award registry the ledger mints through. It is bound
	// once and never replaced.
	Registry        port.AwardMinter
	RegistryAddress common.Address
	Tx              port.Transactor
	Publisher       port.EventPublisher
	Clock           port.Clock
	Logger          *slog.Logger
}

// Ledger provides the campaign lifecycle: admin management, campaign
// creation, donations with highest-donor awards, and withdrawal into the
// archive. It implements port.LedgerUseCase.
type Ledger struct {
	address         common.Address
	registry        port.AwardMinter
	registryAddress common.Address

	repo    port.LedgerRepository
	payouts port.PayoutRepository
	auth    AuthorizationPolicy
	uow     unitOfWork
	clock   port.Clock
	logger  *slog.Logger
}

// NewLedger creates a ledger acting as address. address is the account the
// registry must hand minting rights to.
func NewLedger(address common.Address, deps LedgerDeps) *Ledger {
	clock := deps.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{
		address:         address,
		registry:        deps.Registry,
		registryAddress: deps.RegistryAddress,
		repo:            deps.Repo,
		payouts:         deps.Payouts,
		auth:            NewAuthorizationPolicy(deps.Repo),
		uow:             unitOfWork{tx: deps.Tx, pub: deps.Publisher, clock: clock},
		clock:           clock,
		logger:          logger,
	}
}

// Address returns the account the ledger acts as.
func (l *Ledger) Address() common.Address { return l.address }

// initialize records owner as the ledger owner and first admin. It must run
// inside a unit of work.
func (l *Ledger) initialize(ctx context.Context, owner common.Address) error {
	st := domain.LedgerState{Address: l.address, Owner: owner, Registry: l.registryAddress}
	if err := l.repo.InitState(ctx, st); err != nil {
		return fmt.Errorf("init ledger state: %w", err)
	}
	if err := l.repo.AddAdmin(ctx, owner); err != nil {
		return fmt.Errorf("add owner as admin: %w", err)
	}
	return nil
}

func (l *Ledger) AssignAdmin(ctx context.Context, caller, account common.Address) error {
	return l.uow.do(ctx, func(ctx context.Context) error {
		if err := l.requireOwner(ctx, caller); err != nil {
			return err
		}
		if err := l.repo.AddAdmin(ctx, account); err != nil {
			return fmt.Errorf("add admin: %w", err)
		}
		l.uow.emit(ctx, domain.EventAdminAssigned, domain.AdminAssigned{Account: account})
		return nil
	})
}

func (l *Ledger) RevokeAdmin(ctx context.Context, caller, account common.Address) error {
	return l.uow.do(ctx, func(ctx context.Context) error {
		if err := l.requireOwner(ctx, caller); err != nil {
			return err
		}
		if account == caller {
			return domain.ErrOwnerCannotBeRevoked
		}
		if err := l.repo.RemoveAdmin(ctx, account); err != nil {
			return fmt.Errorf("remove admin: %w", err)
		}
		l.uow.emit(ctx, domain.EventAdminRevoked, domain.AdminRevoked{Account: account})
		return nil
	})
}

func (l *Ledger) IsAdmin(ctx context.Context, account common.Address) (bool, error) {
	return l.auth.IsAdmin(ctx, account)
}

func (l *Ledger) requireOwner(ctx context.Context, caller common.Address) error {
	ok, err := l.auth.IsOwner(ctx, caller)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrCallerNotOwner
	}
	return nil
}

func (l *Ledger) CreateCampaign(ctx context.Context, caller common.Address, req domain.NewCampaign) (int64, error) {
	var id int64
	err := l.uow.do(ctx, func(ctx context.Context) error {
		ok, err := l.auth.IsAdmin(ctx, caller)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrCallerNotAdmin
		}
		now := l.clock.Now()
		if err = req.Validate(now); err != nil {
			return err
		}
		if id, err = l.repo.NextCampaignID(ctx); err != nil {
			return fmt.Errorf("allocate campaign id: %w", err)
		}
		c := &domain.Campaign{
			ID:          id,
			Name:        req.Name,
			Description: req.Description,
			TimeGoal:    req.TimeGoal,
			MoneyGoal:   req.MoneyGoal,
			Balance:     decimal.Zero,
			Manager:     req.Manager,
			MetadataURI: req.MetadataURI,
			Status:      domain.StatusInProgress,
			CreatedAt:   now,
		}
		if err = l.repo.CreateCampaign(ctx, c); err != nil {
			return fmt.Errorf("store campaign: %w", err)
		}
		l.uow.emit(ctx, domain.EventCampaignCreated, domain.CampaignCreated{
			Creator:    caller,
			Manager:    req.Manager,
			CampaignID: id,
		})
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Donate credits amount to the campaign. Completion is evaluated here and
// nowhere in the background: a campaign whose time goal has passed stays
// IN_PROGRESS until a donation or a withdrawal touches it.
func (l *Ledger) Donate(ctx context.Context, donor common.Address, campaignID int64, amount decimal.Decimal) (*port.DonationReceipt, error) {
	var receipt *port.DonationReceipt
	err := l.uow.do(ctx, func(ctx context.Context) error {
		c, err := l.repo.GetCampaign(ctx, campaignID)
		if err != nil {
			return fmt.Errorf("load campaign: %w", err)
		}
		if c == nil {
			return domain.ErrCampaignNotFound
		}
		if c.Status != domain.StatusInProgress {
			return domain.ErrCampaignCompleted
		}
		if !amount.IsPositive() {
			return domain.ErrInsufficientDonation
		}

		c.Balance = c.Balance.Add(amount)
		l.uow.emit(ctx, domain.EventDonationCreated, domain.DonationCreated{Donor: donor, Amount: amount})

		timeReached := c.TimeGoalReached(l.clock.Now())
		if timeReached || c.MoneyGoalReached() {
			c.Status = domain.StatusCompleted
		}
		if timeReached {
			l.uow.emit(ctx, domain.EventCampaignTimeGoalReached, domain.CampaignTimeGoalReached{CampaignID: c.ID})
		}
		if err = l.repo.UpdateCampaign(ctx, c); err != nil {
			return fmt.Errorf("update campaign: %w", err)
		}
		receipt = &port.DonationReceipt{CampaignID: c.ID, Balance: c.Balance, Status: c.Status}

		highest, err := l.repo.GetHighestDonation(ctx)
		if err != nil {
			return fmt.Errorf("load highest donation: %w", err)
		}
		if !highest.Beaten(amount) {
			return nil
		}
		if err = l.repo.SetHighestDonation(ctx, domain.HighestDonation{Donor: donor, Amount: amount}); err != nil {
			return fmt.Errorf("store highest donation: %w", err)
		}
		tokenID, err := l.registry.Mint(ctx, l.address, donor, c.MetadataURI)
		if err != nil {
			return fmt.Errorf("award donor: %w", err)
		}
		l.uow.emit(ctx, domain.EventDonatorAwarded, domain.DonatorAwarded{
			Donor:      donor,
			CampaignID: c.ID,
			TokenID:    tokenID,
		})
		receipt.Awarded = true
		receipt.TokenID = tokenID
		return nil
	})
	if err != nil {
		return nil, err
	}
	if receipt.Awarded {
		l.logger.Debug("donor awarded",
			slog.String("donor", donor.Hex()),
			slog.Int64("campaign_id", campaignID),
			slog.Int64("token_id", receipt.TokenID))
	}
	return receipt, nil
}

// WithdrawFunds pays the whole balance to the campaign manager and archives
// the campaign. A campaign past its time goal that no donation has touched
// yet is completed here first.
func (l *Ledger) WithdrawFunds(ctx context.Context, caller common.Address, campaignID int64) (*port.WithdrawalReceipt, error) {
	var receipt *port.WithdrawalReceipt
	err := l.uow.do(ctx, func(ctx context.Context) error {
		c, err := l.repo.GetCampaign(ctx, campaignID)
		if err != nil {
			return fmt.Errorf("load campaign: %w", err)
		}
		if c == nil {
			return domain.ErrCampaignNotFound
		}
		now := l.clock.Now()
		if c.Status == domain.StatusInProgress && c.TimeGoalReached(now) {
			c.Status = domain.StatusCompleted
			l.uow.emit(ctx, domain.EventCampaignTimeGoalReached, domain.CampaignTimeGoalReached{CampaignID: c.ID})
		}
		if c.Status != domain.StatusCompleted {
			return domain.ErrCampaignInProgress
		}
		if caller != c.Manager {
			return domain.ErrWithdrawForbidden
		}

		payout := &domain.Payout{
			CampaignID: c.ID,
			Recipient:  c.Manager,
			Amount:     c.Balance,
			CreatedAt:  now,
		}
		if err = l.payouts.Pay(ctx, payout); err != nil {
			return fmt.Errorf("pay campaign manager: %w", err)
		}
		l.uow.emit(ctx, domain.EventFundsWithdrawed, domain.FundsWithdrawed{
			CampaignID: c.ID,
			Recipient:  c.Manager,
			Amount:     payout.Amount,
		})

		c.Status = domain.StatusArchived
		archiveID, err := l.repo.NextArchiveID(ctx)
		if err != nil {
			return fmt.Errorf("allocate archive id: %w", err)
		}
		archived := &domain.ArchivedCampaign{ArchiveID: archiveID, Campaign: *c, ArchivedAt: now}
		if err = l.repo.CreateArchivedCampaign(ctx, archived); err != nil {
			return fmt.Errorf("archive campaign: %w", err)
		}
		if err = l.repo.DeleteCampaign(ctx, c.ID); err != nil {
			return fmt.Errorf("delete campaign: %w", err)
		}
		l.uow.emit(ctx, domain.EventCampaignArchived, domain.CampaignArchived{ArchiveID: archiveID})

		receipt = &port.WithdrawalReceipt{
			CampaignID: c.ID,
			ArchiveID:  archiveID,
			Recipient:  c.Manager,
			Amount:     payout.Amount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	l.logger.Info("funds withdrawn",
		slog.Int64("campaign_id", receipt.CampaignID),
		slog.Int64("archive_id", receipt.ArchiveID),
		slog.String("amount", receipt.Amount.String()))
	return receipt, nil
}

func (l *Ledger) Campaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := l.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCampaignNotFound
	}
	return c, nil
}

func (l *Ledger) CampaignStatus(ctx context.Context, id int64) (domain.Status, error) {
	c, err := l.repo.GetCampaign(ctx, id)
	if err != nil {
		return domain.StatusNotFound, err
	}
	if c == nil {
		return domain.StatusNotFound, nil
	}
	return c.Status, nil
}

func (l *Ledger) ArchivedCampaign(ctx context.Context, archiveID int64) (*domain.ArchivedCampaign, error) {
	a, err := l.repo.GetArchivedCampaign(ctx, archiveID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrArchivedCampaignNotFound
	}
	return a, nil
}

func (l *Ledger) Payouts(ctx context.Context, account common.Address) ([]domain.Payout, error) {
	return l.payouts.ListPayouts(ctx, account)
}

func (l *Ledger) Overview(ctx context.Context) (*port.LedgerOverview, error) {
	st, err := l.repo.GetState(ctx)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, domain.ErrLedgerNotInitialized
	}
	counters, err := l.repo.Counters(ctx)
	if err != nil {
		return nil, err
	}
	highest, err := l.repo.GetHighestDonation(ctx)
	if err != nil {
		return nil, err
	}
	return &port.LedgerOverview{State: *st, Counters: counters, Highest: highest}, nil
}
