package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/adapter/memory"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

const tokenURI = "ipfs://QmPhKYBCd6j2YXCzhiiExP5kowaxjrs7jouiaPD41z1J5X"

var (
	owner    = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	adminOne = common.HexToAddress("0x00000000000000000000000000000000000000a2")
	vitalik  = common.HexToAddress("0x00000000000000000000000000000000000000b1")
	joe      = common.HexToAddress("0x00000000000000000000000000000000000000b2")

	ledgerAddress   = common.HexToAddress("0x0000000000000000000000000000000000001001")
	registryAddress = common.HexToAddress("0x0000000000000000000000000000000000001002")
)

// eth converts whole ether into wei.
func eth(n int64) decimal.Decimal {
	return decimal.New(n, 18)
}

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.Event
}

func (p *recordingPublisher) Publish(_ context.Context, evt domain.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
}

func (p *recordingPublisher) Types() []domain.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.EventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

func (p *recordingPublisher) Data() []any {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]any, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Data)
	}
	return out
}

func (p *recordingPublisher) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = nil
}

type testEnv struct {
	store    *memory.Store
	clock    *fixedClock
	events   *recordingPublisher
	registry *AwardRegistry
	ledger   *Ledger
}

type envOption func(deps *LedgerDeps)

func withMinter(m port.AwardMinter) envOption {
	return func(deps *LedgerDeps) { deps.Registry = m }
}

// withPayer routes payments through payer while payout listing stays on
// the memory store.
func withPayer(payer port.Payer) envOption {
	return func(deps *LedgerDeps) {
		deps.Payouts = payerOverride{PayoutRepository: deps.Payouts, payer: payer}
	}
}

type payerOverride struct {
	port.PayoutRepository
	payer port.Payer
}

func (p payerOverride) Pay(ctx context.Context, payout *domain.Payout) error {
	return p.payer.Pay(ctx, payout)
}

// newTestEnv deploys a registry and a ledger on a fresh memory store, with
// owner as deployer. Events raised by the deployment are discarded.
func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()
	store := memory.NewStore()
	clock := &fixedClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	events := &recordingPublisher{}
	registry := NewAwardRegistry(RegistryIdentity{
		Address: registryAddress,
		Name:    "DonationAwardContract",
		Symbol:  "DWNFT",
	}, memory.NewAwardRepository(store), store, events, clock)

	deps := LedgerDeps{
		Repo:            memory.NewLedgerRepository(store),
		Payouts:         memory.NewPayoutRepository(store),
		Registry:        registry,
		RegistryAddress: registryAddress,
		Tx:              store,
		Publisher:       events,
		Clock:           clock,
	}
	for _, opt := range opts {
		opt(&deps)
	}
	ledger := NewLedger(ledgerAddress, deps)

	deployed, err := Deploy(context.Background(), registry, ledger, owner)
	require.NoError(t, err)
	require.True(t, deployed)
	events.Reset()

	return &testEnv{store: store, clock: clock, events: events, registry: registry, ledger: ledger}
}

func (e *testEnv) campaignRequest() domain.NewCampaign {
	return domain.NewCampaign{
		Name:        "New Campaign",
		Description: "Campaign to help all kids across the world",
		TimeGoal:    e.clock.Now().Add(5 * time.Minute),
		MoneyGoal:   eth(3),
		MetadataURI: tokenURI,
		Manager:     joe,
	}
}

// createCampaign creates a campaign as owner and clears recorded events.
func (e *testEnv) createCampaign(t *testing.T, mutate ...func(*domain.NewCampaign)) int64 {
	t.Helper()
	req := e.campaignRequest()
	for _, m := range mutate {
		m(&req)
	}
	id, err := e.ledger.CreateCampaign(context.Background(), owner, req)
	require.NoError(t, err)
	e.events.Reset()
	return id
}
