package db

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// SeedCampaigns is the number of demo campaigns Seed creates.
const SeedCampaigns = 5

// Seed fills a deployed ledger with demo campaigns created by owner and
// random donations from throwaway accounts. It goes through the ledger so
// demo data passes the same checks and raises the same events.
func Seed(ctx context.Context, ledger port.LedgerUseCase, owner common.Address) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	donors := make([]common.Address, 10)
	for i := range donors {
		id := uuid.New()
		donors[i] = common.BytesToAddress(id[:])
	}

	for i := 1; i <= SeedCampaigns; i++ {
		id, err := ledger.CreateCampaign(ctx, owner, domain.NewCampaign{
			Name:        fmt.Sprintf("Campaign %d", i),
			Description: fmt.Sprintf("Demo campaign %d", i),
			TimeGoal:    time.Now().AddDate(0, 0, i),
			MoneyGoal:   decimal.New(int64(10+r.Intn(40)), 18),
			MetadataURI: "ipfs://demo/" + uuid.NewString(),
			Manager:     donors[r.Intn(len(donors))],
		})
		if err != nil {
			return fmt.Errorf("create campaign %d: %w", i, err)
		}

		for j := 0; j < 20; j++ {
			donor := donors[r.Intn(len(donors))]
			// 0.01 to 0.1 ether, so demo campaigns stay open
			amount := decimal.New(int64(1+r.Intn(10)), 16)
			_, err = ledger.Donate(ctx, donor, id, amount)
			if errors.Is(err, domain.ErrCampaignCompleted) {
				break
			}
			if err != nil {
				return fmt.Errorf("donate to campaign %d: %w", id, err)
			}
		}
	}
	return nil
}
