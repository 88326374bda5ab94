package postgres

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"crowdfund/internal/core/domain"
)

// scanCampaign reads an id column followed by campaignColumns into c, then
// any extra columns into extra. Amounts travel as text so no precision is
// lost between NUMERIC and decimal.Decimal.
func scanCampaign(row pgx.Row, id *int64, c *domain.Campaign, extra ...any) error {
	var (
		moneyGoal, balance string
		manager            []byte
		status             int16
	)
	dest := []any{id, &c.Name, &c.Description, &c.TimeGoal, &moneyGoal, &balance, &manager, &c.MetadataURI, &status, &c.CreatedAt}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return err
	}
	var err error
	if c.MoneyGoal, err = parseAmount(moneyGoal); err != nil {
		return err
	}
	if c.Balance, err = parseAmount(balance); err != nil {
		return err
	}
	c.Manager = common.BytesToAddress(manager)
	c.Status = domain.Status(status)
	return nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return d, nil
}
