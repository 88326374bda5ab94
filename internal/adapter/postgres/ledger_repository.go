package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund/internal/core/domain"
)

// LedgerRepository implements port.LedgerRepository using pgxpool for
// PostgreSQL.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository returns a new repository instance.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

const campaignColumns = `name, description, time_goal, money_goal::text, balance::text, manager, metadata_uri, status, created_at`

func (r *LedgerRepository) GetState(ctx context.Context) (*domain.LedgerState, error) {
	var address, owner, registry []byte
	err := conn(ctx, r.pool).QueryRow(ctx, `SELECT address, owner, registry FROM ledger_state WHERE id = 1`).
		Scan(&address, &owner, &registry)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &domain.LedgerState{
		Address:  common.BytesToAddress(address),
		Owner:    common.BytesToAddress(owner),
		Registry: common.BytesToAddress(registry),
	}, nil
}

func (r *LedgerRepository) InitState(ctx context.Context, st domain.LedgerState) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `INSERT INTO ledger_state (id, address, owner, registry) VALUES (1, $1, $2, $3)`,
		st.Address.Bytes(), st.Owner.Bytes(), st.Registry.Bytes())
	return err
}

func (r *LedgerRepository) IsAdmin(ctx context.Context, account common.Address) (bool, error) {
	var ok bool
	err := conn(ctx, r.pool).QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM admins WHERE account = $1)`, account.Bytes()).Scan(&ok)
	return ok, err
}

func (r *LedgerRepository) AddAdmin(ctx context.Context, account common.Address) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `INSERT INTO admins (account) VALUES ($1) ON CONFLICT DO NOTHING`, account.Bytes())
	return err
}

func (r *LedgerRepository) RemoveAdmin(ctx context.Context, account common.Address) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM admins WHERE account = $1`, account.Bytes())
	return err
}

func (r *LedgerRepository) NextCampaignID(ctx context.Context) (int64, error) {
	return r.advance(ctx, "campaign_seq")
}

func (r *LedgerRepository) NextArchiveID(ctx context.Context) (int64, error) {
	return r.advance(ctx, "archive_seq")
}

// advance bumps a sequence column of the singleton state row. The row lock
// it takes serializes id allocation.
func (r *LedgerRepository) advance(ctx context.Context, column string) (int64, error) {
	var id int64
	query := fmt.Sprintf(`UPDATE ledger_state SET %[1]s = %[1]s + 1 WHERE id = 1 RETURNING %[1]s`, column)
	err := conn(ctx, r.pool).QueryRow(ctx, query).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrLedgerNotInitialized
	}
	return id, err
}

func (r *LedgerRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `INSERT INTO campaigns
    (id, name, description, time_goal, money_goal, balance, manager, metadata_uri, status, created_at)
VALUES ($1,$2,$3,$4,$5::numeric,$6::numeric,$7,$8,$9,$10)`,
		c.ID, c.Name, c.Description, c.TimeGoal, c.MoneyGoal.String(), c.Balance.String(),
		c.Manager.Bytes(), c.MetadataURI, int16(c.Status), c.CreatedAt)
	return err
}

// GetCampaign returns a campaign by id. Inside a transaction the row is
// locked until commit.
func (r *LedgerRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	query := `SELECT id, ` + campaignColumns + ` FROM campaigns WHERE id = $1`
	if inTx(ctx) {
		query += ` FOR UPDATE`
	}
	var c domain.Campaign
	err := scanCampaign(conn(ctx, r.pool).QueryRow(ctx, query, id), &c.ID, &c)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *LedgerRepository) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `UPDATE campaigns SET balance = $1::numeric, status = $2 WHERE id = $3`,
		c.Balance.String(), int16(c.Status), c.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}

func (r *LedgerRepository) DeleteCampaign(ctx context.Context, id int64) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	return err
}

func (r *LedgerRepository) CreateArchivedCampaign(ctx context.Context, a *domain.ArchivedCampaign) error {
	c := a.Campaign
	_, err := conn(ctx, r.pool).Exec(ctx, `INSERT INTO archived_campaigns
    (archive_id, campaign_id, name, description, time_goal, money_goal, balance, manager, metadata_uri, status, created_at, archived_at)
VALUES ($1,$2,$3,$4,$5,$6::numeric,$7::numeric,$8,$9,$10,$11,$12)`,
		a.ArchiveID, c.ID, c.Name, c.Description, c.TimeGoal, c.MoneyGoal.String(), c.Balance.String(),
		c.Manager.Bytes(), c.MetadataURI, int16(c.Status), c.CreatedAt, a.ArchivedAt)
	return err
}

func (r *LedgerRepository) GetArchivedCampaign(ctx context.Context, archiveID int64) (*domain.ArchivedCampaign, error) {
	var a domain.ArchivedCampaign
	row := conn(ctx, r.pool).QueryRow(ctx, `SELECT campaign_id, `+campaignColumns+`, archive_id, archived_at
FROM archived_campaigns WHERE archive_id = $1`, archiveID)
	err := scanCampaign(row, &a.Campaign.ID, &a.Campaign, &a.ArchiveID, &a.ArchivedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *LedgerRepository) Counters(ctx context.Context) (domain.Counters, error) {
	var c domain.Counters
	err := conn(ctx, r.pool).QueryRow(ctx, `SELECT campaign_seq, archive_seq FROM ledger_state WHERE id = 1`).
		Scan(&c.CampaignID, &c.ArchiveID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Counters{}, nil
	}
	return c, err
}

func (r *LedgerRepository) GetHighestDonation(ctx context.Context) (domain.HighestDonation, error) {
	var (
		donor  []byte
		amount string
	)
	err := conn(ctx, r.pool).QueryRow(ctx, `SELECT highest_donor, highest_amount::text FROM ledger_state WHERE id = 1`).
		Scan(&donor, &amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.HighestDonation{}, nil
	}
	if err != nil {
		return domain.HighestDonation{}, err
	}
	h := domain.HighestDonation{Donor: common.BytesToAddress(donor)}
	if h.Amount, err = parseAmount(amount); err != nil {
		return domain.HighestDonation{}, err
	}
	return h, nil
}

func (r *LedgerRepository) SetHighestDonation(ctx context.Context, h domain.HighestDonation) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `UPDATE ledger_state SET highest_donor = $1, highest_amount = $2::numeric WHERE id = 1`,
		h.Donor.Bytes(), h.Amount.String())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLedgerNotInitialized
	}
	return nil
}
