package postgres

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund/internal/core/domain"
)

// AwardRepository implements port.AwardRepository using pgxpool.
type AwardRepository struct {
	pool *pgxpool.Pool
}

func NewAwardRepository(pool *pgxpool.Pool) *AwardRepository {
	return &AwardRepository{pool: pool}
}

func (r *AwardRepository) GetState(ctx context.Context) (*domain.RegistryState, error) {
	var (
		st             domain.RegistryState
		address, owner []byte
	)
	err := conn(ctx, r.pool).QueryRow(ctx, `SELECT address, name, symbol, owner FROM registry_state WHERE id = 1`).
		Scan(&address, &st.Name, &st.Symbol, &owner)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	st.Address = common.BytesToAddress(address)
	st.Owner = common.BytesToAddress(owner)
	return &st, nil
}

func (r *AwardRepository) InitState(ctx context.Context, st domain.RegistryState) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `INSERT INTO registry_state (id, address, name, symbol, owner) VALUES (1, $1, $2, $3, $4)`,
		st.Address.Bytes(), st.Name, st.Symbol, st.Owner.Bytes())
	return err
}

func (r *AwardRepository) SetOwner(ctx context.Context, owner common.Address) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `UPDATE registry_state SET owner = $1 WHERE id = 1`, owner.Bytes())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRegistryNotInitialized
	}
	return nil
}

func (r *AwardRepository) NextTokenID(ctx context.Context) (int64, error) {
	var id int64
	err := conn(ctx, r.pool).QueryRow(ctx, `UPDATE registry_state SET token_seq = token_seq + 1 WHERE id = 1 RETURNING token_seq`).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrRegistryNotInitialized
	}
	return id, err
}

func (r *AwardRepository) CreateToken(ctx context.Context, tok *domain.AwardToken) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `INSERT INTO award_tokens (id, owner, metadata_uri, minted_at) VALUES ($1, $2, $3, $4)`,
		tok.ID, tok.Owner.Bytes(), tok.MetadataURI, tok.MintedAt)
	return err
}

func (r *AwardRepository) GetToken(ctx context.Context, id int64) (*domain.AwardToken, error) {
	var (
		tok   domain.AwardToken
		owner []byte
	)
	err := conn(ctx, r.pool).QueryRow(ctx, `SELECT id, owner, metadata_uri, minted_at FROM award_tokens WHERE id = $1`, id).
		Scan(&tok.ID, &owner, &tok.MetadataURI, &tok.MintedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	tok.Owner = common.BytesToAddress(owner)
	return &tok, nil
}

func (r *AwardRepository) TokenCount(ctx context.Context) (int64, error) {
	var n int64
	err := conn(ctx, r.pool).QueryRow(ctx, `SELECT token_seq FROM registry_state WHERE id = 1`).Scan(&n)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	return n, err
}
