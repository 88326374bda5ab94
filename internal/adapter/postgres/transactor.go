package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txKey struct{}

// Transactor implements port.Transactor with serializable transactions. The
// open transaction travels in the context so every repository call made by
// the unit of work joins it.
type Transactor struct {
	pool *pgxpool.Pool
}

func NewTransactor(pool *pgxpool.Pool) *Transactor {
	return &Transactor{pool: pool}
}

// maxAttempts bounds how often a unit of work is run when serializable
// isolation rejects it.
const maxAttempts = 10

// serializationFailure is the SQLSTATE of a transaction aborted by a
// concurrent update under serializable isolation.
const serializationFailure = "40001"

// WithinTransaction runs fn in a serializable transaction, retrying it from
// the start when it loses a serialization conflict. fn must be safe to run
// more than once. Calls nested in an open transaction join it.
func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = t.run(ctx, fn); !isSerializationFailure(err) {
			return err
		}
	}
	return err
}

func (t *Transactor) run(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := t.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if err = tx.Commit(ctx); err != nil {
			err = fmt.Errorf("commit transaction: %w", err)
		}
	}()
	return fn(context.WithValue(ctx, txKey{}, tx))
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == serializationFailure
}

// conn returns the transaction carried by ctx, or the pool outside one.
func conn(ctx context.Context, pool *pgxpool.Pool) querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return pool
}

func inTx(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(pgx.Tx)
	return ok
}
