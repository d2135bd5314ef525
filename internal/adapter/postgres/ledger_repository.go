package postgres

import (
	"context"
	"errors"
	"fmt"

	"affiliate-escrow/internal/core/port"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SQLSTATE codes PostgreSQL raises when a serializable transaction loses
// to a concurrent one.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// LedgerRepository implements port.LedgerRepository using pgxpool. Update
// transactions run at SERIALIZABLE and lock every row they read with
// SELECT ... FOR UPDATE, so concurrent writers of the same record queue
// behind each other or abort with a serialization failure.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository returns a new repository instance.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

var _ port.LedgerRepository = (*LedgerRepository)(nil)

// Update runs fn in a serializable read-write transaction.
func (r *LedgerRepository) Update(ctx context.Context, fn func(tx port.LedgerTx) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()
	if err = fn(&ledgerTx{ctx: ctx, tx: tx, forUpdate: true}); err != nil {
		return mapError(err)
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit failed: %w", mapError(err))
	}
	return nil
}

// View runs fn in a read-only repeatable-read transaction.
func (r *LedgerRepository) View(ctx context.Context, fn func(tx port.LedgerTx) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()
	return fn(&ledgerTx{ctx: ctx, tx: tx})
}

func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeSerializationFailure, codeDeadlockDetected:
			return fmt.Errorf("%w: %s", port.ErrConflict, pgErr.Message)
		}
	}
	return err
}
