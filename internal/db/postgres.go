package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"affiliate-escrow/internal/config/configs"
)

// ledgerPingTimeout bounds the connectivity check made before the pool is
// handed to the ledger repository.
const ledgerPingTimeout = 5 * time.Second

// NewLedgerPool opens the connection pool backing the postgres ledger.
// Every ledger transaction runs at serializable isolation and holds one
// connection for its whole body, so cfg.MaxConns caps how many
// settlements can be in flight at once. Zero keeps the pgxpool default.
// The pool is closed again if the database cannot be reached.
func NewLedgerPool(ctx context.Context, cfg configs.Postgres) (*pgxpool.Pool, error) {
	poolConf, err := pgxpool.ParseConfig(cfg.Addr.String())
	if err != nil {
		return nil, fmt.Errorf("parse postgres address: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolConf.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConf)
	if err != nil {
		return nil, err
	}
	if err = pingLedger(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func pingLedger(ctx context.Context, pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(ctx, ledgerPingTimeout)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping ledger database: %w", err)
	}
	return nil
}
