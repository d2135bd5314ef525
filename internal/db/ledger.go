package db

import (
	"context"
	"fmt"
	"log/slog"

	"affiliate-escrow/internal/adapter/badger"
	"affiliate-escrow/internal/adapter/postgres"
	"affiliate-escrow/internal/config"
	"affiliate-escrow/internal/core/port"
)

// OpenLedger opens the ledger backend selected by cfg.Storage. The returned
// close function releases it. Postgres migrations run first when
// cfg.Psql.RunMigrations is set.
func OpenLedger(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.LedgerRepository, func(), error) {
	switch cfg.Storage.Backend() {
	case "postgres":
		if cfg.Psql.RunMigrations {
			if err := Migrate(cfg.Psql.Addr.String()); err != nil {
				return nil, nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := NewLedgerPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		logger.Info("using postgres ledger")
		return postgres.NewLedgerRepository(pool), pool.Close, nil
	default:
		store, err := badger.New(
			badger.WithDataDir(cfg.Storage.BadgerDir),
			badger.WithLogger(logger),
		)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Storage.BadgerDir == "" {
			logger.Warn("using in-memory badger ledger, state is lost on exit")
		} else {
			logger.Info("using badger ledger", slog.String("dir", cfg.Storage.BadgerDir))
		}
		closeFn := func() {
			if err := store.Close(); err != nil {
				logger.Error("failed to close badger", slog.Any("error", err))
			}
		}
		return store, closeFn, nil
	}
}
