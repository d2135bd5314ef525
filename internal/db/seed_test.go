package db

import (
	"context"
	"log/slog"
	"testing"

	"affiliate-escrow/internal/adapter/badger"
	"affiliate-escrow/internal/config"
	"affiliate-escrow/internal/core/domain"
	"affiliate-escrow/internal/core/port"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	store, err := badger.New()
	require.NoError(t, err)
	defer store.Close()

	data := DefaultSeed()
	require.NoError(t, Seed(ctx, store, data))
	require.NoError(t, Seed(ctx, store, data))

	err = store.View(ctx, func(tx port.LedgerTx) error {
		for _, p := range []SeedParty{data.Company, data.Influencer, data.Buyer} {
			a, err := tx.Account(p.Address)
			require.NoError(t, err)
			assert.Equal(t, p.Lamports, a.Lamports, p.Role)
		}
		h, err := tx.Holding(domain.HoldingAddress(data.Asset, data.Company.Address))
		require.NoError(t, err)
		assert.Equal(t, uint64(1), h.Amount)
		return nil
	})
	require.NoError(t, err)
}

func TestDefaultSeedIsStable(t *testing.T) {
	a, b := DefaultSeed(), DefaultSeed()
	assert.Equal(t, a, b)
	assert.NotEqual(t, a.Company.Address, a.Buyer.Address)
}

func TestOpenLedgerInMemory(t *testing.T) {
	var cfg config.Config
	cfg.Storage.Driver = "badger"

	repo, closeFn, err := OpenLedger(context.Background(), cfg, discardLogger())
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &badger.Store{}, repo)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
