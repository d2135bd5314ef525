package badger

import (
	"context"
	"errors"
	"testing"
	"time"

	"affiliate-escrow/internal/core/domain"
	"affiliate-escrow/internal/core/port"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, opts ...StoreOptionFunc) *Store {
	t.Helper()
	s, err := New(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testCampaign(t *testing.T, name string) *domain.Campaign {
	t.Helper()
	c, err := domain.NewCampaign(name, 1_000, 10, "details",
		domain.DeriveAddress([]byte("owner")), domain.DeriveAddress([]byte("asset")),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return c
}

func TestCampaignRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	c := testCampaign(t, "drop")

	require.NoError(t, s.Update(ctx, func(tx port.LedgerTx) error { return tx.CreateCampaign(c) }))

	var got *domain.Campaign
	require.NoError(t, s.View(ctx, func(tx port.LedgerTx) (err error) {
		got, err = tx.Campaign(c.Address)
		return err
	}))
	assert.True(t, got.CreatedAt.Equal(c.CreatedAt))
	got.CreatedAt = c.CreatedAt
	assert.Equal(t, c, got)
}

func TestCreateIfAbsent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	c := testCampaign(t, "drop")

	require.NoError(t, s.Update(ctx, func(tx port.LedgerTx) error { return tx.CreateCampaign(c) }))
	err := s.Update(ctx, func(tx port.LedgerTx) error { return tx.CreateCampaign(c) })
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	vault := domain.NewVault(c)
	require.NoError(t, s.Update(ctx, func(tx port.LedgerTx) error { return tx.CreateVault(vault) }))
	err = s.Update(ctx, func(tx port.LedgerTx) error { return tx.CreateVault(vault) })
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestUpdateRequiresExistingRecord(t *testing.T) {
	s := newTestStore(t)
	err := s.Update(context.Background(), func(tx port.LedgerTx) error {
		return tx.UpdateCampaign(testCampaign(t, "ghost"))
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMissingRecords(t *testing.T) {
	s := newTestStore(t)
	addr := domain.DeriveAddress([]byte("nothing"))
	err := s.View(context.Background(), func(tx port.LedgerTx) error {
		_, err := tx.Campaign(addr)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		_, err = tx.AffiliateLink(addr)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		_, err = tx.Vault(addr)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		_, err = tx.Holding(addr)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		_, err = tx.Account(addr)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		events, err := tx.Events(addr)
		assert.NoError(t, err)
		assert.Empty(t, events)
		return nil
	})
	require.NoError(t, err)
}

func TestFailedUpdateDiscardsWrites(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	who := domain.DeriveAddress([]byte("who"))
	boom := errors.New("boom")

	err := s.Update(ctx, func(tx port.LedgerTx) error {
		if err := tx.PutAccount(&domain.Account{Address: who, Lamports: 10}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	err = s.View(ctx, func(tx port.LedgerTx) error {
		_, err := tx.Account(who)
		return err
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestViewIsReadOnly(t *testing.T) {
	s := newTestStore(t)
	err := s.View(context.Background(), func(tx port.LedgerTx) error {
		return tx.PutAccount(&domain.Account{Address: domain.DeriveAddress([]byte("who"))})
	})
	assert.ErrorIs(t, err, errReadOnly)
}

// TestConcurrentWriteConflicts interleaves two transactions by hand. The
// second to commit had read a key the first one wrote.
func TestConcurrentWriteConflicts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	who := domain.DeriveAddress([]byte("who"))
	require.NoError(t, s.Update(ctx, func(tx port.LedgerTx) error {
		return tx.PutAccount(&domain.Account{Address: who, Lamports: 10})
	}))

	err := s.Update(ctx, func(outer port.LedgerTx) error {
		a, err := outer.Account(who)
		if err != nil {
			return err
		}
		inner := s.Update(ctx, func(tx port.LedgerTx) error {
			return tx.PutAccount(&domain.Account{Address: who, Lamports: 99})
		})
		require.NoError(t, inner)
		a.Lamports--
		return outer.PutAccount(a)
	})
	assert.ErrorIs(t, err, port.ErrConflict)

	var got *domain.Account
	require.NoError(t, s.View(ctx, func(tx port.LedgerTx) (err error) {
		got, err = tx.Account(who)
		return err
	}))
	assert.Equal(t, uint64(99), got.Lamports)
}

func TestEventsInAppendOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	campaign := domain.CampaignAddress("drop")
	other := domain.CampaignAddress("other")
	kinds := []domain.EventKind{domain.EventCampaignCreated, domain.EventAffiliateLinkCreated, domain.EventMintSettled}

	for i, kind := range kinds {
		e := &domain.Event{ID: uuid.New(), Kind: kind, Campaign: campaign, Amount: uint64(i), CreatedAt: time.Now().UTC()}
		require.NoError(t, s.Update(ctx, func(tx port.LedgerTx) error { return tx.AppendEvent(e) }))
	}
	require.NoError(t, s.Update(ctx, func(tx port.LedgerTx) error {
		return tx.AppendEvent(&domain.Event{ID: uuid.New(), Kind: domain.EventCampaignCreated, Campaign: other})
	}))

	var events []domain.Event
	require.NoError(t, s.View(ctx, func(tx port.LedgerTx) (err error) {
		events, err = tx.Events(campaign)
		return err
	}))
	require.Len(t, events, len(kinds))
	for i, e := range events {
		assert.Equal(t, kinds[i], e.Kind)
		assert.Equal(t, uint64(i), e.Amount)
		assert.NotEqual(t, uuid.Nil, e.ID)
	}
}

func TestPersistentStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	who := domain.DeriveAddress([]byte("who"))

	s, err := New(WithDataDir(dir))
	require.NoError(t, err)
	require.NoError(t, s.Update(ctx, func(tx port.LedgerTx) error {
		return tx.PutAccount(&domain.Account{Address: who, Lamports: 42})
	}))
	require.NoError(t, s.Close())

	s = newTestStore(t, WithDataDir(dir))
	var got *domain.Account
	require.NoError(t, s.View(ctx, func(tx port.LedgerTx) (err error) {
		got, err = tx.Account(who)
		return err
	}))
	assert.Equal(t, uint64(42), got.Lamports)
}

func TestCancelledContext(t *testing.T) {
	s := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := s.Update(ctx, func(port.LedgerTx) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
