package postgres_test

import (
	"context"
	"errors"
	"net/url"
	"os"
	"sync"
	"testing"
	"time"

	"affiliate-escrow/internal/adapter/postgres"
	"affiliate-escrow/internal/adapter/usecase"
	"affiliate-escrow/internal/config/configs"
	"affiliate-escrow/internal/core/domain"
	"affiliate-escrow/internal/core/port"
	"affiliate-escrow/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRepository connects to the database named by PSQL_TEST_ADDRESS,
// applies the schema and empties every table. Without the variable the
// test is skipped.
func newRepository(t *testing.T) *postgres.LedgerRepository {
	t.Helper()
	raw := os.Getenv("PSQL_TEST_ADDRESS")
	if raw == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	addr, err := url.Parse(raw)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(addr.String()))

	ctx := context.Background()
	pool, err := db.NewLedgerPool(ctx, configs.Postgres{Addr: *addr, MaxConns: 10})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE events, affiliate_links, vaults, campaigns, holdings, accounts`)
	require.NoError(t, err)
	return postgres.NewLedgerRepository(pool)
}

func party(seed string) domain.Address {
	return domain.DeriveAddress([]byte("pg-test"), []byte(seed))
}

func TestLedgerRepositoryRecords(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	c, err := domain.NewCampaign("drop", 1_000, 10, "details", party("owner"), party("asset"), now)
	require.NoError(t, err)
	link, err := domain.NewAffiliateLink(c, party("influencer"), now)
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, func(tx port.LedgerTx) error {
		if err := tx.CreateCampaign(c); err != nil {
			return err
		}
		if err := tx.CreateVault(domain.NewVault(c)); err != nil {
			return err
		}
		return tx.CreateAffiliateLink(link)
	}))

	err = repo.Update(ctx, func(tx port.LedgerTx) error { return tx.CreateCampaign(c) })
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	require.NoError(t, repo.View(ctx, func(tx port.LedgerTx) error {
		got, err := tx.Campaign(c.Address)
		require.NoError(t, err)
		assert.Equal(t, c.Name, got.Name)
		assert.Equal(t, c.Owner, got.Owner)
		assert.Equal(t, c.CommissionPercentage, got.CommissionPercentage)
		assert.True(t, got.CreatedAt.Equal(now))

		gotLink, err := tx.AffiliateLink(link.Address)
		require.NoError(t, err)
		assert.Equal(t, c.Address, gotLink.Campaign)

		_, err = tx.Account(party("nobody"))
		assert.ErrorIs(t, err, domain.ErrNotFound)
		return nil
	}))

	err = repo.Update(ctx, func(tx port.LedgerTx) error {
		return tx.UpdateVault(&domain.Vault{Address: party("ghost")})
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLedgerRepositorySettlement(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()
	svc := usecase.NewEscrowUseCase(repo)
	owner, influencer, nft := party("owner"), party("influencer"), party("nft")

	const buyers = 4
	require.NoError(t, repo.Update(ctx, func(tx port.LedgerTx) error {
		h := domain.NewHolding(nft, owner)
		h.Amount = 1
		if err := tx.PutHolding(h); err != nil {
			return err
		}
		for i := 0; i < buyers; i++ {
			if err := tx.PutAccount(&domain.Account{Address: party(string(rune('a' + i))), Lamports: 1_000_000}); err != nil {
				return err
			}
		}
		return nil
	}))

	created, err := svc.CreateCampaign(ctx, port.CreateCampaignReq{Name: "drop", MintPrice: 1_000_000, CommissionPercentage: 10, Owner: owner, Asset: nft})
	require.NoError(t, err)
	link, err := svc.CreateAffiliateLink(ctx, port.CreateAffiliateLinkReq{CampaignID: created.CampaignID, Influencer: influencer})
	require.NoError(t, err)

	var (
		wg      sync.WaitGroup
		results = make([]error, buyers)
	)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.ProcessAffiliateMint(ctx, port.ProcessAffiliateMintReq{
				CampaignID: created.CampaignID,
				LinkID:     link.LinkID,
				Buyer:      party(string(rune('a' + i))),
				Influencer: influencer,
				Owner:      owner,
			})
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range results {
		if err == nil {
			wins++
			continue
		}
		assert.True(t, errors.Is(err, domain.ErrCampaignInactive) || errors.Is(err, domain.ErrEscrowEmpty), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, wins)

	c, err := svc.GetCampaign(ctx, created.CampaignID)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), c.TotalMints)
	acct, err := svc.GetAccount(ctx, influencer)
	require.NoError(t, err)
	assert.Equal(t, uint64(100_000), acct.Lamports)
	events, err := svc.ListEvents(ctx, created.CampaignID)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, domain.EventMintSettled, events[2].Kind)
}
