package usecase

import (
	"context"
	"testing"
	"time"

	"affiliate-escrow/internal/adapter/badger"
	"affiliate-escrow/internal/core/domain"
	"affiliate-escrow/internal/core/port"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func addr(seed string) domain.Address {
	return domain.DeriveAddress([]byte("test"), []byte(seed))
}

var (
	owner      = addr("owner")
	influencer = addr("influencer")
	buyer      = addr("buyer")
	asset      = addr("asset")
)

func newStore(t *testing.T) *badger.Store {
	t.Helper()
	store, err := badger.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newService(t *testing.T, repo port.LedgerRepository, opts ...Option) *EscrowUseCase {
	t.Helper()
	opts = append([]Option{WithClock(func() time.Time { return testNow })}, opts...)
	return NewEscrowUseCase(repo, opts...)
}

func fund(t *testing.T, repo port.LedgerRepository, who domain.Address, lamports uint64) {
	t.Helper()
	err := repo.Update(context.Background(), func(tx port.LedgerTx) error {
		return tx.PutAccount(&domain.Account{Address: who, Lamports: lamports})
	})
	require.NoError(t, err)
}

func giveAsset(t *testing.T, repo port.LedgerRepository, a, holder domain.Address) {
	t.Helper()
	err := repo.Update(context.Background(), func(tx port.LedgerTx) error {
		h := domain.NewHolding(a, holder)
		h.Amount = 1
		return tx.PutHolding(h)
	})
	require.NoError(t, err)
}

// openCampaign creates a funded scenario: the owner escrows asset under a
// campaign called name and the influencer holds a link to it.
func openCampaign(t *testing.T, svc *EscrowUseCase, repo port.LedgerRepository, name string, price uint64, pct uint8) (campaignID, linkID domain.Address) {
	t.Helper()
	ctx := context.Background()
	nft := addr("nft:" + name)
	giveAsset(t, repo, nft, owner)

	created, err := svc.CreateCampaign(ctx, port.CreateCampaignReq{
		Name:                 name,
		MintPrice:            price,
		CommissionPercentage: pct,
		Details:              "test campaign",
		Owner:                owner,
		Asset:                nft,
	})
	require.NoError(t, err)

	link, err := svc.CreateAffiliateLink(ctx, port.CreateAffiliateLinkReq{
		CampaignID: created.CampaignID,
		Influencer: influencer,
	})
	require.NoError(t, err)
	return created.CampaignID, link.LinkID
}

type balances struct {
	buyer, influencer, owner uint64
}

func readBalances(t *testing.T, svc *EscrowUseCase) balances {
	t.Helper()
	ctx := context.Background()
	get := func(a domain.Address) uint64 {
		acct, err := svc.GetAccount(ctx, a)
		require.NoError(t, err)
		return acct.Lamports
	}
	return balances{buyer: get(buyer), influencer: get(influencer), owner: get(owner)}
}
