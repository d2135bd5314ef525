package db

import (
	"context"
	"fmt"

	"affiliate-escrow/internal/core/domain"
	"affiliate-escrow/internal/core/port"
)

// SeedParty is a demo identity written by Seed.
type SeedParty struct {
	Role     string
	Address  domain.Address
	Lamports uint64
}

// SeedData describes the demo state: funded parties and one NFT held by
// the company, ready to be escrowed by a campaign.
type SeedData struct {
	Company    SeedParty
	Influencer SeedParty
	Buyer      SeedParty
	Asset      domain.Address
}

// DefaultSeed derives stable demo addresses so that repeated seeding
// targets the same records.
func DefaultSeed() SeedData {
	return SeedData{
		Company:    SeedParty{Role: "company", Address: domain.DeriveAddress([]byte("seed"), []byte("company")), Lamports: 5_000_000_000},
		Influencer: SeedParty{Role: "influencer", Address: domain.DeriveAddress([]byte("seed"), []byte("influencer")), Lamports: 2_000_000_000},
		Buyer:      SeedParty{Role: "buyer", Address: domain.DeriveAddress([]byte("seed"), []byte("buyer")), Lamports: 2_000_000_000},
		Asset:      domain.DeriveAddress([]byte("seed"), []byte("nft")),
	}
}

// Seed funds the demo parties and gives the company one unit of the demo
// asset. Existing balances are overwritten.
func Seed(ctx context.Context, repo port.LedgerRepository, data SeedData) error {
	return repo.Update(ctx, func(tx port.LedgerTx) error {
		for _, p := range []SeedParty{data.Company, data.Influencer, data.Buyer} {
			if err := tx.PutAccount(&domain.Account{Address: p.Address, Lamports: p.Lamports}); err != nil {
				return fmt.Errorf("seed %s: %w", p.Role, err)
			}
		}
		h := domain.NewHolding(data.Asset, data.Company.Address)
		h.Amount = 1
		if err := tx.PutHolding(h); err != nil {
			return fmt.Errorf("seed holding: %w", err)
		}
		return nil
	})
}
