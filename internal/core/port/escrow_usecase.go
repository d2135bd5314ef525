package port

import (
	"context"

	"affiliate-escrow/internal/core/domain"
)

// EscrowUseCase defines the operations of the affiliate escrow program. It
// is the inbound port used by the HTTP layer. Each write runs as one
// isolated transaction that either commits entirely or leaves no trace.
type EscrowUseCase interface {
	// CreateCampaign registers a campaign and moves the owner's NFT into
	// the campaign's vault in the same transaction.
	CreateCampaign(ctx context.Context, req CreateCampaignReq) (*CampaignCreated, error)

	// CreateAffiliateLink registers influencer against an active campaign
	// and bumps the campaign's affiliate counter.
	CreateAffiliateLink(ctx context.Context, req CreateAffiliateLinkReq) (*LinkCreated, error)

	// ProcessAffiliateMint sells the escrowed NFT to the buyer, pays the
	// influencer's commission and the owner's proceeds, and updates the
	// campaign and link counters. It is all-or-nothing.
	ProcessAffiliateMint(ctx context.Context, req ProcessAffiliateMintReq) (*Settled, error)

	GetCampaign(ctx context.Context, id domain.Address) (*domain.Campaign, error)
	GetAffiliateLink(ctx context.Context, id domain.Address) (*domain.AffiliateLink, error)
	GetVault(ctx context.Context, campaignID domain.Address) (*domain.Vault, error)
	GetAccount(ctx context.Context, addr domain.Address) (*domain.Account, error)
	GetHolding(ctx context.Context, asset, holder domain.Address) (*domain.Holding, error)
	ListEvents(ctx context.Context, campaignID domain.Address) ([]domain.Event, error)
}

// CreateCampaignReq carries the terms of a new campaign. Owner is the
// authenticated signer and must hold Asset.
type CreateCampaignReq struct {
	Name                 string
	MintPrice            uint64
	CommissionPercentage uint8
	Details              string
	Owner                domain.Address
	Asset                domain.Address
}

// CampaignCreated reports the addresses allocated for a new campaign.
type CampaignCreated struct {
	CampaignID domain.Address
	VaultID    domain.Address
}

// CreateAffiliateLinkReq asks for a link between Influencer (the signer)
// and a campaign.
type CreateAffiliateLinkReq struct {
	CampaignID domain.Address
	Influencer domain.Address
}

// LinkCreated reports the address of a new affiliate link.
type LinkCreated struct {
	LinkID domain.Address
}

// ProcessAffiliateMintReq names every party to a settlement. Buyer is the
// authenticated signer; Influencer and Owner must match the link and the
// campaign respectively.
type ProcessAffiliateMintReq struct {
	CampaignID domain.Address
	LinkID     domain.Address
	Buyer      domain.Address
	Influencer domain.Address
	Owner      domain.Address
}

// Settled reports how the buyer's payment was split.
type Settled struct {
	Commission uint64
	Proceeds   uint64
}
