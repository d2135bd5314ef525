package domain

import (
	"fmt"
	"time"
)

// Limits on campaign terms.
const (
	MaxNameLen              = 32
	MaxDetailsLen           = 200
	MaxCommissionPercentage = 100
)

// Campaign is a company's offer to sell one escrowed NFT through affiliate
// links. Amounts are in the smallest currency unit (lamports).
type Campaign struct {
	Address              Address
	Name                 string
	Owner                Address // creating company
	Asset                Address // NFT mint held in the vault
	MintPrice            uint64
	CommissionPercentage uint8
	Details              string
	Active               bool
	AffiliatesCount      uint64
	TotalMints           uint64
	CreatedAt            time.Time
}

// ValidateCampaignTerms checks the commercial terms of a new campaign.
func ValidateCampaignTerms(name string, mintPrice uint64, percentage uint8, details string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidInput)
	case len(name) > MaxNameLen:
		return fmt.Errorf("%w: name is %d bytes, limit %d", ErrInvalidInput, len(name), MaxNameLen)
	case len(details) > MaxDetailsLen:
		return fmt.Errorf("%w: details are %d bytes, limit %d", ErrInvalidInput, len(details), MaxDetailsLen)
	case percentage > MaxCommissionPercentage:
		return fmt.Errorf("%w: commission percentage %d exceeds %d", ErrInvalidInput, percentage, MaxCommissionPercentage)
	case mintPrice == 0:
		return fmt.Errorf("%w: mint price must be positive", ErrInvalidInput)
	}
	return nil
}

// NewCampaign validates the terms and returns an active campaign with zeroed
// counters, addressed by its name.
func NewCampaign(name string, mintPrice uint64, percentage uint8, details string, owner, asset Address, now time.Time) (*Campaign, error) {
	if err := ValidateCampaignTerms(name, mintPrice, percentage, details); err != nil {
		return nil, err
	}
	if owner.IsZero() {
		return nil, fmt.Errorf("%w: owner is required", ErrInvalidInput)
	}
	if asset.IsZero() {
		return nil, fmt.Errorf("%w: asset is required", ErrInvalidInput)
	}
	return &Campaign{
		Address:              CampaignAddress(name),
		Name:                 name,
		Owner:                owner,
		Asset:                asset,
		MintPrice:            mintPrice,
		CommissionPercentage: percentage,
		Details:              details,
		Active:               true,
		CreatedAt:            now,
	}, nil
}

// VaultAddress returns the address of the campaign's escrow vault.
func (c *Campaign) VaultAddress() Address {
	return EscrowAddress(c.Address)
}

// Split returns the commission and proceeds of one sale at the campaign's
// terms.
func (c *Campaign) Split() (Split, error) {
	return SplitPayment(c.MintPrice, c.CommissionPercentage)
}

// RecordAffiliate counts a newly created affiliate link.
func (c *Campaign) RecordAffiliate() error {
	if !c.Active {
		return fmt.Errorf("%w: %s", ErrCampaignInactive, c.Name)
	}
	n, err := CheckedAdd(c.AffiliatesCount, 1)
	if err != nil {
		return err
	}
	c.AffiliatesCount = n
	return nil
}

// RecordMint counts a settled sale and closes the campaign; the vault holds
// a single unit so nothing is left to sell.
func (c *Campaign) RecordMint() error {
	if !c.Active {
		return fmt.Errorf("%w: %s", ErrCampaignInactive, c.Name)
	}
	n, err := CheckedAdd(c.TotalMints, 1)
	if err != nil {
		return err
	}
	c.TotalMints = n
	c.Active = false
	return nil
}
