package domain

import (
	"fmt"
	"time"
)

// AffiliateLink tracks the sales an influencer referred to one campaign.
// There is at most one link per (influencer, campaign) pair because its
// address is derived from both.
type AffiliateLink struct {
	Address    Address
	Campaign   Address
	Influencer Address
	MintsCount uint64
	Earnings   uint64 // lamports
	CreatedAt  time.Time
}

// NewAffiliateLink returns a zeroed link for influencer on campaign c.
func NewAffiliateLink(c *Campaign, influencer Address, now time.Time) (*AffiliateLink, error) {
	if influencer.IsZero() {
		return nil, fmt.Errorf("%w: influencer is required", ErrInvalidInput)
	}
	if !c.Active {
		return nil, fmt.Errorf("%w: %s", ErrCampaignInactive, c.Name)
	}
	if now.Unix() <= 0 {
		return nil, fmt.Errorf("%w: clock returned %v", ErrInvariantViolation, now)
	}
	return &AffiliateLink{
		Address:    AffiliateLinkAddress(influencer, c.Name),
		Campaign:   c.Address,
		Influencer: influencer,
		CreatedAt:  now,
	}, nil
}

// RecordMint attributes one sale and its commission to the link.
func (l *AffiliateLink) RecordMint(commission uint64) error {
	mints, err := CheckedAdd(l.MintsCount, 1)
	if err != nil {
		return err
	}
	earnings, err := CheckedAdd(l.Earnings, commission)
	if err != nil {
		return err
	}
	l.MintsCount = mints
	l.Earnings = earnings
	return nil
}
