package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventKind names a committed state transition.
type EventKind string

const (
	EventCampaignCreated      EventKind = "campaign_created"
	EventAffiliateLinkCreated EventKind = "affiliate_link_created"
	EventMintSettled          EventKind = "mint_settled"
)

// Event is an audit record appended in the same transaction as the state
// change it describes. For campaign_created Amount is the mint price; for
// mint_settled Amount is the commission and Proceeds the owner's share.
type Event struct {
	ID           uuid.UUID
	Kind         EventKind
	Campaign     Address
	Actor        Address
	Counterparty Address
	Amount       uint64
	Proceeds     uint64
	CreatedAt    time.Time
}
