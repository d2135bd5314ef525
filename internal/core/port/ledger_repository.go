package port

import (
	"context"
	"errors"

	"affiliate-escrow/internal/core/domain"
)

// ErrConflict is returned by Update when the storage layer aborted the
// transaction because a concurrent transaction wrote a record it touched.
// Nothing was written; the caller may rerun the transaction against the
// new committed state.
var ErrConflict = errors.New("transaction conflict")

// LedgerRepository is the outbound port for account state. Every record is
// keyed by its derived address. Implementations must give Update
// serializable, all-or-nothing semantics: either every write made through
// the LedgerTx lands or none does.
type LedgerRepository interface {
	// Update runs fn in a read-write transaction and commits when fn
	// returns nil. Any error from fn discards every write.
	Update(ctx context.Context, fn func(tx LedgerTx) error) error
	// View runs fn in a read-only transaction.
	View(ctx context.Context, fn func(tx LedgerTx) error) error
}

// LedgerTx is the transaction boundary handed to Update and View. Getters
// return domain.ErrNotFound when the address is empty. Create methods are
// create-if-absent and return domain.ErrAlreadyExists when the address is
// occupied. Write methods fail in a View transaction.
type LedgerTx interface {
	Campaign(addr domain.Address) (*domain.Campaign, error)
	CreateCampaign(c *domain.Campaign) error
	UpdateCampaign(c *domain.Campaign) error

	AffiliateLink(addr domain.Address) (*domain.AffiliateLink, error)
	CreateAffiliateLink(l *domain.AffiliateLink) error
	UpdateAffiliateLink(l *domain.AffiliateLink) error

	Vault(addr domain.Address) (*domain.Vault, error)
	CreateVault(v *domain.Vault) error
	UpdateVault(v *domain.Vault) error

	Holding(addr domain.Address) (*domain.Holding, error)
	PutHolding(h *domain.Holding) error

	Account(addr domain.Address) (*domain.Account, error)
	PutAccount(a *domain.Account) error

	AppendEvent(e *domain.Event) error
	// Events returns the campaign's events in append order.
	Events(campaign domain.Address) ([]domain.Event, error)
}
