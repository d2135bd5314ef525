package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"affiliate-escrow/internal/core/domain"
	"affiliate-escrow/internal/core/port"
	"affiliate-escrow/internal/metrics"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
)

// Defaults for rerunning a transaction that lost a storage conflict.
// Retries are spaced by jittered exponential backoff and stop at whichever
// bound is hit first.
const (
	DefaultMaxRetries  = 32
	DefaultRetryBudget = 5 * time.Second
)

// Backoff between conflicting attempts. Ledger transactions are short, so
// the first retry comes almost immediately.
const (
	retryInitialInterval = 2 * time.Millisecond
	retryMaxInterval     = 200 * time.Millisecond
)

// EscrowUseCase implements port.EscrowUseCase on top of a LedgerRepository.
// All state lives in the repository; the use case holds configuration only,
// so one instance may serve any number of concurrent requests.
type EscrowUseCase struct {
	repo       port.LedgerRepository
	logger     *slog.Logger
	metrics    *metrics.Metrics
	now         func() time.Time
	maxRetries  int
	retryBudget time.Duration
}

// Option configures an EscrowUseCase.
type Option func(*EscrowUseCase)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(u *EscrowUseCase) { u.logger = logger }
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *metrics.Metrics) Option {
	return func(u *EscrowUseCase) { u.metrics = m }
}

// WithClock replaces time.Now as the source of created_at timestamps.
func WithClock(now func() time.Time) Option {
	return func(u *EscrowUseCase) { u.now = now }
}

// WithMaxRetries sets how many times a conflicting transaction is rerun.
func WithMaxRetries(n int) Option {
	return func(u *EscrowUseCase) {
		if n >= 0 {
			u.maxRetries = n
		}
	}
}

// WithRetryBudget bounds the total time spent rerunning one conflicting
// transaction. Non-positive values are ignored.
func WithRetryBudget(d time.Duration) Option {
	return func(u *EscrowUseCase) {
		if d > 0 {
			u.retryBudget = d
		}
	}
}

// NewEscrowUseCase creates a use case backed by repo.
func NewEscrowUseCase(repo port.LedgerRepository, opts ...Option) *EscrowUseCase {
	u := &EscrowUseCase{
		repo:        repo,
		logger:      slog.New(slog.DiscardHandler),
		now:         func() time.Time { return time.Now().UTC() },
		maxRetries:  DefaultMaxRetries,
		retryBudget: DefaultRetryBudget,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

var _ port.EscrowUseCase = (*EscrowUseCase)(nil)

// update runs fn in a read-write transaction, rerunning it with backoff
// when the repository reports a conflict. fn must derive everything it
// writes from what it reads in tx, since a rerun sees newer committed
// state. Any other error ends the loop at once.
func (u *EscrowUseCase) update(ctx context.Context, fn func(tx port.LedgerTx) error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = retryInitialInterval
	b.MaxInterval = retryMaxInterval

	attempt := 0
	opts := []backoff.RetryOption{
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(u.maxRetries) + 1),
		backoff.WithMaxElapsedTime(u.retryBudget),
		backoff.WithNotify(func(_ error, next time.Duration) {
			attempt++
			u.metrics.IncTxRetry()
			u.logger.Debug("transaction conflict, retrying",
				slog.Int("attempt", attempt),
				slog.Duration("backoff", next),
			)
		}),
	}
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		err := u.repo.Update(ctx, fn)
		if err != nil && !errors.Is(err, port.ErrConflict) {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	}, opts...)
	// The last attempt's error comes back still wrapped.
	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		return permanent.Err
	}
	return err
}

// resultCode classifies err for metrics the same way the transport does:
// a transaction that ran out of retries is a conflict, not an internal
// failure.
func resultCode(err error) string {
	if errors.Is(err, port.ErrConflict) {
		return "conflict"
	}
	return domain.ErrorCode(err)
}

// CreateCampaign registers a campaign, creates its vault and deposits the
// owner's NFT into it. Both records and the deposit commit together.
func (u *EscrowUseCase) CreateCampaign(ctx context.Context, req port.CreateCampaignReq) (*port.CampaignCreated, error) {
	now := u.now()
	c, err := domain.NewCampaign(req.Name, req.MintPrice, req.CommissionPercentage, req.Details, req.Owner, req.Asset, now)
	if err != nil {
		u.logger.Debug("create campaign rejected", slog.String("name", req.Name), slog.Any("error", err))
		return nil, err
	}
	err = u.update(ctx, func(tx port.LedgerTx) error {
		if err := tx.CreateCampaign(c); err != nil {
			return err
		}
		vault, err := tx.Vault(c.VaultAddress())
		switch {
		case errors.Is(err, domain.ErrNotFound):
			vault = domain.NewVault(c)
			if err = tx.CreateVault(vault); err != nil {
				return err
			}
		case err != nil:
			return err
		}
		return u.deposit(tx, c, vault, req.Owner, now)
	})
	if err != nil {
		u.logger.Debug("create campaign failed", slog.String("name", req.Name), slog.Any("error", err))
		return nil, err
	}
	u.metrics.IncCampaignCreated()
	u.logger.Info("campaign created",
		slog.String("campaign", c.Address.String()),
		slog.String("name", c.Name),
		slog.String("owner", c.Owner.String()),
		slog.Uint64("mint_price", c.MintPrice),
		slog.Int("commission_percentage", int(c.CommissionPercentage)),
	)
	return &port.CampaignCreated{CampaignID: c.Address, VaultID: c.VaultAddress()}, nil
}

// deposit moves the signer's unit of the campaign asset into vault.
func (u *EscrowUseCase) deposit(tx port.LedgerTx, c *domain.Campaign, vault *domain.Vault, signer domain.Address, now time.Time) error {
	source, err := tx.Holding(domain.HoldingAddress(c.Asset, signer))
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: %s does not hold %s", domain.ErrUnauthorized, signer, c.Asset)
	}
	if err != nil {
		return err
	}
	if err = vault.Deposit(source, signer); err != nil {
		return err
	}
	if err = tx.PutHolding(source); err != nil {
		return err
	}
	if err = tx.UpdateVault(vault); err != nil {
		return err
	}
	return tx.AppendEvent(&domain.Event{
		ID:           uuid.New(),
		Kind:         domain.EventCampaignCreated,
		Campaign:     c.Address,
		Actor:        c.Owner,
		Counterparty: vault.Address,
		Amount:       c.MintPrice,
		CreatedAt:    now,
	})
}

// CreateAffiliateLink registers a link for the influencer on an active
// campaign and counts it on the campaign.
func (u *EscrowUseCase) CreateAffiliateLink(ctx context.Context, req port.CreateAffiliateLinkReq) (*port.LinkCreated, error) {
	now := u.now()
	var linkID domain.Address
	err := u.update(ctx, func(tx port.LedgerTx) error {
		c, err := campaignForWrite(tx, req.CampaignID)
		if err != nil {
			return err
		}
		link, err := domain.NewAffiliateLink(c, req.Influencer, now)
		if err != nil {
			return err
		}
		if err = tx.CreateAffiliateLink(link); err != nil {
			return err
		}
		if err = c.RecordAffiliate(); err != nil {
			return err
		}
		if err = tx.UpdateCampaign(c); err != nil {
			return err
		}
		linkID = link.Address
		return tx.AppendEvent(&domain.Event{
			ID:           uuid.New(),
			Kind:         domain.EventAffiliateLinkCreated,
			Campaign:     c.Address,
			Actor:        req.Influencer,
			Counterparty: link.Address,
			CreatedAt:    now,
		})
	})
	if err != nil {
		u.logger.Debug("create affiliate link failed",
			slog.String("campaign", req.CampaignID.String()),
			slog.String("influencer", req.Influencer.String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	u.metrics.IncLinkCreated()
	u.logger.Info("affiliate link created",
		slog.String("link", linkID.String()),
		slog.String("campaign", req.CampaignID.String()),
		slog.String("influencer", req.Influencer.String()),
	)
	return &port.LinkCreated{LinkID: linkID}, nil
}

// campaignForWrite loads a campaign a write is about to depend on. A
// missing campaign cannot accept writes, so it reports both kinds.
func campaignForWrite(tx port.LedgerTx, id domain.Address) (*domain.Campaign, error) {
	c, err := tx.Campaign(id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%w: campaign %s: %w", domain.ErrCampaignInactive, id, domain.ErrNotFound)
	}
	return c, err
}

// GetCampaign returns the campaign at id.
func (u *EscrowUseCase) GetCampaign(ctx context.Context, id domain.Address) (*domain.Campaign, error) {
	var c *domain.Campaign
	err := u.repo.View(ctx, func(tx port.LedgerTx) (err error) {
		c, err = tx.Campaign(id)
		return err
	})
	return c, err
}

// GetAffiliateLink returns the affiliate link at id.
func (u *EscrowUseCase) GetAffiliateLink(ctx context.Context, id domain.Address) (*domain.AffiliateLink, error) {
	var l *domain.AffiliateLink
	err := u.repo.View(ctx, func(tx port.LedgerTx) (err error) {
		l, err = tx.AffiliateLink(id)
		return err
	})
	return l, err
}

// GetVault returns the vault of the campaign at campaignID.
func (u *EscrowUseCase) GetVault(ctx context.Context, campaignID domain.Address) (*domain.Vault, error) {
	var v *domain.Vault
	err := u.repo.View(ctx, func(tx port.LedgerTx) (err error) {
		v, err = tx.Vault(domain.EscrowAddress(campaignID))
		return err
	})
	return v, err
}

// GetAccount returns the lamport balance of addr. An address that never
// received funds has a zero balance rather than no account.
func (u *EscrowUseCase) GetAccount(ctx context.Context, addr domain.Address) (*domain.Account, error) {
	var a *domain.Account
	err := u.repo.View(ctx, func(tx port.LedgerTx) (err error) {
		a, err = tx.Account(addr)
		if errors.Is(err, domain.ErrNotFound) {
			a, err = &domain.Account{Address: addr}, nil
		}
		return err
	})
	return a, err
}

// GetHolding returns holder's balance of asset, zero when none was ever
// recorded.
func (u *EscrowUseCase) GetHolding(ctx context.Context, asset, holder domain.Address) (*domain.Holding, error) {
	var h *domain.Holding
	err := u.repo.View(ctx, func(tx port.LedgerTx) (err error) {
		h, err = tx.Holding(domain.HoldingAddress(asset, holder))
		if errors.Is(err, domain.ErrNotFound) {
			h, err = domain.NewHolding(asset, holder), nil
		}
		return err
	})
	return h, err
}

// ListEvents returns the campaign's event log in append order.
func (u *EscrowUseCase) ListEvents(ctx context.Context, campaignID domain.Address) ([]domain.Event, error) {
	var events []domain.Event
	err := u.repo.View(ctx, func(tx port.LedgerTx) error {
		if _, err := tx.Campaign(campaignID); err != nil {
			return err
		}
		var err error
		events, err = tx.Events(campaignID)
		return err
	})
	return events, err
}
