package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"affiliate-escrow/internal/core/domain"
	"affiliate-escrow/internal/core/port"

	"github.com/google/uuid"
)

// ProcessAffiliateMint settles one sale through an affiliate link. All
// preconditions are checked before the first mutation, and every mutation
// is staged on the transaction so a late failure discards all of them.
func (u *EscrowUseCase) ProcessAffiliateMint(ctx context.Context, req port.ProcessAffiliateMintReq) (*port.Settled, error) {
	if err := validateMintReq(req); err != nil {
		u.metrics.ObserveSettlement(resultCode(err), 0, 0)
		return nil, err
	}
	now := u.now()
	var split domain.Split
	err := u.update(ctx, func(tx port.LedgerTx) (err error) {
		split, err = settle(tx, req, now)
		return err
	})
	u.metrics.ObserveSettlement(resultCode(err), split.Commission, split.Proceeds)
	if err != nil {
		u.logger.Debug("settlement rejected",
			slog.String("campaign", req.CampaignID.String()),
			slog.String("link", req.LinkID.String()),
			slog.String("buyer", req.Buyer.String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	u.logger.Info("mint settled",
		slog.String("campaign", req.CampaignID.String()),
		slog.String("link", req.LinkID.String()),
		slog.String("buyer", req.Buyer.String()),
		slog.Uint64("commission", split.Commission),
		slog.Uint64("proceeds", split.Proceeds),
	)
	return &port.Settled{Commission: split.Commission, Proceeds: split.Proceeds}, nil
}

func validateMintReq(req port.ProcessAffiliateMintReq) error {
	switch {
	case req.Buyer.IsZero():
		return fmt.Errorf("%w: buyer is required", domain.ErrInvalidInput)
	case req.Influencer.IsZero():
		return fmt.Errorf("%w: influencer is required", domain.ErrInvalidInput)
	case req.Owner.IsZero():
		return fmt.Errorf("%w: owner is required", domain.ErrInvalidInput)
	}
	return nil
}

// settle performs the settlement inside tx. Checks run in a fixed order and
// the first failure wins: campaign active, link belongs to campaign,
// influencer matches link, owner matches campaign, vault holds the unit,
// buyer can pay.
func settle(tx port.LedgerTx, req port.ProcessAffiliateMintReq, now time.Time) (domain.Split, error) {
	c, err := campaignForWrite(tx, req.CampaignID)
	if err != nil {
		return domain.Split{}, err
	}
	if !c.Active {
		return domain.Split{}, fmt.Errorf("%w: %s", domain.ErrCampaignInactive, c.Name)
	}
	link, err := tx.AffiliateLink(req.LinkID)
	if err != nil {
		return domain.Split{}, fmt.Errorf("affiliate link %s: %w", req.LinkID, err)
	}
	if link.Campaign != c.Address {
		return domain.Split{}, fmt.Errorf("%w: link %s belongs to %s", domain.ErrLinkCampaignMismatch, link.Address, link.Campaign)
	}
	if req.Influencer != link.Influencer {
		return domain.Split{}, fmt.Errorf("%w: influencer %s does not own link %s", domain.ErrUnauthorized, req.Influencer, link.Address)
	}
	if req.Owner != c.Owner {
		return domain.Split{}, fmt.Errorf("%w: %s does not own campaign %s", domain.ErrUnauthorized, req.Owner, c.Name)
	}
	vault, err := tx.Vault(c.VaultAddress())
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Split{}, fmt.Errorf("%w: campaign %s has no vault", domain.ErrEscrowEmpty, c.Name)
	}
	if err != nil {
		return domain.Split{}, err
	}
	if vault.Amount == 0 {
		return domain.Split{}, fmt.Errorf("%w: vault %s", domain.ErrEscrowEmpty, vault.Address)
	}
	ws := newWorkingSet(tx)
	buyer, err := ws.account(req.Buyer)
	if err != nil {
		return domain.Split{}, err
	}
	if buyer.Lamports < c.MintPrice {
		return domain.Split{}, fmt.Errorf("%w: buyer has %d, price is %d", domain.ErrInsufficientFunds, buyer.Lamports, c.MintPrice)
	}

	split, err := c.Split()
	if err != nil {
		return domain.Split{}, err
	}
	if err = ws.transfer(req.Buyer, req.Influencer, split.Commission); err != nil {
		return domain.Split{}, err
	}
	if err = ws.transfer(req.Buyer, req.Owner, split.Proceeds); err != nil {
		return domain.Split{}, err
	}
	dest, err := tx.Holding(domain.HoldingAddress(c.Asset, req.Buyer))
	if errors.Is(err, domain.ErrNotFound) {
		dest, err = domain.NewHolding(c.Asset, req.Buyer), nil
	}
	if err != nil {
		return domain.Split{}, err
	}
	if err = vault.Release(c, dest); err != nil {
		return domain.Split{}, err
	}
	if err = c.RecordMint(); err != nil {
		return domain.Split{}, err
	}
	if err = link.RecordMint(split.Commission); err != nil {
		return domain.Split{}, err
	}

	if err = ws.flush(); err != nil {
		return domain.Split{}, err
	}
	if err = tx.PutHolding(dest); err != nil {
		return domain.Split{}, err
	}
	if err = tx.UpdateVault(vault); err != nil {
		return domain.Split{}, err
	}
	if err = tx.UpdateCampaign(c); err != nil {
		return domain.Split{}, err
	}
	if err = tx.UpdateAffiliateLink(link); err != nil {
		return domain.Split{}, err
	}
	err = tx.AppendEvent(&domain.Event{
		ID:           uuid.New(),
		Kind:         domain.EventMintSettled,
		Campaign:     c.Address,
		Actor:        req.Buyer,
		Counterparty: req.Influencer,
		Amount:       split.Commission,
		Proceeds:     split.Proceeds,
		CreatedAt:    now,
	})
	return split, err
}

// workingSet stages account balances for one transaction. Parties may
// alias (a buyer can also be the owner), so every address maps to exactly
// one in-memory account and all moves net out before anything is written.
type workingSet struct {
	tx       port.LedgerTx
	accounts map[domain.Address]*domain.Account
	order    []domain.Address
}

func newWorkingSet(tx port.LedgerTx) *workingSet {
	return &workingSet{tx: tx, accounts: make(map[domain.Address]*domain.Account)}
}

func (w *workingSet) account(addr domain.Address) (*domain.Account, error) {
	if a, ok := w.accounts[addr]; ok {
		return a, nil
	}
	a, err := w.tx.Account(addr)
	if errors.Is(err, domain.ErrNotFound) {
		a, err = &domain.Account{Address: addr}, nil
	}
	if err != nil {
		return nil, err
	}
	w.accounts[addr] = a
	w.order = append(w.order, addr)
	return a, nil
}

func (w *workingSet) transfer(from, to domain.Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	src, err := w.account(from)
	if err != nil {
		return err
	}
	dst, err := w.account(to)
	if err != nil {
		return err
	}
	if err = src.Debit(amount); err != nil {
		return err
	}
	return dst.Credit(amount)
}

func (w *workingSet) flush() error {
	for _, addr := range w.order {
		if err := w.tx.PutAccount(w.accounts[addr]); err != nil {
			return err
		}
	}
	return nil
}
