package postgres

import (
	"context"
	"errors"
	"fmt"

	"affiliate-escrow/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ledgerTx implements port.LedgerTx on a pgx transaction.
type ledgerTx struct {
	ctx       context.Context
	tx        pgx.Tx
	forUpdate bool
}

// address scans a BYTEA column into a domain.Address.
type address struct {
	dst *domain.Address
}

func (a address) Scan(src any) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into address", src)
	}
	addr, err := domain.AddressFromBytes(b)
	if err != nil {
		return err
	}
	*a.dst = addr
	return nil
}

func (t *ledgerTx) lockClause() string {
	if t.forUpdate {
		return " FOR UPDATE"
	}
	return ""
}

func notFound(err error, what string, addr domain.Address) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", what, addr, domain.ErrNotFound)
	}
	return err
}

// insert runs an INSERT ... ON CONFLICT DO NOTHING and reports a skipped
// row as ErrAlreadyExists.
func (t *ledgerTx) insert(what string, addr domain.Address, query string, args ...any) error {
	tag, err := t.tx.Exec(t.ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", what, addr, domain.ErrAlreadyExists)
	}
	return nil
}

// exec runs an UPDATE and reports a missing row as ErrNotFound.
func (t *ledgerTx) exec(what string, addr domain.Address, query string, args ...any) error {
	tag, err := t.tx.Exec(t.ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", what, addr, domain.ErrNotFound)
	}
	return nil
}

func (t *ledgerTx) Campaign(addr domain.Address) (*domain.Campaign, error) {
	var c domain.Campaign
	err := t.tx.QueryRow(t.ctx, `SELECT address, name, owner, asset, mint_price, commission_percentage, details, active, affiliates_count, total_mints, created_at FROM campaigns WHERE address = $1`+t.lockClause(), addr[:]).
		Scan(address{&c.Address}, &c.Name, address{&c.Owner}, address{&c.Asset}, &c.MintPrice, &c.CommissionPercentage, &c.Details, &c.Active, &c.AffiliatesCount, &c.TotalMints, &c.CreatedAt)
	if err != nil {
		return nil, notFound(err, "campaign", addr)
	}
	return &c, nil
}

func (t *ledgerTx) CreateCampaign(c *domain.Campaign) error {
	return t.insert("campaign", c.Address, `INSERT INTO campaigns (address, name, owner, asset, mint_price, commission_percentage, details, active, affiliates_count, total_mints, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11) ON CONFLICT DO NOTHING`,
		c.Address[:], c.Name, c.Owner[:], c.Asset[:], c.MintPrice, c.CommissionPercentage, c.Details, c.Active, c.AffiliatesCount, c.TotalMints, c.CreatedAt)
}

func (t *ledgerTx) UpdateCampaign(c *domain.Campaign) error {
	return t.exec("campaign", c.Address, `UPDATE campaigns SET active = $2, affiliates_count = $3, total_mints = $4 WHERE address = $1`,
		c.Address[:], c.Active, c.AffiliatesCount, c.TotalMints)
}

func (t *ledgerTx) AffiliateLink(addr domain.Address) (*domain.AffiliateLink, error) {
	var l domain.AffiliateLink
	err := t.tx.QueryRow(t.ctx, `SELECT address, campaign, influencer, mints_count, earnings, created_at FROM affiliate_links WHERE address = $1`+t.lockClause(), addr[:]).
		Scan(address{&l.Address}, address{&l.Campaign}, address{&l.Influencer}, &l.MintsCount, &l.Earnings, &l.CreatedAt)
	if err != nil {
		return nil, notFound(err, "affiliate link", addr)
	}
	return &l, nil
}

func (t *ledgerTx) CreateAffiliateLink(l *domain.AffiliateLink) error {
	return t.insert("affiliate link", l.Address, `INSERT INTO affiliate_links (address, campaign, influencer, mints_count, earnings, created_at)
VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT DO NOTHING`,
		l.Address[:], l.Campaign[:], l.Influencer[:], l.MintsCount, l.Earnings, l.CreatedAt)
}

func (t *ledgerTx) UpdateAffiliateLink(l *domain.AffiliateLink) error {
	return t.exec("affiliate link", l.Address, `UPDATE affiliate_links SET mints_count = $2, earnings = $3 WHERE address = $1`,
		l.Address[:], l.MintsCount, l.Earnings)
}

func (t *ledgerTx) Vault(addr domain.Address) (*domain.Vault, error) {
	var v domain.Vault
	err := t.tx.QueryRow(t.ctx, `SELECT address, campaign, asset, amount FROM vaults WHERE address = $1`+t.lockClause(), addr[:]).
		Scan(address{&v.Address}, address{&v.Campaign}, address{&v.Asset}, &v.Amount)
	if err != nil {
		return nil, notFound(err, "vault", addr)
	}
	return &v, nil
}

func (t *ledgerTx) CreateVault(v *domain.Vault) error {
	return t.insert("vault", v.Address, `INSERT INTO vaults (address, campaign, asset, amount) VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`,
		v.Address[:], v.Campaign[:], v.Asset[:], v.Amount)
}

func (t *ledgerTx) UpdateVault(v *domain.Vault) error {
	return t.exec("vault", v.Address, `UPDATE vaults SET amount = $2 WHERE address = $1`, v.Address[:], v.Amount)
}

func (t *ledgerTx) Holding(addr domain.Address) (*domain.Holding, error) {
	var h domain.Holding
	err := t.tx.QueryRow(t.ctx, `SELECT address, asset, holder, amount FROM holdings WHERE address = $1`+t.lockClause(), addr[:]).
		Scan(address{&h.Address}, address{&h.Asset}, address{&h.Holder}, &h.Amount)
	if err != nil {
		return nil, notFound(err, "holding", addr)
	}
	return &h, nil
}

func (t *ledgerTx) PutHolding(h *domain.Holding) error {
	_, err := t.tx.Exec(t.ctx, `INSERT INTO holdings (address, asset, holder, amount) VALUES ($1,$2,$3,$4)
ON CONFLICT (address) DO UPDATE SET amount = EXCLUDED.amount`,
		h.Address[:], h.Asset[:], h.Holder[:], h.Amount)
	return err
}

func (t *ledgerTx) Account(addr domain.Address) (*domain.Account, error) {
	var a domain.Account
	err := t.tx.QueryRow(t.ctx, `SELECT address, lamports FROM accounts WHERE address = $1`+t.lockClause(), addr[:]).
		Scan(address{&a.Address}, &a.Lamports)
	if err != nil {
		return nil, notFound(err, "account", addr)
	}
	return &a, nil
}

func (t *ledgerTx) PutAccount(a *domain.Account) error {
	_, err := t.tx.Exec(t.ctx, `INSERT INTO accounts (address, lamports) VALUES ($1,$2)
ON CONFLICT (address) DO UPDATE SET lamports = EXCLUDED.lamports`,
		a.Address[:], a.Lamports)
	return err
}

func (t *ledgerTx) AppendEvent(e *domain.Event) error {
	_, err := t.tx.Exec(t.ctx, `INSERT INTO events (id, kind, campaign, actor, counterparty, amount, proceeds, created_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		e.ID, string(e.Kind), e.Campaign[:], e.Actor[:], e.Counterparty[:], e.Amount, e.Proceeds, e.CreatedAt)
	return err
}

func (t *ledgerTx) Events(campaign domain.Address) ([]domain.Event, error) {
	rows, err := t.tx.Query(t.ctx, `SELECT id, kind, campaign, actor, counterparty, amount, proceeds, created_at FROM events WHERE campaign = $1 ORDER BY seq`, campaign[:])
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Event, error) {
		var (
			e    domain.Event
			kind string
		)
		err := row.Scan(&e.ID, &kind, address{&e.Campaign}, address{&e.Actor}, address{&e.Counterparty}, &e.Amount, &e.Proceeds, &e.CreatedAt)
		e.Kind = domain.EventKind(kind)
		return e, err
	})
}
