package domain

import "fmt"

// Vault is the custodial holding of a campaign's single NFT. Amount is 1
// from campaign creation until settlement and 0 afterwards.
type Vault struct {
	Address  Address
	Campaign Address
	Asset    Address
	Amount   uint64
}

// Holding is one holder's balance of one asset.
type Holding struct {
	Address Address
	Asset   Address
	Holder  Address
	Amount  uint64
}

// NewVault returns the empty vault of campaign c.
func NewVault(c *Campaign) *Vault {
	return &Vault{
		Address:  c.VaultAddress(),
		Campaign: c.Address,
		Asset:    c.Asset,
	}
}

// NewHolding returns an empty holding of asset by holder.
func NewHolding(asset, holder Address) *Holding {
	return &Holding{
		Address: HoldingAddress(asset, holder),
		Asset:   asset,
		Holder:  holder,
	}
}

// Deposit moves one unit from source into the vault. signer must be the
// holder of source. The resulting balances are checked before returning so
// the caller can abort its transaction on any surprise.
func (v *Vault) Deposit(source *Holding, signer Address) error {
	if v.Amount != 0 {
		return fmt.Errorf("%w: vault %s already holds %d", ErrInvariantViolation, v.Address, v.Amount)
	}
	if source.Holder != signer {
		return fmt.Errorf("%w: %s does not hold %s", ErrUnauthorized, signer, source.Asset)
	}
	if source.Asset != v.Asset || source.Amount < 1 {
		return fmt.Errorf("%w: %s does not hold %s", ErrUnauthorized, signer, v.Asset)
	}
	source.Amount--
	v.Amount++
	if source.Amount != 0 || v.Amount != 1 {
		return fmt.Errorf("%w: after deposit source=%d vault=%d", ErrInvariantViolation, source.Amount, v.Amount)
	}
	return nil
}

// Release moves the escrowed unit to dest. It is only called while
// settling a sale of c.
func (v *Vault) Release(c *Campaign, dest *Holding) error {
	if !c.Active {
		return fmt.Errorf("%w: %s", ErrCampaignInactive, c.Name)
	}
	switch {
	case v.Amount == 0:
		return fmt.Errorf("%w: vault %s", ErrEscrowEmpty, v.Address)
	case v.Amount > 1:
		return fmt.Errorf("%w: vault %s holds %d", ErrInvariantViolation, v.Address, v.Amount)
	case v.Campaign != c.Address || dest.Asset != v.Asset:
		return fmt.Errorf("%w: vault %s does not match campaign or destination", ErrInvariantViolation, v.Address)
	}
	amount, err := CheckedAdd(dest.Amount, 1)
	if err != nil {
		return err
	}
	dest.Amount = amount
	v.Amount = 0
	return nil
}
