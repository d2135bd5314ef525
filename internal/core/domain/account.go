package domain

import "fmt"

// Account is a party's native currency balance in lamports.
type Account struct {
	Address  Address
	Lamports uint64
}

// Debit removes amount from the account.
func (a *Account) Debit(amount uint64) error {
	if a.Lamports < amount {
		return fmt.Errorf("%w: %s has %d, needs %d", ErrInsufficientFunds, a.Address, a.Lamports, amount)
	}
	a.Lamports -= amount
	return nil
}

// Credit adds amount to the account.
func (a *Account) Credit(amount uint64) error {
	n, err := CheckedAdd(a.Lamports, amount)
	if err != nil {
		return err
	}
	a.Lamports = n
	return nil
}
