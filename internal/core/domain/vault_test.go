package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaultDepositAndRelease(t *testing.T) {
	c := newTestCampaign(t)
	v := NewVault(c)
	source := NewHolding(testAsset, testOwner)
	source.Amount = 1

	require.NoError(t, v.Deposit(source, testOwner))
	assert.Equal(t, uint64(1), v.Amount)
	assert.Zero(t, source.Amount)

	buyer := DeriveAddress([]byte("buyer"))
	dest := NewHolding(testAsset, buyer)
	require.NoError(t, v.Release(c, dest))
	assert.Zero(t, v.Amount)
	assert.Equal(t, uint64(1), dest.Amount)

	assert.ErrorIs(t, v.Release(c, dest), ErrEscrowEmpty)
}

func TestVaultDepositRejects(t *testing.T) {
	c := newTestCampaign(t)
	stranger := DeriveAddress([]byte("stranger"))

	t.Run("signer does not hold source", func(t *testing.T) {
		v := NewVault(c)
		source := NewHolding(testAsset, testOwner)
		source.Amount = 1
		assert.ErrorIs(t, v.Deposit(source, stranger), ErrUnauthorized)
		assert.Equal(t, uint64(1), source.Amount)
		assert.Zero(t, v.Amount)
	})
	t.Run("empty source", func(t *testing.T) {
		v := NewVault(c)
		source := NewHolding(testAsset, testOwner)
		assert.ErrorIs(t, v.Deposit(source, testOwner), ErrUnauthorized)
	})
	t.Run("wrong asset", func(t *testing.T) {
		v := NewVault(c)
		source := NewHolding(DeriveAddress([]byte("other")), testOwner)
		source.Amount = 1
		assert.ErrorIs(t, v.Deposit(source, testOwner), ErrUnauthorized)
	})
	t.Run("source holds more than one", func(t *testing.T) {
		v := NewVault(c)
		source := NewHolding(testAsset, testOwner)
		source.Amount = 2
		assert.ErrorIs(t, v.Deposit(source, testOwner), ErrInvariantViolation)
	})
	t.Run("vault already funded", func(t *testing.T) {
		v := NewVault(c)
		v.Amount = 1
		source := NewHolding(testAsset, testOwner)
		source.Amount = 1
		assert.ErrorIs(t, v.Deposit(source, testOwner), ErrInvariantViolation)
	})
}

func TestVaultReleaseRejects(t *testing.T) {
	c := newTestCampaign(t)
	buyer := DeriveAddress([]byte("buyer"))

	v := NewVault(c)
	v.Amount = 2
	assert.ErrorIs(t, v.Release(c, NewHolding(testAsset, buyer)), ErrInvariantViolation)

	v.Amount = 1
	assert.ErrorIs(t, v.Release(c, NewHolding(DeriveAddress([]byte("other")), buyer)), ErrInvariantViolation)

	c.Active = false
	dest := NewHolding(testAsset, buyer)
	assert.ErrorIs(t, v.Release(c, dest), ErrCampaignInactive)
	assert.Equal(t, uint64(1), v.Amount)
	assert.Zero(t, dest.Amount)
}

func TestAccountDebitCredit(t *testing.T) {
	a := &Account{Lamports: 10}
	require.NoError(t, a.Debit(10))
	assert.Zero(t, a.Lamports)
	assert.ErrorIs(t, a.Debit(1), ErrInsufficientFunds)

	a.Lamports = ^uint64(0)
	assert.ErrorIs(t, a.Credit(1), ErrOverflow)
	assert.Equal(t, ^uint64(0), a.Lamports)
}
