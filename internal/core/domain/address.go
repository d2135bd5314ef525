package domain

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// AddressLen is the size of an Address in bytes.
const AddressLen = 32

// Namespace tags mixed into derived addresses. Each record kind has its own
// tag so that two kinds can never collide on the same address.
const (
	CampaignSeed      = "nft_campaign"
	AffiliateLinkSeed = "affiliate_link"
	EscrowSeed        = "nft_escrow"
	HoldingSeed       = "holding"
)

// Address identifies a party, an asset or a stored record. Parties and
// assets are supplied by the caller; record addresses are derived from
// namespace tags and record fields, which makes "create if absent" at the
// derived address the uniqueness check.
type Address [AddressLen]byte

// ParseAddress decodes the 64 character hex form produced by String.
func ParseAddress(s string) (Address, error) {
	var a Address
	if len(s) != hex.EncodedLen(AddressLen) {
		return a, fmt.Errorf("%w: address must be %d hex characters", ErrInvalidInput, hex.EncodedLen(AddressLen))
	}
	if _, err := hex.Decode(a[:], []byte(s)); err != nil {
		return a, fmt.Errorf("%w: address: %v", ErrInvalidInput, err)
	}
	return a, nil
}

// AddressFromBytes copies b into an Address. It fails unless b is exactly
// AddressLen bytes long.
func AddressFromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressLen {
		return a, fmt.Errorf("%w: address must be %d bytes, got %d", ErrInvalidInput, AddressLen, len(b))
	}
	copy(a[:], b)
	return a, nil
}

func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

// IsZero reports whether a is the all-zero address.
func (a Address) IsZero() bool {
	return a == Address{}
}

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// DeriveAddress hashes the seeds with BLAKE2b-256. Every seed is prefixed
// with its length so ("ab", "c") and ("a", "bc") derive different addresses.
func DeriveAddress(seeds ...[]byte) Address {
	h, _ := blake2b.New256(nil)
	var prefix [4]byte
	for _, seed := range seeds {
		binary.BigEndian.PutUint32(prefix[:], uint32(len(seed)))
		h.Write(prefix[:])
		h.Write(seed)
	}
	var a Address
	copy(a[:], h.Sum(nil))
	return a
}

// CampaignAddress returns the address of the campaign called name.
func CampaignAddress(name string) Address {
	return DeriveAddress([]byte(CampaignSeed), []byte(name))
}

// AffiliateLinkAddress returns the address of the link an influencer holds
// for the campaign called name.
func AffiliateLinkAddress(influencer Address, name string) Address {
	return DeriveAddress([]byte(AffiliateLinkSeed), influencer[:], []byte(name))
}

// EscrowAddress returns the address of the vault owned by campaign. The
// vault is its own custodial authority; no party address maps onto it.
func EscrowAddress(campaign Address) Address {
	return DeriveAddress([]byte(EscrowSeed), campaign[:])
}

// HoldingAddress returns the address of holder's balance of asset.
func HoldingAddress(asset, holder Address) Address {
	return DeriveAddress([]byte(HoldingSeed), asset[:], holder[:])
}
