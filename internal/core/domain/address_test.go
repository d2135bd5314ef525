package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveAddressIsDeterministic(t *testing.T) {
	assert.Equal(t, CampaignAddress("drop"), CampaignAddress("drop"))
	assert.NotEqual(t, CampaignAddress("drop"), CampaignAddress("drop2"))
}

func TestDeriveAddressLengthPrefixesSeeds(t *testing.T) {
	a := DeriveAddress([]byte("ab"), []byte("c"))
	b := DeriveAddress([]byte("a"), []byte("bc"))
	assert.NotEqual(t, a, b)
}

func TestDerivedNamespacesDoNotCollide(t *testing.T) {
	influencer := DeriveAddress([]byte("influencer"))
	campaign := CampaignAddress("drop")

	addrs := []Address{
		campaign,
		AffiliateLinkAddress(influencer, "drop"),
		EscrowAddress(campaign),
		HoldingAddress(campaign, influencer),
	}
	seen := make(map[Address]struct{})
	for _, a := range addrs {
		seen[a] = struct{}{}
	}
	assert.Len(t, seen, len(addrs))
}

func TestAffiliateLinkAddressPerInfluencer(t *testing.T) {
	a := DeriveAddress([]byte("a"))
	b := DeriveAddress([]byte("b"))
	assert.NotEqual(t, AffiliateLinkAddress(a, "drop"), AffiliateLinkAddress(b, "drop"))
	assert.NotEqual(t, AffiliateLinkAddress(a, "drop"), AffiliateLinkAddress(a, "other"))
}

func TestParseAddress(t *testing.T) {
	want := CampaignAddress("drop")

	got, err := ParseAddress(want.String())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = ParseAddress("abc")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ParseAddress(strings.Repeat("zz", AddressLen))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddressFromBytes(t *testing.T) {
	want := CampaignAddress("drop")
	got, err := AddressFromBytes(want[:])
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = AddressFromBytes(want[:31])
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddressJSON(t *testing.T) {
	type wrapper struct {
		Addr Address `json:"addr"`
	}
	in := wrapper{Addr: CampaignAddress("drop")}
	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(raw), in.Addr.String())

	var out wrapper
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
	assert.False(t, out.Addr.IsZero())
	assert.True(t, Address{}.IsZero())
}
