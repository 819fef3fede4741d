package utils

import (
	"testing"

	"wallet_export/internal/domain/entity"

	"github.com/stretchr/testify/require"
)

func TestUnitNormalizeAddress(t *testing.T) {
	cases := map[string]string{
		"ronin:3759468f9fd589665c8affbe52414ef77f863f72":   "0x3759468f9fd589665c8affbe52414ef77f863f72",
		"RONIN:3759468f9fd589665c8affbe52414ef77f863f72":   "0x3759468f9fd589665c8affbe52414ef77f863f72",
		"0x3759468f9fd589665c8affbe52414ef77f863f72":       "0x3759468f9fd589665c8affbe52414ef77f863f72",
		"  ronin:3759468f9fd589665c8affbe52414ef77f863f72 ": "0x3759468f9fd589665c8affbe52414ef77f863f72",
		"":      "",
		"ronin": "ronin",
	}

	for in, want := range cases {
		require.Equal(t, want, NormalizeAddress(in), "input %q", in)
	}
}

func TestUnitNormalizeAddressIdempotent(t *testing.T) {
	inputs := []string{
		"ronin:3759468f9fd589665c8affbe52414ef77f863f72",
		"0x3759468f9fd589665c8affbe52414ef77f863f72",
		"ronin:ronin:abc",
		"garbage",
		"",
	}

	for _, in := range inputs {
		once := NormalizeAddress(in)
		require.Equal(t, once, NormalizeAddress(once), "input %q", in)
	}
}

func TestUnitCanonicalAddress(t *testing.T) {
	addr, err := CanonicalAddress("ronin:3759468f9fd589665c8affbe52414ef77f863f72")
	require.NoError(t, err)
	require.Equal(t, "0x3759468f9fd589665c8affbe52414ef77f863f72", addr)

	for _, bad := range []string{"", "ronin:xyz", "3759468f9fd589665c8affbe52414ef77f863f72", "0x1234"} {
		_, err := CanonicalAddress(bad)
		require.ErrorIs(t, err, entity.ErrValidation, "input %q", bad)
	}
}
