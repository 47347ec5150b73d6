package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrecisionTier(t *testing.T) {
	for _, tier := range Tiers {
		require.True(t, tier.IsValid(), "tier %s", tier)
		require.NotEqual(t, "Unknown", tier.String())
	}

	require.False(t, PrecisionTier(0).IsValid())
	require.False(t, PrecisionTier(3).IsValid())
	require.Equal(t, "Unknown", PrecisionTier(3).String())

	require.True(t, TierLossless.IsLossless())
	require.False(t, Tier16Bit.IsLossless())
	require.Equal(t, 8, Tier8Bit.Bits())
	require.Equal(t, 1, Tier8Bit.GroupSize())
	require.False(t, Tier1Bit.IsFractional())
}

func TestPrecisionTier_Fractional(t *testing.T) {
	testCases := []struct {
		tier  PrecisionTier
		name  string
		bits  int
		group int
		rate  float64
	}{
		{TierQuarterBit, "0.25bit", 2, 8, 0.25},
		{TierHalfBit, "0.5bit", 2, 4, 0.5},
		{Tier1Bit, "1bit", 1, 1, 1},
		{TierLossless, "lossless", 32, 1, 32},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.True(t, tc.tier.IsValid())
			require.Equal(t, tc.name, tc.tier.String())
			require.Equal(t, tc.bits, tc.tier.Bits())
			require.Equal(t, tc.group, tc.tier.GroupSize())
			require.InDelta(t, tc.rate, tc.tier.BitsPerSample(), 0)
			require.Equal(t, tc.group > 1, tc.tier.IsFractional())
		})
	}

	// bit 7 alone or with another group size is not a tier
	require.False(t, PrecisionTier(0x80).IsValid())
	require.False(t, PrecisionTier(0x82).IsValid())

	// tiers are ordered from coarsest to finest
	for i := 1; i < len(Tiers); i++ {
		require.Less(t, Tiers[i-1].BitsPerSample(), Tiers[i].BitsPerSample())
	}
}

func TestCompressionType(t *testing.T) {
	testCases := []struct {
		c     CompressionType
		name  string
		valid bool
	}{
		{CompressionNone, "None", true},
		{CompressionZstd, "Zstd", true},
		{CompressionS2, "S2", true},
		{CompressionLZ4, "LZ4", true},
		{CompressionType(0), "Unknown", false},
		{CompressionType(9), "Unknown", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.name, tc.c.String())
			require.Equal(t, tc.valid, tc.c.IsValid())
		})
	}
}
