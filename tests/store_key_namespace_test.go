package tests

import (
	"bytes"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	marketkeeper "github.com/grid-chain/grid/x/market/keeper"
)

// TestMarketPrefixUniqueness verifies every record family has its own prefix
// byte so iterators never cross families.
func TestMarketPrefixUniqueness(t *testing.T) {
	prefixes := map[string][]byte{
		"ResourceKeyPrefix":        marketkeeper.ResourceKeyPrefix,
		"ResourceCountKey":         marketkeeper.ResourceCountKey,
		"ResourceByProviderPrefix": marketkeeper.ResourceByProviderPrefix,
		"AuctionKeyPrefix":         marketkeeper.AuctionKeyPrefix,
		"AuctionCountKey":          marketkeeper.AuctionCountKey,
		"AuctionByEndHeightPrefix": marketkeeper.AuctionByEndHeightPrefix,
		"JobKeyPrefix":             marketkeeper.JobKeyPrefix,
		"JobCountKey":              marketkeeper.JobCountKey,
		"EscrowKeyPrefix":          marketkeeper.EscrowKeyPrefix,
		"BalanceKeyPrefix":         marketkeeper.BalanceKeyPrefix,
		"ReputationKeyPrefix":      marketkeeper.ReputationKeyPrefix,
		"TreasuryKey":              marketkeeper.TreasuryKey,
		"ParamsKey":                marketkeeper.ParamsKey,
	}

	seen := make(map[byte]string)
	for name, prefix := range prefixes {
		require.Len(t, prefix, 1, "%s must be a single byte", name)
		if other, ok := seen[prefix[0]]; ok {
			t.Fatalf("%s and %s share prefix byte 0x%02x", name, other, prefix[0])
		}
		seen[prefix[0]] = name
	}
	require.Equal(t, len(prefixes), len(seen))
}

// TestRecordKeysStayUnderFamilyPrefix verifies composite key builders emit
// keys rooted at their family prefix with the expected layout.
func TestRecordKeysStayUnderFamilyPrefix(t *testing.T) {
	provider := sdk.AccAddress(bytes.Repeat([]byte{0xAB}, 20))

	testCases := []struct {
		name   string
		key    []byte
		prefix []byte
		length int
	}{
		{"ResourceKey", marketkeeper.ResourceKey(42), marketkeeper.ResourceKeyPrefix, 1 + 8},
		{"AuctionKey", marketkeeper.AuctionKey(42), marketkeeper.AuctionKeyPrefix, 1 + 8},
		{"JobKey", marketkeeper.JobKey(42), marketkeeper.JobKeyPrefix, 1 + 8},
		{"EscrowKey", marketkeeper.EscrowKey(42, 2), marketkeeper.EscrowKeyPrefix, 1 + 8 + 8},
		{"BalanceKey", marketkeeper.BalanceKey(provider), marketkeeper.BalanceKeyPrefix, 1 + 20},
		{"ReputationKey", marketkeeper.ReputationKey(provider), marketkeeper.ReputationKeyPrefix, 1 + 20},
		{"AuctionByEndHeightKey", marketkeeper.AuctionByEndHeightKey(144, 42), marketkeeper.AuctionByEndHeightPrefix, 1 + 8 + 8},
		{"ResourceByProviderKey", marketkeeper.ResourceByProviderKey(provider, 42), marketkeeper.ResourceByProviderPrefix, 1 + 1 + 20 + 8},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.True(t, bytes.HasPrefix(tc.key, tc.prefix), "key %x not under prefix %x", tc.key, tc.prefix)
			require.Len(t, tc.key, tc.length)
		})
	}
}

// TestRecordKeysDoNotCollideAcrossFamilies verifies keys for the same id in
// different families never coincide.
func TestRecordKeysDoNotCollideAcrossFamilies(t *testing.T) {
	keys := [][]byte{
		marketkeeper.ResourceKey(1),
		marketkeeper.AuctionKey(1),
		marketkeeper.JobKey(1),
		marketkeeper.EscrowKey(1, 0),
		marketkeeper.AuctionByEndHeightKey(1, 1),
	}

	for i := range keys {
		for j := i + 1; j < len(keys); j++ {
			require.False(t, bytes.Equal(keys[i], keys[j]), "key %x appears in two families", keys[i])
		}
	}
}

// TestExpiryIndexKeysOrderByHeight verifies end-height index keys sort in
// height order. The expiry sweep iterates this index and stops at the first
// unexpired entry, which is only correct when the height bytes compare
// big endian.
func TestExpiryIndexKeysOrderByHeight(t *testing.T) {
	heights := []int64{0, 1, 143, 144, 255, 256, 1 << 20, 1 << 40}

	for i := 1; i < len(heights); i++ {
		lower := marketkeeper.AuctionByEndHeightKey(heights[i-1], 99)
		higher := marketkeeper.AuctionByEndHeightKey(heights[i], 1)
		require.Negative(t, bytes.Compare(lower, higher),
			"key for height %d does not sort before key for height %d", heights[i-1], heights[i])
	}

	// Ties on height break by auction id, also big endian.
	first := marketkeeper.AuctionByEndHeightKey(144, 1)
	second := marketkeeper.AuctionByEndHeightKey(144, 2)
	require.Negative(t, bytes.Compare(first, second))
}

// TestProviderIndexKeysAreInjective verifies the length-prefixed provider
// index cannot alias two distinct provider and id pairs.
func TestProviderIndexKeysAreInjective(t *testing.T) {
	shortAddr := sdk.AccAddress(bytes.Repeat([]byte{0x01}, 19))
	longAddr := sdk.AccAddress(append(bytes.Repeat([]byte{0x01}, 19), 0x00))

	shortKey := marketkeeper.ResourceByProviderKey(shortAddr, 7)
	longKey := marketkeeper.ResourceByProviderKey(longAddr, 7)
	require.False(t, bytes.Equal(shortKey, longKey), "length prefix failed to separate %x and %x", shortAddr, longAddr)

	// The iterator prefix for one provider must never cover another
	// provider's keys.
	iterPrefix := marketkeeper.ResourceByProviderIteratorPrefix(shortAddr)
	require.True(t, bytes.HasPrefix(shortKey, iterPrefix))
	require.False(t, bytes.HasPrefix(longKey, iterPrefix))
}
