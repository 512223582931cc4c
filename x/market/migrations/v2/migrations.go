package v2

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"

	"github.com/grid-chain/grid/x/market/types"
)

var (
	// Key prefixes - must match the keeper
	ResourceKeyPrefix        = []byte{0x10}
	ResourceCountKey         = []byte{0x11}
	ResourceByProviderPrefix = []byte{0x12}
	AuctionKeyPrefix         = []byte{0x20}
	AuctionCountKey          = []byte{0x21}
	AuctionByEndHeightPrefix = []byte{0x22}
	JobKeyPrefix             = []byte{0x30}
	JobCountKey              = []byte{0x31}
	ReputationKeyPrefix      = []byte{0x50}
)

// Migrate implements store migrations from v1 to v2 for the market module.
// This migration performs the following operations:
// 1. Rebuilds the resource by-provider index
// 2. Rebuilds the auction expiry queue from live auctions
// 3. Validates and fixes reputation records
// 4. Validates id counter consistency
//
// The migration is idempotent and can be safely run multiple times.
func Migrate(ctx sdk.Context, storeKey storetypes.StoreKey) error {
	ctx.Logger().Info("Starting market module v1 to v2 migration")

	store := ctx.KVStore(storeKey)

	if err := rebuildProviderIndex(ctx, store); err != nil {
		return fmt.Errorf("failed to rebuild provider index: %w", err)
	}

	if err := rebuildExpiryQueue(ctx, store); err != nil {
		return fmt.Errorf("failed to rebuild expiry queue: %w", err)
	}

	if err := validateReputations(ctx, store); err != nil {
		return fmt.Errorf("failed to validate reputations: %w", err)
	}

	if err := validateCounters(ctx, store); err != nil {
		return fmt.Errorf("failed to validate id counters: %w", err)
	}

	ctx.Logger().Info("Market module v1 to v2 migration completed successfully")
	return nil
}

// rebuildProviderIndex rebuilds the resource by-provider secondary index
func rebuildProviderIndex(ctx sdk.Context, store storetypes.KVStore) error {
	ctx.Logger().Info("Rebuilding resource provider index")

	clearPrefix(store, ResourceByProviderPrefix)

	iterator := storetypes.KVStorePrefixIterator(store, ResourceKeyPrefix)
	defer iterator.Close()

	count := 0
	for ; iterator.Valid(); iterator.Next() {
		var resource types.ComputeResource
		if err := json.Unmarshal(iterator.Value(), &resource); err != nil {
			return fmt.Errorf("failed to unmarshal resource: %w", err)
		}

		provider, err := sdk.AccAddressFromBech32(resource.Provider)
		if err != nil {
			ctx.Logger().Error("invalid provider address in resource", "resource_id", resource.Id, "provider", resource.Provider)
			continue
		}

		key := append(ResourceByProviderPrefix, address.MustLengthPrefix(provider)...)
		key = append(key, idBytes(resource.Id)...)
		store.Set(key, idBytes(resource.Id))
		count++
	}

	ctx.Logger().Info("Resource provider index rebuilt", "count", count)
	return nil
}

// rebuildExpiryQueue rebuilds the auction expiry queue. Only auctions still
// awaiting settlement are queued; settled auctions never expire again.
func rebuildExpiryQueue(ctx sdk.Context, store storetypes.KVStore) error {
	ctx.Logger().Info("Rebuilding auction expiry queue")

	clearPrefix(store, AuctionByEndHeightPrefix)

	iterator := storetypes.KVStorePrefixIterator(store, AuctionKeyPrefix)
	defer iterator.Close()

	queued := 0
	for ; iterator.Valid(); iterator.Next() {
		var auction types.Auction
		if err := json.Unmarshal(iterator.Value(), &auction); err != nil {
			return fmt.Errorf("failed to unmarshal auction: %w", err)
		}

		if auction.Ended {
			continue
		}

		key := append(AuctionByEndHeightPrefix, idBytes(uint64(auction.EndHeight))...)
		key = append(key, idBytes(auction.Id)...)
		store.Set(key, idBytes(auction.Id))
		queued++
	}

	ctx.Logger().Info("Auction expiry queue rebuilt", "queued", queued)
	return nil
}

// validateReputations validates and fixes reputation records
func validateReputations(ctx sdk.Context, store storetypes.KVStore) error {
	ctx.Logger().Info("Validating reputation records")

	iterator := storetypes.KVStorePrefixIterator(store, ReputationKeyPrefix)
	defer iterator.Close()

	fixed := 0
	for ; iterator.Valid(); iterator.Next() {
		var record types.ReputationRecord
		if err := json.Unmarshal(iterator.Value(), &record); err != nil {
			return fmt.Errorf("failed to unmarshal reputation record: %w", err)
		}

		needsUpdate := false

		if record.CompletedJobs > record.TotalJobs {
			ctx.Logger().Warn("fixing job counters", "provider", record.Provider,
				"completed", record.CompletedJobs, "total", record.TotalJobs)
			record.TotalJobs = record.CompletedJobs
			needsUpdate = true
		}

		if record.TotalJobs > 0 {
			expected := record.CompletedJobs * 100 / record.TotalJobs
			if expected > 100 {
				expected = 100
			}
			if uint64(record.Score) != expected {
				ctx.Logger().Warn("recalculating reputation score", "provider", record.Provider,
					"old", record.Score, "new", expected)
				record.Score = uint32(expected)
				needsUpdate = true
			}
		} else if record.Score > 100 {
			ctx.Logger().Warn("fixing score above 100", "provider", record.Provider, "old", record.Score)
			record.Score = 100
			needsUpdate = true
		}

		if needsUpdate {
			bz, err := json.Marshal(&record)
			if err != nil {
				return fmt.Errorf("failed to marshal reputation record: %w", err)
			}
			store.Set(iterator.Key(), bz)
			fixed++
		}
	}

	ctx.Logger().Info("Reputation records validated", "fixed", fixed)
	return nil
}

// validateCounters validates and fixes the id counters against stored records
func validateCounters(ctx sdk.Context, store storetypes.KVStore) error {
	ctx.Logger().Info("Validating id counters")

	families := []struct {
		name       string
		recordKey  []byte
		counterKey []byte
	}{
		{"resource", ResourceKeyPrefix, ResourceCountKey},
		{"auction", AuctionKeyPrefix, AuctionCountKey},
		{"job", JobKeyPrefix, JobCountKey},
	}

	for _, family := range families {
		maxID := uint64(0)

		iterator := storetypes.KVStorePrefixIterator(store, family.recordKey)
		for ; iterator.Valid(); iterator.Next() {
			// Record keys are prefix + big endian id
			id := binary.BigEndian.Uint64(iterator.Key()[len(family.recordKey):])
			if id > maxID {
				maxID = id
			}
		}
		iterator.Close()

		current := uint64(0)
		if bz := store.Get(family.counterKey); bz != nil {
			current = binary.BigEndian.Uint64(bz)
		}

		if current <= maxID {
			store.Set(family.counterKey, idBytes(maxID+1))
			ctx.Logger().Info("Updated id counter", "family", family.name, "old", current, "new", maxID+1)
		}
	}

	return nil
}

// Helper functions

func clearPrefix(store storetypes.KVStore, prefix []byte) {
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	var keys [][]byte
	for ; iterator.Valid(); iterator.Next() {
		keys = append(keys, append([]byte(nil), iterator.Key()...))
	}

	for _, key := range keys {
		store.Delete(key)
	}
}

func idBytes(id uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	return bz
}
