package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	"cosmossdk.io/store/prefix"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/grid-chain/grid/x/market/types"
)

// GetReputation returns a provider's reputation record. Providers with no
// history get the neutral default, score 50 with zeroed counters; the
// default is not written back on read.
func (k Keeper) GetReputation(ctx sdk.Context, provider sdk.AccAddress) types.ReputationRecord {
	bz := ctx.KVStore(k.storeKey).Get(ReputationKey(provider))
	if bz == nil {
		return types.NewReputationRecord(provider.String())
	}
	var record types.ReputationRecord
	mustUnmarshal(bz, &record)
	return record
}

// SetReputation writes a provider's reputation record.
func (k Keeper) SetReputation(ctx sdk.Context, record types.ReputationRecord) {
	provider, err := sdk.AccAddressFromBech32(record.Provider)
	if err != nil {
		panic(err)
	}
	ctx.KVStore(k.storeKey).Set(ReputationKey(provider), mustMarshal(&record))
}

// recordJobCompletion folds one fully settled job into the provider's
// record and emits the updated standing.
func (k Keeper) recordJobCompletion(ctx sdk.Context, provider sdk.AccAddress, earned math.Int) {
	record := k.GetReputation(ctx, provider)
	record.RecordCompletion(earned)
	k.SetReputation(ctx, record)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeReputationUpdated,
		sdk.NewAttribute(types.AttributeKeyProvider, record.Provider),
		sdk.NewAttribute(types.AttributeKeyScore, fmt.Sprintf("%d", record.Score)),
		sdk.NewAttribute(types.AttributeKeyCompletedJobs, fmt.Sprintf("%d", record.CompletedJobs)),
		sdk.NewAttribute(types.AttributeKeyTotalJobs, fmt.Sprintf("%d", record.TotalJobs)),
		sdk.NewAttribute(types.AttributeKeyTotalEarned, record.TotalEarned.String()),
	))
}

// GetAllReputations returns every stored reputation record, ordered by
// provider address bytes. Providers still on the unwritten default are not
// included.
func (k Keeper) GetAllReputations(ctx sdk.Context) []types.ReputationRecord {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), ReputationKeyPrefix)
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	var records []types.ReputationRecord
	for ; iterator.Valid(); iterator.Next() {
		var record types.ReputationRecord
		mustUnmarshal(iterator.Value(), &record)
		records = append(records, record)
	}
	return records
}
