package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	"cosmossdk.io/store/prefix"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/grid-chain/grid/x/market/types"
)

// AppendResource stores a new listing under the next sequential id and
// returns that id. Listings are accepted as given: zero capacities and a
// zero rate are valid, and nothing is checked against other state.
func (k Keeper) AppendResource(ctx sdk.Context, provider sdk.AccAddress, spec types.ResourceSpec, hourlyRate math.Int) uint64 {
	id := k.GetNextResourceID(ctx)

	resource := types.ComputeResource{
		Id:            id,
		Provider:      provider.String(),
		Spec:          spec,
		HourlyRate:    hourlyRate,
		Available:     true,
		CreatedHeight: ctx.BlockHeight(),
	}
	k.SetResource(ctx, resource)
	k.setNextResourceID(ctx, id+1)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeResourceListed,
		sdk.NewAttribute(types.AttributeKeyResourceID, fmt.Sprintf("%d", id)),
		sdk.NewAttribute(types.AttributeKeyOwner, resource.Provider),
		sdk.NewAttribute(types.AttributeKeyHourlyRate, hourlyRate.String()),
	))

	return id
}

// SetResource writes a listing and its provider index entry.
func (k Keeper) SetResource(ctx sdk.Context, resource types.ComputeResource) {
	store := ctx.KVStore(k.storeKey)
	store.Set(ResourceKey(resource.Id), mustMarshal(&resource))

	provider, err := sdk.AccAddressFromBech32(resource.Provider)
	if err != nil {
		panic(err)
	}
	store.Set(ResourceByProviderKey(provider, resource.Id), uint64ToBytes(resource.Id))
}

// GetResource returns the listing with the given id.
func (k Keeper) GetResource(ctx sdk.Context, id uint64) (types.ComputeResource, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(ResourceKey(id))
	if bz == nil {
		return types.ComputeResource{}, false
	}
	var resource types.ComputeResource
	mustUnmarshal(bz, &resource)
	return resource, true
}

// GetNextResourceID returns the id the next listing will receive. Ids start
// at 1.
func (k Keeper) GetNextResourceID(ctx sdk.Context) uint64 {
	bz := ctx.KVStore(k.storeKey).Get(ResourceCountKey)
	if bz == nil {
		return 1
	}
	return sdk.BigEndianToUint64(bz)
}

func (k Keeper) setNextResourceID(ctx sdk.Context, id uint64) {
	ctx.KVStore(k.storeKey).Set(ResourceCountKey, uint64ToBytes(id))
}

// IterateResources visits every listing in id order until cb returns true.
func (k Keeper) IterateResources(ctx sdk.Context, cb func(types.ComputeResource) bool) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), ResourceKeyPrefix)
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var resource types.ComputeResource
		mustUnmarshal(iterator.Value(), &resource)
		if cb(resource) {
			break
		}
	}
}

// GetAllResources returns every listing, ordered by id.
func (k Keeper) GetAllResources(ctx sdk.Context) []types.ComputeResource {
	var resources []types.ComputeResource
	k.IterateResources(ctx, func(resource types.ComputeResource) bool {
		resources = append(resources, resource)
		return false
	})
	return resources
}
