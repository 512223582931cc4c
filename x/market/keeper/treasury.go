package keeper

import (
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GetTreasury returns the platform fees accumulated from milestone
// releases.
func (k Keeper) GetTreasury(ctx sdk.Context) math.Int {
	bz := ctx.KVStore(k.storeKey).Get(TreasuryKey)
	if bz == nil {
		return math.ZeroInt()
	}
	var balance math.Int
	if err := balance.Unmarshal(bz); err != nil {
		panic(err)
	}
	return balance
}

func (k Keeper) setTreasury(ctx sdk.Context, balance math.Int) {
	bz, err := balance.Marshal()
	if err != nil {
		panic(err)
	}
	ctx.KVStore(k.storeKey).Set(TreasuryKey, bz)
}

// addToTreasury accrues a platform fee. Fees only accumulate; no operation
// spends from the treasury.
func (k Keeper) addToTreasury(ctx sdk.Context, amount math.Int) {
	k.setTreasury(ctx, k.GetTreasury(ctx).Add(amount))
}
