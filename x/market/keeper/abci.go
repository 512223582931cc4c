package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/grid-chain/grid/x/market/types"
)

// EndBlocker flags auctions whose bidding window closed at or before this
// block and that still await a settlement call. Settlement itself stays
// permissionless through MsgEndAuction; the end blocker only announces
// expiry so off-chain settlers know where to look.
func (k Keeper) EndBlocker(ctx context.Context) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	params := k.GetParams(sdkCtx)
	if !params.ExpirySweepEnabled {
		return nil
	}

	expired := k.CollectExpiredAuctions(sdkCtx, sdkCtx.BlockHeight(), params.ExpirySweepLimit)
	for _, auction := range expired {
		sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeAuctionExpired,
			sdk.NewAttribute(types.AttributeKeyAuctionID, fmt.Sprintf("%d", auction.Id)),
			sdk.NewAttribute(types.AttributeKeyEndHeight, fmt.Sprintf("%d", auction.EndHeight)),
			sdk.NewAttribute(types.AttributeKeyHeight, fmt.Sprintf("%d", sdkCtx.BlockHeight())),
		))
		GetMetrics().AuctionsExpired.Inc()
	}

	if len(expired) > 0 {
		k.Logger(sdkCtx).Info("auctions awaiting settlement",
			"count", len(expired),
			"height", sdkCtx.BlockHeight(),
		)
	}
	return nil
}
