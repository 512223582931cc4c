package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testutilkeeper "github.com/grid-chain/grid/testutil/keeper"
	"github.com/grid-chain/grid/x/market/keeper"
	"github.com/grid-chain/grid/x/market/types"
)

func setupKeeper(t testing.TB) (keeper.Keeper, sdk.Context) {
	return testutilkeeper.MarketKeeper(t)
}

func testAddr(name string) sdk.AccAddress {
	return sdk.AccAddress([]byte(name))
}

func testSpec() types.ResourceSpec {
	return types.ResourceSpec{
		GpuCount: 2,
		CpuCores: 16,
		MemoryGb: 64,
	}
}

// settledJob runs an auction from creation through settlement and returns
// the resulting job id. The bidder is funded with exactly the bid amount.
func settledJob(t *testing.T, k keeper.Keeper, ctx sdk.Context, requester, bidder sdk.AccAddress, startingPrice, bid math.Int) (sdk.Context, uint64) {
	t.Helper()

	auctionID := k.AppendAuction(ctx, requester, testSpec(), 24, startingPrice)

	k.CreditBalance(ctx, bidder, bid)
	require.NoError(t, k.PlaceBid(ctx, bidder, auctionID, bid))

	ctx = ctx.WithBlockHeight(ctx.BlockHeight() + types.AuctionDurationBlocks)
	jobID, err := k.EndAuction(ctx, auctionID)
	require.NoError(t, err)
	require.NotEqual(t, types.NoWinnerJobID, jobID)

	return ctx, jobID
}
