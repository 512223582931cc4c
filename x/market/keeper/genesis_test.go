package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/grid-chain/grid/x/market/types"
)

func TestGenesis_RoundTrip(t *testing.T) {
	k, ctx := setupKeeper(t)
	ctx = ctx.WithBlockHeight(100)
	requester := testAddr("requester________1")
	provider := testAddr("provider_________1")
	bidder := testAddr("bidder___________1")

	// Build real state through the keeper: a listing, a settled auction
	// with its job and escrows, an open auction, a balance and one
	// released milestone feeding the treasury.
	k.AppendResource(ctx, provider, testSpec(), math.NewInt(2500))
	ctx, jobID := settledJob(t, k, ctx, requester, bidder, math.NewInt(100), math.NewInt(200))
	require.NoError(t, k.ReleaseMilestone(ctx, requester, jobID, 0))
	k.AppendAuction(ctx, requester, testSpec(), 12, math.NewInt(500))
	k.CreditBalance(ctx, requester, math.NewInt(777))

	exported := k.ExportGenesis(ctx)
	require.NoError(t, exported.Validate())

	// Import into a fresh keeper and the state reads back identically.
	k2, ctx2 := setupKeeper(t)
	ctx2 = ctx2.WithBlockHeight(ctx.BlockHeight())
	k2.InitGenesis(ctx2, *exported)

	require.Equal(t, k.GetAllResources(ctx), k2.GetAllResources(ctx2))
	require.Equal(t, k.GetAllAuctions(ctx), k2.GetAllAuctions(ctx2))
	require.Equal(t, k.GetAllJobs(ctx), k2.GetAllJobs(ctx2))
	require.Equal(t, k.GetAllEscrowEntries(ctx), k2.GetAllEscrowEntries(ctx2))
	require.Equal(t, k.GetAllBalances(ctx), k2.GetAllBalances(ctx2))
	require.Equal(t, k.GetAllReputations(ctx), k2.GetAllReputations(ctx2))
	require.Equal(t, k.GetTreasury(ctx), k2.GetTreasury(ctx2))
	require.Equal(t, k.GetNextResourceID(ctx), k2.GetNextResourceID(ctx2))
	require.Equal(t, k.GetNextAuctionID(ctx), k2.GetNextAuctionID(ctx2))
	require.Equal(t, k.GetNextJobID(ctx), k2.GetNextJobID(ctx2))
	require.Equal(t, k.GetParams(ctx), k2.GetParams(ctx2))
}

func TestInitGenesis_RepairsStaleCounters(t *testing.T) {
	k, ctx := setupKeeper(t)

	genState := types.DefaultGenesis()
	genState.Resources = []types.ComputeResource{
		{Id: 7, Provider: testAddr("provider_________1").String(), HourlyRate: math.NewInt(100), Available: true},
	}
	// A counter at or below the highest stored id would hand out a
	// duplicate; init bumps it past the maximum.
	genState.NextResourceId = 3

	k.InitGenesis(ctx, *genState)

	require.Equal(t, uint64(8), k.GetNextResourceID(ctx))

	id := k.AppendResource(ctx, testAddr("provider_________2"), testSpec(), math.NewInt(50))
	require.Equal(t, uint64(8), id)
}

func TestInitGenesis_RequeuesOpenAuctions(t *testing.T) {
	k, ctx := setupKeeper(t)

	genState := types.DefaultGenesis()
	genState.Auctions = []types.Auction{
		{
			Id:            1,
			Requester:     testAddr("requester________1").String(),
			StartingPrice: math.NewInt(100),
			CurrentBid:    math.NewInt(100),
			EndHeight:     50,
			Ended:         false,
		},
		{
			Id:            2,
			Requester:     testAddr("requester________1").String(),
			StartingPrice: math.NewInt(100),
			CurrentBid:    math.NewInt(100),
			EndHeight:     50,
			Ended:         true,
		},
	}
	genState.NextAuctionId = 3

	k.InitGenesis(ctx, *genState)

	// Only the open auction re-enters the expiry queue.
	expired := k.CollectExpiredAuctions(ctx, 50, 100)
	require.Len(t, expired, 1)
	require.Equal(t, uint64(1), expired[0].Id)
}

func TestExportGenesis_Default(t *testing.T) {
	k, ctx := setupKeeper(t)

	exported := k.ExportGenesis(ctx)
	require.NoError(t, exported.Validate())
	require.Equal(t, types.DefaultParams(), exported.Params)
	require.Empty(t, exported.Resources)
	require.Empty(t, exported.Auctions)
	require.Empty(t, exported.Jobs)
	require.Equal(t, uint64(1), exported.NextResourceId)
	require.Equal(t, uint64(1), exported.NextAuctionId)
	require.Equal(t, uint64(1), exported.NextJobId)
	require.True(t, exported.Treasury.IsZero())
}
