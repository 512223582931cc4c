package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/grid-chain/grid/x/market/keeper"
	"github.com/grid-chain/grid/x/market/types"
)

func TestInvariants_HealthyState(t *testing.T) {
	k, ctx := setupKeeper(t)
	ctx = ctx.WithBlockHeight(10)
	requester := testAddr("requester________1")
	provider := testAddr("provider_________1")

	k.AppendResource(ctx, provider, testSpec(), math.NewInt(2500))
	ctx, jobID := settledJob(t, k, ctx, requester, provider, math.NewInt(100), math.NewInt(200))
	require.NoError(t, k.ReleaseMilestone(ctx, requester, jobID, 0))
	k.AppendAuction(ctx, requester, testSpec(), 24, math.NewInt(500))
	k.CreditBalance(ctx, testAddr("holder___________1"), math.NewInt(777))

	msg, broken := keeper.AllInvariants(k)(ctx)
	require.False(t, broken, msg)
}

func TestInvariants_EscrowAccounting(t *testing.T) {
	k, ctx := setupKeeper(t)
	ctx = ctx.WithBlockHeight(10)
	requester := testAddr("requester________1")
	provider := testAddr("provider_________1")

	ctx, jobID := settledJob(t, k, ctx, requester, provider, math.NewInt(100), math.NewInt(200))

	entries := k.GetJobEscrows(ctx, jobID)
	require.Len(t, entries, 3)

	// Inflate one entry so the escrow sum no longer matches the payment.
	entries[1].Amount = entries[1].Amount.AddRaw(1)
	k.SetEscrowEntry(ctx, entries[1])

	_, broken := keeper.EscrowAccountingInvariant(k)(ctx)
	require.True(t, broken)
}

func TestInvariants_EscrowReleaseCount(t *testing.T) {
	k, ctx := setupKeeper(t)
	ctx = ctx.WithBlockHeight(10)
	requester := testAddr("requester________1")
	provider := testAddr("provider_________1")

	ctx, jobID := settledJob(t, k, ctx, requester, provider, math.NewInt(100), math.NewInt(200))

	// Mark an entry released without advancing the job's counter.
	entries := k.GetJobEscrows(ctx, jobID)
	entries[0].Released = true
	k.SetEscrowEntry(ctx, entries[0])

	_, broken := keeper.EscrowAccountingInvariant(k)(ctx)
	require.True(t, broken)
}

func TestInvariants_JobMilestones(t *testing.T) {
	requester := testAddr("requester________1")
	provider := testAddr("provider_________1")

	tests := []struct {
		name string
		job  types.Job
	}{
		{
			name: "reserved no-winner id",
			job: types.Job{
				Id:             types.NoWinnerJobID,
				Requester:      requester.String(),
				Provider:       provider.String(),
				TotalPayment:   math.NewInt(100),
				MilestoneCount: 3,
			},
		},
		{
			name: "zero milestones",
			job: types.Job{
				Id:             7,
				Requester:      requester.String(),
				Provider:       provider.String(),
				TotalPayment:   math.NewInt(100),
				MilestoneCount: 0,
			},
		},
		{
			name: "completed exceeds count",
			job: types.Job{
				Id:                  7,
				Requester:           requester.String(),
				Provider:            provider.String(),
				TotalPayment:        math.NewInt(100),
				MilestoneCount:      3,
				CompletedMilestones: 4,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k, ctx := setupKeeper(t)
			k.SetJob(ctx, tc.job)

			_, broken := keeper.JobMilestonesInvariant(k)(ctx)
			require.True(t, broken)
		})
	}
}

func TestInvariants_AuctionBids(t *testing.T) {
	k, ctx := setupKeeper(t)
	ctx = ctx.WithBlockHeight(10)
	requester := testAddr("requester________1")

	id := k.AppendAuction(ctx, requester, testSpec(), 24, math.NewInt(100))

	_, broken := keeper.AuctionBidsInvariant(k)(ctx)
	require.False(t, broken)

	auction, found := k.GetAuction(ctx, id)
	require.True(t, found)
	auction.CurrentBid = math.NewInt(50)
	k.SetAuction(ctx, auction)

	_, broken = keeper.AuctionBidsInvariant(k)(ctx)
	require.True(t, broken)

	auction.CurrentBid = auction.StartingPrice
	auction.CurrentBidder = testAddr("bidder___________1").String()
	k.SetAuction(ctx, auction)

	_, broken = keeper.AuctionBidsInvariant(k)(ctx)
	require.True(t, broken)
}

func TestInvariants_ReputationBounds(t *testing.T) {
	k, ctx := setupKeeper(t)
	provider := testAddr("provider_________1")

	k.SetReputation(ctx, types.ReputationRecord{
		Provider:      provider.String(),
		Score:         150,
		CompletedJobs: 1,
		TotalJobs:     1,
		TotalEarned:   math.NewInt(100),
	})

	_, broken := keeper.ReputationBoundsInvariant(k)(ctx)
	require.True(t, broken)

	k.SetReputation(ctx, types.ReputationRecord{
		Provider:      provider.String(),
		Score:         100,
		CompletedJobs: 2,
		TotalJobs:     1,
		TotalEarned:   math.NewInt(100),
	})

	_, broken = keeper.ReputationBoundsInvariant(k)(ctx)
	require.True(t, broken)
}

func TestInvariants_IDCounters(t *testing.T) {
	k, ctx := setupKeeper(t)
	provider := testAddr("provider_________1")

	k.AppendResource(ctx, provider, testSpec(), math.NewInt(100))

	_, broken := keeper.IDCountersInvariant(k)(ctx)
	require.False(t, broken)

	// A record at or above the counter would hand out a duplicate id.
	k.SetResource(ctx, types.ComputeResource{
		Id:         50,
		Provider:   provider.String(),
		Spec:       testSpec(),
		HourlyRate: math.NewInt(100),
	})

	_, broken = keeper.IDCountersInvariant(k)(ctx)
	require.True(t, broken)
}
