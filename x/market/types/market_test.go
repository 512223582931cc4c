package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/grid-chain/grid/x/market/types"
)

func TestSplitMilestoneAmounts(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		count    uint64
		expected []int64
	}{
		{"remainder goes to the last share", 200, 3, []int64{66, 66, 68}},
		{"even split", 300, 3, []int64{100, 100, 100}},
		{"single milestone", 200, 1, []int64{200}},
		{"total below count", 2, 3, []int64{0, 0, 2}},
		{"zero total", 0, 3, []int64{0, 0, 0}},
		{"large remainder", 1000, 7, []int64{142, 142, 142, 142, 142, 142, 148}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			amounts := types.SplitMilestoneAmounts(math.NewInt(tc.total), tc.count)
			require.Len(t, amounts, len(tc.expected))

			sum := math.ZeroInt()
			for i, amount := range amounts {
				require.Equal(t, math.NewInt(tc.expected[i]), amount)
				sum = sum.Add(amount)
			}
			require.Equal(t, math.NewInt(tc.total), sum)
		})
	}
}

func TestReputationRecord_RecordCompletion(t *testing.T) {
	record := types.NewReputationRecord("grid1provider")
	require.Equal(t, types.DefaultReputationScore, record.Score)

	record.RecordCompletion(math.NewInt(200))
	require.Equal(t, uint64(1), record.CompletedJobs)
	require.Equal(t, uint64(1), record.TotalJobs)
	require.Equal(t, math.NewInt(200), record.TotalEarned)
	require.Equal(t, uint32(100), record.Score)

	record.RecordCompletion(math.NewInt(300))
	require.Equal(t, uint64(2), record.CompletedJobs)
	require.Equal(t, math.NewInt(500), record.TotalEarned)
	require.Equal(t, uint32(100), record.Score)
}

func TestReputationRecord_ScoreReflectsPartialHistory(t *testing.T) {
	record := types.ReputationRecord{
		Provider:    "grid1provider",
		TotalJobs:   2,
		TotalEarned: math.ZeroInt(),
	}

	record.RecordCompletion(math.NewInt(100))

	// One completion out of three tracked jobs.
	require.Equal(t, uint64(1), record.CompletedJobs)
	require.Equal(t, uint64(3), record.TotalJobs)
	require.Equal(t, uint32(33), record.Score)
}

func TestJobStatus_String(t *testing.T) {
	require.Equal(t, "active", types.JOB_STATUS_ACTIVE.String())
	require.Equal(t, "completed", types.JOB_STATUS_COMPLETED.String())
	require.Equal(t, "disputed", types.JOB_STATUS_DISPUTED.String())
	require.Equal(t, "unknown", types.JobStatus(42).String())
}

func TestAuction_IsActiveAt(t *testing.T) {
	auction := types.Auction{EndHeight: 100}

	require.True(t, auction.IsActiveAt(99))
	require.False(t, auction.IsActiveAt(100))
	require.False(t, auction.IsActiveAt(101))

	auction.Ended = true
	require.False(t, auction.IsActiveAt(99))
}

func TestAuction_HasBidder(t *testing.T) {
	auction := types.Auction{}
	require.False(t, auction.HasBidder())

	auction.CurrentBidder = "grid1bidder"
	require.True(t, auction.HasBidder())
}
