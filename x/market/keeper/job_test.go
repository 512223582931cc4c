package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/grid-chain/grid/x/market/types"
)

func TestSubmitExecutionProof(t *testing.T) {
	k, ctx := setupKeeper(t)
	ctx = ctx.WithBlockHeight(100)
	requester := testAddr("requester________1")
	provider := testAddr("provider_________1")

	ctx, jobID := settledJob(t, k, ctx, requester, provider, math.NewInt(100), math.NewInt(200))

	require.NoError(t, k.SubmitExecutionProof(ctx, provider, jobID, "a1b2c3"))

	job, _ := k.GetJob(ctx, jobID)
	require.Equal(t, "a1b2c3", job.ExecutionProof)
	require.Equal(t, types.JOB_STATUS_COMPLETED, job.Status)
}

func TestSubmitExecutionProof_NotProvider(t *testing.T) {
	k, ctx := setupKeeper(t)
	ctx = ctx.WithBlockHeight(100)
	requester := testAddr("requester________1")
	provider := testAddr("provider_________1")

	ctx, jobID := settledJob(t, k, ctx, requester, provider, math.NewInt(100), math.NewInt(200))

	// Neither the requester nor a stranger may submit.
	err := k.SubmitExecutionProof(ctx, requester, jobID, "a1b2c3")
	require.ErrorIs(t, err, types.ErrNotAuthorized)

	err = k.SubmitExecutionProof(ctx, testAddr("stranger_________1"), jobID, "a1b2c3")
	require.ErrorIs(t, err, types.ErrNotAuthorized)

	job, _ := k.GetJob(ctx, jobID)
	require.Empty(t, job.ExecutionProof)
	require.Equal(t, types.JOB_STATUS_ACTIVE, job.Status)
}

func TestSubmitExecutionProof_Terminal(t *testing.T) {
	k, ctx := setupKeeper(t)
	ctx = ctx.WithBlockHeight(100)
	requester := testAddr("requester________1")
	provider := testAddr("provider_________1")

	ctx, jobID := settledJob(t, k, ctx, requester, provider, math.NewInt(100), math.NewInt(200))

	require.NoError(t, k.SubmitExecutionProof(ctx, provider, jobID, "first"))

	// Completion is terminal; the proof cannot be replaced.
	err := k.SubmitExecutionProof(ctx, provider, jobID, "second")
	require.ErrorIs(t, err, types.ErrAlreadyCompleted)

	job, _ := k.GetJob(ctx, jobID)
	require.Equal(t, "first", job.ExecutionProof)
}

func TestSubmitExecutionProof_JobNotFound(t *testing.T) {
	k, ctx := setupKeeper(t)

	err := k.SubmitExecutionProof(ctx, testAddr("provider_________1"), 42, "a1b2c3")
	require.ErrorIs(t, err, types.ErrJobNotFound)
}

func TestReleaseMilestone_PaysProviderMinusFee(t *testing.T) {
	k, ctx := setupKeeper(t)
	ctx = ctx.WithBlockHeight(100)
	requester := testAddr("requester________1")
	provider := testAddr("provider_________1")

	ctx, jobID := settledJob(t, k, ctx, requester, provider, math.NewInt(100), math.NewInt(200))
	require.True(t, k.GetBalance(ctx, provider).IsZero())

	require.NoError(t, k.ReleaseMilestone(ctx, requester, jobID, 0))

	// Milestone 0 holds 66; the 2.5% fee rounds down to 1.
	require.Equal(t, math.NewInt(65), k.GetBalance(ctx, provider))
	require.Equal(t, math.NewInt(1), k.GetTreasury(ctx))

	entry, found := k.GetEscrowEntry(ctx, jobID, 0)
	require.True(t, found)
	require.True(t, entry.Released)

	job, _ := k.GetJob(ctx, jobID)
	require.Equal(t, uint64(1), job.CompletedMilestones)
	require.Equal(t, math.NewInt(134), k.GetEscrowBalance(ctx, jobID))
}

func TestReleaseMilestone_Errors(t *testing.T) {
	k, ctx := setupKeeper(t)
	ctx = ctx.WithBlockHeight(100)
	requester := testAddr("requester________1")
	provider := testAddr("provider_________1")

	ctx, jobID := settledJob(t, k, ctx, requester, provider, math.NewInt(100), math.NewInt(200))
	require.NoError(t, k.ReleaseMilestone(ctx, requester, jobID, 0))

	tests := []struct {
		name      string
		caller    string
		jobID     uint64
		milestone uint64
		wantErr   error
	}{
		{"unknown job", "requester________1", 42, 0, types.ErrJobNotFound},
		{"provider cannot release", "provider_________1", jobID, 1, types.ErrNotAuthorized},
		{"stranger cannot release", "stranger_________1", jobID, 1, types.ErrNotAuthorized},
		{"index out of range", "requester________1", jobID, 3, types.ErrMilestoneNotReady},
		{"double release", "requester________1", jobID, 0, types.ErrAlreadyCompleted},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := k.ReleaseMilestone(ctx, testAddr(tc.caller), tc.jobID, tc.milestone)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}

	// The failed calls changed nothing.
	job, _ := k.GetJob(ctx, jobID)
	require.Equal(t, uint64(1), job.CompletedMilestones)
	require.Equal(t, math.NewInt(65), k.GetBalance(ctx, provider))
}

func TestReleaseMilestone_NoProofRequired(t *testing.T) {
	k, ctx := setupKeeper(t)
	ctx = ctx.WithBlockHeight(100)
	requester := testAddr("requester________1")
	provider := testAddr("provider_________1")

	ctx, jobID := settledJob(t, k, ctx, requester, provider, math.NewInt(100), math.NewInt(200))

	// All three milestones pay out even though no proof was ever
	// submitted; release and proof submission are independent.
	for i := uint64(0); i < types.JobMilestoneCount; i++ {
		require.NoError(t, k.ReleaseMilestone(ctx, requester, jobID, i))
	}

	job, _ := k.GetJob(ctx, jobID)
	require.Empty(t, job.ExecutionProof)
	require.Equal(t, types.JobMilestoneCount, job.CompletedMilestones)
	require.True(t, k.GetEscrowBalance(ctx, jobID).IsZero())
}

func TestReleaseMilestone_FullPayoutAccounting(t *testing.T) {
	k, ctx := setupKeeper(t)
	ctx = ctx.WithBlockHeight(100)
	requester := testAddr("requester________1")
	provider := testAddr("provider_________1")

	ctx, jobID := settledJob(t, k, ctx, requester, provider, math.NewInt(100), math.NewInt(200))

	for i := uint64(0); i < types.JobMilestoneCount; i++ {
		require.NoError(t, k.ReleaseMilestone(ctx, requester, jobID, i))
	}

	// 66-1, 66-1 and 68-1 to the provider, 3 in fees. Nothing is lost.
	provBalance := k.GetBalance(ctx, provider)
	treasury := k.GetTreasury(ctx)
	require.Equal(t, math.NewInt(197), provBalance)
	require.Equal(t, math.NewInt(3), treasury)
	require.Equal(t, math.NewInt(200), provBalance.Add(treasury))
}

func TestReleaseMilestone_StatusDoesNotGateRelease(t *testing.T) {
	k, ctx := setupKeeper(t)
	ctx = ctx.WithBlockHeight(100)
	requester := testAddr("requester________1")
	provider := testAddr("provider_________1")

	ctx, jobID := settledJob(t, k, ctx, requester, provider, math.NewInt(100), math.NewInt(200))

	require.NoError(t, k.SubmitExecutionProof(ctx, provider, jobID, "a1b2c3"))
	require.NoError(t, k.ReleaseMilestone(ctx, requester, jobID, 0))

	// Releasing does not touch the status either.
	job, _ := k.GetJob(ctx, jobID)
	require.Equal(t, types.JOB_STATUS_COMPLETED, job.Status)
}

func TestReleaseMilestone_FinalReleaseUpdatesReputationOnce(t *testing.T) {
	k, ctx := setupKeeper(t)
	ctx = ctx.WithBlockHeight(100)
	requester := testAddr("requester________1")
	provider := testAddr("provider_________1")

	ctx, jobID := settledJob(t, k, ctx, requester, provider, math.NewInt(100), math.NewInt(200))

	require.NoError(t, k.ReleaseMilestone(ctx, requester, jobID, 0))
	require.NoError(t, k.ReleaseMilestone(ctx, requester, jobID, 1))

	// Two of three released: reputation untouched, reads default.
	rep := k.GetReputation(ctx, provider)
	require.Zero(t, rep.CompletedJobs)
	require.Zero(t, rep.TotalJobs)
	require.Equal(t, types.DefaultReputationScore, rep.Score)

	require.NoError(t, k.ReleaseMilestone(ctx, requester, jobID, 2))

	// The final release bumps both counters exactly once.
	rep = k.GetReputation(ctx, provider)
	require.Equal(t, uint64(1), rep.CompletedJobs)
	require.Equal(t, uint64(1), rep.TotalJobs)
	require.Equal(t, uint32(100), rep.Score)
	require.Equal(t, math.NewInt(200), rep.TotalEarned)
}

func TestReleaseMilestone_SecondJobAccumulates(t *testing.T) {
	k, ctx := setupKeeper(t)
	ctx = ctx.WithBlockHeight(100)
	requester := testAddr("requester________1")
	provider := testAddr("provider_________1")

	ctx, firstJob := settledJob(t, k, ctx, requester, provider, math.NewInt(100), math.NewInt(200))
	for i := uint64(0); i < types.JobMilestoneCount; i++ {
		require.NoError(t, k.ReleaseMilestone(ctx, requester, firstJob, i))
	}

	ctx, secondJob := settledJob(t, k, ctx, requester, provider, math.NewInt(100), math.NewInt(300))
	for i := uint64(0); i < types.JobMilestoneCount; i++ {
		require.NoError(t, k.ReleaseMilestone(ctx, requester, secondJob, i))
	}

	rep := k.GetReputation(ctx, provider)
	require.Equal(t, uint64(2), rep.CompletedJobs)
	require.Equal(t, uint64(2), rep.TotalJobs)
	require.Equal(t, math.NewInt(500), rep.TotalEarned)
	require.Equal(t, uint32(100), rep.Score)
}
