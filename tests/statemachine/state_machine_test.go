package statemachine_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/suite"

	sdk "github.com/cosmos/cosmos-sdk/types"

	keepertest "github.com/grid-chain/grid/testutil/keeper"
	marketkeeper "github.com/grid-chain/grid/x/market/keeper"
	"github.com/grid-chain/grid/x/market/types"
)

// StateMachineTestSuite walks the marketplace records through every state
// transition and checks that each guard rejects the transitions the state
// does not allow.
type StateMachineTestSuite struct {
	suite.Suite

	keeper    marketkeeper.Keeper
	ctx       sdk.Context
	requester sdk.AccAddress
	provider  sdk.AccAddress
	rival     sdk.AccAddress
}

func TestStateMachineTestSuite(t *testing.T) {
	suite.Run(t, new(StateMachineTestSuite))
}

func (suite *StateMachineTestSuite) SetupTest() {
	k, ctx := keepertest.MarketKeeper(suite.T())
	suite.keeper = k
	suite.ctx = ctx.WithBlockHeight(100)

	suite.requester = sdk.AccAddress([]byte("sm_requester_addr___"))
	suite.provider = sdk.AccAddress([]byte("sm_provider_addr____"))
	suite.rival = sdk.AccAddress([]byte("sm_rival_addr_______"))

	suite.keeper.CreditBalance(suite.ctx, suite.provider, math.NewInt(1_000_000))
	suite.keeper.CreditBalance(suite.ctx, suite.rival, math.NewInt(1_000_000))
}

// openAuction creates an auction and returns its id, leaving it in the
// open, no-bidder state.
func (suite *StateMachineTestSuite) openAuction(startingPrice int64) uint64 {
	return suite.keeper.AppendAuction(
		suite.ctx,
		suite.requester,
		types.ResourceSpec{GpuCount: 1, CpuCores: 8, MemoryGb: 32},
		24,
		math.NewInt(startingPrice),
	)
}

// settleWithWinner drives an auction through bid and settlement and returns
// the resulting job id.
func (suite *StateMachineTestSuite) settleWithWinner() uint64 {
	auctionID := suite.openAuction(1_000)
	suite.Require().NoError(suite.keeper.PlaceBid(suite.ctx, suite.provider, auctionID, math.NewInt(5_000)))

	endCtx := suite.ctx.WithBlockHeight(suite.ctx.BlockHeight() + types.AuctionDurationBlocks)
	jobID, err := suite.keeper.EndAuction(endCtx, auctionID)
	suite.Require().NoError(err)
	suite.Require().NotEqual(types.NoWinnerJobID, jobID)
	return jobID
}

// TestAuctionTransitions covers open -> outbid -> settled and the guards
// around the bidding window.
func (suite *StateMachineTestSuite) TestAuctionTransitions() {
	auctionID := suite.openAuction(1_000)

	// Open, no bidder: the standing bid is the starting price.
	auction, found := suite.keeper.GetAuction(suite.ctx, auctionID)
	suite.Require().True(found)
	suite.Require().False(auction.HasBidder())
	suite.Require().Equal(math.NewInt(1_000), auction.CurrentBid)

	// Open -> open with bidder.
	suite.Require().NoError(suite.keeper.PlaceBid(suite.ctx, suite.provider, auctionID, math.NewInt(2_000)))

	// A bid at the standing price is not a transition.
	err := suite.keeper.PlaceBid(suite.ctx, suite.rival, auctionID, math.NewInt(2_000))
	suite.Require().ErrorIs(err, types.ErrBidTooLow)

	// Displacement keeps the auction open and swaps the bidder.
	suite.Require().NoError(suite.keeper.PlaceBid(suite.ctx, suite.rival, auctionID, math.NewInt(3_000)))
	auction, _ = suite.keeper.GetAuction(suite.ctx, auctionID)
	suite.Require().Equal(suite.rival.String(), auction.CurrentBidder)

	// Settlement before the window closes is not a transition.
	_, err = suite.keeper.EndAuction(suite.ctx, auctionID)
	suite.Require().ErrorIs(err, types.ErrAuctionActive)

	// Open -> ended.
	endCtx := suite.ctx.WithBlockHeight(suite.ctx.BlockHeight() + types.AuctionDurationBlocks)
	jobID, err := suite.keeper.EndAuction(endCtx, auctionID)
	suite.Require().NoError(err)
	suite.Require().NotEqual(types.NoWinnerJobID, jobID)

	// Ended is absorbing: no more bids, no second settlement.
	err = suite.keeper.PlaceBid(endCtx, suite.provider, auctionID, math.NewInt(9_000))
	suite.Require().ErrorIs(err, types.ErrAuctionEnded)
	_, err = suite.keeper.EndAuction(endCtx, auctionID)
	suite.Require().ErrorIs(err, types.ErrAlreadyCompleted)
}

// TestAuctionNoWinnerTransition covers the expiry path for an auction that
// never attracted a bid.
func (suite *StateMachineTestSuite) TestAuctionNoWinnerTransition() {
	auctionID := suite.openAuction(1_000)

	endCtx := suite.ctx.WithBlockHeight(suite.ctx.BlockHeight() + types.AuctionDurationBlocks)
	jobID, err := suite.keeper.EndAuction(endCtx, auctionID)
	suite.Require().NoError(err)
	suite.Require().Equal(types.NoWinnerJobID, jobID)

	auction, _ := suite.keeper.GetAuction(endCtx, auctionID)
	suite.Require().True(auction.Ended)

	// No job materialized from the empty settlement.
	suite.Require().Empty(suite.keeper.GetAllJobs(endCtx))
}

// TestJobProofTransitions covers active -> completed and the guards on the
// proof path.
func (suite *StateMachineTestSuite) TestJobProofTransitions() {
	jobID := suite.settleWithWinner()

	job, found := suite.keeper.GetJob(suite.ctx, jobID)
	suite.Require().True(found)
	suite.Require().Equal(types.JOB_STATUS_ACTIVE, job.Status)

	// Only the provider may drive the transition.
	err := suite.keeper.SubmitExecutionProof(suite.ctx, suite.rival, jobID, "sha256:bogus")
	suite.Require().ErrorIs(err, types.ErrNotAuthorized)

	// Active -> completed.
	suite.Require().NoError(suite.keeper.SubmitExecutionProof(suite.ctx, suite.provider, jobID, "sha256:feedface"))
	job, _ = suite.keeper.GetJob(suite.ctx, jobID)
	suite.Require().Equal(types.JOB_STATUS_COMPLETED, job.Status)
	suite.Require().Equal("sha256:feedface", job.ExecutionProof)

	// Completed is absorbing for the proof path.
	err = suite.keeper.SubmitExecutionProof(suite.ctx, suite.provider, jobID, "sha256:again")
	suite.Require().ErrorIs(err, types.ErrAlreadyCompleted)
	job, _ = suite.keeper.GetJob(suite.ctx, jobID)
	suite.Require().Equal("sha256:feedface", job.ExecutionProof)

	// A proof against a job that does not exist transitions nothing.
	err = suite.keeper.SubmitExecutionProof(suite.ctx, suite.provider, jobID+100, "sha256:void")
	suite.Require().ErrorIs(err, types.ErrJobNotFound)
}

// TestMilestoneTransitions covers held -> released per milestone and the
// completion counter.
func (suite *StateMachineTestSuite) TestMilestoneTransitions() {
	jobID := suite.settleWithWinner()

	// Only the requester may release.
	err := suite.keeper.ReleaseMilestone(suite.ctx, suite.provider, jobID, 0)
	suite.Require().ErrorIs(err, types.ErrNotAuthorized)

	// An index beyond the schedule is not a milestone.
	err = suite.keeper.ReleaseMilestone(suite.ctx, suite.requester, jobID, types.JobMilestoneCount)
	suite.Require().ErrorIs(err, types.ErrMilestoneNotReady)

	// Held -> released, one milestone at a time, in any order.
	for i, index := range []uint64{2, 0, 1} {
		suite.Require().NoError(suite.keeper.ReleaseMilestone(suite.ctx, suite.requester, jobID, index))

		job, _ := suite.keeper.GetJob(suite.ctx, jobID)
		suite.Require().Equal(uint64(i+1), job.CompletedMilestones)

		// Released is absorbing per milestone.
		err = suite.keeper.ReleaseMilestone(suite.ctx, suite.requester, jobID, index)
		suite.Require().ErrorIs(err, types.ErrAlreadyCompleted)
	}

	// All escrow has left the module once every milestone released.
	suite.Require().True(suite.keeper.GetEscrowBalance(suite.ctx, jobID).IsZero())
}
