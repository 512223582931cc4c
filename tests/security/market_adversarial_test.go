package security_test

import (
	"flag"
	"fmt"
	"os"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	keepertest "github.com/grid-chain/grid/testutil/keeper"
	marketkeeper "github.com/grid-chain/grid/x/market/keeper"
	"github.com/grid-chain/grid/x/market/types"
)

func TestMain(m *testing.M) {
	flag.Parse()

	if testing.Short() {
		fmt.Println("Skipping security suite in short mode")
		os.Exit(0)
	}

	os.Exit(m.Run())
}

// AdversarialTestSuite attacks the marketplace keeper the way a hostile
// participant would: forged roles, unfunded bids, replayed settlements and
// drain attempts against the escrow.
type AdversarialTestSuite struct {
	suite.Suite

	keeper   marketkeeper.Keeper
	ctx      sdk.Context
	victim   sdk.AccAddress
	attacker sdk.AccAddress
	honest   sdk.AccAddress
}

func TestAdversarialTestSuite(t *testing.T) {
	suite.Run(t, new(AdversarialTestSuite))
}

func (suite *AdversarialTestSuite) SetupTest() {
	k, ctx := keepertest.MarketKeeper(suite.T())
	suite.keeper = k
	suite.ctx = ctx.WithBlockHeight(1000)

	suite.victim = sdk.AccAddress([]byte("sec_victim_addr_____"))
	suite.attacker = sdk.AccAddress([]byte("sec_attacker_addr___"))
	suite.honest = sdk.AccAddress([]byte("sec_honest_addr_____"))

	suite.keeper.CreditBalance(suite.ctx, suite.attacker, math.NewInt(1_000_000))
	suite.keeper.CreditBalance(suite.ctx, suite.honest, math.NewInt(1_000_000))
}

// TestUnfundedBidRejected verifies a bid above the attacker's ledger balance
// cannot take the lead, and that the failed attempt leaves no trace.
func (suite *AdversarialTestSuite) TestUnfundedBidRejected() {
	auctionID := suite.keeper.AppendAuction(suite.ctx, suite.victim, types.ResourceSpec{GpuCount: 1}, 24, math.ZeroInt())
	suite.Require().NoError(suite.keeper.PlaceBid(suite.ctx, suite.honest, auctionID, math.NewInt(500_000)))

	err := suite.keeper.PlaceBid(suite.ctx, suite.attacker, auctionID, math.NewInt(2_000_000))
	suite.Require().ErrorIs(err, types.ErrInsufficientBalance)

	// The honest bidder still leads at the same price, and the attacker's
	// balance never moved.
	auction, _ := suite.keeper.GetAuction(suite.ctx, auctionID)
	suite.Require().Equal(suite.honest.String(), auction.CurrentBidder)
	suite.Require().Equal(math.NewInt(500_000), auction.CurrentBid)
	suite.Require().Equal(math.NewInt(1_000_000), suite.keeper.GetBalance(suite.ctx, suite.attacker))
}

// TestSelfOutbidConservesFunds verifies outbidding yourself refunds the old
// bid before locking the new one, leaving no way to mint or burn ledger
// funds through repeated self-displacement.
func (suite *AdversarialTestSuite) TestSelfOutbidConservesFunds() {
	auctionID := suite.keeper.AppendAuction(suite.ctx, suite.victim, types.ResourceSpec{GpuCount: 1}, 24, math.ZeroInt())

	for _, bid := range []int64{100, 5_000, 400_000, 400_001} {
		suite.Require().NoError(suite.keeper.PlaceBid(suite.ctx, suite.attacker, auctionID, math.NewInt(bid)))

		auction, _ := suite.keeper.GetAuction(suite.ctx, auctionID)
		balance := suite.keeper.GetBalance(suite.ctx, suite.attacker)
		suite.Require().Equal(math.NewInt(1_000_000), balance.Add(auction.CurrentBid),
			"ledger balance and locked bid no longer sum to the initial credit")
	}
}

// TestDoubleSettlementCreatesOneJob verifies racing EndAuction calls cannot
// mint a second job and a second escrow for the same winning bid.
func (suite *AdversarialTestSuite) TestDoubleSettlementCreatesOneJob() {
	auctionID := suite.keeper.AppendAuction(suite.ctx, suite.victim, types.ResourceSpec{GpuCount: 1}, 24, math.ZeroInt())
	suite.Require().NoError(suite.keeper.PlaceBid(suite.ctx, suite.honest, auctionID, math.NewInt(90_000)))

	endCtx := suite.ctx.WithBlockHeight(suite.ctx.BlockHeight() + types.AuctionDurationBlocks)
	jobID, err := suite.keeper.EndAuction(endCtx, auctionID)
	suite.Require().NoError(err)

	_, err = suite.keeper.EndAuction(endCtx, auctionID)
	suite.Require().ErrorIs(err, types.ErrAlreadyCompleted)

	suite.Require().Len(suite.keeper.GetAllJobs(endCtx), 1)
	suite.Require().Equal(math.NewInt(90_000), suite.keeper.GetEscrowBalance(endCtx, jobID))
}

// TestMilestoneReleaseRoleForgery verifies neither the winning provider nor
// a bystander can trigger their own payout.
func (suite *AdversarialTestSuite) TestMilestoneReleaseRoleForgery() {
	auctionID := suite.keeper.AppendAuction(suite.ctx, suite.victim, types.ResourceSpec{GpuCount: 1}, 24, math.ZeroInt())
	suite.Require().NoError(suite.keeper.PlaceBid(suite.ctx, suite.attacker, auctionID, math.NewInt(300_000)))

	endCtx := suite.ctx.WithBlockHeight(suite.ctx.BlockHeight() + types.AuctionDurationBlocks)
	jobID, err := suite.keeper.EndAuction(endCtx, auctionID)
	suite.Require().NoError(err)

	// The provider paying itself is the textbook escrow bypass.
	err = suite.keeper.ReleaseMilestone(endCtx, suite.attacker, jobID, 0)
	suite.Require().ErrorIs(err, types.ErrNotAuthorized)

	err = suite.keeper.ReleaseMilestone(endCtx, suite.honest, jobID, 0)
	suite.Require().ErrorIs(err, types.ErrNotAuthorized)

	suite.Require().Equal(math.NewInt(300_000), suite.keeper.GetEscrowBalance(endCtx, jobID))
}

// TestRepeatedReleaseCannotDrainEscrow verifies a requester replaying the
// same release pays the provider exactly once per milestone.
func (suite *AdversarialTestSuite) TestRepeatedReleaseCannotDrainEscrow() {
	auctionID := suite.keeper.AppendAuction(suite.ctx, suite.victim, types.ResourceSpec{GpuCount: 1}, 24, math.ZeroInt())
	suite.Require().NoError(suite.keeper.PlaceBid(suite.ctx, suite.honest, auctionID, math.NewInt(600_000)))

	endCtx := suite.ctx.WithBlockHeight(suite.ctx.BlockHeight() + types.AuctionDurationBlocks)
	jobID, err := suite.keeper.EndAuction(endCtx, auctionID)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.keeper.ReleaseMilestone(endCtx, suite.victim, jobID, 0))
	providerAfterFirst := suite.keeper.GetBalance(endCtx, suite.honest)
	treasuryAfterFirst := suite.keeper.GetTreasury(endCtx)

	for i := 0; i < 5; i++ {
		err := suite.keeper.ReleaseMilestone(endCtx, suite.victim, jobID, 0)
		suite.Require().ErrorIs(err, types.ErrAlreadyCompleted)
	}

	suite.Require().Equal(providerAfterFirst, suite.keeper.GetBalance(endCtx, suite.honest))
	suite.Require().Equal(treasuryAfterFirst, suite.keeper.GetTreasury(endCtx))
}

// TestZeroBidOnFreeAuctionRejected verifies a zero bid cannot win a
// zero-floor auction: bids must strictly exceed the standing price even
// when that price is zero.
func (suite *AdversarialTestSuite) TestZeroBidOnFreeAuctionRejected() {
	auctionID := suite.keeper.AppendAuction(suite.ctx, suite.victim, types.ResourceSpec{GpuCount: 1}, 24, math.ZeroInt())

	err := suite.keeper.PlaceBid(suite.ctx, suite.attacker, auctionID, math.ZeroInt())
	suite.Require().ErrorIs(err, types.ErrBidTooLow)

	endCtx := suite.ctx.WithBlockHeight(suite.ctx.BlockHeight() + types.AuctionDurationBlocks)
	jobID, err := suite.keeper.EndAuction(endCtx, auctionID)
	suite.Require().NoError(err)
	suite.Require().Equal(types.NoWinnerJobID, jobID, "zero bid settled into a free job")
}

// TestProofForgeryLeavesJobIntact verifies a rival cannot complete, replace
// or clear the provider's proof.
func (suite *AdversarialTestSuite) TestProofForgeryLeavesJobIntact() {
	auctionID := suite.keeper.AppendAuction(suite.ctx, suite.victim, types.ResourceSpec{GpuCount: 1}, 24, math.ZeroInt())
	suite.Require().NoError(suite.keeper.PlaceBid(suite.ctx, suite.honest, auctionID, math.NewInt(50_000)))

	endCtx := suite.ctx.WithBlockHeight(suite.ctx.BlockHeight() + types.AuctionDurationBlocks)
	jobID, err := suite.keeper.EndAuction(endCtx, auctionID)
	suite.Require().NoError(err)

	err = suite.keeper.SubmitExecutionProof(endCtx, suite.attacker, jobID, "sha256:forged")
	suite.Require().ErrorIs(err, types.ErrNotAuthorized)

	job, _ := suite.keeper.GetJob(endCtx, jobID)
	suite.Require().Equal(types.JOB_STATUS_ACTIVE, job.Status)
	suite.Require().Empty(job.ExecutionProof)

	// The real provider's proof still lands after the failed forgery.
	suite.Require().NoError(suite.keeper.SubmitExecutionProof(endCtx, suite.honest, jobID, "sha256:real"))
}
