package property

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"pgregory.net/rapid"

	testutilkeeper "github.com/grid-chain/grid/testutil/keeper"
	"github.com/grid-chain/grid/x/market/types"
)

// TestMilestonePartitionProperties tests the escrow split arithmetic
func TestMilestonePartitionProperties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		total := rapid.Int64Range(0, 1<<52).Draw(rt, "total")
		count := rapid.Uint64Range(1, 64).Draw(rt, "count")

		amounts := types.SplitMilestoneAmounts(math.NewInt(total), count)

		if uint64(len(amounts)) != count {
			rt.Fatalf("expected %d shares, got %d", count, len(amounts))
		}

		// Property: every share but the last is the equal integer share
		share := math.NewInt(total / int64(count))
		sum := math.ZeroInt()
		for i, amount := range amounts {
			if uint64(i)+1 < count && !amount.Equal(share) {
				rt.Fatalf("share %d: expected %s, got %s", i, share, amount)
			}
			if amount.IsNegative() {
				rt.Fatalf("share %d is negative: %s", i, amount)
			}
			sum = sum.Add(amount)
		}

		// Property: shares sum to the total exactly, remainder included
		if !sum.Equal(math.NewInt(total)) {
			rt.Fatalf("shares sum to %s, want %d", sum, total)
		}
	})
}

// TestBidSequenceProperties tests bid ordering and refund conservation
// against the real keeper
func TestBidSequenceProperties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		k, ctx := testutilkeeper.MarketKeeper(t)
		ctx = ctx.WithBlockHeight(10)

		requester := sdk.AccAddress([]byte("prop_requester_1"))
		bidders := []sdk.AccAddress{
			sdk.AccAddress([]byte("prop_bidder_a")),
			sdk.AccAddress([]byte("prop_bidder_b")),
			sdk.AccAddress([]byte("prop_bidder_c")),
		}

		credit := rapid.Int64Range(1, 1_000_000).Draw(rt, "credit")
		for _, bidder := range bidders {
			k.CreditBalance(ctx, bidder, math.NewInt(credit))
		}

		startingPrice := rapid.Int64Range(0, credit).Draw(rt, "startingPrice")
		auctionID := k.AppendAuction(ctx, requester, types.ResourceSpec{GpuCount: 1}, 24, math.NewInt(startingPrice))

		steps := rapid.IntRange(1, 25).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			bidder := bidders[rapid.IntRange(0, len(bidders)-1).Draw(rt, "bidder")]
			amount := rapid.Int64Range(0, credit).Draw(rt, "amount")

			before, _ := k.GetAuction(ctx, auctionID)
			err := k.PlaceBid(ctx, bidder, auctionID, math.NewInt(amount))
			after, _ := k.GetAuction(ctx, auctionID)

			if err != nil {
				// Property: rejected bids leave the auction untouched
				if !after.CurrentBid.Equal(before.CurrentBid) || after.CurrentBidder != before.CurrentBidder {
					rt.Fatal("rejected bid modified the auction")
				}
				continue
			}

			// Property: accepted bids strictly raise the standing bid
			if !after.CurrentBid.GT(before.CurrentBid) {
				rt.Fatalf("accepted bid did not raise the price: %s -> %s", before.CurrentBid, after.CurrentBid)
			}
			if after.CurrentBidder != bidder.String() {
				rt.Fatal("accepted bid did not record the bidder")
			}
		}

		// Property: only the standing bid stays locked; every displaced
		// bidder holds their full credit again
		auction, found := k.GetAuction(ctx, auctionID)
		if !found {
			rt.Fatal("auction disappeared")
		}
		held := math.ZeroInt()
		for _, bidder := range bidders {
			balance := k.GetBalance(ctx, bidder)
			if bidder.String() != auction.CurrentBidder && !balance.Equal(math.NewInt(credit)) {
				rt.Fatalf("displaced bidder holds %s, want %d", balance, credit)
			}
			held = held.Add(balance)
		}
		if auction.HasBidder() {
			held = held.Add(auction.CurrentBid)
		}
		if !held.Equal(math.NewInt(credit * int64(len(bidders)))) {
			rt.Fatalf("funds not conserved: %s locked and held of %d", held, credit*int64(len(bidders)))
		}
	})
}

// TestMilestoneReleaseProperties tests payout accounting across release
// orders against the real keeper
func TestMilestoneReleaseProperties(t *testing.T) {
	orders := [][]uint64{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}

	rapid.Check(t, func(rt *rapid.T) {
		k, ctx := testutilkeeper.MarketKeeper(t)
		ctx = ctx.WithBlockHeight(10)

		requester := sdk.AccAddress([]byte("prop_requester_1"))
		provider := sdk.AccAddress([]byte("prop_provider_1"))

		bid := rapid.Int64Range(1, 1_000_000).Draw(rt, "bid")
		k.CreditBalance(ctx, provider, math.NewInt(bid))

		auctionID := k.AppendAuction(ctx, requester, types.ResourceSpec{GpuCount: 1}, 24, math.ZeroInt())
		if err := k.PlaceBid(ctx, provider, auctionID, math.NewInt(bid)); err != nil {
			rt.Fatal(err)
		}
		ctx = ctx.WithBlockHeight(10 + types.AuctionDurationBlocks)
		jobID, err := k.EndAuction(ctx, auctionID)
		if err != nil {
			rt.Fatal(err)
		}

		order := rapid.SampledFrom(orders).Draw(rt, "order")

		fees := math.ZeroInt()
		for _, index := range order {
			if err := k.ReleaseMilestone(ctx, requester, jobID, index); err != nil {
				rt.Fatalf("release %d: %v", index, err)
			}

			// Property: a milestone releases exactly once
			if err := k.ReleaseMilestone(ctx, requester, jobID, index); err == nil {
				rt.Fatalf("milestone %d released twice", index)
			}
		}
		for _, amount := range types.SplitMilestoneAmounts(math.NewInt(bid), types.JobMilestoneCount) {
			fees = fees.Add(amount.MulRaw(types.PlatformFeeNumerator).QuoRaw(types.PlatformFeeDenominator))
		}

		// Property: the provider ends with the bid minus fees, the treasury
		// with the fees, and the escrow empty
		if got := k.GetBalance(ctx, provider); !got.Equal(math.NewInt(bid).Sub(fees)) {
			rt.Fatalf("provider holds %s, want %s", got, math.NewInt(bid).Sub(fees))
		}
		if got := k.GetTreasury(ctx); !got.Equal(fees) {
			rt.Fatalf("treasury holds %s, want %s", got, fees)
		}
		if got := k.GetEscrowBalance(ctx, jobID); !got.IsZero() {
			rt.Fatalf("escrow still holds %s", got)
		}

		// Property: completing the job bumps the reputation exactly once
		record := k.GetReputation(ctx, provider)
		if record.CompletedJobs != 1 || record.TotalJobs != 1 {
			rt.Fatalf("reputation counted %d/%d jobs", record.CompletedJobs, record.TotalJobs)
		}
		if !record.TotalEarned.Equal(math.NewInt(bid)) {
			rt.Fatalf("reputation earned %s, want %d", record.TotalEarned, bid)
		}
	})
}

// TestLedgerWithdrawProperties tests deposit and withdraw conservation
// against the real keeper and bank
func TestLedgerWithdrawProperties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		k, bankKeeper, ctx := testutilkeeper.MarketKeeperWithBank(t)
		addr := sdk.AccAddress([]byte("prop_account_1"))

		funds := rapid.Int64Range(1, 1_000_000).Draw(rt, "funds")
		testutilkeeper.FundBankAccount(t, ctx, bankKeeper, addr, math.NewInt(funds))

		deposit := rapid.Int64Range(1, funds).Draw(rt, "deposit")
		if err := k.Deposit(ctx, addr, math.NewInt(deposit)); err != nil {
			rt.Fatal(err)
		}

		withdraw := rapid.Int64Range(1, 2_000_000).Draw(rt, "withdraw")
		err := k.Withdraw(ctx, addr, math.NewInt(withdraw))

		ledger := k.GetBalance(ctx, addr)
		bank := bankKeeper.GetBalance(ctx, addr, types.BaseDenom).Amount

		if withdraw > deposit {
			// Property: an overdraft fails and changes nothing
			if err == nil {
				rt.Fatal("overdraft withdrawal succeeded")
			}
			if !ledger.Equal(math.NewInt(deposit)) {
				rt.Fatalf("ledger moved to %s on failed withdrawal", ledger)
			}
		} else {
			if err != nil {
				rt.Fatal(err)
			}
			if !ledger.Equal(math.NewInt(deposit - withdraw)) {
				rt.Fatalf("ledger holds %s, want %d", ledger, deposit-withdraw)
			}
		}

		// Property: ledger plus bank always hold the original funds
		if !ledger.Add(bank).Equal(math.NewInt(funds)) {
			rt.Fatalf("ledger %s + bank %s != funds %d", ledger, bank, funds)
		}
	})
}
