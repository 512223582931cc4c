package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/grid-chain/grid/x/market/types"
)

// RegisterInvariants registers all market invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "escrow-accounting", EscrowAccountingInvariant(k))
	ir.RegisterRoute(types.ModuleName, "job-milestones", JobMilestonesInvariant(k))
	ir.RegisterRoute(types.ModuleName, "auction-bids", AuctionBidsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "non-negative-balances", NonNegativeBalancesInvariant(k))
	ir.RegisterRoute(types.ModuleName, "reputation-bounds", ReputationBoundsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "id-counters", IDCountersInvariant(k))
}

// AllInvariants runs all invariants of the market module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := EscrowAccountingInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = JobMilestonesInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = AuctionBidsInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = NonNegativeBalancesInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = ReputationBoundsInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return IDCountersInvariant(k)(ctx)
	}
}

// EscrowAccountingInvariant checks that every job's escrow entries cover its
// total payment exactly and that the released count matches the job record
func EscrowAccountingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		jobs := k.GetAllJobs(ctx)
		for _, job := range jobs {
			entries := k.GetJobEscrows(ctx, job.Id)
			if uint64(len(entries)) != job.MilestoneCount {
				count++
				msg += fmt.Sprintf("job %d: %d escrow entries for %d milestones\n",
					job.Id, len(entries), job.MilestoneCount)
				continue
			}

			total := math.ZeroInt()
			released := uint64(0)
			for _, entry := range entries {
				total = total.Add(entry.Amount)
				if entry.Released {
					released++
				}
			}

			if !total.Equal(job.TotalPayment) {
				count++
				msg += fmt.Sprintf("job %d: escrow sum %s != total payment %s\n",
					job.Id, total.String(), job.TotalPayment.String())
			}

			if released != job.CompletedMilestones {
				count++
				msg += fmt.Sprintf("job %d: %d released entries but %d completed milestones\n",
					job.Id, released, job.CompletedMilestones)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "escrow-accounting",
			fmt.Sprintf("found %d jobs with inconsistent escrow accounting\n%s", count, msg),
		), broken
	}
}

// JobMilestonesInvariant checks the structural bounds on job records
func JobMilestonesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		jobs := k.GetAllJobs(ctx)
		for _, job := range jobs {
			if job.Id == types.NoWinnerJobID {
				count++
				msg += "job stored under the reserved no-winner id\n"
			}

			if job.MilestoneCount == 0 {
				count++
				msg += fmt.Sprintf("job %d: zero milestones\n", job.Id)
			}

			if job.CompletedMilestones > job.MilestoneCount {
				count++
				msg += fmt.Sprintf("job %d: %d completed milestones exceeds count %d\n",
					job.Id, job.CompletedMilestones, job.MilestoneCount)
			}

			if job.TotalPayment.IsNil() || job.TotalPayment.IsNegative() {
				count++
				msg += fmt.Sprintf("job %d: invalid total payment\n", job.Id)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "job-milestones",
			fmt.Sprintf("found %d jobs with invalid milestone state\n%s", count, msg),
		), broken
	}
}

// AuctionBidsInvariant checks that recorded bids never fall below the
// starting price and that ended auctions stay out of the expiry queue
func AuctionBidsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		auctions := k.GetAllAuctions(ctx)
		for _, auction := range auctions {
			if auction.StartingPrice.IsNil() || auction.StartingPrice.IsNegative() {
				count++
				msg += fmt.Sprintf("auction %d: invalid starting price\n", auction.Id)
				continue
			}

			if auction.CurrentBid.IsNil() || auction.CurrentBid.LT(auction.StartingPrice) {
				count++
				msg += fmt.Sprintf("auction %d: current bid %s below starting price %s\n",
					auction.Id, auction.CurrentBid.String(), auction.StartingPrice.String())
			}

			if auction.HasBidder() && auction.CurrentBid.Equal(auction.StartingPrice) {
				count++
				msg += fmt.Sprintf("auction %d: bidder recorded at the starting price\n", auction.Id)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "auction-bids",
			fmt.Sprintf("found %d auctions with invalid bid state\n%s", count, msg),
		), broken
	}
}

// NonNegativeBalancesInvariant checks ledger balances and the treasury
func NonNegativeBalancesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		for _, balance := range k.GetAllBalances(ctx) {
			if balance.Balance.IsNil() || balance.Balance.IsNegative() {
				count++
				msg += fmt.Sprintf("account %s: negative balance %s\n",
					balance.Address, balance.Balance.String())
			}
		}

		if treasury := k.GetTreasury(ctx); treasury.IsNegative() {
			count++
			msg += fmt.Sprintf("treasury: negative balance %s\n", treasury.String())
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "non-negative-balances",
			fmt.Sprintf("found %d negative balances\n%s", count, msg),
		), broken
	}
}

// ReputationBoundsInvariant checks score and counter bounds on reputation records
func ReputationBoundsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		for _, record := range k.GetAllReputations(ctx) {
			if record.Score > 100 {
				count++
				msg += fmt.Sprintf("provider %s: score %d above 100\n", record.Provider, record.Score)
			}

			if record.CompletedJobs > record.TotalJobs {
				count++
				msg += fmt.Sprintf("provider %s: completed %d exceeds total %d\n",
					record.Provider, record.CompletedJobs, record.TotalJobs)
			}

			if record.TotalEarned.IsNil() || record.TotalEarned.IsNegative() {
				count++
				msg += fmt.Sprintf("provider %s: invalid total earned\n", record.Provider)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "reputation-bounds",
			fmt.Sprintf("found %d reputation records out of bounds\n%s", count, msg),
		), broken
	}
}

// IDCountersInvariant checks that the id counters stay ahead of stored records
func IDCountersInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		next := k.GetNextResourceID(ctx)
		for _, resource := range k.GetAllResources(ctx) {
			if resource.Id >= next {
				count++
				msg += fmt.Sprintf("resource %d at or above next id %d\n", resource.Id, next)
			}
		}

		next = k.GetNextAuctionID(ctx)
		for _, auction := range k.GetAllAuctions(ctx) {
			if auction.Id >= next {
				count++
				msg += fmt.Sprintf("auction %d at or above next id %d\n", auction.Id, next)
			}
		}

		next = k.GetNextJobID(ctx)
		for _, job := range k.GetAllJobs(ctx) {
			if job.Id >= next {
				count++
				msg += fmt.Sprintf("job %d at or above next id %d\n", job.Id, next)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "id-counters",
			fmt.Sprintf("found %d records at or above their id counter\n%s", count, msg),
		), broken
	}
}
