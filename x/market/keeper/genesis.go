package keeper

import (
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/grid-chain/grid/x/market/types"
)

// InitGenesis imports the module state. Id counters below the highest
// imported id are treated as stale and bumped past it.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}

	var maxResourceID uint64
	for _, resource := range genState.Resources {
		k.SetResource(ctx, resource)
		if resource.Id > maxResourceID {
			maxResourceID = resource.Id
		}
	}
	nextResourceID := genState.NextResourceId
	if nextResourceID <= maxResourceID {
		nextResourceID = maxResourceID + 1
	}
	if nextResourceID == 0 {
		nextResourceID = 1
	}
	k.setNextResourceID(ctx, nextResourceID)

	var maxAuctionID uint64
	for _, auction := range genState.Auctions {
		k.SetAuction(ctx, auction)
		if !auction.Ended {
			k.insertExpiryQueue(ctx, auction.EndHeight, auction.Id)
		}
		if auction.Id > maxAuctionID {
			maxAuctionID = auction.Id
		}
	}
	nextAuctionID := genState.NextAuctionId
	if nextAuctionID <= maxAuctionID {
		nextAuctionID = maxAuctionID + 1
	}
	if nextAuctionID == 0 {
		nextAuctionID = 1
	}
	k.setNextAuctionID(ctx, nextAuctionID)

	var maxJobID uint64
	for _, job := range genState.Jobs {
		k.SetJob(ctx, job)
		if job.Id > maxJobID {
			maxJobID = job.Id
		}
	}
	nextJobID := genState.NextJobId
	if nextJobID <= maxJobID {
		nextJobID = maxJobID + 1
	}
	if nextJobID == 0 {
		nextJobID = 1
	}
	k.setNextJobID(ctx, nextJobID)

	for _, entry := range genState.Escrows {
		k.SetEscrowEntry(ctx, entry)
	}

	for _, balance := range genState.Balances {
		addr, err := sdk.AccAddressFromBech32(balance.Address)
		if err != nil {
			panic(err)
		}
		k.setBalance(ctx, addr, balance.Balance)
	}

	for _, record := range genState.Reputations {
		k.SetReputation(ctx, record)
	}

	treasury := genState.Treasury
	if treasury.IsNil() {
		treasury = math.ZeroInt()
	}
	k.setTreasury(ctx, treasury)
}

// ExportGenesis exports the full module state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	return &types.GenesisState{
		Params:         k.GetParams(ctx),
		Resources:      k.GetAllResources(ctx),
		NextResourceId: k.GetNextResourceID(ctx),
		Auctions:       k.GetAllAuctions(ctx),
		NextAuctionId:  k.GetNextAuctionID(ctx),
		Jobs:           k.GetAllJobs(ctx),
		NextJobId:      k.GetNextJobID(ctx),
		Escrows:        k.GetAllEscrowEntries(ctx),
		Balances:       k.GetAllBalances(ctx),
		Reputations:    k.GetAllReputations(ctx),
		Treasury:       k.GetTreasury(ctx),
	}
}
