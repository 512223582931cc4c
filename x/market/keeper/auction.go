package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	"cosmossdk.io/store/prefix"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/grid-chain/grid/x/market/types"
)

// AppendAuction opens a new auction under the next sequential id and
// returns that id. The bidding window is a fixed number of blocks from the
// current height, and the current bid starts at the starting price with no
// bidder attached.
func (k Keeper) AppendAuction(ctx sdk.Context, requester sdk.AccAddress, requirements types.ResourceSpec, maxDuration uint64, startingPrice math.Int) uint64 {
	id := k.GetNextAuctionID(ctx)

	auction := types.Auction{
		Id:            id,
		Requester:     requester.String(),
		Requirements:  requirements,
		MaxDuration:   maxDuration,
		StartingPrice: startingPrice,
		CurrentBid:    startingPrice,
		EndHeight:     ctx.BlockHeight() + types.AuctionDurationBlocks,
		CreatedHeight: ctx.BlockHeight(),
	}
	k.SetAuction(ctx, auction)
	k.setNextAuctionID(ctx, id+1)
	k.insertExpiryQueue(ctx, auction.EndHeight, id)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeAuctionCreated,
		sdk.NewAttribute(types.AttributeKeyAuctionID, fmt.Sprintf("%d", id)),
		sdk.NewAttribute(types.AttributeKeyRequester, auction.Requester),
		sdk.NewAttribute(types.AttributeKeyStartingPrice, startingPrice.String()),
		sdk.NewAttribute(types.AttributeKeyEndHeight, fmt.Sprintf("%d", auction.EndHeight)),
	))

	return id
}

// SetAuction writes an auction record.
func (k Keeper) SetAuction(ctx sdk.Context, auction types.Auction) {
	ctx.KVStore(k.storeKey).Set(AuctionKey(auction.Id), mustMarshal(&auction))
}

// GetAuction returns the auction with the given id.
func (k Keeper) GetAuction(ctx sdk.Context, id uint64) (types.Auction, bool) {
	bz := ctx.KVStore(k.storeKey).Get(AuctionKey(id))
	if bz == nil {
		return types.Auction{}, false
	}
	var auction types.Auction
	mustUnmarshal(bz, &auction)
	return auction, true
}

// GetNextAuctionID returns the id the next auction will receive. Ids start
// at 1.
func (k Keeper) GetNextAuctionID(ctx sdk.Context) uint64 {
	bz := ctx.KVStore(k.storeKey).Get(AuctionCountKey)
	if bz == nil {
		return 1
	}
	return sdk.BigEndianToUint64(bz)
}

func (k Keeper) setNextAuctionID(ctx sdk.Context, id uint64) {
	ctx.KVStore(k.storeKey).Set(AuctionCountKey, uint64ToBytes(id))
}

// PlaceBid records a bid on an open auction. A bid must strictly exceed the
// auction's current bid, ties included, and the bidder's marketplace
// balance must cover it. The displaced bidder, if any, is refunded their
// full prior bid before the new bidder is debited.
func (k Keeper) PlaceBid(ctx sdk.Context, bidder sdk.AccAddress, auctionID uint64, amount math.Int) error {
	auction, found := k.GetAuction(ctx, auctionID)
	if !found {
		return types.ErrAuctionNotFound.Wrapf("auction %d does not exist", auctionID)
	}
	if ctx.BlockHeight() >= auction.EndHeight || auction.Ended {
		return types.ErrAuctionEnded.Wrapf("auction %d no longer accepts bids", auctionID)
	}
	if amount.LTE(auction.CurrentBid) {
		return types.ErrBidTooLow.Wrapf("bid %s does not exceed current bid %s", amount, auction.CurrentBid)
	}
	if balance := k.GetBalance(ctx, bidder); balance.LT(amount) {
		return types.ErrInsufficientBalance.Wrapf("balance %s%s cannot cover bid %s%s", balance, types.BaseDenom, amount, types.BaseDenom)
	}

	if auction.HasBidder() {
		displaced, err := sdk.AccAddressFromBech32(auction.CurrentBidder)
		if err != nil {
			panic(err)
		}
		k.CreditBalance(ctx, displaced, auction.CurrentBid)

		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeBidRefunded,
			sdk.NewAttribute(types.AttributeKeyAuctionID, fmt.Sprintf("%d", auctionID)),
			sdk.NewAttribute(types.AttributeKeyBidder, auction.CurrentBidder),
			sdk.NewAttribute(types.AttributeKeyAmount, auction.CurrentBid.String()),
		))
	}

	if err := k.DebitBalance(ctx, bidder, amount); err != nil {
		return err
	}

	auction.CurrentBid = amount
	auction.CurrentBidder = bidder.String()
	k.SetAuction(ctx, auction)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeBidPlaced,
		sdk.NewAttribute(types.AttributeKeyAuctionID, fmt.Sprintf("%d", auctionID)),
		sdk.NewAttribute(types.AttributeKeyBidder, auction.CurrentBidder),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))

	return nil
}

// EndAuction settles an auction whose bidding window has closed. Anyone may
// call it. With a winning bid present it creates the job and its milestone
// escrows and returns the job id; with no bid it marks the auction ended
// and returns NoWinnerJobID without creating anything.
func (k Keeper) EndAuction(ctx sdk.Context, auctionID uint64) (uint64, error) {
	auction, found := k.GetAuction(ctx, auctionID)
	if !found {
		return 0, types.ErrAuctionNotFound.Wrapf("auction %d does not exist", auctionID)
	}
	if ctx.BlockHeight() < auction.EndHeight {
		return 0, types.ErrAuctionActive.Wrapf("auction %d accepts bids until height %d", auctionID, auction.EndHeight)
	}
	if auction.Ended {
		return 0, types.ErrAlreadyCompleted.Wrapf("auction %d already settled", auctionID)
	}

	auction.Ended = true
	k.SetAuction(ctx, auction)
	k.removeFromExpiryQueue(ctx, auction.EndHeight, auction.Id)

	if !auction.HasBidder() {
		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypeAuctionEnded,
			sdk.NewAttribute(types.AttributeKeyAuctionID, fmt.Sprintf("%d", auctionID)),
			sdk.NewAttribute(types.AttributeKeyJobID, fmt.Sprintf("%d", types.NoWinnerJobID)),
		))
		return types.NoWinnerJobID, nil
	}

	jobID := k.createJobFromAuction(ctx, auction)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeAuctionEnded,
		sdk.NewAttribute(types.AttributeKeyAuctionID, fmt.Sprintf("%d", auctionID)),
		sdk.NewAttribute(types.AttributeKeyBidder, auction.CurrentBidder),
		sdk.NewAttribute(types.AttributeKeyWinningBid, auction.CurrentBid.String()),
		sdk.NewAttribute(types.AttributeKeyJobID, fmt.Sprintf("%d", jobID)),
	))

	return jobID, nil
}

// IterateAuctions visits every auction in id order until cb returns true.
func (k Keeper) IterateAuctions(ctx sdk.Context, cb func(types.Auction) bool) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), AuctionKeyPrefix)
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var auction types.Auction
		mustUnmarshal(iterator.Value(), &auction)
		if cb(auction) {
			break
		}
	}
}

// GetAllAuctions returns every auction, ordered by id.
func (k Keeper) GetAllAuctions(ctx sdk.Context) []types.Auction {
	var auctions []types.Auction
	k.IterateAuctions(ctx, func(auction types.Auction) bool {
		auctions = append(auctions, auction)
		return false
	})
	return auctions
}

func (k Keeper) insertExpiryQueue(ctx sdk.Context, endHeight int64, id uint64) {
	ctx.KVStore(k.storeKey).Set(AuctionByEndHeightKey(endHeight, id), uint64ToBytes(id))
}

func (k Keeper) removeFromExpiryQueue(ctx sdk.Context, endHeight int64, id uint64) {
	ctx.KVStore(k.storeKey).Delete(AuctionByEndHeightKey(endHeight, id))
}

// CollectExpiredAuctions dequeues up to limit expiry queue entries at or
// below height and returns the auctions among them still awaiting
// settlement. Dequeued entries are gone for good, so each auction expires
// through here at most once.
func (k Keeper) CollectExpiredAuctions(ctx sdk.Context, height int64, limit uint64) []types.Auction {
	store := ctx.KVStore(k.storeKey)
	iterator := store.Iterator(AuctionByEndHeightPrefix, AuctionByEndHeightIteratorPrefix(height+1))
	defer iterator.Close()

	var expired []types.Auction
	var visited [][]byte
	for ; iterator.Valid() && uint64(len(visited)) < limit; iterator.Next() {
		visited = append(visited, append([]byte(nil), iterator.Key()...))

		id := sdk.BigEndianToUint64(iterator.Value())
		auction, found := k.GetAuction(ctx, id)
		if found && !auction.Ended {
			expired = append(expired, auction)
		}
	}

	// Deleting while the iterator is live is undefined for the underlying
	// store, so removal happens after the scan.
	for _, key := range visited {
		store.Delete(key)
	}

	return expired
}
