package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/grid-chain/grid/x/market/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the market MsgServer
// interface for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (k msgServer) ListResource(goCtx context.Context, msg *types.MsgListResource) (*types.MsgListResourceResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationFailed.Wrap(err.Error())
	}
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid provider address: %s", err)
	}

	id := k.AppendResource(ctx, provider, msg.Spec, msg.HourlyRate)
	GetMetrics().ResourcesListed.Inc()

	k.Logger(ctx).Debug("resource listed", "id", id, "provider", msg.Provider)

	return &types.MsgListResourceResponse{ResourceId: id}, nil
}

func (k msgServer) CreateAuction(goCtx context.Context, msg *types.MsgCreateAuction) (*types.MsgCreateAuctionResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationFailed.Wrap(err.Error())
	}
	requester, err := sdk.AccAddressFromBech32(msg.Requester)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid requester address: %s", err)
	}

	id := k.AppendAuction(ctx, requester, msg.Requirements, msg.MaxDuration, msg.StartingPrice)
	GetMetrics().AuctionsCreated.Inc()

	k.Logger(ctx).Debug("auction created", "id", id, "requester", msg.Requester)

	return &types.MsgCreateAuctionResponse{AuctionId: id}, nil
}

func (k msgServer) PlaceBid(goCtx context.Context, msg *types.MsgPlaceBid) (*types.MsgPlaceBidResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationFailed.Wrap(err.Error())
	}
	bidder, err := sdk.AccAddressFromBech32(msg.Bidder)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid bidder address: %s", err)
	}

	if err := k.Keeper.PlaceBid(ctx, bidder, msg.AuctionId, msg.Amount); err != nil {
		return nil, err
	}
	GetMetrics().BidsPlaced.Inc()

	return &types.MsgPlaceBidResponse{}, nil
}

func (k msgServer) EndAuction(goCtx context.Context, msg *types.MsgEndAuction) (*types.MsgEndAuctionResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationFailed.Wrap(err.Error())
	}

	// Settlement is permissionless; the sender only pays for the call.
	jobID, err := k.Keeper.EndAuction(ctx, msg.AuctionId)
	if err != nil {
		return nil, err
	}
	GetMetrics().AuctionsSettled.Inc()
	if jobID != types.NoWinnerJobID {
		GetMetrics().JobsCreated.Inc()
	}

	return &types.MsgEndAuctionResponse{JobId: jobID}, nil
}

func (k msgServer) SubmitExecutionProof(goCtx context.Context, msg *types.MsgSubmitExecutionProof) (*types.MsgSubmitExecutionProofResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationFailed.Wrap(err.Error())
	}
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid provider address: %s", err)
	}

	if err := k.Keeper.SubmitExecutionProof(ctx, provider, msg.JobId, msg.Proof); err != nil {
		return nil, err
	}
	GetMetrics().ProofsSubmitted.Inc()

	return &types.MsgSubmitExecutionProofResponse{}, nil
}

func (k msgServer) ReleaseMilestone(goCtx context.Context, msg *types.MsgReleaseMilestone) (*types.MsgReleaseMilestoneResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationFailed.Wrap(err.Error())
	}
	requester, err := sdk.AccAddressFromBech32(msg.Requester)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid requester address: %s", err)
	}

	if err := k.Keeper.ReleaseMilestone(ctx, requester, msg.JobId, msg.MilestoneIndex); err != nil {
		return nil, err
	}
	GetMetrics().MilestonesReleased.Inc()
	GetMetrics().SetTreasury(k.GetTreasury(ctx))

	return &types.MsgReleaseMilestoneResponse{}, nil
}

func (k msgServer) Deposit(goCtx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationFailed.Wrap(err.Error())
	}
	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid depositor address: %s", err)
	}

	if err := k.Keeper.Deposit(ctx, depositor, msg.Amount); err != nil {
		return nil, err
	}
	GetMetrics().Deposits.Inc()

	return &types.MsgDepositResponse{}, nil
}

func (k msgServer) Withdraw(goCtx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationFailed.Wrap(err.Error())
	}
	withdrawer, err := sdk.AccAddressFromBech32(msg.Withdrawer)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid withdrawer address: %s", err)
	}

	if err := k.Keeper.Withdraw(ctx, withdrawer, msg.Amount); err != nil {
		return nil, err
	}
	GetMetrics().Withdrawals.Inc()

	return &types.MsgWithdrawResponse{}, nil
}

func (k msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrValidationFailed.Wrap(err.Error())
	}
	if msg.Authority != k.GetAuthority() {
		return nil, types.ErrNotAuthorized.Wrapf("expected authority %s, got %s", k.GetAuthority(), msg.Authority)
	}

	if err := k.SetParams(ctx, msg.Params); err != nil {
		return nil, types.ErrValidationFailed.Wrap(err.Error())
	}

	return &types.MsgUpdateParamsResponse{}, nil
}
