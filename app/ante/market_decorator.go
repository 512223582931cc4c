package ante

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	marketkeeper "github.com/grid-chain/grid/x/market/keeper"
	markettypes "github.com/grid-chain/grid/x/market/types"
)

// Flat gas surcharges per market operation. Listings and auctions write
// indexed records, proofs carry an arbitrary payload, so they cost more than
// plain ledger moves.
const (
	ListingSurchargeGas    uint64 = 2_500
	AuctionSurchargeGas    uint64 = 2_500
	BidSurchargeGas        uint64 = 1_500
	SettlementSurchargeGas uint64 = 2_000
	ProofSurchargeGas      uint64 = 5_000
	ReleaseSurchargeGas    uint64 = 2_000
	LedgerSurchargeGas     uint64 = 1_000
)

// MarketDecorator validates market module-specific transaction requirements.
// It re-checks signer addresses and charges per-operation gas surcharges.
// Stateful checks (auction windows, balances, job ownership) stay in the
// message server so its error taxonomy remains authoritative.
type MarketDecorator struct {
	keeper marketkeeper.Keeper
}

// NewMarketDecorator creates a new MarketDecorator
func NewMarketDecorator(keeper marketkeeper.Keeper) MarketDecorator {
	return MarketDecorator{
		keeper: keeper,
	}
}

// AnteHandle implements the AnteDecorator interface
func (md MarketDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (newCtx sdk.Context, err error) {
	// Skip validation during simulation
	if simulate {
		return next(ctx, tx, simulate)
	}

	msgs := tx.GetMsgs()
	for _, msg := range msgs {
		switch msg := msg.(type) {
		case *markettypes.MsgListResource:
			if err := md.validateListResource(ctx, msg); err != nil {
				return ctx, err
			}
		case *markettypes.MsgCreateAuction:
			if err := md.validateCreateAuction(ctx, msg); err != nil {
				return ctx, err
			}
		case *markettypes.MsgPlaceBid:
			if err := md.validatePlaceBid(ctx, msg); err != nil {
				return ctx, err
			}
		case *markettypes.MsgEndAuction:
			if err := md.validateEndAuction(ctx, msg); err != nil {
				return ctx, err
			}
		case *markettypes.MsgSubmitExecutionProof:
			if err := md.validateSubmitExecutionProof(ctx, msg); err != nil {
				return ctx, err
			}
		case *markettypes.MsgReleaseMilestone:
			if err := md.validateReleaseMilestone(ctx, msg); err != nil {
				return ctx, err
			}
		case *markettypes.MsgDeposit:
			if err := md.validateDeposit(ctx, msg); err != nil {
				return ctx, err
			}
		case *markettypes.MsgWithdraw:
			if err := md.validateWithdraw(ctx, msg); err != nil {
				return ctx, err
			}
		}
	}

	return next(ctx, tx, simulate)
}

// validateListResource performs additional validation for resource listings
func (md MarketDecorator) validateListResource(ctx sdk.Context, msg *markettypes.MsgListResource) error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid provider address: %s", err)
	}

	ctx.GasMeter().ConsumeGas(ListingSurchargeGas, "resource listing validation")

	if msg.HourlyRate.IsNil() || msg.HourlyRate.IsNegative() {
		return sdkerrors.ErrInvalidRequest.Wrap("hourly rate cannot be negative")
	}

	return nil
}

// validateCreateAuction performs additional validation for auction creation
func (md MarketDecorator) validateCreateAuction(ctx sdk.Context, msg *markettypes.MsgCreateAuction) error {
	if _, err := sdk.AccAddressFromBech32(msg.Requester); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid requester address: %s", err)
	}

	ctx.GasMeter().ConsumeGas(AuctionSurchargeGas, "auction creation validation")

	if msg.StartingPrice.IsNil() || msg.StartingPrice.IsNegative() {
		return sdkerrors.ErrInvalidRequest.Wrap("starting price cannot be negative")
	}

	return nil
}

// validatePlaceBid performs additional validation for bids
func (md MarketDecorator) validatePlaceBid(ctx sdk.Context, msg *markettypes.MsgPlaceBid) error {
	if _, err := sdk.AccAddressFromBech32(msg.Bidder); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid bidder address: %s", err)
	}

	ctx.GasMeter().ConsumeGas(BidSurchargeGas, "bid validation")

	if msg.Amount.IsNil() || msg.Amount.IsNegative() {
		return sdkerrors.ErrInvalidRequest.Wrap("bid amount cannot be negative")
	}

	return nil
}

// validateEndAuction performs additional validation for auction settlement
func (md MarketDecorator) validateEndAuction(ctx sdk.Context, msg *markettypes.MsgEndAuction) error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	ctx.GasMeter().ConsumeGas(SettlementSurchargeGas, "auction settlement validation")

	return nil
}

// validateSubmitExecutionProof performs additional validation for execution proofs
func (md MarketDecorator) validateSubmitExecutionProof(ctx sdk.Context, msg *markettypes.MsgSubmitExecutionProof) error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid provider address: %s", err)
	}

	ctx.GasMeter().ConsumeGas(ProofSurchargeGas, "execution proof validation")

	if len(msg.Proof) > markettypes.MaxProofBytes {
		return sdkerrors.ErrInvalidRequest.Wrapf("proof exceeds %d bytes", markettypes.MaxProofBytes)
	}

	return nil
}

// validateReleaseMilestone performs additional validation for milestone releases
func (md MarketDecorator) validateReleaseMilestone(ctx sdk.Context, msg *markettypes.MsgReleaseMilestone) error {
	if _, err := sdk.AccAddressFromBech32(msg.Requester); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid requester address: %s", err)
	}

	ctx.GasMeter().ConsumeGas(ReleaseSurchargeGas, "milestone release validation")

	return nil
}

// validateDeposit performs additional validation for ledger deposits
func (md MarketDecorator) validateDeposit(ctx sdk.Context, msg *markettypes.MsgDeposit) error {
	if _, err := sdk.AccAddressFromBech32(msg.Depositor); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid depositor address: %s", err)
	}

	ctx.GasMeter().ConsumeGas(LedgerSurchargeGas, "deposit validation")

	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.ErrInvalidRequest.Wrap("deposit amount must be positive")
	}

	return nil
}

// validateWithdraw performs additional validation for ledger withdrawals
func (md MarketDecorator) validateWithdraw(ctx sdk.Context, msg *markettypes.MsgWithdraw) error {
	if _, err := sdk.AccAddressFromBech32(msg.Withdrawer); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid withdrawer address: %s", err)
	}

	ctx.GasMeter().ConsumeGas(LedgerSurchargeGas, "withdraw validation")

	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.ErrInvalidRequest.Wrap("withdraw amount must be positive")
	}

	return nil
}
