package fuzz

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	markettypes "github.com/grid-chain/grid/x/market/types"
)

// Ensure deposit amounts must be strictly positive in ValidateBasic.
func TestDepositAmountPositivity(t *testing.T) {
	depositor := sdk.AccAddress([]byte("limit_test_depositor")).String()

	for _, amount := range []sdkmath.Int{{}, sdkmath.ZeroInt(), sdkmath.NewInt(-1)} {
		msg := markettypes.MsgDeposit{
			Depositor: depositor,
			Amount:    amount,
		}
		if err := msg.ValidateBasic(); err == nil {
			t.Fatalf("expected non-positive deposit %s to fail validation", amount)
		}
	}
}

// Ensure withdraw amounts must be strictly positive in ValidateBasic.
func TestWithdrawAmountPositivity(t *testing.T) {
	msg := markettypes.MsgWithdraw{
		Withdrawer: sdk.AccAddress([]byte("limit_test_withdraw_")).String(),
		Amount:     sdkmath.ZeroInt(),
	}
	if err := msg.ValidateBasic(); err == nil {
		t.Fatalf("expected zero withdrawal to fail validation")
	}
}

// Ensure negative starting prices are rejected while zero is accepted, so
// free-floor auctions stay expressible.
func TestAuctionStartingPriceSign(t *testing.T) {
	msg := markettypes.MsgCreateAuction{
		Requester:     sdk.AccAddress([]byte("limit_test_requester")).String(),
		Requirements:  markettypes.ResourceSpec{CpuCores: 4, MemoryGb: 8},
		MaxDuration:   24,
		StartingPrice: sdkmath.NewInt(-1),
	}
	if err := msg.ValidateBasic(); err == nil {
		t.Fatalf("expected negative starting price to fail validation")
	}

	msg.StartingPrice = sdkmath.ZeroInt()
	if err := msg.ValidateBasic(); err != nil {
		t.Fatalf("expected zero starting price to pass validation, got %v", err)
	}
}

// Ensure listings reject nil and negative hourly rates.
func TestListingHourlyRateSign(t *testing.T) {
	provider := sdk.AccAddress([]byte("limit_test_lister___")).String()

	msg := markettypes.MsgListResource{
		Provider:   provider,
		Spec:       markettypes.ResourceSpec{CpuCores: 4, MemoryGb: 8},
		HourlyRate: sdkmath.NewInt(-5),
	}
	if err := msg.ValidateBasic(); err == nil {
		t.Fatalf("expected negative hourly rate to fail validation")
	}

	msg.HourlyRate = sdkmath.Int{}
	if err := msg.ValidateBasic(); err == nil {
		t.Fatalf("expected nil hourly rate to fail validation")
	}
}
