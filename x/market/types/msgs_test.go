package types_test

import (
	"strings"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/grid-chain/grid/x/market/types"
)

func accAddr(name string) string {
	return sdk.AccAddress([]byte(name)).String()
}

func TestMsgListResource_ValidateBasic(t *testing.T) {
	tests := []struct {
		name      string
		msg       types.MsgListResource
		expectErr error
	}{
		{
			name: "valid",
			msg: types.MsgListResource{
				Provider:   accAddr("provider"),
				Spec:       types.ResourceSpec{GpuCount: 2, CpuCores: 16, MemoryGb: 64},
				HourlyRate: math.NewInt(2500),
			},
		},
		{
			name: "zero rate and empty spec pass",
			msg: types.MsgListResource{
				Provider:   accAddr("provider"),
				HourlyRate: math.ZeroInt(),
			},
		},
		{
			name:      "invalid address",
			msg:       types.MsgListResource{Provider: "invalid", HourlyRate: math.NewInt(1)},
			expectErr: types.ErrInvalidAddress,
		},
		{
			name:      "negative rate",
			msg:       types.MsgListResource{Provider: accAddr("provider"), HourlyRate: math.NewInt(-1)},
			expectErr: types.ErrInvalidAmount,
		},
		{
			name:      "nil rate",
			msg:       types.MsgListResource{Provider: accAddr("provider")},
			expectErr: types.ErrInvalidAmount,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.expectErr != nil {
				require.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMsgCreateAuction_ValidateBasic(t *testing.T) {
	tests := []struct {
		name      string
		msg       types.MsgCreateAuction
		expectErr error
	}{
		{
			name: "valid",
			msg: types.MsgCreateAuction{
				Requester:     accAddr("requester"),
				Requirements:  types.ResourceSpec{GpuCount: 1},
				MaxDuration:   24,
				StartingPrice: math.NewInt(1000),
			},
		},
		{
			name: "zero starting price passes",
			msg: types.MsgCreateAuction{
				Requester:     accAddr("requester"),
				StartingPrice: math.ZeroInt(),
			},
		},
		{
			name:      "invalid address",
			msg:       types.MsgCreateAuction{Requester: "invalid", StartingPrice: math.NewInt(1)},
			expectErr: types.ErrInvalidAddress,
		},
		{
			name:      "negative starting price",
			msg:       types.MsgCreateAuction{Requester: accAddr("requester"), StartingPrice: math.NewInt(-1)},
			expectErr: types.ErrInvalidAmount,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.expectErr != nil {
				require.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMsgPlaceBid_ValidateBasic(t *testing.T) {
	tests := []struct {
		name      string
		msg       types.MsgPlaceBid
		expectErr error
	}{
		{
			name: "valid",
			msg:  types.MsgPlaceBid{Bidder: accAddr("bidder"), AuctionId: 1, Amount: math.NewInt(100)},
		},
		{
			// Any stateful minimum is the keeper's to enforce.
			name: "zero amount passes",
			msg:  types.MsgPlaceBid{Bidder: accAddr("bidder"), AuctionId: 1, Amount: math.ZeroInt()},
		},
		{
			name:      "invalid address",
			msg:       types.MsgPlaceBid{Bidder: "invalid", Amount: math.NewInt(100)},
			expectErr: types.ErrInvalidAddress,
		},
		{
			name:      "negative amount",
			msg:       types.MsgPlaceBid{Bidder: accAddr("bidder"), AuctionId: 1, Amount: math.NewInt(-1)},
			expectErr: types.ErrInvalidAmount,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.expectErr != nil {
				require.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMsgEndAuction_ValidateBasic(t *testing.T) {
	require.NoError(t, (&types.MsgEndAuction{Sender: accAddr("anyone"), AuctionId: 1}).ValidateBasic())
	require.ErrorIs(t,
		(&types.MsgEndAuction{Sender: "invalid", AuctionId: 1}).ValidateBasic(),
		types.ErrInvalidAddress,
	)
}

func TestMsgSubmitExecutionProof_ValidateBasic(t *testing.T) {
	valid := types.MsgSubmitExecutionProof{
		Provider: accAddr("provider"),
		JobId:    1,
		Proof:    "a1b2c3d4",
	}
	require.NoError(t, valid.ValidateBasic())

	empty := valid
	empty.Proof = ""
	require.NoError(t, empty.ValidateBasic())

	atLimit := valid
	atLimit.Proof = strings.Repeat("a", types.MaxProofBytes)
	require.NoError(t, atLimit.ValidateBasic())

	oversized := valid
	oversized.Proof = strings.Repeat("a", types.MaxProofBytes+1)
	require.ErrorIs(t, oversized.ValidateBasic(), types.ErrValidationFailed)

	badAddr := valid
	badAddr.Provider = "invalid"
	require.ErrorIs(t, badAddr.ValidateBasic(), types.ErrInvalidAddress)
}

func TestMsgReleaseMilestone_ValidateBasic(t *testing.T) {
	require.NoError(t, (&types.MsgReleaseMilestone{
		Requester:      accAddr("requester"),
		JobId:          1,
		MilestoneIndex: 2,
	}).ValidateBasic())
	require.ErrorIs(t,
		(&types.MsgReleaseMilestone{Requester: "invalid"}).ValidateBasic(),
		types.ErrInvalidAddress,
	)
}

func TestMsgDeposit_ValidateBasic(t *testing.T) {
	require.NoError(t, (&types.MsgDeposit{Depositor: accAddr("depositor"), Amount: math.NewInt(1)}).ValidateBasic())

	tests := []struct {
		name      string
		msg       types.MsgDeposit
		expectErr error
	}{
		{"invalid address", types.MsgDeposit{Depositor: "invalid", Amount: math.NewInt(1)}, types.ErrInvalidAddress},
		{"zero amount", types.MsgDeposit{Depositor: accAddr("depositor"), Amount: math.ZeroInt()}, types.ErrInvalidAmount},
		{"negative amount", types.MsgDeposit{Depositor: accAddr("depositor"), Amount: math.NewInt(-1)}, types.ErrInvalidAmount},
		{"nil amount", types.MsgDeposit{Depositor: accAddr("depositor")}, types.ErrInvalidAmount},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.msg.ValidateBasic(), tc.expectErr)
		})
	}
}

func TestMsgWithdraw_ValidateBasic(t *testing.T) {
	require.NoError(t, (&types.MsgWithdraw{Withdrawer: accAddr("withdrawer"), Amount: math.NewInt(1)}).ValidateBasic())
	require.ErrorIs(t,
		(&types.MsgWithdraw{Withdrawer: accAddr("withdrawer"), Amount: math.ZeroInt()}).ValidateBasic(),
		types.ErrInvalidAmount,
	)
	require.ErrorIs(t,
		(&types.MsgWithdraw{Withdrawer: "invalid", Amount: math.NewInt(1)}).ValidateBasic(),
		types.ErrInvalidAddress,
	)
}

func TestMsgUpdateParams_ValidateBasic(t *testing.T) {
	require.NoError(t, (&types.MsgUpdateParams{
		Authority: accAddr("authority"),
		Params:    types.DefaultParams(),
	}).ValidateBasic())

	require.ErrorIs(t,
		(&types.MsgUpdateParams{Authority: "invalid", Params: types.DefaultParams()}).ValidateBasic(),
		types.ErrInvalidAddress,
	)

	err := (&types.MsgUpdateParams{
		Authority: accAddr("authority"),
		Params:    types.NewParams(true, 0),
	}).ValidateBasic()
	require.Error(t, err)
}
