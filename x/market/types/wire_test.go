package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/grid-chain/grid/x/market/types"
)

func TestProtoCodecRoundTrip_GenesisState(t *testing.T) {
	registry := codectypes.NewInterfaceRegistry()
	types.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)

	genesis := types.DefaultGenesis()
	genesis.Resources = []types.ComputeResource{{
		Id:         1,
		Provider:   sdk.AccAddress([]byte("provider1")).String(),
		Spec:       types.ResourceSpec{GpuCount: 2, CpuCores: 8, MemoryGb: 32},
		HourlyRate: math.NewInt(400),
		Available:  true,
	}}
	genesis.NextResourceId = 2

	bz, err := cdc.MarshalJSON(genesis)
	require.NoError(t, err)

	var decoded types.GenesisState
	require.NoError(t, cdc.UnmarshalJSON(bz, &decoded))
	require.Equal(t, genesis.Resources, decoded.Resources)
	require.Equal(t, genesis.NextResourceId, decoded.NextResourceId)

	binary, err := cdc.Marshal(genesis)
	require.NoError(t, err)

	var fromBinary types.GenesisState
	require.NoError(t, cdc.Unmarshal(binary, &fromBinary))
	require.Equal(t, genesis.Resources, fromBinary.Resources)
}

func TestAnyPackUnpack_Msg(t *testing.T) {
	registry := codectypes.NewInterfaceRegistry()
	types.RegisterInterfaces(registry)

	msg := types.NewMsgPlaceBid(sdk.AccAddress([]byte("bidder1")).String(), 7, math.NewInt(1500))

	packed, err := codectypes.NewAnyWithValue(msg)
	require.NoError(t, err)

	// Strip the cache so UnpackAny exercises the real decode path
	fresh := &codectypes.Any{TypeUrl: packed.TypeUrl, Value: packed.Value}

	var unpacked sdk.Msg
	require.NoError(t, registry.UnpackAny(fresh, &unpacked))

	bid, ok := unpacked.(*types.MsgPlaceBid)
	require.True(t, ok)
	require.Equal(t, msg.Bidder, bid.Bidder)
	require.Equal(t, uint64(7), bid.AuctionId)
	require.True(t, bid.Amount.Equal(math.NewInt(1500)))
}
