package simulation

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"
	"github.com/stretchr/testify/require"

	"github.com/grid-chain/grid/x/market/types"
)

func TestRandomizedGenState(t *testing.T) {
	interfaceRegistry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(interfaceRegistry)

	simState := module.SimulationState{
		AppParams: make(simtypes.AppParams),
		Cdc:       cdc,
		Rand:      rand.New(rand.NewSource(1)),
		GenState:  make(map[string]json.RawMessage),
	}

	RandomizedGenState(&simState)

	var genesis types.GenesisState
	require.NoError(t, json.Unmarshal(simState.GenState[types.ModuleName], &genesis))

	require.NoError(t, genesis.Validate())
	require.Positive(t, genesis.Params.ExpirySweepLimit)
	require.LessOrEqual(t, genesis.Params.ExpirySweepLimit, types.MaxExpirySweepLimit)

	// Collections start empty so simulated operations build state from scratch.
	require.Empty(t, genesis.Resources)
	require.Empty(t, genesis.Auctions)
	require.Empty(t, genesis.Jobs)
	require.Empty(t, genesis.Balances)
	require.EqualValues(t, 1, genesis.NextResourceId)
	require.EqualValues(t, 1, genesis.NextAuctionId)
	require.EqualValues(t, 1, genesis.NextJobId)
	require.True(t, genesis.Treasury.IsZero())
}

func TestGenExpirySweepLimitBounds(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		limit := GenExpirySweepLimit(r)
		require.GreaterOrEqual(t, limit, uint64(50))
		require.Less(t, limit, types.MaxExpirySweepLimit)
	}
}
