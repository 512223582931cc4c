package simulation

import (
	"math/rand"
	"testing"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"
	"github.com/stretchr/testify/require"

	"github.com/grid-chain/grid/x/market/keeper"
	"github.com/grid-chain/grid/x/market/types"
)

// Smoke-test that WeightedOperations builds without panics and returns operations.
// Returned operations aren't executed here, so zero-value dependencies are acceptable.
func TestWeightedOperationsBuild(t *testing.T) {
	appParams := simtypes.AppParams{}
	interfaceRegistry := codectypes.NewInterfaceRegistry()
	types.RegisterInterfaces(interfaceRegistry)
	reg := codec.NewProtoCodec(interfaceRegistry)

	var (
		txGen client.TxConfig // nil is fine for construction
		k     keeper.Keeper   // zero value
		ak    types.AccountKeeper
		bk    types.BankKeeper
	)

	ops := WeightedOperations(appParams, reg, txGen, k, ak, bk)
	require.Len(t, ops, 8)

	total := 0
	for _, op := range ops {
		require.Positive(t, op.Weight())
		total += op.Weight()
	}
	require.Equal(t,
		DefaultWeightMsgListResource+DefaultWeightMsgCreateAuction+DefaultWeightMsgPlaceBid+
			DefaultWeightMsgEndAuction+DefaultWeightMsgSubmitExecutionProof+DefaultWeightMsgReleaseMilestone+
			DefaultWeightMsgDeposit+DefaultWeightMsgWithdraw,
		total,
	)
}

func TestRandomSpecBounds(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		spec := randomSpec(r)
		require.LessOrEqual(t, spec.GpuCount, uint64(8))
		require.GreaterOrEqual(t, spec.CpuCores, uint64(1))
		require.GreaterOrEqual(t, spec.MemoryGb, uint64(4))
	}
}
