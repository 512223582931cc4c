package simulation

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/cosmos/cosmos-sdk/types/module"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"

	"github.com/grid-chain/grid/x/market/types"
)

// Simulation parameter constants
const (
	ExpirySweepEnabled = "expiry_sweep_enabled"
	ExpirySweepLimit   = "expiry_sweep_limit"
)

// GenExpirySweepEnabled returns a randomized sweep toggle, on most of the
// time so the end blocker path gets exercised.
func GenExpirySweepEnabled(r *rand.Rand) bool {
	return r.Int63n(100) < 95
}

// GenExpirySweepLimit returns a randomized per-block sweep bound.
func GenExpirySweepLimit(r *rand.Rand) uint64 {
	return uint64(simtypes.RandIntBetween(r, 50, int(types.MaxExpirySweepLimit)))
}

// RandomizedGenState generates a random GenesisState for the market module.
// Collections start empty; simulated deposits, listings and auctions
// populate them block by block.
func RandomizedGenState(simState *module.SimulationState) {
	var sweepEnabled bool
	simState.AppParams.GetOrGenerate(
		ExpirySweepEnabled, &sweepEnabled, simState.Rand,
		func(r *rand.Rand) { sweepEnabled = GenExpirySweepEnabled(r) },
	)

	var sweepLimit uint64
	simState.AppParams.GetOrGenerate(
		ExpirySweepLimit, &sweepLimit, simState.Rand,
		func(r *rand.Rand) { sweepLimit = GenExpirySweepLimit(r) },
	)

	genesis := types.DefaultGenesis()
	genesis.Params = types.NewParams(sweepEnabled, sweepLimit)

	bz, err := json.MarshalIndent(&genesis.Params, "", " ")
	if err != nil {
		panic(err)
	}
	fmt.Printf("Selected randomly generated market parameters:\n%s\n", bz)

	simState.GenState[types.ModuleName] = simState.Cdc.MustMarshalJSON(genesis)
}
