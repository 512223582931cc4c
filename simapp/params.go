package simapp

import (
	"math/rand"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/types/simulation"
)

// Simulation parameter constants
const (
	// Staking parameters
	StakePerAccount           = "stake_per_account"
	InitiallyBondedValidators = "initially_bonded_validators"

	// Bank parameters
	InitialAccountBalance = "initial_account_balance"
)

// SimulationParams defines the randomized quantities that seed the genesis
// state of a simulated chain. Marketplace state is deliberately not seeded
// here: listings, auctions and escrowed funds are built up block by block by
// the weighted operations in x/market/simulation, so every simulated object
// enters the store through the same message handlers a live chain would use.
type SimulationParams struct {
	// Account parameters
	StakePerAccount       math.Int
	InitialAccountBalance math.Int

	// Staking parameters
	InitiallyBondedValidators int
}

// DefaultSimulationParams returns default simulation parameters
func DefaultSimulationParams() SimulationParams {
	return SimulationParams{
		StakePerAccount:           math.NewInt(100000000000),  // 100k GRID
		InitialAccountBalance:     math.NewInt(1000000000000), // 1M GRID
		InitiallyBondedValidators: 50,
	}
}

// RandomizedParams creates randomized simulation parameters. Both amounts are
// floored at one power-reduction unit so every genesis validator keeps a
// nonzero voting power and every account can pay fees from the first block.
func RandomizedParams(r *rand.Rand) SimulationParams {
	return SimulationParams{
		StakePerAccount:           simulation.RandomAmount(r, math.NewInt(1000000000000)).AddRaw(1000000),
		InitialAccountBalance:     simulation.RandomAmount(r, math.NewInt(10000000000000)).AddRaw(1000000),
		InitiallyBondedValidators: simulation.RandIntBetween(r, 10, 100),
	}
}
