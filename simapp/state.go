package simapp

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"cosmossdk.io/math"

	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"

	"github.com/grid-chain/grid/app"
)

// AppStateFn builds the initial application state for a simulation run.
// Every module with simulation support randomizes its own genesis first;
// auth, bank and staking are then rebuilt so that account numbering, ugrid
// balances and the bonded pool all agree with each other at InitChain.
func AppStateFn(cdc codec.JSONCodec, simManager *module.SimulationManager, genesisState map[string]json.RawMessage) simtypes.AppStateFn {
	return func(r *rand.Rand, accs []simtypes.Account, config simtypes.Config,
	) (appState json.RawMessage, simAccs []simtypes.Account, chainID string, genesisTimestamp time.Time) {
		if len(accs) == 0 {
			panic("simulation requires at least one account")
		}

		genesisTimestamp = simtypes.RandTimestamp(r)
		chainID = config.ChainID

		params := RandomizedParams(r)
		numBonded := params.InitiallyBondedValidators
		if numBonded > len(accs) {
			numBonded = len(accs)
		}

		fmt.Printf(`Selected randomly generated genesis parameters:
{
  stake_per_account: %q,
  initial_account_balance: %q,
  initially_bonded_validators: "%d"
}
`, params.StakePerAccount, params.InitialAccountBalance, numBonded)

		simState := &module.SimulationState{
			AppParams:    make(simtypes.AppParams),
			Cdc:          cdc,
			Rand:         r,
			GenState:     genesisState,
			Accounts:     accs,
			InitialStake: params.StakePerAccount,
			NumBonded:    int64(numBonded),
			BondDenom:    app.BondDenom,
			GenTimestamp: genesisTimestamp,
		}
		simManager.GenerateGenesisStates(simState)

		genesisState[authtypes.ModuleName] = cdc.MustMarshalJSON(RandomizedAuthGenesisState(accs))
		genesisState[banktypes.ModuleName] = cdc.MustMarshalJSON(RandomizedBankGenesisState(r, accs, params, numBonded))
		genesisState[stakingtypes.ModuleName] = cdc.MustMarshalJSON(RandomizedStakingGenesisState(accs, params, numBonded))

		bz, err := json.Marshal(genesisState)
		if err != nil {
			panic(err)
		}

		return bz, accs, chainID, genesisTimestamp
	}
}

// RandomizedAuthGenesisState assigns deterministic account numbers to the
// simulation accounts so signatures verify against the numbers the keeper
// hands out during InitGenesis.
func RandomizedAuthGenesisState(accs []simtypes.Account) *authtypes.GenesisState {
	genesisAccounts := make(authtypes.GenesisAccounts, len(accs))
	for i, acc := range accs {
		base := authtypes.NewBaseAccountWithAddress(acc.Address)
		if err := base.SetAccountNumber(uint64(i)); err != nil {
			panic(err)
		}
		genesisAccounts[i] = base
	}

	return authtypes.NewGenesisState(authtypes.DefaultParams(), genesisAccounts)
}

// RandomizedBankGenesisState funds every simulation account with a random
// ugrid balance and places the bonded validators' stake in the bonded pool
// module account. Staking's InitGenesis panics if the pool balance and the
// bonded validator tokens disagree, so both are derived from the same stake
// parameter.
func RandomizedBankGenesisState(r *rand.Rand, accs []simtypes.Account, params SimulationParams, numBonded int) *banktypes.GenesisState {
	balances := make([]banktypes.Balance, 0, len(accs)+1)
	supply := sdk.NewCoins()

	for _, acc := range accs {
		coins := sdk.NewCoins(sdk.NewCoin(app.BondDenom, simtypes.RandomAmount(r, params.InitialAccountBalance).AddRaw(1000000)))
		balances = append(balances, banktypes.Balance{Address: acc.Address.String(), Coins: coins})
		supply = supply.Add(coins...)
	}

	bondedCoins := sdk.NewCoins(sdk.NewCoin(app.BondDenom, params.StakePerAccount.MulRaw(int64(numBonded))))
	balances = append(balances, banktypes.Balance{
		Address: authtypes.NewModuleAddress(stakingtypes.BondedPoolName).String(),
		Coins:   bondedCoins,
	})
	supply = supply.Add(bondedCoins...)

	metadata := []banktypes.Metadata{
		{
			Description: "The native staking and settlement token of GridChain.",
			DenomUnits: []*banktypes.DenomUnit{
				{Denom: app.BondDenom, Exponent: 0},
				{Denom: "grid", Exponent: 6},
			},
			Base:    app.BondDenom,
			Display: "grid",
			Name:    "Grid",
			Symbol:  "GRID",
		},
	}

	return banktypes.NewGenesisState(banktypes.DefaultParams(), balances, supply, metadata, nil)
}

// RandomizedStakingGenesisState bonds the first numBonded simulation accounts
// as genesis validators with one self delegation each.
func RandomizedStakingGenesisState(accs []simtypes.Account, params SimulationParams, numBonded int) *stakingtypes.GenesisState {
	stakingParams := stakingtypes.DefaultParams()
	stakingParams.BondDenom = app.BondDenom

	validators := make([]stakingtypes.Validator, 0, numBonded)
	delegations := make([]stakingtypes.Delegation, 0, numBonded)

	for i := 0; i < numBonded; i++ {
		valAddr := sdk.ValAddress(accs[i].Address)

		consPub, err := codectypes.NewAnyWithValue(accs[i].ConsKey.PubKey())
		if err != nil {
			panic(err)
		}

		validators = append(validators, stakingtypes.Validator{
			OperatorAddress:   valAddr.String(),
			ConsensusPubkey:   consPub,
			Status:            stakingtypes.Bonded,
			Tokens:            params.StakePerAccount,
			DelegatorShares:   math.LegacyNewDecFromInt(params.StakePerAccount),
			Description:       stakingtypes.NewDescription(fmt.Sprintf("validator-%d", i), "", "", "", ""),
			Commission:        stakingtypes.NewCommission(math.LegacyZeroDec(), math.LegacyNewDecWithPrec(2, 1), math.LegacyNewDecWithPrec(1, 2)),
			MinSelfDelegation: math.OneInt(),
		})
		delegations = append(delegations, stakingtypes.NewDelegation(
			accs[i].Address.String(),
			valAddr.String(),
			math.LegacyNewDecFromInt(params.StakePerAccount),
		))
	}

	return stakingtypes.NewGenesisState(stakingParams, validators, delegations)
}
