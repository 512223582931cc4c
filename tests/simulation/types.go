package simulation

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	stakingkeeper "github.com/cosmos/cosmos-sdk/x/staking/keeper"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"

	marketkeeper "github.com/grid-chain/grid/x/market/keeper"
	markettypes "github.com/grid-chain/grid/x/market/types"
)

// AccountKeeper defines the expected account keeper interface
type AccountKeeper interface {
	GetAccount(ctx context.Context, addr sdk.AccAddress) sdk.AccountI
	GetModuleAddress(moduleName string) sdk.AccAddress
}

// BankKeeper defines the expected bank keeper interface
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	GetAllBalances(ctx context.Context, addr sdk.AccAddress) sdk.Coins
	SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins
	SendCoins(ctx context.Context, from, to sdk.AccAddress, amt sdk.Coins) error
	SendCoinsFromAccountToModule(ctx context.Context, from sdk.AccAddress, to string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, from string, to sdk.AccAddress, amt sdk.Coins) error
}

// StakingKeeper defines the expected staking keeper interface
type StakingKeeper interface {
	GetValidator(ctx context.Context, addr sdk.ValAddress) (stakingtypes.Validator, error)
	GetAllValidators(ctx context.Context) ([]stakingtypes.Validator, error)
	IterateBondedValidatorsByPower(ctx context.Context, fn func(index int64, validator stakingtypes.ValidatorI) (stop bool)) error
}

// MarketKeeper defines the expected market keeper interface for simulation
type MarketKeeper interface {
	GetAllResources(ctx sdk.Context) []markettypes.ComputeResource
	GetAllAuctions(ctx sdk.Context) []markettypes.Auction
	GetAllJobs(ctx sdk.Context) []markettypes.Job
	GetParams(ctx sdk.Context) markettypes.Params
}

// Compile-time checks that the app keepers satisfy the simulation surface.
var (
	_ AccountKeeper = authkeeper.AccountKeeper{}
	_ BankKeeper    = bankkeeper.BaseKeeper{}
	_ StakingKeeper = (*stakingkeeper.Keeper)(nil)
	_ MarketKeeper  = marketkeeper.Keeper{}
)
