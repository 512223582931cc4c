package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	"github.com/cosmos/cosmos-sdk/x/auth/tx"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"
	"github.com/stretchr/testify/require"

	"github.com/grid-chain/grid/x/market/keeper"
	"github.com/grid-chain/grid/x/market/types"
)

// MarketKeeper creates a test keeper for the market module with real auth
// and bank keepers backed by an in-memory store
func MarketKeeper(t testing.TB) (keeper.Keeper, sdk.Context) {
	k, _, ctx := MarketKeeperWithBank(t)
	return k, ctx
}

// MarketKeeperWithBank creates a test keeper for the market module and also
// returns the bank keeper so tests can fund accounts
func MarketKeeperWithBank(t testing.TB) (keeper.Keeper, bankkeeper.Keeper, sdk.Context) {
	k, _, bk, ctx := marketKeepers(t)
	return k, bk, ctx
}

// AnteKeepers returns the account, bank and market keepers over a shared
// in-memory store, for tests that build the app's ante handler.
func AnteKeepers(t testing.TB) (authkeeper.AccountKeeper, bankkeeper.Keeper, keeper.Keeper) {
	k, ak, bk, _ := marketKeepers(t)
	return ak, bk, k
}

// TxConfig returns a tx config over the market interface registry, suitable
// for ante handler construction in tests.
func TxConfig() client.TxConfig {
	registry := codectypes.NewInterfaceRegistry()
	authtypes.RegisterInterfaces(registry)
	banktypes.RegisterInterfaces(registry)
	types.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)
	return tx.NewTxConfig(cdc, tx.DefaultSignModes)
}

func marketKeepers(t testing.TB) (keeper.Keeper, authkeeper.AccountKeeper, bankkeeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	authStoreKey := storetypes.NewKVStoreKey(authtypes.StoreKey)
	bankStoreKey := storetypes.NewKVStoreKey(banktypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(authStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(bankStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	authtypes.RegisterInterfaces(registry)
	banktypes.RegisterInterfaces(registry)
	types.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	maccPerms := map[string][]string{
		authtypes.FeeCollectorName: nil,
		minttypes.ModuleName:       {authtypes.Minter},
		types.ModuleName:           nil,
	}

	accountKeeper := authkeeper.NewAccountKeeper(
		cdc,
		runtime.NewKVStoreService(authStoreKey),
		authtypes.ProtoBaseAccount,
		maccPerms,
		address.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		sdk.GetConfig().GetBech32AccountAddrPrefix(),
		authority.String(),
	)

	bankKeeper := bankkeeper.NewBaseKeeper(
		cdc,
		runtime.NewKVStoreService(bankStoreKey),
		accountKeeper,
		map[string]bool{},
		authority.String(),
		log.NewNopLogger(),
	)

	k := keeper.NewKeeper(
		cdc,
		storeKey,
		bankKeeper,
		accountKeeper,
		authority.String(),
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	k.InitGenesis(ctx, *types.DefaultGenesis())

	return k, accountKeeper, bankKeeper, ctx
}

// FundBankAccount mints coins and sends them to the given account so deposit
// flows have something to pull from
func FundBankAccount(t testing.TB, ctx sdk.Context, bankKeeper bankkeeper.Keeper, addr sdk.AccAddress, amount math.Int) {
	coins := sdk.NewCoins(sdk.NewCoin(types.BaseDenom, amount))
	require.NoError(t, bankKeeper.MintCoins(ctx, minttypes.ModuleName, coins))
	require.NoError(t, bankKeeper.SendCoinsFromModuleToAccount(ctx, minttypes.ModuleName, addr, coins))
}
