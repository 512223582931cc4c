package keeper

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/grid-chain/grid/x/market/types"
)

// Keeper maintains the marketplace state: resource listings, auctions, jobs
// with their milestone escrows, custodial account balances, provider
// reputation and the platform fee treasury.
type Keeper struct {
	cdc           codec.Codec
	storeKey      storetypes.StoreKey
	bankKeeper    types.BankKeeper
	accountKeeper types.AccountKeeper

	// authority is the address allowed to update module parameters,
	// normally the gov module account.
	authority string

	// verifier, when set, exposes execution proof checking to external
	// integrations. Settlement does not consult it.
	verifier types.ExecutionVerifier
}

// NewKeeper creates a new market keeper.
func NewKeeper(
	cdc codec.Codec,
	storeKey storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	accountKeeper types.AccountKeeper,
	authority string,
) Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(fmt.Sprintf("invalid market authority address: %s", err))
	}
	return Keeper{
		cdc:           cdc,
		storeKey:      storeKey,
		bankKeeper:    bankKeeper,
		accountKeeper: accountKeeper,
		authority:     authority,
	}
}

// GetAuthority returns the module's authority address.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// SetExecutionVerifier registers an execution proof verifier. It is wired at
// app construction time; nothing in the settlement path calls it, so the
// registration stages the capability for external tooling only.
func (k *Keeper) SetExecutionVerifier(v types.ExecutionVerifier) {
	k.verifier = v
}

// ExecutionVerifier returns the registered verifier, or nil.
func (k Keeper) ExecutionVerifier() types.ExecutionVerifier {
	return k.verifier
}

func mustMarshal(v interface{}) []byte {
	bz, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("market: marshal %T: %s", v, err))
	}
	return bz
}

func mustUnmarshal(bz []byte, v interface{}) {
	if err := json.Unmarshal(bz, v); err != nil {
		panic(fmt.Sprintf("market: unmarshal %T: %s", v, err))
	}
}
