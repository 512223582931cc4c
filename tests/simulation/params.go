package simulation

import (
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"

	"github.com/grid-chain/grid/app"
	"github.com/grid-chain/grid/simapp"
)

// AppStateFn seeds a randomized genesis through the app's simulation manager,
// so every module with simulation support contributes its own genesis draw.
func AppStateFn(simApp *app.GridApp) simtypes.AppStateFn {
	return simapp.AppStateFn(simApp.AppCodec(), simApp.SimulationManager(), app.NewDefaultGenesisState(simApp.AppCodec()))
}

// BlockedAddresses returns the module account addresses that operations must
// not pick as transfer recipients. Deriving the set from the app keeps it in
// sync with the bech32 prefix and the module account permissions.
func BlockedAddresses() map[string]bool {
	return app.BlockedModuleAccountAddrs()
}
