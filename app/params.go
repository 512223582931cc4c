package app

import (
	"sync"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// Bech32PrefixAccAddr defines the Bech32 prefix of an account's address
	Bech32PrefixAccAddr = "grid"
	// Bech32PrefixAccPub defines the Bech32 prefix of an account's public key
	Bech32PrefixAccPub = "gridpub"
	// Bech32PrefixValAddr defines the Bech32 prefix of a validator's operator address
	Bech32PrefixValAddr = "gridvaloper"
	// Bech32PrefixValPub defines the Bech32 prefix of a validator's operator public key
	Bech32PrefixValPub = "gridvaloperpub"
	// Bech32PrefixConsAddr defines the Bech32 prefix of a consensus node address
	Bech32PrefixConsAddr = "gridvalcons"
	// Bech32PrefixConsPub defines the Bech32 prefix of a consensus node public key
	Bech32PrefixConsPub = "gridvalconspub"

	// CoinType is the GRID coin type as defined in SLIP44 (https://github.com/satoshilabs/slips/blob/master/slip-0044.md)
	CoinType = 118

	// BondDenom defines the native staking token denomination.
	BondDenom = "ugrid"

	// DisplayDenom defines the name, symbol, and display value of the GRID token.
	DisplayDenom = "GRID"

	// DefaultGasPrice is the default gas price in ugrid
	DefaultGasPrice = "0.001"
)

var (
	// DefaultMinGasPrice is the minimum gas price
	DefaultMinGasPrice = sdk.NewDecCoinFromDec(BondDenom, math.LegacyNewDecWithPrec(1, 3)) // 0.001ugrid
)

var configOnce sync.Once

// SetConfig sets the configuration for the GridChain network. The config
// seals on the first call; later calls are no-ops.
func SetConfig() {
	configOnce.Do(func() {
		config := sdk.GetConfig()
		config.SetBech32PrefixForAccount(Bech32PrefixAccAddr, Bech32PrefixAccPub)
		config.SetBech32PrefixForValidator(Bech32PrefixValAddr, Bech32PrefixValPub)
		config.SetBech32PrefixForConsensusNode(Bech32PrefixConsAddr, Bech32PrefixConsPub)
		config.SetCoinType(CoinType)
		config.Seal()
	})
}
