package ante_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	authante "github.com/cosmos/cosmos-sdk/x/auth/ante"

	gridante "github.com/grid-chain/grid/app/ante"
	testutilkeeper "github.com/grid-chain/grid/testutil/keeper"
)

func TestNewAnteHandler_MissingAccountKeeper(t *testing.T) {
	handler, err := gridante.NewAnteHandler(gridante.HandlerOptions{})
	require.Error(t, err)
	require.Nil(t, handler)
	require.Contains(t, err.Error(), "account keeper is required")
}

func TestNewAnteHandler_MissingBankKeeper(t *testing.T) {
	accountKeeper, _, _ := testutilkeeper.AnteKeepers(t)

	handler, err := gridante.NewAnteHandler(gridante.HandlerOptions{
		AccountKeeper: accountKeeper,
	})
	require.Error(t, err)
	require.Nil(t, handler)
	require.Contains(t, err.Error(), "bank keeper is required")
}

func TestNewAnteHandler_MissingSignModeHandler(t *testing.T) {
	accountKeeper, bankKeeper, _ := testutilkeeper.AnteKeepers(t)

	handler, err := gridante.NewAnteHandler(gridante.HandlerOptions{
		AccountKeeper: accountKeeper,
		BankKeeper:    bankKeeper,
	})
	require.Error(t, err)
	require.Nil(t, handler)
	require.Contains(t, err.Error(), "sign mode handler is required")
}

func TestNewAnteHandler_Builds(t *testing.T) {
	accountKeeper, bankKeeper, _ := testutilkeeper.AnteKeepers(t)

	handler, err := gridante.NewAnteHandler(gridante.HandlerOptions{
		AccountKeeper:   accountKeeper,
		BankKeeper:      bankKeeper,
		SignModeHandler: testutilkeeper.TxConfig().SignModeHandler(),
		SigGasConsumer:  authante.DefaultSigVerificationGasConsumer,
	})
	require.NoError(t, err)
	require.NotNil(t, handler)
}

func TestNewAnteHandler_MarketDecoratorOptional(t *testing.T) {
	accountKeeper, bankKeeper, marketKeeper := testutilkeeper.AnteKeepers(t)

	options := gridante.HandlerOptions{
		AccountKeeper:   accountKeeper,
		BankKeeper:      bankKeeper,
		SignModeHandler: testutilkeeper.TxConfig().SignModeHandler(),
	}

	handler, err := gridante.NewAnteHandler(options)
	require.NoError(t, err)
	require.NotNil(t, handler)

	options.MarketKeeper = &marketKeeper
	handler, err = gridante.NewAnteHandler(options)
	require.NoError(t, err)
	require.NotNil(t, handler)
}
