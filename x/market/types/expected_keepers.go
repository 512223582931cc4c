package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AccountKeeper defines the expected interface for the auth module keeper.
type AccountKeeper interface {
	GetAccount(ctx context.Context, addr sdk.AccAddress) sdk.AccountI
	GetModuleAddress(name string) sdk.AccAddress
}

// BankKeeper defines the expected interface for the bank module keeper.
// Only deposits and withdrawals cross it; every other operation settles
// against module-internal balances.
type BankKeeper interface {
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins
}

// ExecutionVerifier checks a provider's execution proof for a job. An
// implementation can be registered on the keeper at wiring time; no
// settlement path consults it yet, so registering one stages the capability
// without changing behavior.
type ExecutionVerifier interface {
	VerifyExecution(ctx sdk.Context, job Job, proof string) error
}
