package keeper

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"cosmossdk.io/store/prefix"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/grid-chain/grid/x/market/types"
)

// GetBalance returns addr's marketplace balance. Accounts that never
// deposited have a zero balance.
func (k Keeper) GetBalance(ctx sdk.Context, addr sdk.AccAddress) math.Int {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(BalanceKey(addr))
	if bz == nil {
		return math.ZeroInt()
	}
	var balance math.Int
	if err := balance.Unmarshal(bz); err != nil {
		panic(err)
	}
	return balance
}

func (k Keeper) setBalance(ctx sdk.Context, addr sdk.AccAddress, balance math.Int) {
	store := ctx.KVStore(k.storeKey)
	bz, err := balance.Marshal()
	if err != nil {
		panic(err)
	}
	store.Set(BalanceKey(addr), bz)
}

// CreditBalance adds amount to addr's marketplace balance. Credits are
// unconditional.
func (k Keeper) CreditBalance(ctx sdk.Context, addr sdk.AccAddress, amount math.Int) {
	k.setBalance(ctx, addr, k.GetBalance(ctx, addr).Add(amount))
}

// DebitBalance removes amount from addr's marketplace balance. It leaves
// the balance untouched and fails when it cannot cover the amount.
func (k Keeper) DebitBalance(ctx sdk.Context, addr sdk.AccAddress, amount math.Int) error {
	balance := k.GetBalance(ctx, addr)
	if balance.LT(amount) {
		return types.ErrInsufficientBalance.Wrapf("balance %s%s cannot cover %s%s", balance, types.BaseDenom, amount, types.BaseDenom)
	}
	k.setBalance(ctx, addr, balance.Sub(amount))
	return nil
}

// Deposit moves amount from addr's bank account into its marketplace
// balance. The ledger is credited before the bank transfer runs; a failed
// transfer rolls the credit back.
func (k Keeper) Deposit(ctx sdk.Context, addr sdk.AccAddress, amount math.Int) error {
	k.CreditBalance(ctx, addr, amount)

	coins := sdk.NewCoins(sdk.NewCoin(types.BaseDenom, amount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, addr, types.ModuleName, coins); err != nil {
		k.setBalance(ctx, addr, k.GetBalance(ctx, addr).Sub(amount))
		return errorsmod.Wrap(err, "deposit transfer failed")
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeFundsDeposited,
		sdk.NewAttribute(types.AttributeKeyDepositor, addr.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	return nil
}

// Withdraw moves amount from addr's marketplace balance back to its bank
// account. The ledger debit runs first; a failed transfer restores it.
func (k Keeper) Withdraw(ctx sdk.Context, addr sdk.AccAddress, amount math.Int) error {
	if err := k.DebitBalance(ctx, addr, amount); err != nil {
		return err
	}

	coins := sdk.NewCoins(sdk.NewCoin(types.BaseDenom, amount))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, addr, coins); err != nil {
		k.CreditBalance(ctx, addr, amount)
		return errorsmod.Wrap(err, "withdraw transfer failed")
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeFundsWithdrawn,
		sdk.NewAttribute(types.AttributeKeyOwner, addr.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	return nil
}

// GetAllBalances returns every non-default marketplace balance, ordered by
// address bytes.
func (k Keeper) GetAllBalances(ctx sdk.Context) []types.AccountBalance {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), BalanceKeyPrefix)
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	var balances []types.AccountBalance
	for ; iterator.Valid(); iterator.Next() {
		var balance math.Int
		if err := balance.Unmarshal(iterator.Value()); err != nil {
			panic(err)
		}
		balances = append(balances, types.AccountBalance{
			Address: sdk.AccAddress(iterator.Key()).String(),
			Balance: balance,
		})
	}
	return balances
}
