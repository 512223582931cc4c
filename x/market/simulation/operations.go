package simulation

import (
	"math/rand"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/baseapp"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"
	"github.com/cosmos/cosmos-sdk/x/simulation"

	"github.com/grid-chain/grid/x/market/keeper"
	"github.com/grid-chain/grid/x/market/types"
)

// Simulation operation weights constants
const (
	OpWeightMsgListResource         = "op_weight_msg_list_resource"
	OpWeightMsgCreateAuction        = "op_weight_msg_create_auction"
	OpWeightMsgPlaceBid             = "op_weight_msg_place_bid"
	OpWeightMsgEndAuction           = "op_weight_msg_end_auction"
	OpWeightMsgSubmitExecutionProof = "op_weight_msg_submit_execution_proof"
	OpWeightMsgReleaseMilestone     = "op_weight_msg_release_milestone"
	OpWeightMsgDeposit              = "op_weight_msg_deposit"
	OpWeightMsgWithdraw             = "op_weight_msg_withdraw"

	DefaultWeightMsgListResource         = 25
	DefaultWeightMsgCreateAuction        = 25
	DefaultWeightMsgPlaceBid             = 45
	DefaultWeightMsgEndAuction           = 15
	DefaultWeightMsgSubmitExecutionProof = 15
	DefaultWeightMsgReleaseMilestone     = 25
	DefaultWeightMsgDeposit              = 50
	DefaultWeightMsgWithdraw             = 10
)

// WeightedOperations returns all the market module operations with their respective weights.
func WeightedOperations(
	appParams simtypes.AppParams,
	cdc codec.JSONCodec,
	txGen client.TxConfig,
	k keeper.Keeper,
	ak types.AccountKeeper,
	bk types.BankKeeper,
) simulation.WeightedOperations {
	protoCdc, _ := cdc.(*codec.ProtoCodec)

	var (
		weightMsgListResource         int
		weightMsgCreateAuction        int
		weightMsgPlaceBid             int
		weightMsgEndAuction           int
		weightMsgSubmitExecutionProof int
		weightMsgReleaseMilestone     int
		weightMsgDeposit              int
		weightMsgWithdraw             int
	)

	appParams.GetOrGenerate(OpWeightMsgListResource, &weightMsgListResource, nil,
		func(_ *rand.Rand) {
			weightMsgListResource = DefaultWeightMsgListResource
		},
	)

	appParams.GetOrGenerate(OpWeightMsgCreateAuction, &weightMsgCreateAuction, nil,
		func(_ *rand.Rand) {
			weightMsgCreateAuction = DefaultWeightMsgCreateAuction
		},
	)

	appParams.GetOrGenerate(OpWeightMsgPlaceBid, &weightMsgPlaceBid, nil,
		func(_ *rand.Rand) {
			weightMsgPlaceBid = DefaultWeightMsgPlaceBid
		},
	)

	appParams.GetOrGenerate(OpWeightMsgEndAuction, &weightMsgEndAuction, nil,
		func(_ *rand.Rand) {
			weightMsgEndAuction = DefaultWeightMsgEndAuction
		},
	)

	appParams.GetOrGenerate(OpWeightMsgSubmitExecutionProof, &weightMsgSubmitExecutionProof, nil,
		func(_ *rand.Rand) {
			weightMsgSubmitExecutionProof = DefaultWeightMsgSubmitExecutionProof
		},
	)

	appParams.GetOrGenerate(OpWeightMsgReleaseMilestone, &weightMsgReleaseMilestone, nil,
		func(_ *rand.Rand) {
			weightMsgReleaseMilestone = DefaultWeightMsgReleaseMilestone
		},
	)

	appParams.GetOrGenerate(OpWeightMsgDeposit, &weightMsgDeposit, nil,
		func(_ *rand.Rand) {
			weightMsgDeposit = DefaultWeightMsgDeposit
		},
	)

	appParams.GetOrGenerate(OpWeightMsgWithdraw, &weightMsgWithdraw, nil,
		func(_ *rand.Rand) {
			weightMsgWithdraw = DefaultWeightMsgWithdraw
		},
	)

	return simulation.WeightedOperations{
		simulation.NewWeightedOperation(
			weightMsgListResource,
			SimulateMsgListResource(txGen, protoCdc, k, ak, bk),
		),
		simulation.NewWeightedOperation(
			weightMsgCreateAuction,
			SimulateMsgCreateAuction(txGen, protoCdc, k, ak, bk),
		),
		simulation.NewWeightedOperation(
			weightMsgPlaceBid,
			SimulateMsgPlaceBid(txGen, protoCdc, k, ak, bk),
		),
		simulation.NewWeightedOperation(
			weightMsgEndAuction,
			SimulateMsgEndAuction(txGen, protoCdc, k, ak, bk),
		),
		simulation.NewWeightedOperation(
			weightMsgSubmitExecutionProof,
			SimulateMsgSubmitExecutionProof(txGen, protoCdc, k, ak, bk),
		),
		simulation.NewWeightedOperation(
			weightMsgReleaseMilestone,
			SimulateMsgReleaseMilestone(txGen, protoCdc, k, ak, bk),
		),
		simulation.NewWeightedOperation(
			weightMsgDeposit,
			SimulateMsgDeposit(txGen, protoCdc, k, ak, bk),
		),
		simulation.NewWeightedOperation(
			weightMsgWithdraw,
			SimulateMsgWithdraw(txGen, protoCdc, k, ak, bk),
		),
	}
}

func randomSpec(r *rand.Rand) types.ResourceSpec {
	return types.ResourceSpec{
		GpuCount: uint64(r.Intn(9)),
		CpuCores: uint64(simtypes.RandIntBetween(r, 1, 64)),
		MemoryGb: uint64(simtypes.RandIntBetween(r, 4, 512)),
	}
}

// SimulateMsgListResource generates a MsgListResource with random values
func SimulateMsgListResource(
	txGen client.TxConfig,
	cdc *codec.ProtoCodec,
	k keeper.Keeper,
	ak types.AccountKeeper,
	bk types.BankKeeper,
) simtypes.Operation {
	return func(
		r *rand.Rand, app *baseapp.BaseApp, ctx sdk.Context, accs []simtypes.Account, chainID string,
	) (simtypes.OperationMsg, []simtypes.FutureOperation, error) {
		simAccount, _ := simtypes.RandomAcc(r, accs)

		msg := &types.MsgListResource{
			Provider:   simAccount.Address.String(),
			Spec:       randomSpec(r),
			HourlyRate: math.NewInt(int64(simtypes.RandIntBetween(r, 1, 1000000))),
		}

		txCtx := simulation.OperationInput{
			R:             r,
			App:           app,
			TxGen:         txGen,
			Cdc:           cdc,
			Msg:           msg,
			Context:       ctx,
			SimAccount:    simAccount,
			AccountKeeper: ak,
			Bankkeeper:    bk,
			ModuleName:    types.ModuleName,
		}

		return simulation.GenAndDeliverTxWithRandFees(txCtx)
	}
}

// SimulateMsgCreateAuction generates a MsgCreateAuction with random values
func SimulateMsgCreateAuction(
	txGen client.TxConfig,
	cdc *codec.ProtoCodec,
	k keeper.Keeper,
	ak types.AccountKeeper,
	bk types.BankKeeper,
) simtypes.Operation {
	return func(
		r *rand.Rand, app *baseapp.BaseApp, ctx sdk.Context, accs []simtypes.Account, chainID string,
	) (simtypes.OperationMsg, []simtypes.FutureOperation, error) {
		simAccount, _ := simtypes.RandomAcc(r, accs)

		msg := &types.MsgCreateAuction{
			Requester:     simAccount.Address.String(),
			Requirements:  randomSpec(r),
			MaxDuration:   uint64(simtypes.RandIntBetween(r, 1, 168)),
			StartingPrice: math.NewInt(int64(simtypes.RandIntBetween(r, 1, 100000))),
		}

		txCtx := simulation.OperationInput{
			R:             r,
			App:           app,
			TxGen:         txGen,
			Cdc:           cdc,
			Msg:           msg,
			Context:       ctx,
			SimAccount:    simAccount,
			AccountKeeper: ak,
			Bankkeeper:    bk,
			ModuleName:    types.ModuleName,
		}

		return simulation.GenAndDeliverTxWithRandFees(txCtx)
	}
}

// SimulateMsgPlaceBid generates a MsgPlaceBid on a randomly chosen open auction.
// The bid is funded from the bidder's marketplace balance, so it lands between
// the current bid and whatever the bidder has on deposit.
func SimulateMsgPlaceBid(
	txGen client.TxConfig,
	cdc *codec.ProtoCodec,
	k keeper.Keeper,
	ak types.AccountKeeper,
	bk types.BankKeeper,
) simtypes.Operation {
	return func(
		r *rand.Rand, app *baseapp.BaseApp, ctx sdk.Context, accs []simtypes.Account, chainID string,
	) (simtypes.OperationMsg, []simtypes.FutureOperation, error) {
		simAccount, _ := simtypes.RandomAcc(r, accs)

		var open []types.Auction
		for _, auction := range k.GetAllAuctions(ctx) {
			if !auction.Ended && ctx.BlockHeight() < auction.EndHeight {
				open = append(open, auction)
			}
		}
		if len(open) == 0 {
			return simtypes.NoOpMsg(types.ModuleName, types.TypeMsgPlaceBid, "no open auctions"), nil, nil
		}

		auction := open[r.Intn(len(open))]

		balance := k.GetBalance(ctx, simAccount.Address)
		minBid := auction.CurrentBid.AddRaw(1)
		if balance.LT(minBid) {
			return simtypes.NoOpMsg(types.ModuleName, types.TypeMsgPlaceBid, "marketplace balance below current bid"), nil, nil
		}

		amount := minBid.Add(simtypes.RandomAmount(r, balance.Sub(minBid)))

		msg := &types.MsgPlaceBid{
			Bidder:    simAccount.Address.String(),
			AuctionId: auction.Id,
			Amount:    amount,
		}

		txCtx := simulation.OperationInput{
			R:             r,
			App:           app,
			TxGen:         txGen,
			Cdc:           cdc,
			Msg:           msg,
			Context:       ctx,
			SimAccount:    simAccount,
			AccountKeeper: ak,
			Bankkeeper:    bk,
			ModuleName:    types.ModuleName,
		}

		return simulation.GenAndDeliverTxWithRandFees(txCtx)
	}
}

// SimulateMsgEndAuction settles a randomly chosen auction whose bidding
// window has closed.
func SimulateMsgEndAuction(
	txGen client.TxConfig,
	cdc *codec.ProtoCodec,
	k keeper.Keeper,
	ak types.AccountKeeper,
	bk types.BankKeeper,
) simtypes.Operation {
	return func(
		r *rand.Rand, app *baseapp.BaseApp, ctx sdk.Context, accs []simtypes.Account, chainID string,
	) (simtypes.OperationMsg, []simtypes.FutureOperation, error) {
		simAccount, _ := simtypes.RandomAcc(r, accs)

		var expired []types.Auction
		for _, auction := range k.GetAllAuctions(ctx) {
			if !auction.Ended && ctx.BlockHeight() >= auction.EndHeight {
				expired = append(expired, auction)
			}
		}
		if len(expired) == 0 {
			return simtypes.NoOpMsg(types.ModuleName, types.TypeMsgEndAuction, "no expired auctions"), nil, nil
		}

		auction := expired[r.Intn(len(expired))]

		msg := &types.MsgEndAuction{
			Sender:    simAccount.Address.String(),
			AuctionId: auction.Id,
		}

		txCtx := simulation.OperationInput{
			R:             r,
			App:           app,
			TxGen:         txGen,
			Cdc:           cdc,
			Msg:           msg,
			Context:       ctx,
			SimAccount:    simAccount,
			AccountKeeper: ak,
			Bankkeeper:    bk,
			ModuleName:    types.ModuleName,
		}

		return simulation.GenAndDeliverTxWithRandFees(txCtx)
	}
}

// SimulateMsgSubmitExecutionProof generates a MsgSubmitExecutionProof for a
// random active job whose provider is a simulation account.
func SimulateMsgSubmitExecutionProof(
	txGen client.TxConfig,
	cdc *codec.ProtoCodec,
	k keeper.Keeper,
	ak types.AccountKeeper,
	bk types.BankKeeper,
) simtypes.Operation {
	return func(
		r *rand.Rand, app *baseapp.BaseApp, ctx sdk.Context, accs []simtypes.Account, chainID string,
	) (simtypes.OperationMsg, []simtypes.FutureOperation, error) {
		jobs := k.GetAllJobs(ctx)
		if len(jobs) == 0 {
			return simtypes.NoOpMsg(types.ModuleName, types.TypeMsgSubmitExecutionProof, "no jobs"), nil, nil
		}

		job := jobs[r.Intn(len(jobs))]
		if job.Status != types.JOB_STATUS_ACTIVE {
			return simtypes.NoOpMsg(types.ModuleName, types.TypeMsgSubmitExecutionProof, "job not active"), nil, nil
		}

		provider, err := sdk.AccAddressFromBech32(job.Provider)
		if err != nil {
			return simtypes.NoOpMsg(types.ModuleName, types.TypeMsgSubmitExecutionProof, "invalid provider address"), nil, err
		}

		simAccount, found := simtypes.FindAccount(accs, provider)
		if !found {
			return simtypes.NoOpMsg(types.ModuleName, types.TypeMsgSubmitExecutionProof, "provider is not a simulation account"), nil, nil
		}

		msg := &types.MsgSubmitExecutionProof{
			Provider: simAccount.Address.String(),
			JobId:    job.Id,
			Proof:    simtypes.RandStringOfLength(r, 32),
		}

		txCtx := simulation.OperationInput{
			R:             r,
			App:           app,
			TxGen:         txGen,
			Cdc:           cdc,
			Msg:           msg,
			Context:       ctx,
			SimAccount:    simAccount,
			AccountKeeper: ak,
			Bankkeeper:    bk,
			ModuleName:    types.ModuleName,
		}

		return simulation.GenAndDeliverTxWithRandFees(txCtx)
	}
}

// SimulateMsgReleaseMilestone releases the next unreleased milestone of a
// random job whose requester is a simulation account.
func SimulateMsgReleaseMilestone(
	txGen client.TxConfig,
	cdc *codec.ProtoCodec,
	k keeper.Keeper,
	ak types.AccountKeeper,
	bk types.BankKeeper,
) simtypes.Operation {
	return func(
		r *rand.Rand, app *baseapp.BaseApp, ctx sdk.Context, accs []simtypes.Account, chainID string,
	) (simtypes.OperationMsg, []simtypes.FutureOperation, error) {
		jobs := k.GetAllJobs(ctx)
		if len(jobs) == 0 {
			return simtypes.NoOpMsg(types.ModuleName, types.TypeMsgReleaseMilestone, "no jobs"), nil, nil
		}

		job := jobs[r.Intn(len(jobs))]
		if job.CompletedMilestones >= job.MilestoneCount {
			return simtypes.NoOpMsg(types.ModuleName, types.TypeMsgReleaseMilestone, "job fully settled"), nil, nil
		}

		requester, err := sdk.AccAddressFromBech32(job.Requester)
		if err != nil {
			return simtypes.NoOpMsg(types.ModuleName, types.TypeMsgReleaseMilestone, "invalid requester address"), nil, err
		}

		simAccount, found := simtypes.FindAccount(accs, requester)
		if !found {
			return simtypes.NoOpMsg(types.ModuleName, types.TypeMsgReleaseMilestone, "requester is not a simulation account"), nil, nil
		}

		var milestoneIndex uint64
		pending := false
		for _, entry := range k.GetJobEscrows(ctx, job.Id) {
			if !entry.Released {
				milestoneIndex = entry.MilestoneIndex
				pending = true
				break
			}
		}
		if !pending {
			return simtypes.NoOpMsg(types.ModuleName, types.TypeMsgReleaseMilestone, "no unreleased milestones"), nil, nil
		}

		msg := &types.MsgReleaseMilestone{
			Requester:      simAccount.Address.String(),
			JobId:          job.Id,
			MilestoneIndex: milestoneIndex,
		}

		txCtx := simulation.OperationInput{
			R:             r,
			App:           app,
			TxGen:         txGen,
			Cdc:           cdc,
			Msg:           msg,
			Context:       ctx,
			SimAccount:    simAccount,
			AccountKeeper: ak,
			Bankkeeper:    bk,
			ModuleName:    types.ModuleName,
		}

		return simulation.GenAndDeliverTxWithRandFees(txCtx)
	}
}

// SimulateMsgDeposit moves a random slice of a simulation account's bank
// balance into its marketplace ledger.
func SimulateMsgDeposit(
	txGen client.TxConfig,
	cdc *codec.ProtoCodec,
	k keeper.Keeper,
	ak types.AccountKeeper,
	bk types.BankKeeper,
) simtypes.Operation {
	return func(
		r *rand.Rand, app *baseapp.BaseApp, ctx sdk.Context, accs []simtypes.Account, chainID string,
	) (simtypes.OperationMsg, []simtypes.FutureOperation, error) {
		simAccount, _ := simtypes.RandomAcc(r, accs)

		spendable := bk.SpendableCoins(ctx, simAccount.Address)
		available := spendable.AmountOf(types.BaseDenom)
		if !available.IsPositive() {
			return simtypes.NoOpMsg(types.ModuleName, types.TypeMsgDeposit, "no spendable funds"), nil, nil
		}

		// Leave headroom for fees
		amount := simtypes.RandomAmount(r, available.QuoRaw(2))
		if amount.IsZero() {
			return simtypes.NoOpMsg(types.ModuleName, types.TypeMsgDeposit, "zero deposit"), nil, nil
		}

		coins := sdk.NewCoins(sdk.NewCoin(types.BaseDenom, amount))

		msg := &types.MsgDeposit{
			Depositor: simAccount.Address.String(),
			Amount:    amount,
		}

		txCtx := simulation.OperationInput{
			R:               r,
			App:             app,
			TxGen:           txGen,
			Cdc:             cdc,
			Msg:             msg,
			Context:         ctx,
			SimAccount:      simAccount,
			AccountKeeper:   ak,
			Bankkeeper:      bk,
			ModuleName:      types.ModuleName,
			CoinsSpentInMsg: coins,
		}

		return simulation.GenAndDeliverTxWithRandFees(txCtx)
	}
}

// SimulateMsgWithdraw moves a random slice of a simulation account's
// marketplace ledger back to its bank balance.
func SimulateMsgWithdraw(
	txGen client.TxConfig,
	cdc *codec.ProtoCodec,
	k keeper.Keeper,
	ak types.AccountKeeper,
	bk types.BankKeeper,
) simtypes.Operation {
	return func(
		r *rand.Rand, app *baseapp.BaseApp, ctx sdk.Context, accs []simtypes.Account, chainID string,
	) (simtypes.OperationMsg, []simtypes.FutureOperation, error) {
		simAccount, _ := simtypes.RandomAcc(r, accs)

		balance := k.GetBalance(ctx, simAccount.Address)
		if !balance.IsPositive() {
			return simtypes.NoOpMsg(types.ModuleName, types.TypeMsgWithdraw, "no marketplace balance"), nil, nil
		}

		amount := simtypes.RandomAmount(r, balance)
		if amount.IsZero() {
			return simtypes.NoOpMsg(types.ModuleName, types.TypeMsgWithdraw, "zero withdrawal"), nil, nil
		}

		msg := &types.MsgWithdraw{
			Withdrawer: simAccount.Address.String(),
			Amount:     amount,
		}

		txCtx := simulation.OperationInput{
			R:             r,
			App:           app,
			TxGen:         txGen,
			Cdc:           cdc,
			Msg:           msg,
			Context:       ctx,
			SimAccount:    simAccount,
			AccountKeeper: ak,
			Bankkeeper:    bk,
			ModuleName:    types.ModuleName,
		}

		return simulation.GenAndDeliverTxWithRandFees(txCtx)
	}
}
