package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/grid-chain/grid/x/market/types"
)

func validGenesis() *types.GenesisState {
	gs := types.DefaultGenesis()
	gs.Resources = []types.ComputeResource{
		{Id: 1, Provider: accAddr("provider"), HourlyRate: math.NewInt(100)},
	}
	gs.NextResourceId = 2
	gs.Auctions = []types.Auction{
		{
			Id:            1,
			Requester:     accAddr("requester"),
			StartingPrice: math.NewInt(100),
			CurrentBid:    math.NewInt(150),
			CurrentBidder: accAddr("bidder"),
			EndHeight:     200,
		},
	}
	gs.NextAuctionId = 2
	gs.Jobs = []types.Job{
		{
			Id:             1,
			AuctionId:      1,
			Requester:      accAddr("requester"),
			Provider:       accAddr("bidder"),
			TotalPayment:   math.NewInt(150),
			MilestoneCount: 3,
		},
	}
	gs.NextJobId = 2
	gs.Escrows = []types.EscrowEntry{
		{JobId: 1, MilestoneIndex: 0, Amount: math.NewInt(50)},
		{JobId: 1, MilestoneIndex: 1, Amount: math.NewInt(50)},
		{JobId: 1, MilestoneIndex: 2, Amount: math.NewInt(50)},
	}
	gs.Balances = []types.AccountBalance{
		{Address: accAddr("holder"), Balance: math.NewInt(500)},
	}
	gs.Reputations = []types.ReputationRecord{
		{Provider: accAddr("bidder"), Score: 100, CompletedJobs: 1, TotalJobs: 1, TotalEarned: math.NewInt(150)},
	}
	gs.Treasury = math.NewInt(3)
	return gs
}

func TestGenesisState_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*types.GenesisState)
		wantErr string
	}{
		{
			name:   "default is valid",
			mutate: func(gs *types.GenesisState) { *gs = *types.DefaultGenesis() },
		},
		{
			name:   "populated state is valid",
			mutate: func(gs *types.GenesisState) {},
		},
		{
			name: "invalid params",
			mutate: func(gs *types.GenesisState) {
				gs.Params.ExpirySweepLimit = 0
			},
			wantErr: "invalid params",
		},
		{
			name: "duplicate resource id",
			mutate: func(gs *types.GenesisState) {
				gs.Resources = append(gs.Resources, gs.Resources[0])
			},
			wantErr: "duplicate resource id 1",
		},
		{
			name: "negative hourly rate",
			mutate: func(gs *types.GenesisState) {
				gs.Resources[0].HourlyRate = math.NewInt(-1)
			},
			wantErr: "negative hourly rate",
		},
		{
			name: "duplicate auction id",
			mutate: func(gs *types.GenesisState) {
				gs.Auctions = append(gs.Auctions, gs.Auctions[0])
			},
			wantErr: "duplicate auction id 1",
		},
		{
			name: "bid below starting price",
			mutate: func(gs *types.GenesisState) {
				gs.Auctions[0].CurrentBid = math.NewInt(50)
			},
			wantErr: "current bid below starting price",
		},
		{
			name: "reserved job id",
			mutate: func(gs *types.GenesisState) {
				gs.Jobs[0].Id = types.NoWinnerJobID
			},
			wantErr: "is reserved",
		},
		{
			name: "zero milestone count",
			mutate: func(gs *types.GenesisState) {
				gs.Jobs[0].MilestoneCount = 0
			},
			wantErr: "zero milestone count",
		},
		{
			name: "completed exceeds count",
			mutate: func(gs *types.GenesisState) {
				gs.Jobs[0].CompletedMilestones = 4
			},
			wantErr: "completed milestones exceed milestone count",
		},
		{
			name: "duplicate escrow entry",
			mutate: func(gs *types.GenesisState) {
				gs.Escrows = append(gs.Escrows, gs.Escrows[0])
			},
			wantErr: "duplicate escrow entry",
		},
		{
			name: "escrow for unknown job",
			mutate: func(gs *types.GenesisState) {
				gs.Escrows[0].JobId = 9
			},
			wantErr: "unknown job 9",
		},
		{
			name: "duplicate balance",
			mutate: func(gs *types.GenesisState) {
				gs.Balances = append(gs.Balances, gs.Balances[0])
			},
			wantErr: "duplicate balance",
		},
		{
			name: "negative balance",
			mutate: func(gs *types.GenesisState) {
				gs.Balances[0].Balance = math.NewInt(-1)
			},
			wantErr: "negative balance",
		},
		{
			name: "duplicate reputation",
			mutate: func(gs *types.GenesisState) {
				gs.Reputations = append(gs.Reputations, gs.Reputations[0])
			},
			wantErr: "duplicate reputation",
		},
		{
			name: "score above 100",
			mutate: func(gs *types.GenesisState) {
				gs.Reputations[0].Score = 101
			},
			wantErr: "exceeds 100",
		},
		{
			name: "negative treasury",
			mutate: func(gs *types.GenesisState) {
				gs.Treasury = math.NewInt(-1)
			},
			wantErr: "negative treasury",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gs := validGenesis()
			tc.mutate(gs)

			err := gs.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}
