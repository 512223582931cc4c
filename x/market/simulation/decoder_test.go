package simulation

import (
	"encoding/json"
	"fmt"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/kv"
	"github.com/stretchr/testify/require"

	"github.com/grid-chain/grid/x/market/keeper"
	"github.com/grid-chain/grid/x/market/types"
)

func mustJSON(t *testing.T, v interface{}) []byte {
	t.Helper()
	bz, err := json.Marshal(v)
	require.NoError(t, err)
	return bz
}

func TestDecodeStore(t *testing.T) {
	dec := NewDecodeStore()

	resource := types.ComputeResource{
		Id:         1,
		Provider:   "grid1qpzry9x8gf2tvdw0s3jn54khce6mua7lqpzry9",
		Spec:       types.ResourceSpec{GpuCount: 4, CpuCores: 32, MemoryGb: 128},
		HourlyRate: math.NewInt(500),
		Available:  true,
	}
	auction := types.Auction{
		Id:            7,
		Requester:     "grid1qpzry9x8gf2tvdw0s3jn54khce6mua7lqpzry9",
		StartingPrice: math.NewInt(100),
		CurrentBid:    math.NewInt(250),
		EndHeight:     100,
	}
	job := types.Job{
		Id:             3,
		AuctionId:      7,
		TotalPayment:   math.NewInt(250),
		MilestoneCount: 3,
	}
	escrow := types.EscrowEntry{JobId: 3, MilestoneIndex: 1, Amount: math.NewInt(83)}

	balance := math.NewInt(123456)
	balanceBz, err := balance.Marshal()
	require.NoError(t, err)

	params := types.DefaultParams()

	tests := []struct {
		name     string
		kvA, kvB kv.Pair
		want     string
	}{
		{
			"resource",
			kv.Pair{Key: keeper.ResourceKey(1), Value: mustJSON(t, &resource)},
			kv.Pair{Key: keeper.ResourceKey(1), Value: mustJSON(t, &resource)},
			fmt.Sprintf("%v\n%v", resource, resource),
		},
		{
			"auction",
			kv.Pair{Key: keeper.AuctionKey(7), Value: mustJSON(t, &auction)},
			kv.Pair{Key: keeper.AuctionKey(7), Value: mustJSON(t, &auction)},
			fmt.Sprintf("%v\n%v", auction, auction),
		},
		{
			"job",
			kv.Pair{Key: keeper.JobKey(3), Value: mustJSON(t, &job)},
			kv.Pair{Key: keeper.JobKey(3), Value: mustJSON(t, &job)},
			fmt.Sprintf("%v\n%v", job, job),
		},
		{
			"escrow",
			kv.Pair{Key: keeper.EscrowKey(3, 1), Value: mustJSON(t, &escrow)},
			kv.Pair{Key: keeper.EscrowKey(3, 1), Value: mustJSON(t, &escrow)},
			fmt.Sprintf("%v\n%v", escrow, escrow),
		},
		{
			"balance",
			kv.Pair{Key: keeper.BalanceKeyPrefix, Value: balanceBz},
			kv.Pair{Key: keeper.BalanceKeyPrefix, Value: balanceBz},
			fmt.Sprintf("%v\n%v", balance, balance),
		},
		{
			"treasury",
			kv.Pair{Key: keeper.TreasuryKey, Value: balanceBz},
			kv.Pair{Key: keeper.TreasuryKey, Value: balanceBz},
			fmt.Sprintf("%v\n%v", balance, balance),
		},
		{
			"counter",
			kv.Pair{Key: keeper.ResourceCountKey, Value: sdk.Uint64ToBigEndian(42)},
			kv.Pair{Key: keeper.ResourceCountKey, Value: sdk.Uint64ToBigEndian(42)},
			"42\n42",
		},
		{
			"params",
			kv.Pair{Key: keeper.ParamsKey, Value: mustJSON(t, &params)},
			kv.Pair{Key: keeper.ParamsKey, Value: mustJSON(t, &params)},
			fmt.Sprintf("%v\n%v", params, params),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, dec(tt.kvA, tt.kvB))
		})
	}

	t.Run("unknown prefix", func(t *testing.T) {
		require.Panics(t, func() {
			dec(kv.Pair{Key: []byte{0xFF}, Value: []byte{}}, kv.Pair{Key: []byte{0xFF}, Value: []byte{}})
		})
	})
}
