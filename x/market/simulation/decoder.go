package simulation

import (
	"bytes"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/kv"

	"github.com/grid-chain/grid/x/market/keeper"
	"github.com/grid-chain/grid/x/market/types"
)

// NewDecodeStore returns a decoder function closure that unmarshals the KVPair's
// Value to the corresponding market type. Records are stored as JSON, ledger
// amounts as raw math.Int bytes and counters as big endian uint64.
func NewDecodeStore() func(kvA, kvB kv.Pair) string {
	return func(kvA, kvB kv.Pair) string {
		switch {
		case bytes.HasPrefix(kvA.Key, keeper.ResourceKeyPrefix):
			var resourceA, resourceB types.ComputeResource
			mustDecodeJSON(kvA.Value, &resourceA)
			mustDecodeJSON(kvB.Value, &resourceB)
			return fmt.Sprintf("%v\n%v", resourceA, resourceB)

		case bytes.HasPrefix(kvA.Key, keeper.AuctionKeyPrefix):
			var auctionA, auctionB types.Auction
			mustDecodeJSON(kvA.Value, &auctionA)
			mustDecodeJSON(kvB.Value, &auctionB)
			return fmt.Sprintf("%v\n%v", auctionA, auctionB)

		case bytes.HasPrefix(kvA.Key, keeper.JobKeyPrefix):
			var jobA, jobB types.Job
			mustDecodeJSON(kvA.Value, &jobA)
			mustDecodeJSON(kvB.Value, &jobB)
			return fmt.Sprintf("%v\n%v", jobA, jobB)

		case bytes.HasPrefix(kvA.Key, keeper.EscrowKeyPrefix):
			var escrowA, escrowB types.EscrowEntry
			mustDecodeJSON(kvA.Value, &escrowA)
			mustDecodeJSON(kvB.Value, &escrowB)
			return fmt.Sprintf("%v\n%v", escrowA, escrowB)

		case bytes.HasPrefix(kvA.Key, keeper.ReputationKeyPrefix):
			var repA, repB types.ReputationRecord
			mustDecodeJSON(kvA.Value, &repA)
			mustDecodeJSON(kvB.Value, &repB)
			return fmt.Sprintf("%v\n%v", repA, repB)

		case bytes.HasPrefix(kvA.Key, keeper.ParamsKey):
			var paramsA, paramsB types.Params
			mustDecodeJSON(kvA.Value, &paramsA)
			mustDecodeJSON(kvB.Value, &paramsB)
			return fmt.Sprintf("%v\n%v", paramsA, paramsB)

		case bytes.HasPrefix(kvA.Key, keeper.BalanceKeyPrefix),
			bytes.HasPrefix(kvA.Key, keeper.TreasuryKey):
			return fmt.Sprintf("%v\n%v", mustDecodeInt(kvA.Value), mustDecodeInt(kvB.Value))

		case bytes.HasPrefix(kvA.Key, keeper.ResourceCountKey),
			bytes.HasPrefix(kvA.Key, keeper.AuctionCountKey),
			bytes.HasPrefix(kvA.Key, keeper.JobCountKey),
			bytes.HasPrefix(kvA.Key, keeper.ResourceByProviderPrefix),
			bytes.HasPrefix(kvA.Key, keeper.AuctionByEndHeightPrefix):
			return fmt.Sprintf("%d\n%d", sdk.BigEndianToUint64(kvA.Value), sdk.BigEndianToUint64(kvB.Value))

		default:
			panic(fmt.Sprintf("invalid %s key prefix %X", types.ModuleName, kvA.Key[:1]))
		}
	}
}

func mustDecodeJSON(bz []byte, v interface{}) {
	if err := json.Unmarshal(bz, v); err != nil {
		panic(err)
	}
}

func mustDecodeInt(bz []byte) math.Int {
	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		panic(err)
	}
	return amount
}
