package fuzz

import (
	"bytes"
	"testing"

	"cosmossdk.io/math"
	"github.com/cosmos/gogoproto/proto"

	markettypes "github.com/grid-chain/grid/x/market/types"
)

// The market module stores state and moves messages as canonical JSON behind
// the gogoproto marshaler surface. These fuzzes drive arbitrary bytes through
// the same proto.Unmarshal path the codec uses and check the guarantees the
// wire layer itself makes: malformed input is rejected cleanly, canonical
// bytes always decode, and one encode pass reaches a fixed point. Value-level
// rules (non-negative amounts, status transitions) are enforced by
// ValidateBasic and the keeper, not the codec, so they are not asserted here.

// FuzzAuctionWire tests Auction wire decoding against hostile input.
func FuzzAuctionWire(f *testing.F) {
	seeds := [][]byte{
		mustMarshal(&markettypes.Auction{
			Id:            1,
			Requester:     "grid1requester",
			Requirements:  markettypes.ResourceSpec{GpuCount: 2, CpuCores: 16, MemoryGb: 64},
			MaxDuration:   24,
			StartingPrice: math.NewInt(1000000),
			CurrentBid:    math.NewInt(1500000),
			CurrentBidder: "grid1bidder",
			EndHeight:     144,
		}),
		[]byte(`{}`),
		[]byte(`{"id":7,"current_bid":"-5"}`),
		[]byte(`{"starting_price":"not a number"}`),
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		var auction markettypes.Auction
		if err := proto.Unmarshal(data, &auction); err != nil {
			// Malformed wire bytes are acceptable
			return
		}

		// INVARIANT 1: anything that decoded must re-encode
		canonical, err := proto.Marshal(&auction)
		if err != nil {
			t.Fatalf("failed to re-marshal decoded auction: %v", err)
		}

		// INVARIANT 2: canonical bytes always decode
		var second markettypes.Auction
		if err := proto.Unmarshal(canonical, &second); err != nil {
			t.Fatalf("canonical auction bytes failed to decode: %v", err)
		}

		// INVARIANT 3: one encode pass is a fixed point
		again, err := proto.Marshal(&second)
		if err != nil {
			t.Fatalf("failed to marshal roundtripped auction: %v", err)
		}
		if !bytes.Equal(canonical, again) {
			t.Errorf("auction encoding not stable:\n first: %s\nsecond: %s", canonical, again)
		}

		// INVARIANT 4: encoding normalizes absent amounts to zero
		if second.StartingPrice.IsNil() || second.CurrentBid.IsNil() {
			t.Errorf("nil amount survived an encode pass: %s", canonical)
		}

		if second.Id != auction.Id || second.CurrentBidder != auction.CurrentBidder {
			t.Errorf("auction identity changed across roundtrip: %s", canonical)
		}
	})
}

// FuzzJobWire tests Job wire decoding against hostile input.
func FuzzJobWire(f *testing.F) {
	seeds := [][]byte{
		mustMarshal(&markettypes.Job{
			Id:             3,
			AuctionId:      1,
			Requester:      "grid1requester",
			Provider:       "grid1provider",
			TotalPayment:   math.NewInt(1500000),
			MilestoneCount: 3,
			ExecutionProof: "sha256:abc",
			Status:         markettypes.JOB_STATUS_COMPLETED,
		}),
		[]byte(`{}`),
		[]byte(`{"id":1,"status":99}`),
		[]byte(`{"total_payment":5}`),
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		var job markettypes.Job
		if err := proto.Unmarshal(data, &job); err != nil {
			return
		}

		canonical, err := proto.Marshal(&job)
		if err != nil {
			t.Fatalf("failed to re-marshal decoded job: %v", err)
		}

		var second markettypes.Job
		if err := proto.Unmarshal(canonical, &second); err != nil {
			t.Fatalf("canonical job bytes failed to decode: %v", err)
		}

		again, err := proto.Marshal(&second)
		if err != nil {
			t.Fatalf("failed to marshal roundtripped job: %v", err)
		}
		if !bytes.Equal(canonical, again) {
			t.Errorf("job encoding not stable:\n first: %s\nsecond: %s", canonical, again)
		}

		if second.TotalPayment.IsNil() {
			t.Errorf("nil total payment survived an encode pass: %s", canonical)
		}
		if second.Status != job.Status || second.ExecutionProof != job.ExecutionProof {
			t.Errorf("job fields changed across roundtrip: %s", canonical)
		}
	})
}

// FuzzParamsWire tests Params wire decoding against hostile input.
func FuzzParamsWire(f *testing.F) {
	seeds := [][]byte{
		mustMarshal(&markettypes.Params{ExpirySweepEnabled: true, ExpirySweepLimit: 200}),
		[]byte(`{}`),
		[]byte(`{"expiry_sweep_limit":0}`),
		[]byte(`{"expiry_sweep_enabled":true,"expiry_sweep_limit":10001}`),
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		var params markettypes.Params
		if err := proto.Unmarshal(data, &params); err != nil {
			return
		}

		canonical, err := proto.Marshal(&params)
		if err != nil {
			t.Fatalf("failed to re-marshal decoded params: %v", err)
		}

		var second markettypes.Params
		if err := proto.Unmarshal(canonical, &second); err != nil {
			t.Fatalf("canonical params bytes failed to decode: %v", err)
		}
		if second != params {
			t.Errorf("params changed across roundtrip: %s", canonical)
		}

		// Validate is a pure function of the fields, so its verdict must
		// survive the roundtrip.
		if (params.Validate() == nil) != (second.Validate() == nil) {
			t.Errorf("params validity changed across roundtrip: %s", canonical)
		}
	})
}

func mustMarshal(pb proto.Message) []byte {
	bz, err := proto.Marshal(pb)
	if err != nil {
		panic(err)
	}
	return bz
}
