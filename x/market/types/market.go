package types

import (
	"cosmossdk.io/math"
)

// JobStatus is the lifecycle state of a compute job.
type JobStatus int32

const (
	JOB_STATUS_ACTIVE    JobStatus = 0
	JOB_STATUS_COMPLETED JobStatus = 1
	// JOB_STATUS_DISPUTED is reserved for a future dispute flow. No
	// operation currently transitions a job into this state.
	JOB_STATUS_DISPUTED JobStatus = 2
)

// String returns the lowercase name used in events and error messages.
func (s JobStatus) String() string {
	switch s {
	case JOB_STATUS_ACTIVE:
		return "active"
	case JOB_STATUS_COMPLETED:
		return "completed"
	case JOB_STATUS_DISPUTED:
		return "disputed"
	default:
		return "unknown"
	}
}

// DefaultReputationScore is the neutral prior assigned to providers with no
// job history. First reads return 50, not 0.
const DefaultReputationScore = uint32(50)

// ResourceSpec describes hardware capacity, either offered by a listing or
// demanded by an auction.
type ResourceSpec struct {
	GpuCount uint64 `json:"gpu_count"`
	CpuCores uint64 `json:"cpu_cores"`
	MemoryGb uint64 `json:"memory_gb"`
}

// ComputeResource is a provider's listed hardware offer.
type ComputeResource struct {
	Id         uint64       `json:"id"`
	Provider   string       `json:"provider"`
	Spec       ResourceSpec `json:"spec"`
	HourlyRate math.Int     `json:"hourly_rate"`
	// Available is set to true at listing time and is never read or
	// toggled by any operation. Dead state held for a reservation
	// feature that does not exist yet.
	Available     bool  `json:"available"`
	CreatedHeight int64 `json:"created_height"`
}

// Auction is a timed highest-bid-wins sale of compute capacity.
type Auction struct {
	Id            uint64       `json:"id"`
	Requester     string       `json:"requester"`
	Requirements  ResourceSpec `json:"requirements"`
	MaxDuration   uint64       `json:"max_duration"`
	StartingPrice math.Int     `json:"starting_price"`
	// CurrentBid starts at StartingPrice and only moves up; it always
	// equals the most recently accepted bid once a bidder exists.
	CurrentBid math.Int `json:"current_bid"`
	// CurrentBidder is empty until the first bid strictly above the
	// starting price is accepted.
	CurrentBidder string `json:"current_bidder"`
	EndHeight     int64  `json:"end_height"`
	Ended         bool   `json:"ended"`
	CreatedHeight int64  `json:"created_height"`
}

// HasBidder reports whether any bid has been accepted on the auction.
func (a Auction) HasBidder() bool {
	return a.CurrentBidder != ""
}

// IsActiveAt reports whether the auction accepts bids at the given height.
func (a Auction) IsActiveAt(height int64) bool {
	return !a.Ended && height < a.EndHeight
}

// Job is a settled auction awaiting milestone-based payment.
type Job struct {
	Id                  uint64    `json:"id"`
	AuctionId           uint64    `json:"auction_id"`
	Requester           string    `json:"requester"`
	Provider            string    `json:"provider"`
	TotalPayment        math.Int  `json:"total_payment"`
	MilestoneCount      uint64    `json:"milestone_count"`
	CompletedMilestones uint64    `json:"completed_milestones"`
	ExecutionProof      string    `json:"execution_proof,omitempty"`
	Status              JobStatus `json:"status"`
}

// EscrowEntry is one milestone's share of a job's total payment, held by the
// module until the requester releases it.
type EscrowEntry struct {
	JobId          uint64   `json:"job_id"`
	MilestoneIndex uint64   `json:"milestone_index"`
	Amount         math.Int `json:"amount"`
	Released       bool     `json:"released"`
}

// AccountBalance is a user's custodial marketplace balance. Funds enter and
// leave it only through deposits and withdrawals; settlements move value
// between balances without touching the bank.
type AccountBalance struct {
	Address string   `json:"address"`
	Balance math.Int `json:"balance"`
}

// ReputationRecord tracks a provider's completion history.
type ReputationRecord struct {
	Provider      string   `json:"provider"`
	Score         uint32   `json:"score"`
	CompletedJobs uint64   `json:"completed_jobs"`
	TotalJobs     uint64   `json:"total_jobs"`
	TotalEarned   math.Int `json:"total_earned"`
}

// NewReputationRecord returns the neutral-prior record for a provider with
// no history.
func NewReputationRecord(provider string) ReputationRecord {
	return ReputationRecord{
		Provider:    provider,
		Score:       DefaultReputationScore,
		TotalEarned: math.ZeroInt(),
	}
}

// RecordCompletion folds one fully settled job into the record and
// recomputes the score as completed_jobs * 100 / total_jobs, clamped to
// [0, 100]. The lower clamp cannot fire for non-negative counters; it is
// kept so the bound is explicit at the single place the score is computed.
func (r *ReputationRecord) RecordCompletion(earned math.Int) {
	r.CompletedJobs++
	r.TotalJobs++
	if r.TotalEarned.IsNil() {
		r.TotalEarned = math.ZeroInt()
	}
	r.TotalEarned = r.TotalEarned.Add(earned)

	score := r.CompletedJobs * 100 / r.TotalJobs
	if score > 100 {
		score = 100
	}
	r.Score = uint32(score)
}

// SplitMilestoneAmounts partitions total across count milestones: equal
// integer-division shares for all but the last, with the last absorbing the
// remainder so the shares always sum to total exactly. count must be at
// least 1.
func SplitMilestoneAmounts(total math.Int, count uint64) []math.Int {
	amounts := make([]math.Int, count)
	share := total.QuoRaw(int64(count))

	allocated := math.ZeroInt()
	for i := uint64(0); i+1 < count; i++ {
		amounts[i] = share
		allocated = allocated.Add(share)
	}
	amounts[count-1] = total.Sub(allocated)

	return amounts
}
