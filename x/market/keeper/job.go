package keeper

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"cosmossdk.io/math"
	"cosmossdk.io/store/prefix"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/grid-chain/grid/x/market/types"
)

// createJobFromAuction turns a settled auction into an active job. The
// winning bidder becomes the provider, the auction's requester stays the
// requester, and the full winning bid is partitioned into the fixed
// milestone escrows. Auctions carry no milestone configuration; every job
// gets the same split.
func (k Keeper) createJobFromAuction(ctx sdk.Context, auction types.Auction) uint64 {
	id := k.GetNextJobID(ctx)

	job := types.Job{
		Id:             id,
		AuctionId:      auction.Id,
		Requester:      auction.Requester,
		Provider:       auction.CurrentBidder,
		TotalPayment:   auction.CurrentBid,
		MilestoneCount: types.JobMilestoneCount,
		Status:         types.JOB_STATUS_ACTIVE,
	}
	k.SetJob(ctx, job)
	k.setNextJobID(ctx, id+1)
	k.setupEscrow(ctx, id, job.TotalPayment, job.MilestoneCount)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeJobCreated,
		sdk.NewAttribute(types.AttributeKeyJobID, fmt.Sprintf("%d", id)),
		sdk.NewAttribute(types.AttributeKeyAuctionID, fmt.Sprintf("%d", auction.Id)),
		sdk.NewAttribute(types.AttributeKeyProvider, job.Provider),
		sdk.NewAttribute(types.AttributeKeyRequester, job.Requester),
		sdk.NewAttribute(types.AttributeKeyAmount, job.TotalPayment.String()),
		sdk.NewAttribute(types.AttributeKeyMilestoneCount, fmt.Sprintf("%d", job.MilestoneCount)),
	))

	return id
}

// setupEscrow partitions total into count escrow entries, one per
// milestone. Shares use integer division with the last milestone absorbing
// the remainder, so the entries sum to total exactly.
func (k Keeper) setupEscrow(ctx sdk.Context, jobID uint64, total math.Int, count uint64) {
	amounts := types.SplitMilestoneAmounts(total, count)
	for i, amount := range amounts {
		k.SetEscrowEntry(ctx, types.EscrowEntry{
			JobId:          jobID,
			MilestoneIndex: uint64(i),
			Amount:         amount,
		})
	}
}

// SetJob writes a job record.
func (k Keeper) SetJob(ctx sdk.Context, job types.Job) {
	ctx.KVStore(k.storeKey).Set(JobKey(job.Id), mustMarshal(&job))
}

// GetJob returns the job with the given id.
func (k Keeper) GetJob(ctx sdk.Context, id uint64) (types.Job, bool) {
	bz := ctx.KVStore(k.storeKey).Get(JobKey(id))
	if bz == nil {
		return types.Job{}, false
	}
	var job types.Job
	mustUnmarshal(bz, &job)
	return job, true
}

// GetNextJobID returns the id the next job will receive. Ids start at 1;
// zero is the no-winner sentinel and is never stored.
func (k Keeper) GetNextJobID(ctx sdk.Context) uint64 {
	bz := ctx.KVStore(k.storeKey).Get(JobCountKey)
	if bz == nil {
		return 1
	}
	return sdk.BigEndianToUint64(bz)
}

func (k Keeper) setNextJobID(ctx sdk.Context, id uint64) {
	ctx.KVStore(k.storeKey).Set(JobCountKey, uint64ToBytes(id))
}

// SetEscrowEntry writes one milestone's escrow entry.
func (k Keeper) SetEscrowEntry(ctx sdk.Context, entry types.EscrowEntry) {
	ctx.KVStore(k.storeKey).Set(EscrowKey(entry.JobId, entry.MilestoneIndex), mustMarshal(&entry))
}

// GetEscrowEntry returns the escrow entry for one milestone of a job.
func (k Keeper) GetEscrowEntry(ctx sdk.Context, jobID, milestoneIndex uint64) (types.EscrowEntry, bool) {
	bz := ctx.KVStore(k.storeKey).Get(EscrowKey(jobID, milestoneIndex))
	if bz == nil {
		return types.EscrowEntry{}, false
	}
	var entry types.EscrowEntry
	mustUnmarshal(bz, &entry)
	return entry, true
}

// GetJobEscrows returns a job's escrow entries in milestone order.
func (k Keeper) GetJobEscrows(ctx sdk.Context, jobID uint64) []types.EscrowEntry {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), EscrowJobIteratorPrefix(jobID))
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	var entries []types.EscrowEntry
	for ; iterator.Valid(); iterator.Next() {
		var entry types.EscrowEntry
		mustUnmarshal(iterator.Value(), &entry)
		entries = append(entries, entry)
	}
	return entries
}

// GetEscrowBalance returns the total amount still held in escrow for a
// job, the sum over its unreleased milestones.
func (k Keeper) GetEscrowBalance(ctx sdk.Context, jobID uint64) math.Int {
	balance := math.ZeroInt()
	for _, entry := range k.GetJobEscrows(ctx, jobID) {
		if !entry.Released {
			balance = balance.Add(entry.Amount)
		}
	}
	return balance
}

// SubmitExecutionProof records the provider's proof on an active job and
// moves the job to completed. The proof payload is stored as given; its
// content is not verified.
func (k Keeper) SubmitExecutionProof(ctx sdk.Context, provider sdk.AccAddress, jobID uint64, proof string) error {
	job, found := k.GetJob(ctx, jobID)
	if !found {
		return types.ErrJobNotFound.Wrapf("job %d does not exist", jobID)
	}
	if provider.String() != job.Provider {
		return types.ErrNotAuthorized.Wrapf("only the job provider may submit a proof for job %d", jobID)
	}
	if job.Status != types.JOB_STATUS_ACTIVE {
		return types.ErrAlreadyCompleted.Wrapf("job %d is %s", jobID, job.Status)
	}

	job.ExecutionProof = proof
	job.Status = types.JOB_STATUS_COMPLETED
	k.SetJob(ctx, job)

	proofHash := sha256.Sum256([]byte(proof))
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeProofSubmitted,
		sdk.NewAttribute(types.AttributeKeyJobID, fmt.Sprintf("%d", jobID)),
		sdk.NewAttribute(types.AttributeKeyProvider, job.Provider),
		sdk.NewAttribute(types.AttributeKeyProofHash, hex.EncodeToString(proofHash[:])),
	))

	return nil
}

// ReleaseMilestone pays one escrowed milestone out to the job's provider,
// net of the platform fee, and credits the fee to the treasury. Only the
// job's requester may release. Releasing the final milestone folds the job
// into the provider's reputation exactly once.
//
// A release does not require an execution proof: the requester can pay out
// every milestone of a job whose provider never submitted one. Proof
// submission and milestone release are independent acts.
func (k Keeper) ReleaseMilestone(ctx sdk.Context, requester sdk.AccAddress, jobID, milestoneIndex uint64) error {
	job, found := k.GetJob(ctx, jobID)
	if !found {
		return types.ErrJobNotFound.Wrapf("job %d does not exist", jobID)
	}
	if requester.String() != job.Requester {
		return types.ErrNotAuthorized.Wrapf("only the job requester may release milestones of job %d", jobID)
	}
	if milestoneIndex >= job.MilestoneCount {
		return types.ErrMilestoneNotReady.Wrapf("job %d has %d milestones, index %d out of range", jobID, job.MilestoneCount, milestoneIndex)
	}
	entry, found := k.GetEscrowEntry(ctx, jobID, milestoneIndex)
	if !found {
		return types.ErrMilestoneNotReady.Wrapf("no escrow entry for job %d milestone %d", jobID, milestoneIndex)
	}
	if entry.Released {
		return types.ErrAlreadyCompleted.Wrapf("milestone %d of job %d already released", milestoneIndex, jobID)
	}

	fee := entry.Amount.MulRaw(types.PlatformFeeNumerator).QuoRaw(types.PlatformFeeDenominator)
	payout := entry.Amount.Sub(fee)

	provider, err := sdk.AccAddressFromBech32(job.Provider)
	if err != nil {
		panic(err)
	}
	k.CreditBalance(ctx, provider, payout)
	k.addToTreasury(ctx, fee)

	entry.Released = true
	k.SetEscrowEntry(ctx, entry)

	job.CompletedMilestones++
	k.SetJob(ctx, job)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeMilestoneReleased,
		sdk.NewAttribute(types.AttributeKeyJobID, fmt.Sprintf("%d", jobID)),
		sdk.NewAttribute(types.AttributeKeyMilestoneIndex, fmt.Sprintf("%d", milestoneIndex)),
		sdk.NewAttribute(types.AttributeKeyProvider, job.Provider),
		sdk.NewAttribute(types.AttributeKeyAmount, entry.Amount.String()),
		sdk.NewAttribute(types.AttributeKeyFee, fee.String()),
		sdk.NewAttribute(types.AttributeKeyPayout, payout.String()),
	))

	if job.CompletedMilestones == job.MilestoneCount {
		k.recordJobCompletion(ctx, provider, job.TotalPayment)
	}

	return nil
}

// IterateJobs visits every job in id order until cb returns true.
func (k Keeper) IterateJobs(ctx sdk.Context, cb func(types.Job) bool) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), JobKeyPrefix)
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var job types.Job
		mustUnmarshal(iterator.Value(), &job)
		if cb(job) {
			break
		}
	}
}

// GetAllJobs returns every job, ordered by id.
func (k Keeper) GetAllJobs(ctx sdk.Context) []types.Job {
	var jobs []types.Job
	k.IterateJobs(ctx, func(job types.Job) bool {
		jobs = append(jobs, job)
		return false
	})
	return jobs
}

// GetAllEscrowEntries returns every escrow entry, ordered by job id then
// milestone index.
func (k Keeper) GetAllEscrowEntries(ctx sdk.Context) []types.EscrowEntry {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), EscrowKeyPrefix)
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	var entries []types.EscrowEntry
	for ; iterator.Valid(); iterator.Next() {
		var entry types.EscrowEntry
		mustUnmarshal(iterator.Value(), &entry)
		entries = append(entries, entry)
	}
	return entries
}
