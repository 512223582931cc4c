package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// GenesisState is the full exported state of the market module.
type GenesisState struct {
	Params         Params             `json:"params"`
	Resources      []ComputeResource  `json:"resources"`
	NextResourceId uint64             `json:"next_resource_id"`
	Auctions       []Auction          `json:"auctions"`
	NextAuctionId  uint64             `json:"next_auction_id"`
	Jobs           []Job              `json:"jobs"`
	NextJobId      uint64             `json:"next_job_id"`
	Escrows        []EscrowEntry      `json:"escrows"`
	Balances       []AccountBalance   `json:"balances"`
	Reputations    []ReputationRecord `json:"reputations"`
	Treasury       math.Int           `json:"treasury"`
}

// DefaultGenesis returns the default genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:         DefaultParams(),
		NextResourceId: 1,
		NextAuctionId:  1,
		NextJobId:      1,
		Treasury:       math.ZeroInt(),
	}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	resourceIDs := make(map[uint64]struct{}, len(gs.Resources))
	for _, resource := range gs.Resources {
		if _, ok := resourceIDs[resource.Id]; ok {
			return fmt.Errorf("duplicate resource id %d", resource.Id)
		}
		resourceIDs[resource.Id] = struct{}{}
		if resource.HourlyRate.IsNil() || resource.HourlyRate.IsNegative() {
			return fmt.Errorf("resource %d: negative hourly rate", resource.Id)
		}
	}

	auctionIDs := make(map[uint64]struct{}, len(gs.Auctions))
	for _, auction := range gs.Auctions {
		if _, ok := auctionIDs[auction.Id]; ok {
			return fmt.Errorf("duplicate auction id %d", auction.Id)
		}
		auctionIDs[auction.Id] = struct{}{}
		if auction.StartingPrice.IsNil() || auction.StartingPrice.IsNegative() {
			return fmt.Errorf("auction %d: negative starting price", auction.Id)
		}
		if auction.CurrentBid.IsNil() || auction.CurrentBid.LT(auction.StartingPrice) {
			return fmt.Errorf("auction %d: current bid below starting price", auction.Id)
		}
	}

	jobIDs := make(map[uint64]struct{}, len(gs.Jobs))
	for _, job := range gs.Jobs {
		if job.Id == NoWinnerJobID {
			return fmt.Errorf("job id %d is reserved", NoWinnerJobID)
		}
		if _, ok := jobIDs[job.Id]; ok {
			return fmt.Errorf("duplicate job id %d", job.Id)
		}
		jobIDs[job.Id] = struct{}{}
		if job.TotalPayment.IsNil() || job.TotalPayment.IsNegative() {
			return fmt.Errorf("job %d: negative total payment", job.Id)
		}
		if job.MilestoneCount == 0 {
			return fmt.Errorf("job %d: zero milestone count", job.Id)
		}
		if job.CompletedMilestones > job.MilestoneCount {
			return fmt.Errorf("job %d: completed milestones exceed milestone count", job.Id)
		}
	}

	escrowKeys := make(map[string]struct{}, len(gs.Escrows))
	for _, entry := range gs.Escrows {
		key := fmt.Sprintf("%d/%d", entry.JobId, entry.MilestoneIndex)
		if _, ok := escrowKeys[key]; ok {
			return fmt.Errorf("duplicate escrow entry for job %d milestone %d", entry.JobId, entry.MilestoneIndex)
		}
		escrowKeys[key] = struct{}{}
		if _, ok := jobIDs[entry.JobId]; !ok {
			return fmt.Errorf("escrow entry references unknown job %d", entry.JobId)
		}
		if entry.Amount.IsNil() || entry.Amount.IsNegative() {
			return fmt.Errorf("escrow entry for job %d milestone %d: negative amount", entry.JobId, entry.MilestoneIndex)
		}
	}

	balanceAddrs := make(map[string]struct{}, len(gs.Balances))
	for _, balance := range gs.Balances {
		if _, ok := balanceAddrs[balance.Address]; ok {
			return fmt.Errorf("duplicate balance for address %s", balance.Address)
		}
		balanceAddrs[balance.Address] = struct{}{}
		if balance.Balance.IsNil() || balance.Balance.IsNegative() {
			return fmt.Errorf("negative balance for address %s", balance.Address)
		}
	}

	reputationAddrs := make(map[string]struct{}, len(gs.Reputations))
	for _, record := range gs.Reputations {
		if _, ok := reputationAddrs[record.Provider]; ok {
			return fmt.Errorf("duplicate reputation record for provider %s", record.Provider)
		}
		reputationAddrs[record.Provider] = struct{}{}
		if record.Score > 100 {
			return fmt.Errorf("reputation score %d for provider %s exceeds 100", record.Score, record.Provider)
		}
		if record.CompletedJobs > record.TotalJobs {
			return fmt.Errorf("provider %s: completed jobs exceed total jobs", record.Provider)
		}
		if record.TotalEarned.IsNil() || record.TotalEarned.IsNegative() {
			return fmt.Errorf("provider %s: negative total earned", record.Provider)
		}
	}

	if gs.Treasury.IsNil() || gs.Treasury.IsNegative() {
		return fmt.Errorf("negative treasury balance")
	}

	return nil
}
