package types

import (
	"cosmossdk.io/math"

	"github.com/cosmos/cosmos-sdk/types/query"
)

// QueryParamsRequest is the request type for the Query/Params RPC method.
type QueryParamsRequest struct{}

// QueryParamsResponse is the response type for the Query/Params RPC method.
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryResourceRequest fetches a single resource listing by id.
type QueryResourceRequest struct {
	Id uint64 `json:"id"`
}

type QueryResourceResponse struct {
	Resource ComputeResource `json:"resource"`
}

// QueryResourcesRequest lists resource listings, optionally restricted to
// one provider.
type QueryResourcesRequest struct {
	Provider   string             `json:"provider,omitempty"`
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

type QueryResourcesResponse struct {
	Resources  []ComputeResource   `json:"resources"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

// QueryAuctionRequest fetches a single auction by id.
type QueryAuctionRequest struct {
	Id uint64 `json:"id"`
}

type QueryAuctionResponse struct {
	Auction Auction `json:"auction"`
}

// QueryAuctionsRequest lists auctions. With ActiveOnly set, auctions that
// have ended or whose bidding window has elapsed are skipped.
type QueryAuctionsRequest struct {
	ActiveOnly bool               `json:"active_only,omitempty"`
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

type QueryAuctionsResponse struct {
	Auctions   []Auction           `json:"auctions"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

// QueryAuctionActiveRequest asks whether an auction is still accepting bids.
type QueryAuctionActiveRequest struct {
	Id uint64 `json:"id"`
}

type QueryAuctionActiveResponse struct {
	Active bool `json:"active"`
}

// QueryJobRequest fetches a single job by id.
type QueryJobRequest struct {
	Id uint64 `json:"id"`
}

type QueryJobResponse struct {
	Job Job `json:"job"`
}

// QueryJobsRequest lists jobs, optionally filtered by provider or
// requester address.
type QueryJobsRequest struct {
	Provider   string             `json:"provider,omitempty"`
	Requester  string             `json:"requester,omitempty"`
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

type QueryJobsResponse struct {
	Jobs       []Job               `json:"jobs"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

// QueryEscrowRequest fetches the milestone escrow entries of a job.
type QueryEscrowRequest struct {
	JobId uint64 `json:"job_id"`
}

// QueryEscrowResponse lists a job's escrow entries together with the total
// amount still held.
type QueryEscrowResponse struct {
	Entries   []EscrowEntry `json:"entries"`
	Remaining math.Int      `json:"remaining"`
}

// QueryProviderReputationRequest fetches a provider's reputation record.
type QueryProviderReputationRequest struct {
	Provider string `json:"provider"`
}

type QueryProviderReputationResponse struct {
	Reputation ReputationRecord `json:"reputation"`
}

// QueryBalanceRequest fetches an account's marketplace balance.
type QueryBalanceRequest struct {
	Address string `json:"address"`
}

type QueryBalanceResponse struct {
	Balance math.Int `json:"balance"`
}

// QueryTreasuryRequest fetches the accumulated platform fee balance.
type QueryTreasuryRequest struct{}

type QueryTreasuryResponse struct {
	Balance math.Int `json:"balance"`
}
