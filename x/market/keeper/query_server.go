package keeper

import (
	"context"

	"cosmossdk.io/store/prefix"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/grid-chain/grid/x/market/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the market QueryServer
// interface for the provided Keeper.
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

const (
	defaultQueryLimit = 100
	maxQueryLimit     = 1000
)

func sanitizePagination(req *query.PageRequest) *query.PageRequest {
	if req == nil {
		return &query.PageRequest{Limit: defaultQueryLimit}
	}
	sanitized := *req
	if sanitized.Limit == 0 {
		sanitized.Limit = defaultQueryLimit
	}
	if sanitized.Limit > maxQueryLimit {
		sanitized.Limit = maxQueryLimit
	}
	return &sanitized
}

func (k queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	return &types.QueryParamsResponse{Params: k.GetParams(ctx)}, nil
}

func (k queryServer) Resource(goCtx context.Context, req *types.QueryResourceRequest) (*types.QueryResourceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	resource, found := k.GetResource(ctx, req.Id)
	if !found {
		return nil, status.Errorf(codes.NotFound, "resource %d not found", req.Id)
	}
	return &types.QueryResourceResponse{Resource: resource}, nil
}

func (k queryServer) Resources(goCtx context.Context, req *types.QueryResourcesRequest) (*types.QueryResourcesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	pagination := sanitizePagination(req.Pagination)

	resources := make([]types.ComputeResource, 0, pagination.Limit)
	var (
		pageRes *query.PageResponse
		err     error
	)

	if req.Provider != "" {
		provider, perr := sdk.AccAddressFromBech32(req.Provider)
		if perr != nil {
			return nil, status.Error(codes.InvalidArgument, "invalid provider address")
		}
		indexStore := prefix.NewStore(ctx.KVStore(k.storeKey), ResourceByProviderIteratorPrefix(provider))
		pageRes, err = query.Paginate(indexStore, pagination, func(key, value []byte) error {
			resource, found := k.GetResource(ctx, sdk.BigEndianToUint64(value))
			if found {
				resources = append(resources, resource)
			}
			return nil
		})
	} else {
		store := prefix.NewStore(ctx.KVStore(k.storeKey), ResourceKeyPrefix)
		pageRes, err = query.Paginate(store, pagination, func(key, value []byte) error {
			var resource types.ComputeResource
			mustUnmarshal(value, &resource)
			resources = append(resources, resource)
			return nil
		})
	}
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryResourcesResponse{Resources: resources, Pagination: pageRes}, nil
}

func (k queryServer) Auction(goCtx context.Context, req *types.QueryAuctionRequest) (*types.QueryAuctionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	auction, found := k.GetAuction(ctx, req.Id)
	if !found {
		return nil, status.Errorf(codes.NotFound, "auction %d not found", req.Id)
	}
	return &types.QueryAuctionResponse{Auction: auction}, nil
}

func (k queryServer) Auctions(goCtx context.Context, req *types.QueryAuctionsRequest) (*types.QueryAuctionsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	pagination := sanitizePagination(req.Pagination)

	auctions := make([]types.Auction, 0, pagination.Limit)
	store := prefix.NewStore(ctx.KVStore(k.storeKey), AuctionKeyPrefix)

	pageRes, err := query.FilteredPaginate(store, pagination, func(key, value []byte, accumulate bool) (bool, error) {
		var auction types.Auction
		mustUnmarshal(value, &auction)
		if req.ActiveOnly && !auction.IsActiveAt(ctx.BlockHeight()) {
			return false, nil
		}
		if accumulate {
			auctions = append(auctions, auction)
		}
		return true, nil
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryAuctionsResponse{Auctions: auctions, Pagination: pageRes}, nil
}

func (k queryServer) AuctionActive(goCtx context.Context, req *types.QueryAuctionActiveRequest) (*types.QueryAuctionActiveResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	auction, found := k.GetAuction(ctx, req.Id)
	if !found {
		return nil, status.Errorf(codes.NotFound, "auction %d not found", req.Id)
	}
	return &types.QueryAuctionActiveResponse{Active: auction.IsActiveAt(ctx.BlockHeight())}, nil
}

func (k queryServer) Job(goCtx context.Context, req *types.QueryJobRequest) (*types.QueryJobResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	job, found := k.GetJob(ctx, req.Id)
	if !found {
		return nil, status.Errorf(codes.NotFound, "job %d not found", req.Id)
	}
	return &types.QueryJobResponse{Job: job}, nil
}

func (k queryServer) Jobs(goCtx context.Context, req *types.QueryJobsRequest) (*types.QueryJobsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)
	pagination := sanitizePagination(req.Pagination)

	jobs := make([]types.Job, 0, pagination.Limit)
	store := prefix.NewStore(ctx.KVStore(k.storeKey), JobKeyPrefix)

	pageRes, err := query.FilteredPaginate(store, pagination, func(key, value []byte, accumulate bool) (bool, error) {
		var job types.Job
		mustUnmarshal(value, &job)
		if req.Provider != "" && job.Provider != req.Provider {
			return false, nil
		}
		if req.Requester != "" && job.Requester != req.Requester {
			return false, nil
		}
		if accumulate {
			jobs = append(jobs, job)
		}
		return true, nil
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryJobsResponse{Jobs: jobs, Pagination: pageRes}, nil
}

func (k queryServer) Escrow(goCtx context.Context, req *types.QueryEscrowRequest) (*types.QueryEscrowResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if _, found := k.GetJob(ctx, req.JobId); !found {
		return nil, status.Errorf(codes.NotFound, "job %d not found", req.JobId)
	}

	return &types.QueryEscrowResponse{
		Entries:   k.GetJobEscrows(ctx, req.JobId),
		Remaining: k.GetEscrowBalance(ctx, req.JobId),
	}, nil
}

func (k queryServer) ProviderReputation(goCtx context.Context, req *types.QueryProviderReputationRequest) (*types.QueryProviderReputationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	provider, err := sdk.AccAddressFromBech32(req.Provider)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid provider address")
	}

	// Unknown providers resolve to the neutral default rather than an
	// error.
	return &types.QueryProviderReputationResponse{Reputation: k.GetReputation(ctx, provider)}, nil
}

func (k queryServer) Balance(goCtx context.Context, req *types.QueryBalanceRequest) (*types.QueryBalanceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid address")
	}

	return &types.QueryBalanceResponse{Balance: k.GetBalance(ctx, addr)}, nil
}

func (k queryServer) Treasury(goCtx context.Context, req *types.QueryTreasuryRequest) (*types.QueryTreasuryResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	return &types.QueryTreasuryResponse{Balance: k.GetTreasury(ctx)}, nil
}
