package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/types/query"

	markettypes "github.com/grid-chain/grid/x/market/types"
)

// MarketService serves marketplace reads against the backing node and keeps
// a cached snapshot of headline numbers that it pushes to websocket
// subscribers of the "market" channel.
type MarketService struct {
	clientCtx client.Context
	wsHub     *WebSocketHub
	interval  time.Duration

	mu       sync.RWMutex
	stats    MarketStats
	degraded bool
	started  bool

	stopChan chan struct{}
}

// NewMarketService creates a new market service
func NewMarketService(clientCtx client.Context, wsHub *WebSocketHub, interval time.Duration) *MarketService {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &MarketService{
		clientCtx: clientCtx,
		wsHub:     wsHub,
		interval:  interval,
		stopChan:  make(chan struct{}),
	}
}

// Start launches the background stats poller
func (ms *MarketService) Start() {
	ms.mu.Lock()
	if ms.started {
		ms.mu.Unlock()
		return
	}
	ms.started = true
	ms.mu.Unlock()

	go ms.pollLoop()
}

// Close stops the stats poller
func (ms *MarketService) Close() {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if !ms.started {
		return
	}
	ms.started = false
	close(ms.stopChan)
}

func (ms *MarketService) pollLoop() {
	ticker := time.NewTicker(ms.interval)
	defer ticker.Stop()

	// Prime the cache before the first tick
	ms.refresh()

	for {
		select {
		case <-ticker.C:
			ms.refresh()
		case <-ms.stopChan:
			return
		}
	}
}

// refresh rebuilds the cached snapshot and pushes it to subscribers. A
// failed refresh keeps the previous snapshot; only the transition into or
// out of the failing state is logged so a down node does not produce a
// message per tick.
func (ms *MarketService) refresh() {
	stats, err := ms.collectStats()
	if err != nil {
		ms.mu.Lock()
		wasDegraded := ms.degraded
		ms.degraded = true
		ms.mu.Unlock()

		if !wasDegraded {
			fmt.Printf("Market stats refresh failing: %v\n", err)
		}
		return
	}

	ms.mu.Lock()
	wasDegraded := ms.degraded
	ms.degraded = false
	ms.stats = stats
	ms.mu.Unlock()

	if wasDegraded {
		fmt.Println("Market stats refresh recovered")
	}

	if ms.wsHub != nil {
		ms.wsHub.BroadcastToChannel("market", stats)
	}
}

func (ms *MarketService) collectStats() (MarketStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	node, err := ms.clientCtx.GetNode()
	if err != nil {
		return MarketStats{}, err
	}
	nodeStatus, err := node.Status(ctx)
	if err != nil {
		return MarketStats{}, err
	}

	qc := markettypes.NewQueryClient(ms.clientCtx)

	// CountTotal with a single-entry page returns the filtered total
	// without walking every entry over the wire.
	countReq := &query.PageRequest{Limit: 1, CountTotal: true}

	resources, err := qc.Resources(ctx, &markettypes.QueryResourcesRequest{Pagination: countReq})
	if err != nil {
		return MarketStats{}, err
	}
	openAuctions, err := qc.Auctions(ctx, &markettypes.QueryAuctionsRequest{ActiveOnly: true, Pagination: countReq})
	if err != nil {
		return MarketStats{}, err
	}
	jobs, err := qc.Jobs(ctx, &markettypes.QueryJobsRequest{Pagination: countReq})
	if err != nil {
		return MarketStats{}, err
	}
	treasury, err := qc.Treasury(ctx, &markettypes.QueryTreasuryRequest{})
	if err != nil {
		return MarketStats{}, err
	}

	return MarketStats{
		Height:          nodeStatus.SyncInfo.LatestBlockHeight,
		ListedResources: pageTotal(resources.Pagination),
		OpenAuctions:    pageTotal(openAuctions.Pagination),
		TotalJobs:       pageTotal(jobs.Pagination),
		TreasuryBalance: treasury.Balance.String(),
		BondDenom:       markettypes.BaseDenom,
		LastUpdated:     time.Now().UTC(),
	}, nil
}

func pageTotal(p *query.PageResponse) uint64 {
	if p == nil {
		return 0
	}
	return p.Total
}

// Stats returns the latest cached snapshot. A zero LastUpdated means the
// poller has not completed a refresh yet.
func (ms *MarketService) Stats() MarketStats {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return ms.stats
}

// queryClient returns a market query client bound to the node
func (s *Server) queryClient() markettypes.QueryClient {
	return markettypes.NewQueryClient(s.clientCtx)
}

// chainError maps a query error onto an HTTP status. Entities the chain does
// not know map to 404; everything else means the backing node could not
// serve the request.
func chainError(c *gin.Context, err error) {
	if st, ok := status.FromError(err); ok && st.Code() == codes.NotFound {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: st.Message(),
			Code:  "NOT_FOUND",
		})
		return
	}
	if strings.Contains(err.Error(), "not found") {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Not found",
			Details: err.Error(),
			Code:    "NOT_FOUND",
		})
		return
	}
	c.JSON(http.StatusBadGateway, ErrorResponse{
		Error:   "Chain query failed",
		Details: err.Error(),
		Code:    "CHAIN_UNAVAILABLE",
	})
}

// bindPagination binds and clamps the page/page_size query parameters
func bindPagination(c *gin.Context) (*query.PageRequest, bool) {
	params := DefaultPagination()
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid pagination parameters",
			Details: err.Error(),
			Code:    "INVALID_PAGINATION",
		})
		return nil, false
	}

	if err := ValidatePagination(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid pagination parameters",
			Details: err.Error(),
			Code:    "INVALID_PAGINATION",
		})
		return nil, false
	}

	return &query.PageRequest{
		Offset:     uint64(params.Offset),
		Limit:      uint64(params.PageSize),
		CountTotal: true,
	}, true
}

// ==================== Resource Handlers ====================

// handleListResources returns resource listings, optionally filtered by
// provider
func (s *Server) handleListResources(c *gin.Context) {
	pageReq, ok := bindPagination(c)
	if !ok {
		return
	}

	provider := c.Query("provider")
	if provider != "" {
		if err := ValidateAddress(provider); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "Invalid provider address",
				Details: err.Error(),
				Code:    "INVALID_ADDRESS",
			})
			return
		}
	}

	res, err := s.queryClient().Resources(c.Request.Context(), &markettypes.QueryResourcesRequest{
		Provider:   provider,
		Pagination: pageReq,
	})
	if err != nil {
		chainError(c, err)
		return
	}

	c.JSON(http.StatusOK, ResourceListResponse{
		Resources:  res.Resources,
		Pagination: res.Pagination,
	})
}

// handleGetResource returns a single resource listing by id
func (s *Server) handleGetResource(c *gin.Context) {
	id, err := ParseEntityID("resource_id", c.Param("resource_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid resource id",
			Details: err.Error(),
			Code:    "INVALID_ID",
		})
		return
	}

	res, err := s.queryClient().Resource(c.Request.Context(), &markettypes.QueryResourceRequest{Id: id})
	if err != nil {
		chainError(c, err)
		return
	}

	c.JSON(http.StatusOK, res.Resource)
}

// ==================== Auction Handlers ====================

// handleListAuctions returns auctions, optionally restricted to those still
// accepting bids
func (s *Server) handleListAuctions(c *gin.Context) {
	pageReq, ok := bindPagination(c)
	if !ok {
		return
	}

	activeOnly := false
	if raw := c.Query("active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "Invalid active filter, expected true or false",
				Code:  "INVALID_FILTER",
			})
			return
		}
		activeOnly = parsed
	}

	res, err := s.queryClient().Auctions(c.Request.Context(), &markettypes.QueryAuctionsRequest{
		ActiveOnly: activeOnly,
		Pagination: pageReq,
	})
	if err != nil {
		chainError(c, err)
		return
	}

	c.JSON(http.StatusOK, AuctionListResponse{
		Auctions:   res.Auctions,
		Pagination: res.Pagination,
	})
}

// handleGetAuction returns a single auction by id
func (s *Server) handleGetAuction(c *gin.Context) {
	id, err := ParseEntityID("auction_id", c.Param("auction_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid auction id",
			Details: err.Error(),
			Code:    "INVALID_ID",
		})
		return
	}

	res, err := s.queryClient().Auction(c.Request.Context(), &markettypes.QueryAuctionRequest{Id: id})
	if err != nil {
		chainError(c, err)
		return
	}

	c.JSON(http.StatusOK, res.Auction)
}

// handleGetAuctionActive reports whether an auction is still accepting bids
func (s *Server) handleGetAuctionActive(c *gin.Context) {
	id, err := ParseEntityID("auction_id", c.Param("auction_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid auction id",
			Details: err.Error(),
			Code:    "INVALID_ID",
		})
		return
	}

	res, err := s.queryClient().AuctionActive(c.Request.Context(), &markettypes.QueryAuctionActiveRequest{Id: id})
	if err != nil {
		chainError(c, err)
		return
	}

	c.JSON(http.StatusOK, AuctionStatusResponse{
		AuctionID: id,
		Active:    res.Active,
	})
}

// ==================== Job Handlers ====================

// handleListJobs returns jobs, optionally filtered by provider or requester
func (s *Server) handleListJobs(c *gin.Context) {
	pageReq, ok := bindPagination(c)
	if !ok {
		return
	}

	provider := c.Query("provider")
	if provider != "" {
		if err := ValidateAddress(provider); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "Invalid provider address",
				Details: err.Error(),
				Code:    "INVALID_ADDRESS",
			})
			return
		}
	}

	requester := c.Query("requester")
	if requester != "" {
		if err := ValidateAddress(requester); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "Invalid requester address",
				Details: err.Error(),
				Code:    "INVALID_ADDRESS",
			})
			return
		}
	}

	res, err := s.queryClient().Jobs(c.Request.Context(), &markettypes.QueryJobsRequest{
		Provider:   provider,
		Requester:  requester,
		Pagination: pageReq,
	})
	if err != nil {
		chainError(c, err)
		return
	}

	c.JSON(http.StatusOK, JobListResponse{
		Jobs:       res.Jobs,
		Pagination: res.Pagination,
	})
}

// handleGetJob returns a single job by id
func (s *Server) handleGetJob(c *gin.Context) {
	id, err := ParseEntityID("job_id", c.Param("job_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid job id",
			Details: err.Error(),
			Code:    "INVALID_ID",
		})
		return
	}

	res, err := s.queryClient().Job(c.Request.Context(), &markettypes.QueryJobRequest{Id: id})
	if err != nil {
		chainError(c, err)
		return
	}

	c.JSON(http.StatusOK, res.Job)
}

// handleGetJobEscrow returns a job's milestone escrow entries and the amount
// still held
func (s *Server) handleGetJobEscrow(c *gin.Context) {
	id, err := ParseEntityID("job_id", c.Param("job_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid job id",
			Details: err.Error(),
			Code:    "INVALID_ID",
		})
		return
	}

	res, err := s.queryClient().Escrow(c.Request.Context(), &markettypes.QueryEscrowRequest{JobId: id})
	if err != nil {
		chainError(c, err)
		return
	}

	c.JSON(http.StatusOK, EscrowResponse{
		JobID:     id,
		Entries:   res.Entries,
		Remaining: res.Remaining.String(),
	})
}

// ==================== Reputation and Ledger Handlers ====================

// handleGetReputation returns a provider's completion history
func (s *Server) handleGetReputation(c *gin.Context) {
	address := c.Param("address")
	if err := ValidateAddress(address); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid address",
			Details: err.Error(),
			Code:    "INVALID_ADDRESS",
		})
		return
	}

	res, err := s.queryClient().ProviderReputation(c.Request.Context(), &markettypes.QueryProviderReputationRequest{
		Provider: address,
	})
	if err != nil {
		chainError(c, err)
		return
	}

	c.JSON(http.StatusOK, ReputationResponse{
		Provider:      res.Reputation.Provider,
		Score:         res.Reputation.Score,
		CompletedJobs: res.Reputation.CompletedJobs,
		TotalJobs:     res.Reputation.TotalJobs,
		TotalEarned:   res.Reputation.TotalEarned.String(),
	})
}

// handleGetBalance returns an account's custodial marketplace balance
func (s *Server) handleGetBalance(c *gin.Context) {
	address := c.Param("address")
	if err := ValidateAddress(address); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid address",
			Details: err.Error(),
			Code:    "INVALID_ADDRESS",
		})
		return
	}

	res, err := s.queryClient().Balance(c.Request.Context(), &markettypes.QueryBalanceRequest{Address: address})
	if err != nil {
		chainError(c, err)
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{
		Address: address,
		Balance: res.Balance.String(),
		Denom:   markettypes.BaseDenom,
	})
}

// ==================== Market Data Handlers ====================

// handleGetParams returns the market module parameters
func (s *Server) handleGetParams(c *gin.Context) {
	res, err := s.queryClient().Params(c.Request.Context(), &markettypes.QueryParamsRequest{})
	if err != nil {
		chainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"params": res.Params,
	})
}

// handleGetMarketStats returns the cached marketplace snapshot
func (s *Server) handleGetMarketStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.marketService.Stats())
}

// handleGetTreasury returns the accumulated platform fee balance
func (s *Server) handleGetTreasury(c *gin.Context) {
	res, err := s.queryClient().Treasury(c.Request.Context(), &markettypes.QueryTreasuryRequest{})
	if err != nil {
		chainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"balance": res.Balance.String(),
		"denom":   markettypes.BaseDenom,
	})
}
