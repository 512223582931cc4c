package keeper

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/grid-chain/grid/x/market/types"
)

// RateLimiter implements a token bucket rate limiter for gRPC queries
type RateLimiter struct {
	buckets         map[string]*tokenBucket
	mu              sync.RWMutex
	rate            int // tokens per second
	burst           int // max bucket size
	cleanupInterval time.Duration
}

// tokenBucket represents a token bucket for rate limiting
type tokenBucket struct {
	tokens    float64
	lastCheck time.Time
	mu        sync.Mutex
}

// NewRateLimiter creates a new rate limiter
// rate: number of requests allowed per second
// burst: maximum burst size
func NewRateLimiter(rate, burst int) *RateLimiter {
	rl := &RateLimiter{
		buckets:         make(map[string]*tokenBucket),
		rate:            rate,
		burst:           burst,
		cleanupInterval: 5 * time.Minute,
	}

	// Start cleanup goroutine
	go rl.cleanup()

	return rl
}

// Allow checks if a request from the given client should be allowed
func (rl *RateLimiter) Allow(clientID string) bool {
	rl.mu.Lock()
	bucket, exists := rl.buckets[clientID]
	if !exists {
		bucket = &tokenBucket{
			tokens:    float64(rl.burst),
			lastCheck: time.Now(),
		}
		rl.buckets[clientID] = bucket
	}
	rl.mu.Unlock()

	bucket.mu.Lock()
	defer bucket.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(bucket.lastCheck).Seconds()

	// Add tokens based on elapsed time
	bucket.tokens += elapsed * float64(rl.rate)
	if bucket.tokens > float64(rl.burst) {
		bucket.tokens = float64(rl.burst)
	}

	bucket.lastCheck = now

	// Check if we have at least one token
	if bucket.tokens >= 1.0 {
		bucket.tokens -= 1.0
		return true
	}

	return false
}

// cleanup periodically removes old buckets
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for clientID, bucket := range rl.buckets {
			bucket.mu.Lock()
			if now.Sub(bucket.lastCheck) > rl.cleanupInterval {
				delete(rl.buckets, clientID)
			}
			bucket.mu.Unlock()
		}
		rl.mu.Unlock()
	}
}

// getClientID extracts a client identifier from the context
// Priority: metadata > peer IP
func getClientID(ctx context.Context) string {
	// Try to get from metadata (e.g., API key, user ID)
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if clientIDs := md.Get("x-client-id"); len(clientIDs) > 0 {
			return clientIDs[0]
		}
		if apiKeys := md.Get("x-api-key"); len(apiKeys) > 0 {
			return apiKeys[0]
		}
	}

	// Fall back to peer IP address
	if p, ok := peer.FromContext(ctx); ok {
		return p.Addr.String()
	}

	return "unknown"
}

// RateLimitedQueryServer wraps a query server with rate limiting
type RateLimitedQueryServer struct {
	types.QueryServer
	limiter *RateLimiter
}

// NewRateLimitedQueryServer creates a new rate-limited query server
func NewRateLimitedQueryServer(qs types.QueryServer, limiter *RateLimiter) *RateLimitedQueryServer {
	return &RateLimitedQueryServer{
		QueryServer: qs,
		limiter:     limiter,
	}
}

// checkRateLimit checks rate limit and returns error if exceeded
func (rlqs *RateLimitedQueryServer) checkRateLimit(ctx context.Context) error {
	clientID := getClientID(ctx)
	if !rlqs.limiter.Allow(clientID) {
		return status.Errorf(
			codes.ResourceExhausted,
			"query rate limit exceeded",
		)
	}
	return nil
}

// Params wraps the Params query with rate limiting
func (rlqs *RateLimitedQueryServer) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if err := rlqs.checkRateLimit(ctx); err != nil {
		return nil, fmt.Errorf("Params: rate limit: %w", err)
	}
	return rlqs.QueryServer.Params(ctx, req)
}

// Resource wraps the Resource query with rate limiting
func (rlqs *RateLimitedQueryServer) Resource(ctx context.Context, req *types.QueryResourceRequest) (*types.QueryResourceResponse, error) {
	if err := rlqs.checkRateLimit(ctx); err != nil {
		return nil, fmt.Errorf("Resource: rate limit: %w", err)
	}
	return rlqs.QueryServer.Resource(ctx, req)
}

// Resources wraps the Resources query with rate limiting
func (rlqs *RateLimitedQueryServer) Resources(ctx context.Context, req *types.QueryResourcesRequest) (*types.QueryResourcesResponse, error) {
	if err := rlqs.checkRateLimit(ctx); err != nil {
		return nil, fmt.Errorf("Resources: rate limit: %w", err)
	}
	return rlqs.QueryServer.Resources(ctx, req)
}

// Auction wraps the Auction query with rate limiting
func (rlqs *RateLimitedQueryServer) Auction(ctx context.Context, req *types.QueryAuctionRequest) (*types.QueryAuctionResponse, error) {
	if err := rlqs.checkRateLimit(ctx); err != nil {
		return nil, fmt.Errorf("Auction: rate limit: %w", err)
	}
	return rlqs.QueryServer.Auction(ctx, req)
}

// Auctions wraps the Auctions query with rate limiting
func (rlqs *RateLimitedQueryServer) Auctions(ctx context.Context, req *types.QueryAuctionsRequest) (*types.QueryAuctionsResponse, error) {
	if err := rlqs.checkRateLimit(ctx); err != nil {
		return nil, fmt.Errorf("Auctions: rate limit: %w", err)
	}
	return rlqs.QueryServer.Auctions(ctx, req)
}

// AuctionActive wraps the AuctionActive query with rate limiting
func (rlqs *RateLimitedQueryServer) AuctionActive(ctx context.Context, req *types.QueryAuctionActiveRequest) (*types.QueryAuctionActiveResponse, error) {
	if err := rlqs.checkRateLimit(ctx); err != nil {
		return nil, fmt.Errorf("AuctionActive: rate limit: %w", err)
	}
	return rlqs.QueryServer.AuctionActive(ctx, req)
}

// Job wraps the Job query with rate limiting
func (rlqs *RateLimitedQueryServer) Job(ctx context.Context, req *types.QueryJobRequest) (*types.QueryJobResponse, error) {
	if err := rlqs.checkRateLimit(ctx); err != nil {
		return nil, fmt.Errorf("Job: rate limit: %w", err)
	}
	return rlqs.QueryServer.Job(ctx, req)
}

// Jobs wraps the Jobs query with rate limiting
func (rlqs *RateLimitedQueryServer) Jobs(ctx context.Context, req *types.QueryJobsRequest) (*types.QueryJobsResponse, error) {
	if err := rlqs.checkRateLimit(ctx); err != nil {
		return nil, fmt.Errorf("Jobs: rate limit: %w", err)
	}
	return rlqs.QueryServer.Jobs(ctx, req)
}

// Escrow wraps the Escrow query with rate limiting
func (rlqs *RateLimitedQueryServer) Escrow(ctx context.Context, req *types.QueryEscrowRequest) (*types.QueryEscrowResponse, error) {
	if err := rlqs.checkRateLimit(ctx); err != nil {
		return nil, fmt.Errorf("Escrow: rate limit: %w", err)
	}
	return rlqs.QueryServer.Escrow(ctx, req)
}

// ProviderReputation wraps the ProviderReputation query with rate limiting
func (rlqs *RateLimitedQueryServer) ProviderReputation(ctx context.Context, req *types.QueryProviderReputationRequest) (*types.QueryProviderReputationResponse, error) {
	if err := rlqs.checkRateLimit(ctx); err != nil {
		return nil, fmt.Errorf("ProviderReputation: rate limit: %w", err)
	}
	return rlqs.QueryServer.ProviderReputation(ctx, req)
}

// Balance wraps the Balance query with rate limiting
func (rlqs *RateLimitedQueryServer) Balance(ctx context.Context, req *types.QueryBalanceRequest) (*types.QueryBalanceResponse, error) {
	if err := rlqs.checkRateLimit(ctx); err != nil {
		return nil, fmt.Errorf("Balance: rate limit: %w", err)
	}
	return rlqs.QueryServer.Balance(ctx, req)
}

// Treasury wraps the Treasury query with rate limiting
func (rlqs *RateLimitedQueryServer) Treasury(ctx context.Context, req *types.QueryTreasuryRequest) (*types.QueryTreasuryResponse, error) {
	if err := rlqs.checkRateLimit(ctx); err != nil {
		return nil, fmt.Errorf("Treasury: rate limit: %w", err)
	}
	return rlqs.QueryServer.Treasury(ctx, req)
}
