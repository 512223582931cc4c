package keeper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/grid-chain/grid/x/market/keeper"
	"github.com/grid-chain/grid/x/market/types"
)

func TestRateLimiter_AllowsBurst(t *testing.T) {
	limiter := keeper.NewRateLimiter(1, 5)

	for i := 0; i < 5; i++ {
		require.True(t, limiter.Allow("client"), "request %d within burst", i)
	}
	require.False(t, limiter.Allow("client"))
}

func TestRateLimiter_RefillsOverTime(t *testing.T) {
	limiter := keeper.NewRateLimiter(1000, 1)

	require.True(t, limiter.Allow("client"))
	require.False(t, limiter.Allow("client"))

	time.Sleep(50 * time.Millisecond)
	require.True(t, limiter.Allow("client"))
}

func TestRateLimiter_IsolatesClients(t *testing.T) {
	limiter := keeper.NewRateLimiter(1, 1)

	require.True(t, limiter.Allow("alice"))
	require.False(t, limiter.Allow("alice"))
	require.True(t, limiter.Allow("bob"))
}

func TestRateLimitedQueryServer_PassesThrough(t *testing.T) {
	k, ctx := setupKeeper(t)
	qs := keeper.NewRateLimitedQueryServer(keeper.NewQueryServerImpl(k), keeper.NewRateLimiter(100, 200))

	res, err := qs.Params(ctx, &types.QueryParamsRequest{})
	require.NoError(t, err)
	require.Equal(t, types.DefaultParams(), res.Params)
}

func TestRateLimitedQueryServer_RejectsWhenExhausted(t *testing.T) {
	k, ctx := setupKeeper(t)
	qs := keeper.NewRateLimitedQueryServer(keeper.NewQueryServerImpl(k), keeper.NewRateLimiter(1, 1))

	_, err := qs.Treasury(ctx, &types.QueryTreasuryRequest{})
	require.NoError(t, err)

	_, err = qs.Treasury(ctx, &types.QueryTreasuryRequest{})
	require.Error(t, err)
	require.Equal(t, codes.ResourceExhausted, status.Code(err))
}

func TestRateLimitedQueryServer_KeysOnClientMetadata(t *testing.T) {
	k, ctx := setupKeeper(t)
	qs := keeper.NewRateLimitedQueryServer(keeper.NewQueryServerImpl(k), keeper.NewRateLimiter(1, 1))

	ctxAlice := metadata.NewIncomingContext(ctx, metadata.Pairs("x-client-id", "alice"))
	ctxBob := metadata.NewIncomingContext(ctx, metadata.Pairs("x-client-id", "bob"))

	_, err := qs.Params(ctxAlice, &types.QueryParamsRequest{})
	require.NoError(t, err)

	_, err = qs.Params(ctxAlice, &types.QueryParamsRequest{})
	require.Equal(t, codes.ResourceExhausted, status.Code(err))

	// Bob's bucket is untouched by Alice's traffic.
	_, err = qs.Params(ctxBob, &types.QueryParamsRequest{})
	require.NoError(t, err)
}
