package ratelimiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var chatCfg = Config{RequestsPerTimeFrame: 10, TimeFrame: time.Minute, Enabled: true}

func TestTokenBucket_BurstThenReject(t *testing.T) {
	clock := newFakeClock()
	tb := NewTokenBucketLimiter(time.Minute, WithClock(clock.Now))
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		res, err := tb.Check(ctx, "chat_1.2.3.4", chatCfg)
		require.NoError(t, err)
		require.True(t, res.Success, "request %d", i+1)
	}

	res, err := tb.Check(ctx, "chat_1.2.3.4", chatCfg)
	require.NoError(t, err)
	require.False(t, res.Success)
	require.Equal(t, 0, res.Remaining)
	// un token cada 6s
	require.WithinDuration(t, clock.Now().Add(6*time.Second), res.ResetAt, time.Millisecond)
}

func TestTokenBucket_RefillsGradually(t *testing.T) {
	clock := newFakeClock()
	tb := NewTokenBucketLimiter(time.Minute, WithClock(clock.Now))
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, _ = tb.Check(ctx, "k", chatCfg)
	}

	clock.Advance(7 * time.Second)
	res, _ := tb.Check(ctx, "k", chatCfg)
	require.True(t, res.Success)

	res, _ = tb.Check(ctx, "k", chatCfg)
	require.False(t, res.Success)
}

func TestTokenBucket_CleanupEvictsIdleBuckets(t *testing.T) {
	clock := newFakeClock()
	tb := NewTokenBucketLimiter(time.Minute, WithClock(clock.Now))
	ctx := context.Background()

	_, _ = tb.Check(ctx, "idle", chatCfg)
	clock.Advance(50 * time.Second)
	_, _ = tb.Check(ctx, "active", chatCfg)
	clock.Advance(20 * time.Second)

	tb.Cleanup()
	require.Equal(t, 1, tb.Len())
}

func TestTokenBucket_InvalidConfigRejects(t *testing.T) {
	tb := NewTokenBucketLimiter(0)

	res, err := tb.Check(context.Background(), "k", Config{RequestsPerTimeFrame: 5})
	require.NoError(t, err)
	require.False(t, res.Success)
	require.Equal(t, 0, tb.Len())
}
