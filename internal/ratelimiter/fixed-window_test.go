package ratelimiter

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var contactCfg = Config{RequestsPerTimeFrame: 3, TimeFrame: time.Minute, Enabled: true}

func TestFixedWindow_AdmitsUpToMaxThenRejects(t *testing.T) {
	clock := newFakeClock()
	rl := NewFixedWindowLimiter(WithClock(clock.Now))
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		res, err := rl.Check(ctx, "contact_1.2.3.4", contactCfg)
		require.NoError(t, err)
		require.True(t, res.Success, "request %d should be admitted", i)
		require.Equal(t, 3-i, res.Remaining)
		require.Equal(t, clock.Now().Add(time.Minute), res.ResetAt)
	}

	res, err := rl.Check(ctx, "contact_1.2.3.4", contactCfg)
	require.NoError(t, err)
	require.False(t, res.Success)
	require.Equal(t, 0, res.Remaining)
}

func TestFixedWindow_RejectionDoesNotMutateCount(t *testing.T) {
	clock := newFakeClock()
	rl := NewFixedWindowLimiter(WithClock(clock.Now))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, _ = rl.Check(ctx, "k", contactCfg)
	}
	for i := 0; i < 10; i++ {
		res, _ := rl.Check(ctx, "k", contactCfg)
		require.False(t, res.Success)
	}

	rl.Lock()
	count := rl.clients["k"].count
	rl.Unlock()
	require.Equal(t, 3, count)
}

func TestFixedWindow_ResetsAfterWindowPasses(t *testing.T) {
	clock := newFakeClock()
	rl := NewFixedWindowLimiter(WithClock(clock.Now))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, _ = rl.Check(ctx, "k", contactCfg)
	}

	// justo en resetAt la ventana sigue activa
	clock.Advance(time.Minute)
	res, _ := rl.Check(ctx, "k", contactCfg)
	require.False(t, res.Success)

	clock.Advance(time.Millisecond)
	res, _ = rl.Check(ctx, "k", contactCfg)
	require.True(t, res.Success)
	require.Equal(t, 2, res.Remaining)

	rl.Lock()
	count := rl.clients["k"].count
	rl.Unlock()
	require.Equal(t, 1, count)
}

func TestFixedWindow_NewsletterQuotaResetsAt61Seconds(t *testing.T) {
	clock := newFakeClock()
	rl := NewFixedWindowLimiter(WithClock(clock.Now))
	cfg := Config{RequestsPerTimeFrame: 5, TimeFrame: time.Minute, Enabled: true}
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		res, _ := rl.Check(ctx, "newsletter_1.2.3.4", cfg)
		require.True(t, res.Success)
		clock.Advance(10 * time.Second)
	}
	// t=50s
	clock.Advance(9 * time.Second)
	res, _ := rl.Check(ctx, "newsletter_1.2.3.4", cfg)
	require.False(t, res.Success)

	// t=61s
	clock.Advance(2 * time.Second)
	res, _ = rl.Check(ctx, "newsletter_1.2.3.4", cfg)
	require.True(t, res.Success)
}

func TestFixedWindow_BoundaryBurstIsAllowed(t *testing.T) {
	clock := newFakeClock()
	rl := NewFixedWindowLimiter(WithClock(clock.Now))
	ctx := context.Background()

	_, _ = rl.Check(ctx, "k", contactCfg)
	clock.Advance(59 * time.Second)
	admitted := 1
	for i := 0; i < 5; i++ {
		if res, _ := rl.Check(ctx, "k", contactCfg); res.Success {
			admitted++
		}
	}
	clock.Advance(2 * time.Second)
	for i := 0; i < 5; i++ {
		if res, _ := rl.Check(ctx, "k", contactCfg); res.Success {
			admitted++
		}
	}
	require.Equal(t, 6, admitted)
}

func TestFixedWindow_IdentifiersAreIndependent(t *testing.T) {
	rl := NewFixedWindowLimiter()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, _ = rl.Check(ctx, "contact_1.1.1.1", contactCfg)
	}
	res, _ := rl.Check(ctx, "contact_1.1.1.1", contactCfg)
	require.False(t, res.Success)

	res, _ = rl.Check(ctx, "contact_2.2.2.2", contactCfg)
	require.True(t, res.Success)
	res, _ = rl.Check(ctx, "newsletter_1.1.1.1", contactCfg)
	require.True(t, res.Success)
}

func TestFixedWindow_NonPositiveMaxRejectsWithoutState(t *testing.T) {
	rl := NewFixedWindowLimiter()

	res, err := rl.Check(context.Background(), "k", Config{RequestsPerTimeFrame: 0, TimeFrame: time.Minute})
	require.NoError(t, err)
	require.False(t, res.Success)
	require.Equal(t, 0, rl.Len())
}

func TestFixedWindow_CleanupRemovesOnlyExpiredEntries(t *testing.T) {
	clock := newFakeClock()
	rl := NewFixedWindowLimiter(WithClock(clock.Now))
	ctx := context.Background()

	_, _ = rl.Check(ctx, "old", contactCfg)
	clock.Advance(45 * time.Second)
	_, _ = rl.Check(ctx, "fresh", contactCfg)
	clock.Advance(20 * time.Second)

	rl.Cleanup()
	require.Equal(t, 1, rl.Len())

	rl.Lock()
	_, ok := rl.clients["fresh"]
	rl.Unlock()
	require.True(t, ok)
}

func TestFixedWindow_JanitorStopsWithContext(t *testing.T) {
	clock := newFakeClock()
	rl := NewFixedWindowLimiter(WithClock(clock.Now))
	_, _ = rl.Check(context.Background(), "k", contactCfg)
	clock.Advance(2 * time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rl.StartJanitor(ctx, time.Millisecond)

	require.Eventually(t, func() bool { return rl.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func TestFixedWindow_ConcurrentChecksNeverExceedMax(t *testing.T) {
	rl := NewFixedWindowLimiter()
	cfg := Config{RequestsPerTimeFrame: 50, TimeFrame: time.Hour, Enabled: true}

	var admitted int64
	var wg sync.WaitGroup
	for i := 0; i < 500; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if res, _ := rl.Check(context.Background(), "shared", cfg); res.Success {
				atomic.AddInt64(&admitted, 1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int64(50), admitted)
}

func TestResult_RetryAfter(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	res := Result{ResetAt: now.Add(42 * time.Second)}
	require.Equal(t, 42*time.Second, res.RetryAfter(now))

	res = Result{ResetAt: now.Add(-time.Second)}
	require.Equal(t, time.Duration(0), res.RetryAfter(now))
}

func ExampleKey() {
	fmt.Println(Key("contact", "1.2.3.4"))
	// Output: contact_1.2.3.4
}
