// internal/ratelimiter/token-bucket.go
package ratelimiter

import (
	"context"
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// TokenBucketRateLimiter reparte RequestsPerTimeFrame tokens a ritmo constante
// dentro de TimeFrame, con ráfaga igual al máximo. No tiene el pico de 2×max
// en el borde de la ventana que sí tiene el contador de ventana fija.
type TokenBucketRateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucketEntry
	idleTTL time.Duration
	now     func() time.Time
}

type bucketEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func NewTokenBucketLimiter(idleTTL time.Duration, opts ...Option) *TokenBucketRateLimiter {
	o := buildOptions(opts)
	if idleTTL <= 0 {
		idleTTL = 15 * time.Minute
	}
	return &TokenBucketRateLimiter{
		buckets: make(map[string]*bucketEntry),
		idleTTL: idleTTL,
		now:     o.now,
	}
}

func (tb *TokenBucketRateLimiter) Check(_ context.Context, identifier string, cfg Config) (Result, error) {
	now := tb.now()
	max := cfg.RequestsPerTimeFrame
	if max <= 0 || cfg.TimeFrame <= 0 {
		return Result{Success: false}, nil
	}
	every := rate.Limit(float64(max) / cfg.TimeFrame.Seconds())

	tb.mu.Lock()
	defer tb.mu.Unlock()

	ent, ok := tb.buckets[identifier]
	if !ok || ent.lim.Burst() != max || ent.lim.Limit() != every {
		ent = &bucketEntry{lim: rate.NewLimiter(every, max)}
		tb.buckets[identifier] = ent
	}
	ent.lastSeen = now

	allowed := ent.lim.AllowN(now, 1)
	tokens := ent.lim.TokensAt(now)

	res := Result{Success: allowed, Remaining: int(math.Max(0, math.Floor(tokens)))}
	if allowed {
		res.ResetAt = now.Add(secondsToDuration((float64(max) - tokens) / float64(every)))
	} else {
		res.ResetAt = now.Add(secondsToDuration((1 - tokens) / float64(every)))
	}
	return res, nil
}

// Cleanup borra buckets sin uso durante más de idleTTL.
func (tb *TokenBucketRateLimiter) Cleanup() {
	cutoff := tb.now().Add(-tb.idleTTL)

	tb.mu.Lock()
	defer tb.mu.Unlock()

	for k, ent := range tb.buckets {
		if ent.lastSeen.Before(cutoff) {
			delete(tb.buckets, k)
		}
	}
}

func (tb *TokenBucketRateLimiter) StartJanitor(ctx context.Context, every time.Duration) {
	StartJanitor(ctx, every, tb.Cleanup)
}

func (tb *TokenBucketRateLimiter) Len() int {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	return len(tb.buckets)
}

func secondsToDuration(s float64) time.Duration {
	if s <= 0 {
		return 0
	}
	return time.Duration(s * float64(time.Second))
}
