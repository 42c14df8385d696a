// internal/ratelimiter/redis.go
package ratelimiter

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "ratelimit:"

// fixedWindowScript aplica la misma regla que FixedWindowRateLimiter de forma atómica:
// si el contador ya llegó al máximo no se incrementa; la expiración se fija en el primer hit.
var fixedWindowScript = redis.NewScript(`
local max = tonumber(ARGV[2])
local count = tonumber(redis.call('GET', KEYS[1]) or '0')
if max <= 0 or count >= max then
	return {0, count, redis.call('PTTL', KEYS[1])}
end
count = redis.call('INCR', KEYS[1])
if count == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return {1, count, redis.call('PTTL', KEYS[1])}
`)

// RedisRateLimiter comparte la cuota entre todas las instancias que usan el mismo Redis.
type RedisRateLimiter struct {
	rdb *redis.Client
	now func() time.Time
}

func NewRedisLimiter(rdb *redis.Client, opts ...Option) *RedisRateLimiter {
	o := buildOptions(opts)
	return &RedisRateLimiter{rdb: rdb, now: o.now}
}

func (rl *RedisRateLimiter) Check(ctx context.Context, identifier string, cfg Config) (Result, error) {
	window := cfg.TimeFrame.Milliseconds()
	if window <= 0 {
		window = 1
	}

	raw, err := fixedWindowScript.Run(ctx, rl.rdb, []string{redisKeyPrefix + identifier}, window, cfg.RequestsPerTimeFrame).Result()
	if err != nil {
		return Result{}, fmt.Errorf("ratelimiter: redis check: %w", err)
	}

	values, ok := raw.([]interface{})
	if !ok || len(values) != 3 {
		return Result{}, fmt.Errorf("ratelimiter: unexpected script result %v", raw)
	}

	allowed, _ := values[0].(int64)
	count, _ := values[1].(int64)
	pttl, _ := values[2].(int64)

	res := Result{Success: allowed == 1}
	if remaining := cfg.RequestsPerTimeFrame - int(count); remaining > 0 {
		res.Remaining = remaining
	}
	if pttl > 0 {
		res.ResetAt = rl.now().Add(time.Duration(pttl) * time.Millisecond)
	}
	return res, nil
}
