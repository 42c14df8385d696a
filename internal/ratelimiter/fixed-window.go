// internal/ratelimiter/fixed-window.go
package ratelimiter

import (
	"context"
	"sync"
	"time"
)

type windowEntry struct {
	count   int
	resetAt time.Time
}

// FixedWindowRateLimiter implementa Limiter con contadores por ventana fija en memoria.
//
// El estado vive en este proceso: con varias instancias cada una aplica su propia
// cuota. Para una cuota compartida usar RedisRateLimiter.
type FixedWindowRateLimiter struct {
	sync.Mutex
	clients map[string]*windowEntry
	now     func() time.Time
}

// NewFixedWindowLimiter crea una nueva instancia de nuestro limitador.
func NewFixedWindowLimiter(opts ...Option) *FixedWindowRateLimiter {
	o := buildOptions(opts)
	return &FixedWindowRateLimiter{
		clients: make(map[string]*windowEntry),
		now:     o.now,
	}
}

// Check comprueba si identifier tiene permiso para hacer una petición.
func (rl *FixedWindowRateLimiter) Check(_ context.Context, identifier string, cfg Config) (Result, error) {
	now := rl.now()
	max := cfg.RequestsPerTimeFrame

	rl.Lock()
	defer rl.Unlock()

	entry, exists := rl.clients[identifier]

	if max <= 0 {
		res := Result{Success: false}
		if exists {
			res.ResetAt = entry.resetAt
		}
		return res, nil
	}

	if !exists || now.After(entry.resetAt) {
		// Primera petición o ventana vencida: se reemplaza la entrada.
		entry = &windowEntry{count: 1, resetAt: now.Add(cfg.TimeFrame)}
		rl.clients[identifier] = entry
		return Result{Success: true, Remaining: max - 1, ResetAt: entry.resetAt}, nil
	}

	if entry.count < max {
		entry.count++
		return Result{Success: true, Remaining: max - entry.count, ResetAt: entry.resetAt}, nil
	}

	// Llegó al límite dentro de la ventana activa; no se toca el estado.
	return Result{Success: false, Remaining: 0, ResetAt: entry.resetAt}, nil
}

// Cleanup borra las entradas cuya ventana ya pasó.
func (rl *FixedWindowRateLimiter) Cleanup() {
	now := rl.now()

	rl.Lock()
	defer rl.Unlock()

	for id, entry := range rl.clients {
		if now.After(entry.resetAt) {
			delete(rl.clients, id)
		}
	}
}

// StartJanitor limpia entradas vencidas cada every. Se detiene al cancelar ctx.
func (rl *FixedWindowRateLimiter) StartJanitor(ctx context.Context, every time.Duration) {
	StartJanitor(ctx, every, rl.Cleanup)
}

// Len devuelve cuántos identificadores hay en la tabla.
func (rl *FixedWindowRateLimiter) Len() int {
	rl.Lock()
	defer rl.Unlock()
	return len(rl.clients)
}
