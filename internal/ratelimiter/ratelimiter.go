// internal/ratelimiter/ratelimiter.go
package ratelimiter

import (
	"context"
	"errors"
	"time"
)

// ErrThrottled se devuelve cuando un identificador agotó su cuota en la ventana actual.
var ErrThrottled = errors.New("rate limit exceeded")

// Limiter es la interfaz que nuestros limitadores deben cumplir.
//
// Check decide si la petición identificada por identifier se admite.
// Las implementaciones en memoria nunca devuelven error; las que dependen
// de un servicio externo (Redis) sí pueden hacerlo.
type Limiter interface {
	Check(ctx context.Context, identifier string, cfg Config) (Result, error)
}

// Config contiene los ajustes para el rate limiter de una ruta.
type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

// Result es la decisión del limitador.
// Remaining es informativo: max - count después de decidir.
type Result struct {
	Success   bool
	Remaining int
	ResetAt   time.Time
}

// RetryAfter indica cuánto falta para que la ventana se reinicie.
func (r Result) RetryAfter(now time.Time) time.Duration {
	if !r.ResetAt.After(now) {
		return 0
	}
	return r.ResetAt.Sub(now)
}

// Option configura los limitadores en memoria.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock reemplaza el reloj (útil en tests).
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// StartJanitor ejecuta cleanup cada every hasta que ctx se cancele.
func StartJanitor(ctx context.Context, every time.Duration, cleanup func()) {
	if every <= 0 {
		return
	}

	t := time.NewTicker(every)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				cleanup()
			}
		}
	}()
}
