// cmd/api/middleware.go
package main

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"PortfolioSite/internal/ratelimiter"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type adminKey string

const adminCtxKey adminKey = "admin"

// AuthTokenMiddleware protege las rutas del dashboard con un bearer JWT
// cuyo subject debe ser el email del administrador configurado.
func (app *application) AuthTokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminEmail := app.config.auth.adminEmail
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || adminEmail == "" {
			app.unauthorizedErrorResponse(w, r)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			app.unauthorizedErrorResponse(w, r)
			return
		}

		token, err := app.authenticator.ValidateToken(parts[1])
		if err != nil || !token.Valid {
			app.unauthorizedErrorResponse(w, r)
			return
		}

		subject, err := token.Claims.GetSubject()
		if err != nil || !strings.EqualFold(subject, adminEmail) {
			app.unauthorizedErrorResponse(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), adminCtxKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// rateLimit aplica el limitador de una ruta antes de leer el cuerpo.
// Si el limitador falla (Redis caído) la petición se admite.
func (app *application) rateLimit(route string, limiter ratelimiter.Limiter, cfg ratelimiter.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !app.config.rateLimit.enabled || !cfg.Enabled || limiter == nil {
				next.ServeHTTP(w, r)
				return
			}

			key := ratelimiter.Key(route, ratelimiter.ClientIP(r))

			res, err := limiter.Check(r.Context(), key, cfg)
			if err != nil {
				app.logger.Warn("rate limiter no disponible, se admite la petición",
					append(app.requestFields(r), zap.String("route", route), zap.Error(err))...)
				next.ServeHTTP(w, r)
				return
			}

			remaining := res.Remaining
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.RequestsPerTimeFrame))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Success {
				app.rateLimitExceededResponse(w, r, res.RetryAfter(app.now()))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (app *application) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			app.logger.Info("petición",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
