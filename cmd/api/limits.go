// cmd/api/limits.go
package main

import (
	"time"

	"PortfolioSite/internal/ratelimiter"
)

// Prefijos del identificador de cada ruta: "<ruta>_<ip>".
const (
	contactRoute    = "contact"
	newsletterRoute = "newsletter"
	intakeRoute     = "intake"
	chatRoute       = "chat"
	adminLoginRoute = "admin-login"
)

var (
	contactLimit = ratelimiter.Config{
		RequestsPerTimeFrame: 3,
		TimeFrame:            60 * time.Second,
		Enabled:              true,
	}
	newsletterLimit = ratelimiter.Config{
		RequestsPerTimeFrame: 5,
		TimeFrame:            60 * time.Second,
		Enabled:              true,
	}
	intakeLimit = ratelimiter.Config{
		RequestsPerTimeFrame: 3,
		TimeFrame:            60 * time.Second,
		Enabled:              true,
	}
	// Token bucket: 10 por minuto con ráfaga de 10.
	chatLimit = ratelimiter.Config{
		RequestsPerTimeFrame: 10,
		TimeFrame:            60 * time.Second,
		Enabled:              true,
	}
	adminLoginLimit = ratelimiter.Config{
		RequestsPerTimeFrame: 5,
		TimeFrame:            15 * time.Minute,
		Enabled:              true,
	}
)
