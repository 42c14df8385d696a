// internal/db/db.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // El driver de postgres
)

// Config agrupa la dirección y los parámetros del pool.
type Config struct {
	Addr         string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration

	// ConnectAttempts es cuántas veces se intenta el ping inicial.
	// Con docker-compose postgres suele tardar unos segundos en aceptar conexiones.
	ConnectAttempts int
	RetryDelay      time.Duration
}

func New(ctx context.Context, cfg Config) (*sql.DB, error) {
	return open(ctx, "postgres", cfg)
}

func open(ctx context.Context, driver string, cfg Config) (*sql.DB, error) {
	db, err := sql.Open(driver, cfg.Addr)
	if err != nil {
		return nil, err
	}

	// Configuración del pool de conexiones
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxIdleTime(cfg.MaxIdleTime)

	attempts := max(cfg.ConnectAttempts, 1)
	for i := 1; ; i++ {
		if err = ping(ctx, db); err == nil {
			return db, nil
		}
		if i == attempts {
			break
		}

		select {
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		case <-time.After(cfg.RetryDelay):
		}
	}

	db.Close()
	return nil, fmt.Errorf("db: ping failed after %d attempts: %w", attempts, err)
}

func ping(ctx context.Context, db *sql.DB) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return db.PingContext(ctx)
}
