// internal/store/migrate.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS contact_messages (
		id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL,
		subject VARCHAR(200) NOT NULL,
		message TEXT NOT NULL,
		read BOOLEAN NOT NULL DEFAULT FALSE,
		notification_failed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_contact_messages_created ON contact_messages(created_at DESC);`,
	`CREATE TABLE IF NOT EXISTS subscribers (
		id UUID PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS project_inquiries (
		id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL,
		company VARCHAR(100) NOT NULL DEFAULT '',
		project_type VARCHAR(20) NOT NULL,
		budget VARCHAR(20) NOT NULL,
		timeline VARCHAR(20) NOT NULL,
		description TEXT NOT NULL,
		read BOOLEAN NOT NULL DEFAULT FALSE,
		notification_failed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_project_inquiries_created ON project_inquiries(created_at DESC);`,
	`CREATE TABLE IF NOT EXISTS activity_logs (
		id UUID PRIMARY KEY,
		kind VARCHAR(50) NOT NULL,
		description TEXT NOT NULL,
		metadata JSONB NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_activity_logs_created ON activity_logs(created_at DESC);`,
}

// Migrate crea las tablas si no existen. Es idempotente.
func Migrate(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("store: database is not initialized")
	}

	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("store: migration failed: %w", err)
		}
	}
	return nil
}
