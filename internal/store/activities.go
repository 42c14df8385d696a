// internal/store/activities.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Activity es una entrada del registro de actividad que muestra el dashboard.
type Activity struct {
	ID          string            `json:"id"`
	Kind        string            `json:"kind"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

type ActivityStore struct {
	db *sql.DB
}

func (s *ActivityStore) Create(ctx context.Context, a *Activity) error {
	query := `
		INSERT INTO activity_logs (id, kind, description, metadata)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	if a.Metadata == nil {
		a.Metadata = map[string]string{}
	}
	meta, err := json.Marshal(a.Metadata)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	id := uuid.New().String()
	if err := s.db.QueryRowContext(ctx, query, id, a.Kind, a.Description, meta).Scan(&a.CreatedAt); err != nil {
		return err
	}
	a.ID = id
	return nil
}

// List devuelve las últimas limit entradas.
func (s *ActivityStore) List(ctx context.Context, limit int) ([]Activity, error) {
	query := `
		SELECT id, kind, description, metadata, created_at
		FROM activity_logs
		ORDER BY created_at DESC
		LIMIT $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query, ListOptions{Limit: limit}.limit())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := []Activity{}
	for rows.Next() {
		var (
			a    Activity
			meta []byte
		)
		if err := rows.Scan(&a.ID, &a.Kind, &a.Description, &meta, &a.CreatedAt); err != nil {
			return nil, err
		}
		if len(meta) > 0 {
			if err := json.Unmarshal(meta, &a.Metadata); err != nil {
				return nil, err
			}
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
