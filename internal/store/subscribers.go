// internal/store/subscribers.go
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Subscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type SubscriberStore struct {
	db *sql.DB
}

// Create da de alta un suscriptor. Si el email ya existe devuelve ErrConflict.
func (s *SubscriberStore) Create(ctx context.Context, sub *Subscriber) error {
	query := `INSERT INTO subscribers (id, email) VALUES ($1, $2) RETURNING created_at`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	id := uuid.New().String()
	err := s.db.QueryRowContext(ctx, query, id, sub.Email).Scan(&sub.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return err
	}
	sub.ID = id
	return nil
}

// List ignora Status: los suscriptores no tienen marca de leído.
func (s *SubscriberStore) List(ctx context.Context, opts ListOptions) ([]Subscriber, error) {
	query := `
		SELECT id, email, created_at
		FROM subscribers
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query, opts.limit(), opts.offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := []Subscriber{}
	for rows.Next() {
		var sub Subscriber
		if err := rows.Scan(&sub.ID, &sub.Email, &sub.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func (s *SubscriberStore) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM subscribers WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return byIDError(err)
	}
	return affectedOrNotFound(res)
}
