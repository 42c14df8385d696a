// internal/store/messages.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Message es un mensaje enviado desde el formulario de contacto.
type Message struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Subject            string    `json:"subject"`
	Message            string    `json:"message"`
	Read               bool      `json:"read"`
	NotificationFailed bool      `json:"notification_failed"` // el aviso por correo no salió
	CreatedAt          time.Time `json:"created_at"`
}

type MessageStore struct {
	db *sql.DB
}

// Create inserta un nuevo mensaje.
func (s *MessageStore) Create(ctx context.Context, msg *Message) error {
	query := `
		INSERT INTO contact_messages (id, name, email, subject, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING read, created_at`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	id := uuid.New().String()
	err := s.db.QueryRowContext(ctx, query, id, msg.Name, msg.Email, msg.Subject, msg.Message).Scan(&msg.Read, &msg.CreatedAt)
	if err != nil {
		return err
	}
	msg.ID = id
	return nil
}

// GetByID recupera un mensaje por su ID.
func (s *MessageStore) GetByID(ctx context.Context, id string) (*Message, error) {
	query := `SELECT id, name, email, subject, message, read, notification_failed, created_at FROM contact_messages WHERE id = $1`

	var msg Message
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := s.db.QueryRowContext(ctx, query, id).Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Message, &msg.Read, &msg.NotificationFailed, &msg.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, byIDError(err)
	}
	return &msg, nil
}

// List devuelve los mensajes más recientes primero.
func (s *MessageStore) List(ctx context.Context, opts ListOptions) ([]Message, error) {
	query := `
		SELECT id, name, email, subject, message, read, notification_failed, created_at
		FROM contact_messages ` + opts.readFilter() + `
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query, opts.limit(), opts.offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []Message{}
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Read, &m.NotificationFailed, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// MarkNotificationFailed deja constancia de que el aviso al dueño no se envió.
func (s *MessageStore) MarkNotificationFailed(ctx context.Context, id string) error {
	query := `UPDATE contact_messages SET notification_failed = TRUE WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return byIDError(err)
	}
	return affectedOrNotFound(res)
}

// SetRead cambia la marca de leído desde el dashboard.
func (s *MessageStore) SetRead(ctx context.Context, id string, read bool) error {
	query := `UPDATE contact_messages SET read = $1 WHERE id = $2`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	res, err := s.db.ExecContext(ctx, query, read, id)
	if err != nil {
		return byIDError(err)
	}
	return affectedOrNotFound(res)
}

func (s *MessageStore) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM contact_messages WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return byIDError(err)
	}
	return affectedOrNotFound(res)
}
