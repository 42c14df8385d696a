// internal/store/inquiries.go
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Inquiry es una solicitud del formulario de proyecto (varios pasos en el frontend).
type Inquiry struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Company            string    `json:"company,omitempty"`
	ProjectType        string    `json:"project_type"`
	Budget             string    `json:"budget"`
	Timeline           string    `json:"timeline"`
	Description        string    `json:"description"`
	Read               bool      `json:"read"`
	NotificationFailed bool      `json:"notification_failed"` // el aviso por correo no salió
	CreatedAt          time.Time `json:"created_at"`
}

type InquiryStore struct {
	db *sql.DB
}

func (s *InquiryStore) Create(ctx context.Context, in *Inquiry) error {
	query := `
		INSERT INTO project_inquiries (id, name, email, company, project_type, budget, timeline, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING read, created_at`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	id := uuid.New().String()
	err := s.db.QueryRowContext(ctx, query,
		id, in.Name, in.Email, in.Company, in.ProjectType, in.Budget, in.Timeline, in.Description,
	).Scan(&in.Read, &in.CreatedAt)
	if err != nil {
		return err
	}
	in.ID = id
	return nil
}

func (s *InquiryStore) List(ctx context.Context, opts ListOptions) ([]Inquiry, error) {
	query := `
		SELECT id, name, email, company, project_type, budget, timeline, description, read, notification_failed, created_at
		FROM project_inquiries ` + opts.readFilter() + `
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query, opts.limit(), opts.offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inquiries := []Inquiry{}
	for rows.Next() {
		var in Inquiry
		err := rows.Scan(&in.ID, &in.Name, &in.Email, &in.Company, &in.ProjectType, &in.Budget, &in.Timeline, &in.Description, &in.Read, &in.NotificationFailed, &in.CreatedAt)
		if err != nil {
			return nil, err
		}
		inquiries = append(inquiries, in)
	}
	return inquiries, rows.Err()
}

func (s *InquiryStore) MarkNotificationFailed(ctx context.Context, id string) error {
	query := `UPDATE project_inquiries SET notification_failed = TRUE WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return byIDError(err)
	}
	return affectedOrNotFound(res)
}
