// internal/store/storage.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrConflict          = errors.New("resource already exists")
	QueryTimeoutDuration = time.Second * 5
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// Interfaces por colección, para poder usar fakes en los tests de los handlers.
type MessageStorer interface {
	Create(context.Context, *Message) error
	GetByID(context.Context, string) (*Message, error)
	List(context.Context, ListOptions) ([]Message, error)
	SetRead(context.Context, string, bool) error
	MarkNotificationFailed(context.Context, string) error
	Delete(context.Context, string) error
}

type SubscriberStorer interface {
	Create(context.Context, *Subscriber) error
	List(context.Context, ListOptions) ([]Subscriber, error)
	Delete(context.Context, string) error
}

type InquiryStorer interface {
	Create(context.Context, *Inquiry) error
	List(context.Context, ListOptions) ([]Inquiry, error)
	MarkNotificationFailed(context.Context, string) error
}

type ActivityStorer interface {
	Create(context.Context, *Activity) error
	List(context.Context, int) ([]Activity, error)
}

type Storage struct {
	Messages    MessageStorer
	Subscribers SubscriberStorer
	Inquiries   InquiryStorer
	Activities  ActivityStorer
}

func NewStorage(db *sql.DB) Storage {
	return Storage{
		Messages:    &MessageStore{db: db},
		Subscribers: &SubscriberStore{db: db},
		Inquiries:   &InquiryStore{db: db},
		Activities:  &ActivityStore{db: db},
	}
}

// ListOptions filtra y pagina los listados del dashboard.
// Status: "", "all", "read", "unread" o "notification_failed".
type ListOptions struct {
	Status string
	Limit  int
	Offset int
}

func (o ListOptions) limit() int {
	switch {
	case o.Limit <= 0:
		return defaultListLimit
	case o.Limit > maxListLimit:
		return maxListLimit
	default:
		return o.Limit
	}
}

func (o ListOptions) offset() int {
	if o.Offset < 0 {
		return 0
	}
	return o.Offset
}

// readFilter traduce Status a una condición WHERE.
func (o ListOptions) readFilter() string {
	switch o.Status {
	case "read":
		return "WHERE read = TRUE"
	case "unread":
		return "WHERE read = FALSE"
	case "notification_failed":
		return "WHERE notification_failed = TRUE"
	default:
		return ""
	}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// byIDError convierte un id que no es UUID (22P02) en ErrNotFound.
func byIDError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "22P02" {
		return ErrNotFound
	}
	return err
}

func affectedOrNotFound(res sql.Result) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
