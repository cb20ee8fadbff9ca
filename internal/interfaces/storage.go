package interfaces

import (
	"context"
	"errors"

	"github.com/Pranav-1100/finagent/internal/models"
)

// ErrRecordNotFound is returned by UserStore.Get when no record exists for
// the (subject, key) pair.
var ErrRecordNotFound = errors.New("record not found")

// UserStore persists user domain data as generic Record entries keyed by
// (subject, key).
type UserStore interface {
	Get(ctx context.Context, subject, key string) (*models.Record, error)
	Put(ctx context.Context, record *models.Record) error
	Delete(ctx context.Context, subject, key string) error

	// List returns all records for a subject ordered by creation time
	List(ctx context.Context, subject string) ([]*models.Record, error)

	Close() error
}

// StorageManager coordinates the storage areas.
type StorageManager interface {
	UserStorage() UserStore
	Close() error
}
