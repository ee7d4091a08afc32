package storage

import (
	"context"
	"errors"

	"github.com/chris-regnier/moodctl/internal/mood"
)

// Sentinel errors for storage operations.
var (
	ErrStorage    = errors.New("storage error")
	ErrValidation = errors.New("validation error")
)

// Backend names accepted by configuration.
const (
	BackendSQLite     = "sqlite"
	BackendSQLitePure = "sqlite-pure"
)

// Storage defines the interface for mood entry persistence.
//
// Entries are append-only: there is no update or delete.
type Storage interface {
	// EnsureSchema creates the moods table if it is missing. Safe to call repeatedly.
	EnsureSchema(ctx context.Context) error

	// Insert validates and persists e, returning the assigned ID.
	// The ID and any value already in e.ID are ignored on input.
	Insert(ctx context.Context, e mood.Entry) (int64, error)

	// ListAll returns every stored entry, newest (highest ID) first.
	ListAll(ctx context.Context) ([]mood.Entry, error)

	Close() error
}
