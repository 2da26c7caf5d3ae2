package store

import (
	"context"
	"errors"
	"time"

	"github.com/opsbank/payhold/internal/hold/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement it.
// Sub-repositories are exposed as methods so transactional and plain access
// share the same shape.
type Store interface {
	Holds() Holds
	Clients() Clients

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction: commit when fn returns nil,
	// rollback otherwise. Rollback also runs on panic or early return, and
	// is safe after commit. This is the recommended way to mutate.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store: the same repos plus Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Holds interface {
	// GetByIdempotencyKey returns the hold accepted for the given key, or
	// ErrNotFound.
	GetByIdempotencyKey(ctx context.Context, key string) (domain.Hold, error)

	// Insert writes a new hold row. Returns ErrAlreadyExists when the
	// idempotency key is already taken; callers resolve that by re-reading
	// the winning row.
	Insert(ctx context.Context, h domain.Hold) error

	// ListByClient returns the client's holds filtered by persisted status,
	// newest first. Expiry is not evaluated here; it is derived by the
	// service at read time.
	ListByClient(ctx context.Context, clientID string, filter domain.StatusFilter) ([]domain.Hold, error)

	// GetOne returns the hold matching both ids, or ErrNotFound.
	GetOne(ctx context.Context, clientID, holdID string) (domain.Hold, error)

	// UpdateRelease transitions a hold to RELEASED, stamping the release
	// fields, and returns the updated row.
	UpdateRelease(ctx context.Context, holdID, releasedBy string, reason *string, releasedAt time.Time) (domain.Hold, error)

	// CountByIdempotencyKey reports how many rows carry the key. Used by
	// tests to assert the at-most-one-row invariant.
	CountByIdempotencyKey(ctx context.Context, key string) (int64, error)
}

type Clients interface {
	// Exists reports whether a client row with the id is present.
	Exists(ctx context.Context, id string) (bool, error)

	// GetByID returns a client, or ErrNotFound.
	GetByID(ctx context.Context, id string) (domain.Client, error)

	// Create inserts a new client (id is provided by the app via ULID).
	Create(ctx context.Context, c domain.Client) error
}
