package store

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when a store backend cannot be reached.
var ErrUnavailable = errors.New("membership store unavailable")

// Store is the abstract key-value mapping the engine persists permission
// masks into. Durability and serialization of the underlying medium belong
// to the host framework; implementations only move blobs.
type Store interface {
	// Load returns the blob stored for account, or (nil, nil) when the
	// account has never been written.
	Load(ctx context.Context, account string) ([]byte, error)

	// Save overwrites the blob stored for account. Idempotent.
	Save(ctx context.Context, account string, blob []byte) error

	// Delete removes the account's blob. Deleting an absent account is a
	// no-op.
	Delete(ctx context.Context, account string) error
}

// Scanner is the optional enumeration extension. Backends that can list
// their accounts implement it; the engine's Grantees/Admins operations
// require it.
type Scanner interface {
	Accounts(ctx context.Context) ([]string, error)
}
