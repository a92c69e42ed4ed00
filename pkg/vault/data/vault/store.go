package vault

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("vault record not found")
	ErrAlreadyExists = errors.New("vault record already exists")

	// ErrStaleRecord is returned by Update when the record being saved wasn't
	// loaded from the current version in the store.
	ErrStaleRecord = errors.New("vault record is stale")
)

type Store interface {
	// Put creates a new vault record for an asset's backing mint
	Put(ctx context.Context, record *Record) error

	// Update saves new reserve and supply totals for an existing vault
	// record. Callers must hold the record lock for the vault to guarantee
	// the totals being saved derive from the latest observed state.
	Update(ctx context.Context, record *Record) error

	// GetByMint gets a vault record by its asset's backing mint address
	GetByMint(ctx context.Context, mint string) (*Record, error)

	// GetByAddress gets a vault record by its derived record address
	GetByAddress(ctx context.Context, address string) (*Record, error)
}
