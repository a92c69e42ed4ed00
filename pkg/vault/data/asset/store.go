package asset

import (
	"context"
	"errors"

	"github.com/stablevault/vault-server/pkg/database/query"
)

var (
	ErrNotFound      = errors.New("asset record not found")
	ErrAlreadyExists = errors.New("asset record already exists")

	ErrNameTooLong   = errors.New("asset name is too long")
	ErrTickerTooLong = errors.New("asset ticker is too long")
	ErrInvalidPrice  = errors.New("asset price must be positive")
)

type Store interface {
	// Put creates a new asset record. Assets are keyed off their backing
	// mint, so a second asset for the same mint fails with ErrAlreadyExists.
	Put(ctx context.Context, record *Record) error

	// GetByMint gets an asset record by its backing mint address
	GetByMint(ctx context.Context, mint string) (*Record, error)

	// GetByAddress gets an asset record by its derived record address
	GetByAddress(ctx context.Context, address string) (*Record, error)

	// GetAll gets all asset records, paged
	GetAll(ctx context.Context, cursor query.Cursor, limit uint64, direction query.Ordering) ([]*Record, error)
}
