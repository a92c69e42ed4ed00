package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/stablevault/vault-server/pkg/vault/data/vault"
)

type store struct {
	db *sqlx.DB
}

// New returns a new postgres-backed vault.Store
func New(db *sql.DB) vault.Store {
	return &store{
		db: sqlx.NewDb(db, "pgx"),
	}
}

// Put implements vault.Store.Put
func (s *store) Put(ctx context.Context, record *vault.Record) error {
	model, err := toModel(record)
	if err != nil {
		return err
	}

	if err := model.dbPut(ctx, s.db); err != nil {
		return err
	}

	fromModel(model).CopyTo(record)

	return nil
}

// Update implements vault.Store.Update
func (s *store) Update(ctx context.Context, record *vault.Record) error {
	model, err := toModel(record)
	if err != nil {
		return err
	}

	if err := model.dbUpdate(ctx, s.db); err != nil {
		return err
	}

	fromModel(model).CopyTo(record)

	return nil
}

// GetByMint implements vault.Store.GetByMint
func (s *store) GetByMint(ctx context.Context, mint string) (*vault.Record, error) {
	model, err := dbGetByMint(ctx, s.db, mint)
	if err != nil {
		return nil, err
	}

	return fromModel(model), nil
}

// GetByAddress implements vault.Store.GetByAddress
func (s *store) GetByAddress(ctx context.Context, address string) (*vault.Record, error) {
	model, err := dbGetByAddress(ctx, s.db, address)
	if err != nil {
		return nil, err
	}

	return fromModel(model), nil
}
