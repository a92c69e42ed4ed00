package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/stablevault/vault-server/pkg/database/query"
	"github.com/stablevault/vault-server/pkg/vault/data/asset"
)

type store struct {
	db *sqlx.DB
}

// New returns a new postgres-backed asset.Store
func New(db *sql.DB) asset.Store {
	return &store{
		db: sqlx.NewDb(db, "pgx"),
	}
}

// Put implements asset.Store.Put
func (s *store) Put(ctx context.Context, record *asset.Record) error {
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

// GetByMint implements asset.Store.GetByMint
func (s *store) GetByMint(ctx context.Context, mint string) (*asset.Record, error) {
	model, err := dbGetByMint(ctx, s.db, mint)
	if err != nil {
		return nil, err
	}

	return fromModel(model), nil
}

// GetByAddress implements asset.Store.GetByAddress
func (s *store) GetByAddress(ctx context.Context, address string) (*asset.Record, error) {
	model, err := dbGetByAddress(ctx, s.db, address)
	if err != nil {
		return nil, err
	}

	return fromModel(model), nil
}

// GetAll implements asset.Store.GetAll
func (s *store) GetAll(ctx context.Context, cursor query.Cursor, limit uint64, direction query.Ordering) ([]*asset.Record, error) {
	models, err := dbGetAll(ctx, s.db, cursor, limit, direction)
	if err != nil {
		return nil, err
	}

	records := make([]*asset.Record, len(models))
	for i, model := range models {
		records[i] = fromModel(model)
	}

	return records, nil
}
