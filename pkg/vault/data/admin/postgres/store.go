package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/stablevault/vault-server/pkg/vault/data/admin"
)

type store struct {
	db *sqlx.DB
}

// New returns a new postgres-backed admin.Store
func New(db *sql.DB) admin.Store {
	return &store{
		db: sqlx.NewDb(db, "pgx"),
	}
}

// Put implements admin.Store.Put
func (s *store) Put(ctx context.Context, record *admin.Record) error {
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

// Get implements admin.Store.Get
func (s *store) Get(ctx context.Context) (*admin.Record, error) {
	model, err := dbGet(ctx, s.db)
	if err != nil {
		return nil, err
	}

	return fromModel(model), nil
}
