package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	pgutil "github.com/stablevault/vault-server/pkg/database/postgres"
	"github.com/stablevault/vault-server/pkg/vault/data/admin"
)

const (
	tableName = "stablevault__core_admin"
)

type model struct {
	Id sql.NullInt64 `db:"id"`

	Address string `db:"address"`
	Bump    uint   `db:"bump"`

	Authority string `db:"authority"`

	CreatedAt time.Time `db:"created_at"`
}

func toModel(obj *admin.Record) (*model, error) {
	if err := obj.Validate(); err != nil {
		return nil, err
	}

	return &model{
		Address:   obj.Address,
		Bump:      uint(obj.Bump),
		Authority: obj.Authority,
		CreatedAt: obj.CreatedAt,
	}, nil
}

func fromModel(obj *model) *admin.Record {
	return &admin.Record{
		Id: uint64(obj.Id.Int64),

		Address: obj.Address,
		Bump:    uint8(obj.Bump),

		Authority: obj.Authority,

		CreatedAt: obj.CreatedAt,
	}
}

func (m *model) dbPut(ctx context.Context, db *sqlx.DB) error {
	// The singleton property piggybacks off of the unique singleton marker:
	// every row carries the same value, so a second insert conflicts.
	query := `INSERT INTO ` + tableName + `
		(singleton, address, bump, authority, created_at)
		VALUES (TRUE, $1, $2, $3, $4)
		RETURNING id, address, bump, authority, created_at
	`

	m.CreatedAt = time.Now()

	err := db.QueryRowxContext(
		ctx,
		query,
		m.Address,
		m.Bump,
		m.Authority,
		m.CreatedAt.UTC(),
	).StructScan(m)

	return pgutil.CheckUniqueViolation(err, admin.ErrAlreadyExists)
}

func dbGet(ctx context.Context, db *sqlx.DB) (*model, error) {
	var res model

	query := `SELECT id, address, bump, authority, created_at FROM ` + tableName + `
		LIMIT 1
	`

	err := db.GetContext(ctx, &res, query)
	if err != nil {
		return nil, pgutil.CheckNoRows(err, admin.ErrNotFound)
	}
	return &res, nil
}
