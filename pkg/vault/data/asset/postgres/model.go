package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	pgutil "github.com/stablevault/vault-server/pkg/database/postgres"
	"github.com/stablevault/vault-server/pkg/database/query"
	"github.com/stablevault/vault-server/pkg/vault/data/asset"
)

const (
	tableName = "stablevault__core_asset"
)

type model struct {
	Id sql.NullInt64 `db:"id"`

	Address string `db:"address"`
	Bump    uint   `db:"bump"`

	Name   string `db:"name"`
	Ticker string `db:"ticker"`

	Price uint64 `db:"price"`

	Mint      string `db:"mint"`
	Vault     string `db:"vault"`
	Authority string `db:"authority"`

	CreatedAt time.Time `db:"created_at"`
}

func toModel(obj *asset.Record) (*model, error) {
	if err := obj.Validate(); err != nil {
		return nil, err
	}

	return &model{
		Address:   obj.Address,
		Bump:      uint(obj.Bump),
		Name:      obj.Name,
		Ticker:    obj.Ticker,
		Price:     obj.Price,
		Mint:      obj.Mint,
		Vault:     obj.Vault,
		Authority: obj.Authority,
		CreatedAt: obj.CreatedAt,
	}, nil
}

func fromModel(obj *model) *asset.Record {
	return &asset.Record{
		Id: uint64(obj.Id.Int64),

		Address: obj.Address,
		Bump:    uint8(obj.Bump),

		Name:   obj.Name,
		Ticker: obj.Ticker,

		Price: obj.Price,

		Mint:      obj.Mint,
		Vault:     obj.Vault,
		Authority: obj.Authority,

		CreatedAt: obj.CreatedAt,
	}
}

func (m *model) dbPut(ctx context.Context, db *sqlx.DB) error {
	return pgutil.ExecuteInTx(ctx, db, sql.LevelDefault, func(tx *sqlx.Tx) error {
		query := `INSERT INTO ` + tableName + `
			(address, bump, name, ticker, price, mint, vault, authority, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id, address, bump, name, ticker, price, mint, vault, authority, created_at
		`

		m.CreatedAt = time.Now()

		err := tx.QueryRowxContext(
			ctx,
			query,
			m.Address,
			m.Bump,
			m.Name,
			m.Ticker,
			m.Price,
			m.Mint,
			m.Vault,
			m.Authority,
			m.CreatedAt.UTC(),
		).StructScan(m)

		return pgutil.CheckUniqueViolation(err, asset.ErrAlreadyExists)
	})
}

func dbGetByMint(ctx context.Context, db *sqlx.DB, mint string) (*model, error) {
	var res model

	query := `SELECT id, address, bump, name, ticker, price, mint, vault, authority, created_at FROM ` + tableName + `
		WHERE mint = $1
		LIMIT 1
	`

	err := db.GetContext(ctx, &res, query, mint)
	if err != nil {
		return nil, pgutil.CheckNoRows(err, asset.ErrNotFound)
	}
	return &res, nil
}

func dbGetByAddress(ctx context.Context, db *sqlx.DB, address string) (*model, error) {
	var res model

	query := `SELECT id, address, bump, name, ticker, price, mint, vault, authority, created_at FROM ` + tableName + `
		WHERE address = $1
		LIMIT 1
	`

	err := db.GetContext(ctx, &res, query, address)
	if err != nil {
		return nil, pgutil.CheckNoRows(err, asset.ErrNotFound)
	}
	return &res, nil
}

func dbGetAll(ctx context.Context, db *sqlx.DB, cursor query.Cursor, limit uint64, direction query.Ordering) ([]*model, error) {
	res := []*model{}

	q := `SELECT id, address, bump, name, ticker, price, mint, vault, authority, created_at FROM ` + tableName + `
		WHERE (TRUE)
	`

	q, opts := query.PaginateQuery(q, nil, cursor, limit, direction)

	err := db.SelectContext(ctx, &res, q, opts...)
	if err != nil {
		return nil, pgutil.CheckNoRows(err, asset.ErrNotFound)
	}

	if len(res) == 0 {
		return nil, asset.ErrNotFound
	}

	return res, nil
}
