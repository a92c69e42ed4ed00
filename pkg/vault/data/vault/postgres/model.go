package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	pgutil "github.com/stablevault/vault-server/pkg/database/postgres"
	"github.com/stablevault/vault-server/pkg/vault/data/vault"
)

const (
	tableName = "stablevault__core_vault"
)

type model struct {
	Id sql.NullInt64 `db:"id"`

	Address string `db:"address"`
	Bump    uint   `db:"bump"`

	Mint string `db:"mint"`

	TotalUsdc    uint64 `db:"total_usdc"`
	TotalAssets  uint64 `db:"total_assets"`
	DepositLimit uint64 `db:"deposit_limit"`

	LastUpdatedAt time.Time `db:"last_updated_at"`
}

func toModel(obj *vault.Record) (*model, error) {
	if err := obj.Validate(); err != nil {
		return nil, err
	}

	return &model{
		Id:           sql.NullInt64{Int64: int64(obj.Id), Valid: obj.Id > 0},
		Address:      obj.Address,
		Bump:         uint(obj.Bump),
		Mint:         obj.Mint,
		TotalUsdc:    obj.TotalUsdc,
		TotalAssets:  obj.TotalAssets,
		DepositLimit: obj.DepositLimit,
	}, nil
}

func fromModel(obj *model) *vault.Record {
	return &vault.Record{
		Id: uint64(obj.Id.Int64),

		Address: obj.Address,
		Bump:    uint8(obj.Bump),

		Mint: obj.Mint,

		TotalUsdc:    obj.TotalUsdc,
		TotalAssets:  obj.TotalAssets,
		DepositLimit: obj.DepositLimit,

		LastUpdatedAt: obj.LastUpdatedAt,
	}
}

func (m *model) dbPut(ctx context.Context, db *sqlx.DB) error {
	return pgutil.ExecuteInTx(ctx, db, sql.LevelDefault, func(tx *sqlx.Tx) error {
		query := `INSERT INTO ` + tableName + `
			(address, bump, mint, total_usdc, total_assets, deposit_limit, last_updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, address, bump, mint, total_usdc, total_assets, deposit_limit, last_updated_at
		`

		m.LastUpdatedAt = time.Now()

		err := tx.QueryRowxContext(
			ctx,
			query,
			m.Address,
			m.Bump,
			m.Mint,
			m.TotalUsdc,
			m.TotalAssets,
			m.DepositLimit,
			m.LastUpdatedAt.UTC(),
		).StructScan(m)

		return pgutil.CheckUniqueViolation(err, vault.ErrAlreadyExists)
	})
}

func (m *model) dbUpdate(ctx context.Context, db *sqlx.DB) error {
	return pgutil.ExecuteInTx(ctx, db, sql.LevelDefault, func(tx *sqlx.Tx) error {
		query := `UPDATE ` + tableName + `
			SET total_usdc = $2, total_assets = $3, last_updated_at = $4
			WHERE mint = $1 AND id = $5
			RETURNING id, address, bump, mint, total_usdc, total_assets, deposit_limit, last_updated_at
		`

		m.LastUpdatedAt = time.Now()

		err := tx.QueryRowxContext(
			ctx,
			query,
			m.Mint,
			m.TotalUsdc,
			m.TotalAssets,
			m.LastUpdatedAt.UTC(),
			m.Id.Int64,
		).StructScan(m)

		if err == sql.ErrNoRows {
			// Distinguish a missing vault from an id mismatch
			if _, existsErr := dbGetByMint(ctx, tx, m.Mint); existsErr == nil {
				return vault.ErrStaleRecord
			}
			return vault.ErrNotFound
		}
		return err
	})
}

func dbGetByMint(ctx context.Context, db sqlx.QueryerContext, mint string) (*model, error) {
	var res model

	query := `SELECT id, address, bump, mint, total_usdc, total_assets, deposit_limit, last_updated_at FROM ` + tableName + `
		WHERE mint = $1
		LIMIT 1
	`

	err := sqlx.GetContext(ctx, db, &res, query, mint)
	if err != nil {
		return nil, pgutil.CheckNoRows(err, vault.ErrNotFound)
	}
	return &res, nil
}

func dbGetByAddress(ctx context.Context, db *sqlx.DB, address string) (*model, error) {
	var res model

	query := `SELECT id, address, bump, mint, total_usdc, total_assets, deposit_limit, last_updated_at FROM ` + tableName + `
		WHERE address = $1
		LIMIT 1
	`

	err := db.GetContext(ctx, &res, query, address)
	if err != nil {
		return nil, pgutil.CheckNoRows(err, vault.ErrNotFound)
	}
	return &res, nil
}
