package data

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	pg "github.com/stablevault/vault-server/pkg/database/postgres"
	"github.com/stablevault/vault-server/pkg/database/query"

	"github.com/stablevault/vault-server/pkg/vault/data/admin"
	admin_memory "github.com/stablevault/vault-server/pkg/vault/data/admin/memory"
	admin_postgres "github.com/stablevault/vault-server/pkg/vault/data/admin/postgres"

	"github.com/stablevault/vault-server/pkg/vault/data/asset"
	asset_memory "github.com/stablevault/vault-server/pkg/vault/data/asset/memory"
	asset_postgres "github.com/stablevault/vault-server/pkg/vault/data/asset/postgres"

	"github.com/stablevault/vault-server/pkg/vault/data/vault"
	vault_memory "github.com/stablevault/vault-server/pkg/vault/data/vault/memory"
	vault_postgres "github.com/stablevault/vault-server/pkg/vault/data/vault/postgres"

	_ "github.com/jackc/pgx/v4/stdlib"
)

// Provider is the aggregated data access layer for the vault ledger
type Provider interface {
	// ExecuteInTx runs fn such that all store writes made within it commit or
	// roll back together.
	ExecuteInTx(ctx context.Context, isolation sql.IsolationLevel, fn func(ctx context.Context) error) error

	// Admin record
	PutAdminRecord(ctx context.Context, record *admin.Record) error
	GetAdminRecord(ctx context.Context) (*admin.Record, error)

	// Asset records
	PutAssetRecord(ctx context.Context, record *asset.Record) error
	GetAssetRecordByMint(ctx context.Context, mint string) (*asset.Record, error)
	GetAssetRecordByAddress(ctx context.Context, address string) (*asset.Record, error)
	GetAllAssetRecords(ctx context.Context, cursor query.Cursor, limit uint64, direction query.Ordering) ([]*asset.Record, error)

	// Vault records
	PutVaultRecord(ctx context.Context, record *vault.Record) error
	UpdateVaultRecord(ctx context.Context, record *vault.Record) error
	GetVaultRecordByMint(ctx context.Context, mint string) (*vault.Record, error)
	GetVaultRecordByAddress(ctx context.Context, address string) (*vault.Record, error)
}

type DatabaseData struct {
	db *sqlx.DB

	admins admin.Store
	assets asset.Store
	vaults vault.Store
}

// NewDatabaseProvider returns a postgres-backed Provider
func NewDatabaseProvider(dbUrl string) (Provider, error) {
	db, err := sql.Open("pgx", dbUrl)
	if err != nil {
		return nil, err
	}

	return &DatabaseData{
		db: sqlx.NewDb(db, "pgx"),

		admins: admin_postgres.New(db),
		assets: asset_postgres.New(db),
		vaults: vault_postgres.New(db),
	}, nil
}

// NewTestDataProvider returns an in memory Provider suitable for tests
func NewTestDataProvider() Provider {
	return &DatabaseData{
		admins: admin_memory.New(),
		assets: asset_memory.New(),
		vaults: vault_memory.New(),
	}
}

func (p *DatabaseData) ExecuteInTx(ctx context.Context, isolation sql.IsolationLevel, fn func(ctx context.Context) error) error {
	if p.db == nil {
		// Memory stores apply writes immediately
		return fn(ctx)
	}
	return pg.ExecuteTxWithinCtx(ctx, p.db, isolation, fn)
}

// Admin record

func (p *DatabaseData) PutAdminRecord(ctx context.Context, record *admin.Record) error {
	if record == nil {
		return errors.New("record is nil")
	}
	return p.admins.Put(ctx, record)
}

func (p *DatabaseData) GetAdminRecord(ctx context.Context) (*admin.Record, error) {
	return p.admins.Get(ctx)
}

// Asset records

func (p *DatabaseData) PutAssetRecord(ctx context.Context, record *asset.Record) error {
	if record == nil {
		return errors.New("record is nil")
	}
	return p.assets.Put(ctx, record)
}

func (p *DatabaseData) GetAssetRecordByMint(ctx context.Context, mint string) (*asset.Record, error) {
	if len(mint) == 0 {
		return nil, errors.New("mint is empty")
	}
	return p.assets.GetByMint(ctx, mint)
}

func (p *DatabaseData) GetAssetRecordByAddress(ctx context.Context, address string) (*asset.Record, error) {
	if len(address) == 0 {
		return nil, errors.New("address is empty")
	}
	return p.assets.GetByAddress(ctx, address)
}

func (p *DatabaseData) GetAllAssetRecords(ctx context.Context, cursor query.Cursor, limit uint64, direction query.Ordering) ([]*asset.Record, error) {
	return p.assets.GetAll(ctx, cursor, limit, direction)
}

// Vault records

func (p *DatabaseData) PutVaultRecord(ctx context.Context, record *vault.Record) error {
	if record == nil {
		return errors.New("record is nil")
	}
	return p.vaults.Put(ctx, record)
}

func (p *DatabaseData) UpdateVaultRecord(ctx context.Context, record *vault.Record) error {
	if record == nil {
		return errors.New("record is nil")
	}
	return p.vaults.Update(ctx, record)
}

func (p *DatabaseData) GetVaultRecordByMint(ctx context.Context, mint string) (*vault.Record, error) {
	if len(mint) == 0 {
		return nil, errors.New("mint is empty")
	}
	return p.vaults.GetByMint(ctx, mint)
}

func (p *DatabaseData) GetVaultRecordByAddress(ctx context.Context, address string) (*vault.Record, error) {
	if len(address) == 0 {
		return nil, errors.New("address is empty")
	}
	return p.vaults.GetByAddress(ctx, address)
}
