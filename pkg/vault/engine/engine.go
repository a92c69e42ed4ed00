// Package engine implements the vault accounting core: a fixed-price
// tokenized vault where an authority registers synthetic assets backed by a
// shared USDC reserve, users deposit USDC for newly minted asset tokens and
// redeem them for the proportional reserve share, and the admin authority can
// draw down reserves.
//
// Every operation is a single atomic attempt. Validation and checked
// arithmetic run before any balance moves, so a typed failure or arithmetic
// fault always leaves the ledger untouched. Operations against the same vault
// serialize on a striped lock keyed by the vault record address.
package engine

import (
	"context"
	"database/sql"

	"github.com/sirupsen/logrus"

	"github.com/stablevault/vault-server/pkg/database/query"
	"github.com/stablevault/vault-server/pkg/sync"
	"github.com/stablevault/vault-server/pkg/usdc"
	"github.com/stablevault/vault-server/pkg/vault/common"
	"github.com/stablevault/vault-server/pkg/vault/data"
	"github.com/stablevault/vault-server/pkg/vault/data/admin"
	"github.com/stablevault/vault-server/pkg/vault/data/asset"
	"github.com/stablevault/vault-server/pkg/vault/data/vault"
	"github.com/stablevault/vault-server/pkg/vault/token"
)

const vaultLockStripes = 1024

type Engine struct {
	log  *logrus.Entry
	conf *conf

	data   data.Provider
	tokens token.Client

	vaultLocks *sync.StripedLock

	usdcMint *common.Account
}

// New returns a new vault accounting engine
func New(data data.Provider, tokens token.Client, configProvider ConfigProvider) (*Engine, error) {
	usdcMint, err := common.NewAccountFromPublicKeyString(usdc.Mint)
	if err != nil {
		return nil, err
	}

	return &Engine{
		log:  logrus.StandardLogger().WithField("type", "vault/engine"),
		conf: configProvider(),

		data:   data,
		tokens: tokens,

		vaultLocks: sync.NewStripedLock(vaultLockStripes),

		usdcMint: usdcMint,
	}, nil
}

// Initialize binds an authority identity to the singleton admin record. A
// deployment is initialized exactly once.
func (e *Engine) Initialize(ctx context.Context, authority *common.Account) (*admin.Record, error) {
	log := e.log.WithFields(logrus.Fields{
		"method":    "Initialize",
		"authority": authority.PublicKey().ToBase58(),
	})

	address, bump, err := common.GetAdminRecordAddress()
	if err != nil {
		log.WithError(err).Warn("failure deriving admin record address")
		return nil, err
	}

	record := &admin.Record{
		Address:   address.PublicKey().ToBase58(),
		Bump:      bump,
		Authority: authority.PublicKey().ToBase58(),
	}

	if err := e.data.PutAdminRecord(ctx, record); err != nil {
		if err == admin.ErrAlreadyExists {
			return nil, ErrAlreadyInitialized
		}

		log.WithError(err).Warn("failure saving admin record")
		return nil, err
	}

	return record, nil
}

// CreateAsset registers a new synthetic asset backed by the USDC reserve at a
// fixed price. The caller supplies the asset mint identity and becomes the
// asset's authority. The derived vault account is installed as the mint
// authority of the asset mint and the owner of the reserve account, so only
// this engine can move funds on the vault's behalf.
func (e *Engine) CreateAsset(
	ctx context.Context,
	authority *common.Account,
	mint *common.Account,
	name, ticker string,
	price, depositLimit uint64,
) (*asset.Record, *vault.Record, error) {
	log := e.log.WithFields(logrus.Fields{
		"method": "CreateAsset",
		"mint":   mint.PublicKey().ToBase58(),
		"ticker": ticker,
	})

	if len(name) > asset.MaxNameLength {
		return nil, nil, ErrNameTooLong
	}
	if len(ticker) > asset.MaxTickerLength {
		return nil, nil, ErrTickerTooLong
	}
	if price == 0 {
		return nil, nil, ErrInvalidPrice
	}

	assetAddress, assetBump, err := common.GetAssetRecordAddress(mint)
	if err != nil {
		log.WithError(err).Warn("failure deriving asset record address")
		return nil, nil, err
	}

	vaultAddress, vaultBump, err := common.GetVaultRecordAddress(mint)
	if err != nil {
		log.WithError(err).Warn("failure deriving vault record address")
		return nil, nil, err
	}

	if _, err := e.data.GetAssetRecordByMint(ctx, mint.PublicKey().ToBase58()); err == nil {
		return nil, nil, ErrAssetAlreadyExists
	} else if err != asset.ErrNotFound {
		log.WithError(err).Warn("failure checking for existing asset record")
		return nil, nil, err
	}

	// The collaborator enforces the vault's exclusive mint and reserve
	// authority from this point on.
	if err := e.tokens.CreateMint(ctx, mint, vaultAddress); err != nil {
		if err == token.ErrMintAlreadyExists {
			return nil, nil, ErrAssetAlreadyExists
		}

		log.WithError(err).Warn("failure creating asset mint")
		return nil, nil, err
	}

	if err := e.tokens.CreateAccount(ctx, vaultAddress, e.usdcMint); err != nil {
		log.WithError(err).Warn("failure creating vault reserve account")
		return nil, nil, err
	}

	assetRecord := &asset.Record{
		Address: assetAddress.PublicKey().ToBase58(),
		Bump:    assetBump,

		Name:   name,
		Ticker: ticker,

		Price: price,

		Mint:      mint.PublicKey().ToBase58(),
		Vault:     vaultAddress.PublicKey().ToBase58(),
		Authority: authority.PublicKey().ToBase58(),
	}

	vaultRecord := &vault.Record{
		Address: vaultAddress.PublicKey().ToBase58(),
		Bump:    vaultBump,

		Mint: mint.PublicKey().ToBase58(),

		TotalUsdc:    0,
		TotalAssets:  0,
		DepositLimit: depositLimit,
	}

	err = e.data.ExecuteInTx(ctx, sql.LevelDefault, func(ctx context.Context) error {
		if err := e.data.PutAssetRecord(ctx, assetRecord); err != nil {
			return err
		}
		return e.data.PutVaultRecord(ctx, vaultRecord)
	})
	if err != nil {
		if err == asset.ErrAlreadyExists || err == vault.ErrAlreadyExists {
			return nil, nil, ErrAssetAlreadyExists
		}

		log.WithError(err).Warn("failure saving asset and vault records")
		return nil, nil, err
	}

	return assetRecord, vaultRecord, nil
}

// Deposit exchanges the user's USDC for newly minted asset tokens at the
// asset's fixed price. Minted amounts truncate toward zero.
func (e *Engine) Deposit(ctx context.Context, user, mint *common.Account, amount uint64) (*vault.Record, error) {
	log := e.log.WithFields(logrus.Fields{
		"method": "Deposit",
		"user":   user.PublicKey().ToBase58(),
		"mint":   mint.PublicKey().ToBase58(),
		"amount": amount,
	})

	vaultAddress, _, err := common.GetVaultRecordAddress(mint)
	if err != nil {
		log.WithError(err).Warn("failure deriving vault record address")
		return nil, err
	}

	lock := e.vaultLocks.Get(vaultAddress.PublicKey().ToBytes())
	lock.Lock()
	defer lock.Unlock()

	assetRecord, vaultRecord, err := e.loadAssetAndVault(ctx, log, mint)
	if err != nil {
		return nil, err
	}

	newTotalUsdc, err := checkedAdd(vaultRecord.TotalUsdc, amount)
	if err != nil {
		return nil, err
	}

	if newTotalUsdc > vaultRecord.DepositLimit {
		return nil, ErrDepositLimitExceeded
	}

	scale := e.conf.fixedPointScale.Get(ctx)

	assetAmount, err := checkedMulDiv(amount, scale, assetRecord.Price)
	if err != nil {
		return nil, err
	}

	newTotalAssets, err := checkedAdd(vaultRecord.TotalAssets, assetAmount)
	if err != nil {
		return nil, err
	}

	// Ensure the user can receive minted tokens before any balance moves, so
	// a missing account can't strand the deposit leg.
	if _, err := e.tokens.GetBalance(ctx, user, mint); err == token.ErrAccountNotFound {
		if err := e.tokens.CreateAccount(ctx, user, mint); err != nil {
			log.WithError(err).Warn("failure creating user asset account")
			return nil, err
		}
	} else if err != nil {
		log.WithError(err).Warn("failure getting user asset account")
		return nil, err
	}

	if err := e.tokens.Transfer(ctx, e.usdcMint, user, vaultAddress, user, amount); err != nil {
		log.WithError(err).Warn("failure transferring deposit to vault reserve")
		return nil, err
	}

	if err := e.tokens.MintTo(ctx, mint, user, vaultAddress, assetAmount); err != nil {
		log.WithError(err).Warn("failure minting asset tokens to user")
		return nil, err
	}

	vaultRecord.TotalUsdc = newTotalUsdc
	vaultRecord.TotalAssets = newTotalAssets

	if err := e.data.UpdateVaultRecord(ctx, vaultRecord); err != nil {
		log.WithError(err).Warn("failure saving vault record")
		return nil, err
	}

	return vaultRecord, nil
}

// Redeem burns the user's asset tokens and pays out the proportional USDC
// share from the vault reserve at the asset's fixed price.
func (e *Engine) Redeem(ctx context.Context, user, mint *common.Account, amount uint64) (*vault.Record, error) {
	log := e.log.WithFields(logrus.Fields{
		"method": "Redeem",
		"user":   user.PublicKey().ToBase58(),
		"mint":   mint.PublicKey().ToBase58(),
		"amount": amount,
	})

	vaultAddress, _, err := common.GetVaultRecordAddress(mint)
	if err != nil {
		log.WithError(err).Warn("failure deriving vault record address")
		return nil, err
	}

	lock := e.vaultLocks.Get(vaultAddress.PublicKey().ToBytes())
	lock.Lock()
	defer lock.Unlock()

	assetRecord, vaultRecord, err := e.loadAssetAndVault(ctx, log, mint)
	if err != nil {
		return nil, err
	}

	scale := e.conf.fixedPointScale.Get(ctx)

	usdcAmount, err := checkedMulDiv(amount, assetRecord.Price, scale)
	if err != nil {
		return nil, err
	}

	// An underflow here means reserve accounting drifted from actual token
	// supply, which deposit/redeem alone can never cause.
	newTotalUsdc, err := checkedSub(vaultRecord.TotalUsdc, usdcAmount)
	if err != nil {
		return nil, err
	}

	newTotalAssets, err := checkedSub(vaultRecord.TotalAssets, amount)
	if err != nil {
		return nil, err
	}

	if err := e.tokens.Burn(ctx, mint, user, user, amount); err != nil {
		log.WithError(err).Warn("failure burning asset tokens from user")
		return nil, err
	}

	if err := e.tokens.Transfer(ctx, e.usdcMint, vaultAddress, user, vaultAddress, usdcAmount); err != nil {
		log.WithError(err).Warn("failure transferring redemption from vault reserve")
		return nil, err
	}

	vaultRecord.TotalUsdc = newTotalUsdc
	vaultRecord.TotalAssets = newTotalAssets

	if err := e.data.UpdateVaultRecord(ctx, vaultRecord); err != nil {
		log.WithError(err).Warn("failure saving vault record")
		return nil, err
	}

	return vaultRecord, nil
}

// AdminWithdraw draws down the vault's USDC reserve to a destination account.
// Outstanding asset supply is intentionally untouched, so a drawdown reduces
// the backing ratio used by later redemptions.
func (e *Engine) AdminWithdraw(ctx context.Context, authority, mint, destination *common.Account, amount uint64) (*vault.Record, error) {
	log := e.log.WithFields(logrus.Fields{
		"method":      "AdminWithdraw",
		"mint":        mint.PublicKey().ToBase58(),
		"destination": destination.PublicKey().ToBase58(),
		"amount":      amount,
	})

	adminRecord, err := e.data.GetAdminRecord(ctx)
	if err != nil {
		if err == admin.ErrNotFound {
			return nil, ErrNotInitialized
		}

		log.WithError(err).Warn("failure getting admin record")
		return nil, err
	}

	if adminRecord.Authority != authority.PublicKey().ToBase58() {
		return nil, ErrUnauthorized
	}

	vaultAddress, _, err := common.GetVaultRecordAddress(mint)
	if err != nil {
		log.WithError(err).Warn("failure deriving vault record address")
		return nil, err
	}

	lock := e.vaultLocks.Get(vaultAddress.PublicKey().ToBytes())
	lock.Lock()
	defer lock.Unlock()

	_, vaultRecord, err := e.loadAssetAndVault(ctx, log, mint)
	if err != nil {
		return nil, err
	}

	newTotalUsdc, err := checkedSub(vaultRecord.TotalUsdc, amount)
	if err != nil {
		return nil, err
	}

	if err := e.tokens.Transfer(ctx, e.usdcMint, vaultAddress, destination, vaultAddress, amount); err != nil {
		log.WithError(err).Warn("failure transferring withdrawal from vault reserve")
		return nil, err
	}

	vaultRecord.TotalUsdc = newTotalUsdc

	if err := e.data.UpdateVaultRecord(ctx, vaultRecord); err != nil {
		log.WithError(err).Warn("failure saving vault record")
		return nil, err
	}

	return vaultRecord, nil
}

// GetAsset gets the asset record registered for a mint
func (e *Engine) GetAsset(ctx context.Context, mint *common.Account) (*asset.Record, error) {
	record, err := e.data.GetAssetRecordByMint(ctx, mint.PublicKey().ToBase58())
	if err != nil {
		if err == asset.ErrNotFound {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}
	return record, nil
}

// GetAllAssets gets all registered asset records, paged by record id
func (e *Engine) GetAllAssets(ctx context.Context, cursor query.Cursor, limit uint64, direction query.Ordering) ([]*asset.Record, error) {
	records, err := e.data.GetAllAssetRecords(ctx, cursor, limit, direction)
	if err != nil {
		if err == asset.ErrNotFound {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}
	return records, nil
}

// GetVault gets the vault record for a mint
func (e *Engine) GetVault(ctx context.Context, mint *common.Account) (*vault.Record, error) {
	record, err := e.data.GetVaultRecordByMint(ctx, mint.PublicKey().ToBase58())
	if err != nil {
		if err == vault.ErrNotFound {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}
	return record, nil
}

func (e *Engine) loadAssetAndVault(ctx context.Context, log *logrus.Entry, mint *common.Account) (*asset.Record, *vault.Record, error) {
	mintAddress := mint.PublicKey().ToBase58()

	assetRecord, err := e.data.GetAssetRecordByMint(ctx, mintAddress)
	if err != nil {
		if err == asset.ErrNotFound {
			return nil, nil, ErrAssetNotFound
		}

		log.WithError(err).Warn("failure getting asset record")
		return nil, nil, err
	}

	vaultRecord, err := e.data.GetVaultRecordByMint(ctx, mintAddress)
	if err != nil {
		if err == vault.ErrNotFound {
			return nil, nil, ErrAssetNotFound
		}

		log.WithError(err).Warn("failure getting vault record")
		return nil, nil, err
	}

	return assetRecord, vaultRecord, nil
}
