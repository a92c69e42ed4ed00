package common

import (
	"github.com/pkg/errors"

	"github.com/stablevault/vault-server/pkg/solana"
)

// ProgramID is the address of the on-chain vault program all ledger record
// addresses are derived under.
const ProgramID = "Fg6PaFpoGXkYsidMpWTK6W2BeZ7FEfcYkg476zPFsLnS"

// Record addressing is fully deterministic: a fixed tag, plus the backing
// mint for per-asset records, uniquely identifies every record without a
// separate index.
var (
	adminRecordSeed = []byte("admin")
	assetRecordSeed = []byte("asset")
	vaultRecordSeed = []byte("vault")
)

// GetAdminRecordAddress derives the address of the singleton Admin record.
func GetAdminRecordAddress() (*Account, uint8, error) {
	return deriveRecordAddress(adminRecordSeed)
}

// GetAssetRecordAddress derives the address of the Asset record keyed off the
// provided backing mint.
func GetAssetRecordAddress(mint *Account) (*Account, uint8, error) {
	return deriveRecordAddress(assetRecordSeed, mint.PublicKey().ToBytes())
}

// GetVaultRecordAddress derives the address of the Vault record keyed off the
// provided backing mint. The derived account doubles as the vault's signing
// authority: it has no private key, so only the accounting engine can move
// funds on its behalf.
func GetVaultRecordAddress(mint *Account) (*Account, uint8, error) {
	return deriveRecordAddress(vaultRecordSeed, mint.PublicKey().ToBytes())
}

func deriveRecordAddress(seeds ...[]byte) (*Account, uint8, error) {
	programKey, err := NewKeyFromString(ProgramID)
	if err != nil {
		return nil, 0, errors.Wrap(err, "invalid program id")
	}

	address, bump, err := solana.FindProgramAddressAndBump(programKey.ToBytes(), seeds...)
	if err != nil {
		return nil, 0, errors.Wrap(err, "error deriving record address")
	}

	account, err := NewAccountFromPublicKeyBytes(address)
	if err != nil {
		return nil, 0, err
	}
	return account, bump, nil
}
