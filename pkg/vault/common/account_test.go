package common

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_RoundTrip(t *testing.T) {
	account, err := NewRandomAccount()
	require.NoError(t, err)

	require.NoError(t, account.Validate())
	assert.True(t, account.IsManagedByServer())

	fromString, err := NewAccountFromPublicKeyString(account.PublicKey().ToBase58())
	require.NoError(t, err)
	assert.Equal(t, account.PublicKey().ToBase58(), fromString.PublicKey().ToBase58())
	assert.False(t, fromString.IsManagedByServer())

	fromBytes, err := NewAccountFromPublicKeyBytes(account.PublicKey().ToBytes())
	require.NoError(t, err)
	assert.Equal(t, account.PublicKey().ToBase58(), fromBytes.PublicKey().ToBase58())
}

func TestAccount_Sign(t *testing.T) {
	account, err := NewRandomAccount()
	require.NoError(t, err)

	message := []byte("deposit 5000000")
	signature, err := account.Sign(message)
	require.NoError(t, err)
	assert.True(t, ed25519.Verify(account.PublicKey().ToBytes(), message, signature))

	publicOnly, err := NewAccountFromPublicKey(account.PublicKey())
	require.NoError(t, err)
	_, err = publicOnly.Sign(message)
	assert.Error(t, err)
}

func TestKey_Validation(t *testing.T) {
	_, err := NewKeyFromBytes([]byte("too short"))
	assert.Error(t, err)

	key, err := NewRandomKey()
	require.NoError(t, err)
	assert.False(t, key.IsPublic())

	_, err = NewKeyFromString("not-valid-base58-0OIl")
	assert.Error(t, err)
}

func TestDerivedRecordAddresses(t *testing.T) {
	mint, err := NewRandomAccount()
	require.NoError(t, err)

	adminAddress, _, err := GetAdminRecordAddress()
	require.NoError(t, err)

	// Derivation is deterministic
	again, _, err := GetAdminRecordAddress()
	require.NoError(t, err)
	assert.Equal(t, adminAddress.PublicKey().ToBase58(), again.PublicKey().ToBase58())

	assetAddress, _, err := GetAssetRecordAddress(mint)
	require.NoError(t, err)
	vaultAddress, _, err := GetVaultRecordAddress(mint)
	require.NoError(t, err)

	// Distinct tags and mints yield distinct addresses
	assert.NotEqual(t, assetAddress.PublicKey().ToBase58(), vaultAddress.PublicKey().ToBase58())

	otherMint, err := NewRandomAccount()
	require.NoError(t, err)
	otherVaultAddress, _, err := GetVaultRecordAddress(otherMint)
	require.NoError(t, err)
	assert.NotEqual(t, vaultAddress.PublicKey().ToBase58(), otherVaultAddress.PublicKey().ToBase58())

	// Derived addresses have no private key
	assert.False(t, vaultAddress.IsManagedByServer())
}
