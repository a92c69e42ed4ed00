package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stablevault/vault-server/pkg/vault/common"
	"github.com/stablevault/vault-server/pkg/vault/token"
)

func TestMemoryTokenClient_HappyPath(t *testing.T) {
	ctx := context.Background()
	client := New()

	mint := newAccount(t)
	mintAuthority := newAccount(t)
	alice := newAccount(t)
	bob := newAccount(t)

	require.NoError(t, client.CreateMint(ctx, mint, mintAuthority))
	require.NoError(t, client.CreateAccount(ctx, alice, mint))
	require.NoError(t, client.CreateAccount(ctx, bob, mint))

	require.NoError(t, client.MintTo(ctx, mint, alice, mintAuthority, 100))

	balance, err := client.GetBalance(ctx, alice, mint)
	require.NoError(t, err)
	assert.EqualValues(t, 100, balance)

	require.NoError(t, client.Transfer(ctx, mint, alice, bob, alice, 40))

	balance, err = client.GetBalance(ctx, alice, mint)
	require.NoError(t, err)
	assert.EqualValues(t, 60, balance)

	balance, err = client.GetBalance(ctx, bob, mint)
	require.NoError(t, err)
	assert.EqualValues(t, 40, balance)

	require.NoError(t, client.Burn(ctx, mint, bob, bob, 40))

	balance, err = client.GetBalance(ctx, bob, mint)
	require.NoError(t, err)
	assert.EqualValues(t, 0, balance)
}

func TestMemoryTokenClient_Authority(t *testing.T) {
	ctx := context.Background()
	client := New()

	mint := newAccount(t)
	mintAuthority := newAccount(t)
	alice := newAccount(t)
	mallory := newAccount(t)

	require.NoError(t, client.CreateMint(ctx, mint, mintAuthority))
	require.NoError(t, client.CreateAccount(ctx, alice, mint))
	require.NoError(t, client.CreateAccount(ctx, mallory, mint))

	assert.Equal(t, token.ErrInvalidAuthority, client.MintTo(ctx, mint, alice, mallory, 100))

	require.NoError(t, client.MintTo(ctx, mint, alice, mintAuthority, 100))

	assert.Equal(t, token.ErrInvalidAuthority, client.Transfer(ctx, mint, alice, mallory, mallory, 100))
	assert.Equal(t, token.ErrInvalidAuthority, client.Burn(ctx, mint, alice, mallory, 100))

	balance, err := client.GetBalance(ctx, alice, mint)
	require.NoError(t, err)
	assert.EqualValues(t, 100, balance)
}

func TestMemoryTokenClient_Errors(t *testing.T) {
	ctx := context.Background()
	client := New()

	mint := newAccount(t)
	mintAuthority := newAccount(t)
	alice := newAccount(t)
	bob := newAccount(t)

	assert.Equal(t, token.ErrMintNotFound, client.CreateAccount(ctx, alice, mint))

	require.NoError(t, client.CreateMint(ctx, mint, mintAuthority))
	assert.Equal(t, token.ErrMintAlreadyExists, client.CreateMint(ctx, mint, mintAuthority))

	require.NoError(t, client.CreateAccount(ctx, alice, mint))
	assert.Equal(t, token.ErrAccountAlreadyExists, client.CreateAccount(ctx, alice, mint))

	_, err := client.GetBalance(ctx, bob, mint)
	assert.Equal(t, token.ErrAccountNotFound, err)

	assert.Equal(t, token.ErrAccountNotFound, client.Transfer(ctx, mint, alice, bob, alice, 1))

	require.NoError(t, client.CreateAccount(ctx, bob, mint))
	assert.Equal(t, token.ErrInsufficientBalance, client.Transfer(ctx, mint, alice, bob, alice, 1))
	assert.Equal(t, token.ErrInsufficientBalance, client.Burn(ctx, mint, alice, alice, 1))
}

func newAccount(t *testing.T) *common.Account {
	account, err := common.NewRandomAccount()
	require.NoError(t, err)
	return account
}
