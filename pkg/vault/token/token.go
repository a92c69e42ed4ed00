package token

import (
	"context"
	"errors"

	"github.com/stablevault/vault-server/pkg/vault/common"
)

var (
	ErrMintNotFound      = errors.New("token mint not found")
	ErrMintAlreadyExists = errors.New("token mint already exists")

	ErrAccountNotFound      = errors.New("token account not found")
	ErrAccountAlreadyExists = errors.New("token account already exists")

	ErrInvalidAuthority    = errors.New("invalid token authority")
	ErrInsufficientBalance = errors.New("insufficient token balance")
)

// Client moves token balances between accounts on behalf of the vault. An
// account is keyed by its owner and mint; each owner holds at most one
// account per mint.
//
// Transfer and Burn require the authority to be the owner of the source
// account. MintTo requires the authority to be the mint authority. Amounts
// are in quarks.
type Client interface {
	// CreateMint creates a new mint with the given mint authority
	CreateMint(ctx context.Context, mint, authority *common.Account) error

	// CreateAccount creates an empty token account for owner under mint
	CreateAccount(ctx context.Context, owner, mint *common.Account) error

	// GetBalance gets the balance of owner's token account under mint
	GetBalance(ctx context.Context, owner, mint *common.Account) (uint64, error)

	// Transfer moves amount from the source owner's account to the
	// destination owner's account under the same mint
	Transfer(ctx context.Context, mint, source, destination, authority *common.Account, amount uint64) error

	// MintTo mints amount new tokens into the destination owner's account
	MintTo(ctx context.Context, mint, destination, authority *common.Account, amount uint64) error

	// Burn destroys amount tokens from the source owner's account
	Burn(ctx context.Context, mint, source, authority *common.Account, amount uint64) error
}
