package memory

import (
	"context"
	"errors"
	"math"
	"sync"

	"github.com/stablevault/vault-server/pkg/vault/common"
	"github.com/stablevault/vault-server/pkg/vault/token"
)

type accountKey struct {
	owner string
	mint  string
}

type client struct {
	mu       sync.Mutex
	mints    map[string]string // mint -> mint authority
	balances map[accountKey]uint64
}

// New returns a new in memory token.Client
func New() token.Client {
	return &client{
		mints:    make(map[string]string),
		balances: make(map[accountKey]uint64),
	}
}

// CreateMint implements token.Client.CreateMint
func (c *client) CreateMint(_ context.Context, mint, authority *common.Account) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	mintAddress := mint.PublicKey().ToBase58()
	if _, ok := c.mints[mintAddress]; ok {
		return token.ErrMintAlreadyExists
	}

	c.mints[mintAddress] = authority.PublicKey().ToBase58()
	return nil
}

// CreateAccount implements token.Client.CreateAccount
func (c *client) CreateAccount(_ context.Context, owner, mint *common.Account) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	mintAddress := mint.PublicKey().ToBase58()
	if _, ok := c.mints[mintAddress]; !ok {
		return token.ErrMintNotFound
	}

	key := accountKey{owner: owner.PublicKey().ToBase58(), mint: mintAddress}
	if _, ok := c.balances[key]; ok {
		return token.ErrAccountAlreadyExists
	}

	c.balances[key] = 0
	return nil
}

// GetBalance implements token.Client.GetBalance
func (c *client) GetBalance(_ context.Context, owner, mint *common.Account) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := accountKey{owner: owner.PublicKey().ToBase58(), mint: mint.PublicKey().ToBase58()}
	balance, ok := c.balances[key]
	if !ok {
		return 0, token.ErrAccountNotFound
	}
	return balance, nil
}

// Transfer implements token.Client.Transfer
func (c *client) Transfer(_ context.Context, mint, source, destination, authority *common.Account, amount uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	mintAddress := mint.PublicKey().ToBase58()
	if _, ok := c.mints[mintAddress]; !ok {
		return token.ErrMintNotFound
	}

	sourceKey := accountKey{owner: source.PublicKey().ToBase58(), mint: mintAddress}
	sourceBalance, ok := c.balances[sourceKey]
	if !ok {
		return token.ErrAccountNotFound
	}

	destinationKey := accountKey{owner: destination.PublicKey().ToBase58(), mint: mintAddress}
	destinationBalance, ok := c.balances[destinationKey]
	if !ok {
		return token.ErrAccountNotFound
	}

	if authority.PublicKey().ToBase58() != sourceKey.owner {
		return token.ErrInvalidAuthority
	}

	if sourceBalance < amount {
		return token.ErrInsufficientBalance
	}

	c.balances[sourceKey] = sourceBalance - amount
	c.balances[destinationKey] = destinationBalance + amount
	return nil
}

// MintTo implements token.Client.MintTo
func (c *client) MintTo(_ context.Context, mint, destination, authority *common.Account, amount uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	mintAddress := mint.PublicKey().ToBase58()
	mintAuthority, ok := c.mints[mintAddress]
	if !ok {
		return token.ErrMintNotFound
	}

	if authority.PublicKey().ToBase58() != mintAuthority {
		return token.ErrInvalidAuthority
	}

	destinationKey := accountKey{owner: destination.PublicKey().ToBase58(), mint: mintAddress}
	destinationBalance, ok := c.balances[destinationKey]
	if !ok {
		return token.ErrAccountNotFound
	}

	if destinationBalance > math.MaxUint64-amount {
		return errors.New("mint would overflow destination balance")
	}

	c.balances[destinationKey] = destinationBalance + amount
	return nil
}

// Burn implements token.Client.Burn
func (c *client) Burn(_ context.Context, mint, source, authority *common.Account, amount uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	mintAddress := mint.PublicKey().ToBase58()
	if _, ok := c.mints[mintAddress]; !ok {
		return token.ErrMintNotFound
	}

	sourceKey := accountKey{owner: source.PublicKey().ToBase58(), mint: mintAddress}
	sourceBalance, ok := c.balances[sourceKey]
	if !ok {
		return token.ErrAccountNotFound
	}

	if authority.PublicKey().ToBase58() != sourceKey.owner {
		return token.ErrInvalidAuthority
	}

	if sourceBalance < amount {
		return token.ErrInsufficientBalance
	}

	c.balances[sourceKey] = sourceBalance - amount
	return nil
}

func (c *client) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mints = make(map[string]string)
	c.balances = make(map[accountKey]uint64)
}
