package asset

import (
	"time"

	"github.com/pkg/errors"
)

const (
	// MaxNameLength is the maximum byte length of an asset name
	MaxNameLength = 50

	// MaxTickerLength is the maximum byte length of an asset ticker
	MaxTickerLength = 10
)

// Record is an Asset ledger record: a synthetic token type backed by the
// stablecoin reserve at a fixed price. Records are immutable once created;
// in particular there is no price update path.
type Record struct {
	Id uint64

	Address string
	Bump    uint8

	Name   string
	Ticker string

	// Price of one whole asset token in stablecoin quarks (6 decimal fixed
	// point). Always > 0.
	Price uint64

	Mint      string
	Vault     string
	Authority string

	CreatedAt time.Time
}

func (r *Record) Validate() error {
	if len(r.Address) == 0 {
		return errors.New("address is required")
	}

	if len(r.Name) == 0 {
		return errors.New("name is required")
	}

	if len(r.Name) > MaxNameLength {
		return ErrNameTooLong
	}

	if len(r.Ticker) == 0 {
		return errors.New("ticker is required")
	}

	if len(r.Ticker) > MaxTickerLength {
		return ErrTickerTooLong
	}

	if r.Price == 0 {
		return ErrInvalidPrice
	}

	if len(r.Mint) == 0 {
		return errors.New("mint is required")
	}

	if len(r.Vault) == 0 {
		return errors.New("vault is required")
	}

	if len(r.Authority) == 0 {
		return errors.New("authority is required")
	}

	return nil
}

func (r *Record) Clone() *Record {
	return &Record{
		Id: r.Id,

		Address: r.Address,
		Bump:    r.Bump,

		Name:   r.Name,
		Ticker: r.Ticker,

		Price: r.Price,

		Mint:      r.Mint,
		Vault:     r.Vault,
		Authority: r.Authority,

		CreatedAt: r.CreatedAt,
	}
}

func (r *Record) CopyTo(dst *Record) {
	dst.Id = r.Id

	dst.Address = r.Address
	dst.Bump = r.Bump

	dst.Name = r.Name
	dst.Ticker = r.Ticker

	dst.Price = r.Price

	dst.Mint = r.Mint
	dst.Vault = r.Vault
	dst.Authority = r.Authority

	dst.CreatedAt = r.CreatedAt
}
