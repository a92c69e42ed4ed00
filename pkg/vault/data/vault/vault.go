package vault

import (
	"time"

	"github.com/pkg/errors"
)

// Record is a Vault ledger record: the per-asset stablecoin reserve and
// outstanding synthetic supply. TotalUsdc and TotalAssets are quark amounts
// and only change through deposit, redeem and admin withdraw flows.
type Record struct {
	Id uint64

	Address string
	Bump    uint8

	Mint string

	TotalUsdc    uint64
	TotalAssets  uint64
	DepositLimit uint64

	LastUpdatedAt time.Time
}

func (r *Record) Validate() error {
	if len(r.Address) == 0 {
		return errors.New("address is required")
	}

	if len(r.Mint) == 0 {
		return errors.New("mint is required")
	}

	return nil
}

func (r *Record) Clone() *Record {
	return &Record{
		Id: r.Id,

		Address: r.Address,
		Bump:    r.Bump,

		Mint: r.Mint,

		TotalUsdc:    r.TotalUsdc,
		TotalAssets:  r.TotalAssets,
		DepositLimit: r.DepositLimit,

		LastUpdatedAt: r.LastUpdatedAt,
	}
}

func (r *Record) CopyTo(dst *Record) {
	dst.Id = r.Id

	dst.Address = r.Address
	dst.Bump = r.Bump

	dst.Mint = r.Mint

	dst.TotalUsdc = r.TotalUsdc
	dst.TotalAssets = r.TotalAssets
	dst.DepositLimit = r.DepositLimit

	dst.LastUpdatedAt = r.LastUpdatedAt
}
