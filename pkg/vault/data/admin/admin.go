package admin

import (
	"time"

	"github.com/pkg/errors"
)

// Record is the singleton Admin ledger record. It binds the authority identity
// that is allowed to perform privileged operations against every vault.
type Record struct {
	Id uint64

	Address string
	Bump    uint8

	Authority string

	CreatedAt time.Time
}

func (r *Record) Validate() error {
	if len(r.Address) == 0 {
		return errors.New("address is required")
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

		Authority: r.Authority,

		CreatedAt: r.CreatedAt,
	}
}

func (r *Record) CopyTo(dst *Record) {
	dst.Id = r.Id

	dst.Address = r.Address
	dst.Bump = r.Bump

	dst.Authority = r.Authority

	dst.CreatedAt = r.CreatedAt
}
