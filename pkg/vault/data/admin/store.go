package admin

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("admin record not found")
	ErrAlreadyExists = errors.New("admin record already exists")
)

type Store interface {
	// Put creates the singleton admin record. There is exactly one admin
	// record per deployment, so a second call fails with ErrAlreadyExists.
	Put(ctx context.Context, record *Record) error

	// Get gets the admin record, if it exists
	Get(ctx context.Context) (*Record, error)
}
