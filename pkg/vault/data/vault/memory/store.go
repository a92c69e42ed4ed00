package memory

import (
	"context"
	"sync"
	"time"

	"github.com/stablevault/vault-server/pkg/vault/data/vault"
)

type store struct {
	mu      sync.Mutex
	records []*vault.Record
	last    uint64
}

// New returns a new in memory vault.Store
func New() vault.Store {
	return &store{}
}

// Put implements vault.Store.Put
func (s *store) Put(_ context.Context, data *vault.Record) error {
	if err := data.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.last++
	if item := s.findByMint(data.Mint); item != nil {
		return vault.ErrAlreadyExists
	}

	data.Id = s.last
	data.LastUpdatedAt = time.Now()
	s.records = append(s.records, data.Clone())

	return nil
}

// Update implements vault.Store.Update
func (s *store) Update(_ context.Context, data *vault.Record) error {
	if err := data.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.findByMint(data.Mint)
	if item == nil {
		return vault.ErrNotFound
	}

	if data.Id != item.Id {
		return vault.ErrStaleRecord
	}

	data.LastUpdatedAt = time.Now()
	data.CopyTo(item)

	return nil
}

// GetByMint implements vault.Store.GetByMint
func (s *store) GetByMint(_ context.Context, mint string) (*vault.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item := s.findByMint(mint); item != nil {
		return item.Clone(), nil
	}
	return nil, vault.ErrNotFound
}

// GetByAddress implements vault.Store.GetByAddress
func (s *store) GetByAddress(_ context.Context, address string) (*vault.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.records {
		if item.Address == address {
			return item.Clone(), nil
		}
	}
	return nil, vault.ErrNotFound
}

func (s *store) findByMint(mint string) *vault.Record {
	for _, item := range s.records {
		if item.Mint == mint {
			return item
		}
	}
	return nil
}

func (s *store) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	s.last = 0
}
