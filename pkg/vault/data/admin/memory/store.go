package memory

import (
	"context"
	"sync"
	"time"

	"github.com/stablevault/vault-server/pkg/vault/data/admin"
)

type store struct {
	mu     sync.Mutex
	record *admin.Record
}

// New returns a new in memory admin.Store
func New() admin.Store {
	return &store{}
}

// Put implements admin.Store.Put
func (s *store) Put(_ context.Context, data *admin.Record) error {
	if err := data.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.record != nil {
		return admin.ErrAlreadyExists
	}

	data.Id = 1
	data.CreatedAt = time.Now()
	s.record = data.Clone()

	return nil
}

// Get implements admin.Store.Get
func (s *store) Get(_ context.Context) (*admin.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.record == nil {
		return nil, admin.ErrNotFound
	}
	return s.record.Clone(), nil
}

func (s *store) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record = nil
}
