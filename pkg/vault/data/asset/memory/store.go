package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/stablevault/vault-server/pkg/database/query"
	"github.com/stablevault/vault-server/pkg/vault/data/asset"
)

type store struct {
	mu      sync.Mutex
	records []*asset.Record
	last    uint64
}

// New returns a new in memory asset.Store
func New() asset.Store {
	return &store{}
}

// Put implements asset.Store.Put
func (s *store) Put(_ context.Context, data *asset.Record) error {
	if err := data.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.last++
	if item := s.findByMint(data.Mint); item != nil {
		return asset.ErrAlreadyExists
	}

	data.Id = s.last
	data.CreatedAt = time.Now()
	s.records = append(s.records, data.Clone())

	return nil
}

// GetByMint implements asset.Store.GetByMint
func (s *store) GetByMint(_ context.Context, mint string) (*asset.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item := s.findByMint(mint); item != nil {
		return item.Clone(), nil
	}
	return nil, asset.ErrNotFound
}

// GetByAddress implements asset.Store.GetByAddress
func (s *store) GetByAddress(_ context.Context, address string) (*asset.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.records {
		if item.Address == address {
			return item.Clone(), nil
		}
	}
	return nil, asset.ErrNotFound
}

// GetAll implements asset.Store.GetAll
func (s *store) GetAll(_ context.Context, cursor query.Cursor, limit uint64, direction query.Ordering) ([]*asset.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.records) == 0 {
		return nil, asset.ErrNotFound
	}

	var start uint64
	if len(cursor) > 0 {
		start = cursor.ToUint64()
	} else {
		start = 0
		if direction == query.Descending {
			start = s.last + 1
		}
	}

	var res []*asset.Record
	for _, item := range s.records {
		if direction == query.Ascending && item.Id > start {
			res = append(res, item.Clone())
		}
		if direction == query.Descending && item.Id < start {
			res = append(res, item.Clone())
		}
	}

	if len(res) == 0 {
		return nil, asset.ErrNotFound
	}

	sort.Slice(res, func(i, j int) bool {
		if direction == query.Descending {
			return res[i].Id > res[j].Id
		}
		return res[i].Id < res[j].Id
	})

	if limit > 0 && uint64(len(res)) > limit {
		res = res[:limit]
	}

	return res, nil
}

func (s *store) findByMint(mint string) *asset.Record {
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
