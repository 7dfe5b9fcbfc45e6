package memory

import (
	"context"
	"sync"

	"github.com/aretw0/fleetintake/pkg/domain"
)

// Store implements ports.RecordStore in memory.
// Safe for concurrent use.
type Store struct {
	data []domain.RecordDTO
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{}
}

// Append stores a snapshot of the record, so later mutation does not leak in.
func (s *Store) Append(ctx context.Context, record *domain.FleetRecord) error {
	dto := record.DTO()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append(s.data, dto)
	return nil
}

// Records returns a copy of the stored records.
func (s *Store) Records(ctx context.Context) ([]domain.RecordDTO, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.RecordDTO, len(s.data))
	copy(out, s.data)
	return out, nil
}

// Brands implements ports.BrandSource over a fixed list.
type Brands []string

// LoadBrands returns a copy of the list.
func (b Brands) LoadBrands(ctx context.Context) ([]string, error) {
	return append([]string(nil), b...), nil
}
