package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aretw0/fleetintake/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultKey is the list that receives records when no key is configured.
const DefaultKey = "fleetintake:records"

// Store implements ports.RecordStore as a Redis list. Records are pushed to
// the tail with RPUSH, so LRANGE returns them in append order.
type Store struct {
	client *backend.Client
	key    string
}

type Option func(*Store)

// WithKey sets the list key.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		key:    DefaultKey,
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

// Append pushes the record as one JSON element.
func (s *Store) Append(ctx context.Context, record *domain.FleetRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if err := s.client.RPush(ctx, s.key, data).Err(); err != nil {
		return fmt.Errorf("failed to append to redis: %w", err)
	}
	return nil
}

// Records returns the whole list.
func (s *Store) Records(ctx context.Context) ([]domain.RecordDTO, error) {
	vals, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read from redis: %w", err)
	}

	records := make([]domain.RecordDTO, 0, len(vals))
	for i, val := range vals {
		var rec domain.RecordDTO
		if err := json.Unmarshal([]byte(val), &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
