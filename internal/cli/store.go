package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/fleetintake/internal/config"
	"github.com/aretw0/fleetintake/pkg/adapters/file"
	"github.com/aretw0/fleetintake/pkg/adapters/redis"
	"github.com/aretw0/fleetintake/pkg/ports"
)

// Store is an opened record store and a description of where it writes.
type Store struct {
	ports.RecordStore
	Location string
	close    func() error
}

// Close releases the store's connection, if any.
func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// OpenStore opens the record store selected by cfg. The redis store is
// pinged so that a bad address fails before the interview starts.
func OpenStore(ctx context.Context, cfg config.Config) (*Store, error) {
	switch cfg.Store {
	case config.StoreFile:
		return &Store{RecordStore: file.New(cfg.DataFile), Location: cfg.DataFile}, nil
	case config.StoreRedis:
		s := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, redis.WithKey(cfg.Redis.Key))
		if err := s.Ping(ctx); err != nil {
			s.Close()
			return nil, fmt.Errorf("redis store at %s: %w", cfg.Redis.Addr, err)
		}
		return &Store{
			RecordStore: s,
			Location:    fmt.Sprintf("redis://%s/%d %s", cfg.Redis.Addr, cfg.Redis.DB, cfg.Redis.Key),
			close:       s.Close,
		}, nil
	}
	return nil, fmt.Errorf("%w: unknown store %q", config.ErrInvalid, cfg.Store)
}

// LoadBrands reads the brand vocabulary named by cfg.
func LoadBrands(ctx context.Context, cfg config.Config) ([]string, error) {
	return file.NewBrandList(cfg.BrandsFile).LoadBrands(ctx)
}
