package ports

import (
	"context"

	"github.com/aretw0/fleetintake/pkg/domain"
)

// RecordStore persists finished interviews. Stores are append-only.
type RecordStore interface {
	// Append stores one record.
	Append(ctx context.Context, record *domain.FleetRecord) error

	// Records returns every stored record in append order.
	Records(ctx context.Context) ([]domain.RecordDTO, error)
}

// BrandSource provides the known brand vocabulary. Order defines priority
// when two entries normalize to the same name.
type BrandSource interface {
	LoadBrands(ctx context.Context) ([]string, error)
}
