package ports

import (
	"context"
	"testing"

	"github.com/aretw0/fleetintake/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunRecordStoreContract runs a suite of tests to verify that a RecordStore
// implementation adheres to the interface contract. The store must start empty.
func RunRecordStoreContract(t *testing.T, store RecordStore) {
	ctx := context.Background()

	t.Run("Empty", func(t *testing.T) {
		records, err := store.Records(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("Append Preserves Order And Fields", func(t *testing.T) {
		first := contractRecord(t, "Ada", "Volvo", "FH16", 3)
		second := contractRecord(t, "Grace", "Scania", "R450", 1)

		require.NoError(t, store.Append(ctx, first))
		require.NoError(t, store.Append(ctx, second))

		records, err := store.Records(ctx)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, first.DTO(), records[0])
		assert.Equal(t, second.DTO(), records[1])
	})

	t.Run("Record Without Trucks", func(t *testing.T) {
		r := domain.NewFleetRecord()
		require.NoError(t, r.SetName("Linus"))
		require.NoError(t, r.SetCompany("No Trucks Inc"))
		r.Freeze()

		require.NoError(t, store.Append(ctx, r))

		records, err := store.Records(ctx)
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "Linus", records[2].Name)
		assert.Empty(t, records[2].Trucks)
	})
}

func contractRecord(t *testing.T, name, brand, model string, n int) *domain.FleetRecord {
	t.Helper()
	engine, weight, load, axles := 12.8, 9.5, 26.0, 3

	r := domain.NewFleetRecord()
	require.NoError(t, r.SetName(name))
	require.NoError(t, r.SetCompany(name+" Logistics"))
	require.NoError(t, r.SetTotalTrucks(n))
	require.NoError(t, r.SetBrands([]string{brand}))
	require.NoError(t, r.SetBrandCount(0, &n))
	require.NoError(t, r.AddModel(0, model))
	require.NoError(t, r.AddGroup(domain.ModelSpec{
		Brand:      brand,
		BrandIndex: 0,
		Model:      model,
		EngineSize: &engine,
		AxleNumber: &axles,
		Weight:     &weight,
		MaxLoad:    &load,
	}, n))
	r.Freeze()
	return r
}
