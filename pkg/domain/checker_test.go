package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckConsistency_BrandCounts(t *testing.T) {
	tests := []struct {
		name   string
		total  int
		brands []string
		counts []*int
		ok     bool
	}{
		{"all unknown", 5, []string{"Scania", "Volvo"}, []*int{nil, nil}, true},
		{"first fits with room for second", 5, []string{"Scania", "Volvo"}, []*int{intPtr(4), nil}, true},
		{"first leaves no room for second", 5, []string{"Scania", "Volvo"}, []*int{intPtr(5), nil}, false},
		{"second known first unknown", 5, []string{"Scania", "Volvo"}, []*int{nil, intPtr(5)}, false},
		{"exact sum", 5, []string{"Scania", "Volvo"}, []*int{intPtr(2), intPtr(3)}, true},
		{"sum too low", 5, []string{"Scania", "Volvo"}, []*int{intPtr(2), intPtr(2)}, false},
		{"sum too high", 5, []string{"Scania", "Volvo"}, []*int{intPtr(3), intPtr(3)}, false},
		{"zero count", 5, []string{"Scania", "Volvo"}, []*int{intPtr(0), nil}, false},
		{"negative count", 5, []string{"Scania", "Volvo"}, []*int{intPtr(-1), nil}, false},
		{"over-allocated single brand", 2, []string{"Volvo"}, []*int{intPtr(5)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewFleetRecord()
			require.NoError(t, r.SetTotalTrucks(tt.total))
			require.NoError(t, r.SetBrands(tt.brands))
			for i, c := range tt.counts {
				require.NoError(t, r.SetBrandCount(i, c))
			}

			err := CheckConsistency(r)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInconsistentTotals)
			}
		})
	}
}

func TestCheckConsistency_GroupsExceedingBrandCount(t *testing.T) {
	r := NewFleetRecord()
	require.NoError(t, r.SetTotalTrucks(2))
	require.NoError(t, r.SetBrands([]string{"Volvo"}))
	require.NoError(t, r.SetBrandCount(0, intPtr(2)))
	require.NoError(t, r.AddGroup(fullSpec("Volvo", 0, "FH16"), 2))
	require.NoError(t, CheckConsistency(r))

	// Lowering the declared count below the recorded groups breaks the invariant.
	require.NoError(t, r.SetBrandCount(0, intPtr(1)))
	r.TotalTrucks = 1
	assert.ErrorIs(t, CheckConsistency(r), ErrInconsistentTotals)
}

func TestCheckBrandComplete(t *testing.T) {
	r := NewFleetRecord()
	require.NoError(t, r.SetTotalTrucks(5))
	require.NoError(t, r.SetBrands([]string{"Scania", "Volvo"}))

	assert.False(t, CheckBrandComplete(r, 0), "unset count is never complete")

	require.NoError(t, r.SetBrandCount(0, intPtr(2)))
	assert.False(t, CheckBrandComplete(r, 0))

	require.NoError(t, r.AddGroup(fullSpec("Scania", 0, "R450"), 1))
	assert.False(t, CheckBrandComplete(r, 0))
	assert.Equal(t, 1, r.Remaining(0))

	require.NoError(t, r.AddGroup(fullSpec("Scania", 0, "P280"), 1))
	assert.True(t, CheckBrandComplete(r, 0))
	assert.Equal(t, 0, r.Remaining(0))

	assert.False(t, CheckBrandComplete(r, 7))
}

func TestCheckConsistency_Reason(t *testing.T) {
	r := NewFleetRecord()
	require.NoError(t, r.SetTotalTrucks(2))
	require.NoError(t, r.SetBrands([]string{"Volvo"}))
	require.NoError(t, r.SetBrandCount(0, intPtr(5)))

	err := CheckConsistency(r)
	var ce *ConsistencyError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "The number of trucks among brands exceeds the total!", ce.Reason)
	assert.Contains(t, err.Error(), "inconsistent totals")
}
