package domain

import "fmt"

// ConsistencyError reports which count invariant failed. It matches
// ErrInconsistentTotals with errors.Is.
type ConsistencyError struct {
	Reason string
}

func (e *ConsistencyError) Error() string {
	return ErrInconsistentTotals.Error() + ": " + e.Reason
}

func (e *ConsistencyError) Unwrap() error {
	return ErrInconsistentTotals
}

func inconsistent(format string, args ...any) error {
	return &ConsistencyError{Reason: fmt.Sprintf(format, args...)}
}

// CheckConsistency recomputes the brand and model totals of r from scratch and
// returns a *ConsistencyError describing the first violation found.
//
// Brands whose count is still unknown are assumed to need at least one truck
// each, so a count is rejected as soon as it leaves no room for them.
func CheckConsistency(r *FleetRecord) error {
	sum := 0
	outstanding := 0
	for i, n := range r.BrandCounts {
		if n != nil {
			if *n < 1 {
				return inconsistent("The number of %s trucks is zero or negative!", r.Brands[i])
			}
			sum += *n
		} else {
			outstanding++
		}
		if sum > r.TotalTrucks-outstanding {
			return inconsistent("The number of trucks among brands exceeds the total!")
		}
	}

	if outstanding == 0 && sum < r.TotalTrucks {
		return inconsistent("You have specified too low a number of trucks!")
	}

	perBrand := make([]int, len(r.Brands))
	for _, g := range r.Groups {
		i := g.Spec.BrandIndex
		perBrand[i] += g.Count
		declared := 0
		if r.BrandCounts[i] != nil {
			declared = *r.BrandCounts[i]
		}
		if perBrand[i] > declared {
			return inconsistent("The number of %s trucks among models exceeds the total!", g.Spec.Brand)
		}
	}
	return nil
}

// CheckBrandComplete reports whether the groups of brand i cover its declared count.
func CheckBrandComplete(r *FleetRecord, i int) bool {
	if i < 0 || i >= len(r.BrandCounts) || r.BrandCounts[i] == nil {
		return false
	}
	return r.Completion[i] == *r.BrandCounts[i]
}
