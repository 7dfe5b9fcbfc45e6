package domain

import (
	"fmt"
	"strings"
)

// FleetRecord is the aggregate filled in by one interview.
// Brand-level slices are indexed by brand position in Brands and are reset
// together by StartOver.
type FleetRecord struct {
	Name        string
	Company     string
	TotalTrucks int

	Brands []string

	// BrandCounts holds the declared number of trucks per brand (nil = not answered).
	BrandCounts []*int
	// SameModel records whether all trucks of a brand share one model (nil = not answered).
	SameModel []*bool
	// Models holds the distinct model names collected per brand.
	Models [][]string
	// Groups holds one entry per reported model.
	Groups []TruckGroup
	// Completion is the running sum of group counts per brand.
	Completion []int

	frozen   bool
	modelKey func(string) string
}

// ModelSpec describes one truck model. Attributes are nil until answered.
type ModelSpec struct {
	Brand      string
	BrandIndex int
	Model      string

	EngineSize *float64 // litres
	AxleNumber *int
	Weight     *float64 // tons
	MaxLoad    *float64 // tons
}

// Complete reports whether every attribute of the spec has been answered.
func (s ModelSpec) Complete() bool {
	return s.EngineSize != nil && s.AxleNumber != nil && s.Weight != nil && s.MaxLoad != nil
}

// TruckGroup is all trucks of one exact model of one brand.
type TruckGroup struct {
	Spec  ModelSpec
	Count int
}

// RecordOption configures a FleetRecord.
type RecordOption func(*FleetRecord)

// WithModelKey sets the function used to compare model names for duplicates.
func WithModelKey(key func(string) string) RecordOption {
	return func(r *FleetRecord) {
		r.modelKey = key
	}
}

// NewFleetRecord creates an empty record. Without WithModelKey or
// UseModelKey, model names are compared case-insensitively.
func NewFleetRecord(opts ...RecordOption) *FleetRecord {
	r := &FleetRecord{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// UseModelKey sets the model comparison key unless one was already chosen.
func (r *FleetRecord) UseModelKey(key func(string) string) {
	if r.modelKey == nil {
		r.modelKey = key
	}
}

func (r *FleetRecord) key(name string) string {
	if r.modelKey == nil {
		return strings.ToLower(strings.TrimSpace(name))
	}
	return r.modelKey(name)
}

func (r *FleetRecord) mutable() error {
	if r.frozen {
		return ErrRecordFrozen
	}
	return nil
}

// Freeze marks the record as final. Every mutator fails afterwards.
func (r *FleetRecord) Freeze() {
	r.frozen = true
}

// Frozen reports whether Freeze was called.
func (r *FleetRecord) Frozen() bool {
	return r.frozen
}

// SetName records the owner's name.
func (r *FleetRecord) SetName(name string) error {
	if err := r.mutable(); err != nil {
		return err
	}
	r.Name = name
	return nil
}

// SetCompany records the owner's company.
func (r *FleetRecord) SetCompany(company string) error {
	if err := r.mutable(); err != nil {
		return err
	}
	r.Company = company
	return nil
}

// SetTotalTrucks records the fleet size.
func (r *FleetRecord) SetTotalTrucks(n int) error {
	if err := r.mutable(); err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("%w: negative truck count %d", ErrOutOfRange, n)
	}
	r.TotalTrucks = n
	return nil
}

// SetBrands stores the brand list and resets every brand-level field.
func (r *FleetRecord) SetBrands(brands []string) error {
	if err := r.mutable(); err != nil {
		return err
	}
	r.Brands = append([]string(nil), brands...)
	return r.StartOver()
}

// StartOver discards all brand-level answers. Identity fields and the brand
// list survive.
func (r *FleetRecord) StartOver() error {
	if err := r.mutable(); err != nil {
		return err
	}
	n := len(r.Brands)
	r.BrandCounts = make([]*int, n)
	r.SameModel = make([]*bool, n)
	r.Models = make([][]string, n)
	r.Groups = nil
	r.Completion = make([]int, n)
	return nil
}

// StartOverBrand discards the answers for brand i, including its groups.
func (r *FleetRecord) StartOverBrand(i int) error {
	if err := r.mutable(); err != nil {
		return err
	}
	if err := r.checkIndex(i); err != nil {
		return err
	}
	r.BrandCounts[i] = nil
	r.SameModel[i] = nil
	r.Models[i] = nil
	r.Completion[i] = 0

	kept := r.Groups[:0]
	for _, g := range r.Groups {
		if g.Spec.BrandIndex != i {
			kept = append(kept, g)
		}
	}
	r.Groups = kept
	return nil
}

// SetBrandCount sets (n != nil) or clears (n == nil) the declared count of brand i.
func (r *FleetRecord) SetBrandCount(i int, n *int) error {
	if err := r.mutable(); err != nil {
		return err
	}
	if err := r.checkIndex(i); err != nil {
		return err
	}
	r.BrandCounts[i] = n
	return nil
}

// SetSameModel records whether brand i has a single model.
func (r *FleetRecord) SetSameModel(i int, same bool) error {
	if err := r.mutable(); err != nil {
		return err
	}
	if err := r.checkIndex(i); err != nil {
		return err
	}
	r.SameModel[i] = &same
	return nil
}

// HasModel reports whether name was already recorded for brand i.
func (r *FleetRecord) HasModel(i int, name string) bool {
	if i < 0 || i >= len(r.Models) {
		return false
	}
	key := r.key(name)
	for _, m := range r.Models[i] {
		if r.key(m) == key {
			return true
		}
	}
	return false
}

// AddModel appends a model name to brand i.
func (r *FleetRecord) AddModel(i int, name string) error {
	if err := r.mutable(); err != nil {
		return err
	}
	if err := r.checkIndex(i); err != nil {
		return err
	}
	if r.HasModel(i, name) {
		return fmt.Errorf("%w: %s %s", ErrDuplicateModelName, r.Brands[i], name)
	}
	r.Models[i] = append(r.Models[i], name)
	return nil
}

// AddGroup records n trucks of the model described by spec. The group is
// rejected when the spec is incomplete, n is not positive, or the brand's
// declared count would be exceeded.
func (r *FleetRecord) AddGroup(spec ModelSpec, n int) error {
	if err := r.mutable(); err != nil {
		return err
	}
	i := spec.BrandIndex
	if err := r.checkIndex(i); err != nil {
		return err
	}
	if !spec.Complete() {
		return fmt.Errorf("incomplete specification for %s %s", spec.Brand, spec.Model)
	}
	if n <= 0 {
		return fmt.Errorf("%w: expected a positive number of trucks, got %d", ErrOutOfRange, n)
	}
	if r.BrandCounts[i] == nil || r.Completion[i]+n > *r.BrandCounts[i] {
		return fmt.Errorf("%w: %d more %s trucks exceed the declared count", ErrInconsistentTotals, n, spec.Brand)
	}
	r.Groups = append(r.Groups, TruckGroup{Spec: spec, Count: n})
	r.Completion[i] += n
	return nil
}

// Remaining returns how many trucks of brand i are not yet covered by groups.
func (r *FleetRecord) Remaining(i int) int {
	if i < 0 || i >= len(r.BrandCounts) || r.BrandCounts[i] == nil {
		return 0
	}
	return *r.BrandCounts[i] - r.Completion[i]
}

// BrandGroups returns the groups recorded for brand i.
func (r *FleetRecord) BrandGroups(i int) []TruckGroup {
	var out []TruckGroup
	for _, g := range r.Groups {
		if g.Spec.BrandIndex == i {
			out = append(out, g)
		}
	}
	return out
}

func (r *FleetRecord) checkIndex(i int) error {
	if i < 0 || i >= len(r.Brands) {
		return fmt.Errorf("brand index %d out of range [0,%d)", i, len(r.Brands))
	}
	return nil
}
