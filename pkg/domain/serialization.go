package domain

import (
	"encoding/json"
	"fmt"
)

// RecordDTO is the persisted shape of a finished interview.
// Field names are part of the data file format and must not change.
type RecordDTO struct {
	Name        string     `json:"name"`
	Company     string     `json:"company"`
	TotalTrucks int        `json:"total_trucks"`
	Trucks      []TruckDTO `json:"trucks"`
}

// TruckDTO is one truck group inside RecordDTO.
type TruckDTO struct {
	Brand      string  `json:"brand"`
	Model      string  `json:"model"`
	EngineSize float64 `json:"engine_size"`
	AxleNumber int     `json:"axle_number"`
	Weight     float64 `json:"weight"`
	MaxLoad    float64 `json:"max_load"`
	NTrucks    int     `json:"n_trucks"`
}

// DTO converts the record into its persisted shape.
func (r *FleetRecord) DTO() RecordDTO {
	dto := RecordDTO{
		Name:        r.Name,
		Company:     r.Company,
		TotalTrucks: r.TotalTrucks,
		Trucks:      make([]TruckDTO, 0, len(r.Groups)),
	}
	for _, g := range r.Groups {
		t := TruckDTO{
			Brand:   g.Spec.Brand,
			Model:   g.Spec.Model,
			NTrucks: g.Count,
		}
		if g.Spec.EngineSize != nil {
			t.EngineSize = *g.Spec.EngineSize
		}
		if g.Spec.AxleNumber != nil {
			t.AxleNumber = *g.Spec.AxleNumber
		}
		if g.Spec.Weight != nil {
			t.Weight = *g.Spec.Weight
		}
		if g.Spec.MaxLoad != nil {
			t.MaxLoad = *g.Spec.MaxLoad
		}
		dto.Trucks = append(dto.Trucks, t)
	}
	return dto
}

// MarshalJSON encodes the record as a single JSON object.
func (r *FleetRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.DTO())
}

// FromDTO rebuilds a frozen record from its persisted shape. Brands are
// taken in order of first appearance and each brand's count is the sum of
// its groups. Structural errors are returned as is; count invariants are
// left for CheckConsistency.
func FromDTO(dto RecordDTO, opts ...RecordOption) (*FleetRecord, error) {
	r := NewFleetRecord(opts...)
	if err := r.SetName(dto.Name); err != nil {
		return nil, err
	}
	if err := r.SetCompany(dto.Company); err != nil {
		return nil, err
	}
	if err := r.SetTotalTrucks(dto.TotalTrucks); err != nil {
		return nil, err
	}

	index := map[string]int{}
	var brands []string
	counts := map[int]int{}
	for _, t := range dto.Trucks {
		if t.Brand == "" || t.Model == "" {
			return nil, fmt.Errorf("%w: truck without brand or model", ErrEmptyInput)
		}
		i, ok := index[t.Brand]
		if !ok {
			i = len(brands)
			index[t.Brand] = i
			brands = append(brands, t.Brand)
		}
		counts[i] += t.NTrucks
	}
	if err := r.SetBrands(brands); err != nil {
		return nil, err
	}
	for i := range brands {
		n := counts[i]
		if err := r.SetBrandCount(i, &n); err != nil {
			return nil, err
		}
	}

	for _, t := range dto.Trucks {
		i := index[t.Brand]
		if err := r.AddModel(i, t.Model); err != nil {
			return nil, err
		}
		spec := ModelSpec{
			Brand:      t.Brand,
			BrandIndex: i,
			Model:      t.Model,
			EngineSize: &t.EngineSize,
			AxleNumber: &t.AxleNumber,
			Weight:     &t.Weight,
			MaxLoad:    &t.MaxLoad,
		}
		if err := r.AddGroup(spec, t.NTrucks); err != nil {
			return nil, err
		}
	}
	for i := range brands {
		if err := r.SetSameModel(i, len(r.Models[i]) == 1); err != nil {
			return nil, err
		}
	}

	r.Freeze()
	return r, nil
}
