package interview

import "fmt"

// Kind identifies a step of the interview.
type Kind int

const (
	AskName Kind = iota
	AskCompany
	AskOwnsTrucks
	AskTotalCount
	AskBrands
	// StartTrucks announces the per-brand section and resets it. It never waits for input.
	StartTrucks
	AskBrandCount
	AskSameModel
	AskModelName
	AskEngineSize
	AskAxleCount
	AskWeight
	AskMaxLoad
	AskGroupSize
	Done
)

var kindNames = [...]string{
	AskName:       "ask_name",
	AskCompany:    "ask_company",
	AskOwnsTrucks: "ask_owns_trucks",
	AskTotalCount: "ask_total_count",
	AskBrands:     "ask_brands",
	StartTrucks:   "start_trucks",
	AskBrandCount: "ask_brand_count",
	AskSameModel:  "ask_same_model",
	AskModelName:  "ask_model_name",
	AskEngineSize: "ask_engine_size",
	AskAxleCount:  "ask_axle_count",
	AskWeight:     "ask_weight",
	AskMaxLoad:    "ask_max_load",
	AskGroupSize:  "ask_group_size",
	Done:          "done",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// BrandScoped reports whether states of this kind carry a brand index.
func (k Kind) BrandScoped() bool {
	return k >= AskBrandCount && k <= AskGroupSize
}

// ModelScoped reports whether states of this kind carry a model name.
func (k Kind) ModelScoped() bool {
	return k >= AskEngineSize && k <= AskGroupSize
}

// State is the current position of the interview. Brand is meaningful only
// for brand-scoped kinds, Model only for the model-detail kinds.
type State struct {
	Kind  Kind
	Brand int
	Model string
}

func (s State) String() string {
	switch {
	case s.Kind.ModelScoped():
		return fmt.Sprintf("%s(%d, %q)", s.Kind, s.Brand, s.Model)
	case s.Kind.BrandScoped():
		return fmt.Sprintf("%s(%d)", s.Kind, s.Brand)
	default:
		return s.Kind.String()
	}
}

func brandState(k Kind, i int) State {
	return State{Kind: k, Brand: i}
}

func modelState(k Kind, i int, model string) State {
	return State{Kind: k, Brand: i, Model: model}
}
