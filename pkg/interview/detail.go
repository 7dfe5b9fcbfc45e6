package interview

import (
	"github.com/aretw0/fleetintake/pkg/domain"
	"github.com/aretw0/fleetintake/pkg/lexicon"
)

// Accepted ranges for the technical attributes of a model.
const (
	minEngineLitres = 1.0 // exclusive
	maxEngineLitres = 20.0
	minAxles        = 1
	maxAxles        = 6
	minTons         = 0.0
	maxTons         = 80.0
)

// modelInterview collects the attributes of a single model. It owns the
// in-progress spec until every attribute is set, then hands it to the Machine.
type modelInterview struct {
	spec domain.ModelSpec
	step Kind
}

func newModelInterview(brand string, index int, model string) *modelInterview {
	return &modelInterview{
		spec: domain.ModelSpec{Brand: brand, BrandIndex: index, Model: model},
		step: AskEngineSize,
	}
}

// complete reports whether all four attributes have been collected.
func (d *modelInterview) complete() bool {
	return d.step == AskGroupSize
}

func (d *modelInterview) prompt() string {
	switch d.step {
	case AskEngineSize:
		return promptEngineSize(d.spec.Model)
	case AskAxleCount:
		return promptAxleCount(d.spec.Model)
	case AskWeight:
		return promptWeight(d.spec.Model)
	case AskMaxLoad:
		return promptMaxLoad(d.spec.Model)
	}
	return ""
}

// answer validates input for the current attribute, stores it in the spec
// and moves to the next attribute.
func (d *modelInterview) answer(input string) error {
	switch d.step {
	case AskEngineSize:
		v, err := lexicon.ParseQuantity(input, lexicon.EngineVolume)
		if err != nil {
			return reject(err, msgNotANumber)
		}
		if v <= minEngineLitres || v > maxEngineLitres {
			return reject(outOfRange("engine size", v), msgEngineRange)
		}
		d.spec.EngineSize = &v
		d.step = AskAxleCount

	case AskAxleCount:
		n, err := lexicon.ParseInt(input)
		if err != nil {
			return reject(err, msgNotANumber)
		}
		if n < minAxles || n > maxAxles {
			return reject(outOfRange("axle number", n), msgAxleRange)
		}
		d.spec.AxleNumber = &n
		d.step = AskWeight

	case AskWeight:
		v, err := parseTons(input)
		if err != nil {
			return reject(err, msgNotANumber)
		}
		if v < minTons || v > maxTons {
			return reject(outOfRange("weight", v), msgWeightRange)
		}
		d.spec.Weight = &v
		d.step = AskMaxLoad

	case AskMaxLoad:
		v, err := parseTons(input)
		if err != nil {
			return reject(err, msgNotANumber)
		}
		if v < minTons || v > maxTons {
			return reject(outOfRange("max load", v), msgMaxLoadRange)
		}
		d.spec.MaxLoad = &v
		d.step = AskGroupSize
	}
	return nil
}

func parseTons(input string) (float64, error) {
	return lexicon.ParseQuantity(input, lexicon.Tons)
}
