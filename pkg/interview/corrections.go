package interview

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/fleetintake/pkg/domain"
	"github.com/aretw0/fleetintake/pkg/lexicon"
)

const (
	cmdStartOver = "start over"
	cmdCorrect   = "correct "
)

// correction handles the "start over" and "correct <brand>" commands. It
// reports false when answer is not a command the Machine can act on, in which
// case the answer is processed as usual.
func (m *Machine) correction(ctx context.Context, answer string) (bool, error) {
	n := lexicon.Normalize(answer)

	if n == cmdStartOver {
		m.logger.Info("starting over", "state", m.state.String())
		m.emitCorrection(ctx, cmdStartOver, "")
		m.detail = nil
		m.enter(ctx, State{Kind: StartTrucks})
		return true, nil
	}

	target, ok := strings.CutPrefix(n, cmdCorrect)
	if !ok {
		return false, nil
	}
	for i, brand := range m.record.Brands {
		if lexicon.Normalize(brand) == target {
			m.logger.Info("correcting brand", "brand", brand, "state", m.state.String())
			m.emitCorrection(ctx, strings.TrimSpace(cmdCorrect), brand)
			return true, m.startBrand(ctx, i)
		}
	}

	m.logger.Info("correction ignored", "error", fmt.Errorf("%w: %q", domain.ErrUnknownCorrectionTarget, target))
	return false, m.tell(ctx, msgUnknownTarget)
}

func (m *Machine) emitCorrection(ctx context.Context, command, brand string) {
	if m.hooks.OnCorrection != nil {
		m.hooks.OnCorrection(ctx, &CorrectionEvent{EventBase: newBase(EventCorrection), Command: command, Brand: brand})
	}
}
