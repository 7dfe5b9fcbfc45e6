package interview

import (
	"context"
	"fmt"

	"github.com/aretw0/fleetintake/pkg/domain"
)

// Run asks questions until the interview is Done and returns the frozen
// record. Rejected answers are asked again without limit. Cancellation is
// observed between turns; exhausted input ends the interview with an error.
func Run(ctx context.Context, m *Machine) (*domain.FleetRecord, error) {
	if err := m.Advance(ctx); err != nil {
		return nil, err
	}
	for m.state.Kind != Done {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		answer, err := m.conv.Ask(ctx, m.Prompt())
		if err != nil {
			return nil, fmt.Errorf("interview interrupted at %s: %w", m.state, err)
		}
		if _, err := m.Step(ctx, answer); err != nil && !Rejected(err) {
			return nil, err
		}
	}
	return m.record, nil
}
