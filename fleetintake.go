package fleetintake

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/fleetintake/internal/logging"
	"github.com/aretw0/fleetintake/pkg/domain"
	"github.com/aretw0/fleetintake/pkg/interview"
	"github.com/aretw0/fleetintake/pkg/matcher"
	"github.com/aretw0/fleetintake/pkg/ports"
	"github.com/aretw0/fleetintake/pkg/runner"
)

// Engine is the high-level entry point for the library. It holds the brand
// vocabulary and the collaborators shared by every interview it runs.
type Engine struct {
	brands    []string
	threshold int
	store     ports.RecordStore
	hooks     interview.Hooks
	logger    *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithStore persists every completed record.
func WithStore(store ports.RecordStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithHooks registers observability hooks on every interview.
func WithHooks(hooks interview.Hooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMatchThreshold sets the minimum similarity score (0-100) for a brand
// to be recognized.
func WithMatchThreshold(threshold int) Option {
	return func(e *Engine) {
		e.threshold = threshold
	}
}

// New loads the vocabulary from source and returns a ready Engine.
func New(ctx context.Context, source ports.BrandSource, opts ...Option) (*Engine, error) {
	brands, err := source.LoadBrands(ctx)
	if err != nil {
		return nil, err
	}
	if len(brands) == 0 {
		return nil, fmt.Errorf("brand vocabulary is empty")
	}

	eng := &Engine{brands: brands, threshold: matcher.DefaultThreshold}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	return eng, nil
}

// Brands returns the vocabulary in tie-break order.
func (e *Engine) Brands() []string {
	return append([]string(nil), e.brands...)
}

// Machine creates a fresh interview over conv.
func (e *Engine) Machine(conv ports.Conversation) *interview.Machine {
	return interview.New(conv,
		matcher.New(e.brands, matcher.WithThreshold(e.threshold)),
		interview.WithLogger(e.logger),
		interview.WithHooks(e.hooks),
	)
}

// Interview runs one interview to completion and stores the record. When
// transcript is not nil every prompt, message and answer is logged to it.
// The transcript is left open; closing it is up to the caller.
func (e *Engine) Interview(ctx context.Context, conv ports.Conversation, transcript ports.Transcript) (*domain.FleetRecord, error) {
	if transcript != nil {
		conv = runner.Record(conv, transcript)
	}

	record, err := interview.Run(ctx, e.Machine(conv))
	if err != nil {
		return nil, err
	}

	if e.store != nil {
		if err := e.store.Append(ctx, record); err != nil {
			return record, fmt.Errorf("failed to save record: %w", err)
		}
		e.logger.Info("interview stored", "company", record.Company, "trucks", record.TotalTrucks)
	}
	return record, nil
}

// Graph returns the interview's state graph for visualization.
func (e *Engine) Graph() []interview.Edge {
	return interview.Edges()
}
