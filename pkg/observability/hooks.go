package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/fleetintake/pkg/domain"
	"github.com/aretw0/fleetintake/pkg/interview"
)

// Combine returns hooks that call each of hooks in order.
func Combine(hooks ...interview.Hooks) interview.Hooks {
	var out interview.Hooks
	for _, h := range hooks {
		out.OnStateEnter = chainState(out.OnStateEnter, h.OnStateEnter)
		out.OnReprompt = chainState(out.OnReprompt, h.OnReprompt)
		out.OnCorrection = chainCorrection(out.OnCorrection, h.OnCorrection)
		out.OnDone = chainDone(out.OnDone, h.OnDone)
	}
	return out
}

func chainState(a, b func(context.Context, *interview.StateEvent)) func(context.Context, *interview.StateEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *interview.StateEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}

func chainCorrection(a, b func(context.Context, *interview.CorrectionEvent)) func(context.Context, *interview.CorrectionEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *interview.CorrectionEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}

func chainDone(a, b func(context.Context, *domain.FleetRecord)) func(context.Context, *domain.FleetRecord) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, r *domain.FleetRecord) {
		a(ctx, r)
		b(ctx, r)
	}
}

// LogHooks logs every interview event at Debug, and the finished record at Info.
func LogHooks(logger *slog.Logger) interview.Hooks {
	return interview.Hooks{
		OnStateEnter: func(ctx context.Context, e *interview.StateEvent) {
			logger.DebugContext(ctx, "state entered", "state", e.State.String())
		},
		OnReprompt: func(ctx context.Context, e *interview.StateEvent) {
			logger.DebugContext(ctx, "asking again", "state", e.State.String(), "err", e.Err)
		},
		OnCorrection: func(ctx context.Context, e *interview.CorrectionEvent) {
			logger.InfoContext(ctx, "correction requested", "command", e.Command, "brand", e.Brand)
		},
		OnDone: func(ctx context.Context, r *domain.FleetRecord) {
			logger.InfoContext(ctx, "interview finished", "company", r.Company, "trucks", r.TotalTrucks, "groups", len(r.Groups))
		},
	}
}
