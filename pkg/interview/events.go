package interview

import (
	"context"
	"time"

	"github.com/aretw0/fleetintake/pkg/domain"
)

// EventType defines the category of the event.
type EventType string

const (
	EventStateEnter EventType = "state_enter"
	EventReprompt   EventType = "reprompt"
	EventCorrection EventType = "correction"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// StateEvent reports entering a state, or staying in it after a rejected answer.
type StateEvent struct {
	EventBase
	State State `json:"state"`
	// Err is the rejection reason for EventReprompt.
	Err error `json:"-"`
}

// CorrectionEvent reports a "start over" or "correct <brand>" command.
type CorrectionEvent struct {
	EventBase
	Command string `json:"command"`
	// Brand is the corrected brand, or empty for "start over".
	Brand string `json:"brand,omitempty"`
}

// Hooks defines callbacks for interview observability. Nil fields are skipped.
type Hooks struct {
	OnStateEnter func(context.Context, *StateEvent)
	OnReprompt   func(context.Context, *StateEvent)
	OnCorrection func(context.Context, *CorrectionEvent)
	OnDone       func(context.Context, *domain.FleetRecord)
}

func newBase(t EventType) EventBase {
	return EventBase{Timestamp: time.Now(), Type: t}
}
