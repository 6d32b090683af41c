// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"phonefield_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Phone Domain Events
// =============================================================================

// NumberResolved is published after a pipeline cycle completed without an
// engine failure. Valid is false for partial numbers.
type NumberResolved struct {
	BaseEvent
	CycleID uuid.UUID `json:"cycleId"`
	Region  string    `json:"region,omitempty"`
	Valid   bool      `json:"valid"`
}

func (e NumberResolved) EventName() string { return "phone.number.resolved" }

// PipelineFailed is published when a pipeline stage surfaced an engine
// failure for a cycle.
type PipelineFailed struct {
	BaseEvent
	CycleID uuid.UUID `json:"cycleId"`
	Message string    `json:"message"`
}

func (e PipelineFailed) EventName() string { return "phone.pipeline.failed" }
