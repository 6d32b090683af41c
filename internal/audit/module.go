// Package audit subscribes to phone domain events and records them in the
// structured log. It is not HTTP-facing; it exists so pipeline outcomes are
// observable without coupling the preview service to logging concerns.
package audit

import (
	"context"

	"phonefield_backend/internal/events"
	"phonefield_backend/platform/logger"
)

// Module is the audit module. It only consumes events.
type Module struct {
	log *logger.Logger
}

// New creates the audit module.
func New(log *logger.Logger) *Module {
	return &Module{log: log}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "audit"
}

// RegisterHandlers subscribes to the phone domain events.
func (m *Module) RegisterHandlers(bus *events.InMemoryBus) {
	bus.Subscribe(events.NumberResolved{}.EventName(), m)
	bus.Subscribe(events.PipelineFailed{}.EventName(), m)
}

// Handle routes events to the appropriate log record.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	log := m.log.WithContext(ctx)

	switch e := event.(type) {
	case events.NumberResolved:
		log.Info("number_resolved",
			"cycle_id", e.CycleID.String(),
			"region", e.Region,
			"valid", e.Valid,
		)
	case events.PipelineFailed:
		log.Warn("pipeline_failed",
			"cycle_id", e.CycleID.String(),
			"error", e.Message,
		)
	}
	return nil
}

// Compile-time check that Module implements events.Handler
var _ events.Handler = (*Module)(nil)
