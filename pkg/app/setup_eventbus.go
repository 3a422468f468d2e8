// Package app wires the account service to its registry and event bus.
package app

import (
	"context"
	"log/slog"

	"github.com/amirasaad/banking/pkg/domain/events"
	"github.com/amirasaad/banking/pkg/eventbus"
)

// setupEventBus registers all event handlers with the event Bus.
func (a *App) setupEventBus() {
	bus := a.Deps.EventBus
	logger := a.Deps.Logger

	for _, t := range events.Types() {
		bus.Register(t.String(), HandleAudit(logger))
	}
}

// HandleAudit logs every account event at debug level.
func HandleAudit(logger *slog.Logger) eventbus.HandlerFunc {
	logger = logger.With("handler", "audit")
	return func(ctx context.Context, e events.Event) error {
		attrs := []any{"type", e.Type()}
		if fc, ok := e.(events.FlowCarrier); ok {
			fe := fc.Flow()
			attrs = append(attrs,
				"event_id", fe.ID,
				"correlation_id", fe.CorrelationID,
				"account", fe.AccountNumber,
			)
		}
		logger.DebugContext(ctx, "event", attrs...)
		return nil
	}
}
