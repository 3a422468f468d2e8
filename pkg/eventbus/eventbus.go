package eventbus

import (
	"context"

	"github.com/amirasaad/banking/pkg/domain/events"
)

// HandlerFunc handles one event. A returned error is reported back to the
// emitter but does not stop the remaining handlers.
type HandlerFunc func(ctx context.Context, e events.Event) error

// Bus routes events to the handlers registered for their type.
type Bus interface {
	Register(eventType string, handler HandlerFunc)
	Emit(ctx context.Context, event events.Event) error
}
