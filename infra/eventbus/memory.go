package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/amirasaad/banking/pkg/domain/events"
	"github.com/amirasaad/banking/pkg/eventbus"
)

type depthKey struct{}

// MaxEventDepth bounds how deep handlers may emit events from inside other handlers.
const MaxEventDepth = 10

// ErrMaxEventDepth is returned when a handler chain re-emits past MaxEventDepth.
var ErrMaxEventDepth = errors.New("max event depth exceeded")

// MemoryEventBus dispatches events synchronously to handlers in
// registration order and keeps every emitted event.
type MemoryEventBus struct {
	handlers  map[string][]eventbus.HandlerFunc
	mu        sync.RWMutex
	logger    *slog.Logger
	published []events.Event
}

// NewWithMemory creates a new in-memory event bus.
func NewWithMemory(logger *slog.Logger) *MemoryEventBus {
	if logger == nil {
		logger = slog.Default()
	}
	return &MemoryEventBus{
		handlers:  make(map[string][]eventbus.HandlerFunc),
		logger:    logger.With("bus", "memory"),
		published: make([]events.Event, 0),
	}
}

// Register registers a handler for a specific event type.
func (b *MemoryEventBus) Register(eventType string, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Emit records the event and runs every handler registered for its type.
// All handlers run; their errors are joined into the returned error.
func (b *MemoryEventBus) Emit(ctx context.Context, event events.Event) error {
	depth, _ := ctx.Value(depthKey{}).(int)
	if depth >= MaxEventDepth {
		b.logger.Error("event depth exceeded", "type", event.Type(), "depth", depth)
		return fmt.Errorf("%s: %w", event.Type(), ErrMaxEventDepth)
	}
	ctx = context.WithValue(ctx, depthKey{}, depth+1)

	eventType := event.Type()
	b.mu.Lock()
	b.published = append(b.published, event)
	handlers := append([]eventbus.HandlerFunc(nil), b.handlers[eventType]...)
	b.mu.Unlock()

	var errs []error
	for _, handler := range handlers {
		if err := b.dispatch(ctx, handler, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (b *MemoryEventBus) dispatch(
	ctx context.Context,
	handler eventbus.HandlerFunc,
	event events.Event,
) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("panic recovered in event handler", "type", event.Type(), "panic", r)
			err = fmt.Errorf("handler panic on %s: %v", event.Type(), r)
		}
	}()
	if err = handler(ctx, event); err != nil {
		b.logger.Error("failed to process event", "type", event.Type(), "error", err)
	}
	return err
}

// ClearPublished clears the list of published events.
func (b *MemoryEventBus) ClearPublished() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = make([]events.Event, 0)
}

// Published returns a copy of the events emitted so far, oldest first.
func (b *MemoryEventBus) Published() []events.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]events.Event(nil), b.published...)
}

// Ensure MemoryEventBus implements the Bus interface.
var _ eventbus.Bus = (*MemoryEventBus)(nil)
