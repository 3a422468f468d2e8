package eventbus_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/amirasaad/banking/infra/eventbus"
	"github.com/amirasaad/banking/pkg/domain/events"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBus() *eventbus.MemoryEventBus {
	return eventbus.NewWithMemory(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func created(number string) *events.AccountCreated {
	return &events.AccountCreated{FlowEvent: events.NewFlowEvent(number, uuid.Nil)}
}

func TestMemoryEventBus_DispatchOrder(t *testing.T) {
	t.Parallel()
	bus := newBus()
	var calls []string

	bus.Register(events.EventTypeAccountCreated.String(), func(_ context.Context, _ events.Event) error {
		calls = append(calls, "first")
		return nil
	})
	bus.Register(events.EventTypeAccountCreated.String(), func(_ context.Context, _ events.Event) error {
		calls = append(calls, "second")
		return nil
	})
	bus.Register(events.EventTypeDeposited.String(), func(_ context.Context, _ events.Event) error {
		calls = append(calls, "deposited")
		return nil
	})

	require.NoError(t, bus.Emit(context.Background(), created("S1")))
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestMemoryEventBus_Published(t *testing.T) {
	t.Parallel()
	bus := newBus()
	ctx := context.Background()

	require.NoError(t, bus.Emit(ctx, created("S1")), "no handlers is not an error")
	require.NoError(t, bus.Emit(ctx, &events.Deposited{FlowEvent: events.NewFlowEvent("S1", uuid.Nil)}))

	published := bus.Published()
	require.Len(t, published, 2)
	assert.Equal(t, events.EventTypeAccountCreated.String(), published[0].Type())
	assert.Equal(t, events.EventTypeDeposited.String(), published[1].Type())

	bus.ClearPublished()
	assert.Empty(t, bus.Published())
	assert.Len(t, published, 2, "returned slice is a snapshot")
}

func TestMemoryEventBus_HandlerErrors(t *testing.T) {
	t.Parallel()
	bus := newBus()
	errA, errB := errors.New("a failed"), errors.New("b failed")
	ran := 0

	bus.Register(events.EventTypeAccountCreated.String(), func(context.Context, events.Event) error {
		ran++
		return errA
	})
	bus.Register(events.EventTypeAccountCreated.String(), func(context.Context, events.Event) error {
		ran++
		panic("boom")
	})
	bus.Register(events.EventTypeAccountCreated.String(), func(context.Context, events.Event) error {
		ran++
		return errB
	})

	err := bus.Emit(context.Background(), created("S1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, 3, ran, "every handler runs")
	assert.Len(t, bus.Published(), 1)
}

func TestMemoryEventBus_MaxDepth(t *testing.T) {
	t.Parallel()
	bus := newBus()

	bus.Register(events.EventTypeAccountCreated.String(), func(ctx context.Context, e events.Event) error {
		return bus.Emit(ctx, e)
	})

	err := bus.Emit(context.Background(), created("S1"))
	assert.ErrorIs(t, err, eventbus.ErrMaxEventDepth)
	assert.Len(t, bus.Published(), eventbus.MaxEventDepth)
}
