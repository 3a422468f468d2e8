package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is implemented by everything published on the event bus.
type Event interface {
	Type() string
}

// FlowEvent carries the fields shared by every account event. Events raised
// by the same operation share a CorrelationID.
type FlowEvent struct {
	ID            uuid.UUID
	CorrelationID uuid.UUID
	AccountNumber string
	Timestamp     time.Time
}

// Flow returns the shared event fields.
func (e FlowEvent) Flow() FlowEvent { return e }

// FlowCarrier is an event that exposes its FlowEvent.
type FlowCarrier interface {
	Event
	Flow() FlowEvent
}
