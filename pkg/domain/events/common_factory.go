package events

import (
	"time"

	"github.com/google/uuid"
)

type FlowEventOpt func(*FlowEvent)

// WithEventID overrides the generated event ID.
func WithEventID(id uuid.UUID) FlowEventOpt {
	return func(e *FlowEvent) { e.ID = id }
}

// WithTimestamp overrides the event timestamp.
func WithTimestamp(ts time.Time) FlowEventOpt {
	return func(e *FlowEvent) { e.Timestamp = ts }
}

// NewFlowEvent creates the shared part of an event for accountNumber.
// A nil correlationID starts a new correlation.
func NewFlowEvent(accountNumber string, correlationID uuid.UUID, opts ...FlowEventOpt) FlowEvent {
	if correlationID == uuid.Nil {
		correlationID = uuid.New()
	}
	e := FlowEvent{
		ID:            uuid.New(),
		CorrelationID: correlationID,
		AccountNumber: accountNumber,
		Timestamp:     time.Now(),
	}

	for _, opt := range opts {
		opt(&e)
	}

	return e
}
