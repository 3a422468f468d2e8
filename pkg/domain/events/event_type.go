package events

// EventType represents the type of an event in the system.
type EventType string

// Event type constants
const (
	EventTypeAccountCreated EventType = "Account.Created"

	// Balance movements
	EventTypeDeposited        EventType = "Account.Deposited"
	EventTypeWithdrawn        EventType = "Account.Withdrawn"
	EventTypeWithdrawRejected EventType = "Account.WithdrawRejected"

	// Interest events
	EventTypeInterestAccrued       EventType = "Account.InterestAccrued"
	EventTypeInterestNotApplicable EventType = "Account.InterestNotApplicable"
)

// String returns the string representation of the event type.
func (et EventType) String() string {
	return string(et)
}

// Types lists every event type the account flows emit.
func Types() []EventType {
	return []EventType{
		EventTypeAccountCreated,
		EventTypeDeposited,
		EventTypeWithdrawn,
		EventTypeWithdrawRejected,
		EventTypeInterestAccrued,
		EventTypeInterestNotApplicable,
	}
}
