package events

import (
	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewAccountCreated builds the creation event from an account snapshot.
func NewAccountCreated(info account.Info, correlationID uuid.UUID) *AccountCreated {
	return &AccountCreated{
		FlowEvent: NewFlowEvent(info.Number, correlationID),
		Holder:    info.Holder,
		Kind:      info.Kind,
	}
}

// NewDeposited builds a deposit event from the applied entry.
func NewDeposited(entry account.Entry, correlationID uuid.UUID) *Deposited {
	return &Deposited{
		FlowEvent: NewFlowEvent(entry.AccountNumber, correlationID),
		Amount:    entry.Amount,
		Balance:   entry.BalanceAfter,
	}
}

// NewWithdrawn builds a withdrawal event from the applied entry.
func NewWithdrawn(entry account.Entry, correlationID uuid.UUID) *Withdrawn {
	return &Withdrawn{
		FlowEvent: NewFlowEvent(entry.AccountNumber, correlationID),
		Amount:    entry.Amount,
		Balance:   entry.BalanceAfter,
	}
}

// WithdrawRejectedOpt is a function that configures a WithdrawRejected
type WithdrawRejectedOpt func(*WithdrawRejected)

// WithRejectionReason sets the rejection reason
func WithRejectionReason(reason string) WithdrawRejectedOpt {
	return func(e *WithdrawRejected) { e.Reason = reason }
}

// NewWithdrawRejected builds the event for a refused withdrawal. The reason
// defaults to the text of cause.
func NewWithdrawRejected(
	acc account.Info,
	amount decimal.Decimal,
	cause error,
	correlationID uuid.UUID,
	opts ...WithdrawRejectedOpt,
) *WithdrawRejected {
	e := &WithdrawRejected{
		FlowEvent: NewFlowEvent(acc.Number, correlationID),
		Amount:    amount,
		Balance:   acc.Balance,
	}
	if cause != nil {
		e.Reason = cause.Error()
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewInterestAccrued builds the event for a completed accrual.
func NewInterestAccrued(accrual account.Accrual, correlationID uuid.UUID) *InterestAccrued {
	return &InterestAccrued{
		FlowEvent:  NewFlowEvent(accrual.AccountNumber, correlationID),
		Kind:       accrual.Kind,
		Interest:   accrual.Interest,
		Rate:       accrual.InterestRate,
		TermMonths: accrual.TermMonths,
		Balance:    accrual.Entry.BalanceAfter,
	}
}

// NewInterestNotApplicable builds the event for an account without interest.
func NewInterestNotApplicable(acc account.Info, correlationID uuid.UUID) *InterestNotApplicable {
	return &InterestNotApplicable{
		FlowEvent: NewFlowEvent(acc.Number, correlationID),
		Kind:      acc.Kind,
	}
}
