package events

import (
	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/shopspring/decimal"
)

// AccountCreated is emitted when an account joins the registry.
type AccountCreated struct {
	FlowEvent
	Holder string
	Kind   account.Kind
}

func (e AccountCreated) Type() string { return EventTypeAccountCreated.String() }

// Deposited is emitted for every credit, including interest.
type Deposited struct {
	FlowEvent
	Amount  decimal.Decimal
	Balance decimal.Decimal // balance after the deposit
}

func (e Deposited) Type() string { return EventTypeDeposited.String() }

// Withdrawn is emitted when a withdrawal is applied.
type Withdrawn struct {
	FlowEvent
	Amount  decimal.Decimal
	Balance decimal.Decimal // balance after the withdrawal
}

func (e Withdrawn) Type() string { return EventTypeWithdrawn.String() }

// WithdrawRejected is emitted when the withdraw policy refuses an amount.
// The balance is unchanged.
type WithdrawRejected struct {
	FlowEvent
	Amount  decimal.Decimal
	Balance decimal.Decimal
	Reason  string
}

func (e WithdrawRejected) Type() string { return EventTypeWithdrawRejected.String() }

// InterestAccrued is emitted after interest was deposited.
type InterestAccrued struct {
	FlowEvent
	Kind       account.Kind
	Interest   decimal.Decimal
	Rate       decimal.Decimal
	TermMonths int
	Balance    decimal.Decimal
}

func (e InterestAccrued) Type() string { return EventTypeInterestAccrued.String() }

// InterestNotApplicable is emitted when interest is requested for a kind
// that has none.
type InterestNotApplicable struct {
	FlowEvent
	Kind account.Kind
}

func (e InterestNotApplicable) Type() string { return EventTypeInterestNotApplicable.String() }
