package account

import "github.com/shopspring/decimal"

// EntryType tells a credit from a debit.
type EntryType string

const (
	EntryDeposit    EntryType = "deposit"
	EntryWithdrawal EntryType = "withdrawal"
)

// Entry describes one balance movement applied to an account.
type Entry struct {
	AccountNumber string
	Type          EntryType
	Amount        decimal.Decimal
	BalanceBefore decimal.Decimal
	BalanceAfter  decimal.Decimal
}

// Accrual is the result of an interest calculation. Entry is the deposit
// that credited the interest.
type Accrual struct {
	AccountNumber string
	Kind          Kind
	InterestRate  decimal.Decimal
	TermMonths    int // zero for savings
	Interest      decimal.Decimal
	Entry         Entry
}

// Info is the displayable snapshot of an account. The variant fields are
// set only for the kinds that carry them.
type Info struct {
	Number         string           `json:"account_number"`
	Holder         string           `json:"account_holder"`
	Balance        decimal.Decimal  `json:"balance"`
	Kind           Kind             `json:"kind"`
	InterestRate   *decimal.Decimal `json:"interest_rate,omitempty"`
	OverdraftLimit *decimal.Decimal `json:"overdraft_limit,omitempty"`
	TermMonths     *int             `json:"term_months,omitempty"`
}
