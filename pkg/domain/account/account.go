package account

import (
	"github.com/shopspring/decimal"
)

// Account is a numbered, named store of balance whose withdraw and interest
// rules come from its Variant.
//
// Invariants:
//   - Number and holder never change after creation.
//   - The balance starts at zero and only moves through Deposit and Withdraw;
//     interest is credited through Deposit.
//   - A rejected operation leaves the balance untouched.
//
// Account is not safe for concurrent use; the registry serializes access.
type Account struct {
	number  string
	holder  string
	balance decimal.Decimal
	variant Variant
}

// New creates an account with a zero balance.
func New(number, holder string, v Variant) (*Account, error) {
	if v == nil {
		return nil, ErrNilVariant
	}
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &Account{
		number:  number,
		holder:  holder,
		balance: decimal.Zero,
		variant: v,
	}, nil
}

// NewSavings creates a savings account earning rate percent per accrual.
func NewSavings(number, holder string, rate decimal.Decimal) (*Account, error) {
	return New(number, holder, Savings{InterestRate: rate})
}

// NewChecking creates a checking account with the given overdraft limit.
func NewChecking(number, holder string, overdraftLimit decimal.Decimal) (*Account, error) {
	return New(number, holder, Checking{OverdraftLimit: overdraftLimit})
}

// NewFixedDeposit creates a fixed deposit account for termMonths at rate percent a year.
func NewFixedDeposit(number, holder string, termMonths int, rate decimal.Decimal) (*Account, error) {
	return New(number, holder, FixedDeposit{TermMonths: termMonths, InterestRate: rate})
}

func (a *Account) Number() string           { return a.number }
func (a *Account) Holder() string           { return a.holder }
func (a *Account) Balance() decimal.Decimal { return a.balance }
func (a *Account) Kind() Kind               { return a.variant.Kind() }
func (a *Account) Variant() Variant         { return a.variant }

// Deposit credits amount to the balance. The amount is not validated:
// zero and negative deposits are applied as given.
func (a *Account) Deposit(amount decimal.Decimal) Entry {
	before := a.balance
	a.balance = a.balance.Add(amount)
	return Entry{
		AccountNumber: a.number,
		Type:          EntryDeposit,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  a.balance,
	}
}

// Withdraw debits amount if the variant's policy allows it.
// Returns ErrInsufficientFunds or ErrOverdraftLimitExceeded otherwise.
func (a *Account) Withdraw(amount decimal.Decimal) (Entry, error) {
	if err := a.variant.checkWithdraw(a.balance, amount); err != nil {
		return Entry{}, err
	}
	before := a.balance
	a.balance = a.balance.Sub(amount)
	return Entry{
		AccountNumber: a.number,
		Type:          EntryWithdrawal,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  a.balance,
	}, nil
}

// CalculateInterest computes interest on the current balance and deposits it.
// Returns ErrInterestNotApplicable for variants that do not accrue interest.
func (a *Account) CalculateInterest() (Accrual, error) {
	accrual, err := a.variant.accrue(a.balance)
	if err != nil {
		return Accrual{}, err
	}
	accrual.AccountNumber = a.number
	accrual.Entry = a.Deposit(accrual.Interest)
	return accrual, nil
}

// Info returns the base snapshot extended with the variant's own fields.
func (a *Account) Info() Info {
	info := Info{
		Number:  a.number,
		Holder:  a.holder,
		Balance: a.balance,
		Kind:    a.variant.Kind(),
	}
	a.variant.describe(&info)
	return info
}
