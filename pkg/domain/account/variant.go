package account

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Kind identifies one of the mutually exclusive account variants.
type Kind int

const (
	// KindSavings is an interest-bearing account with the base withdraw policy.
	KindSavings Kind = iota + 1
	// KindChecking allows overdrafts and does not accrue interest.
	KindChecking
	// KindFixedDeposit accrues interest scaled by its term.
	KindFixedDeposit
)

var kindNames = map[Kind]string{
	KindSavings:      "savings",
	KindChecking:     "checking",
	KindFixedDeposit: "fixed_deposit",
}

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind converts a kind name back to a Kind.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, ErrUnknownKind
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, ErrUnknownKind
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Variant carries the kind-specific parameters of an account and the
// behavior that differs per kind. The interface is sealed: only Savings,
// Checking and FixedDeposit implement it, and every per-kind rule is a
// method here, so a new variant cannot compile without all of them.
type Variant interface {
	Kind() Kind

	// checkWithdraw reports whether amount may leave an account holding balance.
	checkWithdraw(balance, amount decimal.Decimal) error
	// accrue computes the interest earned on balance.
	accrue(balance decimal.Decimal) (Accrual, error)
	// describe appends the variant fields to a base snapshot.
	describe(info *Info)
	validate() error
}

var (
	hundred       = decimal.NewFromInt(100)
	monthsPerYear = decimal.NewFromInt(12)
)

// basePolicy is the withdraw rule shared by every account without an overdraft.
func basePolicy(balance, amount decimal.Decimal) error {
	if amount.GreaterThan(balance) {
		return ErrInsufficientFunds
	}
	return nil
}

// Savings accrues interest at InterestRate percent per calculation.
type Savings struct {
	InterestRate decimal.Decimal
}

func (Savings) Kind() Kind { return KindSavings }

func (Savings) checkWithdraw(balance, amount decimal.Decimal) error {
	return basePolicy(balance, amount)
}

func (s Savings) accrue(balance decimal.Decimal) (Accrual, error) {
	return Accrual{
		Kind:         KindSavings,
		InterestRate: s.InterestRate,
		Interest:     balance.Mul(s.InterestRate).Div(hundred),
	}, nil
}

func (s Savings) describe(info *Info) {
	rate := s.InterestRate
	info.InterestRate = &rate
}

func (Savings) validate() error { return nil }

// Checking lets the balance go negative down to OverdraftLimit below the
// current balance on each withdrawal.
type Checking struct {
	OverdraftLimit decimal.Decimal
}

func (Checking) Kind() Kind { return KindChecking }

func (c Checking) checkWithdraw(balance, amount decimal.Decimal) error {
	if amount.GreaterThan(balance.Add(c.OverdraftLimit)) {
		return ErrOverdraftLimitExceeded
	}
	return nil
}

func (Checking) accrue(decimal.Decimal) (Accrual, error) {
	return Accrual{}, ErrInterestNotApplicable
}

func (c Checking) describe(info *Info) {
	limit := c.OverdraftLimit
	info.OverdraftLimit = &limit
}

func (c Checking) validate() error {
	if c.OverdraftLimit.IsNegative() {
		return ErrNegativeOverdraftLimit
	}
	return nil
}

// FixedDeposit accrues InterestRate percent per year, prorated over TermMonths.
type FixedDeposit struct {
	TermMonths   int
	InterestRate decimal.Decimal
}

func (FixedDeposit) Kind() Kind { return KindFixedDeposit }

func (FixedDeposit) checkWithdraw(balance, amount decimal.Decimal) error {
	return basePolicy(balance, amount)
}

// accrue computes balance * rate/100 * term/12 with a single division.
func (f FixedDeposit) accrue(balance decimal.Decimal) (Accrual, error) {
	term := decimal.NewFromInt(int64(f.TermMonths))
	return Accrual{
		Kind:         KindFixedDeposit,
		InterestRate: f.InterestRate,
		TermMonths:   f.TermMonths,
		Interest:     balance.Mul(f.InterestRate).Mul(term).Div(hundred.Mul(monthsPerYear)),
	}, nil
}

func (f FixedDeposit) describe(info *Info) {
	rate, term := f.InterestRate, f.TermMonths
	info.InterestRate = &rate
	info.TermMonths = &term
}

func (f FixedDeposit) validate() error {
	if f.TermMonths < 0 {
		return ErrNegativeTerm
	}
	return nil
}

var (
	_ Variant = Savings{}
	_ Variant = Checking{}
	_ Variant = FixedDeposit{}
)
