package account

import "errors"

var (
	// ErrInsufficientFunds is returned when a withdrawal exceeds the balance
	// of an account without an overdraft.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrOverdraftLimitExceeded is returned when a checking withdrawal exceeds
	// the balance plus the overdraft limit.
	ErrOverdraftLimitExceeded = errors.New("overdraft limit exceeded")

	// ErrInterestNotApplicable is returned when interest is requested on a
	// variant that does not accrue it.
	ErrInterestNotApplicable = errors.New("interest calculation not applicable")

	// ErrNegativeOverdraftLimit is returned when a checking account is
	// created with a negative overdraft limit.
	ErrNegativeOverdraftLimit = errors.New("overdraft limit must not be negative")

	// ErrNegativeTerm is returned when a fixed deposit is created with a negative term.
	ErrNegativeTerm = errors.New("term must not be negative")

	ErrNilVariant  = errors.New("nil account variant")
	ErrUnknownKind = errors.New("unknown account kind")
)

// IsRejected reports whether err is a soft outcome of an account operation:
// the operation was refused and no state changed.
func IsRejected(err error) bool {
	return errors.Is(err, ErrInsufficientFunds) ||
		errors.Is(err, ErrOverdraftLimitExceeded) ||
		errors.Is(err, ErrInterestNotApplicable)
}
