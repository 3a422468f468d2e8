package registry

import (
	"errors"

	"github.com/amirasaad/banking/pkg/domain/account"
)

var (
	// ErrAccountNotFound is returned when no account has the requested number.
	ErrAccountNotFound = errors.New("account not found")
	// ErrCapacityReached is returned by Create once the registry is full.
	ErrCapacityReached = errors.New("maximum account limit reached")
)

// IsSoft reports whether err is an expected outcome the caller should
// report and continue from, as opposed to a programming or setup error.
func IsSoft(err error) bool {
	return account.IsRejected(err) ||
		errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrCapacityReached)
}
