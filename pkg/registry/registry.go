package registry

import (
	"fmt"
	"sync"

	"github.com/amirasaad/banking/pkg/domain/account"
)

// Option configures a Registry.
type Option func(*Registry)

// WithCapacity limits the registry to n accounts. Zero means unbounded.
func WithCapacity(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.capacity = n
		}
	}
}

// Registry holds accounts in insertion order. It is safe for concurrent use.
type Registry struct {
	accounts []*account.Account
	capacity int
	mu       sync.RWMutex
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	r.accounts = make([]*account.Account, 0, r.capacity)
	return r
}

// Create builds an account and appends it. The registry is unchanged when
// it is full or the account parameters are invalid.
// Numbers are not required to be unique; Find returns the first match.
func (r *Registry) Create(number, holder string, v account.Variant) (*account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.capacity > 0 && len(r.accounts) >= r.capacity {
		return nil, ErrCapacityReached
	}
	acc, err := account.New(number, holder, v)
	if err != nil {
		return nil, fmt.Errorf("create account %q: %w", number, err)
	}
	r.accounts = append(r.accounts, acc)
	return acc, nil
}

// Find returns the first account with the given number.
func (r *Registry) Find(number string) (*account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.find(number)
}

func (r *Registry) find(number string) (*account.Account, error) {
	for _, acc := range r.accounts {
		if acc.Number() == number {
			return acc, nil
		}
	}
	return nil, ErrAccountNotFound
}

// Update runs fn against the first account with the given number while
// holding the write lock. fn's error is returned unchanged.
func (r *Registry) Update(number string, fn func(acc *account.Account) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	acc, err := r.find(number)
	if err != nil {
		return err
	}
	return fn(acc)
}

// View runs fn against the first account with the given number under the read lock.
func (r *Registry) View(number string, fn func(acc *account.Account) error) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acc, err := r.find(number)
	if err != nil {
		return err
	}
	return fn(acc)
}

// Len returns the number of accounts held.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts)
}

// Full reports whether Create would fail with ErrCapacityReached.
func (r *Registry) Full() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.capacity > 0 && len(r.accounts) >= r.capacity
}

// Capacity returns the configured limit, or 0 when unbounded.
func (r *Registry) Capacity() int {
	return r.capacity
}

// Accounts returns the accounts in insertion order.
func (r *Registry) Accounts() []*account.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*account.Account(nil), r.accounts...)
}

// Snapshots returns the Info of every account in insertion order.
func (r *Registry) Snapshots() []account.Info {
	r.mu.RLock()
	defer r.mu.RUnlock()
	infos := make([]account.Info, 0, len(r.accounts))
	for _, acc := range r.accounts {
		infos = append(infos, acc.Info())
	}
	return infos
}

// Reset releases every account.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts = make([]*account.Account, 0, r.capacity)
}
