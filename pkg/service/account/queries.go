package account

import (
	"context"

	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/shopspring/decimal"
)

// DisplayAccountInfo returns a snapshot of the account's fields.
func (s *Service) DisplayAccountInfo(
	ctx context.Context,
	number string,
) (info account.Info, err error) {
	if err = ctx.Err(); err != nil {
		return account.Info{}, err
	}
	err = s.registry.View(number, func(acc *account.Account) error {
		info = acc.Info()
		return nil
	})
	if err != nil {
		s.logger.Warn("DisplayAccountInfo failed", "account", number, "error", err)
		return account.Info{}, err
	}
	return info, nil
}

// GetBalance returns the current balance of the account.
func (s *Service) GetBalance(
	ctx context.Context,
	number string,
) (balance decimal.Decimal, err error) {
	info, err := s.DisplayAccountInfo(ctx, number)
	if err != nil {
		return decimal.Zero, err
	}
	return info.Balance, nil
}

// Accounts lists every account in creation order.
func (s *Service) Accounts(ctx context.Context) []account.Info {
	if ctx.Err() != nil {
		return nil
	}
	return s.registry.Snapshots()
}

// AtCapacity reports whether no further account can be created.
func (s *Service) AtCapacity(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	return s.registry.Full()
}

// Close releases every account held by the registry.
func (s *Service) Close() {
	s.logger.Info("releasing accounts", "count", s.registry.Len())
	s.registry.Reset()
}
