package account

import (
	"context"
	"errors"

	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/domain/events"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Deposit credits amount to the account. The amount is applied as given.
func (s *Service) Deposit(
	ctx context.Context,
	number string,
	amount decimal.Decimal,
) (entry account.Entry, err error) {
	logger := s.logger.With("account", number, "amount", amount)
	defer func() { s.logOutcome(logger, "Deposit", err) }()

	if err = ctx.Err(); err != nil {
		return account.Entry{}, err
	}
	err = s.registry.Update(number, func(acc *account.Account) error {
		entry = acc.Deposit(amount)
		return nil
	})
	if err != nil {
		return account.Entry{}, err
	}
	logger = logger.With("balance", entry.BalanceAfter)
	s.emit(ctx, logger, events.NewDeposited(entry, uuid.New()))
	return entry, nil
}

// Withdraw debits amount if the account's withdraw policy allows it.
// A refusal publishes WithdrawRejected and returns the domain error.
func (s *Service) Withdraw(
	ctx context.Context,
	number string,
	amount decimal.Decimal,
) (entry account.Entry, err error) {
	logger := s.logger.With("account", number, "amount", amount)
	defer func() { s.logOutcome(logger, "Withdraw", err) }()

	if err = ctx.Err(); err != nil {
		return account.Entry{}, err
	}
	var snapshot account.Info
	err = s.registry.Update(number, func(acc *account.Account) error {
		var werr error
		entry, werr = acc.Withdraw(amount)
		snapshot = acc.Info()
		return werr
	})

	switch {
	case err == nil:
		logger = logger.With("balance", entry.BalanceAfter)
		s.emit(ctx, logger, events.NewWithdrawn(entry, uuid.New()))
		return entry, nil
	case account.IsRejected(err):
		s.emit(ctx, logger, events.NewWithdrawRejected(snapshot, amount, err, uuid.New()))
		return account.Entry{}, err
	default:
		return account.Entry{}, err
	}
}

// CalculateInterest computes interest on the current balance and deposits
// it. The deposit and the accrual events share one correlation ID.
func (s *Service) CalculateInterest(
	ctx context.Context,
	number string,
) (accrual account.Accrual, err error) {
	logger := s.logger.With("account", number)
	defer func() { s.logOutcome(logger, "CalculateInterest", err) }()

	if err = ctx.Err(); err != nil {
		return account.Accrual{}, err
	}
	var snapshot account.Info
	err = s.registry.Update(number, func(acc *account.Account) error {
		var aerr error
		accrual, aerr = acc.CalculateInterest()
		snapshot = acc.Info()
		return aerr
	})

	correlationID := uuid.New()
	switch {
	case err == nil:
		logger = logger.With("interest", accrual.Interest, "balance", accrual.Entry.BalanceAfter)
		s.emit(ctx, logger, events.NewDeposited(accrual.Entry, correlationID))
		s.emit(ctx, logger, events.NewInterestAccrued(accrual, correlationID))
		return accrual, nil
	case errors.Is(err, account.ErrInterestNotApplicable):
		s.emit(ctx, logger, events.NewInterestNotApplicable(snapshot, correlationID))
		return account.Accrual{}, err
	default:
		return account.Accrual{}, err
	}
}
