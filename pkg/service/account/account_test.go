package account_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/amirasaad/banking/infra/eventbus"
	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/domain/events"
	buspkg "github.com/amirasaad/banking/pkg/eventbus"
	"github.com/amirasaad/banking/pkg/registry"
	accountsvc "github.com/amirasaad/banking/pkg/service/account"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

type mockBus struct {
	mock.Mock
}

var _ buspkg.Bus = (*mockBus)(nil)

func (m *mockBus) Register(eventType string, handler buspkg.HandlerFunc) {
	m.Called(eventType, handler)
}

func (m *mockBus) Emit(ctx context.Context, e events.Event) error {
	return m.Called(ctx, e).Error(0)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newService(t *testing.T, capacity int) (*accountsvc.Service, *eventbus.MemoryEventBus) {
	t.Helper()
	bus := eventbus.NewWithMemory(slog.Default())
	reg := registry.New(registry.WithCapacity(capacity))
	return accountsvc.NewService(bus, reg, slog.Default()), bus
}

func eventTypes(published []events.Event) []string {
	types := make([]string, 0, len(published))
	for _, e := range published {
		types = append(types, e.Type())
	}
	return types
}

func TestService_SavingsScenario(t *testing.T) {
	t.Parallel()
	svc, bus := newService(t, 10)
	ctx := context.Background()

	info, err := svc.CreateAccount(ctx, "S1", "Alice", account.Savings{InterestRate: dec("5")})
	require.NoError(t, err)
	assert.Equal(t, account.KindSavings, info.Kind)
	assert.True(t, info.Balance.IsZero())

	_, err = svc.Deposit(ctx, "S1", dec("1000"))
	require.NoError(t, err)

	accrual, err := svc.CalculateInterest(ctx, "S1")
	require.NoError(t, err)
	assert.True(t, accrual.Interest.Equal(dec("50")))

	balance, err := svc.GetBalance(ctx, "S1")
	require.NoError(t, err)
	assert.True(t, balance.Equal(dec("1050")), "got %s", balance)

	published := bus.Published()
	assert.Equal(t, []string{
		events.EventTypeAccountCreated.String(),
		events.EventTypeDeposited.String(),
		events.EventTypeDeposited.String(),
		events.EventTypeInterestAccrued.String(),
	}, eventTypes(published))

	interestDeposit := published[2].(*events.Deposited)
	accrued := published[3].(*events.InterestAccrued)
	assert.Equal(t, interestDeposit.CorrelationID, accrued.CorrelationID)
	assert.NotEqual(t, published[1].(*events.Deposited).CorrelationID, accrued.CorrelationID)
	assert.True(t, accrued.Balance.Equal(dec("1050")))
}

func TestService_CheckingScenario(t *testing.T) {
	t.Parallel()
	svc, bus := newService(t, 10)
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, "C1", "Bob", account.Checking{OverdraftLimit: dec("200")})
	require.NoError(t, err)

	entry, err := svc.Withdraw(ctx, "C1", dec("150"))
	require.NoError(t, err)
	assert.True(t, entry.BalanceAfter.Equal(dec("-150")))

	_, err = svc.Withdraw(ctx, "C1", dec("100"))
	assert.ErrorIs(t, err, account.ErrOverdraftLimitExceeded)

	_, err = svc.CalculateInterest(ctx, "C1")
	assert.ErrorIs(t, err, account.ErrInterestNotApplicable)

	balance, err := svc.GetBalance(ctx, "C1")
	require.NoError(t, err)
	assert.True(t, balance.Equal(dec("-150")), "got %s", balance)

	published := bus.Published()
	assert.Equal(t, []string{
		events.EventTypeAccountCreated.String(),
		events.EventTypeWithdrawn.String(),
		events.EventTypeWithdrawRejected.String(),
		events.EventTypeInterestNotApplicable.String(),
	}, eventTypes(published))

	rejected := published[2].(*events.WithdrawRejected)
	assert.Equal(t, account.ErrOverdraftLimitExceeded.Error(), rejected.Reason)
	assert.True(t, rejected.Amount.Equal(dec("100")))
	assert.True(t, rejected.Balance.Equal(dec("-150")))
}

func TestService_FixedDepositScenario(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t, 10)
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, "F1", "Carol", account.FixedDeposit{TermMonths: 12, InterestRate: dec("6")})
	require.NoError(t, err)
	_, err = svc.Deposit(ctx, "F1", dec("1000"))
	require.NoError(t, err)

	_, err = svc.Withdraw(ctx, "F1", dec("1500"))
	assert.ErrorIs(t, err, account.ErrInsufficientFunds)

	_, err = svc.CalculateInterest(ctx, "F1")
	require.NoError(t, err)

	info, err := svc.DisplayAccountInfo(ctx, "F1")
	require.NoError(t, err)
	assert.True(t, info.Balance.Equal(dec("1060")))
	require.NotNil(t, info.TermMonths)
	assert.Equal(t, 12, *info.TermMonths)
}

func TestService_CapacityScenario(t *testing.T) {
	t.Parallel()
	svc, bus := newService(t, 10)
	ctx := context.Background()

	for _, n := range []string{"A1", "A2", "A3", "A4", "A5", "A6", "A7", "A8", "A9", "A10"} {
		_, err := svc.CreateAccount(ctx, n, "Holder", account.Savings{InterestRate: dec("1")})
		require.NoError(t, err)
	}
	bus.ClearPublished()
	assert.True(t, svc.AtCapacity(ctx))

	_, err := svc.CreateAccount(ctx, "A11", "Late", account.Savings{InterestRate: dec("1")})
	assert.ErrorIs(t, err, registry.ErrCapacityReached)
	assert.Len(t, svc.Accounts(ctx), 10)
	assert.Empty(t, bus.Published(), "refused creation publishes nothing")

	_, err = svc.DisplayAccountInfo(ctx, "A11")
	assert.ErrorIs(t, err, registry.ErrAccountNotFound)
}

func TestService_UnknownAccount(t *testing.T) {
	t.Parallel()
	svc, bus := newService(t, 0)
	ctx := context.Background()

	_, err := svc.Deposit(ctx, "X", dec("1"))
	assert.ErrorIs(t, err, registry.ErrAccountNotFound)
	_, err = svc.Withdraw(ctx, "X", dec("1"))
	assert.ErrorIs(t, err, registry.ErrAccountNotFound)
	_, err = svc.CalculateInterest(ctx, "X")
	assert.ErrorIs(t, err, registry.ErrAccountNotFound)
	_, err = svc.GetBalance(ctx, "X")
	assert.ErrorIs(t, err, registry.ErrAccountNotFound)
	assert.Empty(t, bus.Published())
}

func TestService_InvalidParams(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t, 0)
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, "N1", "Nobody", nil)
	assert.ErrorIs(t, err, account.ErrNilVariant)

	_, err = svc.CreateAccount(ctx, "F1", "Carol", account.FixedDeposit{TermMonths: -1, InterestRate: dec("6")})
	assert.ErrorIs(t, err, account.ErrNegativeTerm)
	assert.Empty(t, svc.Accounts(ctx))
}

func TestService_CancelledContext(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t, 0)
	_, err := svc.CreateAccount(context.Background(), "S1", "Alice", account.Savings{InterestRate: dec("5")})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = svc.Deposit(ctx, "S1", dec("10"))
	assert.ErrorIs(t, err, context.Canceled)
	balance, err := svc.GetBalance(context.Background(), "S1")
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
}

func TestService_BusFailureKeepsState(t *testing.T) {
	t.Parallel()
	mb := &mockBus{}
	mb.On("Emit", mock.Anything, mock.AnythingOfType("*events.AccountCreated")).Return(nil).Once()
	mb.On("Emit", mock.Anything, mock.AnythingOfType("*events.Deposited")).Return(errors.New("bus down")).Once()

	svc := accountsvc.NewService(mb, registry.New(), slog.Default())
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, "S1", "Alice", account.Savings{InterestRate: dec("5")})
	require.NoError(t, err)
	_, err = svc.Deposit(ctx, "S1", dec("25"))
	require.NoError(t, err, "bus errors are not returned")

	balance, err := svc.GetBalance(ctx, "S1")
	require.NoError(t, err)
	assert.True(t, balance.Equal(dec("25")))
	mb.AssertExpectations(t)
}

func TestService_Close(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t, 0)
	ctx := context.Background()
	_, err := svc.CreateAccount(ctx, "S1", "Alice", account.Savings{InterestRate: dec("5")})
	require.NoError(t, err)

	svc.Close()
	assert.Empty(t, svc.Accounts(ctx))
}
