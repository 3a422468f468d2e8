package app_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	infra_eventbus "github.com/amirasaad/banking/infra/eventbus"
	"github.com/amirasaad/banking/pkg/app"
	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/registry"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_AuditsEveryEvent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	bus := infra_eventbus.NewWithMemory(logger)

	a := app.New(&app.Deps{
		Registry: registry.New(registry.WithCapacity(10)),
		EventBus: bus,
		Logger:   logger,
	}, &config.App{Env: "test"})
	require.NotNil(t, a.AccountService)

	ctx := context.Background()
	_, err := a.AccountService.CreateAccount(ctx, "S1", "Alice", account.Savings{InterestRate: decimal.NewFromInt(5)})
	require.NoError(t, err)
	_, err = a.AccountService.Deposit(ctx, "S1", decimal.NewFromInt(100))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "handler=audit")
	assert.Contains(t, out, "type=Account.Created")
	assert.Contains(t, out, "type=Account.Deposited")
	assert.Len(t, bus.Published(), 2)

	a.Close()
	assert.Empty(t, a.AccountService.Accounts(ctx))
}

func TestHandleAudit(t *testing.T) {
	h := app.HandleAudit(slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.NoError(t, h(context.Background(), plainEvent{}))
}

type plainEvent struct{}

func (plainEvent) Type() string { return "Other" }
