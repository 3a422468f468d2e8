// Package account provides the operation boundary for the account registry.
// Every operation runs against the registry, logs its outcome and publishes
// the matching domain events on the event bus.
//
// Expected refusals (insufficient funds, overdraft, interest not applicable,
// unknown account, full registry) are returned as sentinel errors and logged
// at warn level; see registry.IsSoft.
package account

import (
	"context"
	"errors"
	"log/slog"

	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/domain/events"
	"github.com/amirasaad/banking/pkg/eventbus"
	"github.com/amirasaad/banking/pkg/registry"
	"github.com/google/uuid"
)

// Service coordinates the registry and the event bus.
type Service struct {
	bus      eventbus.Bus
	registry *registry.Registry
	logger   *slog.Logger
}

// NewService creates a new Service with the provided dependencies.
func NewService(
	bus eventbus.Bus,
	reg *registry.Registry,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		bus:      bus,
		registry: reg,
		logger:   logger,
	}
}

// CreateAccount registers a new account with a zero balance.
func (s *Service) CreateAccount(
	ctx context.Context,
	number, holder string,
	v account.Variant,
) (info account.Info, err error) {
	logger := s.logger.With("account", number, "holder", holder)
	defer func() { s.logOutcome(logger, "CreateAccount", err) }()

	if v == nil {
		return account.Info{}, account.ErrNilVariant
	}
	logger = logger.With("kind", v.Kind())

	acc, err := s.registry.Create(number, holder, v)
	if err != nil {
		return account.Info{}, err
	}
	info = acc.Info()
	s.emit(ctx, logger, events.NewAccountCreated(info, uuid.New()))
	return info, nil
}

// emit publishes e; bus failures are logged and never undo the state change.
func (s *Service) emit(ctx context.Context, logger *slog.Logger, e events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Emit(ctx, e); err != nil {
		logger.Error("failed to publish event", "type", e.Type(), "error", err)
	}
}

func (s *Service) logOutcome(logger *slog.Logger, op string, err error) {
	switch {
	case err == nil:
		logger.Info(op + " successful")
	case registry.IsSoft(err):
		logger.Warn(op+" refused", "reason", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logger.Warn(op+" cancelled", "error", err)
	default:
		logger.Error(op+" failed", "error", err)
	}
}
