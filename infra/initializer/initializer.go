package initializer

import (
	"errors"
	"io"
	"os"

	infra_eventbus "github.com/amirasaad/banking/infra/eventbus"
	"github.com/amirasaad/banking/pkg/app"
	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/registry"
)

// Option configures InitializeDependencies.
type Option func(*options)

type options struct {
	logOutput io.Writer
}

// WithLogOutput sends logs to w instead of stderr.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) { o.logOutput = w }
}

// InitializeDependencies builds the logger, the account registry and the
// event bus from cfg.
func InitializeDependencies(cfg *config.App, opts ...Option) (*app.Deps, error) {
	if cfg == nil || cfg.Log == nil || cfg.Registry == nil {
		return nil, errors.New("initializer: incomplete configuration")
	}
	o := options{logOutput: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	logger := setupLogger(o.logOutput, cfg.Log)
	logger.Debug("Initializing dependencies", "env", cfg.Env)

	deps := &app.Deps{
		Logger:   logger,
		Registry: registry.New(registry.WithCapacity(cfg.Registry.MaxAccounts)),
		EventBus: infra_eventbus.NewWithMemory(logger),
	}
	logger.Info("Dependencies initialized",
		"max_accounts", deps.Registry.Capacity(),
		"bus", "memory",
	)
	return deps, nil
}
