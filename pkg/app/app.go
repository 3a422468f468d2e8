package app

import (
	"log/slog"

	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/eventbus"
	"github.com/amirasaad/banking/pkg/registry"
	"github.com/amirasaad/banking/pkg/service/account"
)

// Deps contains the infrastructure the application is built from.
type Deps struct {
	Registry *registry.Registry
	EventBus eventbus.Bus
	Logger   *slog.Logger
}

type App struct {
	Deps           *Deps
	Config         *config.App
	AccountService *account.Service
}

func New(deps *Deps, cfg *config.App) *App {
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	app.setupEventBus()
	app.AccountService = account.NewService(deps.EventBus, deps.Registry, deps.Logger)
	return app
}

// Close releases every account held by the application.
func (a *App) Close() {
	a.AccountService.Close()
}
