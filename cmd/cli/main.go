package main

import (
	"context"
	"fmt"
	"os"

	"github.com/amirasaad/banking/infra/initializer"
	"github.com/amirasaad/banking/pkg/app"
	"github.com/amirasaad/banking/pkg/cli"
	"github.com/amirasaad/banking/pkg/config"
	"golang.org/x/term"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
		return 1
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to initialize dependencies:", err)
		return 1
	}
	a := app.New(deps, cfg)

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	colored := cli.ColorEnabled(cfg.CLI.Color, term.IsTerminal(int(os.Stdout.Fd())))

	menu := cli.NewMenu(a.AccountService, os.Stdin, os.Stdout,
		cli.WithPrompts(interactive),
		cli.WithPrompt(cfg.CLI.Prompt),
		cli.WithColor(colored),
		cli.WithLogger(deps.Logger),
	)
	if err := menu.Run(context.Background()); err != nil {
		deps.Logger.Error("menu stopped", "error", err)
		return 1
	}
	return 0
}
