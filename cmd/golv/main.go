// Command golv is the terminal client of the team leave calendar.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/tartampluch/go-leave/internal/bootstrap"
	"github.com/tartampluch/go-leave/internal/cli"
	"github.com/tartampluch/go-leave/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(config.ExitCodeError)
	}
}

func run() error {
	// Logs go to the file only; stdout belongs to the commands.
	if closer := bootstrap.SetupLogging(os.Getenv(config.EnvDebug) != "", nil); closer != nil {
		defer func() { _ = closer.Close() }()
	}

	svc, err := bootstrap.Open(bootstrap.Options{SettingsPath: os.Getenv(config.EnvConfig)})
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	defer func() { _ = svc.Close() }()

	app := &cli.App{
		Settings:     svc.Settings,
		SaveSettings: svc.Save,
		Session:      svc.Session,
		API:          svc.API,
		Loader:       svc.Loader,
		Store:        svc.Store,
		Feed:         svc.Feed,
		Clock:        svc.Clock,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
