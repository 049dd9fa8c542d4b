// Command go-leave is the desktop tray application of the team leave calendar.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/pflag"
	"github.com/tartampluch/go-leave/internal/bootstrap"
	"github.com/tartampluch/go-leave/internal/config"
	"github.com/tartampluch/go-leave/internal/server"
	"github.com/tartampluch/go-leave/internal/ui"
)

// main delegates to runMain so deferred calls (log file, database) run before
// the process exits.
func main() {
	os.Exit(runMain())
}

// runMain manages the application lifecycle, argument parsing, and exit codes.
func runMain() int {
	// -------------------------------------------------------------------------
	// 1. CLI Argument Parsing
	// -------------------------------------------------------------------------
	flags := pflag.NewFlagSet(config.AppDirName, pflag.ContinueOnError)
	showVersion := flags.Bool(config.FlagVersion, false, config.FlagDescVersion)
	debugMode := flags.Bool(config.FlagDebug, os.Getenv(config.EnvDebug) != "", config.FlagDescDebug)
	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return config.ExitCodeSuccess
		}
		return config.ExitCodeError
	}

	if *showVersion {
		printVersion()
		return config.ExitCodeSuccess
	}

	// -------------------------------------------------------------------------
	// 2. Logging Initialization
	// -------------------------------------------------------------------------
	if closer := bootstrap.SetupLogging(*debugMode, os.Stdout); closer != nil {
		defer func() {
			_ = closer.Close()
		}()
	}

	// -------------------------------------------------------------------------
	// 3. Context & Signal Handling
	// -------------------------------------------------------------------------
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	// -------------------------------------------------------------------------
	// 4. Application Logic
	// -------------------------------------------------------------------------
	if err := run(ctx); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run wires the services and blocks in the UI loop.
func run(ctx context.Context) error {
	svc, err := bootstrap.Open(bootstrap.Options{SettingsPath: os.Getenv(config.EnvConfig)})
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	a := app.NewWithID(config.AppID)

	var feedServer *server.FeedServer
	if svc.Settings.FeedPort != "" {
		feedServer = server.NewTeamServer(svc.Settings.FeedPort, svc.Feed, svc.Clock)
	}

	gui := ui.NewLeaveApp(a, ctx, ui.Deps{
		Settings:     svc.Settings,
		SaveSettings: svc.Save,
		Session:      svc.Session,
		API:          svc.API,
		Loader:       svc.Loader,
		Store:        svc.Store,
		Server:       feedServer,
		Clock:        svc.Clock,
	})

	go func() {
		<-ctx.Done()
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompMain)
		a.Quit()
	}()

	gui.Run()
	return nil
}

func printVersion() {
	fmt.Printf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyCommit, config.Commit),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}
