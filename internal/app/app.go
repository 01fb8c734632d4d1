package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/eztimer/internal/config"
	apperrors "github.com/agbru/eztimer/internal/errors"
	"github.com/agbru/eztimer/internal/logging"
	"github.com/agbru/eztimer/internal/ui"
	"github.com/agbru/eztimer/internal/workload"
)

// Application represents the eztimer application instance.
type Application struct {
	Config    config.AppConfig
	Factory   workload.Factory
	ErrWriter io.Writer
	Logger    logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom workload Factory for the application.
func WithFactory(f workload.Factory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger replaces the stderr console logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = workload.NewDefaultFactory()
	}

	programName := "eztimer"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		// Validate already accepted the level.
		level, _ := logging.ParseLevel(cfg.LogLevel)
		console := zerolog.ConsoleWriter{Out: errWriter, NoColor: cfg.NoColor}
		app.Logger = logging.NewZerologAdapter(
			zerolog.New(console).With().Timestamp().Str("component", "eztimer").Logger(),
		).WithLevel(level)
	}
	return app, nil
}

// Run executes the application based on the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)

	if a.Config.List {
		a.listWorkloads(out)
		return apperrors.ExitSuccess
	}

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	err := a.runTiming(ctx, out)
	if err != nil {
		a.Logger.Error("run failed", err)
	}
	return apperrors.HandleRunError(err, out)
}

// listWorkloads prints every registered workload, sorted by name.
func (a *Application) listWorkloads(out io.Writer) {
	all := a.Factory.GetAll()
	for _, name := range a.Factory.List() {
		fmt.Fprintf(out, "%s%-14s%s %s\n", ui.ColorBlue(), name, ui.ColorReset(), all[name].Description())
	}
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
