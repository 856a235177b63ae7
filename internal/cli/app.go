package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	ipaconfig "github.com/0xalexb/ipa-config"
	"github.com/0xalexb/ipa-config/logging"
)

var errAppNotInitialized = errors.New("app not initialized")

// app wires the logger and the config module into an Fx container.
type app struct {
	app *fx.App
}

func newApp(cfg settings, logOutput, diagnostics io.Writer, target **ipaconfig.Config) *app {
	logger := logging.NewLogger(logging.LoggerConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	}, logOutput)

	return &app{
		app: fx.New(
			fx.WithLogger(func() fxevent.Logger {
				return eventLogger(cfg.LogLevel, logger)
			}),
			fx.Supply(logger),
			ipaconfig.NewModule(cfg.ConfigPath, ipaconfig.WithDiagnostics(diagnostics)),
			fx.Populate(target),
		),
	}
}

// eventLogger keeps the container events out of the command output unless debugging.
func eventLogger(level string, logger *slog.Logger) fxevent.Logger {
	if !strings.EqualFold(level, "debug") {
		return fxevent.NopLogger
	}

	return &fxevent.SlogLogger{Logger: logger}
}

func (a *app) start(ctx context.Context) error {
	if a == nil || a.app == nil {
		return errAppNotInitialized
	}

	err := a.app.Start(ctx)
	if err != nil {
		return fmt.Errorf("failed to start app: %w", err)
	}

	return nil
}

func (a *app) stop(ctx context.Context) error {
	if a == nil || a.app == nil {
		return errAppNotInitialized
	}

	err := a.app.Stop(ctx)
	if err != nil {
		return fmt.Errorf("failed to stop app: %w", err)
	}

	return nil
}
