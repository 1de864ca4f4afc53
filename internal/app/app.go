// Package app wires configuration, the search engine and the presentation
// layers into the primefind command.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/agbru/primefind/internal/calibration"
	"github.com/agbru/primefind/internal/cli"
	"github.com/agbru/primefind/internal/config"
	apperrors "github.com/agbru/primefind/internal/errors"
	"github.com/agbru/primefind/internal/logging"
	"github.com/agbru/primefind/internal/tui"
	"github.com/agbru/primefind/internal/ui"
)

// Application represents the primefind application instance.
type Application struct {
	Config    config.AppConfig
	In        io.Reader
	ErrWriter io.Writer
	logger    logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithInput sets the reader used by the interactive configurator.
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.In = in }
}

// WithLogger replaces the default console logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.logger = l }
}

// New creates an Application by parsing command-line arguments. args[0] is
// the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{In: os.Stdin, ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "primefind"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	if app.logger == nil {
		if ui.IsTerminal(errWriter) {
			app.logger = logging.NewConsoleLogger(errWriter, "primefind")
		} else {
			app.logger = logging.NewLogger(errWriter, "primefind")
		}
	}
	return app, nil
}

// Run executes the application in the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	if err := logging.SetGlobalLevel(a.Config.LogLevel); err != nil {
		return apperrors.HandleSearchError(apperrors.NewConfigError("invalid log level %q: %v", a.Config.LogLevel, err), a.ErrWriter)
	}
	ui.InitTheme(a.Config.NoColor, out)

	cfg, err := a.configure(out)
	if err != nil {
		return apperrors.HandleSearchError(err, a.ErrWriter)
	}
	a.Config = cfg

	if a.Config.Calibrate {
		return a.runCalibration(ctx, out)
	}

	if a.Config.TUI {
		return a.runTUI(ctx)
	}

	return a.runSearch(ctx, out)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// configure runs the interactive configurator when requested, or when no
// configuration file exists and the session is interactive, then saves the
// file if the settings were edited or --save was given.
func (a *Application) configure(out io.Writer) (config.AppConfig, error) {
	cfg := a.Config
	edited := false
	configurator := cli.NewConfigurator(a.In, out)

	switch {
	case cfg.Configure:
		edited = true
	case a.shouldOfferConfiguration():
		yes, err := configurator.AskConfigure()
		if err != nil {
			return cfg, err
		}
		edited = yes
	}

	if edited {
		updated, err := configurator.Run(cfg)
		if err != nil {
			return cfg, err
		}
		if err := updated.Validate(); err != nil {
			return cfg, err
		}
		cfg = updated
	}

	// Calibration saves after applying its result.
	if edited || (cfg.Save && !cfg.Calibrate) {
		if err := a.saveConfig(cfg, out); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func (a *Application) shouldOfferConfiguration() bool {
	if a.Config.Quiet || a.Config.TUI || a.Config.Calibrate {
		return false
	}
	if _, err := os.Stat(a.Config.ConfigFile); err == nil {
		return false
	}
	f, ok := a.In.(*os.File)
	return ok && ui.IsTerminal(f)
}

func (a *Application) saveConfig(cfg config.AppConfig, out io.Writer) error {
	if err := config.SaveFile(cfg.ConfigFile, cfg.ToFile()); err != nil {
		return err
	}
	if !cfg.Quiet {
		fmt.Fprintf(out, "%sConfiguration saved to %s%s\n", ui.ColorGreen(), cfg.ConfigFile, ui.ColorReset())
	}
	return nil
}

// runCalibration benchmarks worker counts and optionally saves the best.
func (a *Application) runCalibration(ctx context.Context, out io.Writer) int {
	schemes := a.Config.Schemes()
	res, err := calibration.Run(ctx, calibration.Options{
		Scheme:     schemes[0],
		UpperBound: a.Config.UpperBound(),
		Logger:     a.logger,
	}, out)
	if err != nil {
		return apperrors.HandleSearchError(err, a.ErrWriter)
	}
	calibration.PrintCalibrationOutput(res, out)

	a.Config = calibration.Apply(a.Config, res)
	if a.Config.Save {
		if err := a.saveConfig(a.Config, out); err != nil {
			return apperrors.HandleSearchError(err, a.ErrWriter)
		}
	}
	return apperrors.ExitSuccess
}

// runTUI launches the interactive dashboard.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()
	return tui.Run(ctx, a.Config, Version)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
