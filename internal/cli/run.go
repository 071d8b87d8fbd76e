package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/splitcalc"
	"github.com/aretw0/splitcalc/internal/config"
	"github.com/aretw0/splitcalc/internal/presentation/format"
	"github.com/aretw0/splitcalc/internal/presentation/tui"
	"github.com/aretw0/splitcalc/pkg/observability"
	"github.com/aretw0/splitcalc/pkg/runner"
	"github.com/aretw0/splitcalc/pkg/session"
)

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	ConfigPath string
	JSON       bool
	Debug      bool
	Metrics    bool
	// Interactive reports whether Stdout is a terminal. It enables the
	// banner and the glamour renderer.
	Interactive bool
	// SignalHandling makes the loop react to SIGINT/SIGTERM.
	SignalHandling bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (o *RunOptions) defaults() {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
}

// RunSession executes one interactive calculator session.
func RunSession(ctx context.Context, opts RunOptions) error {
	opts.defaults()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	logger := createLogger(opts.Stderr, cfg, opts.Debug)

	var metrics *observability.Metrics
	if opts.Metrics {
		metrics = observability.NewMetrics()
	}

	s := session.New(
		session.WithLogger(logger),
		session.WithLifecycleHooks(createHooks(logger, metrics)),
	)
	defer s.Close()
	logger.Debug("Session Created", "session_id", s.ID())

	if !opts.JSON && opts.Interactive && cfg.Banner {
		tui.PrintBanner(opts.Stdout, splitcalc.Version)
	}

	r := runner.NewRunner(
		runner.WithLogger(logger),
		runner.WithInputHandler(createHandler(cfg, opts)),
		runner.WithPresets(cfg.Presets()),
		runner.WithSignalHandling(opts.SignalHandling),
	)
	runErr := r.Run(ctx, s)

	if metrics != nil {
		if err := metrics.WriteText(opts.Stderr); err != nil {
			logger.Warn("Failed to write metrics", "err", err)
		}
	}

	logCompletion(opts.Stdout, runErr, opts.JSON)
	return handleExecutionError(runErr)
}

// createHandler picks the IO strategy for the session.
func createHandler(cfg *config.Config, opts RunOptions) runner.IOHandler {
	if opts.JSON {
		return runner.NewJSONHandler(opts.Stdin, opts.Stdout)
	}
	handlerOpts := []runner.TextHandlerOption{
		runner.WithTextHandlerFormatter(format.New(cfg.Locale, cfg.CurrencySymbol)),
	}
	if opts.Interactive {
		handlerOpts = append(handlerOpts, runner.WithTextHandlerRenderer(tui.NewRenderer()))
	}
	return runner.NewTextHandler(opts.Stdin, opts.Stdout, handlerOpts...)
}
