package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/splitcalc/internal/config"
	"github.com/aretw0/splitcalc/internal/logging"
	"github.com/aretw0/splitcalc/pkg/domain"
	"github.com/aretw0/splitcalc/pkg/observability"
	"github.com/aretw0/splitcalc/pkg/runner"
)

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from Stdout flow UI).
// Otherwise the configured level applies, and "off" silences it.
func createLogger(w io.Writer, cfg *config.Config, debug bool) *slog.Logger {
	if debug {
		return logging.NewWithWriter(w, slog.LevelDebug)
	}
	if cfg.LogLevel == "off" {
		return logging.NewNop()
	}
	return logging.NewWithWriter(w, logging.ParseLevel(cfg.LogLevel))
}

// createHooks adds the metrics collectors (when enabled) to debug logging.
func createHooks(logger *slog.Logger, metrics *observability.Metrics) domain.LifecycleHooks {
	hooks := domain.LifecycleHooks{
		OnReset: func(ctx context.Context, e *domain.ResetEvent) {
			logger.Debug("Calculator Reset", "session_id", e.SessionID)
		},
	}
	if metrics != nil {
		hooks = hooks.Merge(metrics.Hooks())
	}
	return hooks
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

func isInterrupted(err error) bool {
	return errors.Is(err, runner.ErrInterrupted) || errors.Is(err, context.Canceled)
}

func handleExecutionError(err error) error {
	if err == nil {
		return nil
	}
	if isInterrupted(err) {
		return nil // Exit 0 for interruptions
	}
	return err
}

func logCompletion(w io.Writer, err error, quiet bool) {
	if quiet {
		return
	}
	switch {
	case err == nil:
		printSystemMessage(w, "Bye!")
	case isInterrupted(err):
		fmt.Fprintln(w)
		printSystemMessage(w, "Interrupted.")
	}
}
