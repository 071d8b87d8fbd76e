package runner

import (
	"log/slog"

	"github.com/aretw0/splitcalc/pkg/domain"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithInputHandler configures a custom IOHandler.
func WithInputHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithPresets replaces the default tip presets.
func WithPresets(presets []domain.TipSelection) Option {
	return func(r *Runner) {
		r.Presets = presets
	}
}

// WithSignalHandling makes Run listen for SIGINT and SIGTERM.
func WithSignalHandling(enabled bool) Option {
	return func(r *Runner) {
		r.HandleSignals = enabled
	}
}

// WithInterruptSource sets a channel that signals the runner to interrupt current execution.
func WithInterruptSource(ch <-chan struct{}) Option {
	return func(r *Runner) {
		r.InterruptSource = ch
	}
}
