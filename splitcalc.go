package splitcalc

import (
	"io"
	"log/slog"

	"github.com/aretw0/splitcalc/internal/runtime"
	"github.com/aretw0/splitcalc/pkg/domain"
)

// Version is the release of the splitcalc module.
const Version = "0.3.0"

// Input is the set of channels the engine consumes.
type Input = runtime.Input

// Output holds the result and reset streams produced by Transform.
type Output = runtime.Output

// Engine is the high-level entry point for the splitcalc library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime   *runtime.Engine
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	sessionID string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithSessionID tags logs and events with a session correlation ID.
func WithSessionID(id string) Option {
	return func(e *Engine) {
		e.sessionID = id
	}
}

// New initializes a new Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	// Ensure logger is initialized (so we don't pass nil to runtime, which would overwrite its default)
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if eng.sessionID != "" {
		eng.logger = eng.logger.With("session_id", eng.sessionID)
	}

	eng.runtime = runtime.NewEngine(
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
		runtime.WithSessionID(eng.sessionID),
	)
	return eng
}

// Transform subscribes to the three value channels and the reset trigger and
// returns the derived result and reset streams. Call Output.Close to detach.
func (e *Engine) Transform(in Input) Output {
	return e.runtime.Transform(in)
}

// Compute derives a result without any channels. split must already be >= 1.
func Compute(bill domain.Bill, tip domain.TipSelection, split int) domain.CalculationResult {
	return runtime.ComputeResult(bill, tip, split)
}
