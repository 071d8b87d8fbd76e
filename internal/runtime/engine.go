package runtime

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/splitcalc/pkg/domain"
	"github.com/aretw0/splitcalc/pkg/stream"
)

// Input is the set of channels the engine consumes.
type Input struct {
	Bill  stream.Source[domain.Bill]
	Tip   stream.Source[domain.TipSelection]
	Split stream.Source[int]
	Reset stream.Source[struct{}]
}

// Output is what the engine produces for one Transform call.
type Output struct {
	// Results carries one CalculationResult per combine-eligible emission.
	// It replays the latest result, so a view attached after wiring still
	// sees the current figures.
	Results *stream.Subject[domain.CalculationResult]
	// Resets mirrors the reset trigger one to one.
	Resets *stream.Relay[struct{}]

	subs *stream.Group
}

// Close detaches the engine from its inputs. Output subscribers stay
// registered but receive nothing further.
func (o Output) Close() {
	if o.subs != nil {
		o.subs.Unsubscribe()
	}
}

// Engine combines the latest bill, tip and split into results.
type Engine struct {
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	sessionID string
	now       func() time.Time
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithSessionID tags emitted events with a correlation ID.
func WithSessionID(id string) EngineOption {
	return func(e *Engine) {
		e.sessionID = id
	}
}

// NewEngine creates an engine. It holds no per-session state; all of that
// lives in the Output returned by Transform.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Transform wires the engine to in and returns its output streams.
// Every recompute happens inline on the goroutine that delivered the
// triggering emission.
func (e *Engine) Transform(in Input) Output {
	out := Output{
		Results: stream.NewSubject[domain.CalculationResult](),
		Resets:  stream.NewRelay[struct{}](),
		subs:    &stream.Group{},
	}
	state := &latest{}

	emit := func(snap snapshot, ok bool) {
		if !ok {
			return
		}
		result := ComputeResult(snap.bill, snap.tip, snap.split)
		e.logger.Debug("recompute",
			"bill", snap.bill.String(),
			"tip", snap.tip.String(),
			"split", snap.split,
			"per_person", result.AmountPerPerson,
		)
		if e.hooks.OnResult != nil {
			e.hooks.OnResult(context.Background(), &domain.ResultEvent{
				EventBase: e.base(domain.EventRecompute),
				Bill:      snap.bill,
				Tip:       snap.tip,
				Split:     snap.split,
				Result:    result,
			})
		}
		out.Results.Send(result)
	}

	if in.Reset != nil {
		out.subs.Add(in.Reset.Subscribe(func(struct{}) {
			e.logger.Debug("reset")
			if e.hooks.OnReset != nil {
				e.hooks.OnReset(context.Background(), &domain.ResetEvent{
					EventBase: e.base(domain.EventReset),
				})
			}
			out.Resets.Send(struct{}{})
		}))
	}
	out.subs.Add(
		in.Bill.Subscribe(func(b domain.Bill) { emit(state.setBill(b)) }),
		in.Tip.Subscribe(func(t domain.TipSelection) { emit(state.setTip(t)) }),
		in.Split.Subscribe(func(n int) { emit(state.setSplit(n)) }),
	)
	return out
}

func (e *Engine) base(t domain.EventType) domain.EventBase {
	return domain.EventBase{
		Timestamp: e.now(),
		Type:      t,
		SessionID: e.sessionID,
	}
}
