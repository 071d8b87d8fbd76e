package session

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/aretw0/splitcalc"
	"github.com/aretw0/splitcalc/pkg/domain"
	"github.com/aretw0/splitcalc/pkg/stream"
	"github.com/google/uuid"
)

// Session wires a set of input channels to an engine and keeps the
// latest value of each.
type Session struct {
	id     string
	logger *slog.Logger
	hooks  domain.LifecycleHooks

	bill  *stream.Relay[domain.Bill]
	tip   *stream.Subject[domain.TipSelection]
	split *stream.Subject[int]
	reset *stream.Relay[struct{}]

	out    splitcalc.Output
	resets *stream.Relay[struct{}]
	subs   stream.Group

	mu    sync.Mutex
	state domain.SessionState
}

// Option configures a Session.
type Option func(*Session)

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}

// WithLogger configures the logger passed to the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithLifecycleHooks registers engine hooks (logging, metrics).
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Session) {
		s.hooks = hooks
	}
}

// New creates the channels, attaches an engine and emits the initial state.
// The first result (all zeros) is available from Latest as soon as New returns.
func New(opts ...Option) *Session {
	s := &Session{
		id:     uuid.NewString(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		state:  domain.NewSessionState(),
		resets: stream.NewRelay[struct{}](),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.bill = stream.NewRelay[domain.Bill]()
	s.tip = stream.NewSubjectWith(s.state.Tip)
	s.split = stream.NewSubjectWith(s.state.Split)
	s.reset = stream.NewRelay[struct{}]()

	eng := splitcalc.New(
		splitcalc.WithSessionID(s.id),
		splitcalc.WithLogger(s.logger),
		splitcalc.WithLifecycleHooks(s.hooks),
	)
	s.out = eng.Transform(splitcalc.Input{
		Bill:  s.bill,
		Tip:   s.tip,
		Split: s.split,
		Reset: s.reset,
	})
	s.subs.Add(s.out.Resets.Subscribe(func(struct{}) { s.restore() }))

	// bill is live-only, so it has to be pushed once for the combine to fire.
	s.bill.Send(s.state.Bill)
	return s
}

// ID returns the session correlation ID.
func (s *Session) ID() string { return s.id }

// SetBillText parses raw input and emits it. Unparseable text becomes an absent bill.
func (s *Session) SetBillText(text string) domain.Bill {
	b := domain.ParseBill(text)
	s.SetBill(b)
	return b
}

// SetBill emits an already parsed bill.
func (s *Session) SetBill(b domain.Bill) {
	s.mu.Lock()
	s.state.Bill = b
	s.mu.Unlock()
	s.bill.Send(b)
}

// SelectTip replaces the current tip selection.
func (s *Session) SelectTip(t domain.TipSelection) {
	s.mu.Lock()
	s.state.Tip = t
	s.mu.Unlock()
	s.tip.Send(t)
}

// ClearTip deselects any tip.
func (s *Session) ClearTip() {
	s.SelectTip(domain.NoTip)
}

// SetSplit emits n clamped to at least one person.
func (s *Session) SetSplit(n int) int {
	n = domain.ClampSplit(n)
	s.mu.Lock()
	s.state.Split = n
	s.mu.Unlock()
	s.split.Send(n)
	return n
}

// Increment adds one person to the party.
func (s *Session) Increment() int {
	return s.SetSplit(s.Snapshot().Split + 1)
}

// Decrement removes one person, never going below one.
func (s *Session) Decrement() int {
	return s.SetSplit(s.Snapshot().Split - 1)
}

// Reset fires the reset trigger. The session restores its initial state
// when the engine forwards the signal, then notifies OnReset subscribers.
func (s *Session) Reset() {
	s.reset.Send(struct{}{})
}

// Snapshot returns the latest known value of each channel.
func (s *Session) Snapshot() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Latest returns the most recent result.
func (s *Session) Latest() domain.CalculationResult {
	r, _ := s.out.Results.Value()
	return r
}

// OnResult subscribes a view to results. The current result is delivered immediately.
func (s *Session) OnResult(fn func(domain.CalculationResult)) stream.Subscription {
	return s.out.Results.Subscribe(fn)
}

// OnReset subscribes a view to reset instructions. It fires after the
// channels have been restored.
func (s *Session) OnReset(fn func()) stream.Subscription {
	return s.resets.Subscribe(func(struct{}) { fn() })
}

// Close detaches the engine and every internal subscription.
// View subscriptions simply stop receiving.
func (s *Session) Close() {
	s.subs.Unsubscribe()
	s.out.Close()
}

func (s *Session) restore() {
	initial := domain.NewSessionState()
	s.mu.Lock()
	s.state = initial
	s.mu.Unlock()

	s.logger.Debug("session restored", "session_id", s.id)
	s.bill.Send(initial.Bill)
	s.tip.Send(initial.Tip)
	s.split.Send(initial.Split)
	s.resets.Send(struct{}{})
}

// ParseSplit reads a party size, clamping anything below one.
func ParseSplit(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidSplit, text)
	}
	return domain.ClampSplit(n), nil
}
