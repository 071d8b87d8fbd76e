package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/splitcalc/pkg/domain"
	"github.com/aretw0/splitcalc/pkg/session"
)

// SignalReset is the signal name sent to handlers after a reset.
const SignalReset = "reset"

// ErrInterrupted is returned when the loop is stopped by SIGINT/SIGTERM.
var ErrInterrupted = errors.New("interrupted")

// Runner drives a Session from an IOHandler.
// It uses an IOHandler strategy to abstract the interaction mode (Text vs JSON).
type Runner struct {
	// Handler is the strategy for IO. Defaults to a TextHandler on stdin/stdout.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Presets are the tips selectable with "tip #k".
	Presets []domain.TipSelection

	// HandleSignals makes the runner listen for SIGINT and SIGTERM.
	HandleSignals bool

	// InterruptSource acts like a signal: each receive interrupts the
	// current read.
	InterruptSource <-chan struct{}
}

// NewRunner creates a new Runner with default Stdin/Stdout.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Presets: DefaultPresets(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Handler == nil {
		r.Handler = NewTextHandler(nil, nil)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// DefaultPresets returns the built-in 10/15/20 percent tips.
func DefaultPresets() []domain.TipSelection {
	presets := make([]domain.TipSelection, 0, len(domain.DefaultTipPresets))
	for _, rate := range domain.DefaultTipPresets {
		presets = append(presets, domain.MustPercentage(rate))
	}
	return presets
}

// Run reads commands until quit, EOF, cancellation or an interrupt.
// Quit and EOF return nil. An interrupt while a custom tip prompt is open
// only cancels the prompt.
func (r *Runner) Run(ctx context.Context, s *session.Session) error {
	signals := NewSignalManager(ctx, r.HandleSignals)
	defer signals.Stop()

	if r.InterruptSource != nil {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case _, ok := <-r.InterruptSource:
					if !ok {
						return
					}
					signals.Interrupt()
				}
			}
		}()
	}

	h := r.Handler
	resetSub := s.OnReset(func() {
		if err := h.Signal(ctx, SignalReset); err != nil {
			r.Logger.Warn("reset signal failed", "err", err)
		}
	})
	defer resetSub.Unsubscribe()

	r.Logger.Debug("runner started", "session_id", s.ID())
	if err := r.render(ctx, s); err != nil {
		return err
	}

	for {
		loopCtx := signals.Context()
		cmd, err := h.Input(loopCtx)
		if err != nil {
			if errors.Is(err, ErrInvalidCommand) {
				if err := h.SystemOutput(ctx, err.Error()); err != nil {
					return fmt.Errorf("output error: %w", err)
				}
				continue
			}
			return r.stop(ctx, signals, err)
		}

		r.Logger.Debug("command", "kind", cmd.Kind, "session_id", s.ID())
		quit, err := r.apply(ctx, signals, s, cmd)
		if err != nil || quit {
			return err
		}
	}
}

// stop maps a read failure to the loop's result.
func (r *Runner) stop(ctx context.Context, signals *SignalManager, err error) error {
	if !errors.Is(err, context.Canceled) {
		signals.CheckRace()
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if signals.Context().Err() != nil {
		return ErrInterrupted
	}
	if errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("input error: %w", err)
}

func (r *Runner) apply(ctx context.Context, signals *SignalManager, s *session.Session, cmd Command) (bool, error) {
	h := r.Handler

	switch cmd.Kind {
	case CmdBill:
		s.SetBillText(cmd.Text)
	case CmdTip:
		s.SelectTip(cmd.Tip)
	case CmdTipPreset:
		if cmd.Preset < 1 || cmd.Preset > len(r.Presets) {
			msg := fmt.Sprintf("no preset #%d (have %d)", cmd.Preset, len(r.Presets))
			return false, r.system(ctx, msg)
		}
		s.SelectTip(r.Presets[cmd.Preset-1])
	case CmdTipCustom:
		promptCtx := signals.Context()
		err := PromptCustomTip(promptCtx, h, s.SelectTip)
		if err != nil {
			if ctx.Err() != nil {
				return true, ctx.Err()
			}
			if promptCtx.Err() != nil {
				signals.Reset()
				return false, r.system(ctx, "Custom tip cancelled.")
			}
			if errors.Is(err, io.EOF) {
				return true, nil
			}
			return true, fmt.Errorf("prompt error: %w", err)
		}
	case CmdSplit:
		s.SetSplit(cmd.Split)
	case CmdIncrement:
		s.Increment()
	case CmdDecrement:
		s.Decrement()
	case CmdReset:
		s.Reset()
	case CmdShow:
	case CmdHelp:
		return false, r.system(ctx, HelpText(r.Presets))
	case CmdQuit:
		return true, nil
	default:
		return false, r.system(ctx, fmt.Sprintf("unsupported command %q", cmd.Kind))
	}
	return false, r.render(ctx, s)
}

func (r *Runner) render(ctx context.Context, s *session.Session) error {
	view := View{State: s.Snapshot(), Result: s.Latest()}
	if err := r.Handler.Output(ctx, view); err != nil {
		return fmt.Errorf("output error: %w", err)
	}
	return nil
}

func (r *Runner) system(ctx context.Context, msg string) error {
	if err := r.Handler.SystemOutput(ctx, msg); err != nil {
		return fmt.Errorf("output error: %w", err)
	}
	return nil
}
