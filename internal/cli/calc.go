package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/splitcalc/internal/config"
	"github.com/aretw0/splitcalc/internal/presentation/format"
	"github.com/aretw0/splitcalc/internal/presentation/tui"
	"github.com/aretw0/splitcalc/pkg/domain"
	"github.com/aretw0/splitcalc/pkg/runner"
	"github.com/aretw0/splitcalc/pkg/session"
)

// ErrConflictingTips is returned when both a percentage and a fixed tip are given.
var ErrConflictingTips = errors.New("--tip and --fixed cannot be used together")

// CalcOptions describes a one-shot calculation.
type CalcOptions struct {
	ConfigPath string
	Bill       string
	// Tip is a percentage rate such as 0.15. Ignored unless HasTip.
	Tip    float64
	HasTip bool
	// Fixed is an absolute tip amount. Ignored unless HasFixed.
	Fixed    float64
	HasFixed bool
	Split    int
	JSON     bool
	// Interactive enables the glamour renderer.
	Interactive bool

	Stdout io.Writer
}

// Calc pushes the given inputs through a session and prints the result.
func Calc(opts CalcOptions) error {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.HasTip && opts.HasFixed {
		return ErrConflictingTips
	}

	tip := domain.NoTip
	var err error
	switch {
	case opts.HasTip:
		tip, err = domain.Percentage(opts.Tip)
	case opts.HasFixed:
		tip, err = domain.Fixed(opts.Fixed)
	}
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	s := session.New()
	defer s.Close()
	s.SetBillText(opts.Bill)
	s.SelectTip(tip)
	s.SetSplit(opts.Split)

	view := runner.View{State: s.Snapshot(), Result: s.Latest()}
	if opts.JSON {
		return json.NewEncoder(opts.Stdout).Encode(view)
	}

	out := tui.Summary(format.New(cfg.Locale, cfg.CurrencySymbol), view.State, view.Result)
	if opts.Interactive {
		if rendered, err := tui.NewRenderer()(out); err == nil {
			out = rendered
		}
	}
	_, err = fmt.Fprintln(opts.Stdout, strings.TrimRight(out, "\n"))
	return err
}
