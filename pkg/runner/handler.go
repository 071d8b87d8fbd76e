package runner

import (
	"context"

	"github.com/aretw0/splitcalc/pkg/domain"
)

// View is what a handler renders after every change.
type View struct {
	State  domain.SessionState      `json:"state"`
	Result domain.CalculationResult `json:"result"`
}

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (CLI/TUI) and JSON (Structured) modes.
type IOHandler interface {
	// Input reads the next command. Decoding failures are returned wrapped
	// in ErrInvalidCommand so the runner can report them and continue.
	Input(ctx context.Context) (Command, error)

	// Prompt asks a question and returns the raw answer line.
	Prompt(ctx context.Context, question string) (string, error)

	// Output presents the current figures.
	Output(ctx context.Context, view View) error

	// Signal notifies the handler of an event such as "reset", so it can clear
	// or restyle what it shows.
	Signal(ctx context.Context, name string) error

	// SystemOutput presents a meta-message to the user (help, errors, status).
	// This is distinct from result rendering.
	SystemOutput(ctx context.Context, msg string) error
}

// ContentRenderer is a function that transforms markdown before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)
