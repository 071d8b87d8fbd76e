package runner

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/splitcalc/pkg/domain"
	"github.com/aretw0/splitcalc/pkg/session"
)

// ErrInvalidCommand is returned for input that does not map to a calculator event.
// The runner reports it and keeps reading.
var ErrInvalidCommand = errors.New("invalid command")

// CommandKind identifies a calculator event.
type CommandKind string

const (
	CmdBill      CommandKind = "bill"
	CmdTip       CommandKind = "tip"
	CmdTipPreset CommandKind = "tip_preset"
	CmdTipCustom CommandKind = "tip_custom"
	CmdSplit     CommandKind = "split"
	CmdIncrement CommandKind = "increment"
	CmdDecrement CommandKind = "decrement"
	CmdReset     CommandKind = "reset"
	CmdShow      CommandKind = "show"
	CmdHelp      CommandKind = "help"
	CmdQuit      CommandKind = "quit"
)

// Command is one decoded input event.
type Command struct {
	Kind CommandKind
	// Text is the raw bill text for CmdBill. Parsing happens in the session.
	Text string
	// Tip is the selection for CmdTip.
	Tip domain.TipSelection
	// Preset is the 1-based preset number for CmdTipPreset.
	Preset int
	// Split is the requested party size for CmdSplit, already clamped.
	Split int
}

// ParseCommand decodes one line of the text protocol:
//
//	bill <amount>          set the bill (empty or invalid clears it)
//	tip <n>[%]             percentage tip, e.g. "tip 15" or "tip 15%"
//	tip #<k>               preset tip number k
//	tip custom [amount]    fixed tip; prompts when the amount is omitted
//	tip none               clear the tip
//	split <n> | + | -      party size
//	+ | -                  shorthand for split + / split -
//	reset | show | help | quit
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty input", ErrInvalidCommand)
	}
	verb, args := strings.ToLower(fields[0]), fields[1:]

	switch verb {
	case "bill", "b":
		return Command{Kind: CmdBill, Text: strings.Join(args, "")}, nil
	case "tip", "t":
		return parseTip(args)
	case "split", "s":
		return parseSplit(args)
	case "+":
		return Command{Kind: CmdIncrement}, nil
	case "-":
		return Command{Kind: CmdDecrement}, nil
	case "reset", "r":
		return Command{Kind: CmdReset}, nil
	case "show":
		return Command{Kind: CmdShow}, nil
	case "help", "h", "?":
		return Command{Kind: CmdHelp}, nil
	case "quit", "exit", "q":
		return Command{Kind: CmdQuit}, nil
	}
	return Command{}, fmt.Errorf("%w: unknown command %q", ErrInvalidCommand, verb)
}

func parseTip(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, fmt.Errorf("%w: tip needs a value (try 'help')", ErrInvalidCommand)
	}
	arg := strings.ToLower(args[0])

	switch {
	case arg == "none" || arg == "off" || arg == "0":
		return Command{Kind: CmdTip, Tip: domain.NoTip}, nil
	case arg == "custom" || arg == "c":
		if len(args) < 2 {
			return Command{Kind: CmdTipCustom}, nil
		}
		tip, err := ParseCustomTip(args[1])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CmdTip, Tip: tip}, nil
	case strings.HasPrefix(arg, "#"):
		k, err := strconv.Atoi(arg[1:])
		if err != nil || k < 1 {
			return Command{}, fmt.Errorf("%w: bad preset %q", ErrInvalidCommand, arg)
		}
		return Command{Kind: CmdTipPreset, Preset: k}, nil
	}

	pct, err := strconv.ParseFloat(strings.TrimSuffix(arg, "%"), 64)
	if err != nil {
		return Command{}, fmt.Errorf("%w: bad tip %q", ErrInvalidCommand, arg)
	}
	tip, err := domain.Percentage(pct / 100)
	if err != nil {
		return Command{}, fmt.Errorf("%w: %w", ErrInvalidCommand, err)
	}
	return Command{Kind: CmdTip, Tip: tip}, nil
}

func parseSplit(args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, fmt.Errorf("%w: split needs a value", ErrInvalidCommand)
	}
	switch args[0] {
	case "+":
		return Command{Kind: CmdIncrement}, nil
	case "-":
		return Command{Kind: CmdDecrement}, nil
	}
	n, err := session.ParseSplit(args[0])
	if err != nil {
		return Command{}, fmt.Errorf("%w: %w", ErrInvalidCommand, err)
	}
	return Command{Kind: CmdSplit, Split: n}, nil
}

// ParseCustomTip reads a fixed tip amount as typed into the custom prompt.
func ParseCustomTip(text string) (domain.TipSelection, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return domain.NoTip, fmt.Errorf("%w: custom tip %q is not a number", ErrInvalidCommand, text)
	}
	tip, err := domain.Fixed(v)
	if err != nil {
		return domain.NoTip, fmt.Errorf("%w: %w", ErrInvalidCommand, err)
	}
	return tip, nil
}

// HelpText lists the commands and the configured presets.
func HelpText(presets []domain.TipSelection) string {
	var b strings.Builder
	b.WriteString("Commands:\n")
	b.WriteString("  bill <amount>        set the bill\n")
	b.WriteString("  tip <n>%             percentage tip\n")
	b.WriteString("  tip #<k>             preset tip:")
	for i, p := range presets {
		fmt.Fprintf(&b, " #%d=%s", i+1, p)
	}
	b.WriteString("\n")
	b.WriteString("  tip custom [amount]  fixed tip amount\n")
	b.WriteString("  tip none             no tip\n")
	b.WriteString("  split <n> | + | -    party size (at least 1)\n")
	b.WriteString("  reset                clear everything\n")
	b.WriteString("  show | help | quit")
	return b.String()
}
