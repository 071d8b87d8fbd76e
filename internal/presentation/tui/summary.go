package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/splitcalc/internal/presentation/format"
	"github.com/aretw0/splitcalc/pkg/domain"
)

// Summary builds the markdown table shown after every command.
func Summary(f *format.Formatter, state domain.SessionState, result domain.CalculationResult) string {
	var b strings.Builder

	bill := "-"
	if state.Bill.Present {
		bill = f.Currency(state.Bill.Amount)
	}
	tip := "-"
	switch state.Tip.Kind() {
	case domain.TipPercentage:
		tip = f.Percent(state.Tip.Rate())
	case domain.TipFixed:
		tip = f.Currency(state.Tip.Amount()) + " (custom)"
	}

	fmt.Fprintf(&b, "## %s per person\n\n", f.Currency(result.AmountPerPerson))
	b.WriteString("| | |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Bill | %s |\n", bill)
	fmt.Fprintf(&b, "| Tip | %s |\n", tip)
	fmt.Fprintf(&b, "| Split | %d |\n", state.Split)
	fmt.Fprintf(&b, "| Total tip | %s |\n", f.Currency(result.TotalTip))
	fmt.Fprintf(&b, "| Total bill | %s |\n", f.Currency(result.TotalBill))
	return b.String()
}
