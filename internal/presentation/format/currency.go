// Package format renders calculator amounts for display.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter turns amounts into locale-grouped currency strings.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// New builds a Formatter. An unparseable locale falls back to en-US.
func New(locale, symbol string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return &Formatter{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}
}

// Currency formats v with the currency symbol and grouping separators.
// Whole amounts drop the fraction digits: 44 prints as "$44", 27.5 as "$27.50".
func (f *Formatter) Currency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return f.symbol + "-"
	}
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	if isWhole(v) {
		return sign + f.symbol + f.printer.Sprintf("%.0f", v)
	}
	return sign + f.symbol + f.printer.Sprintf("%.2f", v)
}

// Percent formats a rate such as 0.15 as "15%".
func (f *Formatter) Percent(rate float64) string {
	return f.printer.Sprintf("%.4g%%", rate*100)
}

func isWhole(v float64) bool {
	return v == 0 || v == math.Trunc(v)
}
