package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// TipKind tags the variant held by a TipSelection.
type TipKind int

const (
	// TipNone is the zero value and also stands for "no tip chosen yet".
	TipNone TipKind = iota
	TipPercentage
	TipFixed
)

func (k TipKind) String() string {
	switch k {
	case TipPercentage:
		return "percentage"
	case TipFixed:
		return "fixed"
	default:
		return "none"
	}
}

// TipSelection is either a percentage-of-bill tip or an absolute tip amount.
// Values are immutable; a new selection replaces the previous one wholesale.
type TipSelection struct {
	kind  TipKind
	value float64
}

// NoTip is the empty selection.
var NoTip = TipSelection{}

// Percentage builds a percentage tip. The rate is a fraction in (0,1].
func Percentage(rate float64) (TipSelection, error) {
	if math.IsNaN(rate) || rate <= 0 || rate > 1 {
		return NoTip, fmt.Errorf("%w: rate %v outside (0,1]", ErrInvalidTip, rate)
	}
	return TipSelection{kind: TipPercentage, value: rate}, nil
}

// Fixed builds an absolute tip. The amount must be finite and non-negative.
func Fixed(amount float64) (TipSelection, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return NoTip, fmt.Errorf("%w: amount %v must be a non-negative number", ErrInvalidTip, amount)
	}
	return TipSelection{kind: TipFixed, value: amount}, nil
}

// MustPercentage is like Percentage but panics on an invalid rate.
// Intended for constant presets.
func MustPercentage(rate float64) TipSelection {
	t, err := Percentage(rate)
	if err != nil {
		panic(err)
	}
	return t
}

// MustFixed is like Fixed but panics on an invalid amount.
func MustFixed(amount float64) TipSelection {
	t, err := Fixed(amount)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TipSelection) Kind() TipKind { return t.kind }

// Rate returns the fraction for a percentage tip, 0 otherwise.
func (t TipSelection) Rate() float64 {
	if t.kind != TipPercentage {
		return 0
	}
	return t.value
}

// Amount returns the absolute value for a fixed tip, 0 otherwise.
func (t TipSelection) Amount() float64 {
	if t.kind != TipFixed {
		return 0
	}
	return t.value
}

// IsNone reports whether no tip is selected.
func (t TipSelection) IsNone() bool { return t.kind == TipNone }

func (t TipSelection) String() string {
	switch t.kind {
	case TipPercentage:
		return strconv.FormatFloat(t.value*100, 'f', -1, 64) + "%"
	case TipFixed:
		return "fixed " + strconv.FormatFloat(t.value, 'f', -1, 64)
	default:
		return "none"
	}
}

type tipJSON struct {
	Kind  string  `json:"kind"`
	Value float64 `json:"value,omitempty"`
}

// MarshalJSON encodes the selection as {"kind": ..., "value": ...}.
func (t TipSelection) MarshalJSON() ([]byte, error) {
	return json.Marshal(tipJSON{Kind: t.kind.String(), Value: t.value})
}

// UnmarshalJSON decodes and validates a selection.
func (t *TipSelection) UnmarshalJSON(data []byte) error {
	var raw tipJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var (
		sel TipSelection
		err error
	)
	switch raw.Kind {
	case "", "none":
		sel = NoTip
	case "percentage":
		sel, err = Percentage(raw.Value)
	case "fixed":
		sel, err = Fixed(raw.Value)
	default:
		err = fmt.Errorf("%w: unknown kind %q", ErrInvalidTip, raw.Kind)
	}
	if err != nil {
		return err
	}
	*t = sel
	return nil
}
