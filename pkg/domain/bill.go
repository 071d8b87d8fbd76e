package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Bill is the latest parsed bill amount. The zero value is an absent bill.
type Bill struct {
	Amount  float64
	Present bool
}

// NoBill is the absent bill, used before the user enters anything and after a reset.
var NoBill = Bill{}

// SomeBill wraps a known amount.
func SomeBill(amount float64) Bill {
	return Bill{Amount: amount, Present: true}
}

// OrZero returns the amount, treating an absent bill as 0.
func (b Bill) OrZero() float64 {
	if !b.Present {
		return 0
	}
	return b.Amount
}

func (b Bill) String() string {
	if !b.Present {
		return "none"
	}
	return strconv.FormatFloat(b.Amount, 'f', -1, 64)
}

// ParseBill converts raw input text into a Bill.
// Empty, unparseable, negative or non-finite input resolves to NoBill.
func ParseBill(text string) Bill {
	text = strings.TrimSpace(text)
	if text == "" {
		return NoBill
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return NoBill
	}
	return SomeBill(v)
}

// MarshalJSON encodes an absent bill as null.
func (b Bill) MarshalJSON() ([]byte, error) {
	if !b.Present {
		return []byte("null"), nil
	}
	return json.Marshal(b.Amount)
}

// UnmarshalJSON accepts null, a number, or a string run through ParseBill.
func (b *Bill) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = NoBill
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*b = ParseBill(s)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*b = ParseBill(strconv.FormatFloat(v, 'f', -1, 64))
	return nil
}
