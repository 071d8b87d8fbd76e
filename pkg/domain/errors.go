package domain

import "errors"

// ErrInvalidTip is returned when a tip selection is built from an out-of-range value.
var ErrInvalidTip = errors.New("invalid tip")

// ErrInvalidSplit is returned when a party size cannot be interpreted as an integer.
var ErrInvalidSplit = errors.New("invalid split")
