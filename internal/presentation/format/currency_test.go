package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency_EnUS(t *testing.T) {
	f := New("en-US", "$")

	assert.Equal(t, "$0", f.Currency(0))
	assert.Equal(t, "$44", f.Currency(44))
	assert.Equal(t, "$27.50", f.Currency(27.5))
	assert.Equal(t, "$1,234.50", f.Currency(1234.5))
	assert.Equal(t, "$1,000,000", f.Currency(1e6))
	assert.Equal(t, "-$3.25", f.Currency(-3.25))
	assert.Equal(t, "$-", f.Currency(math.NaN()))
}

func TestCurrency_BadLocaleFallsBack(t *testing.T) {
	f := New("not a locale!", "$")
	assert.Equal(t, "$12.10", f.Currency(12.1))
}

func TestPercent(t *testing.T) {
	f := New("en-US", "$")
	assert.Equal(t, "15%", f.Percent(0.15))
	assert.Equal(t, "12.5%", f.Percent(0.125))
}
