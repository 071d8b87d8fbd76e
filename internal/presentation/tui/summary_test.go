package tui

import (
	"bytes"
	"testing"

	"github.com/aretw0/splitcalc/internal/presentation/format"
	"github.com/aretw0/splitcalc/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	f := format.New("en-US", "$")
	state := domain.SessionState{Bill: domain.SomeBill(200), Tip: domain.MustFixed(20), Split: 5}
	result := domain.CalculationResult{AmountPerPerson: 44, TotalBill: 220, TotalTip: 20}

	md := Summary(f, state, result)
	assert.Contains(t, md, "## $44 per person")
	assert.Contains(t, md, "| Bill | $200 |")
	assert.Contains(t, md, "| Tip | $20 (custom) |")
	assert.Contains(t, md, "| Split | 5 |")
	assert.Contains(t, md, "| Total bill | $220 |")
}

func TestSummary_Empty(t *testing.T) {
	f := format.New("en-US", "$")
	md := Summary(f, domain.NewSessionState(), domain.ZeroResult)
	assert.Contains(t, md, "| Bill | - |")
	assert.Contains(t, md, "| Tip | - |")
	assert.Contains(t, md, "## $0 per person")
}

func TestPlainRenderer(t *testing.T) {
	render := NewPlainRenderer()
	out, err := render("## $44 per person")
	require.NoError(t, err)
	assert.Contains(t, out, "$44 per person")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3")
	assert.Contains(t, buf.String(), "v1.2.3")
}
