package runtime

import "github.com/aretw0/splitcalc/pkg/domain"

// DeriveTip returns the tip amount for a bill and selection.
// No tip applies without a bill, whatever the selection.
func DeriveTip(bill domain.Bill, tip domain.TipSelection) float64 {
	if !bill.Present {
		return 0
	}
	switch tip.Kind() {
	case domain.TipPercentage:
		return bill.Amount * tip.Rate()
	case domain.TipFixed:
		return tip.Amount()
	default:
		return 0
	}
}

// ComputeResult derives a fresh result from the latest inputs.
// split is expected to be clamped to >= 1 by the channel that produced it.
func ComputeResult(bill domain.Bill, tip domain.TipSelection, split int) domain.CalculationResult {
	tipAmount := DeriveTip(bill, tip)
	totalBill := bill.OrZero() + tipAmount
	return domain.CalculationResult{
		AmountPerPerson: totalBill / float64(split),
		TotalBill:       totalBill,
		TotalTip:        tipAmount,
	}
}
