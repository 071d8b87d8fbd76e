package domain

// CalculationResult is derived on every recompute and never mutated.
type CalculationResult struct {
	AmountPerPerson float64 `json:"amount_per_person"`
	TotalBill       float64 `json:"total_bill"`
	TotalTip        float64 `json:"total_tip"`
}

// ZeroResult is what the view shows before any input and right after a reset.
var ZeroResult = CalculationResult{}
