package domain

// DefaultTipPresets mirrors the preset buttons of the calculator: 10%, 15%, 20%.
var DefaultTipPresets = []float64{0.10, 0.15, 0.20}
