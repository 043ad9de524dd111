package planning

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	// Epsilon is the tolerance under which a value is treated as zero.
	Epsilon = 1e-9

	// ReportDecimals is the precision of every reported figure.
	ReportDecimals int32 = 2

	// epsilonDecimals is the scale matching Epsilon.
	epsilonDecimals int32 = 9
)

// Round rounds x half away from zero to the given number of decimals.
// Non-finite input yields 0.
func Round(x float64, decimals int32) float64 {
	if !finite(x) {
		return 0
	}
	return decimal.NewFromFloat(x).Round(decimals).InexactFloat64()
}

// Floor truncates x toward zero at the given number of decimals.
//
// x is first snapped to Epsilon precision, so a product such as 80*6.65 that
// lands a hair below 532 in binary still floors to 532.
func Floor(x float64, decimals int32) float64 {
	if !finite(x) {
		return 0
	}
	return decimal.NewFromFloat(x).Round(epsilonDecimals).Truncate(decimals).InexactFloat64()
}

// IsZero reports whether |x| < Epsilon.
func IsZero(x float64) bool {
	return math.Abs(x) < Epsilon
}

// Div divides a by b, yielding 0 when b is zero.
func Div(a, b float64) float64 {
	if IsZero(b) {
		return 0
	}
	return a / b
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
