package calculator

import (
	"math"

	"github.com/shopspring/decimal"
)

// ResultPlaces is the number of fractional digits kept in a result.
const ResultPlaces = 10

// FormatResult renders v with at most ResultPlaces fractional digits,
// dropping trailing zeros and a trailing decimal point. NaN and infinities
// cannot be shown on the display and are reported as ErrDomain and ErrRange.
func FormatResult(v float64) (string, error) {
	switch {
	case math.IsNaN(v):
		return "", ErrDomain
	case math.IsInf(v, 0):
		return "", ErrRange
	}
	return decimal.NewFromFloat(v).Round(ResultPlaces).String(), nil
}
