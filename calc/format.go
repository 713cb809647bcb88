package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultPrecision is the number of significant digits Format keeps.
const DefaultPrecision = 10

// Format renders v in general format with DefaultPrecision significant digits.
func Format(v float64) string { return FormatPrec(v, DefaultPrecision) }

// FormatPrec renders v with at most prec significant digits. Trailing zeros are dropped and
// scientific notation is used only when the exponent falls outside the digit budget.
func FormatPrec(v float64, prec int) string {
	if prec <= 0 {
		prec = DefaultPrecision
	}
	if math.IsNaN(v) {
		return "NaN"
	}
	if math.IsInf(v, 1) {
		return "+Inf"
	}
	if math.IsInf(v, -1) {
		return "-Inf"
	}
	if v == 0 {
		return "0"
	}
	return fmt.Sprintf("%.*g", prec, v)
}

// RadixView returns the binary and upper-case hexadecimal forms of v. ok is false when v is not
// an integer representable as int64, in which case the view stays blank.
func RadixView(v float64) (bin, hex string, ok bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return "", "", false
	}
	if v < math.MinInt64 || v >= 1<<63 {
		return "", "", false
	}
	n := int64(v)
	return strconv.FormatInt(n, 2), strings.ToUpper(strconv.FormatInt(n, 16)), true
}
