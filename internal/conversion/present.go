package conversion

import (
	"math"
	"strconv"
	"strings"

	"easyconvert.app/internal/units"
)

const (
	scientificAbove = 1e6
	scientificBelow = 1e-3
)

// ShortenNumber formats a converted value for display. Magnitudes of at least a million, or
// nonzero magnitudes below 0.001, use scientific notation with two fractional digits
// ("1.23e+6"); everything else is rounded to three decimals with trailing zeros dropped.
func ShortenNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	abs := math.Abs(v)
	if abs >= scientificAbove || (abs > 0 && abs < scientificBelow) {
		return toExponential(v, 2)
	}

	rounded := roundHalfUp(v*1000) / 1000
	if rounded == 0 {
		rounded = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// roundHalfUp rounds to the nearest integer, ties toward positive infinity.
func roundHalfUp(x float64) float64 {
	f := math.Floor(x)
	if x-f >= 0.5 {
		return f + 1
	}
	return f
}

// toExponential renders v as d.dd…e±x with an unpadded exponent. Exact ties round away from
// zero, where strconv would round to even.
func toExponential(v float64, digits int) string {
	s := strconv.FormatFloat(v, 'e', digits, 64)
	if isExponentTie(v, digits) {
		s = roundTieUp(math.Abs(v), digits)
		if v < 0 {
			s = "-" + s
		}
	}

	mantissa, exp, _ := strings.Cut(s, "e")
	n, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	if n < 0 {
		return mantissa + "e-" + strconv.Itoa(-n)
	}
	return mantissa + "e+" + strconv.Itoa(n)
}

// isExponentTie reports whether the digits after the kept ones are exactly "5000…".
func isExponentTie(v float64, digits int) bool {
	wide := strconv.FormatFloat(math.Abs(v), 'e', 30, 64)
	mantissa, _, _ := strings.Cut(wide, "e")
	frac := mantissa[2:]
	return frac[digits] == '5' && strings.Trim(frac[digits+1:], "0") == ""
}

func roundTieUp(abs float64, digits int) string {
	wide := strconv.FormatFloat(abs, 'e', 30, 64)
	mantissa, exp, _ := strings.Cut(wide, "e")
	n, _ := strconv.Atoi(exp)

	kept, _ := strconv.Atoi(mantissa[:1] + mantissa[2:2+digits])
	kept++
	scale := int(math.Pow10(digits + 1))
	if kept >= scale {
		kept /= 10
		n++
	}
	ds := strconv.Itoa(kept)
	return ds[:1] + "." + ds[1:] + "e" + strconv.Itoa(n)
}

// isOne reports whether a displayed numeral denotes exactly one, which selects the singular name.
func isOne(numeral string) bool {
	f, err := strconv.ParseFloat(numeral, 64)
	return err == nil && f == 1
}

// DisplayName renders a resolved unit, singular when numeral is exactly 1.
func DisplayName(m units.Match, numeral string) string {
	prefix := ""
	if m.Prefix != nil {
		prefix = m.Prefix.DisplayName
	}
	return m.Unit.Name(prefix, !isOne(numeral))
}
