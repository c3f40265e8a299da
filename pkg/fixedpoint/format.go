package fixedpoint

import (
	"strconv"
	"strings"
)

var pow10 = [...]uint64{1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6}

// String returns the shortest exact decimal form: no trailing fractional
// zeros, and no decimal point at all for whole numbers.
func (v Value) String() string {
	if v == 0 {
		return "0"
	}

	mag := abs64(int64(v))
	whole, frac := mag/DefaultPow, mag%DefaultPow

	var sb strings.Builder
	if v < 0 {
		sb.WriteByte('-')
	}
	sb.WriteString(strconv.FormatUint(whole, 10))

	if frac != 0 {
		sb.WriteByte('.')
		sb.WriteString(strings.TrimRight(padFraction(frac), "0"))
	}

	return sb.String()
}

// FormatString formats v with exactly prec fractional digits. Digits beyond
// prec are truncated. A negative prec truncates the whole part to a multiple
// of 10^-prec.
func (v Value) FormatString(prec int) string {
	mag := abs64(int64(v))
	whole, frac := mag/DefaultPow, mag%DefaultPow

	if prec <= 0 {
		if -prec < len(pow10) {
			p := pow10[-prec]
			whole = whole / p * p
		} else {
			whole = 0
		}
		return signed(v < 0 && whole != 0, strconv.FormatUint(whole, 10))
	}

	fracText := padFraction(frac)
	if prec < DefaultPrecision {
		fracText = fracText[:prec]
	} else {
		fracText += strings.Repeat("0", prec-DefaultPrecision)
	}

	nonZero := whole != 0 || strings.Trim(fracText, "0") != ""
	return signed(v < 0 && nonZero, strconv.FormatUint(whole, 10)+"."+fracText)
}

func padFraction(frac uint64) string {
	s := strconv.FormatUint(frac, 10)
	if len(s) < DefaultPrecision {
		s = strings.Repeat("0", DefaultPrecision-len(s)) + s
	}
	return s
}

func signed(neg bool, s string) string {
	if neg {
		return "-" + s
	}
	return s
}
