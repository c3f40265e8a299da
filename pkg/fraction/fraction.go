// Package fraction renders fixed-point results as simplified mixed numbers
// such as "1 1/2", the way a measuring cup or a ruler would show them.
package fraction

import (
	"strconv"
	"strings"

	"github.com/c9s/fraccalc/pkg/fixedpoint"
)

// SixtyFourths is the finest resolution used for display.
const SixtyFourths = 64

// Fraction is a rational number kept in lowest terms with a positive denominator.
type Fraction struct {
	Numerator   int64
	Denominator int64
}

// New returns numerator/denominator simplified. A zero denominator is
// replaced by one.
func New(numerator, denominator int64) Fraction {
	if denominator == 0 {
		denominator = 1
	}

	if denominator < 0 {
		numerator, denominator = -numerator, -denominator
	}

	if g := gcd(abs(numerator), denominator); g > 1 {
		numerator /= g
		denominator /= g
	}

	return Fraction{Numerator: numerator, Denominator: denominator}
}

func (f Fraction) Add(o Fraction) Fraction {
	return New(f.Numerator*o.Denominator+o.Numerator*f.Denominator, f.Denominator*o.Denominator)
}

func (f Fraction) Sub(o Fraction) Fraction {
	return New(f.Numerator*o.Denominator-o.Numerator*f.Denominator, f.Denominator*o.Denominator)
}

func (f Fraction) Mul(o Fraction) Fraction {
	return New(f.Numerator*o.Numerator, f.Denominator*o.Denominator)
}

// Div divides f by o. A zero o leaves a zero denominator, which New turns
// into one, so the result is f's numerator times o's denominator.
func (f Fraction) Div(o Fraction) Fraction {
	return New(f.Numerator*o.Denominator, f.Denominator*o.Numerator)
}

func (f Fraction) Float64() float64 {
	return float64(f.Numerator) / float64(f.Denominator)
}

// Value converts f back to a fixed-point value, truncating toward zero. It
// returns fixedpoint.ErrOverflow when the whole part is out of range.
func (f Fraction) Value() (fixedpoint.Value, error) {
	if f.Denominator == 0 {
		return fixedpoint.Zero, fixedpoint.ErrDivisionByZero
	}

	whole, err := fixedpoint.NewFromIntChecked(f.Numerator / f.Denominator)
	if err != nil {
		return fixedpoint.Zero, err
	}

	// remainder and denominator as raw scaled integers: the quotient is
	// remainder*1e6/denominator, below one in magnitude
	rem := fixedpoint.NewFromScaled(f.Numerator % f.Denominator)
	frac, err := rem.DivChecked(fixedpoint.NewFromScaled(f.Denominator))
	if err != nil {
		return fixedpoint.Zero, err
	}

	return whole.AddChecked(frac)
}

// FromValue returns v rounded to the nearest 1/denominator, half away from
// zero. denominator must be in (0, 1e6].
func FromValue(v fixedpoint.Value, denominator int64) Fraction {
	scaled := v.Scaled()
	neg := scaled < 0
	if neg {
		scaled = -scaled
	}

	whole, frac := scaled/fixedpoint.DefaultPow, scaled%fixedpoint.DefaultPow
	numerator := whole*denominator + (frac*denominator*2+fixedpoint.DefaultPow)/(2*fixedpoint.DefaultPow)
	if neg {
		numerator = -numerator
	}

	return New(numerator, denominator)
}

// Exact reports whether v is representable as a multiple of 1/denominator.
func Exact(v fixedpoint.Value, denominator int64) bool {
	fv, err := FromValue(v, denominator).Value()
	return err == nil && fv == v
}

// String formats f as a mixed number: "1 1/2", "-3/4", "2" or "0".
func (f Fraction) String() string {
	n, d := abs(f.Numerator), f.Denominator
	w, r := n/d, n%d

	if w == 0 && r == 0 {
		return "0"
	}

	var sb strings.Builder
	if f.Numerator < 0 {
		sb.WriteByte('-')
	}

	if w != 0 {
		sb.WriteString(strconv.FormatInt(w, 10))
	}

	if r != 0 {
		if w != 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatInt(r, 10))
		sb.WriteByte('/')
		sb.WriteString(strconv.FormatInt(d, 10))
	}

	return sb.String()
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
