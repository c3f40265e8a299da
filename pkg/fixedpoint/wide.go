package fixedpoint

import (
	"math"
	"math/bits"

	"github.com/pkg/errors"
)

// mulDiv returns a × b / c, truncated toward zero.
// The product is kept as a 128-bit unsigned magnitude (hi, lo) so it cannot
// overflow before the division; only the quotient is narrowed back to int64.
// c must not be zero.
func mulDiv(a, b, c int64) (int64, error) {
	neg := (a < 0) != (b < 0)
	if c < 0 {
		neg = !neg
	}

	hi, lo := bits.Mul64(abs64(a), abs64(b))
	divisor := abs64(c)

	// bits.Div64 panics when the quotient does not fit 64 bits
	if hi >= divisor {
		return 0, errors.Wrapf(ErrOverflow, "%d * %d / %d", a, b, c)
	}

	q, _ := bits.Div64(hi, lo, divisor)
	return narrow(q, neg)
}

// narrow converts a magnitude and sign back into the base width.
func narrow(q uint64, neg bool) (int64, error) {
	if neg {
		if q > 1<<63 {
			return 0, ErrOverflow
		}
		return -int64(q), nil
	}

	if q > math.MaxInt64 {
		return 0, ErrOverflow
	}
	return int64(q), nil
}

func abs64(x int64) uint64 {
	if x < 0 {
		// also correct for math.MinInt64, whose negation wraps to itself
		return uint64(-x)
	}
	return uint64(x)
}

func add64(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, errors.Wrapf(ErrOverflow, "%d + %d", a, b)
	}
	return a + b, nil
}

func sub64(a, b int64) (int64, error) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, errors.Wrapf(ErrOverflow, "%d - %d", a, b)
	}
	return a - b, nil
}
