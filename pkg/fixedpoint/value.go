package fixedpoint

import (
	"math"

	"github.com/pkg/errors"
)

// DefaultPrecision is the number of fractional decimal digits every Value carries.
const DefaultPrecision = 6

// DefaultPow is the scale between a Value and the real number it represents.
const DefaultPow = 1_000_000

const (
	maxInt = math.MaxInt64 / DefaultPow
	minInt = math.MinInt64 / DefaultPow
)

var (
	ErrOverflow       = errors.New("fixedpoint: value out of range")
	ErrDivisionByZero = errors.New("fixedpoint: division by zero")
)

// Value is a signed decimal number stored as an integer scaled by DefaultPow,
// so it always holds exactly six fractional digits.
//
// With an int64 base the usable magnitude is about ±9.2e12. Multiplication and
// division widen to 128 bits before removing the scale and narrow back with an
// overflow check.
type Value int64

var (
	Zero = Value(0)
	One  = Value(DefaultPow)
)

// NewFromScaled returns the Value whose scaled representation is exactly scaled.
func NewFromScaled(scaled int64) Value {
	return Value(scaled)
}

// NewFromIntChecked returns n as a Value, or ErrOverflow when n × DefaultPow
// does not fit the base width.
func NewFromIntChecked(n int64) (Value, error) {
	if n > maxInt || n < minInt {
		return Zero, errors.Wrapf(ErrOverflow, "integer %d", n)
	}

	return Value(n * DefaultPow), nil
}

// NewFromInt returns n as a Value. It panics when n is out of range.
func NewFromInt(n int64) Value {
	v, err := NewFromIntChecked(n)
	if err != nil {
		panic(err)
	}

	return v
}

// NewFromFloat rounds val to the nearest scaled integer, half away from zero.
// It panics for NaN, infinities and values outside the representable range.
func NewFromFloat(val float64) Value {
	scaled := math.Round(val * DefaultPow)
	if math.IsNaN(scaled) || scaled >= math.MaxInt64 || scaled < math.MinInt64 {
		panic(errors.Wrapf(ErrOverflow, "float %v", val))
	}

	return Value(int64(scaled))
}

// Scaled returns the raw integer representation.
func (v Value) Scaled() int64 {
	return int64(v)
}

// Float64 is meant for display and debugging, never for further exact arithmetic.
func (v Value) Float64() float64 {
	return float64(v) / DefaultPow
}

// Int64 returns the integer part, truncated toward zero.
func (v Value) Int64() int64 {
	return int64(v) / DefaultPow
}

func (v Value) Int() int {
	return int(v.Int64())
}

func (v Value) IsZero() bool {
	return v == 0
}

// IsInteger reports whether v has no fractional digits.
func (v Value) IsInteger() bool {
	return int64(v)%DefaultPow == 0
}

func (v Value) Sign() int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func (v Value) Abs() Value {
	if v < 0 {
		return v.Neg()
	}
	return v
}

func (v Value) Neg() Value {
	return -v
}

func (v Value) AddChecked(v2 Value) (Value, error) {
	r, err := add64(int64(v), int64(v2))
	return Value(r), err
}

func (v Value) SubChecked(v2 Value) (Value, error) {
	r, err := sub64(int64(v), int64(v2))
	return Value(r), err
}

// MulChecked returns (v × v2) / DefaultPow computed through a 128-bit
// intermediate. The scale division truncates toward zero.
func (v Value) MulChecked(v2 Value) (Value, error) {
	r, err := mulDiv(int64(v), int64(v2), DefaultPow)
	return Value(r), err
}

// DivChecked returns (v × DefaultPow) / v2 computed through a 128-bit
// intermediate, truncating toward zero. A zero divisor yields ErrDivisionByZero.
func (v Value) DivChecked(v2 Value) (Value, error) {
	if v2 == 0 {
		return Zero, ErrDivisionByZero
	}

	r, err := mulDiv(int64(v), DefaultPow, int64(v2))
	return Value(r), err
}

// Add panics on overflow. Use AddChecked for untrusted operands.
func (v Value) Add(v2 Value) Value {
	return must(v.AddChecked(v2))
}

func (v Value) Sub(v2 Value) Value {
	return must(v.SubChecked(v2))
}

func (v Value) Mul(v2 Value) Value {
	return must(v.MulChecked(v2))
}

// Div divides v by v2. Dividing by zero returns Zero instead of failing; callers
// that need to tell that case apart use DivChecked.
func (v Value) Div(v2 Value) Value {
	r, err := v.DivChecked(v2)
	if errors.Is(err, ErrDivisionByZero) {
		return Zero
	}

	return must(r, err)
}

func (v Value) Compare(v2 Value) int {
	switch {
	case v < v2:
		return -1
	case v > v2:
		return 1
	}
	return 0
}

func (v Value) Eq(v2 Value) bool  { return v == v2 }
func (v Value) Lt(v2 Value) bool  { return v < v2 }
func (v Value) Gt(v2 Value) bool  { return v > v2 }
func (v Value) Lte(v2 Value) bool { return v <= v2 }
func (v Value) Gte(v2 Value) bool { return v >= v2 }

func must(v Value, err error) Value {
	if err != nil {
		panic(err)
	}
	return v
}
