package fixedpoint

import (
	"math"
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func BenchmarkMul(b *testing.B) {
	x := MustNewFromString("88.123456")
	y := MustNewFromString("-12.5")

	b.Run("mul", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = x.Mul(y)
		}
	})

	b.Run("div", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = x.Div(y)
		}
	})
}

func TestNewFromInt(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 42, -2000, 123456789} {
		t.Run(strconv.FormatInt(n, 10), func(t *testing.T) {
			v := NewFromInt(n)
			assert.Equal(t, n*DefaultPow, v.Scaled())
			assert.Equal(t, strconv.FormatInt(n, 10), v.String())
			assert.True(t, v.IsInteger())
			assert.Equal(t, n, v.Int64())
		})
	}
}

func TestNewFromIntOverflow(t *testing.T) {
	_, err := NewFromIntChecked(math.MaxInt64 / 10)
	assert.True(t, errors.Is(err, ErrOverflow))

	_, err = NewFromIntChecked(math.MinInt64 / 10)
	assert.True(t, errors.Is(err, ErrOverflow))

	assert.Panics(t, func() {
		NewFromInt(math.MaxInt64)
	})

	v, err := NewFromIntChecked(maxInt)
	require.NoError(t, err)
	assert.Equal(t, int64(maxInt), v.Int64())
}

func TestNewFromFloat(t *testing.T) {
	assert.Equal(t, Value(1500000), NewFromFloat(1.5))
	assert.Equal(t, Value(-1500000), NewFromFloat(-1.5))
	assert.Equal(t, Value(3), NewFromFloat(0.0000025))
	assert.Equal(t, Value(-3), NewFromFloat(-0.0000025))
	assert.Equal(t, Value(333333), NewFromFloat(1.0/3.0))
	assert.InDelta(t, 10.55, NewFromFloat(10.55).Float64(), 1e-9)

	assert.Panics(t, func() {
		NewFromFloat(math.NaN())
	})
	assert.Panics(t, func() {
		NewFromFloat(math.Inf(1))
	})
}

func TestArithmetic(t *testing.T) {
	a := MustNewFromString("10.55")
	b := MustNewFromString("-2.5")

	assert.Equal(t, "8.05", a.Add(b).String())
	assert.Equal(t, "13.05", a.Sub(b).String())
	assert.Equal(t, "-26.375", a.Mul(b).String())
	assert.Equal(t, "-4.22", a.Div(b).String())
	assert.Equal(t, "111.3025", a.Mul(a).String())
}

func TestMulTruncatesTowardZero(t *testing.T) {
	tiny := MustNewFromString("0.000001")
	half := MustNewFromString("0.5")

	assert.Equal(t, Zero, tiny.Mul(half))
	assert.Equal(t, Zero, tiny.Neg().Mul(half))
	assert.Equal(t, "-0.000001", MustNewFromString("-0.000003").Mul(half).String())
}

func TestDivTruncatesTowardZero(t *testing.T) {
	three := NewFromInt(3)
	assert.Equal(t, "0.333333", One.Div(three).String())
	assert.Equal(t, "-0.333333", One.Neg().Div(three).String())
	assert.Equal(t, "0.666666", NewFromInt(2).Div(three).String())
	assert.Equal(t, "-0.666666", NewFromInt(2).Div(three.Neg()).String())
}

func TestDivisionByZero(t *testing.T) {
	assert.Equal(t, NewFromInt(0), NewFromInt(5).Div(NewFromInt(0)))
	assert.Equal(t, Zero, MustNewFromString("-1.25").Div(Zero))

	_, err := NewFromInt(5).DivChecked(Zero)
	assert.True(t, errors.Is(err, ErrDivisionByZero))
}

func TestWideIntermediate(t *testing.T) {
	// the scaled product of these exceeds int64 before the scale is removed
	a := NewFromInt(3_000_000)
	b := NewFromInt(3_000_000)
	v, err := a.MulChecked(b)
	require.NoError(t, err)
	assert.Equal(t, "9000000000000", v.String())

	v, err = NewFromInt(10_000_000_000).DivChecked(MustNewFromString("0.001"))
	assert.True(t, errors.Is(err, ErrOverflow))
	assert.Equal(t, Zero, v)

	v, err = NewFromInt(9_000_000).DivChecked(MustNewFromString("0.001"))
	require.NoError(t, err)
	assert.Equal(t, "9000000000", v.String())

	_, err = NewFromInt(5_000_000).MulChecked(NewFromInt(5_000_000))
	assert.True(t, errors.Is(err, ErrOverflow))

	assert.Panics(t, func() {
		NewFromInt(5_000_000).Mul(NewFromInt(5_000_000))
	})
}

func TestAddOverflow(t *testing.T) {
	_, err := Value(math.MaxInt64).AddChecked(Value(1))
	assert.True(t, errors.Is(err, ErrOverflow))

	_, err = Value(math.MinInt64).SubChecked(Value(1))
	assert.True(t, errors.Is(err, ErrOverflow))

	v, err := Value(math.MaxInt64).SubChecked(Value(1))
	require.NoError(t, err)
	assert.Equal(t, Value(math.MaxInt64-1), v)
}

func TestNegIsInvolution(t *testing.T) {
	for _, s := range []string{"0", "1", "-1", "0.000001", "-0.5", "1999.999999", "-2000"} {
		v := MustNewFromString(s)
		assert.Equal(t, v, v.Neg().Neg(), s)
	}
}

func TestCompare(t *testing.T) {
	a := MustNewFromString("1.5")
	b := MustNewFromString("2")

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, a.Lt(b))
	assert.True(t, a.Lte(b))
	assert.True(t, a.Lte(a))
	assert.True(t, b.Gt(a))
	assert.True(t, b.Gte(b))
	assert.True(t, a.Eq(MustNewFromString("1.500")))
	assert.False(t, a.Eq(b))
}

func TestUtilities(t *testing.T) {
	v := MustNewFromString("-3.75")
	assert.Equal(t, -1, v.Sign())
	assert.Equal(t, "3.75", v.Abs().String())
	assert.Equal(t, int64(-3), v.Int64())
	assert.Equal(t, -3, v.Int())
	assert.False(t, v.IsInteger())
	assert.False(t, v.IsZero())
	assert.True(t, Zero.IsZero())
	assert.Equal(t, 0, Zero.Sign())
	assert.InDelta(t, -3.75, v.Float64(), 1e-9)
	assert.Equal(t, Value(42), NewFromScaled(42))
}
