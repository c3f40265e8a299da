package fixedpoint

import (
	"sort"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumAvg(t *testing.T) {
	values := []Value{
		MustNewFromString("1.5"),
		MustNewFromString("2.25"),
		MustNewFromString("-0.75"),
	}

	assert.Equal(t, "3", Sum(values).String())
	assert.Equal(t, "1", Avg(values).String())
	assert.Equal(t, Zero, Avg(nil))
	assert.Equal(t, Zero, Sum(nil))
}

func TestSumChecked(t *testing.T) {
	s, err := SumChecked([]Value{One, MustNewFromString("2.5")})
	require.NoError(t, err)
	assert.Equal(t, "3.5", s.String())

	_, err = SumChecked([]Value{NewFromInt(5_000_000_000_000), NewFromInt(5_000_000_000_000)})
	assert.True(t, errors.Is(err, ErrOverflow))
}

func TestMinMax(t *testing.T) {
	a, b := MustNewFromString("-1"), MustNewFromString("0.5")
	assert.Equal(t, b, Max(a, b))
	assert.Equal(t, a, Min(a, b))
}

func TestFilter(t *testing.T) {
	values := Slice{NewFromInt(2), MustNewFromString("-1.5"), Zero, MustNewFromString("0.25")}

	assert.Equal(t, Slice{NewFromInt(2), MustNewFromString("0.25")}, values.Filter(PositiveTester))
	assert.Equal(t, []Value{MustNewFromString("-1.5")}, Filter(values, NegativeTester))
	assert.Equal(t, Slice{NewFromInt(2), Zero}, values.Filter(IntegerTester))
	assert.Equal(t, "0.75", values.Sum().String())
}

func TestSort(t *testing.T) {
	values := Slice{NewFromInt(3), MustNewFromString("-0.5"), One}
	sort.Sort(values)
	assert.Equal(t, Slice{MustNewFromString("-0.5"), One, NewFromInt(3)}, values)

	sort.Sort(Descending(values))
	assert.Equal(t, Slice{NewFromInt(3), One, MustNewFromString("-0.5")}, values)
}
