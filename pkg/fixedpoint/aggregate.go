package fixedpoint

// Sum adds all values. It panics when the total overflows.
func Sum(values []Value) (s Value) {
	s = Zero
	for _, value := range values {
		s = s.Add(value)
	}
	return s
}

// SumChecked adds all values and returns ErrOverflow instead of panicking.
func SumChecked(values []Value) (s Value, err error) {
	s = Zero
	for _, value := range values {
		if s, err = s.AddChecked(value); err != nil {
			return Zero, err
		}
	}
	return s, nil
}

// Avg returns the truncated mean of values, or Zero for an empty slice.
func Avg(values []Value) (avg Value) {
	if len(values) == 0 {
		return Zero
	}

	s := Sum(values)
	avg = s.Div(NewFromInt(int64(len(values))))
	return avg
}

func Max(a, b Value) Value {
	if a > b {
		return a
	}
	return b
}

func Min(a, b Value) Value {
	if a < b {
		return a
	}
	return b
}

type Tester func(value Value) bool

func PositiveTester(value Value) bool {
	return value.Sign() > 0
}

func NegativeTester(value Value) bool {
	return value.Sign() < 0
}

func IntegerTester(value Value) bool {
	return value.IsInteger()
}

func Filter(values []Value, f Tester) (slice []Value) {
	for _, v := range values {
		if f(v) {
			slice = append(slice, v)
		}
	}
	return slice
}

// Slice sorts ascending by default.
type Slice []Value

func (s Slice) Len() int           { return len(s) }
func (s Slice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s Slice) Less(i, j int) bool { return s[i].Compare(s[j]) < 0 }

func (s Slice) Sum() Value { return Sum(s) }

func (s Slice) Filter(f Tester) Slice { return Filter(s, f) }

type Descending []Value

func (s Descending) Len() int           { return len(s) }
func (s Descending) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s Descending) Less(i, j int) bool { return s[i].Compare(s[j]) > 0 }
