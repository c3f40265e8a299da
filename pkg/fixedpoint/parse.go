package fixedpoint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var ErrSyntax = errors.New("invalid syntax")

// ParseError describes a string that could not be converted into a Value.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fixedpoint: parsing %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewFromString parses a decimal of the form [-]digits[.digits].
//
// Fractional digits past the sixth are truncated, not rounded. When the text
// starts with "-" and the whole part is zero ("-0.5", "-.5") the sign comes
// from the leading minus, since the whole part has none of its own.
func NewFromString(input string) (Value, error) {
	dot := strings.IndexByte(input, '.')
	if dot < 0 {
		whole, err := parseWhole(input, false)
		if err != nil {
			return Zero, &ParseError{Input: input, Err: err}
		}

		v, err := NewFromIntChecked(whole)
		if err != nil {
			return Zero, &ParseError{Input: input, Err: ErrOverflow}
		}
		return v, nil
	}

	wholeText, fracText := input[:dot], input[dot+1:]
	if len(strings.TrimPrefix(wholeText, "-")) == 0 && len(fracText) == 0 {
		return Zero, &ParseError{Input: input, Err: ErrSyntax}
	}

	whole, err := parseWhole(wholeText, true)
	if err != nil {
		return Zero, &ParseError{Input: input, Err: err}
	}

	frac, err := parseFraction(fracText)
	if err != nil {
		return Zero, &ParseError{Input: input, Err: err}
	}

	if strings.HasPrefix(input, "-") && whole == 0 {
		return Value(-frac), nil
	}

	scaledWhole, err := NewFromIntChecked(whole)
	if err != nil {
		return Zero, &ParseError{Input: input, Err: ErrOverflow}
	}

	var scaled int64
	if whole < 0 {
		scaled, err = sub64(int64(scaledWhole), frac)
	} else {
		scaled, err = add64(int64(scaledWhole), frac)
	}

	if err != nil {
		return Zero, &ParseError{Input: input, Err: ErrOverflow}
	}

	return Value(scaled), nil
}

func MustNewFromString(input string) Value {
	v, err := NewFromString(input)
	if err != nil {
		panic(err)
	}
	return v
}

// parseWhole parses an optionally negative run of digits. An empty digit run
// is only accepted when allowEmpty is set and means zero.
func parseWhole(s string, allowEmpty bool) (int64, error) {
	digits := strings.TrimPrefix(s, "-")
	if len(digits) == 0 {
		if allowEmpty {
			return 0, nil
		}
		return 0, ErrSyntax
	}

	if !isDigits(digits) {
		return 0, ErrSyntax
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrOverflow
	}

	return n, nil
}

// parseFraction right-pads s with zeros or truncates it to DefaultPrecision digits.
func parseFraction(s string) (int64, error) {
	if !isDigits(s) {
		return 0, ErrSyntax
	}

	if len(s) > DefaultPrecision {
		s = s[:DefaultPrecision]
	} else if len(s) < DefaultPrecision {
		s += strings.Repeat("0", DefaultPrecision-len(s))
	}

	return strconv.ParseInt(s, 10, 64)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
