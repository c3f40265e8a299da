package calc

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/c9s/fraccalc/pkg/fixedpoint"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenError reports an operand that could not be parsed. It matches
// ErrInvalidToken and unwraps to the *fixedpoint.ParseError of the failing
// part, so fixedpoint.ErrSyntax and fixedpoint.ErrOverflow stay visible.
type TokenError struct {
	Token string

	// Part names the piece of a fraction or mixed number that failed:
	// "whole part", "fraction", "numerator" or "denominator". Empty for plain
	// decimals.
	Part string

	Err error
}

func (e *TokenError) Error() string {
	if e.Part == "" {
		return fmt.Sprintf("invalid token %q: %v", e.Token, e.Err)
	}
	return fmt.Sprintf("invalid token %q: %s: %v", e.Token, e.Part, e.Err)
}

func (e *TokenError) Unwrap() error { return e.Err }

func (e *TokenError) Is(target error) bool { return target == ErrInvalidToken }

// ParseToken converts one operand into a value. An operand is a plain decimal
// ("2.5"), a simple fraction ("3/4") or a mixed number ("1 1/2").
//
// A zero denominator drops the fraction: "3/0" is 3 and "1 3/0" is 1.
func ParseToken(token string) (fixedpoint.Value, error) {
	token = strings.TrimSpace(token)

	if space := strings.IndexByte(token, ' '); space >= 0 {
		return parseMixed(token, token[:space], strings.TrimSpace(token[space+1:]))
	}

	if strings.IndexByte(token, '/') >= 0 {
		numerator, denominator, err := parseFraction(token, token)
		if err != nil {
			return fixedpoint.Zero, err
		}

		if denominator.IsZero() {
			return numerator, nil
		}

		return numerator.DivChecked(denominator)
	}

	v, err := fixedpoint.NewFromString(token)
	if err != nil {
		return fixedpoint.Zero, &TokenError{Token: token, Err: err}
	}
	return v, nil
}

func MustParseToken(token string) fixedpoint.Value {
	v, err := ParseToken(token)
	if err != nil {
		panic(err)
	}
	return v
}

// parseMixed combines a whole part with an optional fraction. The fraction is
// added in the direction that grows the magnitude of the whole part.
//
// A whole part typed as "-0" parses to zero and so counts as non-negative
// here: "-0 1/2" is 0.5, not -0.5.
func parseMixed(token, wholeText, rest string) (fixedpoint.Value, error) {
	whole, err := fixedpoint.NewFromString(wholeText)
	if err != nil {
		return fixedpoint.Zero, &TokenError{Token: token, Part: "whole part", Err: err}
	}

	if strings.IndexByte(rest, '/') < 0 {
		if _, err := fixedpoint.NewFromString(rest); err != nil {
			return fixedpoint.Zero, &TokenError{Token: token, Part: "fraction", Err: err}
		}
		return whole, nil
	}

	numerator, denominator, err := parseFraction(token, rest)
	if err != nil {
		return fixedpoint.Zero, err
	}

	if denominator.IsZero() {
		return whole, nil
	}

	frac, err := numerator.DivChecked(denominator)
	if err != nil {
		return fixedpoint.Zero, err
	}

	if whole.Sign() >= 0 {
		return whole.AddChecked(frac)
	}
	return whole.SubChecked(frac)
}

func parseFraction(token, s string) (numerator, denominator fixedpoint.Value, err error) {
	slash := strings.IndexByte(s, '/')
	numerator, err = fixedpoint.NewFromString(strings.TrimSpace(s[:slash]))
	if err != nil {
		return numerator, denominator, &TokenError{Token: token, Part: "numerator", Err: err}
	}

	denominator, err = fixedpoint.NewFromString(strings.TrimSpace(s[slash+1:]))
	if err != nil {
		return numerator, denominator, &TokenError{Token: token, Part: "denominator", Err: err}
	}

	return numerator, denominator, nil
}
