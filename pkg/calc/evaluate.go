package calc

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/c9s/fraccalc/pkg/fixedpoint"
)

var log = logrus.WithField("component", "calc")

// Result carries the folded value together with the conditions the default
// policies hid from the caller.
type Result struct {
	Value fixedpoint.Value

	// DivisionByZero is set when any division had a zero divisor and was
	// replaced by zero.
	DivisionByZero bool

	// Operands counts the segments that were parsed and folded.
	Operands int
}

type Option func(e *Evaluator)

// WithStrictDivision makes a zero divisor fail the evaluation with
// fixedpoint.ErrDivisionByZero instead of producing zero.
func WithStrictDivision() Option {
	return func(e *Evaluator) {
		e.strictDivision = true
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

// Evaluator folds flat expressions strictly left to right. There is no
// operator precedence and no parentheses: "2+3*4" is (2+3)*4 = 20.
//
// An Evaluator holds only its options and may be shared between goroutines.
type Evaluator struct {
	strictDivision bool
	logger         logrus.FieldLogger
}

func NewEvaluator(options ...Option) *Evaluator {
	e := &Evaluator{logger: log}
	for _, option := range options {
		option(e)
	}
	return e
}

var defaultEvaluator = NewEvaluator()

// Evaluate evaluates expr with the default policies.
func Evaluate(expr string) (fixedpoint.Value, error) {
	result, err := defaultEvaluator.Evaluate(expr)
	return result.Value, err
}

func MustEvaluate(expr string) fixedpoint.Value {
	v, err := Evaluate(expr)
	if err != nil {
		panic(err)
	}
	return v
}

// Evaluate scans expr once, splitting it at + - * / (and x, an alias for *).
// Every non-empty segment is parsed with ParseToken and folded into the
// running result with the operator seen before it. Two adjacent operators fold
// nothing but the later one replaces the pending operator, so "5*-2" is 5-2.
//
// A slash that follows a whole number and a space ("1 1/2") is a fraction bar
// inside a mixed number; every other slash divides.
func (e *Evaluator) Evaluate(expr string) (Result, error) {
	s := strings.ReplaceAll(expr, "x", "*")

	var result Result
	var op byte = '+'
	start := 0

	for i := 0; i <= len(s); i++ {
		end := i == len(s)

		var c byte
		if !end {
			c = s[i]
			if !isOperator(c) {
				continue
			}

			if c == '/' && isMixedWhole(s[start:i]) {
				continue
			}
		}

		if token := strings.TrimSpace(s[start:i]); token != "" {
			val, err := ParseToken(token)
			if err != nil {
				return Result{}, errors.Wrapf(err, "operand %d", result.Operands+1)
			}

			if err := e.fold(&result, op, val); err != nil {
				return Result{}, errors.Wrapf(err, "operand %d", result.Operands+1)
			}
		}

		op = c
		start = i + 1
	}

	return result, nil
}

func (e *Evaluator) fold(result *Result, op byte, val fixedpoint.Value) (err error) {
	acc := result.Value

	switch op {
	case '+':
		acc, err = acc.AddChecked(val)
	case '-':
		acc, err = acc.SubChecked(val)
	case '*':
		acc, err = acc.MulChecked(val)
	case '/':
		acc, err = acc.DivChecked(val)
		if errors.Is(err, fixedpoint.ErrDivisionByZero) {
			result.DivisionByZero = true
			if e.strictDivision {
				return err
			}

			e.logger.Debugf("division of %s by zero, substituting zero", result.Value)
			acc, err = fixedpoint.Zero, nil
		}
	}

	if err != nil {
		return err
	}

	e.logger.Debugf("%s %c %s = %s", result.Value, op, val, acc)
	result.Value = acc
	result.Operands++
	return nil
}

func isOperator(c byte) bool {
	return c == '+' || c == '-' || c == '*' || c == '/'
}

// isMixedWhole reports whether segment reads as the start of a mixed number,
// a whole part followed by a space and a numerator.
func isMixedWhole(segment string) bool {
	segment = strings.TrimSpace(segment)
	return strings.IndexByte(segment, ' ') > 0 && strings.IndexByte(segment, '/') < 0
}
