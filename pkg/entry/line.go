// Package entry accumulates keypresses into an expression the calculator can
// evaluate, rejecting keys that cannot lead to a well-formed entry.
package entry

import (
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidKey = errors.New("invalid key")

const operators = "+-*x/"

// Line is the expression being typed. The zero value is an empty line.
type Line struct {
	buf []rune
}

// Press appends key if it is admitted at the current position.
func (l *Line) Press(key rune) error {
	last := l.lastNonSpace()

	switch {
	case key >= '0' && key <= '9':

	case key == '.':
		if strings.ContainsRune(l.operand(), '.') {
			return errors.Wrap(ErrInvalidKey, "second decimal point in operand")
		}

	case key == ' ':
		if len(l.buf) == 0 || l.buf[len(l.buf)-1] == ' ' {
			return nil
		}

	case key == '-':
		if last != 0 && !isDigit(last) && last != '.' {
			return errors.Wrapf(ErrInvalidKey, "%q after %q", key, last)
		}

	case strings.ContainsRune(operators, key):
		if !isDigit(last) && last != '.' {
			return errors.Wrapf(ErrInvalidKey, "%q after %q", key, last)
		}

	default:
		return errors.Wrapf(ErrInvalidKey, "%q", key)
	}

	l.buf = append(l.buf, key)
	return nil
}

// Type presses every key of s in order and stops at the first rejected key.
func (l *Line) Type(s string) error {
	for i, key := range s {
		if err := l.Press(key); err != nil {
			return errors.Wrapf(err, "position %d", i+1)
		}
	}
	return nil
}

func (l *Line) Backspace() {
	if len(l.buf) > 0 {
		l.buf = l.buf[:len(l.buf)-1]
	}
}

func (l *Line) Clear() {
	l.buf = l.buf[:0]
}

func (l *Line) Len() int {
	return len(l.buf)
}

func (l *Line) String() string {
	return string(l.buf)
}

// Validate reports whether expr could have been typed key by key.
func Validate(expr string) error {
	var l Line
	return l.Type(expr)
}

func (l *Line) lastNonSpace() rune {
	for i := len(l.buf) - 1; i >= 0; i-- {
		if l.buf[i] != ' ' {
			return l.buf[i]
		}
	}
	return 0
}

// operand returns the number currently being typed: the text after the last
// operator, fraction bar or space.
func (l *Line) operand() string {
	s := string(l.buf)
	if i := strings.LastIndexAny(s, operators+" "); i >= 0 {
		return s[i+1:]
	}
	return s
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
