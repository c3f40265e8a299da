package style

import (
	"github.com/fatih/color"

	"github.com/c9s/fraccalc/pkg/fixedpoint"
)

var (
	NegativeColor = color.New(color.FgHiRed)
	PositiveColor = color.New(color.FgHiGreen)
	ErrorColor    = color.New(color.FgRed, color.Bold)
	NoticeColor   = color.New(color.FgYellow)
)

// ValueColor picks the color an answer is printed with.
func ValueColor(v fixedpoint.Value) *color.Color {
	if v.Sign() < 0 {
		return NegativeColor
	}
	return PositiveColor
}

// SignString always carries the sign of a nonzero value, e.g. "+1.5".
func SignString(v fixedpoint.Value) string {
	if v.Sign() > 0 {
		return "+" + v.String()
	}
	return v.String()
}
