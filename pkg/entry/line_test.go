package entry

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		expr    string
		wantErr bool
	}{
		{expr: "1+2"},
		{expr: "1 1/2 + 1 1/2"},
		{expr: "2x3"},
		{expr: "-5+3"},
		{expr: "3/4"},
		{expr: "1.5*2."},
		{expr: ".5+1"},
		{expr: "  1"},
		{expr: "1.5 1/2"},

		{expr: "1.2.3", wantErr: true},
		{expr: "1++2", wantErr: true},
		{expr: "5*-2", wantErr: true},
		{expr: "+1", wantErr: true},
		{expr: "abc", wantErr: true},
		{expr: "(1+2)", wantErr: true},
		{expr: "1 / / 2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			err := Validate(tt.expr)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidKey), "expecting ErrInvalidKey, got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLine(t *testing.T) {
	var l Line
	assert.NoError(t, l.Type("12.5"))
	assert.Error(t, l.Press('.'))
	assert.Equal(t, "12.5", l.String())

	l.Backspace()
	l.Backspace()
	assert.Equal(t, "12", l.String())
	assert.NoError(t, l.Press('.'))

	assert.NoError(t, l.Press(' '))
	assert.NoError(t, l.Press(' '))
	assert.Equal(t, "12. ", l.String())
	assert.Equal(t, 4, l.Len())

	l.Clear()
	assert.Equal(t, 0, l.Len())
	l.Backspace()
	assert.Equal(t, "", l.String())

	err := l.Type("1?")
	assert.EqualError(t, err, "position 2: '?': invalid key")
}
