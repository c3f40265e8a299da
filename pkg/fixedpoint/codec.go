package fixedpoint

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// MarshalJSON writes the value as a JSON string so no precision is lost in
// float-based decoders.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON accepts both string and bare number forms. Numbers are parsed
// from their literal text, never through float64.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var text string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
	} else {
		text = string(data)
	}

	nv, err := NewFromString(text)
	if err != nil {
		return errors.Wrap(err, "unsupported json value")
	}

	*v = nv
	return nil
}

func (v Value) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}

func (v *Value) UnmarshalYAML(unmarshal func(a interface{}) error) (err error) {
	var i int64
	if err = unmarshal(&i); err == nil {
		nv, err2 := NewFromIntChecked(i)
		if err2 != nil {
			return err2
		}

		*v = nv
		return nil
	}

	var s string
	if err = unmarshal(&s); err == nil {
		nv, err2 := NewFromString(s)
		if err2 != nil {
			return err2
		}

		*v = nv
		return nil
	}

	return err
}
