package fixedpoint

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestJSON(t *testing.T) {
	type payload struct {
		Amount Value  `json:"amount"`
		Memo   *Value `json:"memo,omitempty"`
	}

	out, err := json.Marshal(payload{Amount: MustNewFromString("-1.25")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"-1.25"}`, string(out))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"amount": 0.1234567}`), &p))
	assert.Equal(t, "0.123456", p.Amount.String())

	require.NoError(t, json.Unmarshal([]byte(`{"amount": "12.5"}`), &p))
	assert.Equal(t, "12.5", p.Amount.String())

	require.NoError(t, json.Unmarshal([]byte(`{"amount": null}`), &p))
	assert.Equal(t, "12.5", p.Amount.String())

	assert.Error(t, json.Unmarshal([]byte(`{"amount": "twelve"}`), &p))
	assert.Error(t, json.Unmarshal([]byte(`{"amount": 1e3}`), &p))
}

func TestYAML(t *testing.T) {
	var doc struct {
		A Value `yaml:"a"`
		B Value `yaml:"b"`
		C Value `yaml:"c"`
	}

	err := yaml.Unmarshal([]byte("a: 3\nb: 1.75\nc: \"-0.5\"\n"), &doc)
	require.NoError(t, err)
	assert.Equal(t, NewFromInt(3), doc.A)
	assert.Equal(t, MustNewFromString("1.75"), doc.B)
	assert.Equal(t, MustNewFromString("-0.5"), doc.C)

	out, err := yaml.Marshal(map[string]Value{"v": MustNewFromString("2.50")})
	require.NoError(t, err)
	assert.Equal(t, "v: \"2.5\"\n", string(out))

	assert.Error(t, yaml.Unmarshal([]byte("a: abc\n"), &doc))
}
