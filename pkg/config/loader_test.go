package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	type args struct {
		configFile string
	}

	tests := []struct {
		name    string
		args    args
		wantErr bool
		f       func(t *testing.T, config *Config)
	}{
		{
			name: "full",
			args: args{configFile: "testdata/fraccalc.yaml"},
			f: func(t *testing.T, config *Config) {
				assert.Equal(t, DisplayBoth, config.Display)
				assert.Equal(t, 3, config.Precision)
				assert.True(t, config.StrictDivision)
				assert.Equal(t, 20, config.HistorySize)
				if assert.NotNil(t, config.Memory) {
					assert.Equal(t, "1.25", config.Memory.String())
				}
				assert.Len(t, config.Expressions, 3)
				assert.Equal(t, "2 + 3 * 4", config.Expressions[1])
			},
		},
		{
			name: "single expression",
			args: args{configFile: "testdata/single.yaml"},
			f: func(t *testing.T, config *Config) {
				assert.Equal(t, DisplayDecimal, config.Display)
				assert.Equal(t, -1, config.Precision)
				assert.Equal(t, 50, config.HistorySize)
				if assert.NotNil(t, config.Memory) {
					assert.Equal(t, "-0.5", config.Memory.String())
				}
				assert.Equal(t, StringSlice{"3/4"}, config.Expressions)
			},
		},
		{
			name: "expression block",
			args: args{configFile: "testdata/block.yaml"},
			f: func(t *testing.T, config *Config) {
				assert.Equal(t, StringSlice{"1 1/2 + 1 1/2", "2.50", "10/2/5", "7"}, config.Expressions)
			},
		},
		{
			name:    "expressions as a map",
			args:    args{configFile: "testdata/invalid_expressions.yaml"},
			wantErr: true,
		},
		{
			name:    "invalid display",
			args:    args{configFile: "testdata/invalid_display.yaml"},
			wantErr: true,
		},
		{
			name:    "missing file",
			args:    args{configFile: "testdata/missing.yaml"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := Load(tt.args.configFile)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, config)

			if tt.f != nil {
				tt.f(t, config)
			}
		})
	}
}

func TestStringSliceJSON(t *testing.T) {
	var s StringSlice
	require.NoError(t, json.Unmarshal([]byte(`"1+1"`), &s))
	assert.Equal(t, StringSlice{"1+1"}, s)

	s = nil
	require.NoError(t, json.Unmarshal([]byte(`["1+1", ["2x2"]]`), &s))
	assert.Equal(t, StringSlice{"1+1", "2x2"}, s)

	s = nil
	require.NoError(t, json.Unmarshal([]byte(`[1.50, "3/4\n\n 1 1/2 "]`), &s))
	assert.Equal(t, StringSlice{"1.50", "3/4", "1 1/2"}, s)

	assert.Error(t, json.Unmarshal([]byte(`[{"expr": "1"}]`), &s))
}
