package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/c9s/fraccalc/pkg/fixedpoint"
)

type Display string

const (
	DisplayDecimal  Display = "decimal"
	DisplayFraction Display = "fraction"
	DisplayBoth     Display = "both"
)

func (d Display) Validate() error {
	switch d {
	case DisplayDecimal, DisplayFraction, DisplayBoth:
		return nil
	}
	return errors.Errorf("unsupported display mode %q, expecting decimal, fraction or both", d)
}

type Config struct {
	Display Display `json:"display" yaml:"display"`

	// Precision fixes the number of fractional digits shown; a negative
	// value shows the shortest exact form.
	Precision int `json:"precision" yaml:"precision"`

	StrictDivision bool `json:"strictDivision" yaml:"strictDivision"`

	HistorySize int `json:"historySize" yaml:"historySize"`

	// Memory seeds the answer memory of an interactive session.
	Memory *fixedpoint.Value `json:"memory,omitempty" yaml:"memory,omitempty"`

	// Expressions are evaluated by the batch command when no input file is given.
	Expressions StringSlice `json:"expressions,omitempty" yaml:"expressions,omitempty"`
}

func Default() *Config {
	return &Config{
		Display:     DisplayDecimal,
		Precision:   -1,
		HistorySize: 50,
	}
}

func Load(configFile string) (*Config, error) {
	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	config := Default()
	if err := yaml.Unmarshal(content, config); err != nil {
		return nil, errors.Wrapf(err, "can not parse config file %s", configFile)
	}

	if err := config.Display.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}
