package config

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// StringSlice holds expressions listed in a config file. It accepts a list,
// a single expression, or a block of text with one expression per line.
// Bare numbers keep their literal text and blank lines are dropped.
type StringSlice []string

func (s *StringSlice) add(text string) {
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			*s = append(*s, line)
		}
	}
}

func (s *StringSlice) decode(a interface{}) error {
	switch d := a.(type) {
	case nil:

	case string:
		s.add(d)

	case json.Number:
		s.add(d.String())

	case []interface{}:
		for _, de := range d {
			if err := s.decode(de); err != nil {
				return err
			}
		}

	default:
		return errors.Errorf("unexpected type %T for expressions: %+v", d, d)
	}

	return nil
}

func (s *StringSlice) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		s.add(node.Value)

	case yaml.SequenceNode:
		for _, item := range node.Content {
			if err := s.UnmarshalYAML(item); err != nil {
				return err
			}
		}

	default:
		return errors.Errorf("line %d: expressions must be a string or a list", node.Line)
	}

	return nil
}

func (s *StringSlice) UnmarshalJSON(b []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(b))
	decoder.UseNumber()

	var a interface{}
	if err := decoder.Decode(&a); err != nil {
		return err
	}

	return s.decode(a)
}
