package os

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a field from either a plain scalar or a
// conditional-default mapping:
//
//	diskbus: ide
//	diskbus:
//	  when:
//	    - capability: hv.virtio
//	      value: virtio
//
// An absent key stays Unset.
func (f *Field[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		var cond struct {
			When []struct {
				Capability string `yaml:"capability"`
				Value      T      `yaml:"value"`
			} `yaml:"when"`
		}
		if err := node.Decode(&cond); err != nil {
			return err
		}
		if len(cond.When) == 0 {
			return errors.New("conditional default needs at least one when rule")
		}
		rules := make([]CapabilityRule[T], 0, len(cond.When))
		for _, w := range cond.When {
			rules = append(rules, CapabilityRule[T]{Capability: w.Capability, Value: w.Value})
		}
		*f = ConditionalField(NewConditionalDefault(rules...))
		return nil
	}

	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	*f = ConcreteField(v)
	return nil
}

// ParseDefinitions decodes an ordered list of OS definitions from
// YAML, the external form of the registration interface. The list
// keeps the document order, so a valid document lists parents before
// children just like Go-side definitions do.
func ParseDefinitions(r io.Reader) ([]Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var defs []Definition
	if err := dec.Decode(&defs); err != nil {
		return nil, fmt.Errorf("decoding OS definitions: %w", err)
	}
	return defs, nil
}

// NewRegistryFromYAML builds a registry straight from a YAML
// definition source.
func NewRegistryFromYAML(r io.Reader) (*Registry, error) {
	defs, err := ParseDefinitions(r)
	if err != nil {
		return nil, err
	}
	return NewRegistry(defs)
}
