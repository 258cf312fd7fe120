package props

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrNotMapping is returned when a YAML value decoded into Properties is
// not a mapping of scalars.
var ErrNotMapping = errors.New("props: yaml value is not a mapping of scalars")

// MarshalYAML renders the dictionary as a flat string mapping.
func (p *Properties) MarshalYAML() (any, error) {
	out := make(map[string]string, len(p.m))
	for k, v := range p.m {
		out[k] = v
	}
	return out, nil
}

// UnmarshalYAML decodes a flat mapping into the dictionary. Scalar values
// of any YAML type are accepted and stored with their literal rendering;
// nested sequences or mappings are rejected.
func (p *Properties) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return ErrNotMapping
	}
	m := make(map[string]string, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		k, v := value.Content[i], value.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return fmt.Errorf("%w: key %q", ErrNotMapping, k.Value)
		}
		m[k.Value] = v.Value
	}
	p.m = m
	return nil
}
