// Package schema defines the declarative node tree consumed by the fixture
// generator. A Schema describes the shape and constraints of one JSON value;
// objects and arrays nest child schemas. Nodes are plain data: this package
// performs no validation beyond decoding.
package schema

import (
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Type names understood by the generator. Unknown types are not rejected;
// the generator falls back to the node's default (or null).
const (
	TypeInteger = "integer"
	TypeString  = "string"
	TypeObject  = "object"
	TypeArray   = "array"
	TypeBoolean = "boolean"
	TypeDate    = "date"
)

// Schema is one node of the tree. Keep this struct small and additive;
// optional numeric bounds are pointers so absence stays distinguishable
// from zero.
type Schema struct {
	Type   string `json:"type,omitempty" yaml:"type,omitempty"`
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	// String constraints
	Pattern   string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Enum      []string `json:"enum,omitempty" yaml:"enum,omitempty"`
	MinLength *int     `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Length    *int     `json:"length,omitempty" yaml:"length,omitempty"`

	// Integer bounds
	Minimum *int64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum *int64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`

	// Fixed-value escape hatch. Default is only honored when UseDefault is
	// set and the value is truthy (the generator reproduces that check).
	UseDefault bool `json:"useDefault,omitempty" yaml:"useDefault,omitempty"`
	Default    any  `json:"default,omitempty" yaml:"default,omitempty"`

	// Phone numbers
	CountryCode string `json:"countryCode,omitempty" yaml:"countryCode,omitempty"`

	// Array: one child schema per element position. The array's length is
	// fixed by the schema, not random.
	Items []*Schema `json:"items,omitempty" yaml:"items,omitempty"`

	// Object
	Properties map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	// Required is informational only; the generator always emits every
	// declared property.
	Required []string `json:"required,omitempty" yaml:"required,omitempty"`
}

// FromJSON decodes a schema document.
func FromJSON(data []byte) (*Schema, error) {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("schema: decode json: %w", err)
	}
	return &s, nil
}

// FromYAML decodes a schema document written in YAML.
func FromYAML(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("schema: decode yaml: %w", err)
	}
	return &s, nil
}
