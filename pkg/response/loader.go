package response

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"gopkg.in/yaml.v3"
)

// SchemaFromJSON parses a JSON Schema document and checks that it resolves.
func SchemaFromJSON(data []byte) (SchemaFunc, error) {
	var s jsonschema.Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	if _, err := s.Resolve(nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	return JSONSchema(&s), nil
}

// SchemaFromYAML parses a JSON Schema document written in YAML.
func SchemaFromYAML(data []byte) (SchemaFunc, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	return SchemaFromJSON(raw)
}

// MustSchema panics when a schema cannot be loaded. Intended for package-level
// schema variables.
func MustSchema(fn SchemaFunc, err error) SchemaFunc {
	if err != nil {
		panic(err)
	}
	return fn
}
