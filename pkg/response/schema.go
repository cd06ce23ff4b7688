package response

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
)

// jsonSchema adapts a JSON Schema document to Schema. Resolved forms are
// built lazily, once per presence mode.
type jsonSchema struct {
	source *jsonschema.Schema

	mu       sync.Mutex
	resolved map[Presence]*jsonschema.Resolved
	shapes   map[Presence]*jsonschema.Schema
}

// JSONSchema wraps s as a schema factory. s must not be modified afterwards.
func JSONSchema(s *jsonschema.Schema) SchemaFunc {
	js := &jsonSchema{
		source:   s,
		resolved: make(map[Presence]*jsonschema.Resolved, 2),
		shapes:   make(map[Presence]*jsonschema.Schema, 2),
	}
	return func() Schema { return js }
}

func (js *jsonSchema) Validate(value any, opts Options) (any, error) {
	shape, resolved, err := js.resolve(opts.Presence)
	if err != nil {
		return nil, err
	}

	value = applyDefaults(shape, value)
	if opts.StripUnknown {
		value = strip(shape, value)
	}

	if err := resolved.Validate(value); err != nil {
		return nil, err
	}
	return value, nil
}

func (js *jsonSchema) resolve(p Presence) (*jsonschema.Schema, *jsonschema.Resolved, error) {
	if p != PresenceRequired {
		p = PresenceOptional
	}

	js.mu.Lock()
	defer js.mu.Unlock()

	if r, ok := js.resolved[p]; ok {
		return js.shapes[p], r, nil
	}
	if js.source == nil {
		return nil, nil, ErrNilSchema
	}

	shape := clone(js.source)
	if p == PresenceRequired {
		requireAll(shape)
	}

	r, err := shape.Resolve(nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	js.shapes[p] = shape
	js.resolved[p] = r
	return shape, r, nil
}

// clone copies the schema tree so presence rewrites never touch the caller's schema.
func clone(s *jsonschema.Schema) *jsonschema.Schema {
	if s == nil {
		return nil
	}

	c := *s
	c.Required = slices.Clone(s.Required)
	c.Items = clone(s.Items)
	c.AdditionalProperties = clone(s.AdditionalProperties)
	c.Not = clone(s.Not)
	c.Properties = cloneMap(s.Properties)
	c.PatternProperties = cloneMap(s.PatternProperties)
	c.Defs = cloneMap(s.Defs)
	c.PrefixItems = cloneList(s.PrefixItems)
	c.AllOf = cloneList(s.AllOf)
	c.AnyOf = cloneList(s.AnyOf)
	c.OneOf = cloneList(s.OneOf)
	return &c
}

func cloneMap(m map[string]*jsonschema.Schema) map[string]*jsonschema.Schema {
	if m == nil {
		return nil
	}
	out := make(map[string]*jsonschema.Schema, len(m))
	for k, s := range m {
		out[k] = clone(s)
	}
	return out
}

func cloneList(list []*jsonschema.Schema) []*jsonschema.Schema {
	if list == nil {
		return nil
	}
	out := make([]*jsonschema.Schema, len(list))
	for i, s := range list {
		out[i] = clone(s)
	}
	return out
}

// OptionalKeyword is the schema extension that exempts a property from
// PresenceRequired without giving it a default.
const OptionalKeyword = "x-optional"

func optional(s *jsonschema.Schema) bool {
	v, ok := s.Extra[OptionalKeyword].(bool)
	return ok && v
}

// requireAll marks every declared property required unless it declares a
// default or sets OptionalKeyword.
func requireAll(s *jsonschema.Schema) {
	if s == nil {
		return
	}

	for _, name := range slices.Sorted(maps.Keys(s.Properties)) {
		prop := s.Properties[name]
		if prop == nil {
			continue
		}
		if len(prop.Default) == 0 && !optional(prop) && !slices.Contains(s.Required, name) {
			s.Required = append(s.Required, name)
		}
		requireAll(prop)
	}

	requireAll(s.Items)
	requireAll(s.AdditionalProperties)
	for _, group := range [][]*jsonschema.Schema{s.PrefixItems, s.AllOf, s.AnyOf, s.OneOf} {
		for _, sub := range group {
			requireAll(sub)
		}
	}
	for _, def := range s.Defs {
		requireAll(def)
	}
}

// applyDefaults fills absent properties that declare a default. Maps are
// copied before they are changed.
func applyDefaults(s *jsonschema.Schema, value any) any {
	if s == nil {
		return value
	}

	switch v := value.(type) {
	case map[string]any:
		if len(s.Properties) == 0 {
			return v
		}
		out := maps.Clone(v)
		for name, prop := range s.Properties {
			if prop == nil {
				continue
			}
			if current, ok := out[name]; ok {
				out[name] = applyDefaults(prop, current)
				continue
			}
			if len(prop.Default) > 0 {
				var def any
				if err := json.Unmarshal(prop.Default, &def); err == nil {
					out[name] = def
				}
			}
		}
		return out
	case []any:
		if s.Items == nil {
			return v
		}
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = applyDefaults(s.Items, item)
		}
		return out
	default:
		return value
	}
}

// strip drops object keys the schema does not declare. Objects whose schema
// declares no properties are left as they are.
func strip(s *jsonschema.Schema, value any) any {
	if s == nil {
		return value
	}

	switch v := value.(type) {
	case map[string]any:
		if s.Properties == nil {
			return v
		}
		out := make(map[string]any, len(s.Properties))
		for name, item := range v {
			prop, ok := s.Properties[name]
			if !ok {
				continue
			}
			out[name] = strip(prop, item)
		}
		return out
	case []any:
		if s.Items == nil {
			return v
		}
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = strip(s.Items, item)
		}
		return out
	default:
		return value
	}
}
