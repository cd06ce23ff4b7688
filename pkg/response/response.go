package response

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/dmitrymomot/apivalidate/pkg/predicate"
	"github.com/dmitrymomot/apivalidate/pkg/validator"
)

// Presence controls whether declared properties must be present.
type Presence string

const (
	// PresenceOptional only enforces the schema's own "required" lists.
	PresenceOptional Presence = "optional"
	// PresenceRequired makes every declared property mandatory unless it has a
	// default or sets OptionalKeyword.
	PresenceRequired Presence = "required"
)

// Options tune a single schema validation.
type Options struct {
	Presence     Presence
	StripUnknown bool
}

// Schema validates a candidate value and returns the value to send.
type Schema interface {
	Validate(value any, opts Options) (any, error)
}

// SchemaFunc is a schema factory. Handlers hold the factory and the response
// layer asks it for a Schema per call.
type SchemaFunc func() Schema

// Validate normalizes payload through a JSON round trip, validates it with every
// declared field required and unknown fields stripped, and returns the cleaned
// value. Any failure is a *validator.Error of kind validator.KindDataValidation.
func Validate(payload any, schema SchemaFunc) (any, error) {
	if schema == nil {
		return nil, ErrNilSchema
	}

	value, err := normalize(payload)
	if err != nil {
		return nil, validator.NewDataError(err)
	}

	s := schema()
	if s == nil {
		return nil, ErrNilSchema
	}

	out, err := s.Validate(value, Options{Presence: PresenceRequired, StripUnknown: true})
	if err != nil {
		if _, ok := validator.AsError(err); ok {
			return nil, err
		}
		return nil, validator.NewDataError(err)
	}
	return out, nil
}

// ValidateAs is Validate followed by decoding the cleaned value into T.
func ValidateAs[T any](payload any, schema SchemaFunc) (T, error) {
	var zero T

	value, err := Validate(payload, schema)
	if err != nil {
		return zero, err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return zero, validator.NewDataError(err)
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return zero, validator.NewDataError(err)
	}
	return out, nil
}

// normalize sends object-like payloads through encoding/json so the schema only
// sees plain data: maps, slices, strings, float64, bool and nil. Values JSON
// cannot represent are dropped from objects and become null in arrays.
func normalize(payload any) (any, error) {
	if payload == nil || predicate.IsObjectLike(payload, true) != nil {
		return payload, nil
	}

	raw, err := json.Marshal(dropUnencodable(payload))
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}
	return out, nil
}

// dropUnencodable copies generic maps and slices without the values
// encoding/json rejects by kind. Other values are returned as is.
func dropUnencodable(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if unencodable(val) {
				continue
			}
			out[k] = dropUnencodable(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			if unencodable(val) {
				continue
			}
			out[i] = dropUnencodable(val)
		}
		return out
	default:
		return v
	}
}

func unencodable(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Func, reflect.Chan, reflect.Complex64, reflect.Complex128, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
