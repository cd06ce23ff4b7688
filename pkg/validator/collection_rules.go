package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrymomot/apivalidate/pkg/predicate"
)

// BodyArray validates that a body field is an array. When allowed is not nil,
// every element must also be one of allowed.
func BodyArray(item string, allowed []string, required bool) FieldRule {
	rule := bodyBase(item, required, false).
		with("validation.array", fmt.Sprintf("'%s' has to be an Array", item), predicate.IsArray)

	if allowed == nil {
		return rule
	}

	return rule.with("validation.array_in", fmt.Sprintf("invalid '%s' parameters, has to be in: [%s]", item, strings.Join(allowed, ", ")),
		func(v any) error {
			elements, err := stringElements(v)
			if err != nil {
				return err
			}
			return predicate.Intersects(elements, allowed)
		})
}

// BodyObject validates a plain object. A non-required field also accepts null.
func BodyObject(item string, required bool) FieldRule {
	return bodyBase(item, required, false).
		with("validation.object", fmt.Sprintf("'%s' has to be an object", item), func(v any) error {
			return predicate.IsPlainObject(v, required)
		})
}

// BodyObjectLike is BodyObject that also accepts arrays.
func BodyObjectLike(item string, required bool) FieldRule {
	return bodyBase(item, required, false).
		with("validation.object_like", fmt.Sprintf("'%s' has to be an object-like", item), func(v any) error {
			return predicate.IsObjectLike(v, required)
		})
}

// ForbidBodyItem fails whenever the field is present, null included.
func ForbidBodyItem(item string) FieldRule {
	rule := bodyBase(item, false, true)
	rule.forbidden = true
	return rule
}

var errNonStringElement = fmt.Errorf("%w: array element is not a string", predicate.ErrNotSubset)

func stringElements(v any) ([]string, error) {
	if err := predicate.IsArray(v); err != nil {
		return nil, err
	}

	rv := reflect.ValueOf(v)
	out := make([]string, 0, rv.Len())
	for i := range rv.Len() {
		s, ok := rv.Index(i).Interface().(string)
		if !ok {
			return nil, errNonStringElement
		}
		out = append(out, s)
	}
	return out, nil
}
