package validator

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/apivalidate/pkg/predicate"
)

// ParamsEnum validates a route parameter against the values of types.
func ParamsEnum(item string, types map[string]string, required bool) FieldRule {
	allowed := enumValues(types)
	return paramsBase(item, required).
		with("validation.in_list", enumMessage(item, allowed), inList(allowed))
}

// QueryEnum validates a query parameter against the values of types.
func QueryEnum(item string, types map[string]string, required bool) FieldRule {
	allowed := enumValues(types)
	return queryBase(item, required).
		with("validation.in_list", enumMessage(item, allowed), inList(allowed))
}

// BodyEnum validates a body field against the values of types.
func BodyEnum(item string, types map[string]string, required bool) FieldRule {
	allowed := enumValues(types)
	return bodyBase(item, required, false).
		with("validation.in_list", enumMessage(item, allowed), inList(allowed))
}

// BodyEnumOrNull validates against the values of types and also accepts null.
func BodyEnumOrNull(item string, types map[string]string, required bool) FieldRule {
	allowed := enumValues(types)
	return bodyBase(item, required, true).
		with("validation.in_list_or_null", enumMessage(item, allowed)+" or null", orNull(inList(allowed)))
}

// BodyTemplate validates a body field against the keys of types, for lookup
// tables whose keys are the canonical identifiers.
func BodyTemplate(item string, types map[string]string, required bool) FieldRule {
	allowed := slices.Sorted(maps.Keys(types))
	return bodyBase(item, required, false).
		with("validation.in_list", enumMessage(item, allowed), inList(allowed))
}

func inList(allowed []string) func(any) error {
	return func(v any) error {
		return predicate.IsIn(v, allowed)
	}
}

// enumValues returns the distinct values of types in sorted order so messages
// are stable across runs.
func enumValues(types map[string]string) []string {
	return slices.Compact(slices.Sorted(maps.Values(types)))
}

func enumMessage(item string, allowed []string) string {
	return fmt.Sprintf("invalid '%s' parameter, has to be one of: [%s]", item, strings.Join(allowed, ", "))
}
