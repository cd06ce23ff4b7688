// Package predicate provides the pass/fail checks that field rules are built from.
//
// Every predicate is a plain function that returns nil when the value satisfies
// it and an error wrapping ErrPredicateFailed otherwise. Predicates never panic
// and carry no state, so a rule can bind them once at construction time and
// share them between concurrent requests.
//
// The structural predicates (Intersects, IsDate, IsPlainObject, IsObjectLike,
// IsUUIDv4) mirror the custom checks the rule builder depends on. The scalar
// predicates (IsString, IsInt, IsNumber, IsDecimal, IsBoolean, IsEmail, IsDigits,
// HasLength, IsArray, IsIn) cover the built-in type checks of the individual rules.
//
// # Usage
//
//	if err := predicate.IsUUIDv4(value); err != nil {
//	    // value is not a canonical version 4 UUID
//	}
//
//	if err := predicate.Intersects([]string{"a"}, []string{"a", "b"}); err != nil {
//	    // candidate contains an element outside of the allowed set
//	}
//
// Values are expected to be JSON-shaped: map[string]any, []any, string,
// float64 (or any Go numeric type, or json.Number), bool and nil.
package predicate
