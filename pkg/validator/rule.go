package validator

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/apivalidate/pkg/fieldpath"
)

// check is one predicate bound to the message reported when it fails.
type check struct {
	test    func(value any) error
	message string
	key     string
}

// FieldRule validates one field path in one request location. Rules are
// values: the builder methods return modified copies, so a rule built at
// route registration can be shared by any number of concurrent requests.
type FieldRule struct {
	location    Location
	path        fieldpath.Path
	required    bool
	includeNull bool
	forbidden   bool
	checks      []check
}

// newRule is the nullability-aware base shared by every constructor.
// A required rule without includeNull treats an explicit null like absence.
func newRule(loc Location, item string, required, includeNull bool) FieldRule {
	return FieldRule{
		location:    loc,
		path:        fieldpath.MustParse(item),
		required:    required,
		includeNull: includeNull,
	}
}

func paramsBase(item string, required bool) FieldRule {
	return newRule(LocationParams, item, required, false)
}

func queryBase(item string, required bool) FieldRule {
	return newRule(LocationQuery, item, required, false)
}

func bodyBase(item string, required, includeNull bool) FieldRule {
	return newRule(LocationBody, item, required, includeNull)
}

// with returns a copy of r with one more check attached.
func (r FieldRule) with(key, message string, test func(any) error) FieldRule {
	r.checks = append(slices.Clip(r.checks), check{test: test, message: message, key: key})
	return r
}

func (r FieldRule) Location() Location { return r.location }
func (r FieldRule) Path() string       { return r.path.String() }
func (r FieldRule) Required() bool     { return r.required }
func (r FieldRule) Nullable() bool     { return r.includeNull }
func (r FieldRule) Forbidden() bool    { return r.forbidden }

// Evaluate runs the rule against the payload of its location and returns every
// failure. A failed existence check ends evaluation for that instance; after
// it, all attached checks run and each failing one is reported.
func (r FieldRule) Evaluate(root map[string]any) ValidationErrors {
	var errs ValidationErrors

	for _, inst := range r.path.Resolve(root) {
		path := inst.String()

		if r.forbidden {
			if inst.Present {
				errs.Add(r.failure(path, inst.Value, "validation.forbidden", fmt.Sprintf("'%s' is forbidden", r.path)))
			}
			continue
		}

		if !inst.Present {
			if r.required {
				errs.Add(r.failure(path, nil, "validation.required", r.requiredMessage()))
			}
			continue
		}

		if inst.Value == nil && r.required && !r.includeNull {
			errs.Add(r.failure(path, nil, "validation.required", r.requiredMessage()))
			continue
		}

		for _, c := range r.checks {
			if err := c.test(inst.Value); err != nil {
				errs.Add(r.failure(path, inst.Value, c.key, c.message))
			}
		}
	}

	return errs
}

func (r FieldRule) requiredMessage() string {
	return fmt.Sprintf("'%s' is required", r.path)
}

func (r FieldRule) failure(path string, value any, key, message string) ValidationError {
	return ValidationError{
		Path:           path,
		Value:          value,
		Message:        message,
		Location:       r.location,
		TranslationKey: key,
		TranslationValues: map[string]any{
			"field": r.path.String(),
		},
	}
}

// orNull lets an explicit null through to a typed check.
func orNull(test func(any) error) func(any) error {
	return func(v any) error {
		if v == nil {
			return nil
		}
		return test(v)
	}
}
