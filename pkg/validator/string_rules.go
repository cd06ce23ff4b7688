package validator

import (
	"fmt"

	"github.com/dmitrymomot/apivalidate/pkg/predicate"
)

// QueryString validates a string query parameter.
func QueryString(item string, required bool) FieldRule {
	return queryBase(item, required).
		with("validation.string", fmt.Sprintf("'%s' has to be a string", item), predicate.IsString)
}

// ParamsString validates a string route parameter.
func ParamsString(item string, required bool) FieldRule {
	return paramsBase(item, required).
		with("validation.string", fmt.Sprintf("'%s' has to be a string", item), predicate.IsString)
}

// BodyString validates a string body field.
func BodyString(item string, required bool) FieldRule {
	return bodyBase(item, required, false).
		with("validation.string", fmt.Sprintf("'%s' has to be a string", item), predicate.IsString)
}

// BodyStringOrNull accepts a string or an explicit null.
func BodyStringOrNull(item string, required bool) FieldRule {
	return bodyBase(item, required, true).
		with("validation.string_or_null", fmt.Sprintf("'%s' has to be a string or null", item), orNull(predicate.IsString))
}
