package validator

import (
	"fmt"

	"github.com/dmitrymomot/apivalidate/pkg/predicate"
)

// BodyNumber validates an integer body field; integer strings such as "42"
// are accepted as well.
func BodyNumber(item string, required bool) FieldRule {
	return bodyBase(item, required, false).
		with("validation.number", fmt.Sprintf("'%s' has to be a number", item), predicate.IsInt)
}

// BodyNumberOrNull accepts a JSON number or an explicit null.
func BodyNumberOrNull(item string, required bool) FieldRule {
	return bodyBase(item, required, true).
		with("validation.number_or_null", fmt.Sprintf("'%s' has to be a number or null", item), orNull(predicate.IsNumber))
}

// BodyDecimal validates a decimal number or decimal string.
func BodyDecimal(item string, required bool) FieldRule {
	return bodyBase(item, required, false).
		with("validation.decimal", fmt.Sprintf("'%s' has to be a decimal", item), predicate.IsDecimal)
}

// BodyDecimalOrNull accepts a JSON number or an explicit null.
func BodyDecimalOrNull(item string, required bool) FieldRule {
	return bodyBase(item, required, true).
		with("validation.decimal_or_null", fmt.Sprintf("'%s' has to be a decimal or null", item), orNull(predicate.IsNumber))
}

// BodyBoolean validates a boolean or its textual form ("true", "false", "1", "0").
func BodyBoolean(item string, required bool) FieldRule {
	return bodyBase(item, required, false).
		with("validation.boolean", fmt.Sprintf("'%s' has to be a boolean", item), predicate.IsBoolean)
}
