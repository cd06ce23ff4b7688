package validator

import (
	"fmt"

	"github.com/dmitrymomot/apivalidate/pkg/predicate"
)

const pinLength = 4

func BodyEmail(item string, required bool) FieldRule {
	return bodyBase(item, required, false).
		with("validation.email", fmt.Sprintf("'%s' has to be a valid email address", item), predicate.IsEmail)
}

func BodyEmailOrNull(item string, required bool) FieldRule {
	return bodyBase(item, required, true).
		with("validation.email_or_null", fmt.Sprintf("'%s' has to be a valid email address or null", item), orNull(predicate.IsEmail))
}

// BodyPin validates a 4 digit numeric string. Type, length and digits are
// reported separately.
func BodyPin(item string, required bool) FieldRule {
	return bodyBase(item, required, false).
		with("validation.string", fmt.Sprintf("'%s' has to be a string", item), predicate.IsString).
		with("validation.exact_length", fmt.Sprintf("'%s' has to be %d characters length", item, pinLength), func(v any) error {
			return predicate.HasLength(v, pinLength)
		}).
		with("validation.digits", fmt.Sprintf("'%s' value must be digits (0-9)", item), predicate.IsDigits)
}
