package validator

import (
	"fmt"

	"github.com/dmitrymomot/apivalidate/pkg/predicate"
)

// BodyDate validates a date string (see predicate.DateLayouts) or timestamp.
func BodyDate(item string, required bool) FieldRule {
	return bodyBase(item, required, false).
		with("validation.date", fmt.Sprintf("'%s' has to be a valid date", item), predicate.IsDate)
}

func BodyDateOrNull(item string, required bool) FieldRule {
	return bodyBase(item, required, true).
		with("validation.date_or_null", fmt.Sprintf("'%s' has to be a date or null", item), orNull(predicate.IsDate))
}
