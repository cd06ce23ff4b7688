package validator

import (
	"fmt"

	"github.com/dmitrymomot/apivalidate/pkg/predicate"
)

func ParamsID(item string, required bool) FieldRule {
	return paramsBase(item, required).
		with("validation.uuid", fmt.Sprintf("'%s' has to be an UUIDv4", item), predicate.IsUUIDv4)
}

func QueryID(item string, required bool) FieldRule {
	return queryBase(item, required).
		with("validation.uuid", fmt.Sprintf("'%s' has to be an UUIDv4", item), predicate.IsUUIDv4)
}

func BodyID(item string, required bool) FieldRule {
	return bodyBase(item, required, false).
		with("validation.uuid", fmt.Sprintf("'%s' has to be an UUIDv4", item), predicate.IsUUIDv4)
}

func BodyIDOrNull(item string, required bool) FieldRule {
	return bodyBase(item, required, true).
		with("validation.uuid_or_null", fmt.Sprintf("'%s' has to be an UUIDv4 or null", item), orNull(predicate.IsUUIDv4))
}
