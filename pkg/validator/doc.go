// Package validator validates the body, route parameters and query of an
// incoming request against a declared list of field rules, and extracts only
// the declared fields from a request that passes.
//
// Each source file groups a family of rule constructors (`string_rules.go`,
// `numeric_rules.go`, `date_rules.go`, etc.). A constructor returns a
// FieldRule: a location, a field path and the ordered checks to run on the
// value. Paths use dot notation with optional indices and wildcards:
//
//	user.email
//	items[0].id
//	*.price
//
// A wildcard expands to every key (or index) present at that level. One that
// matches nothing yields a single absent instance, so a required wildcard rule
// fails on an empty object.
//
// # Presence and null
//
// Rules distinguish a missing key from an explicit null. A missing field fails
// only when the rule is required. A null value fails a required rule unless
// the rule is one of the OrNull variants. Once a value passes the existence
// check every attached check runs and each failure is reported, so BodyPin can
// report three problems for one field.
//
// # Usage
//
//	v := validator.New([]validator.FieldRule{
//	    validator.ParamsID("id", true),
//	    validator.BodyString("name", true),
//	    validator.BodyEmailOrNull("contact.email", false),
//	    validator.ForbidBodyItem("role"),
//	})
//
//	res, err := v.Validate(ctx, validator.Input{Body: body, Params: params})
//	if verr, ok := validator.AsError(err); ok {
//	    // verr.Data.Errors lists every failure in rule order
//	}
//
// Rules are evaluated concurrently, bounded by WithConcurrency, but failures
// are always reported in attachment order.
//
// # Error Handling
//
// Validate returns a *Error with Kind KindParametersValidation. It matches
// ErrParametersValidation with errors.Is. Response validation in package
// response produces the same type with Kind KindDataValidation.
package validator
