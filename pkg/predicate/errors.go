package predicate

import "errors"

var (
	// ErrPredicateFailed is wrapped by every predicate failure.
	ErrPredicateFailed = errors.New("predicate failed")

	ErrNotSubset     = errors.New("value is not a subset of the allowed set")
	ErrInvalidDate   = errors.New("value is not a valid date")
	ErrNotObject     = errors.New("value is not a plain object")
	ErrNotObjectLike = errors.New("value is not object-like")
	ErrInvalidUUID   = errors.New("value is not a version 4 UUID")
	ErrNotString     = errors.New("value is not a string")
	ErrNotInt        = errors.New("value is not an integer")
	ErrNotNumber     = errors.New("value is not a number")
	ErrNotDecimal    = errors.New("value is not a decimal")
	ErrNotBoolean    = errors.New("value is not a boolean")
	ErrInvalidEmail  = errors.New("value is not a valid email address")
	ErrNotDigits     = errors.New("value is not a string of digits")
	ErrInvalidLength = errors.New("value has an invalid length")
	ErrNotArray      = errors.New("value is not an array")
	ErrNotAllowed    = errors.New("value is not one of the allowed values")
)

func fail(reason error) error {
	return errors.Join(ErrPredicateFailed, reason)
}
