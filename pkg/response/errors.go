package response

import "errors"

var (
	// ErrInvalidSchema is returned when a schema cannot be parsed or resolved.
	ErrInvalidSchema = errors.New("invalid response schema")

	// ErrNilSchema is returned when Validate is called without a schema factory.
	ErrNilSchema = errors.New("nil response schema")
)
